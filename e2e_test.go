package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/indyatra/travel-advisor/app/dataset"
	appLogger "github.com/indyatra/travel-advisor/app/logger"
	"github.com/indyatra/travel-advisor/app/observability/metrics"
	"github.com/indyatra/travel-advisor/internal/api/advisor"
	"github.com/indyatra/travel-advisor/internal/api/ner"
	api "github.com/indyatra/travel-advisor/internal/router"
	"github.com/indyatra/travel-advisor/internal/types"
)

// E2ETestSuite exercises the full stack: seeded dataset, loaded store,
// router with middleware, HTTP round trips.
type E2ETestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func (s *E2ETestSuite) SetupSuite() {
	metrics.InitAppMetrics()
	logger := slog.Default()

	dir := s.T().TempDir()
	citiesPath := filepath.Join(dir, "cities.csv")
	statesPath := filepath.Join(dir, "states.csv")
	require.NoError(s.T(), dataset.Ensure(citiesPath, statesPath, true, logger))

	store, err := advisor.NewCSVStore(citiesPath, statesPath)
	require.NoError(s.T(), err)

	recognizer := ner.NewLexiconRecognizer(advisor.RecognizerLexicon(store))
	resolver := advisor.NewResolver(recognizer, store)
	service := advisor.NewServiceImpl(store, resolver, 1*time.Minute, logger)
	handler := advisor.NewHandler(service, logger)

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Mount("/", api.SetupRouter(&api.Config{AdvisorHandler: handler}))

	s.server = httptest.NewServer(router)
	s.client = s.server.Client()
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *E2ETestSuite) postChat(message string) (*http.Response, types.ChatResponse) {
	body, err := json.Marshal(types.ChatRequest{Message: message})
	require.NoError(s.T(), err)

	resp, err := s.client.Post(s.server.URL+"/chat", "application/json", bytes.NewReader(body))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	var chatResp types.ChatResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&chatResp))
	}
	return resp, chatResp
}

func (s *E2ETestSuite) TestPing() {
	resp, err := s.client.Get(s.server.URL + "/ping")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestCityWeather() {
	resp, chatResp := s.postChat("What is the weather like in Delhi?")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(chatResp.Reply, "Weather in Delhi:")
	s.Contains(chatResp.Reply, "Summer:")
	s.Contains(chatResp.Reply, "Monsoon:")
	s.Contains(chatResp.Reply, "Winter:")
	s.NotEmpty(chatResp.Timestamp)

	_, err := time.Parse(time.RFC3339, chatResp.Timestamp)
	s.NoError(err)
}

func (s *E2ETestSuite) TestStateGeneralInfo() {
	resp, chatResp := s.postChat("Tell me about Rajasthan")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(chatResp.Reply, "Jaipur")
	s.Contains(chatResp.Reply, "Udaipur")
	s.Contains(chatResp.Reply, "Thar Desert")
}

func (s *E2ETestSuite) TestUnknownLocation() {
	resp, chatResp := s.postChat("hello")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(chatResp.Reply, "Sorry, I couldn't understand the location")
}

func (s *E2ETestSuite) TestMissingMessage() {
	resp, err := s.client.Post(s.server.URL+"/chat", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]string
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&errResp))
	s.Equal("No message provided", errResp["error"])
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
