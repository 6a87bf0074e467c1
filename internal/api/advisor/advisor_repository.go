package advisor

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/indyatra/travel-advisor/internal/types"
)

// Store is the read-only gazetteer the engine resolves and composes
// against. Lookup keys are expected to be lowercased by the caller; the
// store performs exact matches only.
type Store interface {
	LookupCity(name string) (types.CityRecord, bool)
	LookupState(name string) (types.StateRecord, bool)
	CityNames() []string
	StateNames() []string
}

var _ Store = (*CSVStore)(nil)

// LoadError marks a malformed or unreadable tabular source. It is fatal at
// startup: the service must not come up on a partially loaded store.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CSVStore holds both reference tables in memory. It is immutable after
// construction and safe for unsynchronized concurrent reads.
type CSVStore struct {
	cities map[string]types.CityRecord
	states map[string]types.StateRecord
}

var cityColumns = []string{
	"city", "state", "travel_restrictions", "vaccination_requirements",
	"culture", "transportation", "weather_summer", "weather_monsoon", "weather_winter",
}

var stateColumns = []string{
	"state", "capital", "major_cities", "tourist_attractions", "culture", "best_time_to_visit",
}

// NewCSVStore loads both tables from files on disk.
func NewCSVStore(citiesPath, statesPath string) (*CSVStore, error) {
	citiesFile, err := os.Open(citiesPath)
	if err != nil {
		return nil, &LoadError{Source: citiesPath, Err: err}
	}
	defer citiesFile.Close()

	statesFile, err := os.Open(statesPath)
	if err != nil {
		return nil, &LoadError{Source: statesPath, Err: err}
	}
	defer statesFile.Close()

	return LoadStore(citiesFile, statesFile)
}

// LoadStore builds a store from two already-open tabular sources. Either
// source failing to parse yields a *LoadError and no store.
func LoadStore(cities, states io.Reader) (*CSVStore, error) {
	s := &CSVStore{
		cities: make(map[string]types.CityRecord),
		states: make(map[string]types.StateRecord),
	}
	if err := s.loadCities(cities); err != nil {
		return nil, err
	}
	if err := s.loadStates(states); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CSVStore) loadCities(r io.Reader) error {
	rows, idx, err := readTable(r, "cities", cityColumns)
	if err != nil {
		return err
	}
	for _, row := range rows {
		key := strings.ToLower(row[idx["city"]])
		s.cities[key] = types.CityRecord{
			State:                   row[idx["state"]],
			TravelRestrictions:      row[idx["travel_restrictions"]],
			VaccinationRequirements: row[idx["vaccination_requirements"]],
			Culture:                 row[idx["culture"]],
			Transportation:          row[idx["transportation"]],
			Weather: types.WeatherInfo{
				Summer:  row[idx["weather_summer"]],
				Monsoon: row[idx["weather_monsoon"]],
				Winter:  row[idx["weather_winter"]],
			},
		}
	}
	return nil
}

func (s *CSVStore) loadStates(r io.Reader) error {
	rows, idx, err := readTable(r, "states", stateColumns)
	if err != nil {
		return err
	}
	for _, row := range rows {
		key := strings.ToLower(row[idx["state"]])

		majorCities, err := splitList(row[idx["major_cities"]])
		if err != nil {
			return &LoadError{Source: "states", Err: fmt.Errorf("state %q major_cities: %w", key, err)}
		}
		attractions, err := splitList(row[idx["tourist_attractions"]])
		if err != nil {
			return &LoadError{Source: "states", Err: fmt.Errorf("state %q tourist_attractions: %w", key, err)}
		}

		s.states[key] = types.StateRecord{
			Capital:            row[idx["capital"]],
			MajorCities:        majorCities,
			TouristAttractions: attractions,
			Culture:            row[idx["culture"]],
			BestTimeToVisit:    row[idx["best_time_to_visit"]],
		}
	}
	return nil
}

// readTable parses a CSV source and verifies every required column is
// present. It returns the data rows and a column-name index.
func readTable(r io.Reader, source string, required []string) ([][]string, map[string]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &LoadError{Source: source, Err: err}
	}

	reader := csv.NewReader(strings.NewReader(decodeLatinFallback(raw)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Source: source, Err: err}
	}
	if len(records) == 0 {
		return nil, nil, &LoadError{Source: source, Err: fmt.Errorf("missing header row")}
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, nil, &LoadError{Source: source, Err: fmt.Errorf("missing required column %q", col)}
		}
	}
	return records[1:], idx, nil
}

// decodeLatinFallback keeps valid UTF-8 input untouched and reinterprets
// anything else as ISO-8859-1, matching the encoding the original datasets
// were distributed in.
func decodeLatinFallback(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// ISO-8859-1 decodes any byte sequence; unreachable in practice.
		return string(raw)
	}
	return string(decoded)
}

// splitList splits a pipe-delimited field, preserving order and
// duplicates. An empty field is malformed rather than an empty list.
func splitList(field string) ([]string, error) {
	if field == "" {
		return nil, fmt.Errorf("empty list field")
	}
	return strings.Split(field, "|"), nil
}

// LookupCity returns the record for an already-lowercased city name.
func (s *CSVStore) LookupCity(name string) (types.CityRecord, bool) {
	rec, ok := s.cities[name]
	return rec, ok
}

// LookupState returns the record for an already-lowercased state name.
func (s *CSVStore) LookupState(name string) (types.StateRecord, bool) {
	rec, ok := s.states[name]
	return rec, ok
}

// CityNames returns all city keys in deterministic order.
func (s *CSVStore) CityNames() []string {
	names := make([]string, 0, len(s.cities))
	for name := range s.cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StateNames returns all state keys in deterministic order.
func (s *CSVStore) StateNames() []string {
	names := make([]string, 0, len(s.states))
	for name := range s.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
