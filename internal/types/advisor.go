package types

// WeatherInfo holds the seasonal weather description for a city.
type WeatherInfo struct {
	Summer  string `json:"summer"`
	Monsoon string `json:"monsoon"`
	Winter  string `json:"winter"`
}

// CityRecord matches one row of the cities table, keyed by the
// lowercased city name. The State field should name a row in the states
// table but is not validated against it at load time.
type CityRecord struct {
	State                   string      `json:"state"`
	TravelRestrictions      string      `json:"travel_restrictions"`
	VaccinationRequirements string      `json:"vaccination_requirements"`
	Culture                 string      `json:"culture"`
	Transportation          string      `json:"transportation"`
	Weather                 WeatherInfo `json:"weather"`
}

// StateRecord matches one row of the states table, keyed by the
// lowercased state name. MajorCities and TouristAttractions preserve the
// order of the pipe-delimited source field and are never deduplicated.
type StateRecord struct {
	Capital            string   `json:"capital"`
	MajorCities        []string `json:"major_cities"`
	TouristAttractions []string `json:"tourist_attractions"`
	Culture            string   `json:"culture"`
	BestTimeToVisit    string   `json:"best_time_to_visit"`
}

// Topic is the closed set of information categories a query can ask for.
type Topic string

const (
	TopicNone                    Topic = ""
	TopicWeather                 Topic = "weather"
	TopicTravelRestrictions      Topic = "travel_restrictions"
	TopicVaccinationRequirements Topic = "vaccination_requirements"
	TopicCulture                 Topic = "culture"
	TopicTransportation          Topic = "transportation"
	TopicTouristAttractions      Topic = "tourist_attractions"
)

// ResolvedQuery is the per-request outcome of entity resolution. At most
// one of City or State is set; both empty means no known location was
// mentioned, which is a valid outcome rather than an error.
type ResolvedQuery struct {
	City  string
	State string
}

// HasCity reports whether resolution found a known city.
func (r ResolvedQuery) HasCity() bool { return r.City != "" }

// HasState reports whether resolution found a known state (and no city).
func (r ResolvedQuery) HasState() bool { return r.State != "" }

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success envelope of POST /chat.
type ChatResponse struct {
	Reply     string `json:"reply"`
	Timestamp string `json:"timestamp"`
}
