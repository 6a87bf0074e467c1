package advisor

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/indyatra/travel-advisor/internal/types"
)

const (
	// clarificationReply is returned whenever no known location was
	// resolved, regardless of any topic keywords in the message.
	clarificationReply = "Sorry, I couldn't understand the location or information type in your query. " +
		"Please ask about a city or state and specify the type of information you're interested in, " +
		"such as weather, culture, or tourist attractions."

	cityAspectUnavailable  = "Specific information not available for this aspect of the city."
	stateAspectUnavailable = "Information not available."
)

// titleCase renders a lowercased gazetteer key for display. A Caser is
// stateful and not safe to share across requests, so build one per call.
func titleCase(name string) string {
	return cases.Title(language.English).String(name)
}

// Compose turns a resolved location and topic into the reply text. It
// always returns a complete reply; unresolvable inputs get the fixed
// clarification message rather than a partial answer.
func Compose(resolved types.ResolvedQuery, topic types.Topic, store Store) string {
	switch {
	case resolved.HasCity():
		rec, ok := store.LookupCity(resolved.City)
		if !ok {
			// Resolution only succeeds against known keys, so this
			// branch is unreachable under the resolver's contract.
			return clarificationReply
		}
		return composeCity(resolved.City, rec, topic)

	case resolved.HasState():
		rec, ok := store.LookupState(resolved.State)
		if !ok {
			return clarificationReply
		}
		return composeState(resolved.State, rec, topic)

	default:
		return clarificationReply
	}
}

func composeCity(name string, rec types.CityRecord, topic types.Topic) string {
	display := titleCase(name)

	switch topic {
	case types.TopicNone:
		return fmt.Sprintf(
			"Here is some general information about %s: State: %s, Travel Restrictions: %s, "+
				"Vaccination Requirements: %s, Culture: %s, Transportation: %s, "+
				"Weather: Summer: %s, Monsoon: %s, Winter: %s",
			display, rec.State, rec.TravelRestrictions, rec.VaccinationRequirements,
			rec.Culture, rec.Transportation,
			rec.Weather.Summer, rec.Weather.Monsoon, rec.Weather.Winter,
		)
	case types.TopicWeather:
		return fmt.Sprintf("Weather in %s:\nSummer: %s\nMonsoon: %s\nWinter: %s",
			display, rec.Weather.Summer, rec.Weather.Monsoon, rec.Weather.Winter)
	default:
		value, ok := cityField(rec, topic)
		if !ok {
			return cityAspectUnavailable
		}
		return value
	}
}

func composeState(name string, rec types.StateRecord, topic types.Topic) string {
	display := titleCase(name)

	if topic == types.TopicNone {
		return fmt.Sprintf(
			"Here is some general information about %s: Capital: %s, Major Cities: %s, "+
				"Tourist Attractions: %s, Culture: %s, Best Time to Visit: %s",
			display, rec.Capital,
			strings.Join(rec.MajorCities, ", "),
			strings.Join(rec.TouristAttractions, ", "),
			rec.Culture, rec.BestTimeToVisit,
		)
	}

	value, ok := stateField(rec, topic)
	if !ok {
		value = stateAspectUnavailable
	}
	return fmt.Sprintf("Here is some specific information about %s: %s", display, value)
}

// cityField maps a topic to the matching city record field. Topics that
// only exist on state records (tourist attractions) report absent.
func cityField(rec types.CityRecord, topic types.Topic) (string, bool) {
	switch topic {
	case types.TopicTravelRestrictions:
		return rec.TravelRestrictions, true
	case types.TopicVaccinationRequirements:
		return rec.VaccinationRequirements, true
	case types.TopicCulture:
		return rec.Culture, true
	case types.TopicTransportation:
		return rec.Transportation, true
	default:
		return "", false
	}
}

// stateField maps a topic to the matching state record field. State
// records carry no weather, restriction, vaccination, or transportation
// data, so those topics report absent.
func stateField(rec types.StateRecord, topic types.Topic) (string, bool) {
	switch topic {
	case types.TopicCulture:
		return rec.Culture, true
	case types.TopicTouristAttractions:
		return strings.Join(rec.TouristAttractions, ", "), true
	default:
		return "", false
	}
}
