package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indyatra/travel-advisor/internal/types"
)

func TestComposeCity(t *testing.T) {
	store := newFixtureStore(t)

	t.Run("WeatherBlock", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{City: "delhi"}, types.TopicWeather, store)
		assert.Equal(t, "Weather in Delhi:\nSummer: Very hot 35-45C\nMonsoon: Humid 25-35C\nWinter: Cool 5-25C", reply)
	})

	t.Run("NamedField", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{City: "delhi"}, types.TopicCulture, store)
		assert.Equal(t, "Historic sites like Red Fort", reply)
	})

	t.Run("FieldAbsentOnCity", func(t *testing.T) {
		// Cities have no tourist_attractions field.
		reply := Compose(types.ResolvedQuery{City: "delhi"}, types.TopicTouristAttractions, store)
		assert.Equal(t, cityAspectUnavailable, reply)
	})

	t.Run("GeneralInfoDump", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{City: "delhi"}, types.TopicNone, store)
		assert.Contains(t, reply, "Here is some general information about Delhi")
		// The dump embeds the whole record, including the state field.
		assert.Contains(t, reply, "Delhi")
		assert.Contains(t, reply, "Metro and buses")
		assert.Contains(t, reply, "Very hot 35-45C")
	})

	t.Run("UnknownCityFallsThrough", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{City: "atlantis"}, types.TopicWeather, store)
		assert.Equal(t, clarificationReply, reply)
	})
}

func TestComposeState(t *testing.T) {
	store := newFixtureStore(t)

	t.Run("GeneralInfo", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{State: "rajasthan"}, types.TopicNone, store)
		assert.Contains(t, reply, "Here is some general information about Rajasthan")
		assert.Contains(t, reply, "Capital: Jaipur")
		assert.Contains(t, reply, "Udaipur")
		assert.Contains(t, reply, "Thar Desert")
		assert.Contains(t, reply, "October to March")
	})

	t.Run("NamedField", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{State: "rajasthan"}, types.TopicCulture, store)
		assert.Equal(t, "Here is some specific information about Rajasthan: Ghoomar dance culture", reply)
	})

	t.Run("AttractionsJoined", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{State: "rajasthan"}, types.TopicTouristAttractions, store)
		assert.Equal(t, "Here is some specific information about Rajasthan: Amber Fort, Thar Desert", reply)
	})

	t.Run("FieldAbsentOnState", func(t *testing.T) {
		// States carry no weather data.
		reply := Compose(types.ResolvedQuery{State: "rajasthan"}, types.TopicWeather, store)
		assert.Equal(t, "Here is some specific information about Rajasthan: "+stateAspectUnavailable, reply)
	})

	t.Run("UnknownStateFallsThrough", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{State: "narnia"}, types.TopicNone, store)
		assert.Equal(t, clarificationReply, reply)
	})
}

func TestComposeFallback(t *testing.T) {
	store := newFixtureStore(t)

	t.Run("NoLocation", func(t *testing.T) {
		reply := Compose(types.ResolvedQuery{}, types.TopicNone, store)
		assert.Equal(t, clarificationReply, reply)
	})

	t.Run("TopicWithoutLocation", func(t *testing.T) {
		// Topic keywords alone never bypass the clarification message.
		reply := Compose(types.ResolvedQuery{}, types.TopicWeather, store)
		assert.Equal(t, clarificationReply, reply)
	})
}

// TestComposeEveryCity checks the two reply shapes that must hold for
// every city in the store: the bare-name query yields the general dump
// including the city's state, and the weather query yields all three
// seasonal lines.
func TestComposeEveryCity(t *testing.T) {
	store := newFixtureStore(t)
	resolver := newFixtureResolver(store)

	for _, name := range store.CityNames() {
		t.Run(name, func(t *testing.T) {
			rec, ok := store.LookupCity(name)
			require.True(t, ok)

			resolved := resolver.Resolve(name)
			require.Equal(t, name, resolved.City)

			general := Compose(resolved, ClassifyTopic(name), store)
			assert.Contains(t, general, "general information about")
			assert.Contains(t, general, rec.State)

			weatherMsg := "weather in " + name
			weather := Compose(resolver.Resolve(weatherMsg), ClassifyTopic(weatherMsg), store)
			assert.Contains(t, weather, "Summer: "+rec.Weather.Summer)
			assert.Contains(t, weather, "Monsoon: "+rec.Weather.Monsoon)
			assert.Contains(t, weather, "Winter: "+rec.Weather.Winter)
		})
	}
}

// TestComposeScenarios covers the end-to-end fixture conversations through
// the resolve/classify/compose pipeline.
func TestComposeScenarios(t *testing.T) {
	store := newFixtureStore(t)
	resolver := newFixtureResolver(store)

	run := func(message string) string {
		return Compose(resolver.Resolve(message), ClassifyTopic(message), store)
	}

	t.Run("DelhiWeather", func(t *testing.T) {
		reply := run("What is the weather like in Delhi?")
		require.Contains(t, reply, "Weather in Delhi:")
		assert.Contains(t, reply, "Summer: Very hot 35-45C")
		assert.Contains(t, reply, "Monsoon: Humid 25-35C")
		assert.Contains(t, reply, "Winter: Cool 5-25C")
	})

	t.Run("AboutRajasthan", func(t *testing.T) {
		reply := run("Tell me about Rajasthan")
		assert.Contains(t, reply, "Jaipur")
		assert.Contains(t, reply, "Udaipur")
		assert.Contains(t, reply, "Thar Desert")
	})

	t.Run("Hello", func(t *testing.T) {
		assert.Equal(t, clarificationReply, run("hello"))
	})
}
