package advisor

import (
	"strings"

	"github.com/indyatra/travel-advisor/internal/types"
)

// topicRules are evaluated top to bottom; the first matching substring
// wins, so earlier keywords take priority over later ones. Matching is
// plain substring containment on the lowercased message, with no word
// boundaries, to stay compatible with the historical behavior.
var topicRules = []struct {
	keyword string
	topic   types.Topic
}{
	{"weather", types.TopicWeather},
	{"travel restrictions", types.TopicTravelRestrictions},
	{"vaccination", types.TopicVaccinationRequirements},
	{"culture", types.TopicCulture},
	{"transportation", types.TopicTransportation},
	{"tourist attractions", types.TopicTouristAttractions},
}

// ClassifyTopic decides which single information category the message asks
// for, or TopicNone when no keyword is present. Purely lexical; it never
// infers a topic from the locations mentioned.
func ClassifyTopic(text string) types.Topic {
	lowered := strings.ToLower(text)
	for _, rule := range topicRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.topic
		}
	}
	return types.TopicNone
}
