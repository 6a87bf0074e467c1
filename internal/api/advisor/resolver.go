package advisor

import (
	"strings"

	"github.com/indyatra/travel-advisor/internal/api/ner"
	"github.com/indyatra/travel-advisor/internal/types"
)

// Resolver maps free text to a known city or state key. The recognizer
// proposes location-like spans; gazetteer membership decides which of them
// the service can actually answer about.
type Resolver struct {
	recognizer ner.Recognizer
	store      Store
}

func NewResolver(recognizer ner.Recognizer, store Store) *Resolver {
	return &Resolver{
		recognizer: recognizer,
		store:      store,
	}
}

// Resolve returns the first known city among the candidate spans, in
// recognizer order. A city match ends the scan immediately, so a query
// naming both a known city and a known state resolves to the city when the
// city span is seen no later than the state span. If no candidate is a
// known city, the first known state wins. No match at all is the valid
// "unrecognized location" outcome, not an error.
func (r *Resolver) Resolve(text string) types.ResolvedQuery {
	var resolved types.ResolvedQuery

	lowered := strings.ToLower(text)
	for _, span := range r.recognizer.Recognize(lowered) {
		candidate := strings.ToLower(span)
		if _, ok := r.store.LookupCity(candidate); ok {
			resolved.City = candidate
			return resolved
		}
		if resolved.State == "" {
			if _, ok := r.store.LookupState(candidate); ok {
				resolved.State = candidate
			}
		}
	}
	return resolved
}
