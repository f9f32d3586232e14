package progression

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
)

// Suggestion is the proposed next session for a scope. WeightUnavailable is
// set when no weight could be derived; SuggestedWeight is zero then and goes
// out as `"suggestedWeight": false`.
type Suggestion struct {
	UserID            int       `json:"userId"`
	ExerciseID        string    `json:"exerciseId"`
	Strategy          string    `json:"strategy"`
	SuggestedWeight   float64   `json:"suggestedWeight"`
	WeightUnavailable bool      `json:"weightUnavailable"`
	SuggestedReps     int       `json:"suggestedReps"`
	SuggestedSets     int       `json:"suggestedSets"`
	LastWeight        float64   `json:"lastWeight"`
	LastReps          int       `json:"lastReps"`
	LastSets          int       `json:"lastSets"`
	BasedOnLogID      int       `json:"basedOnLogId"`
	LastLoggedAt      time.Time `json:"lastLoggedAt"`
}

func newSuggestion(strategy string, last liftlogs.LiftLog) Suggestion {
	return Suggestion{
		UserID:        last.UserID,
		ExerciseID:    last.ExerciseID,
		Strategy:      strategy,
		SuggestedSets: len(last.Sets),
		LastSets:      len(last.Sets),
		BasedOnLogID:  last.ID,
		LastLoggedAt:  last.LoggedAt,
	}
}

// suggestionJSON has Suggestion's fields; SuggestedWeight is shadowed on the wire.
type suggestionJSON Suggestion

func (s Suggestion) MarshalJSON() ([]byte, error) {
	var weight any = s.SuggestedWeight
	if s.WeightUnavailable {
		weight = false
	}
	return json.Marshal(struct {
		suggestionJSON
		SuggestedWeight any `json:"suggestedWeight"`
	}{
		suggestionJSON:  suggestionJSON(s),
		SuggestedWeight: weight,
	})
}

func (s *Suggestion) UnmarshalJSON(data []byte) error {
	aux := struct {
		*suggestionJSON
		SuggestedWeight json.RawMessage `json:"suggestedWeight"`
	}{
		suggestionJSON: (*suggestionJSON)(s),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.SuggestedWeight)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		s.SuggestedWeight = 0
	case bytes.Equal(raw, []byte("false")):
		s.SuggestedWeight = 0
		s.WeightUnavailable = true
	default:
		if err := json.Unmarshal(raw, &s.SuggestedWeight); err != nil {
			return fmt.Errorf("suggestedWeight: %w", err)
		}
	}
	return nil
}
