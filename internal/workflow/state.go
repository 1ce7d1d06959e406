package workflow

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/bellman/internal/campaigns"
)

// KeyRunState is the state bag key holding the campaign RunState.
const KeyRunState = "run_state"

// RunState accumulates the campaign pipeline's intermediate and final
// artifacts as it moves through the state graph.
type RunState struct {
	Request     campaigns.Request
	RequestID   string
	SkipClarify bool

	NeedsClarification bool
	Questions          []campaigns.ClarificationQuestion

	Research  map[string]any
	Blueprint campaigns.Blueprint
	Assets    []campaigns.EmailAsset
	Critique  campaigns.CritiqueResult
	Timings   campaigns.PhaseTimings

	Response *campaigns.Response
}

func extractRunState(s state.State) (*RunState, error) {
	val, ok := s.Get(KeyRunState)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyRunState)
	}

	rs, ok := val.(RunState)
	if !ok {
		return nil, fmt.Errorf("%s is not RunState", KeyRunState)
	}

	return &rs, nil
}

// ms returns elapsed wall-clock time in milliseconds, rounded to one
// decimal place.
func ms(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*1000*10) / 10
}

func msPtr(v float64) *float64 {
	return &v
}

// decode converts a loosely-typed parsed response into a concrete type via
// a JSON round trip.
func decode[T any](m map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(m)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
