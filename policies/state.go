package policies

import "fmt"

// ModelState is the parameter container of a policy together with its
// update counter.
type ModelState struct {
	Params []float64
	Step   int
}

// stateParams resolves the mutable parameter slice from either state
// layout. Checkpoints written by older releases restore as a plain map
// keyed by "params" rather than a ModelState, so the accessor selects the
// path by shape instead of recovering from a fault downstream.
func stateParams(state any) ([]float64, error) {
	switch s := state.(type) {
	case *ModelState:
		return s.Params, nil
	case map[string][]float64:
		params, ok := s["params"]
		if !ok {
			return nil, fmt.Errorf("legacy model state has no params entry")
		}
		return params, nil
	default:
		return nil, fmt.Errorf("unsupported model state of type %T", state)
	}
}

// setStateParams writes parameters back into whichever state layout is
// loaded.
func setStateParams(state any, params []float64) error {
	switch s := state.(type) {
	case *ModelState:
		if len(params) != len(s.Params) {
			return fmt.Errorf("parameter size mismatch: got=%d want=%d", len(params), len(s.Params))
		}
		copy(s.Params, params)
		return nil
	case map[string][]float64:
		existing, ok := s["params"]
		if !ok {
			return fmt.Errorf("legacy model state has no params entry")
		}
		if len(params) != len(existing) {
			return fmt.Errorf("parameter size mismatch: got=%d want=%d", len(params), len(existing))
		}
		copy(existing, params)
		return nil
	default:
		return fmt.Errorf("unsupported model state of type %T", state)
	}
}
