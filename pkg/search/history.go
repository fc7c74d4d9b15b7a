package search

import "slices"

// Step is a snapshot of the search after one frontier removal.
// Generated lists vertices in discovery order; Inspected lists vertices in
// expansion order.
type Step struct {
	Generated []int `json:"generated"`
	Inspected []int `json:"inspected"`
}

// History is an append-only sequence of steps.
//
// Every appended step owns copies of the slices it was given, so later
// changes to the caller's working lists never leak into recorded steps.
type History struct {
	steps []Step
}

// Append records a snapshot of generated and inspected.
func (h *History) Append(generated, inspected []int) {
	h.steps = append(h.steps, Step{
		Generated: cloneInts(generated),
		Inspected: cloneInts(inspected),
	})
}

// Len returns the number of recorded steps.
func (h *History) Len() int { return len(h.steps) }

// At returns a copy of step i. It panics if i is out of range.
func (h *History) At(i int) Step { return h.steps[i].clone() }

// Last returns a copy of the final step and false when the history is empty.
func (h *History) Last() (Step, bool) {
	if len(h.steps) == 0 {
		return Step{}, false
	}
	return h.steps[len(h.steps)-1].clone(), true
}

// Steps returns copies of every recorded step in order.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	for i, s := range h.steps {
		out[i] = s.clone()
	}
	return out
}

func (s Step) clone() Step {
	return Step{Generated: cloneInts(s.Generated), Inspected: cloneInts(s.Inspected)}
}

// cloneInts copies s, returning an empty non-nil slice for empty input so
// that JSON output shows [] rather than null.
func cloneInts(s []int) []int {
	if len(s) == 0 {
		return []int{}
	}
	return slices.Clone(s)
}
