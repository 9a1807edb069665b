// Package view holds the widget's lookup state and renders it
package view

import "weather-widget/models"

// Phase tags the variant held by a LookupState
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseNotFound:
		return "notFound"
	default:
		return "unknown"
	}
}

// LookupState is one of Idle, Loading, Succeeded(result) or NotFound.
// Values are immutable; transitions build a new one
type LookupState struct {
	phase  Phase
	result models.WeatherResult
	// settled is what a Loading state falls back to when its lookup fails
	settled *LookupState
}

// Idle is the state before the first submission
func Idle() LookupState {
	return LookupState{phase: PhaseIdle}
}

// Loading is entered on every submission. It remembers the last settled
// state so that a failed lookup leaves the panel as it was
func Loading(from LookupState) LookupState {
	settled := from.Settled()
	return LookupState{phase: PhaseLoading, settled: &settled}
}

// Succeeded holds a found city's weather
func Succeeded(r models.WeatherResult) LookupState {
	return LookupState{phase: PhaseSucceeded, result: r}
}

// NotFound is shown when the API does not know the city
func NotFound() LookupState {
	return LookupState{phase: PhaseNotFound, result: models.NotFoundResult()}
}

// FromResult maps a lookup result onto Succeeded or NotFound
func FromResult(r models.WeatherResult) LookupState {
	if r.NotFound {
		return NotFound()
	}
	return Succeeded(r)
}

// Phase returns the variant tag
func (s LookupState) Phase() Phase { return s.phase }

// Result returns the weather result for Succeeded and NotFound states
func (s LookupState) Result() (models.WeatherResult, bool) {
	switch s.phase {
	case PhaseSucceeded, PhaseNotFound:
		return s.result, true
	}
	return models.WeatherResult{}, false
}

// Settled returns the state itself, or for Loading the state it replaced
func (s LookupState) Settled() LookupState {
	if s.phase != PhaseLoading {
		return s
	}
	if s.settled == nil {
		return Idle()
	}
	return *s.settled
}

// Equal reports whether two states show the same thing
func (s LookupState) Equal(o LookupState) bool {
	if s.phase != o.phase || s.result != o.result {
		return false
	}
	if s.phase == PhaseLoading {
		return s.Settled().Equal(o.Settled())
	}
	return true
}
