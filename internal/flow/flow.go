// Package flow models the dashboard navigation as an explicit state machine:
// a step enum plus a pure reducer, instead of ad hoc flags.
package flow

// Step is one screen of the home → result → detail → policy flow.
type Step string

const (
	StepHome   Step = "home"
	StepResult Step = "result"
	StepDetail Step = "detail"
	StepPolicy Step = "policy"
)

// Event is a user action that may advance or rewind the flow.
type Event string

const (
	EventStart           Event = "start"            // business type chosen on home
	EventSelectCandidate Event = "select_candidate" // district picked on result map
	EventGoToPolicy      Event = "go_to_policy"
	EventBack            Event = "back"
	EventGoHome          Event = "go_home"
)

// Next is the pure reducer {state, event} -> state. Events that do not apply
// to the current step leave it unchanged.
func Next(s Step, e Event) Step {
	switch e {
	case EventStart:
		if s == StepHome {
			return StepResult
		}
	case EventSelectCandidate:
		if s == StepResult {
			return StepDetail
		}
	case EventGoToPolicy:
		if s == StepDetail {
			return StepPolicy
		}
	case EventBack:
		switch s {
		case StepResult:
			return StepHome
		case StepDetail:
			return StepResult
		case StepPolicy:
			return StepDetail
		}
	case EventGoHome:
		return StepHome
	}
	return s
}
