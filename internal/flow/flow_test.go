package flow

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		state Step
		event Event
		want  Step
	}{
		// Forward path
		{StepHome, EventStart, StepResult},
		{StepResult, EventSelectCandidate, StepDetail},
		{StepDetail, EventGoToPolicy, StepPolicy},

		// Back walks one step
		{StepResult, EventBack, StepHome},
		{StepDetail, EventBack, StepResult},
		{StepPolicy, EventBack, StepDetail},
		{StepHome, EventBack, StepHome},

		// Home resets from anywhere
		{StepHome, EventGoHome, StepHome},
		{StepResult, EventGoHome, StepHome},
		{StepDetail, EventGoHome, StepHome},
		{StepPolicy, EventGoHome, StepHome},

		// Out-of-order events leave the state unchanged
		{StepHome, EventSelectCandidate, StepHome},
		{StepHome, EventGoToPolicy, StepHome},
		{StepResult, EventStart, StepResult},
		{StepResult, EventGoToPolicy, StepResult},
		{StepDetail, EventStart, StepDetail},
		{StepDetail, EventSelectCandidate, StepDetail},
		{StepPolicy, EventStart, StepPolicy},
		{StepPolicy, EventSelectCandidate, StepPolicy},
	}

	for _, tt := range tests {
		if got := Next(tt.state, tt.event); got != tt.want {
			t.Errorf("Next(%s, %s) = %s, want %s", tt.state, tt.event, got, tt.want)
		}
	}
}
