package termhunt

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", fmt.Errorf("missing scenario: %w", ErrUsage), ExitUsageError},
		{"config", ErrInvalidConfig, ExitConfigError},
		{"wrapped config", fmt.Errorf("countdown: %w", ErrInvalidConfig), ExitConfigError},
		{"scenario not found", fmt.Errorf("load %q: %w", "nope", ErrScenarioNotFound), ExitScenarioNotFound},
		{"invalid scenario", ErrInvalidScenario, ExitScenarioInvalid},
		{"not interactive", ErrNotInteractive, ExitNotInteractive},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
