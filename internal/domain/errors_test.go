package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"aborted", ErrAborted, ExitOK},
		{"no log groups", ErrNoLogGroups, ExitNoLogGroup},
		{"invalid config", fmt.Errorf("%w: api", ErrInvalidConfig), ExitUsage},
		{"not interactive", ErrNotInteractive, ExitUsage},
		{"no search mode", fmt.Errorf("%w: pass --keyword", ErrNoSearchMode), ExitUsage},
		{"wrapped invalid date", fmt.Errorf("from: %w", ErrInvalidDate), ExitUsage},
		{"unknown error", errors.New("some error"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(ErrInvalidSince))
	assert.True(t, IsInputError(fmt.Errorf("wrap: %w", ErrEmptyKeyword)))
	assert.True(t, IsInputError(ErrNoIDsSelected))
	assert.False(t, IsInputError(ErrNoLogGroups))
	assert.False(t, IsInputError(errors.New("boom")))
}
