package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleStateFor(t *testing.T) {
	tests := []struct {
		repetitions int
		want        ScheduleState
	}{
		{repetitions: 0, want: ScheduleStateNew},
		{repetitions: 1, want: ScheduleStateLearning},
		{repetitions: 2, want: ScheduleStateLearning},
		{repetitions: 3, want: ScheduleStateReview},
		{repetitions: 12, want: ScheduleStateReview},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScheduleStateFor(tt.repetitions), "repetitions=%d", tt.repetitions)
	}
}
