package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/increader/internal/learning"
)

func TestValidateGrade(t *testing.T) {
	for grade := MinGrade; grade <= MaxGrade; grade++ {
		assert.NoError(t, ValidateGrade(grade))
	}
	assert.ErrorIs(t, ValidateGrade(-1), ErrInvalidGrade)
	assert.ErrorIs(t, ValidateGrade(6), ErrInvalidGrade)
}

func TestUpdateEasinessFactor(t *testing.T) {
	tests := []struct {
		name  string
		ef    float64
		grade int
		want  float64
	}{
		{name: "grade 5 increases EF", ef: 2.5, grade: 5, want: 2.6},
		{name: "grade 4 keeps EF", ef: 2.5, grade: 4, want: 2.5},
		{name: "grade 3 decreases EF", ef: 2.5, grade: 3, want: 2.36},
		{name: "grade 2 decreases EF", ef: 2.5, grade: 2, want: 2.18},
		{name: "grade 0 decreases EF the most", ef: 2.5, grade: 0, want: 1.7},
		{name: "EF never drops below the floor", ef: 1.4, grade: 0, want: MinEasinessFactor},
		{name: "zero EF uses the default", ef: 0, grade: 4, want: DefaultEasinessFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UpdateEasinessFactor(tt.ef, tt.grade), 1e-9)
		})
	}
}

func TestUpdateEasinessFactor_Floor(t *testing.T) {
	ef := DefaultEasinessFactor
	for range 20 {
		ef = UpdateEasinessFactor(ef, 0)
		assert.GreaterOrEqual(t, ef, MinEasinessFactor)
	}
	assert.Equal(t, MinEasinessFactor, ef)
}

func TestCalculateNextInterval(t *testing.T) {
	tests := []struct {
		name            string
		prevInterval    int
		repetitions     int
		ef              float64
		grade           int
		wantInterval    int
		wantRepetitions int
	}{
		{name: "first pass is one day", prevInterval: 0, repetitions: 0, ef: 2.5, grade: 4, wantInterval: 1, wantRepetitions: 1},
		{name: "second pass is six days", prevInterval: 1, repetitions: 1, ef: 2.5, grade: 4, wantInterval: 6, wantRepetitions: 2},
		{name: "third pass multiplies by EF", prevInterval: 6, repetitions: 2, ef: 2.5, grade: 4, wantInterval: 15, wantRepetitions: 3},
		{name: "rounds the multiplied interval", prevInterval: 15, repetitions: 3, ef: 2.36, grade: 3, wantInterval: 35, wantRepetitions: 4},
		{name: "failure resets", prevInterval: 40, repetitions: 5, ef: 2.18, grade: 2, wantInterval: 1, wantRepetitions: 0},
		{name: "grade 0 resets", prevInterval: 6, repetitions: 2, ef: 1.7, grade: 0, wantInterval: 1, wantRepetitions: 0},
		{name: "clamps to the maximum interval", prevInterval: 3000, repetitions: 10, ef: 2.5, grade: 5, wantInterval: MaxInterval, wantRepetitions: 11},
		{name: "clamps a zero previous interval to the minimum", prevInterval: 0, repetitions: 4, ef: 2.5, grade: 4, wantInterval: MinInterval, wantRepetitions: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotInterval, gotRepetitions := CalculateNextInterval(tt.prevInterval, tt.repetitions, tt.ef, tt.grade)
			assert.Equal(t, tt.wantInterval, gotInterval)
			assert.Equal(t, tt.wantRepetitions, gotRepetitions)
		})
	}
}

func TestCalculateDifficulty(t *testing.T) {
	logs := func(grades ...int) []learning.ReviewLog {
		result := make([]learning.ReviewLog, len(grades))
		for i, g := range grades {
			result[i] = learning.ReviewLog{Grade: g}
		}
		return result
	}

	tests := []struct {
		name string
		logs []learning.ReviewLog
		want float64
	}{
		{name: "no logs", logs: nil, want: 0},
		{name: "perfect history", logs: logs(5, 5, 5), want: 0},
		{name: "all failures", logs: logs(0, 0), want: 1},
		{name: "single grade 4", logs: logs(4), want: 0.2},
		// (5*1 + 0*0.5) / 1.5 = 3.333, 1 - 3.333/5 = 0.333
		{name: "recent grades weigh more", logs: logs(5, 0), want: 1.0 / 3},
		{name: "only the ten most recent count", logs: logs(5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 0, 0, 0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDifficulty(tt.logs)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, daysSince(nil, now))

	last := now.Add(-(3*24 + 5) * time.Hour)
	got := daysSince(&last, now)
	if assert.NotNil(t, got) {
		assert.Equal(t, 3, *got)
	}
}
