// Package srs schedules flashcard reviews with the SM-2 algorithm.
package srs

import (
	"errors"
	"math"
	"time"

	"github.com/at-ishikawa/increader/internal/learning"
)

const (
	DefaultEasinessFactor = learning.DefaultEasiness
	MinEasinessFactor     = 1.3

	MinInterval = 1
	MaxInterval = 3650

	MinGrade = 0
	MaxGrade = 5
	// PassThreshold is the lowest grade that counts as a successful recall.
	PassThreshold = 3

	difficultyWindow = 10
)

// ErrInvalidGrade is returned when a grade is outside [0, 5].
var ErrInvalidGrade = errors.New("srs: grade must be between 0 and 5")

// ValidateGrade returns ErrInvalidGrade unless grade is in [0, 5].
func ValidateGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return ErrInvalidGrade
	}
	return nil
}

// UpdateEasinessFactor applies the SM-2 easiness update. Grade 4 leaves EF unchanged.
func UpdateEasinessFactor(ef float64, grade int) float64 {
	if ef == 0 {
		ef = DefaultEasinessFactor
	}

	q := float64(grade)
	delta := 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(ef+delta, MinEasinessFactor)
}

// CalculateNextInterval returns the next interval in days and the new repetition count.
// A failed grade resets repetitions; passes schedule 1 day, then 6 days, then previous interval * EF.
func CalculateNextInterval(prevInterval int, repetitions int, ef float64, grade int) (int, int) {
	if grade < PassThreshold {
		return MinInterval, 0
	}

	repetitions++
	var interval int
	switch repetitions {
	case 1:
		interval = 1
	case 2:
		interval = 6
	default:
		interval = int(math.RoundToEven(float64(prevInterval) * ef))
	}
	return clampInterval(interval), repetitions
}

func clampInterval(interval int) int {
	return max(MinInterval, min(MaxInterval, interval))
}

// CalculateDifficulty maps recent grades to [0, 1], newest log first.
// The i-th most recent log weighs 1/(i+1); a perfect history yields 0.
func CalculateDifficulty(recent []learning.ReviewLog) float64 {
	if len(recent) == 0 {
		return 0
	}
	if len(recent) > difficultyWindow {
		recent = recent[:difficultyWindow]
	}

	var weightedSum, totalWeight float64
	for i, log := range recent {
		weight := 1 / float64(i+1)
		weightedSum += float64(log.Grade) * weight
		totalWeight += weight
	}
	return 1 - (weightedSum/totalWeight)/5
}

// daysSince returns whole days elapsed since t, or nil if t is nil.
func daysSince(t *time.Time, now time.Time) *int {
	if t == nil {
		return nil
	}
	days := int(now.Sub(*t).Hours() / 24)
	return &days
}
