package learning

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrNoCloze is returned when the cloze text has no [answer] marker.
var ErrNoCloze = errors.New("learning: no cloze deletion found")

const clozeBlank = "___"

var clozePattern = regexp.MustCompile(`\[(.*?)\]`)

// NewClozeItem builds an unscheduled cloze item from text such as "Go was released in [2009]".
// Every occurrence of the first marked answer is blanked; the item inherits the extract's priority.
func NewClozeItem(extract Extract, text string, hint string, now time.Time) (*LearningItem, error) {
	match := clozePattern.FindStringSubmatch(text)
	if match == nil {
		return nil, ErrNoCloze
	}

	answer := match[1]
	question := strings.ReplaceAll(text, "["+answer+"]", clozeBlank)
	if hint != "" {
		question += " (Hint: " + hint + ")"
	}

	return &LearningItem{
		ExtractID:   extract.ID,
		ItemType:    ItemTypeCloze,
		Question:    question,
		Answer:      answer,
		Interval:    0,
		Repetitions: 0,
		Easiness:    DefaultEasiness,
		Priority:    extract.Priority,
		CreatedAt:   now,
	}, nil
}
