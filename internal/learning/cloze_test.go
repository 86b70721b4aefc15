package learning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClozeItem(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	extract := Extract{ID: 3, DocumentID: 1, Content: "Go was released in 2009", Priority: 70}

	tests := []struct {
		name         string
		text         string
		hint         string
		wantQuestion string
		wantAnswer   string
		wantErr      error
	}{
		{
			name:         "blanks the marked answer",
			text:         "Go was released in [2009]",
			wantQuestion: "Go was released in ___",
			wantAnswer:   "2009",
		},
		{
			name:         "appends a hint",
			text:         "The [GC] runs concurrently",
			hint:         "memory",
			wantQuestion: "The ___ runs concurrently (Hint: memory)",
			wantAnswer:   "GC",
		},
		{
			name:         "blanks every occurrence of the first answer only",
			text:         "[Go] is Go, not [Rust] or [Go]",
			wantQuestion: "___ is Go, not [Rust] or ___",
			wantAnswer:   "Go",
		},
		{
			name:    "no marker",
			text:    "Go was released in 2009",
			wantErr: ErrNoCloze,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClozeItem(extract, tt.text, tt.hint, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &LearningItem{
				ExtractID: 3,
				ItemType:  ItemTypeCloze,
				Question:  tt.wantQuestion,
				Answer:    tt.wantAnswer,
				Easiness:  DefaultEasiness,
				Priority:  70,
				CreatedAt: now,
			}, got)
			assert.True(t, got.IsNew())
		})
	}
}
