package datasync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/increader/internal/learning"
)

func TestLoadSeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Seed
		wantErr string
	}{
		{
			name: "documents with extracts and items",
			input: `
documents:
  - title: Go memory model
    category: Programming
    priority: 70
    tags: [go, concurrency]
    extracts:
      - content: A send happens before the receive completes.
        items:
          - question: What happens first?
            answer: The send
            type: qa
        clozes:
          - text: A send [happens before] the receive.
            hint: ordering
`,
			want: &Seed{Documents: []SeedDocument{{
				Title:    "Go memory model",
				Category: "Programming",
				Priority: 70,
				Tags:     []string{"go", "concurrency"},
				Extracts: []SeedExtract{{
					Content: "A send happens before the receive completes.",
					Items:   []SeedItem{{Type: learning.ItemTypeQA, Question: "What happens first?", Answer: "The send"}},
					Clozes:  []SeedCloze{{Text: "A send [happens before] the receive.", Hint: "ordering"}},
				}},
			}}},
		},
		{
			name:  "empty input",
			input: "",
			want:  &Seed{},
		},
		{
			name:    "unknown field",
			input:   "documents:\n  - title: A\n    author: someone\n",
			wantErr: "field author not found",
		},
		{
			name:    "missing title",
			input:   "documents:\n  - priority: 10\n",
			wantErr: "title is a required field",
		},
		{
			name:    "priority out of range",
			input:   "documents:\n  - title: A\n    priority: 101\n",
			wantErr: "priority must be 100 or less",
		},
		{
			name:    "cloze type is not accepted for items",
			input:   "documents:\n  - title: A\n    extracts:\n      - content: c\n        items:\n          - {type: cloze, question: q, answer: a}\n",
			wantErr: "type must be one of [qa image]",
		},
		{
			name:    "item without an answer",
			input:   "documents:\n  - title: A\n    extracts:\n      - content: c\n        items:\n          - {question: q}\n",
			wantErr: "answer is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSeed(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte("documents:\n  - title: A\n"), 0o600))

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Seed{Documents: []SeedDocument{{Title: "A"}}}, got)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
