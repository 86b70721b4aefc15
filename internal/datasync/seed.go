package datasync

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/learning"
)

// Seed is the YAML file format accepted by the importer.
//
//	documents:
//	  - title: Go memory model
//	    category: Programming
//	    priority: 70
//	    tags: [go, concurrency]
//	    extracts:
//	      - content: A send on a channel happens before the receive completes.
//	        items:
//	          - question: What happens before a channel receive completes?
//	            answer: The corresponding send
//	        clozes:
//	          - text: A send on a channel [happens before] the receive completes.
type Seed struct {
	Documents []SeedDocument `yaml:"documents" validate:"dive"`
}

type SeedDocument struct {
	Title    string        `yaml:"title" validate:"required"`
	Category string        `yaml:"category"`
	Priority int           `yaml:"priority" validate:"omitempty,min=1,max=100"`
	Tags     []string      `yaml:"tags" validate:"dive,required"`
	Extracts []SeedExtract `yaml:"extracts" validate:"dive"`
}

type SeedExtract struct {
	Content  string      `yaml:"content" validate:"required"`
	Priority int         `yaml:"priority" validate:"omitempty,min=1,max=100"`
	Items    []SeedItem  `yaml:"items" validate:"dive"`
	Clozes   []SeedCloze `yaml:"clozes" validate:"dive"`
}

type SeedItem struct {
	Type     learning.ItemType `yaml:"type" validate:"omitempty,oneof=qa image"`
	Question string            `yaml:"question" validate:"required"`
	Answer   string            `yaml:"answer" validate:"required"`
}

type SeedCloze struct {
	Text string `yaml:"text" validate:"required"`
	Hint string `yaml:"hint"`
}

// LoadSeed decodes and validates a seed. Unknown keys are rejected.
func LoadSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoder.Decode() > %w", err)
	}

	validate, err := config.NewValidator("yaml")
	if err != nil {
		return nil, fmt.Errorf("config.NewValidator() > %w", err)
	}
	if err := validate.Struct(seed); err != nil {
		return nil, fmt.Errorf("validate.Struct() > %w", err)
	}
	return &seed, nil
}

// LoadSeedFile reads a seed from a YAML file.
func LoadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	seed, err := LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("LoadSeed(%s) > %w", path, err)
	}
	return seed, nil
}
