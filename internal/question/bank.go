package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/logger"
)

// ErrDataUnavailable is returned when the question bank cannot be read or
// parsed.
var ErrDataUnavailable = errors.New("question bank unavailable")

// BlockedID is a disputed question that never appears, whatever the
// configuration says.
const BlockedID = "034"

// Excluder reports ids that should be left out of a load.
type Excluder interface {
	Contains(id string) bool
}

// IDs is a plain id set usable as an Excluder.
type IDs map[string]bool

func (s IDs) Contains(id string) bool { return s[id] }

// Bank reads questions from a JSON file.
type Bank struct {
	path    string
	blocked map[string]bool
}

// NewBank creates a Bank backed by the file at path. Extra ids are blocked
// in addition to BlockedID.
func NewBank(path string, blocked ...string) *Bank {
	b := &Bank{
		path:    path,
		blocked: map[string]bool{BlockedID: true},
	}
	for _, id := range blocked {
		if id != "" {
			b.blocked[id] = true
		}
	}
	return b
}

// Path returns the bank file location.
func (b *Bank) Path() string {
	return b.path
}

// Load reads the whole bank and drops blocked ids and every id reported by
// exclude. exclude may be nil.
func (b *Bank) Load(exclude Excluder) ([]Question, error) {
	all, err := b.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(all))
	for _, q := range all {
		if b.blocked[q.ID] {
			continue
		}
		if exclude != nil && exclude.Contains(q.ID) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// LoadAll reads the bank without applying any exclusion. Duplicate ids keep
// their first occurrence.
func (b *Bank) LoadAll() ([]Question, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDataUnavailable, b.path, err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw bank JSON.
func Parse(raw []byte) ([]Question, error) {
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrDataUnavailable, err)
	}

	seen := make(map[string]bool, len(qs))
	out := qs[:0]
	for _, q := range qs {
		if seen[q.ID] {
			logger.Get().Warn("duplicate question id in bank, keeping first", zap.String("id", q.ID))
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out, nil
}
