package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Entry is one FAQ row from the corpus file. Immutable after load.
type Entry struct {
	Question string
	Answer   string
	Combined string
}

var (
	ErrEmptyCorpus    = errors.New("corpus contains no entries")
	ErrMissingColumns = errors.New("corpus is missing required columns")
)

const (
	questionColumn = "Question"
	answerColumn   = "Answer"
)

// Load reads all FAQ entries from a CSV file with required columns
// "Question" and "Answer". Column order is not significant. Every row must
// carry both fields; a malformed row fails the whole load rather than being
// dropped. Slice order follows file order and is the index alignment
// contract for the embedding index.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	qIdx, aIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")) {
		case questionColumn:
			qIdx = i
		case answerColumn:
			aIdx = i
		}
	}
	if qIdx < 0 || aIdx < 0 {
		return nil, fmt.Errorf("%w: need %q and %q, got %v", ErrMissingColumns, questionColumn, answerColumn, header)
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus rows: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		if qIdx >= len(rec) || aIdx >= len(rec) {
			return nil, fmt.Errorf("corpus row %d has too few fields", i+2)
		}
		q := strings.TrimSpace(rec[qIdx])
		a := strings.TrimSpace(rec[aIdx])
		if q == "" || a == "" {
			return nil, fmt.Errorf("corpus row %d is missing question or answer", i+2)
		}
		entries = append(entries, Entry{
			Question: q,
			Answer:   a,
			Combined: q + " " + a,
		})
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}
	return entries, nil
}
