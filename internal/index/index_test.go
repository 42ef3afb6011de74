package index

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sandevgo/bankassist/internal/corpus"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors map[string][]float32
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	vec, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embedder down")
}

func entry(q, a string) corpus.Entry {
	return corpus.Entry{Question: q, Answer: a, Combined: q + " " + a}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	_, err := Build(context.Background(), nil, &fakeEmbedder{})
	if !errors.Is(err, corpus.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestBuild_OneProviderCallPerRow(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"a b": {1, 0},
		"c d": {0, 1},
	}}
	entries := []corpus.Entry{entry("a", "b"), entry("c", "d")}

	ix, err := Build(context.Background(), entries, emb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emb.calls != 2 {
		t.Errorf("expected 2 embed calls, got %d", emb.calls)
	}
	if ix.Size() != 2 {
		t.Errorf("expected size 2, got %d", ix.Size())
	}
}

func TestRetrieve_ReturnsArgmax(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"hours 9am-5pm":     {1, 0, 0},
		"fees none":         {0, 1, 0},
		"cards visa":        {0, 0, 1},
		"when are you open": {0.9, 0.1, 0},
	}}
	entries := []corpus.Entry{
		entry("hours", "9am-5pm"),
		entry("fees", "none"),
		entry("cards", "visa"),
	}

	ix, err := Build(context.Background(), entries, emb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := ix.Retrieve(context.Background(), "when are you open")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Pos != 0 {
		t.Errorf("expected position 0, got %d", match.Pos)
	}
	if match.Entry.Answer != "9am-5pm" {
		t.Errorf("unexpected entry: %+v", match.Entry)
	}
	if match.Score <= 0 {
		t.Errorf("expected positive similarity, got %f", match.Score)
	}
}

func TestRetrieve_TieBreaksToFirstInCorpusOrder(t *testing.T) {
	same := []float32{1, 1, 0}
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"first copy":  same,
		"second copy": same,
		"query":       {1, 1, 0},
	}}
	entries := []corpus.Entry{entry("first", "copy"), entry("second", "copy")}

	ix, err := Build(context.Background(), entries, emb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := ix.Retrieve(context.Background(), "query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Pos != 0 {
		t.Errorf("tie should resolve to first entry, got position %d", match.Pos)
	}
}

func TestRetrieve_SingleEntryAlwaysWins(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"What are your hours? 9am-5pm": {0.8, 0.2},
		"When are you open?":           {0.7, 0.3},
	}}
	entries := []corpus.Entry{entry("What are your hours?", "9am-5pm")}

	ix, err := Build(context.Background(), entries, emb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := ix.Retrieve(context.Background(), "When are you open?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Entry.Question != "What are your hours?" {
		t.Errorf("unexpected match: %+v", match.Entry)
	}
	if match.Score <= 0 {
		t.Errorf("expected positive similarity, got %f", match.Score)
	}
}

func TestRetrieve_EmbedderFailure(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{"a b": {1}}}
	ix, err := Build(context.Background(), []corpus.Entry{entry("a", "b")}, emb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ix.embedder = failingEmbedder{}

	if _, err := ix.Retrieve(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from failing embedder")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "length mismatch", a: []float32{1, 0}, b: []float32{1}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}
