package index

import (
	"context"
	"fmt"
	"math"

	"github.com/sandevgo/bankassist/internal/corpus"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
)

// Match is the best-scoring corpus entry for a query.
type Match struct {
	Entry corpus.Entry
	Score float64
	Pos   int
}

// Index holds one embedding per corpus entry, aligned by position.
// Read-only after Build, safe for concurrent Retrieve calls.
type Index struct {
	entries    []corpus.Entry
	embeddings [][]float32
	embedder   core.Embedder
}

// Build embeds every corpus entry once. One provider call per row.
func Build(ctx context.Context, entries []corpus.Entry, embedder core.Embedder) (*Index, error) {
	if len(entries) == 0 {
		return nil, corpus.ErrEmptyCorpus
	}

	embeddings := make([][]float32, len(entries))
	for i, e := range entries {
		vec, err := embedder.Embed(ctx, e.Combined)
		if err != nil {
			return nil, fmt.Errorf("failed to embed corpus entry %d: %w", i, err)
		}
		embeddings[i] = vec
	}

	log.FromCtx(ctx).Info().Int("entries", len(entries)).Msg("embedding index built")

	return &Index{
		entries:    entries,
		embeddings: embeddings,
		embedder:   embedder,
	}, nil
}

// Retrieve embeds the question and returns the entry with the highest cosine
// similarity. Ties resolve to the earliest corpus position. There is no
// similarity floor: the top match is returned even when weakly related.
func (ix *Index) Retrieve(ctx context.Context, question string) (Match, error) {
	vec, err := ix.embedder.Embed(ctx, question)
	if err != nil {
		return Match{}, fmt.Errorf("failed to embed question: %w", err)
	}

	best := 0
	bestScore := cosineSimilarity(vec, ix.embeddings[0])
	for i := 1; i < len(ix.embeddings); i++ {
		if score := cosineSimilarity(vec, ix.embeddings[i]); score > bestScore {
			best = i
			bestScore = score
		}
	}

	return Match{
		Entry: ix.entries[best],
		Score: bestScore,
		Pos:   best,
	}, nil
}

func (ix *Index) Size() int {
	return len(ix.entries)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
