package stat

import (
	sent "github.com/revelaction/sentcomp/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumExamples  int
	NumTokens    int
	NumKept      int
	NumUnmatched int

	// NumFullyMatched counts examples whose compression tokens were all
	// aligned.
	NumFullyMatched int

	TokensPerExampleMean int
	TokensPerExampleDis  map[int]int

	// KeepRatio is the fraction of tokens labeled KEEP
	KeepRatio float64
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerExampleDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Add aggregates a single example.
func (h *Handler) Add(ex sent.Example) {
	h.stats.NumExamples++
	h.stats.NumTokens += len(ex.Tokens)
	h.stats.NumKept += len(ex.Kept())
	h.stats.NumUnmatched += ex.Unmatched
	h.stats.TokensPerExampleDis[len(ex.Tokens)]++

	if ex.Unmatched == 0 {
		h.stats.NumFullyMatched++
	}

	h.stats.TokensPerExampleMean = h.stats.NumTokens / h.stats.NumExamples
	if h.stats.NumTokens > 0 {
		h.stats.KeepRatio = float64(h.stats.NumKept) / float64(h.stats.NumTokens)
	}
}

func (h *Handler) Aggregate(dataset sent.Dataset) {
	for _, ex := range dataset {
		h.Add(ex)
	}
}
