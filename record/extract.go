package record

import (
	"sort"

	sent "github.com/revelaction/sentcomp/sentence"
)

// SentenceTokens recovers the words of the sentence from the token graph.
//
// The node order of the graph does not follow the word order, so the words
// are sorted by id. Words with the sentinel id are discarded and only the
// first word is kept when a graph yields the same id more than once.
func SentenceTokens(g *Graph) []sent.Token {
	if g == nil {
		return nil
	}

	var tokens []sent.Token
	for _, node := range g.Node {
		for _, w := range node.Word {
			if w.Id == nil || *w.Id == sent.SentinelId {
				continue
			}

			tokens = append(tokens, sent.Token{
				Id:   *w.Id,
				Form: value(w.Form),
				Tag:  value(w.Tag),
				Stem: value(w.Stem),
			})
		}
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Id < tokens[j].Id
	})

	// remove duplicate ids, in place
	unique := tokens[:0]
	for _, t := range tokens {
		if len(unique) > 0 && unique[len(unique)-1].Id == t.Id {
			continue
		}
		unique = append(unique, t)
	}

	return unique
}
