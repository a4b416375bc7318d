package assist

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// Suggest returns up to MaxSuggestions vocabulary entries ranked by
// descending similarity to query. An empty query yields no suggestions:
// every ranking signal degenerates on the empty string, so any ordering
// would be an artifact of the weights. Equal scores keep vocabulary
// insertion order.
func (e *Engine) Suggest(query string) []string {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}
	if e.opts.FilterShortQuery && len([]rune(q)) <= 2 {
		return nil
	}

	terms := e.keywords()
	if len(terms) == 0 {
		return nil
	}

	// Subsequence hits (partial tokens like "pri" against "print") are
	// admitted regardless of edit distance.
	subseq := make(map[int]bool, len(terms))
	for _, m := range fuzzy.Find(q, terms) {
		subseq[m.Index] = true
	}

	type candidate struct {
		term  string
		score float64
	}
	scored := make([]candidate, 0, len(terms))
	lq := len([]rune(q))

	for i, term := range terms {
		ed := levenshtein.ComputeDistance(q, term)
		if !subseq[i] && ed > e.opts.MaxEditDistance {
			continue
		}

		score := -e.opts.LambdaPenalty * e.weightedDL(q, term)
		score += e.opts.PrefixWeight * strutil.Similarity(q, term, e.jaro)
		if subseq[i] {
			score += e.opts.SubseqBonus
		}

		lt := len([]rune(term))
		if ed == 1 {
			switch {
			case lt == lq:
				// substitution or transposition
				score += 0.8
			case lt == lq+1:
				// query is one character short
				score += 0.5
			case lt+1 == lq && lq > 3:
				score += 0.3
			}
		} else if ed >= 2 && !subseq[i] {
			score -= 0.6
		}

		scored = append(scored, candidate{term: term, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := e.opts.MaxSuggestions
	if len(scored) < n {
		n = len(scored)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = scored[i].term
	}
	return out
}
