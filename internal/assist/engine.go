package assist

import (
	"context"
	"log"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"

	"darionassist/internal/vocabdict"
	"darionassist/pkg/options"
)

// Engine ranks a fixed keyword vocabulary against partial tokens and
// rewrites known misspellings. The vocabulary and correction map are
// immutable after construction; custom keywords added through the admin
// surface are the only runtime extension and sit behind mu.
type Engine struct {
	opts        options.SuggestOptions
	vocab       []string
	vocabSet    map[string]bool
	corrections map[string]string
	dict        *vocabdict.Store
	jaro        *metrics.JaroWinkler

	mu        sync.RWMutex
	custom    []string
	customSet map[string]bool

	distCache sync.Map // map[string]float64, key: a+"\u0000"+b
}

// New builds an engine over the given vocabulary and correction map.
// The slices and maps are copied; the caller keeps ownership. Vocabulary
// order is significant: it breaks ranking ties. dict may be nil, in
// which case custom keywords live in memory only.
func New(vocab []string, corrections map[string]string, dict *vocabdict.Store, opts ...options.Options) *Engine {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	if conf.MaxSuggestions <= 0 {
		conf.MaxSuggestions = options.DefaultOptions.MaxSuggestions
	}

	e := &Engine{
		opts:        conf,
		vocabSet:    make(map[string]bool, len(vocab)),
		corrections: make(map[string]string, len(corrections)),
		dict:        dict,
		jaro:        metrics.NewJaroWinkler(),
		customSet:   make(map[string]bool),
	}
	for _, w := range vocab {
		if w == "" || e.vocabSet[w] {
			continue
		}
		e.vocab = append(e.vocab, w)
		e.vocabSet[w] = true
	}
	for k, v := range corrections {
		e.corrections[k] = v
	}
	e.loadCustomKeywords()
	return e
}

// Correct rewrites every whitespace-delimited token of text that has an
// exact, case-sensitive entry in the correction map. Tokens are rejoined
// with single spaces, so original whitespace widths and newlines are not
// preserved. Because lookup happens per token, a map key that itself
// contains whitespace ("fr each") can never match.
func (e *Engine) Correct(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if fixed, ok := e.corrections[tok]; ok {
			out[i] = fixed
		} else {
			out[i] = tok
		}
	}
	return strings.Join(out, " ")
}

// LastToken returns the final whitespace-delimited token of the editor
// buffer, or "" when the buffer is empty or ends in whitespace.
func LastToken(buffer string) string {
	if buffer == "" {
		return ""
	}
	if r, _ := utf8.DecodeLastRuneInString(buffer); unicode.IsSpace(r) {
		return ""
	}
	fields := strings.Fields(buffer)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// keywords returns the ranking candidates: the fixed vocabulary followed
// by custom keywords, both in insertion order.
func (e *Engine) keywords() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.vocab)+len(e.custom))
	out = append(out, e.vocab...)
	out = append(out, e.custom...)
	return out
}

func (e *Engine) loadCustomKeywords() {
	if e.dict == nil {
		return
	}
	words, err := e.dict.All(context.Background())
	if err != nil {
		log.Printf("warning: could not load custom keywords: %v", err)
		return
	}
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w))
		if lw == "" || e.vocabSet[lw] || e.customSet[lw] {
			continue
		}
		e.custom = append(e.custom, lw)
		e.customSet[lw] = true
	}
}

// AddCustomKeyword adds a keyword to the suggestion vocabulary and to
// the backing store when one is configured.
func (e *Engine) AddCustomKeyword(ctx context.Context, word string) error {
	lw := strings.ToLower(strings.TrimSpace(word))
	if lw == "" {
		return nil
	}
	if e.dict != nil {
		if err := e.dict.Add(ctx, lw); err != nil {
			return err
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.vocabSet[lw] || e.customSet[lw] {
		return nil
	}
	e.custom = append(e.custom, lw)
	e.customSet[lw] = true
	return nil
}

// RemoveCustomKeyword removes a keyword added through AddCustomKeyword.
// Built-in vocabulary entries are not removable.
func (e *Engine) RemoveCustomKeyword(ctx context.Context, word string) error {
	lw := strings.ToLower(strings.TrimSpace(word))
	if e.dict != nil {
		if err := e.dict.Remove(ctx, lw); err != nil {
			return err
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.customSet[lw] {
		return nil
	}
	delete(e.customSet, lw)
	kept := e.custom[:0]
	for _, w := range e.custom {
		if w != lw {
			kept = append(kept, w)
		}
	}
	e.custom = kept
	return nil
}
