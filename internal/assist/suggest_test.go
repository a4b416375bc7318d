package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darionassist/pkg/options"
)

func TestSuggestRanksPrintFirst(t *testing.T) {
	e := newTestEngine()
	got := e.Suggest("pri")
	require.NotEmpty(t, got, "Suggest should find candidates for a vocabulary prefix")
	assert.Equal(t, "print", got[0], "print should rank highest for 'pri'")
	assert.LessOrEqual(t, len(got), 3, "Suggest should never return more than three entries")
	for _, s := range got {
		assert.True(t, e.vocabSet[s], "suggestion %q should come from the vocabulary", s)
	}
}

func TestSuggestPrefixQuery(t *testing.T) {
	e := newTestEngine()
	got := e.Suggest("fun")
	require.NotEmpty(t, got)
	assert.Equal(t, "function", got[0], "function should rank highest for 'fun'")
}

func TestSuggestMisspelledQuery(t *testing.T) {
	// A transposition should still land on the intended keyword.
	e := newTestEngine()
	got := e.Suggest("wihle")
	require.NotEmpty(t, got)
	assert.Equal(t, "while", got[0], "while should rank highest for 'wihle'")
}

func TestSuggestDeterministic(t *testing.T) {
	e := newTestEngine()
	first := e.Suggest("pri")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Suggest("pri"), "repeated calls must return identical ordered results")
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	e := newTestEngine()
	assert.Empty(t, e.Suggest(""), "empty query yields no suggestions")
}

func TestSuggestEmptyVocabulary(t *testing.T) {
	e := New(nil, nil, nil)
	assert.Empty(t, e.Suggest("pri"), "empty vocabulary yields no suggestions")
}

func TestSuggestSmallVocabulary(t *testing.T) {
	e := New([]string{"let", "print"}, nil, nil)
	got := e.Suggest("le")
	assert.LessOrEqual(t, len(got), 2, "Suggest must not return more entries than the vocabulary holds")
	require.NotEmpty(t, got)
	assert.Equal(t, "let", got[0])
}

func TestSuggestTieKeepsVocabularyOrder(t *testing.T) {
	// "ab" and "aa" score identically against "a"; insertion order wins.
	e := New([]string{"ab", "aa"}, nil, nil)
	got := e.Suggest("a")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"ab", "aa"}, got)
}

func TestSuggestMaxSuggestionsOption(t *testing.T) {
	one := New(DefaultVocabulary, nil, nil, options.WithMaxSuggestions(1))
	require.Len(t, one.Suggest("e"), 1, "the cap applies even with many candidates")

	five := New(DefaultVocabulary, nil, nil, options.WithMaxSuggestions(5))
	assert.Len(t, five.Suggest("e"), 5, "a raised cap admits more candidates")
}

func TestSuggestFilterShortQuery(t *testing.T) {
	filtered := New(DefaultVocabulary, nil, nil, options.WithFilterShortQuery())
	assert.Empty(t, filtered.Suggest("fu"), "queries of two runes or fewer are dropped when filtering")
	assert.NotEmpty(t, filtered.Suggest("fun"), "three-rune queries still rank")

	def := newTestEngine()
	assert.NotEmpty(t, def.Suggest("fu"), "filtering is opt-in")
}

func TestSuggestStrictAndLenientMatching(t *testing.T) {
	// Two adjacent swaps: four plain edits away from "function" and not a
	// subsequence of any keyword.
	const q = "fnuctoin"

	def := newTestEngine()
	assert.NotContains(t, def.Suggest(q), "function",
		"default admission rejects four-edit candidates")

	lenient := New(DefaultVocabulary, nil, nil, options.WithLenientMatching())
	got := lenient.Suggest(q)
	require.NotEmpty(t, got)
	assert.Equal(t, "function", got[0], "lenient matching admits distant candidates")

	strict := New(DefaultVocabulary, nil, nil, options.WithStrictMatching())
	assert.Empty(t, strict.Suggest("wihle"),
		"strict matching rejects two-edit candidates")
	assert.NotEmpty(t, strict.Suggest("print"), "exact tokens still match strictly")
}

func TestCustomKeywordSuggested(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	require.NoError(t, e.AddCustomKeyword(ctx, "matrix"))
	got := e.Suggest("matr")
	require.NotEmpty(t, got)
	assert.Equal(t, "matrix", got[0], "custom keyword should be suggested")

	require.NoError(t, e.RemoveCustomKeyword(ctx, "matrix"))
	for _, s := range e.Suggest("matr") {
		assert.NotEqual(t, "matrix", s, "removed keyword must not be suggested")
	}
}

func TestAddCustomKeywordIgnoresDuplicates(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	require.NoError(t, e.AddCustomKeyword(ctx, "print"))
	require.NoError(t, e.AddCustomKeyword(ctx, "matrix"))
	require.NoError(t, e.AddCustomKeyword(ctx, "Matrix"))
	require.NoError(t, e.AddCustomKeyword(ctx, " "))

	e.mu.RLock()
	defer e.mu.RUnlock()
	assert.Equal(t, []string{"matrix"}, e.custom, "built-ins, duplicates and blanks are not re-added")
}
