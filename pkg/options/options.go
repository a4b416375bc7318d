package options

// DefaultOptions keeps the ranking conservative: prefix affinity carries
// more weight than raw edit cost, and multi-edit candidates are penalized.
var DefaultOptions = SuggestOptions{
	MaxSuggestions:  3,
	MaxEditDistance: 3,
	LambdaPenalty:   0.9,
	TransposeCost:   0.6,
	NeighborInsDel:  0.9,
	KeyboardNearSub: 0.6,
	PrefixWeight:    1.6,
	SubseqBonus:     0.75,
}

type SuggestOptions struct {
	MaxSuggestions   int
	MaxEditDistance  int
	LambdaPenalty    float64
	TransposeCost    float64
	NeighborInsDel   float64
	KeyboardNearSub  float64
	PrefixWeight     float64
	SubseqBonus      float64
	FilterShortQuery bool
}

type Options interface {
	Apply(options *SuggestOptions)
}

type FuncConfig struct {
	ops func(options *SuggestOptions)
}

func (w FuncConfig) Apply(conf *SuggestOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SuggestOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxSuggestions(maxSuggestions int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxSuggestions = maxSuggestions
	})
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithLambdaPenalty(lambdaPenalty float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.LambdaPenalty = lambdaPenalty
	})
}

func WithTransposeCost(transposeCost float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.TransposeCost = transposeCost
	})
}

func WithNeighborInsDel(neighborInsDel float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.NeighborInsDel = neighborInsDel
	})
}

func WithKeyboardNearSub(keyboardNearSub float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.KeyboardNearSub = keyboardNearSub
	})
}

func WithPrefixWeight(prefixWeight float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.PrefixWeight = prefixWeight
	})
}

func WithSubseqBonus(subseqBonus float64) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.SubseqBonus = subseqBonus
	})
}

// WithFilterShortQuery drops queries of two runes or fewer instead of
// ranking them.
func WithFilterShortQuery() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.FilterShortQuery = true
	})
}

// WithStrictMatching narrows candidate admission to near-exact tokens.
func WithStrictMatching() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxEditDistance = 1
		options.SubseqBonus = 0
	})
}

// WithLenientMatching admits distant candidates; useful for very short
// vocabularies where almost anything is worth showing.
func WithLenientMatching() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxEditDistance = 5
		options.LambdaPenalty = 0.5
	})
}
