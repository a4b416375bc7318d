package assist

// DefaultVocabulary is the Darion keyword set offered as completions.
// Order matters: ranking ties resolve to the earlier entry.
var DefaultVocabulary = []string{
	"function",
	"print",
	"return",
	"let",
	"const",
	"if",
	"else",
	"while",
	"for each",
	"in",
	"break",
	"continue",
	"end",
	"true",
	"false",
	"null",
	"and",
	"or",
	"not",
	"import",
}

// DefaultCorrections maps known Darion misspellings to their correct
// form. Keys are matched case-sensitively against whole tokens.
var DefaultCorrections = map[string]string{
	"funtion":  "function",
	"functon":  "function",
	"fucntion": "function",
	"prnt":     "print",
	"pirnt":    "print",
	"pritn":    "print",
	"retun":    "return",
	"reutrn":   "return",
	"whlie":    "while",
	"esle":     "else",
	"ture":     "true",
	"fasle":    "false",
	"nul":      "null",
	"improt":   "import",
	"brak":     "break",
	"contiune": "continue",
	// Lookup is per whitespace-delimited token, so this two-token key can
	// never match.
	"fr each": "for each",
}
