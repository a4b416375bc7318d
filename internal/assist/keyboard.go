package assist

import (
	"math"
	"unicode"
)

var keyboardRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	pa, oka := keyPos[a]
	pb, okb := keyPos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// Lookalike pairs common in code: glyphs confused on screen rather than
// on the keyboard.
var lookalikeSub = map[[2]rune]float64{
	{'0', 'o'}: 0.3, {'o', '0'}: 0.3,
	{'1', 'l'}: 0.3, {'l', '1'}: 0.3,
	{'i', 'l'}: 0.4, {'l', 'i'}: 0.4,
	{'i', 'j'}: 0.4, {'j', 'i'}: 0.4,
	{'u', 'v'}: 0.4, {'v', 'u'}: 0.4,
}

func (e *Engine) substitutionCost(a, b rune) float64 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	if v, ok := lookalikeSub[[2]rune{a, b}]; ok {
		return v
	}
	d := keyDistance(a, b)
	if d <= 1.0 {
		return e.opts.KeyboardNearSub
	} else if d <= 1.5 {
		return 0.8
	} else if d <= 2.2 {
		return 1.2
	}
	return 1.8
}

// Fast check for exactly one swap of adjacent characters.
func isOneAdjacentSwap(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := 0; i < len(ra); i++ {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] == rb[diff+1] && ra[diff+1] == rb[diff] {
		for j := diff + 2; j < len(ra); j++ {
			if ra[j] != rb[j] {
				return false
			}
		}
		return true
	}
	return false
}
