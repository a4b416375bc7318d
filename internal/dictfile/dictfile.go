// Package dictfile loads vocabulary and correction-map files. Files are
// memory-mapped read-only and scanned in place; every returned string is
// copied out of the mapping before it is unmapped.
package dictfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadVocabulary reads a keyword list, one keyword per line. Blank lines
// and lines starting with '#' are skipped. The first occurrence of a
// keyword wins and file order is preserved.
func LoadVocabulary(path string) ([]string, error) {
	var vocab []string
	seen := make(map[string]bool)
	err := scanLines(path, func(line string) {
		if seen[line] {
			return
		}
		seen[line] = true
		vocab = append(vocab, line)
	})
	if err != nil {
		return nil, err
	}
	return vocab, nil
}

// LoadCorrections reads a correction map, one "wrong<TAB>right" pair per
// line. Keys may contain spaces. Lines without a tab are skipped.
func LoadCorrections(path string) (map[string]string, error) {
	corrections := make(map[string]string)
	err := scanLines(path, func(line string) {
		wrong, right, ok := strings.Cut(line, "\t")
		if !ok {
			return
		}
		wrong = strings.TrimSpace(wrong)
		right = strings.TrimSpace(right)
		if wrong == "" || right == "" {
			return
		}
		corrections[wrong] = right
	})
	if err != nil {
		return nil, err
	}
	return corrections, nil
}

func scanLines(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat dictionary: %w", err)
	}
	if st.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("map dictionary: %w", err)
	}
	defer m.Unmap()

	for _, raw := range bytes.Split(m, []byte{'\n'}) {
		line := strings.TrimSpace(string(raw))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return nil
}
