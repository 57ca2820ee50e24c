package wordpacks

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/neontype/internal/registry"
)

// maxWordLen keeps words readable inside a lane.
const maxWordLen = 12

// LoadFile reads a custom pack: one word per line, '#' starts a comment.
// Words are lowercased; entries with anything but ASCII letters are skipped.
func LoadFile(path string) (registry.Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("wordpacks: cannot open %s: %w", path, err)
	}
	defer f.Close()

	words, err := parseWords(f)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("wordpacks: cannot read %s: %w", path, err)
	}
	if len(words) == 0 {
		return registry.Pack{}, fmt.Errorf("wordpacks: %s contains no usable words", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return registry.Pack{
		ID:    "file:" + name,
		Title: name,
		Words: words,
	}, nil
}

// Resolve returns a registered pack by ID, or loads a file when wordsFile is set.
func Resolve(id, wordsFile string) (registry.Pack, error) {
	if wordsFile != "" {
		return LoadFile(wordsFile)
	}
	if id == "" {
		id = DefaultPack
	}
	return registry.Create(id)
}

// parseWords scans one word per line, deduplicating in first-seen order.
func parseWords(r io.Reader) ([]string, error) {
	seen := make(map[string]bool)
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		word := foldAccents(strings.ToLower(strings.TrimSpace(line)))
		if word == "" || len(word) > maxWordLen || !isLetters(word) || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// foldAccents strips diacritics so "café" plays as "cafe".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
