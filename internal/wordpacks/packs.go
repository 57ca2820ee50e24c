// Package wordpacks holds the built-in vocabularies and loads custom ones.
package wordpacks

import (
	_ "embed"
	"strings"

	"github.com/vovakirdan/neontype/internal/registry"
)

// DefaultPack is the pack used when none is selected.
const DefaultPack = "common"

//go:embed common.txt
var commonTxt string

// common is parsed once; factories hand out copies.
var common = parseWords(strings.NewReader(commonTxt))

func init() {
	registry.Register("common", func() registry.Pack {
		return registry.Pack{ID: "common", Title: "Common English", Words: clone(common)}
	})
	registry.Register("short", func() registry.Pack {
		return registry.Pack{ID: "short", Title: "Short Words", Words: filterLen(common, 1, 4)}
	})
	registry.Register("long", func() registry.Pack {
		return registry.Pack{ID: "long", Title: "Long Words", Words: filterLen(common, 5, 0)}
	})
}

// filterLen keeps words with min <= len <= max; max 0 means unbounded.
func filterLen(words []string, min, max int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < min || (max > 0 && len(w) > max) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func clone(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
