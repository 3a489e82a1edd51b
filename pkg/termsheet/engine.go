package termsheet

import (
	"sort"
	"strings"

	"github.com/jmartel/termsheet/pkg/termsheet/ooxml"
)

// ReplacementMap maps literal bracketed tokens, e.g. "[nom de la SCCV]",
// to their replacement values. Tokens absent from the map are left in the
// document verbatim; the engine never validates that a token was consumed.
type ReplacementMap map[string]string

// orderedTokens returns the map's tokens longest first, ties broken
// lexicographically. Applying replacements in this order keeps a token that
// is a prefix of another, such as [niveau_commercialisation] and
// [niveau_commercialisation_libre], from clobbering the longer one.
func (m ReplacementMap) orderedTokens() []string {
	tokens := make([]string, 0, len(m))
	for tok := range m {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}

// Apply substitutes every known token in s and reports whether anything
// changed.
func (m ReplacementMap) Apply(s string) (string, bool) {
	out := s
	for _, tok := range m.orderedTokens() {
		out = strings.ReplaceAll(out, tok, m[tok])
	}
	return out, out != s
}

// replaceInDocument walks every paragraph of the part, including table
// cells, matching against the paragraph's whole concatenated text so tokens
// split across runs are still found. Only paragraphs whose text actually
// changes are rewritten; everything else round-trips untouched.
func replaceInDocument(doc *ooxml.Document, m ReplacementMap) {
	for _, p := range doc.Paragraphs() {
		if out, changed := m.Apply(p.Text()); changed {
			p.SetText(out)
		}
	}
}
