package lexicon

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns document text into the tokens stored in a TokenStore.
// Stemming and stop-word filtering belong in Tokenizer implementations; the
// store itself never interprets tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// DefaultTokenizer normalizes text with NFKC, lowercases it and splits it
// into words using UAX#29 word segmentation. Segments without any letter or
// digit (whitespace, punctuation) are dropped.
type DefaultTokenizer struct{}

// Tokenize implements Tokenizer.
func (DefaultTokenizer) Tokenize(text string) []string {
	return tokenize(normalize(text))
}

// normalize applies Unicode normalization (NFKC) and converts to lowercase.
func normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// tokenize splits text into word tokens using UAX#29 word segmentation.
func tokenize(s string) []string {
	toks := words.FromString(s)
	var tokens []string
	for toks.Next() {
		if v := toks.Value(); isWord(v) {
			tokens = append(tokens, v)
		}
	}
	return tokens
}

// isWord reports whether a segment holds at least one letter or digit.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// AddDocument tokenizes text and adds one posting per distinct token, with
// the token's occurrence count as term frequency. Tokens are added in order
// of first occurrence. A nil tokenizer selects DefaultTokenizer.
//
// Returns the number of distinct tokens added.
//
// Example:
//
//	store.AddDocument(7, "the quick fox, the lazy dog", nil)
//	store.Get("the") // [{Ref: 7, TF: 2}]
func (s *TokenStore) AddDocument(ref uint32, text string, tokenizer Tokenizer) int {
	if tokenizer == nil {
		tokenizer = DefaultTokenizer{}
	}

	var order []string
	tf := make(map[string]int)
	for _, t := range tokenizer.Tokenize(text) {
		if tf[t] == 0 {
			order = append(order, t)
		}
		tf[t]++
	}

	for _, t := range order {
		s.Add(t, Posting{Ref: ref, TF: tf[t]})
	}
	return len(order)
}
