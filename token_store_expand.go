package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring"
)

// expandFrame is a pending node in the expansion worklist together with the
// characters consumed to reach it.
type expandFrame struct {
	node   *trieNode
	prefix string
}

// Expand returns every stored token equal to or starting with prefix, in
// sorted order. Expand("") returns every stored token.
//
// The traversal works on both the plain trie and the radix tree produced by
// Compress. Merged edges may jump over token boundaries (for "car" and
// "cart" the radix tree can hold a single "cart" edge), so whenever an edge
// reaches past the prefix every character boundary inside the edge key is
// looked up in the token map.
//
// Time Complexity: O(m × k) where m is the number of trie nodes under the
// prefix and k the average edge length
func (s *TokenStore) Expand(prefix string) []string {
	seen := make(map[string]struct{})
	if _, ok := s.tokens[prefix]; ok {
		seen[prefix] = struct{}{}
	}

	stack := []expandFrame{{node: s.root, prefix: ""}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, child := range frame.node.children {
			fullKey := frame.prefix + key

			switch {
			case strings.HasPrefix(fullKey, prefix):
				stack = append(stack, expandFrame{node: child, prefix: fullKey})
				s.collectBoundaries(frame.prefix, key, prefix, seen)
			case strings.HasPrefix(prefix, fullKey):
				stack = append(stack, expandFrame{node: child, prefix: fullKey})
			}
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// collectBoundaries walks key one character at a time, extending base, and
// records every candidate that starts with prefix and is a stored token.
func (s *TokenStore) collectBoundaries(base, key, prefix string, seen map[string]struct{}) {
	end := len(base)
	full := base + key
	for rest := key; len(rest) > 0; {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
		end += size
		if end < len(prefix) {
			continue
		}
		candidate := full[:end]
		if _, ok := s.tokens[candidate]; ok {
			seen[candidate] = struct{}{}
		}
	}
}

// Refs returns the set of document references posted under token.
func (s *TokenStore) Refs(token string) *roaring.Bitmap {
	bm := roaring.New()
	for _, p := range s.tokens[token] {
		bm.Add(p.Ref)
	}
	return bm
}

// ExpandRefs returns the union of document references posted under every
// token that Expand(prefix) yields. This is the document set a wildcard
// query term such as "ca*" matches.
func (s *TokenStore) ExpandRefs(prefix string) *roaring.Bitmap {
	bm := roaring.New()
	for _, t := range s.Expand(prefix) {
		for _, p := range s.tokens[t] {
			bm.Add(p.Ref)
		}
	}
	return bm
}

// GetFiltered returns the postings of token whose refs pass filter, in
// insertion order. A nil filter admits every posting.
func (s *TokenStore) GetFiltered(token string, filter *RefFilter) PostingList {
	return filter.Filter(s.tokens[token])
}
