// Package lexicon implements the token store of a full-text search index.
//
// WHAT IS A TOKEN STORE?
// The token store is the reverse index of a search engine: it maps every
// indexed token to the documents containing it. Each token owns a posting
// list of (document reference, term frequency) pairs in insertion order.
//
// HOW IT WORKS:
//  1. A trie over token characters records every path an added token walks.
//     It answers "which stored tokens start with this prefix?"
//  2. A flat map from exact token to posting list answers "is this exact
//     token stored and which documents contain it?"
//  3. After bulk loading, Compress collapses single-child chains of the trie
//     into multi-character edges (a radix tree) to save memory. Prefix
//     expansion stays correct because it re-derives every character boundary
//     from the merged edge keys.
//
// TIME COMPLEXITY:
//   - Add: O(len(token))
//   - Has/Get/Count: O(1) map lookup (plus copy of the list for Get)
//   - Remove: O(postings for the token)
//   - Expand: O(nodes under the prefix × edge length)
//   - Compress: O(nodes)
//
// GUARANTEES & TRADE-OFFS:
// ✓ Pros:
//   - Missing tokens never raise errors, they degrade to empty results
//   - Snapshots restore state without replaying inserts
//
// ✗ Cons:
//   - Not safe for concurrent use; callers serialize access
//   - Remove never prunes trie nodes, so a store with heavy churn should be
//     rebuilt from a snapshot periodically
//   - Length counts every Add and is not decremented by Remove
package lexicon

import (
	"sort"
	"unicode/utf8"
)

// TokenStore maps tokens to posting lists and supports prefix expansion.
//
// The zero value is not usable; create stores with NewTokenStore or
// FromSnapshot. A TokenStore is not safe for concurrent use.
type TokenStore struct {
	// prefix structure over every token ever added
	root *trieNode
	// exact token -> postings in insertion order
	tokens map[string]PostingList
	// total (token, doc) pairs ever added
	length int
}

// NewTokenStore creates and returns a new empty TokenStore.
//
// Example:
//
//	store := NewTokenStore()
//	store.Add("fox", Posting{Ref: 1, TF: 2})
//	store.Expand("fo") // ["fox"]
func NewTokenStore() *TokenStore {
	return &TokenStore{
		root:   newTrieNode(),
		tokens: make(map[string]PostingList),
	}
}

// Add files a posting under token, growing the trie along the token's
// characters as needed.
//
// The pair counter is incremented on every call, including repeated adds of
// the same (token, ref). Duplicate refs are not deduplicated.
//
// Parameters:
//   - token: Exact token to index
//   - p: Document reference and term frequency
//
// Time Complexity: O(len(token))
func (s *TokenStore) Add(token string, p Posting) {
	s.addFrom(s.root, token, token, p)
}

// addFrom descends from node consuming token one character at a time and
// appends p to the posting list of original once token is exhausted.
// original is the full token; token is the suffix still to be walked.
func (s *TokenStore) addFrom(node *trieNode, token, original string, p Posting) {
	for len(token) > 0 {
		_, size := utf8.DecodeRuneInString(token)
		node = node.ensureChild(token[:size])
		token = token[size:]
	}
	s.tokens[original] = append(s.tokens[original], p)
	s.length++
}

// Has reports whether token was added and still has postings.
// A string that is only a prefix of stored tokens is not reported.
func (s *TokenStore) Has(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Get returns a copy of the posting list for token in insertion order, or an
// empty list when the token is absent.
func (s *TokenStore) Get(token string) PostingList {
	pl := s.tokens[token]
	out := make(PostingList, len(pl))
	copy(out, pl)
	return out
}

// GetFlat returns the postings for token in the interleaved form
// [ref, tf, ref, tf, ...].
func (s *TokenStore) GetFlat(token string) []int {
	return s.tokens[token].Flatten()
}

// Count returns the number of postings stored for token.
func (s *TokenStore) Count(token string) int {
	return len(s.GetFlat(token)) / 2
}

// Remove deletes the first posting for ref under token.
//
// Removing an unknown token or ref is a no-op. When the last posting of a
// token is removed the token is forgotten entirely, but its trie path is
// kept and Length is left unchanged.
//
// Time Complexity: O(n) where n is the number of postings for token
func (s *TokenStore) Remove(token string, ref uint32) {
	pl, ok := s.tokens[token]
	if !ok {
		return
	}
	i := pl.indexOf(ref)
	if i < 0 {
		return
	}
	pl = append(pl[:i], pl[i+1:]...)
	if len(pl) == 0 {
		delete(s.tokens, token)
		return
	}
	s.tokens[token] = pl
}

// Length returns the number of (token, doc) pairs ever added.
func (s *TokenStore) Length() int {
	return s.length
}

// Len returns the number of distinct tokens currently stored.
func (s *TokenStore) Len() int {
	return len(s.tokens)
}

// Tokens returns every stored token in sorted order.
func (s *TokenStore) Tokens() []string {
	out := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
