package lexicon

import "sort"

// trieNode is a node of the prefix structure over stored tokens.
//
// Edges are keyed by string rather than rune so the same type serves both the
// plain trie (one character per edge) and the radix tree produced by
// Compress (several characters per edge). A node carries no payload: its
// existence only means some added token passes through it.
type trieNode struct {
	children map[string]*trieNode
}

// newTrieNode creates an empty node.
func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// child returns the node reached through the edge key, or nil.
func (n *trieNode) child(key string) *trieNode {
	return n.children[key]
}

// ensureChild returns the node reached through the edge key, creating it
// when absent.
func (n *trieNode) ensureChild(key string) *trieNode {
	c, ok := n.children[key]
	if !ok {
		c = newTrieNode()
		n.children[key] = c
	}
	return c
}

// only returns the single outgoing edge of n. ok is false unless n has
// exactly one child.
func (n *trieNode) only() (key string, c *trieNode, ok bool) {
	if len(n.children) != 1 {
		return "", nil, false
	}
	for k, v := range n.children {
		return k, v, true
	}
	return "", nil, false
}

// keys returns the edge keys of n in sorted order so traversals are
// deterministic.
func (n *trieNode) keys() []string {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// size counts n and every node beneath it.
func (n *trieNode) size() int {
	count := 0
	stack := []*trieNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, c := range node.children {
			stack = append(stack, c)
		}
	}
	return count
}
