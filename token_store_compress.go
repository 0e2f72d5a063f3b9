package lexicon

// Compress turns the trie into a radix tree by merging every node that has
// exactly one child into its parent edge, concatenating the edge keys.
//
// The token map is not touched. Compress is meant to run once, after bulk
// loading and before saving or querying; it must not be interleaved with
// further Add or Remove calls, since Add walks single-character edges.
// Running it again after more adds never drops a path: a merge whose edge
// key is already taken is skipped.
//
// Merges do not stop at token boundaries: with "car" and "cart" stored the
// chain c-a-r-t becomes one "cart" edge. Expand recovers such boundaries by
// walking merged edge keys character by character.
//
// Time Complexity: O(n) where n is the number of trie nodes
func (s *TokenStore) Compress() {
	stack := []*trieNode{s.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		merged := false
		for _, key := range node.keys() {
			child := node.children[key]
			grandKey, grandchild, ok := child.only()
			if !ok {
				continue
			}
			// a path added after an earlier Compress can spell an edge that
			// already exists; keep both edges, Expand visits each of them
			if _, taken := node.children[key+grandKey]; taken {
				continue
			}
			delete(node.children, key)
			node.children[key+grandKey] = grandchild
			merged = true
		}

		// a merged node may now have new single-child edges; revisit it
		// before descending
		if merged {
			stack = append(stack, node)
			continue
		}
		for _, child := range node.children {
			stack = append(stack, child)
		}
	}
}

// Nodes returns the number of trie nodes, including the root. It is mostly
// useful to observe the effect of Compress.
func (s *TokenStore) Nodes() int {
	return s.root.size()
}
