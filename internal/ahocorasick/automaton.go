package ahocorasick

// node is one state of the trie underlying the automaton.
type node struct {
	children map[byte]*node
	fail     *node

	// local holds the pattern indices whose text ends exactly at this
	// node; outputs additionally includes every pattern reachable via
	// this node's fail-link chain, precomputed at build time so Scan
	// never has to walk the chain itself.
	local   []int
	outputs []int
}

// Automaton is an immutable Aho–Corasick automaton over a fixed pattern
// set, safe for concurrent use by any number of Cursors.
type Automaton struct {
	root     *node
	patterns [][]byte
}

// Cursor is per-scan state: the automaton's current trie node and the
// next unconsumed byte offset. The zero value is a valid cursor
// positioned at the automaton's root and offset 0.
type Cursor struct {
	Pos  int
	node *node
}

// Seek repositions the cursor to pos and resets its trie state to the
// root, for callers that skip a consumed span (an accepted or rejected
// candidate) without feeding its bytes through Scan byte-by-byte.
func (c *Cursor) Seek(pos int) {
	c.Pos = pos
	c.node = nil
}

// Match reports a single full pattern match: the index of the pattern in
// the slice passed to Build, and the offset of the byte immediately after
// the match.
type Match struct {
	PatternIndex int
	End          int
}

// Build constructs an automaton recognizing every pattern in patterns.
// Patterns are indexed by their position in the slice; Scan reports that
// index, not the pattern bytes, so callers can carry arbitrary metadata
// (matcher flags, prefixes, probes) alongside the pattern in a parallel
// slice.
func Build(patterns [][]byte) *Automaton {
	root := &node{children: make(map[byte]*node)}

	a := &Automaton{root: root, patterns: patterns}

	for idx, pat := range patterns {
		cur := root

		for _, b := range pat {
			child, ok := cur.children[b]
			if !ok {
				child = &node{children: make(map[byte]*node)}
				cur.children[b] = child
			}

			cur = child
		}

		cur.local = append(cur.local, idx)
	}

	a.buildFailLinks()

	return a
}

// buildFailLinks computes the fail transition for every node via BFS, then
// derives each node's full output set (its own patterns plus everything
// reachable by following fail links).
func (a *Automaton) buildFailLinks() {
	root := a.root
	root.fail = root

	queue := make([]*node, 0, len(root.children))

	for _, child := range root.children {
		child.fail = root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for b, child := range cur.children {
			queue = append(queue, child)

			// Standard BFS fail-link construction: a child's fail node is
			// wherever the parent's fail node would transition to on the
			// same byte. cur.fail is always already finalized because
			// BFS processes shallower nodes first.
			child.fail = a.step(cur.fail, b)
		}
	}

	// Second pass (BFS again) to flatten outputs now that every fail
	// link is final.
	order := make([]*node, 0)
	queue = append(queue, root)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, child := range cur.children {
			queue = append(queue, child)
		}
	}

	for _, n := range order {
		if n == root {
			n.outputs = append([]int{}, n.local...)

			continue
		}

		n.outputs = append(append([]int{}, n.local...), n.fail.outputs...)
	}
}

// step follows the automaton transition for byte b from cur, falling back
// through fail links on a miss, classical Aho–Corasick style.
func (a *Automaton) step(cur *node, b byte) *node {
	for {
		if child, ok := cur.children[b]; ok {
			return child
		}

		if cur == a.root {
			return a.root
		}

		cur = cur.fail
	}
}

// Scan advances cur across text[cur.Pos:], invoking callback for every
// full pattern match. callback returns true to stop the scan (cur is left
// positioned immediately after the match that triggered the stop, ready
// for the next Scan call to resume there) or false to continue. Scan
// returns true iff callback returned true at some point; otherwise it
// consumes all of text and returns false.
func Scan(a *Automaton, text []byte, cur *Cursor, callback func(Match) bool) (stopped bool) {
	n := cur.node
	if n == nil {
		n = a.root
	}

	for i := cur.Pos; i < len(text); i++ {
		n = a.step(n, text[i])

		for _, pidx := range n.outputs {
			m := Match{PatternIndex: pidx, End: i + 1}

			if callback(m) {
				cur.Pos = i + 1
				cur.node = n

				return true
			}
		}
	}

	cur.Pos = len(text)
	cur.node = n

	return false
}

// Pattern returns the pattern bytes registered at idx.
func (a *Automaton) Pattern(idx int) []byte {
	return a.patterns[idx]
}
