package exprlex

// DefaultOperators is the operator set used when none is configured.
var DefaultOperators = []string{"+", "-", "*", "/", "^", "%"}

// defaultTrie is built once and shared by every lexer that sticks with the
// default operator set. It is never mutated after init.
var defaultTrie = newOpTrie(DefaultOperators)

// opTrie is a prefix tree over an operator set, used to find the longest
// configured operator starting at a given input position.
type opTrie struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	terminal string // full operator ending at this node, "" if none
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

func newOpTrie(operators []string) *opTrie {
	t := &opTrie{root: newTrieNode()}
	for _, op := range operators {
		t.insert(op)
	}
	return t
}

func (t *opTrie) insert(op string) {
	if op == "" {
		return
	}
	node := t.root
	for _, r := range op {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	node.terminal = op
}

// match walks the trie from the cursor's current character, following one
// input character per edge and remembering the deepest terminal visited.
// Greedy longest match wins: with both = and == configured, == is returned
// when the input allows it. The cursor is never mutated.
func (t *opTrie) match(c *cursor) (string, bool) {
	node := t.root
	longest := ""
	for depth := 0; ; depth++ {
		child, ok := node.children[c.at(c.pos+depth)]
		if !ok {
			break
		}
		if child.terminal != "" {
			longest = child.terminal
		}
		node = child
	}
	return longest, longest != ""
}
