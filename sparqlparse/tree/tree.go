package tree

import (
	"github.com/grafdb/sparqlgo"
	"github.com/grafdb/sparqlgo/grammar"
)

const chunkSize = 128

// Node is a committed parse-tree node. Extent is the byte span the node
// covers in the source text; Rule is the grammar rule it was matched
// against.
type Node struct {
	Rule     *grammar.Rule
	Extent   [2]int // [from, to) byte offsets into the parsed source
	Parent   int    // index of the parent node, -1 for the root
	Child    int    // index of the first child, -1 if none
	Sibling  int    // index of the next sibling, -1 if none
}

// Index identifies a Node within a Tree; a negative Index means "no
// node". The root usually lives at index 0, but callers should use
// Tree.Root() rather than assuming that.
type Index int

// Tree is a chunked, grow-only arena of Nodes plus a cursor (high-water
// mark) used to support O(1) truncation when the parser backtracks past
// already-allocated nodes.
type Tree struct {
	chunks []([]Node)
	used   int // number of live nodes, <= total chunk capacity
	root   Index
}

// New returns an empty tree with no nodes allocated.
func New() *Tree {
	return &Tree{root: -1}
}

// Allocate appends a new node and returns its index. The node's Child and
// Sibling links start at -1; the caller wires them in as children commit.
func (t *Tree) Allocate(rule *grammar.Rule, from, to int, parent Index) Index {
	chunkIdx := t.used / chunkSize
	for chunkIdx >= len(t.chunks) {
		t.chunks = append(t.chunks, make([]Node, chunkSize))
	}
	slot := t.used % chunkSize
	t.chunks[chunkIdx][slot] = Node{
		Rule:    rule,
		Extent:  [2]int{from, to},
		Parent:  int(parent),
		Child:   -1,
		Sibling: -1,
	}
	idx := Index(t.used)
	t.used++
	if parent < 0 {
		t.root = idx
	}
	return idx
}

// AppendChild links child as a new last child of parent, walking parent's
// existing sibling chain. O(number of parent's existing children); parse
// trees are shallow enough in practice that this beats tracking a
// last-child pointer per node.
func (t *Tree) AppendChild(parent, child Index) {
	p := t.at(parent)
	if p.Child < 0 {
		p.Child = int(child)
		return
	}
	sib := Index(p.Child)
	for {
		s := t.at(sib)
		if s.Sibling < 0 {
			s.Sibling = int(child)
			return
		}
		sib = Index(s.Sibling)
	}
}

// TruncateAfter discards every node allocated after (and including) idx,
// resetting the high-water mark. Discarded slots are left as-is — their
// contents are simply unreachable until overwritten by the next
// Allocate — so truncation never touches the underlying chunk slices.
func (t *Tree) TruncateAfter(idx Index) {
	if int(idx) < t.used {
		t.used = int(idx)
	}
	if int(t.root) >= t.used {
		t.root = -1
	}
}

// SetEnd updates the end offset of the node at idx, used once a
// NamedRule's body has finished matching and its true extent is known.
func (t *Tree) SetEnd(idx Index, to int) {
	t.at(idx).Extent[1] = to
}

// Len reports the number of live nodes.
func (t *Tree) Len() int { return t.used }

// Root returns the tree's root node index, or -1 if the tree is empty.
func (t *Tree) Root() Index { return t.root }

// Node returns the Node at idx. It panics if idx is out of the live
// range — callers are expected to only hold indices returned by this
// same tree since its last truncation.
func (t *Tree) Node(idx Index) Node {
	return *t.at(idx)
}

// Extents returns the byte span covered by the node at idx.
func (t *Tree) Extents(idx Index) (from, to int) {
	n := t.at(idx)
	return n.Extent[0], n.Extent[1]
}

// Span returns the node's byte range as a sparqlgo.Span.
func (t *Tree) Span(idx Index) sparqlgo.Span {
	n := t.at(idx)
	return sparqlgo.Span{uint64(n.Extent[0]), uint64(n.Extent[1])}
}

func (t *Tree) at(idx Index) *Node {
	if int(idx) < 0 || int(idx) >= t.used {
		panic("tree: node index out of range")
	}
	return &t.chunks[int(idx)/chunkSize][int(idx)%chunkSize]
}

// FindFirst returns the first node in pre-order (the root), or -1 if the
// tree is empty.
func (t *Tree) FindFirst() Index {
	return t.root
}

// FindNext returns the next node after cur in pre-order traversal, or -1
// once the traversal is exhausted. Pre-order visits a node, then its
// first child, then (once that subtree is exhausted) its next sibling,
// walking up through parents as needed.
func (t *Tree) FindNext(cur Index) Index {
	n := t.at(cur)
	if n.Child >= 0 {
		return Index(n.Child)
	}
	for cur >= 0 {
		n = t.at(cur)
		if n.Sibling >= 0 {
			return Index(n.Sibling)
		}
		cur = Index(n.Parent)
	}
	return -1
}
