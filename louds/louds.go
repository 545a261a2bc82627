package louds

import (
	"github.com/forestrie/go-loudstrie/bitvec"
)

// NodeNum identifies a real node in the tree. The root is always 1; there
// is no NodeNum 0 (that would be the unexposed virtual super-root).
type NodeNum uint32

// ChildIndex identifies a bit position in the LOUDS string holding a '1'
// bit that names some node's appearance as a child of its parent.
type ChildIndex int

// RootNode is the NodeNum of every tree's root.
const RootNode NodeNum = 1

// Louds is an immutable succinct ordered tree, addressed by rank/select
// over its LOUDS bit-string. See doc.go for the encoding this navigates.
type Louds struct {
	bits *bitvec.Vector
}

// New wraps a fully-built LOUDS bit-string. Callers assemble the string
// with a bitvec.Builder (see trie.Builder.Build) or bitvec.FromBitString
// (tests), emitting the two-bit virtual super-root block first.
func New(bits *bitvec.Vector) *Louds {
	return &Louds{bits: bits}
}

// RootNode returns the NodeNum of the tree's root.
func (l *Louds) RootNode() NodeNum {
	return RootNode
}

// FirstChild returns the ChildIndex of node p's first child, or
// (0, false) if p has no children.
func (l *Louds) FirstChild(p NodeNum) (ChildIndex, bool) {
	pos := l.bits.Select0(int(p)) + 1
	if pos >= l.bits.Len() || l.bits.Bit(pos) == 0 {
		return 0, false
	}
	return ChildIndex(pos), true
}

// NextSibling returns the ChildIndex immediately following i if it also
// names a child (i.e. i is not the last sibling in its run).
func (l *Louds) NextSibling(i ChildIndex) (ChildIndex, bool) {
	next := int(i) + 1
	if next >= l.bits.Len() || l.bits.Bit(next) == 0 {
		return 0, false
	}
	return ChildIndex(next), true
}

// IsLastSibling reports whether i is the final child in its parent's
// run of children.
func (l *Louds) IsLastSibling(i ChildIndex) bool {
	next := int(i) + 1
	return next >= l.bits.Len() || l.bits.Bit(next) == 0
}

// ChildToParent returns the NodeNum of the node that i is a child of.
func (l *Louds) ChildToParent(i ChildIndex) NodeNum {
	return NodeNum(l.bits.Rank0(int(i)))
}

// IndexToNode returns the NodeNum that arrives via ChildIndex i.
func (l *Louds) IndexToNode(i ChildIndex) NodeNum {
	return NodeNum(l.bits.Rank1(int(i) + 1))
}

// NodeNumToChildIndex returns the ChildIndex that p itself arrived
// through (i.e. the position of p's own '1' bit in its parent's run).
// The root's result (position 0) names the unexposed super-root edge
// and has no meaningful ChildToParent.
func (l *Louds) NodeNumToChildIndex(p NodeNum) ChildIndex {
	return ChildIndex(l.bits.Select1(int(p)))
}

// ChildRange returns the half-open [first, last) run of ChildIndex
// values belonging to p's children, in order. An empty range means p
// is a leaf.
func (l *Louds) ChildRange(p NodeNum) (first, last ChildIndex) {
	first = ChildIndex(l.bits.Select0(int(p)) + 1)
	last = ChildIndex(l.bits.Select0(int(p) + 1))
	return first, last
}

// Degree returns the number of children p has.
func (l *Louds) Degree(p NodeNum) int {
	first, last := l.ChildRange(p)
	return int(last - first)
}
