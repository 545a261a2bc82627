package bitvec

// Builder accumulates bits one at a time into a growable intermediate
// representation, then lowers them into an immutable Vector in a single
// pass. This mirrors the two-phase "accumulate, then freeze" shape used
// throughout this module (see trie.Builder).
//
// The zero value is ready to use.
type Builder struct {
	bits []bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Push appends a single bit (true=1, false=0).
func (b *Builder) Push(bit bool) {
	b.bits = append(b.bits, bit)
}

// PushOne appends a 1-bit. Convenience for LOUDS emission, where runs of
// ones (child arrivals) and single zeros (block terminators) are pushed in
// separate loops.
func (b *Builder) PushOne() {
	b.bits = append(b.bits, true)
}

// PushZero appends a 0-bit.
func (b *Builder) PushZero() {
	b.bits = append(b.bits, false)
}

// Len returns the number of bits pushed so far.
func (b *Builder) Len() int {
	return len(b.bits)
}

// Freeze packs the accumulated bits into an immutable Vector with
// precomputed rank/select indices. The Builder is left usable but its
// contents are not shared with the returned Vector.
func (b *Builder) Freeze() *Vector {
	return newVector(b.bits)
}
