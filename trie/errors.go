package trie

import "fmt"

// ReconstructionError is yielded by a reification (see Reify, UTF8String)
// that cannot render a stored key's tokens into the target container. It
// carries the token index within that key at which reconstruction failed.
type ReconstructionError struct {
	Index int
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("trie: reconstruction failed at token index %d", e.Index)
}
