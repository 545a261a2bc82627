package bitvec

import "errors"

const (
	wordBits    = 64
	chunkBlocks = 8
	chunkBits   = chunkBlocks * wordBits
)

var (
	ErrBitIndexOutOfRange    = errors.New("bitvec: bit index out of range")
	ErrRankIndexOutOfRange   = errors.New("bitvec: rank index out of range")
	ErrSelectOutOfRange      = errors.New("bitvec: select rank exceeds population")
	ErrInvalidBitStringToken = errors.New("bitvec: invalid character in bit string")
)
