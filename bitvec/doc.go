/*
Package bitvec implements a succinct, immutable bit vector with amortized
O(1) rank and select, independent of the vector's length.

This is the rank/select collaborator the louds package builds its node
addressing on top of (see forestrie/go-loudstrie/louds). It follows the same
"functional primitives, explicit layout, burden of knowledge on the caller
for hot paths" approach as go-merklelog/mmr's bit arithmetic and
go-merklelog/bloom's bit-packing, adapted here to the rank/select problem
those packages don't themselves solve.

# Layout

Bits are packed 8-per-byte, LSB0 within each 64-bit word (bit 0 is the
least-significant bit of word 0), matching the bit-ordering convention
go-merklelog/bloom uses for its filter regions.

Rank answers are precomputed at two granularities so a query never scans
more than one chunk's worth of blocks:

  - a block is one 64-bit word (64 bits),
  - a chunk is 8 blocks (512 bits).

chunkRank[c] holds the population count of all bits strictly before chunk c.
blockRank[w] holds the population count of bits strictly before word w,
relative to the start of w's own chunk (so it always fits a uint16). Rank1
at any bit index is then chunkRank + blockRank + a single masked
bits.OnesCount64 of the partial word — three lookups and one popcount,
regardless of vector length. Rank0 is the complement (i - Rank1(i)) and
needs no separate table. Select walks the same two levels (binary search
over chunks, linear scan of at most 8 blocks, then a bounded scan of the
matched word) instead of scanning from the start of the vector.
*/
package bitvec
