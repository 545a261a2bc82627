/*
Package louds implements the navigation primitives for a succinct,
level-order-unary-degree-sequence encoded ordered tree.

# Layout

A tree of N real nodes is encoded as a single bit string built in BFS
(level) order. The string opens with a two-bit virtual super-root block
("1" "0") whose sole purpose is to give the real root a parent to
resolve to; it is never exposed as a NodeNum. Every real node then
contributes one block of its own: one '1' bit per child (in order),
followed by a single '0' terminator bit. For a small tree

	        1
	      / | \
	     2  3  4
	    /      / \
	   5      6   7

the level-order blocks are:

	super-root   : 1 0
	node 1 (root): 1 1 1 0      (three children: 2, 3, 4)
	node 2       : 1 0          (one child: 5)
	node 3       : 0            (no children)
	node 4       : 1 1 0        (two children: 6, 7)
	node 5       : 0
	node 6       : 0
	node 7       : 0

concatenated: 10 1110 10 0 110 0 0 0

Real nodes are numbered 1 (the root) upward in the order their '1' bit
appears in the string; this is also BFS order. A node's children occupy
a contiguous run of bit positions (its "child range"): node p's run
starts right after the p-th '0' (Select0(p), the terminator of the
block before p's own) and ends at the next '0'.

# Addressing

Two coordinate spaces are in play and this package is careful never to
conflate them:

  - NodeNum identifies a real node (root = 1).
  - ChildIndex identifies a bit position in the LOUDS string that holds
    a '1' bit naming some node's appearance as a child. A NodeNum other
    than the root always arrived via exactly one ChildIndex; the root
    has none (its "arrival" is the unexposed virtual super-root edge).

All navigation is rank/select arithmetic against the bitvec.Vector
backing the string — see that package for the O(1) primitives this
builds on.
*/
package louds
