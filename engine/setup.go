package engine

// subtreeSizes is the "reduce leaves first" pass of angle-type
// assignment: a post-order accumulation of subtree sizes
// over the spanning tree described by edges (edge i's blockA is always
// the already-placed parent and blockB the child, per this package's
// BFS-order / tree-construction invariant), followed by a pre-order pass
// in assignAngleTypes that reads the accumulated sizes back out.
//
// blockCount is N; returns size[i] = number of blocks in the subtree
// rooted at block i (including i itself), computed by walking edges in
// reverse so every child's size is finalized before its parent adds it.
func subtreeSizes(blockCount int, edges []treeEdge) []int {
	size := make([]int, blockCount)
	for i := range size {
		size[i] = 1
	}
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		size[e.blockA] += size[e.blockB]
	}

	return size
}

// assignAngleTypes is Phase 0: for each tree edge,
// the angle type is min(minSubtreeSize, complementSize) capped at 3,
// where minSubtreeSize is the smaller of the two subtree sizes the edge
// separates; locked (angle-pinned) edges always receive type 0.
func assignAngleTypes(blockCount int, edges []treeEdge) []treeEdge {
	sizes := subtreeSizes(blockCount, edges)
	out := make([]treeEdge, len(edges))
	for i, e := range edges {
		out[i] = e
		if e.locked {
			out[i].angleType = 0

			continue
		}
		childSize := sizes[e.blockB]
		complement := blockCount - childSize
		minSize := childSize
		if complement < minSize {
			minSize = complement
		}
		if minSize > 3 {
			minSize = 3
		}
		out[i].angleType = minSize
	}

	return out
}
