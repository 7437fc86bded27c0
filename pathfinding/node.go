package pathfinding

import "math"

// NoParent marks a node without a predecessor. Only the start node of a
// search keeps it after being opened.
const NoParent = -1

// GridNode holds the search bookkeeping for one traversable cell. Nodes are
// created by PathFinder.LoadMap and have no identity outside their owning
// PathFinder.
type GridNode struct {
	X, Y  int // Cell coordinates, fixed for the node's lifetime
	Index int // Position in the finder's flat node collection

	G float64 // Accumulated cost from the start along the best known path
	H float64 // Straight-line estimate to the destination, computed once

	// Parent is the index of the node this one was best reached from.
	// It is always reassigned together with G; updating one without the
	// other would make the reconstructed path inconsistent with the
	// recorded costs.
	Parent int

	open    bool
	closed  bool
	inPath  bool
	heapIdx int
}

// Open marks the node as a candidate for exploration. Idempotent; a node is
// never open and closed at the same time.
func (n *GridNode) Open() {
	n.open = true
	n.closed = false
}

// Close marks the node's exploration as finished. Idempotent.
func (n *GridNode) Close() {
	n.open = false
	n.closed = true
}

// IsOpen reports whether the node is in the open set.
func (n *GridNode) IsOpen() bool { return n.open }

// IsClosed reports whether the node is in the closed set.
func (n *GridNode) IsClosed() bool { return n.closed }

// InPath reports whether the node ended up on the returned path. Written
// once, during path reconstruction.
func (n *GridNode) InPath() bool { return n.inPath }

// F returns the node's combined score round(g + h), used only for ordering.
func (n *GridNode) F() int {
	return int(math.Round(n.G + n.H))
}

// DistanceTo returns the Euclidean distance between the two nodes'
// coordinates, not the grid-path distance.
func (n *GridNode) DistanceTo(other *GridNode) float64 {
	dx := float64(n.X - other.X)
	dy := float64(n.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
