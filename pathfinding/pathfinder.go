// Package pathfinding provides A* search over a rectangular grid of
// traversable and blocked cells.
//
// A PathFinder owns its grid and all search state. It is not safe for
// concurrent use: one PathFinder belongs to one logical task at a time, and
// callers who want a clean search after a previous one must reload the map
// (see LoadMap).
package pathfinding

import (
	"container/heap"
	"fmt"

	"gridnav/core"
)

// Unbounded disables the loop budget of FindPath. There is no implicit
// default: a non-negative budget is enforced exactly, and Unbounded lets the
// search run until the open set is exhausted.
const Unbounded = -1

// blockedCell is the lookup entry for impassable cells; no node is
// materialized for them.
const blockedCell = -1

// Weights tunes the cost model of a search. Higher Heuristic relative to
// Cost biases the search toward greedy, faster but less optimal exploration.
// The heuristic is admissible, and found paths optimal, when Heuristic <=
// Cost.
type Weights struct {
	Cost      float64 // Multiplier for actual step distances
	Heuristic float64 // Multiplier for the straight-line estimate
}

// DefaultWeights is the standard greedy-leaning cost model.
var DefaultWeights = Weights{Cost: 10, Heuristic: 30}

// AdmissibleWeights keeps the heuristic admissible so returned paths are
// cost-minimal.
var AdmissibleWeights = Weights{Cost: 10, Heuristic: 10}

// neighborOffsets enumerates the 8-connected neighborhood:
// E, W, N, S, NE, NW, SE, SW.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, -1}, {0, 1},
	{1, -1}, {-1, -1}, {1, 1}, {-1, 1},
}

// PathFinder owns a rectangular grid of GridNode entries, executes the
// search, and produces the resulting path.
type PathFinder struct {
	width, height int
	weights       Weights

	nodes []*GridNode // flat collection of all traversable nodes
	cells []int       // width*height lookup: node index or blockedCell

	start, dest       core.Point
	hasStart, hasDest bool
}

// NewPathFinder creates a finder for a width x height grid. The dimensions
// are fixed; maps of any other size are rejected by LoadMap.
func NewPathFinder(width, height int) (*PathFinder, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigurationError{
			Want: "positive dimensions",
			Got:  fmt.Sprintf("%dx%d", width, height),
		}
	}
	return &PathFinder{
		width:   width,
		height:  height,
		weights: DefaultWeights,
	}, nil
}

// Width returns the grid width.
func (pf *PathFinder) Width() int { return pf.width }

// Height returns the grid height.
func (pf *PathFinder) Height() int { return pf.height }

// Bounds returns the grid area as half-open bounds.
func (pf *PathFinder) Bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: pf.width, Y: pf.height}}
}

// SetWeights replaces the cost model. Call it before searching; weights are
// fixed for the duration of a search.
func (pf *PathFinder) SetWeights(w Weights) {
	pf.weights = w
}

// LoadMap replaces the grid wholesale. cells is indexed [y][x]; true means
// traversable. Every traversable cell gets a fresh GridNode, so all
// open/closed/cost/predecessor state from earlier searches is discarded.
// Dimensions must match the constructor's; otherwise a ConfigurationError
// is returned and the previous grid is kept.
func (pf *PathFinder) LoadMap(cells [][]bool) error {
	if len(cells) != pf.height {
		return &ConfigurationError{
			Want: fmt.Sprintf("%d rows", pf.height),
			Got:  fmt.Sprintf("%d rows", len(cells)),
		}
	}
	for y, row := range cells {
		if len(row) != pf.width {
			return &ConfigurationError{
				Want: fmt.Sprintf("%d columns", pf.width),
				Got:  fmt.Sprintf("%d columns in row %d", len(row), y),
			}
		}
	}

	pf.nodes = make([]*GridNode, 0, pf.width*pf.height)
	pf.cells = make([]int, pf.width*pf.height)
	for y, row := range cells {
		for x, traversable := range row {
			if !traversable {
				pf.cells[y*pf.width+x] = blockedCell
				continue
			}
			node := &GridNode{
				X:       x,
				Y:       y,
				Index:   len(pf.nodes),
				Parent:  NoParent,
				heapIdx: -1,
			}
			pf.cells[y*pf.width+x] = node.Index
			pf.nodes = append(pf.nodes, node)
		}
	}
	return nil
}

// nodeIndexAt returns the node index for a cell, or blockedCell when the
// cell is out of bounds, blocked, or no map has been loaded.
func (pf *PathFinder) nodeIndexAt(x, y int) int {
	if x < 0 || x >= pf.width || y < 0 || y >= pf.height || pf.cells == nil {
		return blockedCell
	}
	return pf.cells[y*pf.width+x]
}

// NodeAt returns the node occupying a cell, or false for blocked and
// out-of-bounds cells.
func (pf *PathFinder) NodeAt(x, y int) (*GridNode, bool) {
	idx := pf.nodeIndexAt(x, y)
	if idx == blockedCell {
		return nil, false
	}
	return pf.nodes[idx], true
}

// SetStart sets the search origin. Fails fast with InvalidCoordinateError
// when the cell is out of bounds, blocked, or no map is loaded yet.
func (pf *PathFinder) SetStart(x, y int) error {
	if err := pf.checkCoordinate(x, y); err != nil {
		return err
	}
	pf.start = core.Point{X: x, Y: y}
	pf.hasStart = true
	return nil
}

// SetDestination sets the search target, with the same validation as
// SetStart. Changing endpoints between searches does not reset node state;
// reload the map for a clean search.
func (pf *PathFinder) SetDestination(x, y int) error {
	if err := pf.checkCoordinate(x, y); err != nil {
		return err
	}
	pf.dest = core.Point{X: x, Y: y}
	pf.hasDest = true
	return nil
}

func (pf *PathFinder) checkCoordinate(x, y int) error {
	if pf.cells == nil {
		return &InvalidCoordinateError{X: x, Y: y, Reason: "no map loaded"}
	}
	if x < 0 || x >= pf.width || y < 0 || y >= pf.height {
		return &InvalidCoordinateError{X: x, Y: y, Reason: "out of bounds"}
	}
	if pf.cells[y*pf.width+x] == blockedCell {
		return &InvalidCoordinateError{X: x, Y: y, Reason: "cell is blocked"}
	}
	return nil
}

// FindPath runs the search and returns the path from destination to start,
// destination first. A destination equal to the start yields the single-cell
// path immediately. An empty path with a nil error means no path was found
// within the budget; that is a normal outcome, not an error. maxLoops bounds
// the number of selection rounds (Unbounded disables the bound). Errors are
// returned only for unset endpoints or endpoints invalidated by a map
// reload.
func (pf *PathFinder) FindPath(maxLoops int) (core.Path, error) {
	s, err := pf.newSearch()
	if err != nil {
		return core.Path{}, err
	}
	if s.current == s.dest {
		return pf.reconstruct(s.current), nil
	}
	for {
		done, found := s.step()
		if found {
			return pf.reconstruct(s.current), nil
		}
		if done {
			return core.Path{}, nil
		}
		if maxLoops != Unbounded && s.loops >= maxLoops {
			return core.Path{}, nil
		}
	}
}

// search holds the per-run state shared by FindPath and Stepper.
type search struct {
	pf      *PathFinder
	dest    *GridNode
	current *GridNode
	open    openQueue
	loops   int
	closed  int
}

// newSearch validates the endpoints and opens the start node.
func (pf *PathFinder) newSearch() (*search, error) {
	if !pf.hasStart {
		return nil, &InvalidCoordinateError{Reason: "start not set"}
	}
	if !pf.hasDest {
		return nil, &InvalidCoordinateError{Reason: "destination not set"}
	}
	startIdx := pf.nodeIndexAt(pf.start.X, pf.start.Y)
	if startIdx == blockedCell {
		return nil, &InvalidCoordinateError{X: pf.start.X, Y: pf.start.Y, Reason: "start is not traversable"}
	}
	destIdx := pf.nodeIndexAt(pf.dest.X, pf.dest.Y)
	if destIdx == blockedCell {
		return nil, &InvalidCoordinateError{X: pf.dest.X, Y: pf.dest.Y, Reason: "destination is not traversable"}
	}

	s := &search{pf: pf, dest: pf.nodes[destIdx]}
	start := pf.nodes[startIdx]
	start.Open()
	start.G = 0
	start.H = pf.weights.Heuristic * start.DistanceTo(s.dest)
	start.Parent = NoParent
	s.current = start
	heap.Init(&s.open)
	return s, nil
}

// step runs one iteration: expand the current node's neighbors, close it,
// and select the next current node. found implies done.
func (s *search) step() (done, found bool) {
	cur := s.current

	for _, d := range neighborOffsets {
		idx := s.pf.nodeIndexAt(cur.X+d[0], cur.Y+d[1])
		if idx == blockedCell {
			continue
		}
		nb := s.pf.nodes[idx]
		if nb.IsClosed() {
			continue
		}
		if nb.IsOpen() {
			// Improved route: G and Parent move together.
			tentative := cur.G + cur.DistanceTo(nb)*s.pf.weights.Cost
			if tentative < nb.G {
				nb.G = tentative
				nb.Parent = cur.Index
				heap.Fix(&s.open, nb.heapIdx)
			}
		} else {
			nb.Open()
			nb.H = nb.DistanceTo(s.dest) * s.pf.weights.Heuristic
			nb.G = cur.G + nb.DistanceTo(cur)*s.pf.weights.Cost
			nb.Parent = cur.Index
			heap.Push(&s.open, nb)
		}
	}

	cur.Close()
	s.closed++

	if s.open.Len() == 0 {
		s.current = nil
		return true, false
	}
	s.current = heap.Pop(&s.open).(*GridNode)
	if s.current == s.dest {
		return true, true
	}
	s.loops++
	return false, false
}

// reconstruct walks predecessor links back from the destination, marking
// path membership, and collects the points destination-first.
func (pf *PathFinder) reconstruct(goal *GridNode) core.Path {
	points := make([]core.Point, 0, 16)
	for n := goal; ; {
		n.inPath = true
		points = append(points, core.Point{X: n.X, Y: n.Y})
		if n.Parent == NoParent {
			break
		}
		n = pf.nodes[n.Parent]
	}
	return core.Path{Points: points, Cost: goal.G}
}
