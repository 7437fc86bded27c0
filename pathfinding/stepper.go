package pathfinding

import "gridnav/core"

// Snapshot exposes the state of a stepped search after one iteration.
type Snapshot struct {
	Current     core.Point // Node selected for the next expansion
	OpenCount   int        // Open nodes still awaiting selection
	ClosedCount int        // Nodes whose exploration finished
	StepIndex   int        // Iterations run so far
	Done        bool       // Search terminated
	Found       bool       // Destination reached; Path is set
	Path        core.Path  // Destination-first path when Found
}

// Stepper advances a search one iteration at a time, for driving
// visualizations or debugging tools. It shares the exact state machine of
// FindPath, so it terminates on the same three conditions: destination
// selected, open set exhausted, or loop budget reached.
type Stepper struct {
	s        *search
	maxLoops int
	last     Snapshot
}

// NewStepper starts a stepped search with the finder's current map,
// endpoints and weights. maxLoops has FindPath semantics.
func (pf *PathFinder) NewStepper(maxLoops int) (*Stepper, error) {
	s, err := pf.newSearch()
	if err != nil {
		return nil, err
	}
	st := &Stepper{s: s, maxLoops: maxLoops}
	st.last = Snapshot{Current: core.Point{X: s.current.X, Y: s.current.Y}}
	if s.current == s.dest {
		st.last.Done = true
		st.last.Found = true
		st.last.Path = pf.reconstruct(s.current)
	}
	return st, nil
}

// Step runs one iteration and returns the resulting snapshot. Once the
// search is done, further calls return the final snapshot unchanged.
func (st *Stepper) Step() Snapshot {
	if st.last.Done {
		return st.last
	}

	done, found := st.s.step()
	if !done && st.maxLoops != Unbounded && st.s.loops >= st.maxLoops {
		done = true
	}

	snap := Snapshot{
		OpenCount:   st.s.open.Len(),
		ClosedCount: st.s.closed,
		StepIndex:   st.s.loops,
		Done:        done,
		Found:       found,
	}
	if st.s.current != nil {
		snap.Current = core.Point{X: st.s.current.X, Y: st.s.current.Y}
	}
	if found {
		snap.Path = st.s.pf.reconstruct(st.s.current)
	}
	st.last = snap
	return snap
}

// Run steps the search to completion and returns the final snapshot.
func (st *Stepper) Run() Snapshot {
	for {
		snap := st.Step()
		if snap.Done {
			return snap
		}
	}
}
