package pathfinding

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gridnav/core"
)

// Request is one start/destination query in a batch.
type Request struct {
	Start, Dest core.Point
}

// Result pairs a request with its outcome. Err carries per-request endpoint
// failures; an empty path with a nil Err means no route was found within the
// budget.
type Result struct {
	Request Request
	Path    core.Path
	Err     error
}

// FindPaths runs the requests concurrently over one traversability grid and
// returns results in request order. PathFinder instances are single-owner,
// so every worker builds its own finder; cells is only read and must not be
// mutated while the batch runs. A cancelled context aborts unstarted work
// and is returned as the batch error. maxLoops has FindPath semantics and
// applies to every request.
func FindPaths(ctx context.Context, width, height int, cells [][]bool, requests []Request, maxLoops int) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pf, err := NewPathFinder(width, height)
			if err != nil {
				return err
			}
			if err := pf.LoadMap(cells); err != nil {
				return err
			}
			results[i] = Result{Request: req}
			if err := pf.SetStart(req.Start.X, req.Start.Y); err != nil {
				results[i].Err = err
				return nil
			}
			if err := pf.SetDestination(req.Dest.X, req.Dest.Y); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Path, results[i].Err = pf.FindPath(maxLoops)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
