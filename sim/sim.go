package sim

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"go-life/model"
	"go-life/rules"
	"go-life/utils"
)

// Emit is the rendering sink. It is invoked once per frame, in strictly
// increasing generation order, with the authoritative grid. The grid is live:
// callers must read what they need before returning and must not retain it.
type Emit func(g *model.Grid, generation int)

// Run steps the grid through cfg.Generations generations, emitting every
// frame including the initial state, so the sink fires exactly
// cfg.Generations+1 times. Each generation freezes the previous state into a
// scratch snapshot and rewrites every interior cell from that snapshot, so
// in-place writes never influence neighbor counts within the same generation.
// The run always completes the full configured count; there is no
// convergence or stability detection.
func Run(grid *model.Grid, cfg utils.Config, emit Emit) error {
	scratch, err := acquireScratch(grid, cfg)
	if err != nil {
		return err
	}
	defer releaseScratch(scratch, cfg)

	emit(grid, 0)

	for generation := 1; generation <= cfg.Generations; generation++ {
		if err = grid.CopyInto(scratch); err != nil {
			return err
		}
		if cfg.Parallel {
			stepParallel(grid, scratch)
		} else {
			step(grid, scratch)
		}
		emit(grid, generation)
	}

	return nil
}

// step rewrites every interior cell of grid from the frozen scratch snapshot
func step(grid, scratch *model.Grid) {
	for r := 1; r <= grid.Rows(); r++ {
		for c := 1; c <= grid.Cols(); c++ {
			grid.Set(r, c, rules.NextState(scratch, r, c))
		}
	}
}

// stepParallel shards the interior rows across workers. Safe because every
// worker reads only the immutable scratch snapshot and writes disjoint rows.
func stepParallel(grid, scratch *model.Grid) {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (grid.Rows() + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = 1 + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, grid.Rows()+1)
		)
		if startRow > grid.Rows() {
			break
		}

		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				for c := 1; c <= grid.Cols(); c++ {
					grid.Set(r, c, rules.NextState(scratch, r, c))
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()
}

var scratchPool = model.NewGridPool()

func acquireScratch(grid *model.Grid, cfg utils.Config) (*model.Grid, error) {
	if cfg.UseMemoryPool {
		return scratchPool.Get(grid.Rows(), grid.Cols())
	}
	return model.NewGrid(grid.Rows(), grid.Cols())
}

func releaseScratch(scratch *model.Grid, cfg utils.Config) {
	if cfg.UseMemoryPool {
		model.GridToPool(scratch, scratchPool)
	}
}
