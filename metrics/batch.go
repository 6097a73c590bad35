package metrics

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jbrant/mccmaze/grid"
	"github.com/jbrant/mccmaze/maze"
	"github.com/jbrant/mccmaze/solve"
)

// BatchOptions tunes population-wide metric evaluation.
type BatchOptions struct {
	// Parallelism bounds the number of concurrent workers; values below 1
	// fall back to the machine's core count.
	Parallelism int
	// RunID tags the batch for the downstream writer; uuid.Nil means a
	// fresh identifier is assigned.
	RunID uuid.UUID
}

// DefaultBatchOptions returns core-count parallelism with a fresh run id
// assigned at execution time.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Parallelism: runtime.NumCPU()}
}

func (o *BatchOptions) normalize() {
	if o.Parallelism < 1 {
		o.Parallelism = runtime.NumCPU()
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}
}

// DeceptionBatch holds one deception score per input maze, index-aligned
// with the input slice.
type DeceptionBatch struct {
	RunID  uuid.UUID
	Scores []DeceptionScore
}

// DiversityBatch holds one diversity score per input maze, index-aligned
// with the input slice. A maze's score is the mean pairwise Diversity
// against every other maze in the population.
type DiversityBatch struct {
	RunID  uuid.UUID
	Scores []DiversityScore
}

// BatchDeception solves every maze and tallies its junctures and deceptive
// turns, evaluating up to opts.Parallelism mazes concurrently. Each worker
// touches only its own maze's grid (solving annotates that grid's path
// flags), so the input mazes must be distinct structures. Score order
// matches input order regardless of scheduling.
func BatchDeception(ctx context.Context, mazes []*maze.Structure, opts BatchOptions) (*DeceptionBatch, error) {
	opts.normalize()
	scores := make([]DeceptionScore, len(mazes))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for i, s := range mazes {
		i, s := i, s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sol, err := solve.Solve(s.Grid(), s.UnscaledStart(), s.UnscaledTarget())
			if err != nil {
				return err
			}
			j, d := DeceptiveTurns(s.Grid(), sol.Path)
			scores[i] = DeceptionScore{GenomeID: s.GenomeID(), Junctures: j, Deceptive: d}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &DeceptionBatch{RunID: opts.RunID, Scores: scores}, nil
}

// BatchDiversity extracts every maze's solution path, then scores each maze
// by its mean lockstep path distance to the rest of the population. Both
// phases run under the same parallelism bound; a single-maze population
// scores 0.
func BatchDiversity(ctx context.Context, mazes []*maze.Structure, opts BatchOptions) (*DiversityBatch, error) {
	opts.normalize()
	paths := make([][]grid.Point, len(mazes))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for i, s := range mazes {
		i, s := i, s
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := solve.Path(s.Grid(), s.UnscaledStart(), s.UnscaledTarget())
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scores := make([]DiversityScore, len(mazes))
	eg, gctx = errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for i, s := range mazes {
		i, s := i, s
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum := 0.0
			for j := range paths {
				if j == i {
					continue
				}
				sum += Diversity(paths[i], paths[j])
			}
			score := 0.0
			if len(paths) > 1 {
				score = sum / float64(len(paths)-1)
			}
			scores[i] = DiversityScore{GenomeID: s.GenomeID(), Score: score}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &DiversityBatch{RunID: opts.RunID, Scores: scores}, nil
}
