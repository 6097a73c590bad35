package maze

import (
	"errors"
	"fmt"

	"github.com/jbrant/mccmaze/grid"
	"github.com/jbrant/mccmaze/solve"
)

// Builder drives genome-ordered maze subdivision over a single owned grid.
//
// The recursive room tree of the textbook algorithm is flattened into an
// explicit worklist: Divide consumes one pending room per command, draws its
// wall, and appends any dividable children. A Builder is single-threaded;
// callers must not share one across goroutines.
type Builder struct {
	opts    Options
	g       *grid.Grid
	pending []Room
	built   bool
}

// NewBuilder allocates the grid and seeds the worklist with the root room.
// Returns ErrBadDimensions or ErrBadScale for invalid parameters.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadDimensions
	}
	if opts.ScaleMultiplier < 1 {
		return nil, ErrBadScale
	}
	g, err := grid.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	b := &Builder{opts: opts, g: g}
	root := Room{X: 0, Y: 0, Width: opts.Width, Height: opts.Height}
	if root.Divisible() {
		b.pending = append(b.pending, root)
	}
	return b, nil
}

// Grid exposes the grid under construction so trajectory-first callers can
// pre-seed solution-path cells (grid.MarkPath) before the first Divide.
func (b *Builder) Grid() *grid.Grid { return b.g }

// PendingRooms returns how many dividable rooms remain in the worklist.
func (b *Builder) PendingRooms() int { return len(b.pending) }

// Divide applies one subdivision command: the room at cmd.RoomIndex leaves
// the worklist, is enclosed and bisected, and its dividable children join
// the worklist. Malformed commands are fatal precondition violations and
// return sentinel errors; the grid is untouched on error.
func (b *Builder) Divide(cmd Command) error {
	if b.built {
		return ErrFinalized
	}
	if len(b.pending) == 0 {
		return ErrNoPendingRooms
	}
	if cmd.RoomIndex < 0 || cmd.RoomIndex >= len(b.pending) {
		return fmt.Errorf("%w: index %d with %d pending", ErrRoomIndex, cmd.RoomIndex, len(b.pending))
	}
	if cmd.WallPosition < 0 {
		return fmt.Errorf("%w: %v", ErrWallPosition, cmd.WallPosition)
	}
	if cmd.PassagePosition < 0 {
		return fmt.Errorf("%w: %v", ErrPassagePosition, cmd.PassagePosition)
	}

	r := b.pending[cmd.RoomIndex]
	b.pending = append(b.pending[:cmd.RoomIndex], b.pending[cmd.RoomIndex+1:]...)
	b.divideRoom(r, cmd)
	return nil
}

// Build finalizes the maze: extracts merged wall segments, computes scaled
// start/target locations, and derives the simulation step budget from the
// breadth-first start→target distance. The Builder is spent afterwards.
//
// An unreachable target here means the upstream genome decoding produced an
// inconsistent grid; the wrapped solve.ErrTargetUnreachable is fatal.
func (b *Builder) Build() (*Structure, error) {
	if b.built {
		return nil, ErrFinalized
	}
	b.built = true

	w, h := b.opts.Width, b.opts.Height
	dist, err := solve.Distance(b.g, grid.Point{X: 0, Y: 0}, grid.Point{X: w - 1, Y: h - 1})
	if err != nil {
		return nil, fmt.Errorf("maze: finalize: %w", err)
	}

	scale := b.opts.ScaleMultiplier
	return &Structure{
		g:     b.g,
		opts:  b.opts,
		walls: ExtractWalls(b.g, scale),
		start: grid.Point{X: scale / 2, Y: scale / 2},
		target: grid.Point{
			X: (w-1)*scale + scale/2,
			Y: (h-1)*scale + scale/2,
		},
		// even multiple of the scale factor, proportional to path length
		maxTimesteps: 2 * scale * (dist / 2),
	}, nil
}

// Generate runs the whole pipeline: commands are applied in genome order
// until the sequence is consumed or no dividable room remains, then the
// structure is finalized.
func Generate(opts Options, commands []Command) (*Structure, error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	for _, cmd := range commands {
		if err = b.Divide(cmd); err != nil {
			if errors.Is(err, ErrNoPendingRooms) {
				break // subdivisions exhausted before the genome was
			}
			return nil, err
		}
	}
	return b.Build()
}
