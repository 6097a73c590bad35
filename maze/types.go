package maze

import "errors"

// MinRoomDimension is the smallest width/height a room may have and still be
// bisected; smaller rooms are leaves and receive a boundary opening instead.
const MinRoomDimension = 2

// maxWallPosition caps the normalized wall position strictly below 1 so a
// dividing wall can never land past the room's far edge and spawn a
// zero-size child forever re-entering the worklist.
const maxWallPosition = 0.999999

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions indicates a non-positive unscaled width or height.
	ErrBadDimensions = errors.New("maze: width and height must be at least 1")
	// ErrBadScale indicates a scale multiplier below 1.
	ErrBadScale = errors.New("maze: scale multiplier must be at least 1")
	// ErrRoomIndex indicates a command targeting a room index outside the
	// pending worklist.
	ErrRoomIndex = errors.New("maze: room index outside pending room list")
	// ErrNoPendingRooms indicates a division command arriving after every
	// dividable room has been consumed.
	ErrNoPendingRooms = errors.New("maze: no dividable rooms remain")
	// ErrWallPosition indicates a negative normalized wall position.
	ErrWallPosition = errors.New("maze: wall position must be in [0,1)")
	// ErrPassagePosition indicates a negative normalized passage position.
	ErrPassagePosition = errors.New("maze: passage position must be in [0,1)")
	// ErrFinalized indicates use of a Builder after Build.
	ErrFinalized = errors.New("maze: structure already built")
)

// Room is a rectangular sub-region of the grid. Rooms are transient
// subdivision state; they are never retained past generation.
type Room struct {
	X, Y          int
	Width, Height int
}

// Divisible reports whether the room is large enough to bisect.
func (r Room) Divisible() bool {
	return r.Width >= MinRoomDimension && r.Height >= MinRoomDimension
}

// empty reports whether the room has no cells (a degenerate split residue).
func (r Room) empty() bool { return r.Width < 1 || r.Height < 1 }

// Command is one genome-decoded subdivision instruction.
//
// WallPosition and PassagePosition are normalized to [0,1); values at or
// above 1 are capped just below 1. Horizontal is the default
// orientation bit, consulted only when the target room is square — an
// oblong room always bisects across its longer axis.
type Command struct {
	RoomIndex       int
	WallPosition    float64
	PassagePosition float64
	Horizontal      bool
}

// Options holds the construction parameters of a maze.
type Options struct {
	// Width and Height are the unscaled grid dimensions, in cells.
	Width, Height int
	// ScaleMultiplier converts unscaled cell coordinates into
	// rendering/simulation coordinates.
	ScaleMultiplier int
	// GenomeID optionally tags the structure with its source genome.
	GenomeID uint32
}

// DefaultOptions returns a 10×10 grid at scale 32.
func DefaultOptions() Options {
	return Options{Width: 10, Height: 10, ScaleMultiplier: 32}
}
