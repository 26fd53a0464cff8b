package tinygp

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorWhite is opaque white, the default painter color after Reset/Begin.
var ColorWhite = Color{1, 1, 1, 1}

// Mat2x3 is a row-major 2x3 affine matrix:
//
//	| v[0][0] v[0][1] v[0][2] |
//	| v[1][0] v[1][1] v[1][2] |
//	|    0       0       1    |
type Mat2x3 [2][3]float32

// identityMat is the identity affine transform.
var identityMat = Mat2x3{{1, 0, 0}, {0, 1, 0}}

// mulMat2Vec2 applies m to v, returning m*v as a homogeneous 2D point.
func mulMat2Vec2(m Mat2x3, v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2],
	}
}

// IRect is an integer rectangle, used for viewport and scissor state.
type IRect struct {
	X, Y, W, H int
}

// Region is an axis-aligned clip-space bounding box with x1<=x2, y1<=y2.
type Region struct {
	X1, Y1, X2, Y2 float32
}

// regionsOverlap is a strict, exclusive overlap predicate: regions that
// merely touch at an edge do not count as overlapping.
func regionsOverlap(a, b Region) bool {
	return !(a.X2 <= b.X1 || b.X2 <= a.X1 || a.Y2 <= b.Y1 || b.Y2 <= a.Y1)
}

// unionRegion returns the componentwise min/max of a and b.
func unionRegion(a, b Region) Region {
	return Region{
		X1: min32(a.X1, b.X1),
		Y1: min32(a.Y1, b.Y1),
		X2: max32(a.X2, b.X2),
		Y2: max32(a.Y2, b.Y2),
	}
}

// offScreen reports whether region lies entirely outside clip space [-1, 1]^2
// on a single axis.
func (r Region) offScreen() bool {
	return r.X1 > 1 || r.Y1 > 1 || r.X2 < -1 || r.Y2 < -1
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Index addresses a vertex within a draw command's vertex range.
type Index = uint16

// Vertex is a single painter vertex. Position is stored in clip space once a
// draw command has been queued (transform-and-queue has run); before that it
// holds untransformed local coordinates.
type Vertex struct {
	Position Vec2
	Texcoord Vec2
	Color    Color
}

// CommandType identifies the kind of a recorded Command.
type CommandType uint8

const (
	// CommandNone is a tombstone: a command slot the batch optimizer has
	// marked dead. Backends must skip it.
	CommandNone CommandType = iota
	CommandViewport
	CommandScissor
	CommandDraw
	CommandClear
)

// DrawCommand describes a triangle-list draw: its vertices occupy
// [VtxOffset, VtxOffset+NumVertices) and its indices occupy [IdxOffset,
// IdxOffset+NumIndices) in the context's arenas. Index values are
// command-local — an index of i means the vertex at arena offset
// VtxOffset+i, not absolute arena offset i — so a draw's geometry can be
// built and relocated independently of where it ends up in the arena.
type DrawCommand struct {
	VtxOffset   uint32
	IdxOffset   uint32
	NumVertices uint32
	NumIndices  uint32
	Region      Region
}

// Command is a tagged variant recorded into the command arena. Unlike the C
// original's tagged union, Go has no overlapping storage, so payload fields
// are kept side by side; only the field matching Type is meaningful.
type Command struct {
	Type     CommandType
	Viewport IRect
	Scissor  IRect
	Draw     DrawCommand
	Clear    Color

	// Userdata is the opaque per-draw key used by the batch optimizer to
	// decide whether two draws share GPU state (see Options.UserdataEqual).
	// Populated only for CommandDraw.
	Userdata any
}
