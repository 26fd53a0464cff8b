package tinygp

import (
	"fmt"
	"os"
)

// Context is the single-threaded, non-reentrant painter recorder. It owns
// preallocated vertex, index, command, and path arenas plus a small amount
// of transform/color/viewport/scissor state.
type Context struct {
	opts Options

	screenW, screenH int
	viewport         IRect
	scissor          IRect

	vertices  []Vertex
	curVertex uint32

	indices  []Index
	curIndex uint32

	commands   []Command
	curCommand uint32

	path    []Vec2
	curPath uint32

	fringeScale float32

	proj      Mat2x3
	transform Mat2x3
	mvp       Mat2x3

	transformStack []Mat2x3
	curTransform   int

	color Color

	currentUserdata any

	debug      bool
	debugStats debugStats
}

// debugStats accumulates counters of arena exhaustion, off-screen culls and
// batch merges. They are updated whether or not debug logging is on and are
// not printed.
type debugStats struct {
	vertexArenaFull  int
	indexArenaFull   int
	commandArenaFull int
	pathArenaFull    int
	culledDraws      int
	merges           int
}

// NewContext allocates a context with the given options. Arenas are
// allocated once and persist across frames; only the cursors reset on Begin.
func NewContext(opts Options) *Context {
	ctx := &Context{
		opts:         opts,
		vertices:     make([]Vertex, opts.MaxVertices),
		indices:      make([]Index, opts.MaxIndices),
		commands:     make([]Command, opts.MaxCommands),
		path:        make([]Vec2, opts.MaxPath),
		fringeScale: opts.FringeScale,
		transform:   identityMat,
	}
	depth := opts.TransformStackDepth
	if depth <= 0 {
		depth = 1
	}
	ctx.transformStack = make([]Mat2x3, depth)
	return ctx
}

// Destroy releases the context's arenas. The context must not be used
// afterward. Go's GC reclaims the memory regardless; Destroy exists to make
// use-after-destroy bugs easy to spot (arenas are nilled, so a later call
// panics on index OOB rather than silently corrupting freed memory).
func (ctx *Context) Destroy() {
	ctx.vertices = nil
	ctx.indices = nil
	ctx.commands = nil
	ctx.path = nil
	ctx.transformStack = nil
}

// SetDebug enables or disables stderr logging of arena exhaustion and
// off-screen culls as they happen. It never gates the underlying silent-no-op
// behavior on arena exhaustion — it only reports it.
func (ctx *Context) SetDebug(enabled bool) {
	ctx.debug = enabled
}

func (ctx *Context) debugLogf(format string, args ...any) {
	if !ctx.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tinygp] "+format+"\n", args...)
}

// defaultProjection maps viewport [0,w]x[0,h] to [-1,1]^2 with inverted y.
func defaultProjection(w, h int) Mat2x3 {
	return Mat2x3{
		{2.0 / float32(w), 0, -1},
		{0, -2.0 / float32(h), 1},
	}
}

// multProjAndTransform computes proj*transform, reusing the projection's
// diagonal form so only six multiplies and two adds are needed in all.
func multProjAndTransform(p, t Mat2x3) Mat2x3 {
	x := p[0][0]
	y := p[1][1]
	return Mat2x3{
		{x * t[0][0], x * t[0][1], x*t[0][2] + p[0][2]},
		{y * t[1][0], y * t[1][1], y*t[1][2] + p[1][2]},
	}
}

func (ctx *Context) updateMVP() {
	ctx.mvp = multProjAndTransform(ctx.proj, ctx.transform)
}

// Begin resets all per-frame cursors, installs the default projection for
// (width, height), resets color/viewport/scissor sentinels, and records an
// explicit initial Viewport command so every frame starts with one.
func (ctx *Context) Begin(width, height int) {
	ctx.screenW = width
	ctx.screenH = height
	ctx.viewport = IRect{X: 0, Y: 0, W: -1, H: -1}
	ctx.scissor = IRect{X: 0, Y: 0, W: -1, H: -1}

	ctx.proj = defaultProjection(width, height)
	ctx.transform = identityMat
	ctx.mvp = ctx.proj

	ctx.color = ColorWhite

	ctx.curCommand = 0
	ctx.curVertex = 0
	ctx.curIndex = 0
	ctx.curTransform = 0
	ctx.curPath = 0

	ctx.Viewport(0, 0, width, height)
}

// GetCommand returns the command at index, or false if index is out of the
// currently-recorded range.
func (ctx *Context) GetCommand(index uint32) (Command, bool) {
	if index >= ctx.curCommand {
		return Command{}, false
	}
	return ctx.commands[index], true
}

// NumCommands returns the number of commands recorded so far this frame.
func (ctx *Context) NumCommands() uint32 {
	return ctx.curCommand
}

// Vertices returns the vertex slice a Draw command addresses. The returned
// slice aliases the context's arena and is only valid until the next Begin.
func (ctx *Context) Vertices(draw DrawCommand) []Vertex {
	return ctx.vertices[draw.VtxOffset : draw.VtxOffset+draw.NumVertices]
}

// Indices returns the index slice a Draw command addresses. Index values are
// command-local: a value of i addresses Vertices(draw)[i], not the i'th
// vertex of the whole arena. The returned slice aliases the context's arena
// and is only valid until the next Begin.
func (ctx *Context) Indices(draw DrawCommand) []Index {
	return ctx.indices[draw.IdxOffset : draw.IdxOffset+draw.NumIndices]
}

// peekPrevCommand returns a pointer to the command `count` slots back from
// the write cursor, or nil if fewer than `count` commands have been recorded.
func (ctx *Context) peekPrevCommand(count uint32) *Command {
	if count <= ctx.curCommand {
		return &ctx.commands[ctx.curCommand-count]
	}
	return nil
}

// nextCommand reserves and returns the next command slot. Returns nil if the
// command arena is full.
func (ctx *Context) nextCommand() *Command {
	if ctx.curCommand < uint32(len(ctx.commands)) {
		cmd := &ctx.commands[ctx.curCommand]
		ctx.curCommand++
		return cmd
	}
	ctx.debugStats.commandArenaFull++
	ctx.debugLogf("command arena full (capacity %d)", len(ctx.commands))
	return nil
}
