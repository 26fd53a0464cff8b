package tinygp

// PathClear empties the current path buffer. Call before building a new
// polygon with PathTo.
func (ctx *Context) PathClear() {
	ctx.curPath = 0
}

// PathTo appends a point to the path buffer. Panics on overflow — exceeding
// Options.MaxPath is a programmer error; the path arena never grows
// dynamically.
func (ctx *Context) PathTo(x, y float32) {
	if ctx.curPath >= uint32(len(ctx.path)) {
		panic("tinygp: path arena overflow")
	}
	ctx.path[ctx.curPath] = Vec2{x, y}
	ctx.curPath++
}

// PathToMergeDuplicate behaves like PathTo, except it is a no-op if (x, y)
// is identical to the most recently appended point. Convex polygon fans
// degenerate on repeated points, so callers tracing a path from a source
// that may emit consecutive duplicates (e.g. a flattened curve) should
// prefer this over PathTo.
func (ctx *Context) PathToMergeDuplicate(x, y float32) {
	if ctx.curPath > 0 {
		last := ctx.path[ctx.curPath-1]
		if last.X == x && last.Y == y {
			return
		}
	}
	ctx.PathTo(x, y)
}

// Path returns the points accumulated since the last PathClear.
func (ctx *Context) Path() []Vec2 {
	return ctx.path[:ctx.curPath]
}

// FillConvexPath tessellates the current path as a convex polygon (see
// DrawConvexPolygon) and clears the path afterward.
func (ctx *Context) FillConvexPath(color Color, aa bool, userdata any) {
	ctx.DrawConvexPolygon(ctx.Path(), color, aa, userdata)
	ctx.PathClear()
}

// FillConvexPathDefault behaves like FillConvexPath but uses
// Options.Antialiasing instead of an explicit aa argument.
func (ctx *Context) FillConvexPathDefault(color Color, userdata any) {
	ctx.FillConvexPath(color, ctx.opts.Antialiasing, userdata)
}
