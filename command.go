package tinygp

// Viewport sets the render viewport. Idempotent: no command is emitted if
// (x, y, w, h) matches the current viewport. Otherwise the immediately
// preceding command is overwritten in place if it is also a Viewport
// (coalescing consecutive viewport changes into one command); otherwise a
// new command is appended.
//
// If a scissor is currently active, the viewport delta is added to its
// stored (viewport-relative) origin; no Scissor command is emitted for it.
// The default projection for the new size is
// installed and MVP refreshed.
func (ctx *Context) Viewport(x, y, w, h int) {
	if ctx.viewport.X == x && ctx.viewport.Y == y && ctx.viewport.W == w && ctx.viewport.H == h {
		return
	}

	cmd := ctx.peekPrevCommand(1)
	if cmd == nil || cmd.Type != CommandViewport {
		cmd = ctx.nextCommand()
		if cmd == nil {
			return
		}
	}

	viewport := IRect{X: x, Y: y, W: w, H: h}
	*cmd = Command{Type: CommandViewport, Viewport: viewport}

	if ctx.scissor.W >= 0 && ctx.scissor.H >= 0 {
		ctx.scissor.X += x - ctx.viewport.X
		ctx.scissor.Y += y - ctx.viewport.Y
	}

	ctx.viewport = viewport
	ctx.proj = defaultProjection(w, h)
	ctx.updateMVP()
}

// ResetViewport installs a viewport covering the whole screen passed to Begin.
func (ctx *Context) ResetViewport() {
	ctx.Viewport(0, 0, ctx.screenW, ctx.screenH)
}

// Scissor sets the clip rectangle, in viewport-relative coordinates. Negative
// w and h disable clipping (a full-screen scissor is emitted instead).
// Idempotent and coalescing, like Viewport. The command stores the scissor
// offset into screen coordinates by the current viewport origin.
func (ctx *Context) Scissor(x, y, w, h int) {
	if ctx.scissor.X == x && ctx.scissor.Y == y && ctx.scissor.W == w && ctx.scissor.H == h {
		return
	}

	offset := IRect{X: ctx.viewport.X + x, Y: ctx.viewport.Y + y, W: w, H: h}
	if w < 0 && h < 0 {
		offset = IRect{X: 0, Y: 0, W: ctx.screenW, H: ctx.screenH}
	}

	cmd := ctx.peekPrevCommand(1)
	if cmd == nil || cmd.Type != CommandScissor {
		cmd = ctx.nextCommand()
		if cmd == nil {
			return
		}
	}
	*cmd = Command{Type: CommandScissor, Scissor: offset}

	ctx.scissor = IRect{X: x, Y: y, W: w, H: h}
}

// ResetScissor disables clipping.
func (ctx *Context) ResetScissor() {
	ctx.Scissor(0, 0, -1, -1)
}

// ResetState restores color, projection, scissor, transform, and viewport to
// their defaults.
func (ctx *Context) ResetState() {
	ctx.ResetColor()
	ctx.ResetProjection()
	ctx.ResetScissor()
	ctx.ResetTransform()
	ctx.ResetViewport()
}

// Clear appends a dedicated Clear command carrying the current color. It is
// not a geometry draw — backends may map it to a fast clear operation.
func (ctx *Context) Clear() {
	cmd := ctx.nextCommand()
	if cmd == nil {
		return
	}
	*cmd = Command{Type: CommandClear, Clear: ctx.color}
}
