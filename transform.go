package tinygp

import "math"

// Project sets the projection to map the rectangle (left, right, top,
// bottom) onto clip space [-1, 1]^2.
func (ctx *Context) Project(left, right, top, bottom float32) {
	w := right - left
	h := top - bottom
	ctx.proj = Mat2x3{
		{2.0 / w, 0, -(right + left) / w},
		{0, 2.0 / h, -(top + bottom) / h},
	}
	ctx.updateMVP()
}

// ResetProjection installs the default projection for the current viewport
// dimensions (x: [0,w]->[-1,1], y: [0,h]->[1,-1], inverted).
func (ctx *Context) ResetProjection() {
	ctx.proj = defaultProjection(ctx.viewport.W, ctx.viewport.H)
	ctx.updateMVP()
}

// PushTransform pushes the current transform onto the fixed-depth stack.
// Panics on overflow; the stack never grows dynamically.
func (ctx *Context) PushTransform() {
	if ctx.curTransform >= len(ctx.transformStack) {
		panic("tinygp: transform stack overflow")
	}
	ctx.transformStack[ctx.curTransform] = ctx.transform
	ctx.curTransform++
}

// PopTransform restores the transform most recently pushed. Panics on
// underflow.
func (ctx *Context) PopTransform() {
	if ctx.curTransform <= 0 {
		panic("tinygp: transform stack underflow")
	}
	ctx.curTransform--
	ctx.transform = ctx.transformStack[ctx.curTransform]
	ctx.updateMVP()
}

// ResetTransform installs the identity transform.
func (ctx *Context) ResetTransform() {
	ctx.transform = identityMat
	ctx.updateMVP()
}

// Translate post-multiplies the current transform by a translation.
func (ctx *Context) Translate(x, y float32) {
	ctx.transform[0][2] += x*ctx.transform[0][0] + y*ctx.transform[0][1]
	ctx.transform[1][2] += x*ctx.transform[1][0] + y*ctx.transform[1][1]
	ctx.updateMVP()
}

// Scale post-multiplies the current transform by a scale.
func (ctx *Context) Scale(sx, sy float32) {
	ctx.transform[0][0] *= sx
	ctx.transform[1][0] *= sx
	ctx.transform[0][1] *= sy
	ctx.transform[1][1] *= sy
	ctx.updateMVP()
}

// ScaleAt scales around the pivot (x, y): translate(p); scale; translate(-p).
func (ctx *Context) ScaleAt(sx, sy, x, y float32) {
	ctx.Translate(x, y)
	ctx.Scale(sx, sy)
	ctx.Translate(-x, -y)
}

// Rotate post-multiplies the current transform by a rotation of theta
// radians.
func (ctx *Context) Rotate(theta float32) {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	t := ctx.transform
	ctx.transform = Mat2x3{
		{c*t[0][0] + s*t[0][1], -s*t[0][0] + c*t[0][1], t[0][2]},
		{c*t[1][0] + s*t[1][1], -s*t[1][0] + c*t[1][1], t[1][2]},
	}
	ctx.updateMVP()
}

// RotateAt rotates around the pivot (x, y): translate(p); rotate; translate(-p).
func (ctx *Context) RotateAt(theta, x, y float32) {
	ctx.Translate(x, y)
	ctx.Rotate(theta)
	ctx.Translate(-x, -y)
}

// SetColor sets the current draw color.
func (ctx *Context) SetColor(r, g, b, a float32) {
	ctx.color = Color{r, g, b, a}
}

// ResetColor restores the current draw color to opaque white.
func (ctx *Context) ResetColor() {
	ctx.color = ColorWhite
}
