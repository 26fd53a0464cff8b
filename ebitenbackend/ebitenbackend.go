// Package ebitenbackend submits a [tinygp.Context]'s recorded command stream
// to an [Ebitengine] render target.
//
// [Ebitengine]: https://ebitengine.org
package ebitenbackend

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeozeozeo/tinygp"
)

// Renderer walks a Context's command stream and submits it via DrawTriangles,
// converting the clip-space vertex positions a Context records back into the
// pixel space of the current viewport.
type Renderer struct {
	// Image supplies the source texture for a draw command's userdata. A
	// nil result (or a nil Image field) falls back to a 1x1 white pixel, so
	// untextured polygons still render.
	Image func(userdata any) *ebiten.Image

	whitePixel *ebiten.Image

	vertexBuf []ebiten.Vertex
}

// ensureWhitePixel lazily allocates the fallback texture used for untextured
// draws. Renderer is single-threaded like its Context, so no sync.Once is
// needed.
func (r *Renderer) ensureWhitePixel() *ebiten.Image {
	if r.whitePixel == nil {
		r.whitePixel = ebiten.NewImage(1, 1)
		r.whitePixel.Fill(color.White)
	}
	return r.whitePixel
}

// imageFor resolves the texture for a draw command, falling back to the
// white pixel when Image is unset or returns nil.
func (r *Renderer) imageFor(userdata any) *ebiten.Image {
	if r.Image != nil {
		if img := r.Image(userdata); img != nil {
			return img
		}
	}
	return r.ensureWhitePixel()
}

// Submit draws every non-tombstone command recorded in ctx since its last
// Begin onto target. Viewport commands shift which sub-image of target
// subsequent draws land in and establish the pixel scale clip-space vertex
// positions are mapped back through; Scissor commands additionally clip to a
// sub-image; Clear fills the current sub-image with the recorded color.
func (r *Renderer) Submit(target *ebiten.Image, ctx *tinygp.Context) {
	base := target
	current := target
	viewport := tinygp.IRect{W: target.Bounds().Dx(), H: target.Bounds().Dy()}

	n := ctx.NumCommands()
	for i := uint32(0); i < n; i++ {
		cmd, ok := ctx.GetCommand(i)
		if !ok {
			break
		}

		switch cmd.Type {
		case tinygp.CommandNone:
			continue

		case tinygp.CommandViewport:
			viewport = cmd.Viewport
			current = subImage(base, viewport)

		case tinygp.CommandScissor:
			current = subImage(base, cmd.Scissor)

		case tinygp.CommandClear:
			current.Fill(toNRGBA(cmd.Clear))

		case tinygp.CommandDraw:
			r.submitDraw(current, ctx, cmd.Draw, cmd.Userdata, viewport)
		}
	}
}

// subImage returns target itself when s has a negative width or height,
// otherwise a sub-image clamped to target's bounds.
func subImage(target *ebiten.Image, s tinygp.IRect) *ebiten.Image {
	if s.W < 0 || s.H < 0 {
		return target
	}
	rect := target.Bounds().Intersect(image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H))
	return target.SubImage(rect).(*ebiten.Image)
}

func (r *Renderer) submitDraw(target *ebiten.Image, ctx *tinygp.Context, draw tinygp.DrawCommand, userdata any, viewport tinygp.IRect) {
	if draw.NumVertices == 0 || draw.NumIndices == 0 {
		return
	}

	src := ctx.Vertices(draw)
	if cap(r.vertexBuf) < len(src) {
		r.vertexBuf = make([]ebiten.Vertex, len(src))
	}
	verts := r.vertexBuf[:len(src)]

	// Sub-images keep their parent's coordinate space, so the viewport
	// origin is added explicitly.
	x0, y0 := float32(viewport.X), float32(viewport.Y)
	w, h := float32(viewport.W), float32(viewport.H)
	for i, v := range src {
		verts[i] = ebiten.Vertex{
			DstX:   x0 + (v.Position.X+1)/2*w,
			DstY:   y0 + (1-v.Position.Y)/2*h,
			SrcX:   v.Texcoord.X,
			SrcY:   v.Texcoord.Y,
			ColorR: v.Color.R,
			ColorG: v.Color.G,
			ColorB: v.Color.B,
			ColorA: v.Color.A,
		}
	}

	img := r.imageFor(userdata)

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles(verts, ctx.Indices(draw), img, &op)
}

func toNRGBA(c tinygp.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
