// Package tinygp is an immediate-mode 2D vector painter.
//
// Callers record draw commands into a [Context] every frame — convex
// polygons, raw vertex/index lists, viewport and scissor changes — and a
// backend walks [Context.GetCommand] to submit them to a GPU. There is no
// retained scene graph: a Context only remembers what has been recorded
// since the last [Context.Begin].
//
// # Quick start
//
//	ctx := tinygp.NewContext(tinygp.DefaultOptions())
//	ctx.Begin(640, 480)
//	ctx.PathClear()
//	ctx.PathTo(10, 10)
//	ctx.PathTo(100, 10)
//	ctx.PathTo(55, 90)
//	ctx.FillConvexPath(tinygp.Color{R: 1, A: 1}, true, nil)
//
//	for i := uint32(0); i < ctx.NumCommands(); i++ {
//		cmd, _ := ctx.GetCommand(i)
//		// submit cmd to a renderer
//	}
//
// # Arenas
//
// A Context preallocates its vertex, index, command, and path buffers once,
// sized by [Options]. There is no dynamic growth: exceeding a capacity is a
// silent no-op for geometry arenas (vertices/indices/commands) and a panic
// for the path arena and transform stack, since those two are only ever
// grown by explicit caller calls rather than by internal fan-out.
//
// # Batch optimizer
//
// Consecutive draws that share per-draw userdata (see [Options.UserdataEqual])
// are opportunistically merged into a single command when doing so would not
// change what ends up on screen — see [Context.DrawVertices].
//
// # Backends
//
// See the tinygp/ebitenbackend subpackage for an [Ebitengine] renderer that
// consumes a Context's command stream via DrawTriangles.
//
// [Ebitengine]: https://ebitengine.org
package tinygp
