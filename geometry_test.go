package tinygp

import "testing"

func TestDrawVerticesAppendsCommand(t *testing.T) {
	ctx := newTestContext()
	verts := []Vertex{
		{Position: Vec2{100, 100}},
		{Position: Vec2{200, 100}},
		{Position: Vec2{150, 200}},
	}
	ctx.DrawVertices(verts, []Index{0, 1, 2}, nil)

	if got := ctx.NumCommands(); got != 2 {
		t.Fatalf("NumCommands = %d, want 2 (viewport + draw)", got)
	}
	cmd, _ := ctx.GetCommand(1)
	if cmd.Type != CommandDraw {
		t.Fatalf("type = %v, want CommandDraw", cmd.Type)
	}
	if cmd.Draw.NumVertices != 3 || cmd.Draw.NumIndices != 3 {
		t.Errorf("draw = %d verts / %d indices, want 3/3", cmd.Draw.NumVertices, cmd.Draw.NumIndices)
	}
}

func TestDrawVerticesTransformsPosition(t *testing.T) {
	ctx := newTestContext()
	ctx.DrawVertices([]Vertex{{Position: Vec2{0, 0}}}, []Index{0}, nil)
	cmd, _ := ctx.GetCommand(1)
	got := ctx.Vertices(cmd.Draw)[0].Position
	// Default projection maps (0,0) to (-1, 1) (y inverted).
	assertNear(t, "x", got.X, -1)
	assertNear(t, "y", got.Y, 1)
}

func TestDrawVerticesEmptyIsNoop(t *testing.T) {
	ctx := newTestContext()
	before := ctx.NumCommands()
	ctx.DrawVertices(nil, nil, nil)
	if ctx.NumCommands() != before {
		t.Errorf("NumCommands changed on empty draw")
	}
}

func TestDrawConvexPolygonFlatTriangleCount(t *testing.T) {
	ctx := newTestContext()
	points := []Vec2{{100, 100}, {200, 100}, {200, 200}, {100, 200}}
	ctx.DrawConvexPolygon(points, ColorWhite, false, nil)

	cmd, _ := ctx.GetCommand(1)
	if cmd.Draw.NumVertices != 4 {
		t.Errorf("NumVertices = %d, want 4", cmd.Draw.NumVertices)
	}
	if cmd.Draw.NumIndices != 6 { // (4-2)*3
		t.Errorf("NumIndices = %d, want 6", cmd.Draw.NumIndices)
	}
}

func TestDrawConvexPolygonAAAddsFringe(t *testing.T) {
	ctx := newTestContext()
	points := []Vec2{{100, 100}, {200, 100}, {200, 200}, {100, 200}}
	ctx.DrawConvexPolygon(points, ColorWhite, true, nil)

	cmd, _ := ctx.GetCommand(1)
	if cmd.Draw.NumVertices != 8 { // n inner + n outer
		t.Errorf("NumVertices = %d, want 8", cmd.Draw.NumVertices)
	}
	if cmd.Draw.NumIndices != (4-2)*3+4*6 {
		t.Errorf("NumIndices = %d, want %d", cmd.Draw.NumIndices, (4-2)*3+4*6)
	}
}

func TestDrawConvexPolygonAAOuterVertexIsTransparent(t *testing.T) {
	ctx := newTestContext()
	points := []Vec2{{100, 100}, {200, 100}, {200, 200}, {100, 200}}
	ctx.DrawConvexPolygon(points, Color{R: 1, G: 1, B: 1, A: 1}, true, nil)

	cmd, _ := ctx.GetCommand(1)
	verts := ctx.Vertices(cmd.Draw)
	n := len(points)
	for i := 0; i < n; i++ {
		if verts[n+i].Color.A != 0 {
			t.Errorf("outer vertex %d alpha = %v, want 0", i, verts[n+i].Color.A)
		}
		if verts[i].Color.A != 1 {
			t.Errorf("inner vertex %d alpha = %v, want 1", i, verts[i].Color.A)
		}
	}
}

func TestDrawConvexPolygonIndicesAreCommandLocal(t *testing.T) {
	ctx := newTestContext()
	ctx.opts.UserdataEqual = func(a, b any) bool { return a == b } // keep the two draws separate

	// A first polygon (tagged "rect") reserves vertices [0,4) before the
	// polygon under test, so its vtxOffset is nonzero — exactly the
	// second-or-later-draw scenario where absolute indices would point at
	// the wrong (or out-of-range) vertices.
	ctx.DrawConvexPolygon([]Vec2{{0, 0}, {50, 0}, {50, 50}, {0, 50}}, ColorWhite, false, "rect")
	ctx.DrawConvexPolygon([]Vec2{{100, 100}, {200, 100}, {200, 200}, {100, 200}}, ColorWhite, false, "hex")

	cmd, _ := ctx.GetCommand(2)
	if cmd.Type != CommandDraw {
		t.Fatalf("command 2 type = %v, want CommandDraw", cmd.Type)
	}
	if cmd.Draw.VtxOffset == 0 {
		t.Fatalf("test setup error: expected a nonzero vtxOffset, got 0")
	}
	for _, idx := range ctx.Indices(cmd.Draw) {
		if uint32(idx) >= cmd.Draw.NumVertices {
			t.Errorf("index %d out of the draw's own vertex range [0,%d) — indices must be command-local", idx, cmd.Draw.NumVertices)
		}
	}
}

func TestDrawConvexPolygonTooFewPointsIsNoop(t *testing.T) {
	ctx := newTestContext()
	before := ctx.NumCommands()
	ctx.DrawConvexPolygon([]Vec2{{0, 0}, {1, 1}}, ColorWhite, false, nil)
	if ctx.NumCommands() != before {
		t.Errorf("NumCommands changed on degenerate polygon")
	}
}

func TestNormalizeOverZeroDegenerate(t *testing.T) {
	got := normalizeOverZero(Vec2{0, 0})
	if got != (Vec2{0, 0}) {
		t.Errorf("normalizeOverZero(0,0) = %v, want zero vector", got)
	}
}

func TestNormalizeOverZeroUnit(t *testing.T) {
	got := normalizeOverZero(Vec2{3, 4})
	assertNear(t, "x", got.X, 0.6)
	assertNear(t, "y", got.Y, 0.8)
}
