package tinygp

import "testing"

func TestBeginRecordsInitialViewport(t *testing.T) {
	ctx := newTestContext()
	if got := ctx.NumCommands(); got != 1 {
		t.Fatalf("NumCommands after Begin = %d, want 1", got)
	}
	cmd, _ := ctx.GetCommand(0)
	if cmd.Type != CommandViewport {
		t.Fatalf("command 0 type = %v, want CommandViewport", cmd.Type)
	}
	if cmd.Viewport != (IRect{X: 0, Y: 0, W: 640, H: 480}) {
		t.Errorf("viewport = %v", cmd.Viewport)
	}
}

func TestBeginResetsCursors(t *testing.T) {
	ctx := newTestContext()
	ctx.DrawVertices([]Vertex{{Position: Vec2{0, 0}}, {Position: Vec2{1, 0}}, {Position: Vec2{1, 1}}}, []Index{0, 1, 2}, nil)
	if ctx.curVertex == 0 {
		t.Fatal("expected vertex cursor to advance")
	}
	ctx.Begin(640, 480)
	if ctx.curVertex != 0 || ctx.curIndex != 0 || ctx.curCommand != 1 {
		t.Errorf("cursors not reset: curVertex=%d curIndex=%d curCommand=%d", ctx.curVertex, ctx.curIndex, ctx.curCommand)
	}
}

func TestGetCommandOutOfRange(t *testing.T) {
	ctx := newTestContext()
	if _, ok := ctx.GetCommand(100); ok {
		t.Error("expected ok=false for out-of-range command index")
	}
}

func TestDefaultProjectionMapsCorners(t *testing.T) {
	proj := defaultProjection(640, 480)
	topLeft := mulMat2Vec2(proj, Vec2{0, 0})
	bottomRight := mulMat2Vec2(proj, Vec2{640, 480})
	assertNear(t, "topLeft.x", topLeft.X, -1)
	assertNear(t, "topLeft.y", topLeft.Y, 1)
	assertNear(t, "bottomRight.x", bottomRight.X, 1)
	assertNear(t, "bottomRight.y", bottomRight.Y, -1)
}

func TestDestroyNilsArenas(t *testing.T) {
	ctx := newTestContext()
	ctx.Destroy()
	if ctx.vertices != nil || ctx.indices != nil || ctx.commands != nil || ctx.path != nil {
		t.Error("Destroy did not nil out arenas")
	}
}

func TestSetDebugGatesLogging(t *testing.T) {
	ctx := newTestContext()
	if ctx.debug {
		t.Fatal("debug should default to false")
	}
	ctx.SetDebug(true)
	if !ctx.debug {
		t.Error("SetDebug(true) did not set debug flag")
	}
}
