package tinygp

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Mat2x3) {
	t.Helper()
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(float64(got[r][c]-want[r][c])) > epsilon {
				t.Errorf("%s[%d][%d] = %v, want %v (full: %v vs %v)", name, r, c, got[r][c], want[r][c], got, want)
			}
		}
	}
}

func newTestContext() *Context {
	ctx := NewContext(DefaultOptions())
	ctx.Begin(640, 480)
	return ctx
}

func TestResetTransformIsIdentity(t *testing.T) {
	ctx := newTestContext()
	ctx.Translate(10, 10)
	ctx.ResetTransform()
	assertMatrix(t, "reset", ctx.transform, identityMat)
}

func TestTranslate(t *testing.T) {
	ctx := newTestContext()
	ctx.Translate(10, 20)
	assertMatrix(t, "translate", ctx.transform, Mat2x3{{1, 0, 10}, {0, 1, 20}})
}

func TestTranslateComposes(t *testing.T) {
	ctx := newTestContext()
	ctx.Translate(10, 20)
	ctx.Translate(5, 5)
	assertMatrix(t, "translate twice", ctx.transform, Mat2x3{{1, 0, 15}, {0, 1, 25}})
}

func TestScale(t *testing.T) {
	ctx := newTestContext()
	ctx.Scale(2, 3)
	assertMatrix(t, "scale", ctx.transform, Mat2x3{{2, 0, 0}, {0, 3, 0}})
}

func TestRotate90(t *testing.T) {
	ctx := newTestContext()
	ctx.Rotate(float32(math.Pi / 2))
	// cos=0, sin=1: row0 = {c,-s,0}={0,-1,0}; row1 = {s,c,0}={1,0,0}
	assertMatrix(t, "rot90", ctx.transform, Mat2x3{{0, -1, 0}, {1, 0, 0}})
}

func TestScaleAtPivot(t *testing.T) {
	ctx := newTestContext()
	ctx.ScaleAt(2, 2, 10, 10)
	p := mulMat2Vec2(ctx.transform, Vec2{10, 10})
	assertNear(t, "pivot.x", p.X, 10)
	assertNear(t, "pivot.y", p.Y, 10)
}

func TestPushPopTransformRestores(t *testing.T) {
	ctx := newTestContext()
	ctx.Translate(10, 10)
	ctx.PushTransform()
	ctx.Translate(5, 5)
	ctx.PopTransform()
	assertMatrix(t, "restored", ctx.transform, Mat2x3{{1, 0, 10}, {0, 1, 10}})
}

func TestPushTransformOverflowPanics(t *testing.T) {
	opts := DefaultOptions()
	opts.TransformStackDepth = 1
	ctx := NewContext(opts)
	ctx.Begin(640, 480)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on transform stack overflow")
		}
	}()
	ctx.PushTransform()
	ctx.PushTransform()
}

func TestPopTransformUnderflowPanics(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on transform stack underflow")
		}
	}()
	ctx.PopTransform()
}

func TestUpdateMVPMatchesProjTimesTransform(t *testing.T) {
	ctx := newTestContext()
	ctx.Translate(5, 5)
	ctx.Scale(2, 2)

	want := multProjAndTransform(ctx.proj, ctx.transform)
	assertMatrix(t, "mvp", ctx.mvp, want)
}

func TestSetColorAndReset(t *testing.T) {
	ctx := newTestContext()
	ctx.SetColor(0.1, 0.2, 0.3, 0.4)
	if ctx.color != (Color{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("color = %v", ctx.color)
	}
	ctx.ResetColor()
	if ctx.color != ColorWhite {
		t.Errorf("reset color = %v, want white", ctx.color)
	}
}

func BenchmarkTranslate(b *testing.B) {
	ctx := newTestContext()
	b.ReportAllocs()
	for b.Loop() {
		ctx.Translate(1, 1)
	}
}

func BenchmarkRotate(b *testing.B) {
	ctx := newTestContext()
	b.ReportAllocs()
	for b.Loop() {
		ctx.Rotate(0.01)
	}
}
