package tinygp

// Options configures a Context's arena capacities and default drawing state.
// There is no dynamic growth: capacities are fixed for the lifetime of the
// context.
type Options struct {
	MaxVertices uint32
	MaxIndices  uint32
	MaxPath     uint32
	MaxCommands uint32

	// Antialiasing is the fringe setting FillConvexPathDefault uses.
	// DrawConvexPolygon and FillConvexPath take aa as an explicit argument
	// and do not read it.
	Antialiasing bool
	// FringeScale is the pixel width of the antialiased ramp, at unit MVP scale.
	FringeScale float32

	// BatchOptimizerDepth bounds how far back the batch optimizer searches
	// for a mergeable draw. 0 disables merging entirely. Default 8.
	BatchOptimizerDepth int

	// TransformStackDepth bounds PushTransform nesting. Default 16.
	TransformStackDepth int

	// UserdataEqual compares two draws' userdata to decide whether they may
	// be merged by the batch optimizer. A nil UserdataEqual means all draws
	// are considered equal, so any two draws are merge candidates.
	UserdataEqual func(a, b any) bool
}

// DefaultOptions returns the default configuration: 65536 vertices, 3x as
// many indices, a 16384-entry path buffer and command arena, antialiasing
// on, a 1px fringe, depth-8 batch merging, and a 16-deep transform stack.
func DefaultOptions() Options {
	return Options{
		MaxVertices:         65536,
		MaxIndices:          65536 * 3,
		MaxPath:             16384,
		MaxCommands:         16384,
		Antialiasing:        true,
		FringeScale:         1.0,
		BatchOptimizerDepth: 8,
		TransformStackDepth: 16,
	}
}

// userdataEqual compares a and b using the configured comparator, defaulting
// to "always equal" when none was supplied.
func (c *Context) userdataEqual(a, b any) bool {
	if c.opts.UserdataEqual == nil {
		return true
	}
	return c.opts.UserdataEqual(a, b)
}
