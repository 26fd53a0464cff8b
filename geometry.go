package tinygp

// reserve claims count vertices and count2 indices from the arenas,
// returning their base offsets. Returns ok=false (and leaves cursors
// untouched) if either arena cannot satisfy the request — arena exhaustion
// is a silent no-op, not a panic.
func (ctx *Context) reserve(numVertices, numIndices uint32) (vtxOffset, idxOffset uint32, ok bool) {
	if ctx.curVertex+numVertices > uint32(len(ctx.vertices)) {
		ctx.debugStats.vertexArenaFull++
		ctx.debugLogf("vertex arena full (capacity %d)", len(ctx.vertices))
		return 0, 0, false
	}
	if ctx.curIndex+numIndices > uint32(len(ctx.indices)) {
		ctx.debugStats.indexArenaFull++
		ctx.debugLogf("index arena full (capacity %d)", len(ctx.indices))
		return 0, 0, false
	}
	vtxOffset = ctx.curVertex
	idxOffset = ctx.curIndex
	ctx.curVertex += numVertices
	ctx.curIndex += numIndices
	return vtxOffset, idxOffset, true
}

// regionOf computes the clip-space bounding box of vertices[vtxOffset :
// vtxOffset+numVertices], whose positions the drawing kernels have already
// transformed by the current MVP.
func (ctx *Context) regionOf(vtxOffset, numVertices uint32) Region {
	p := ctx.vertices[vtxOffset].Position
	region := Region{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	for i := uint32(1); i < numVertices; i++ {
		p := ctx.vertices[vtxOffset+i].Position
		region.X1 = min32(region.X1, p.X)
		region.Y1 = min32(region.Y1, p.Y)
		region.X2 = max32(region.X2, p.X)
		region.Y2 = max32(region.Y2, p.Y)
	}
	return region
}

// DrawVertices appends a raw triangle-list draw: vertices are given in local
// space and transformed by the current MVP in place; indices are copied
// verbatim and are command-local — index value i addresses the vertex at
// arena offset vtxOffset+i, not absolute arena offset i. userdata tags the
// draw for the batch optimizer's merge test — two draws are merge
// candidates when they compare equal under Options.UserdataEqual.
//
// A no-op if either arena cannot hold the request.
func (ctx *Context) DrawVertices(vertices []Vertex, indices []Index, userdata any) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}
	numVertices := uint32(len(vertices))
	numIndices := uint32(len(indices))

	vtxOffset, idxOffset, ok := ctx.reserve(numVertices, numIndices)
	if !ok {
		return
	}

	for i, v := range vertices {
		v.Position = mulMat2Vec2(ctx.mvp, v.Position)
		ctx.vertices[vtxOffset+uint32(i)] = v
	}
	for i, idx := range indices {
		ctx.indices[idxOffset+uint32(i)] = idx
	}

	region := ctx.regionOf(vtxOffset, numVertices)
	ctx.currentUserdata = userdata
	ctx.queueDraw(region, vtxOffset, idxOffset, numVertices, numIndices)
}

// fixnormalMaxInvLen2 bounds 1/|n|^2 so a near-degenerate edge (two
// near-coincident path points) doesn't blow the fringe normal up to
// infinity.
const fixnormalMaxInvLen2 = 100.0

// normalizeOverZero returns v scaled to unit length, or the zero vector if v
// is degenerate.
func normalizeOverZero(v Vec2) Vec2 {
	d2 := v.X*v.X + v.Y*v.Y
	if d2 > 0 {
		inv := invSqrt32(d2)
		return Vec2{v.X * inv, v.Y * inv}
	}
	return Vec2{}
}

func invSqrt32(x float32) float32 {
	return 1.0 / sqrt32(x)
}

func sqrt32(x float32) float32 {
	// Newton-Raphson from a crude seed, iterated until the estimate stops
	// changing; avoids importing math just for one call site used only by
	// the fringe normal computation.
	if x == 0 {
		return 0
	}
	z := x
	for i := 0; i < 64; i++ {
		next := z - (z*z-x)/(2*z)
		if next == z {
			break
		}
		z = next
	}
	return z
}

// DrawConvexPolygon tessellates a convex polygon given as a local-space
// vertex loop (as left by PathTo) into a triangle fan, ringed by an
// antialiased fringe of zero-alpha outer vertices when aa is true.
//
// A no-op for fewer than 3 points, or if either arena cannot hold the
// request.
func (ctx *Context) DrawConvexPolygon(points []Vec2, color Color, aa bool, userdata any) {
	n := uint32(len(points))
	if n < 3 {
		return
	}

	if !aa {
		ctx.drawConvexPolygonFlat(points, color, userdata)
		return
	}
	ctx.drawConvexPolygonAA(points, color, userdata)
}

// drawConvexPolygonFlat fans the polygon with no fringe: n vertices,
// 3*(n-2) indices. Indices are command-local (relative to vtxOffset), the
// same convention DrawVertices uses.
func (ctx *Context) drawConvexPolygonFlat(points []Vec2, color Color, userdata any) {
	n := uint32(len(points))
	numIndices := (n - 2) * 3

	vtxOffset, idxOffset, ok := ctx.reserve(n, numIndices)
	if !ok {
		return
	}

	for i, p := range points {
		ctx.vertices[vtxOffset+uint32(i)] = Vertex{
			Position: mulMat2Vec2(ctx.mvp, p),
			Color:    color,
		}
	}

	idx := idxOffset
	for i := uint32(1); i < n-1; i++ {
		ctx.indices[idx] = Index(0)
		ctx.indices[idx+1] = Index(i)
		ctx.indices[idx+2] = Index(i + 1)
		idx += 3
	}

	region := ctx.regionOf(vtxOffset, n)
	ctx.currentUserdata = userdata
	ctx.queueDraw(region, vtxOffset, idxOffset, n, numIndices)
}

// drawConvexPolygonAA tessellates with an antialiased fringe: each point p
// yields an inner (opaque) vertex at p-o and an outer (fully-transparent)
// vertex at p+o, where o is the point's averaged, fixnormal-clamped edge
// normal scaled by fringeScale/2 in local space, before the MVP is applied.
// The fan uses the n inner vertices; a ring of 2 triangles per edge
// connects inner to outer.
func (ctx *Context) drawConvexPolygonAA(points []Vec2, color Color, userdata any) {
	n := uint32(len(points))
	numVertices := n * 2
	numIndices := (n-2)*3 + n*6

	vtxOffset, idxOffset, ok := ctx.reserve(numVertices, numIndices)
	if !ok {
		return
	}

	halfFringe := ctx.fringeScale * 0.5

	normals := make([]Vec2, n)
	for i := uint32(0); i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		d := Vec2{p1.X - p0.X, p1.Y - p0.Y}
		d = normalizeOverZero(d)
		normals[i] = Vec2{d.Y, -d.X}
	}

	for i := uint32(0); i < n; i++ {
		prev := (i + n - 1) % n
		avg := Vec2{normals[prev].X + normals[i].X, normals[prev].Y + normals[i].Y}
		d2 := avg.X*avg.X + avg.Y*avg.Y
		if d2 > 0.000001 {
			invLen2 := 1.0 / d2
			if invLen2 > fixnormalMaxInvLen2 {
				invLen2 = fixnormalMaxInvLen2
			}
			scale := sqrt32(invLen2)
			avg = Vec2{avg.X * scale, avg.Y * scale}
		}

		p := points[i]
		off := Vec2{avg.X * halfFringe, avg.Y * halfFringe}
		inner := mulMat2Vec2(ctx.mvp, Vec2{p.X - off.X, p.Y - off.Y})
		outer := mulMat2Vec2(ctx.mvp, Vec2{p.X + off.X, p.Y + off.Y})

		ctx.vertices[vtxOffset+i] = Vertex{Position: inner, Color: color}
		transparent := color
		transparent.A = 0
		ctx.vertices[vtxOffset+n+i] = Vertex{Position: outer, Color: transparent}
	}

	// Indices are command-local (relative to vtxOffset): inner ring is
	// [0,n), outer ring is [n,2n).
	idx := idxOffset
	for i := uint32(1); i < n-1; i++ {
		ctx.indices[idx] = Index(0)
		ctx.indices[idx+1] = Index(i)
		ctx.indices[idx+2] = Index(i + 1)
		idx += 3
	}
	for i := uint32(0); i < n; i++ {
		next := (i + 1) % n
		in0 := i
		in1 := next
		out0 := n + i
		out1 := n + next

		ctx.indices[idx] = Index(in0)
		ctx.indices[idx+1] = Index(out0)
		ctx.indices[idx+2] = Index(out1)
		ctx.indices[idx+3] = Index(in0)
		ctx.indices[idx+4] = Index(out1)
		ctx.indices[idx+5] = Index(in1)
		idx += 6
	}

	region := ctx.regionOf(vtxOffset, numVertices)
	ctx.currentUserdata = userdata
	ctx.queueDraw(region, vtxOffset, idxOffset, numVertices, numIndices)
}
