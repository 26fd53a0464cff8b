package tinygp

// tryMergeDraw is the batch optimizer: it searches backward over at most
// Options.BatchOptimizerDepth non-tombstone commands for a prior draw
// sharing the same userdata, then decides whether the new draw can be
// folded into it without perturbing painter order, based on how the new
// draw's region and the prior draw's region each relate to the commands
// sitting between them.
func (ctx *Context) tryMergeDraw(region Region, vtxOffset, idxOffset, numVertices, numIndices uint32) bool {
	depth := ctx.opts.BatchOptimizerDepth
	if depth <= 0 {
		return false
	}

	var prevCmdIdx uint32
	foundPrev := false
	var interCmdIdx []uint32

	scanned := 0
	for back := uint32(1); scanned < depth; back++ {
		cmd := ctx.peekPrevCommand(back)
		if cmd == nil {
			break
		}
		if cmd.Type == CommandNone {
			// Tombstones are transparent and don't count against depth.
			continue
		}
		scanned++
		if cmd.Type != CommandDraw {
			break
		}
		if ctx.userdataEqual(cmd.Userdata, ctx.currentUserdata) {
			prevCmdIdx = ctx.curCommand - back
			foundPrev = true
			break
		}
		interCmdIdx = append(interCmdIdx, ctx.curCommand-back)
	}

	if !foundPrev {
		return false
	}

	prevRegion := ctx.commands[prevCmdIdx].Draw.Region
	overlapsNext := false
	overlapsPrev := false
	for _, idx := range interCmdIdx {
		interRegion := ctx.commands[idx].Draw.Region
		if regionsOverlap(region, interRegion) {
			overlapsNext = true
		}
		if regionsOverlap(prevRegion, interRegion) {
			overlapsPrev = true
		}
		if overlapsNext && overlapsPrev {
			// The new draw and the old draw each depend on a command
			// between them in a way the other doesn't: neither can
			// commute past the intervening run, so no merge is safe.
			return false
		}
	}

	if !overlapsNext {
		return ctx.mergeIntoPrevious(prevCmdIdx, interCmdIdx, prevRegion, region, vtxOffset, idxOffset, numVertices, numIndices)
	}
	return ctx.mergeIntoNext(prevCmdIdx, prevRegion, region, vtxOffset, idxOffset, numVertices, numIndices)
}

// rebiasIndices adds bias to every command-local index value in indices, in
// place. Used when a merge relocates a draw's vertex data to a new offset
// within its (possibly new) owning command, which its index values — local
// to that command — must follow.
func rebiasIndices(indices []Index, bias uint32) {
	for i, v := range indices {
		indices[i] = Index(uint32(v) + bias)
	}
}

// mergeIntoPrevious handles the case where the new draw doesn't depend on
// anything between it and prev: its vertices/indices are relocated to sit
// directly after prev's own, sliding every intervening command's offsets
// forward, and prev's counts/region absorb the new draw.
func (ctx *Context) mergeIntoPrevious(prevCmdIdx uint32, interCmdIdx []uint32, prevRegion, region Region, vtxOffset, idxOffset, numVertices, numIndices uint32) bool {
	prev := &ctx.commands[prevCmdIdx].Draw
	prevNumVertices := prev.NumVertices

	if len(interCmdIdx) > 0 {
		// The shift below temporarily writes as far as curVertex+numVertices /
		// curIndex+numIndices (the new draw's own just-reserved data gets
		// shifted forward before being copied back into the freed gap), which
		// can run past the arenas' capacity even though numVertices/numIndices
		// were already reserved. Bail out to the normal append path rather
		// than slicing out of bounds.
		if ctx.curVertex+numVertices > uint32(len(ctx.vertices)) || ctx.curIndex+numIndices > uint32(len(ctx.indices)) {
			return false
		}

		// Shift the whole [prev's end, cursor) range — every intervening
		// command's data followed by the new draw's own, just reserved at
		// the cursor's tail — forward by the new draw's size. The new
		// draw's data, having sat at the end of that range, ends up at
		// vtxOffset+numVertices/idxOffset+numIndices afterward.
		prevEndVtx := prev.VtxOffset + prev.NumVertices
		moveVtx := ctx.curVertex - prevEndVtx
		copy(ctx.vertices[prevEndVtx+numVertices:prevEndVtx+numVertices+moveVtx], ctx.vertices[prevEndVtx:prevEndVtx+moveVtx])
		copy(ctx.vertices[prevEndVtx:prevEndVtx+numVertices], ctx.vertices[vtxOffset+numVertices:vtxOffset+2*numVertices])

		prevEndIdx := prev.IdxOffset + prev.NumIndices
		moveIdx := ctx.curIndex - prevEndIdx
		// Indices relocate through the index arena throughout, mirroring the
		// vertex-arena shift above.
		copy(ctx.indices[prevEndIdx+numIndices:prevEndIdx+numIndices+moveIdx], ctx.indices[prevEndIdx:prevEndIdx+moveIdx])
		copy(ctx.indices[prevEndIdx:prevEndIdx+numIndices], ctx.indices[idxOffset+numIndices:idxOffset+2*numIndices])

		for _, idx := range interCmdIdx {
			ctx.commands[idx].Draw.VtxOffset += numVertices
			ctx.commands[idx].Draw.IdxOffset += numIndices
		}

		// The new draw's vertices now sit right after prev's, at local offset
		// prevNumVertices within the combined command; its index values,
		// local to its own old vertex range, must shift by the same amount.
		rebiasIndices(ctx.indices[prevEndIdx:prevEndIdx+numIndices], prevNumVertices)
	} else {
		// No relocation needed — the new draw's data already sits right
		// after prev's — but its indices still need the same local rebias.
		rebiasIndices(ctx.indices[idxOffset:idxOffset+numIndices], prevNumVertices)
	}

	prev.NumVertices += numVertices
	prev.NumIndices += numIndices
	prev.Region = unionRegion(prevRegion, region)

	ctx.debugStats.merges++
	return true
}

// mergeIntoNext handles the case where the new draw depends on something
// between it and prev (so it cannot move backward), but prev doesn't — prev
// can commute forward instead. prev's vertices/indices are relocated
// immediately before the new draw's, a fresh trailing command describes the
// fused pair, and prev's original slot is tombstoned.
func (ctx *Context) mergeIntoNext(prevCmdIdx uint32, prevRegion, region Region, vtxOffset, idxOffset, numVertices, numIndices uint32) bool {
	prevDraw := ctx.commands[prevCmdIdx].Draw

	// The shift below writes as far as vtxOffset+prevDraw.NumVertices+numVertices
	// (= curVertex+prevDraw.NumVertices) to make room for prev's data ahead of
	// the new draw's, which can run past the arenas' capacity even though
	// numVertices/numIndices were already reserved. Bail out to the normal
	// append path rather than slicing out of bounds.
	if ctx.curVertex+prevDraw.NumVertices > uint32(len(ctx.vertices)) || ctx.curIndex+prevDraw.NumIndices > uint32(len(ctx.indices)) {
		return false
	}

	cmd := ctx.nextCommand()
	if cmd == nil {
		return false
	}

	// The merged range ends prev's size past the old cursors; claim that
	// space so later reservations don't overwrite it.
	ctx.curVertex += prevDraw.NumVertices
	ctx.curIndex += prevDraw.NumIndices

	// Shift the new draw's own data forward to make room, then place prev's
	// data at the front of the merged range. Uses the index arena for index
	// data throughout, not the vertex arena.
	copy(ctx.vertices[vtxOffset+prevDraw.NumVertices:vtxOffset+prevDraw.NumVertices+numVertices], ctx.vertices[vtxOffset:vtxOffset+numVertices])
	copy(ctx.vertices[vtxOffset:vtxOffset+prevDraw.NumVertices], ctx.vertices[prevDraw.VtxOffset:prevDraw.VtxOffset+prevDraw.NumVertices])

	copy(ctx.indices[idxOffset+prevDraw.NumIndices:idxOffset+prevDraw.NumIndices+numIndices], ctx.indices[idxOffset:idxOffset+numIndices])
	copy(ctx.indices[idxOffset:idxOffset+prevDraw.NumIndices], ctx.indices[prevDraw.IdxOffset:prevDraw.IdxOffset+prevDraw.NumIndices])
	// prev's indices are already local to offset 0 (where its vertices now
	// sit); the new draw's own indices, shifted out to local offset
	// prevDraw.NumVertices, need the matching rebias.
	rebiasIndices(ctx.indices[idxOffset+prevDraw.NumIndices:idxOffset+prevDraw.NumIndices+numIndices], prevDraw.NumVertices)

	*cmd = Command{
		Type: CommandDraw,
		Draw: DrawCommand{
			VtxOffset:   vtxOffset,
			IdxOffset:   idxOffset,
			NumVertices: prevDraw.NumVertices + numVertices,
			NumIndices:  prevDraw.NumIndices + numIndices,
			Region:      unionRegion(prevRegion, region),
		},
		Userdata: ctx.currentUserdata,
	}

	ctx.commands[prevCmdIdx].Type = CommandNone

	ctx.debugStats.merges++
	return true
}

// queueDraw is the path every drawing kernel (DrawVertices,
// DrawConvexPolygon, ...) funnels through after writing geometry into the
// arenas: cull fully off-screen draws (rewinding both the vertex and index
// cursors together), try to fold the draw into a recent command via the
// batch optimizer, and otherwise append a new Draw command.
func (ctx *Context) queueDraw(region Region, vtxOffset, idxOffset, numVertices, numIndices uint32) {
	if region.offScreen() {
		ctx.curVertex -= numVertices
		ctx.curIndex -= numIndices
		ctx.debugStats.culledDraws++
		ctx.debugLogf("culled off-screen draw (%d verts, %d indices)", numVertices, numIndices)
		return
	}

	if ctx.tryMergeDraw(region, vtxOffset, idxOffset, numVertices, numIndices) {
		return
	}

	cmd := ctx.nextCommand()
	if cmd == nil {
		ctx.curVertex -= numVertices
		ctx.curIndex -= numIndices
		return
	}

	*cmd = Command{
		Type: CommandDraw,
		Draw: DrawCommand{
			VtxOffset:   vtxOffset,
			IdxOffset:   idxOffset,
			NumVertices: numVertices,
			NumIndices:  numIndices,
			Region:      region,
		},
		Userdata: ctx.currentUserdata,
	}
}
