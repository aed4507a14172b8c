package jsc

// WorkingMemoryBytes returns the arena size this package's sizing formula
// recommends for an image of the given pixel width and component count,
// a hard contract exposed for compile-time buffer sizing (spec §6
// "Working-memory sizing formula"): n_components * (width*16 + 7000) +
// 2000. Callers are free to attach a larger arena; this is advisory, not
// an upper bound — it does not account for caller-side scanline buffers.
func WorkingMemoryBytes(width, numComponents int) int {
	return numComponents*(width*16+7000) + 2000
}
