// Package jsc implements a baseline JPEG encoder and decoder built around a
// bounded arena (see the arena package) instead of a per-call dynamic
// allocator: every instance attaches once to a caller-sized working buffer
// and never grows it, rejecting work it cannot fit rather than requesting
// more memory (spec.md §1, §9).
package jsc

import "github.com/abcouwer-jpl/jsc-sub000/arena"

// Hooks are the three host callbacks spec §5 calls out by name: a codec
// instance reports through function pointers on itself, never through a
// process-wide logger, so a flight-software host can wire these to however
// its own logging works (or to nothing at all).
type Hooks struct {
	Assert func(cond bool, msg string) // called before a panic; a host may choose to log first
	Warn   func(msg string)            // a recoverable anomaly worth surfacing once
	Trace  func(msg string)            // verbose progress, usually a no-op in production
}

func (h *Hooks) assert(cond bool, msg string) {
	if h.Assert != nil {
		h.Assert(cond, msg)
	}
	if !cond {
		panic("jsc: " + msg)
	}
}

func (h *Hooks) warn(msg string) {
	if h.Warn != nil {
		h.Warn(msg)
	}
}

func (h *Hooks) trace(msg string) {
	if h.Trace != nil {
		h.Trace(msg)
	}
}

// Common is the shared prefix a Compressor and a Decompressor both embed
// (spec §9 "Shared encoder/decoder header fields": the original aggregates
// share a prefix by macro; here that prefix is a plain embedded struct
// instead). It carries the one piece of state both directions genuinely
// share — the arena attachment and host hooks — while state machines,
// frame geometry, and the entropy bit-buffer stay on the embedding type
// since their shapes diverge between encode and decode.
type Common struct {
	Hooks Hooks
	arena *arena.Arena
}

// AttachArena binds the instance to a caller-owned working buffer. Must be
// called before any configuration method.
func (c *Common) AttachArena(buf []byte) {
	c.arena = &arena.Arena{}
	attachTo(c.arena, buf)
}

// FrameInfo is the geometry and table selection shared by a compressor and
// a decompressor, populated either by the caller (encode) or by parsing
// SOF0/DQT/DHT (decode) (spec §3 "Frame").
type FrameInfo struct {
	Width, Height int
	NumComponents int
	Components    [MaxComponents]Component

	MaxHSamp, MaxVSamp int
	MCUsWide, MCUsHigh int

	QuantTables [NumQuantTables]QuantTable
	DCTables    [NumHuffTables]HuffTable
	ACTables    [NumHuffTables]HuffTable

	RestartInterval int
	ColorSpace      ColorSpace
}

// deriveGeometry fills MaxHSamp/MaxVSamp/MCUsWide/MCUsHigh and every
// component's block/sample dimensions once sampling factors are known
// (spec §4.1 "frame setup").
func (f *FrameInfo) deriveGeometry() {
	f.MaxHSamp, f.MaxVSamp = 1, 1
	for i := 0; i < f.NumComponents; i++ {
		c := &f.Components[i]
		if c.HSamp > f.MaxHSamp {
			f.MaxHSamp = c.HSamp
		}
		if c.VSamp > f.MaxVSamp {
			f.MaxVSamp = c.VSamp
		}
	}
	f.MCUsWide, f.MCUsHigh = mcuGrid(f.Width, f.Height, f.MaxHSamp, f.MaxVSamp)
	for i := 0; i < f.NumComponents; i++ {
		f.Components[i].deriveSizes(f.MaxHSamp, f.MaxVSamp, f.MCUsWide, f.MCUsHigh, f.Width, f.Height)
	}
}

// blocksPerMCU returns the total block count across all components for one
// MCU, checked against MaxBlocksInMCU (spec §3 "MCU" invariant).
func (f *FrameInfo) blocksPerMCU() int {
	n := 0
	for i := 0; i < f.NumComponents; i++ {
		n += f.Components[i].BlocksPerMCU()
	}
	return n
}

// attachTo is a small convenience used by both Compressor.AttachArena and
// Decompressor.AttachArena.
func attachTo(a *arena.Arena, buf []byte) {
	a.Attach(buf)
}
