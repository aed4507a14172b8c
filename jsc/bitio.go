package jsc

import "github.com/abcouwer-jpl/jsc-sub000/jscerr"

// BitWriter accumulates entropy-coded bits into a caller-supplied,
// fixed-size destination buffer and byte-stuffs 0xFF as 0xFF 0x00, grounded
// on the teacher's bit_writer.go 64-bit fillRegister technique but writing
// into a bounded []byte instead of an append-growing one: a full
// destination is a graceful rejection (spec §4.5 "short destination"), not
// a panic, since the caller controls how much memory it hands the codec.
type BitWriter struct {
	dst          []byte
	pos          int
	fillRegister uint64
	currentBit   uint32 // number of free bits remaining in fillRegister, counted from the top
}

// NewBitWriter wraps dst, writing from offset 0.
func NewBitWriter(dst []byte) *BitWriter {
	return &BitWriter{dst: dst, currentBit: 64}
}

// Write packs the low numBits bits of val, most-significant first, and emits
// every byte completed so far (0xFF stuffed as 0xFF 0x00).
func (w *BitWriter) Write(val uint32, numBits uint32) error {
	if numBits == 0 {
		return nil
	}
	if numBits <= w.currentBit {
		w.fillRegister |= uint64(val) << (w.currentBit - numBits)
		w.currentBit -= numBits
		return w.flushWholeBytes()
	}

	fill := w.fillRegister
	fill |= uint64(val) >> (numBits - w.currentBit)
	leftover := numBits - w.currentBit
	leftoverVal := val & ((1 << leftover) - 1)

	if err := w.writeFFEncoded(fill); err != nil {
		return err
	}

	w.fillRegister = uint64(leftoverVal) << (64 - leftover)
	w.currentBit = 64 - leftover
	return nil
}

func (w *BitWriter) writeFFEncoded(fill uint64) error {
	for i := 0; i < 8; i++ {
		b := byte(fill >> (56 - i*8))
		if err := w.emit(b); err != nil {
			return err
		}
		if b == 0xFF {
			if err := w.emit(0x00); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *BitWriter) emit(b byte) error {
	if w.pos >= len(w.dst) {
		return jscerr.New(jscerr.CodeShortDestination, "destination buffer exhausted")
	}
	w.dst[w.pos] = b
	w.pos++
	return nil
}

// WriteMarkerByte writes a single byte with no stuffing, for marker bytes
// and segment payloads that are never part of the entropy-coded bitstream.
func (w *BitWriter) WriteMarkerByte(b byte) error {
	return w.emit(b)
}

// Pad fills out to the next byte boundary with one bits (allOnes, used for
// end-of-scan padding) or zero bits and flushes every complete byte,
// stuffing 0xFF as 0xFF 0x00 (spec §4.5 "end of scan").
func (w *BitWriter) Pad(allOnes bool) error {
	for (w.currentBit & 7) != 0 {
		bit := uint32(0)
		if allOnes {
			bit = 1
		}
		if err := w.Write(bit, 1); err != nil {
			return err
		}
	}
	return w.flushWholeBytes()
}

func (w *BitWriter) flushWholeBytes() error {
	for w.currentBit <= 56 {
		b := byte(w.fillRegister >> 56)
		if err := w.emit(b); err != nil {
			return err
		}
		if b == 0xFF {
			if err := w.emit(0x00); err != nil {
				return err
			}
		}
		w.fillRegister <<= 8
		w.currentBit += 8
	}
	return nil
}

// Pos returns the number of bytes written to dst so far.
func (w *BitWriter) Pos() int { return w.pos }

// HasNoRemainder reports whether the writer is byte-aligned with nothing
// buffered, the precondition for writing a marker.
func (w *BitWriter) HasNoRemainder() bool { return w.currentBit == 64 }

// BitReader reads entropy-coded bits from a caller-supplied buffer,
// destuffing 0xFF 0x00 and surfacing any other byte following 0xFF as an
// unread marker rather than consuming it, grounded on the teacher's
// bit_reader.go fillRegister technique but reading from a bounded []byte
// instead of an io.Reader and warning, rather than erroring, on truncation
// (spec §4.6 "insufficient data").
type BitReader struct {
	src      []byte
	pos      int
	bits     uint64
	bitsLeft uint32

	unreadMarker    byte // non-zero marker byte following an unescaped 0xFF, not yet consumed
	insufficientData bool
	warnedOnce      bool
	warn            func(string)
}

// NewBitReader wraps src, reading from offset 0. warn, if non-nil, is
// called at most once per scan the first time the reader has to synthesize
// zero bits because src ran out (spec §5 host hooks).
func NewBitReader(src []byte, warn func(string)) *BitReader {
	return &BitReader{src: src, warn: warn}
}

// Read returns the next numBits bits, most-significant first, synthesizing
// zero bits (and warning once) past the end of src.
func (r *BitReader) Read(numBits uint32) uint32 {
	if numBits == 0 {
		return 0
	}
	if r.bitsLeft < numBits {
		r.fill(numBits)
	}
	v := uint32((r.bits >> (r.bitsLeft - numBits)) & ((1 << numBits) - 1))
	r.bitsLeft -= numBits
	return v
}

// Peek8 returns the next 8 bits left-justified in the high byte, and how
// many bits are buffered (at most 8), synthesized zero padding included.
func (r *BitReader) Peek8() (byte, uint32) {
	if r.bitsLeft < 8 {
		r.fill(8)
	}
	avail := r.bitsLeft
	if avail > 8 {
		avail = 8
	}
	if avail == 0 {
		return 0, 0
	}
	return byte(r.bits >> (r.bitsLeft - 8)), avail
}

// Advance consumes n bits already inspected via Peek8 without re-reading.
func (r *BitReader) Advance(n uint32) {
	r.bitsLeft -= n
}

func (r *BitReader) fill(numBits uint32) {
	for r.bitsLeft < 64 && r.bitsLeft < numBits+8 {
		if r.unreadMarker != 0 {
			r.padZeros()
			return
		}
		if r.pos >= len(r.src) {
			r.padZeros()
			return
		}
		b := r.src[r.pos]
		r.pos++
		if b == 0xFF {
			if r.pos >= len(r.src) {
				r.padZeros()
				return
			}
			next := r.src[r.pos]
			if next == 0x00 {
				r.pos++
				r.pushByte(0xFF)
				continue
			}
			// A real marker: stop consuming, leave it for the caller.
			r.unreadMarker = next
			r.pos++
			r.padZeros()
			return
		}
		r.pushByte(b)
	}
}

func (r *BitReader) pushByte(b byte) {
	r.bits = (r.bits << 8) | uint64(b)
	r.bitsLeft += 8
}

func (r *BitReader) padZeros() {
	if !r.insufficientData {
		r.insufficientData = true
		if r.warn != nil && !r.warnedOnce {
			r.warnedOnce = true
			r.warn("bitstream ran out before the scan's expected data; padding with zero bits")
		}
	}
	r.bits <<= 8
	r.bitsLeft += 8
}

// UnreadMarker returns the marker byte that stopped bit supply, or 0 if none
// has been encountered yet.
func (r *BitReader) UnreadMarker() byte { return r.unreadMarker }

// InsufficientData reports whether this reader ever had to synthesize bits.
func (r *BitReader) InsufficientData() bool { return r.insufficientData }

// ResetForRestart clears buffered bits after consuming an RSTn marker
// (spec §4.6 "restart interval handling"): the bit-buffer does not carry
// across a restart boundary.
func (r *BitReader) ResetForRestart() {
	r.bits = 0
	r.bitsLeft = 0
	r.unreadMarker = 0
}

// Pos returns the byte offset into src the reader has consumed up to,
// excluding any buffered-but-unconsumed bits.
func (r *BitReader) Pos() int { return r.pos }
