package jsc

import "github.com/abcouwer-jpl/jsc-sub000/jscerr"

// Marker byte values, the second byte of every 0xFF xx marker pair (spec §3
// "marker").
const (
	MarkerSOI  = 0xD8
	MarkerEOI  = 0xD9
	MarkerSOF0 = 0xC0 // baseline DCT
	MarkerSOS  = 0xDA
	MarkerDQT  = 0xDB
	MarkerDHT  = 0xC4
	MarkerDRI   = 0xDD
	MarkerAPP0  = 0xE0
	MarkerAPP14 = 0xEE
	MarkerCOM   = 0xFE
)

func isRST(b byte) bool { return b >= 0xD0 && b <= 0xD7 }
func isAPPn(b byte) bool { return b >= 0xE0 && b <= 0xEF }

// maxMarkerScan bounds how many segments ReadHeader will walk before giving
// up on a stream that never reaches SOS, the hard cap named in spec §4.9
// "master control" against a pathological or malicious marker sequence.
const maxMarkerScan = 1000

// segmentReader walks a caller-owned byte slice one marker segment at a
// time. It never allocates: every accessor returns a subslice of src.
type segmentReader struct {
	src []byte
	pos int
}

func newSegmentReader(src []byte) *segmentReader {
	return &segmentReader{src: src}
}

func (r *segmentReader) remaining() int { return len(r.src) - r.pos }

func (r *segmentReader) needMore(n int) bool { return r.remaining() < n }

func (r *segmentReader) readByte() (byte, error) {
	if r.needMore(1) {
		return 0, jscerr.New(jscerr.CodeSuspended, "need more source bytes")
	}
	b := r.src[r.pos]
	r.pos++
	return b, nil
}

func (r *segmentReader) readU16() (uint16, error) {
	if r.needMore(2) {
		return 0, jscerr.New(jscerr.CodeSuspended, "need more source bytes")
	}
	v := uint16(r.src[r.pos])<<8 | uint16(r.src[r.pos+1])
	r.pos += 2
	return v, nil
}

// readMarker skips any fill bytes (0xFF padding before a marker is legal
// per the JPEG spec) and returns the marker's second byte, or a
// GarbageMarker rejection if a non-0xFF byte appears where a marker was
// expected (spec §4.9 "garbage between segments").
func (r *segmentReader) readMarker() (byte, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, jscerr.New(jscerr.CodeGarbageMarker, "expected a marker, found a non-0xFF byte")
	}
	for {
		m, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if m == 0xFF {
			continue // fill byte before the real marker
		}
		if m == 0x00 {
			return 0, jscerr.New(jscerr.CodeGarbageMarker, "unexpected stuffed byte outside entropy data")
		}
		return m, nil
	}
}

// readSegment reads a standard length-prefixed segment's payload (the
// length field itself included in its own count, per the JPEG spec), and
// returns it as a subslice of src.
func (r *segmentReader) readSegment() ([]byte, error) {
	length, err := r.readU16()
	if err != nil {
		return nil, err
	}
	if length < 2 {
		return nil, jscerr.New(jscerr.CodeGarbageMarker, "segment length field is less than its own size")
	}
	payloadLen := int(length) - 2
	if r.needMore(payloadLen) {
		return nil, jscerr.New(jscerr.CodeSuspended, "need more source bytes")
	}
	payload := r.src[r.pos : r.pos+payloadLen]
	r.pos += payloadLen
	return payload, nil
}

// resyncToMarker scans src forward from pos for the next real marker
// (skipping stray entropy-coded-looking bytes and stuffed 0xFF 0x00 pairs),
// used when a restart interval boundary does not land on the expected marker
// (spec §4.6 "restart recovery"). It is a pure function of (src, pos) rather
// than a segmentReader method, so callers resyncing mid-scan can feed it the
// bit reader's actual consumed offset instead of a stale segment cursor.
func resyncToMarker(src []byte, pos int) (marker byte, next int, ok bool) {
	for pos+1 < len(src) {
		if src[pos] == 0xFF && src[pos+1] != 0x00 && src[pos+1] != 0xFF {
			return src[pos+1], pos + 2, true
		}
		pos++
	}
	return 0, 0, false
}

// segmentWriter appends marker segments to a caller-owned, bounded
// destination buffer, returning a short-destination rejection instead of
// growing (spec §4.5 "short destination").
type segmentWriter struct {
	dst []byte
	pos int
}

func newSegmentWriter(dst []byte) *segmentWriter {
	return &segmentWriter{dst: dst}
}

func (w *segmentWriter) writeByte(b byte) error {
	if w.pos >= len(w.dst) {
		return jscerr.New(jscerr.CodeShortDestination, "destination buffer exhausted")
	}
	w.dst[w.pos] = b
	w.pos++
	return nil
}

func (w *segmentWriter) writeU16(v uint16) error {
	if err := w.writeByte(byte(v >> 8)); err != nil {
		return err
	}
	return w.writeByte(byte(v))
}

func (w *segmentWriter) writeBytes(b []byte) error {
	for _, c := range b {
		if err := w.writeByte(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *segmentWriter) writeMarker(marker byte) error {
	if err := w.writeByte(0xFF); err != nil {
		return err
	}
	return w.writeByte(marker)
}

// writeSegment writes marker, then the 2-byte length (len(payload)+2), then
// payload.
func (w *segmentWriter) writeSegment(marker byte, payload []byte) error {
	if err := w.writeMarker(marker); err != nil {
		return err
	}
	if err := w.writeU16(uint16(len(payload) + 2)); err != nil {
		return err
	}
	return w.writeBytes(payload)
}

func (w *segmentWriter) Pos() int { return w.pos }
