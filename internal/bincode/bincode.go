package bincode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Corrupt is the panic value raised by a Reader when the data it was given
// does not match the expected layout.
type Corrupt struct {
	Offset int
	Reason string
}

func (c Corrupt) Error() string {
	return fmt.Sprintf("corrupt cache data at offset %d: %s", c.Offset, c.Reason)
}

// Writer accumulates a binary encoding. The zero value is ready to use.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the encoded data written so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Byte writes a single tag or flag byte.
func (w *Writer) Byte(b byte) { w.buf.WriteByte(b) }

// Uvarint writes an unsigned integer in variable-length form.
func (w *Writer) Uvarint(u uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], u)
	w.buf.Write(tmp[:n])
}

// Len writes a sequence length prefix.
func (w *Writer) Len(n int) { w.Uvarint(uint64(n)) }

// String writes a length-prefixed UTF-8 string.
func (w *Writer) String(s string) {
	w.Len(len(s))
	w.buf.WriteString(s)
}

// Reader decodes data produced by a Writer. All methods panic with Corrupt
// when the data runs short or is otherwise malformed.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Done reports whether the reader has consumed all of its input.
func (r *Reader) Done() bool { return r.off == len(r.data) }

// Corrupt aborts decoding with the given reason.
func (r *Reader) Corrupt(format string, args ...any) {
	panic(Corrupt{Offset: r.off, Reason: fmt.Sprintf(format, args...)})
}

// Byte reads a single byte.
func (r *Reader) Byte() byte {
	if r.off >= len(r.data) {
		r.Corrupt("unexpected end of data")
	}
	b := r.data[r.off]
	r.off++
	return b
}

// Uvarint reads a variable-length unsigned integer.
func (r *Reader) Uvarint() uint64 {
	u, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		r.Corrupt("invalid varint")
	}
	r.off += n
	return u
}

// Len reads a sequence length prefix and checks it against the remaining
// input so a corrupt length cannot trigger a huge allocation.
func (r *Reader) Len() int {
	u := r.Uvarint()
	if u > uint64(len(r.data)-r.off) {
		r.Corrupt("length %d exceeds remaining data", u)
	}
	return int(u)
}

// String reads a length-prefixed UTF-8 string.
func (r *Reader) String() string {
	n := r.Len()
	s := string(r.data[r.off : r.off+n])
	r.off += n
	return s
}
