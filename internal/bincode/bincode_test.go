package bincode

import "testing"

func TestRoundTrip(t *testing.T) {
	var w Writer
	w.Byte(7)
	w.Uvarint(0)
	w.Uvarint(300)
	w.String("")
	w.String("hello, 世界")
	w.Len(3)

	r := NewReader(w.Bytes())
	if got := r.Byte(); got != 7 {
		t.Errorf("Byte() = %d, want 7", got)
	}
	if got := r.Uvarint(); got != 0 {
		t.Errorf("Uvarint() = %d, want 0", got)
	}
	if got := r.Uvarint(); got != 300 {
		t.Errorf("Uvarint() = %d, want 300", got)
	}
	if got := r.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if got := r.String(); got != "hello, 世界" {
		t.Errorf("String() = %q", got)
	}
	if got := r.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if !r.Done() {
		t.Error("reader not done after consuming everything")
	}
}

// expectCorrupt runs fn and checks that it panics with a Corrupt value.
func expectCorrupt(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected Corrupt panic, got none")
		}
		if _, ok := v.(Corrupt); !ok {
			t.Fatalf("expected Corrupt panic, got %T: %v", v, v)
		}
	}()
	fn()
}

func TestReader_TruncatedByte(t *testing.T) {
	expectCorrupt(t, func() {
		NewReader(nil).Byte()
	})
}

func TestReader_TruncatedString(t *testing.T) {
	// Length prefix claims 10 bytes, only 2 present.
	expectCorrupt(t, func() {
		_ = NewReader([]byte{10, 'a', 'b'}).String()
	})
}

func TestReader_OversizedLen(t *testing.T) {
	var w Writer
	w.Uvarint(1 << 40)
	expectCorrupt(t, func() {
		NewReader(w.Bytes()).Len()
	})
}
