package outline

import (
	"reflect"
	"testing"

	"github.com/elmkit/elmkit/internal/bincode"
	"github.com/elmkit/elmkit/internal/modname"
)

func TestBinaryRoundTrip(t *testing.T) {
	outlines := map[string]Outline{
		"application": testAppOutline(t),
		"package":     testPkgOutline(t),
	}
	for name, o := range outlines {
		t.Run(name, func(t *testing.T) {
			decoded := DecodeBinary(EncodeBinary(o))
			if !reflect.DeepEqual(decoded, o) {
				t.Errorf("binary round trip mismatch:\n got %#v\nwant %#v", decoded, o)
			}
		})
	}
}

func TestBinaryRoundTrip_Exposed(t *testing.T) {
	values := map[string]Exposed{
		"list": ExposedList{"Main", "Json.Decode"},
		"sectioned": ExposedSections{
			{Header: "Core", Modules: []modname.Name{"Main"}},
			{Header: "Extra", Modules: []modname.Name{"Foo", "Bar"}},
		},
	}
	for name, e := range values {
		t.Run(name, func(t *testing.T) {
			decoded := DecodeExposedBinary(EncodeExposedBinary(e))
			if !reflect.DeepEqual(decoded, e) {
				t.Errorf("round trip mismatch:\n got %#v\nwant %#v", decoded, e)
			}
		})
	}
}

func TestBinary_Deterministic(t *testing.T) {
	app := testAppOutline(t)
	a, b := EncodeBinary(app), EncodeBinary(app)
	if !reflect.DeepEqual(a, b) {
		t.Error("two binary encodes of the same outline differ")
	}
}

// expectCorrupt checks that fn panics with a bincode.Corrupt value: the
// binary path treats bad data as fatal, never as a recoverable error.
func expectCorrupt(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected corruption panic, got none")
		}
		if _, ok := v.(bincode.Corrupt); !ok {
			t.Fatalf("panic value is %T, want bincode.Corrupt: %v", v, v)
		}
	}()
	fn()
}

func TestDecodeBinary_UnknownTag(t *testing.T) {
	expectCorrupt(t, func() {
		DecodeBinary([]byte{9})
	})
}

func TestDecodeBinary_Truncated(t *testing.T) {
	data := EncodeBinary(testPkgOutline(t))
	expectCorrupt(t, func() {
		DecodeBinary(data[:len(data)/2])
	})
}

func TestDecodeBinary_TrailingGarbage(t *testing.T) {
	data := append(EncodeBinary(testAppOutline(t)), 0xFF)
	expectCorrupt(t, func() {
		DecodeBinary(data)
	})
}

func TestDecodeExposedBinary_UnknownTag(t *testing.T) {
	expectCorrupt(t, func() {
		DecodeExposedBinary([]byte{2})
	})
}
