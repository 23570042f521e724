package riff

import "testing"

func TestFourCCFromBytesRoundTrip(t *testing.T) {
	cases := [][4]byte{
		{'R', 'I', 'F', 'F'},
		{'A', 'V', 'I', ' '},
		{'0', '0', 'w', 'b'},
	}
	for _, b := range cases {
		f := FourCCFromBytes(b)
		if got := f.Bytes(); got != b {
			t.Errorf("FourCCFromBytes(%v).Bytes() = %v, want %v", b, got, b)
		}
	}
}

func TestFourCCFromString(t *testing.T) {
	f := FourCCFromString("movi")
	if f.String() != "movi" {
		t.Errorf("String() = %q, want %q", f.String(), "movi")
	}
}

func TestFourCCEquality(t *testing.T) {
	a := FourCCFromString("strh")
	b := FourCCFromBytes([4]byte{'s', 't', 'r', 'h'})
	if a != b {
		t.Errorf("expected equal FourCC values, got %v != %v", a, b)
	}
}
