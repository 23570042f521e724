package riff

import "testing"

func TestByteRoundTripU32(t *testing.T) {
	n := uint32(43_608_830)
	wantBE := []byte{0x02, 0x99, 0x6A, 0xFE}
	wantLE := []byte{0xFE, 0x6A, 0x99, 0x02}

	gotBE := make([]byte, 4)
	WriteU32BE(gotBE, 0, n)
	if string(gotBE) != string(wantBE) {
		t.Errorf("WriteU32BE(%d) = %v, want %v", n, gotBE, wantBE)
	}
	if got := ReadU32BE(gotBE, 0); got != n {
		t.Errorf("ReadU32BE round trip = %d, want %d", got, n)
	}

	gotLE := make([]byte, 4)
	WriteU32LE(gotLE, 0, n)
	if string(gotLE) != string(wantLE) {
		t.Errorf("WriteU32LE(%d) = %v, want %v", n, gotLE, wantLE)
	}
	if got := ReadU32LE(gotLE, 0); got != n {
		t.Errorf("ReadU32LE round trip = %d, want %d", got, n)
	}
}

func TestByteRoundTripI32(t *testing.T) {
	i := int32(-43_608_830)

	be := make([]byte, 4)
	WriteI32BE(be, 0, i)
	if got := ReadI32BE(be, 0); got != i {
		t.Errorf("ReadI32BE round trip = %d, want %d", got, i)
	}

	le := make([]byte, 4)
	WriteI32LE(le, 0, i)
	if got := ReadI32LE(le, 0); got != i {
		t.Errorf("ReadI32LE round trip = %d, want %d", got, i)
	}
}

func TestByteRoundTripU16(t *testing.T) {
	n := uint16(0xBEEF)

	be := make([]byte, 2)
	WriteU16BE(be, 0, n)
	if got := ReadU16BE(be, 0); got != n {
		t.Errorf("ReadU16BE round trip = %#x, want %#x", got, n)
	}

	le := make([]byte, 2)
	WriteU16LE(le, 0, n)
	if got := ReadU16LE(le, 0); got != n {
		t.Errorf("ReadU16LE round trip = %#x, want %#x", got, n)
	}
}

func TestByteRoundTripI16(t *testing.T) {
	i := int16(-1234)

	be := make([]byte, 2)
	WriteU16BE(be, 0, uint16(i))
	if got := ReadI16BE(be, 0); got != i {
		t.Errorf("ReadI16BE round trip = %d, want %d", got, i)
	}

	le := make([]byte, 2)
	WriteU16LE(le, 0, uint16(i))
	if got := ReadI16LE(le, 0); got != i {
		t.Errorf("ReadI16LE round trip = %d, want %d", got, i)
	}
}
