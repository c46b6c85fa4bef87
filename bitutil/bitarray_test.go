package bitutil

import "testing"

func TestAppendBit(t *testing.T) {
	ba := NewBitArray(0)
	if ba.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", ba.Size())
	}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBit(true)
	if ba.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", ba.Size())
	}
	for i, want := range []bool{true, false, true} {
		if ba.Get(i) != want {
			t.Errorf("Get(%d) = %v, want %v", i, ba.Get(i), want)
		}
	}
}

func TestAppendBits(t *testing.T) {
	ba := NewBitArray(0)
	ba.AppendBits(0x1, 1)
	if ba.Size() != 1 || !ba.Get(0) {
		t.Fatalf("after AppendBits(0x1, 1): size %d, bit %v", ba.Size(), ba.Get(0))
	}

	ba = NewBitArray(0)
	ba.AppendBits(0xAC, 8)
	// 0xAC = 10101100, appended most significant bit first.
	want := []bool{true, false, true, false, true, true, false, false}
	for i, w := range want {
		if ba.Get(i) != w {
			t.Errorf("Get(%d) = %v, want %v", i, ba.Get(i), w)
		}
	}
}

func TestAppendBitsAcrossWords(t *testing.T) {
	ba := NewBitArray(0)
	for i := 0; i < 10; i++ {
		ba.AppendBits(0xFF, 8)
	}
	if ba.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", ba.Size())
	}
	for i := 0; i < 80; i++ {
		if !ba.Get(i) {
			t.Fatalf("Get(%d) = false, want true", i)
		}
	}
}

func TestSizeInBytes(t *testing.T) {
	for _, tc := range []struct{ bits, bytes int }{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {152, 19},
	} {
		ba := NewBitArray(tc.bits)
		if got := ba.SizeInBytes(); got != tc.bytes {
			t.Errorf("NewBitArray(%d).SizeInBytes() = %d, want %d", tc.bits, got, tc.bytes)
		}
	}
}

func TestToBytes(t *testing.T) {
	ba := NewBitArray(0)
	ba.AppendBits(0x40, 8)
	ba.AppendBits(0x05, 8)
	ba.AppendBits(0xEC, 8)
	out := make([]byte, 3)
	ba.ToBytes(0, out, 0, 3)
	want := []byte{0x40, 0x05, 0xEC}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %#02x, want %#02x", i, out[i], want[i])
		}
	}

	// Offset read: skip the first byte.
	out = make([]byte, 2)
	ba.ToBytes(8, out, 0, 2)
	if out[0] != 0x05 || out[1] != 0xEC {
		t.Errorf("offset read = %#02x %#02x, want 05 ec", out[0], out[1])
	}
}

func TestBitArrayString(t *testing.T) {
	ba := NewBitArray(0)
	ba.AppendBits(0xA0, 8)
	if got, want := ba.String(), " X.X....."; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
