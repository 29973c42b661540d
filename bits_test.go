package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"testing"
)

// expandCode returns a code's bits as a slice of bools, first bit first.
func expandCode(c Code) []bool {
	out := make([]bool, c.Size)
	for i := byte(0); i < c.Size; i++ {
		out[i] = (c.Bits>>(c.Size-1-i))&1 == 1
	}
	return out
}

func TestBitPacker_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		numCodes := 1 + rng.Intn(64)
		codes := make([]Code, numCodes)
		var expectBits []bool
		for i := range codes {
			size := byte(1 + rng.Intn(20))
			bits := rng.Uint64() & (uint64(1)<<size - 1)
			codes[i] = MakeCode(size, bits)
			expectBits = append(expectBits, expandCode(codes[i])...)
		}

		packer := newBitPacker()
		for _, c := range codes {
			packer.packCode(c)
		}
		payload := packer.finish()

		if expect, actual := uint64(len(expectBits)), payload.BitLen(); expect != actual {
			t.Fatalf("wrong BitLen:\n\texpect: %d\n\tactual: %d", expect, actual)
		}

		u := newBitUnpacker(payload)
		for i, expect := range expectBits {
			actual, err := u.readBit()
			if err != nil {
				t.Fatalf("readBit failed at bit %d: %v", i, err)
			}
			if expect != actual {
				t.Fatalf("wrong bit %d:\n\texpect: %v\n\tactual: %v", i, expect, actual)
			}
		}
		if _, err := u.readBit(); err != io.EOF {
			t.Fatalf("expected io.EOF past the valid bits, got %v", err)
		}
	}
}

func TestBitPacker_LastBits(t *testing.T) {
	for totalBits := 1; totalBits <= 17; totalBits++ {
		t.Run(fmt.Sprintf("%dbits", totalBits), func(t *testing.T) {
			packer := newBitPacker()
			for i := 0; i < totalBits; i++ {
				packer.packCode(MakeCode(1, 1))
			}
			payload := packer.finish()

			expectLen := (totalBits + 7) / 8
			if actual := len(payload.Data); expectLen != actual {
				t.Errorf("wrong byte count:\n\texpect: %d\n\tactual: %d", expectLen, actual)
			}
			expectLast := uint8(((totalBits - 1) % 8) + 1)
			if actual := payload.LastBits; expectLast != actual {
				t.Errorf("wrong LastBits:\n\texpect: %d\n\tactual: %d", expectLast, actual)
			}
		})
	}
}

func TestBitPacker_Empty(t *testing.T) {
	payload := newBitPacker().finish()
	if len(payload.Data) != 0 || payload.LastBits != 0 || payload.BitLen() != 0 {
		t.Errorf("wrong empty payload: %+v", payload)
	}
}

func TestBitPacker_MSBFirst(t *testing.T) {
	// "1" then "0000001" packs to the single byte 0b10000001.
	packer := newBitPacker()
	packer.packCode(MakeCode(1, 1))
	packer.packCode(MakeCode(7, 1))
	payload := packer.finish()

	if !bytes.Equal(payload.Data, []byte{0x81}) {
		t.Errorf("wrong packing:\n\texpect: [0x81]\n\tactual: %#v", payload.Data)
	}
	if payload.LastBits != 8 {
		t.Errorf("wrong LastBits:\n\texpect: 8\n\tactual: %d", payload.LastBits)
	}
}

func TestBitPacker_ZeroPadding(t *testing.T) {
	// "11" packs to 0b11000000 with 2 valid bits: padding is zero.
	packer := newBitPacker()
	packer.packCode(MakeCode(2, 3))
	payload := packer.finish()

	if !bytes.Equal(payload.Data, []byte{0xC0}) {
		t.Errorf("wrong packing:\n\texpect: [0xC0]\n\tactual: %#v", payload.Data)
	}
	if payload.LastBits != 2 {
		t.Errorf("wrong LastBits:\n\texpect: 2\n\tactual: %d", payload.LastBits)
	}
}
