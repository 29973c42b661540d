package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Payload is a bit sequence packed into bytes, most significant bit first
// within each byte.  LastBits is the number of valid bits in the final byte;
// the remaining low bits of that byte are zero padding.  Neither field is
// meaningful without the other.
//
// Invariants:
//   - len(Data) == 0 implies LastBits == 0
//   - len(Data) > 0 implies 1 <= LastBits <= 8
type Payload struct {
	Data     []byte
	LastBits uint8
}

// BitLen returns the number of valid bits.
func (p Payload) BitLen() uint64 {
	if len(p.Data) == 0 {
		return 0
	}
	return 8*uint64(len(p.Data)-1) + uint64(p.LastBits)
}

// bitPacker packs Codes into a Payload.
type bitPacker struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	bits uint64
}

func newBitPacker() *bitPacker {
	p := new(bitPacker)
	p.w = bitio.NewWriter(&p.buf)
	return p
}

// packCode appends the code's bits, first bit leading.
func (p *bitPacker) packCode(c Code) {
	assert.Assertf(c.Size != 0, "packCode called with an empty code of symbol bits %#x", c.Bits)
	// bitio never fails against a bytes.Buffer.
	_ = p.w.WriteBits(c.Bits, c.Size)
	p.bits += uint64(c.Size)
}

// finish zero-pads the final byte and returns the packed Payload.
func (p *bitPacker) finish() Payload {
	_ = p.w.Close()
	out := Payload{Data: p.buf.Bytes()}
	if p.bits != 0 {
		out.LastBits = uint8(((p.bits - 1) % 8) + 1)
	}
	return out
}

// bitUnpacker replays exactly the valid bits of a Payload, no more, no
// fewer: unpacking what bitPacker packed reproduces the bit sequence
// bit-for-bit.
type bitUnpacker struct {
	r         *bitio.Reader
	remaining uint64
}

func newBitUnpacker(p Payload) *bitUnpacker {
	return &bitUnpacker{
		r:         bitio.NewReader(bytes.NewReader(p.Data)),
		remaining: p.BitLen(),
	}
}

// readBit returns the next valid bit, or io.EOF once the valid bits are
// exhausted (padding is never returned as data).
func (u *bitUnpacker) readBit() (bool, error) {
	if u.remaining == 0 {
		return false, io.EOF
	}
	b, err := u.r.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: payload shorter than its declared bit length: %v", ErrMalformedPayload, err)
	}
	u.remaining--
	return b, nil
}
