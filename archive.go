package huffpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Archive framing: everything Decompress needs in one self-describing blob.
//
//	magic   "HFPK"
//	version uint8
//	symbols uint64   original input length
//	treeLen uint32   serialized tree length
//	tree    []byte
//	last    uint8    valid bits in the final payload byte
//	payLen  uint32   payload length
//	payload []byte
//
// All integers are big-endian.  The format is a stable persistence boundary:
// readers of any later version must still parse version 1.
var archiveMagic = [4]byte{'H', 'F', 'P', 'K'}

const archiveVersion = 1

// EncodeArchive packs a Compressed result into a single byte blob suitable
// for storage or transmission.
func EncodeArchive(c Compressed) []byte {
	var buf bytes.Buffer
	buf.Write(archiveMagic[:])
	buf.WriteByte(archiveVersion)
	_ = binary.Write(&buf, binary.BigEndian, c.Stats.OriginalSymbols)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(c.Tree)))
	buf.Write(c.Tree)
	buf.WriteByte(c.Payload.LastBits)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(c.Payload.Data)))
	buf.Write(c.Payload.Data)
	return buf.Bytes()
}

// DecodeArchive parses an EncodeArchive blob back into a Compressed result,
// recomputing the stats from the recorded symbol count.  Returns
// ErrMalformedArchive for bad magic, version, or framing, and
// ErrUnsupportedSymbol if the payload's bit count cannot possibly decode to
// the declared symbol count (a tree/payload mismatch caught before decode).
func DecodeArchive(blob []byte) (Compressed, error) {
	r := bytes.NewReader(blob)

	var magic [4]byte
	if _, err := r.Read(magic[:]); err != nil || magic != archiveMagic {
		return Compressed{}, fmt.Errorf("%w: bad magic", ErrMalformedArchive)
	}
	version, err := r.ReadByte()
	if err != nil || version != archiveVersion {
		return Compressed{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedArchive, version)
	}

	var symbols uint64
	if err := binary.Read(r, binary.BigEndian, &symbols); err != nil {
		return Compressed{}, truncatedArchive()
	}

	var treeLen uint32
	if err := binary.Read(r, binary.BigEndian, &treeLen); err != nil {
		return Compressed{}, truncatedArchive()
	}
	if uint64(treeLen) > uint64(r.Len()) {
		return Compressed{}, fmt.Errorf("%w: tree section overruns the blob", ErrMalformedArchive)
	}
	tree := make([]byte, treeLen)
	if _, err := r.Read(tree); err != nil && treeLen != 0 {
		return Compressed{}, truncatedArchive()
	}

	lastBits, err := r.ReadByte()
	if err != nil {
		return Compressed{}, truncatedArchive()
	}

	var payLen uint32
	if err := binary.Read(r, binary.BigEndian, &payLen); err != nil {
		return Compressed{}, truncatedArchive()
	}
	if uint64(payLen) != uint64(r.Len()) {
		return Compressed{}, fmt.Errorf("%w: payload section does not fill the blob", ErrMalformedArchive)
	}
	data := make([]byte, payLen)
	if _, err := r.Read(data); err != nil && payLen != 0 {
		return Compressed{}, truncatedArchive()
	}

	if payLen == 0 && lastBits != 0 {
		return Compressed{}, fmt.Errorf("%w: empty payload with %d trailing bits", ErrMalformedArchive, lastBits)
	}
	if payLen != 0 && (lastBits == 0 || lastBits > 8) {
		return Compressed{}, fmt.Errorf("%w: final byte claims %d valid bits", ErrMalformedArchive, lastBits)
	}

	payload := Payload{Data: data, LastBits: lastBits}
	if symbols == 0 && payload.BitLen() != 0 {
		return Compressed{}, fmt.Errorf("%w: payload bits declared for an empty input", ErrUnsupportedSymbol)
	}
	if symbols != 0 && payload.BitLen() < symbols {
		// Every symbol costs at least one bit under any codebook.
		return Compressed{}, fmt.Errorf("%w: %d bits cannot decode %d symbols", ErrUnsupportedSymbol, payload.BitLen(), symbols)
	}

	return Compressed{
		Payload: payload,
		Tree:    tree,
		Stats: Stats{
			OriginalSymbols: symbols,
			OriginalBits:    8 * symbols,
			CompressedBits:  payload.BitLen(),
		},
	}, nil
}

// VerifyRoundTrip reports whether got is byte-for-byte identical to want.
// The CLI uses it to validate integrity after a decompress.
func VerifyRoundTrip(want, got []byte) bool {
	return bytes.Equal(want, got)
}

func truncatedArchive() error {
	return fmt.Errorf("%w: truncated", ErrMalformedArchive)
}
