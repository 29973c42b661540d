package huffpack

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"
)

func roundTrip(t *testing.T, input []byte) Compressed {
	t.Helper()
	result, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	restored, err := Decompress(result.Payload, result.Tree)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(input, restored) {
		t.Fatalf("round trip changed the data:\n\texpect: %q\n\tactual: %q", input, restored)
	}
	return result
}

func TestCompress_Empty(t *testing.T) {
	result := roundTrip(t, nil)

	if len(result.Payload.Data) != 0 || result.Payload.LastBits != 0 {
		t.Errorf("wrong payload for empty input: %+v", result.Payload)
	}
	if result.Tree != nil {
		t.Errorf("wrong tree for empty input: %#v", result.Tree)
	}
	if result.Stats != (Stats{}) {
		t.Errorf("wrong stats for empty input: %+v", result.Stats)
	}
}

func TestCompress_SingleOccurrence(t *testing.T) {
	result := roundTrip(t, []byte("A"))

	// One symbol, the fixed single-bit code "0": one valid bit.
	if expect, actual := uint64(1), result.Payload.BitLen(); expect != actual {
		t.Errorf("wrong bit length:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
	if !bytes.Equal(result.Payload.Data, []byte{0x00}) {
		t.Errorf("wrong payload bytes: %#v", result.Payload.Data)
	}
}

func TestCompress_SingleSymbolRun(t *testing.T) {
	result := roundTrip(t, []byte("AAAA"))

	if expect, actual := uint64(4), result.Payload.BitLen(); expect != actual {
		t.Errorf("wrong bit length:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
}

func TestCompress_SkewedFrequencies(t *testing.T) {
	// 7 A's and 1 B: both symbols get 1-bit codes, so the payload is
	// 8 bits, strictly less than the 64-bit original.
	result := roundTrip(t, []byte("AAAAAAAB"))

	if result.Stats.CompressedBits >= result.Stats.OriginalBits {
		t.Errorf("no compression: %d bits vs %d original", result.Stats.CompressedBits, result.Stats.OriginalBits)
	}
	if expect, actual := uint64(8), result.Stats.CompressedBits; expect != actual {
		t.Errorf("wrong compressed bits:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
}

func TestCompress_UniformAlphabet(t *testing.T) {
	// 8 symbols, each once: every code is exactly 3 bits.
	input := []byte("ABCDEFGH")
	result := roundTrip(t, input)

	cb, _ := buildCodebookFor(t, input)
	for sym, code := range cb {
		if code.Size != 3 {
			t.Errorf("wrong code size for %q:\n\texpect: 3\n\tactual: %d", byte(sym), code.Size)
		}
	}
	if expect, actual := uint64(24), result.Stats.CompressedBits; expect != actual {
		t.Errorf("wrong compressed bits:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
}

func TestCompress_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		alphabet := 1 + rng.Intn(256)
		data := make([]byte, 1+rng.Intn(8000))
		for i := range data {
			data[i] = byte(rng.Intn(alphabet))
		}
		roundTrip(t, data)
	}
}

func TestCompress_Optimality(t *testing.T) {
	// Any prefix code costs at least the Shannon entropy and an optimal
	// one costs at most entropy+1 bits per symbol; a fixed-width
	// ceil(log2 k) assignment is also a valid prefix code, so the
	// Huffman total must not exceed it either.
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		data := make([]byte, 2048)
		for i := range data {
			// Skewed distribution so there is something to win.
			v := rng.ExpFloat64() * 8
			if v > 255 {
				v = 255
			}
			data[i] = byte(v)
		}
		ft := CountFrequencies(data)
		if ft.Len() < 2 {
			continue
		}
		result := roundTrip(t, data)

		var entropy float64
		n := float64(ft.Total())
		for _, sym := range ft.Symbols() {
			p := float64(ft.Count(sym)) / n
			entropy -= p * math.Log2(p)
		}

		lower := uint64(math.Floor(entropy * n))
		upper := uint64(math.Ceil((entropy + 1) * n))
		actual := result.Stats.CompressedBits
		if actual < lower || actual > upper {
			t.Errorf("encoded size %d outside entropy bounds [%d, %d]", actual, lower, upper)
		}

		fixedWidth := uint64(math.Ceil(math.Log2(float64(ft.Len())))) * ft.Total()
		if actual > fixedWidth {
			t.Errorf("encoded size %d exceeds fixed-width assignment %d", actual, fixedWidth)
		}
	}
}

func TestCompress_Deterministic(t *testing.T) {
	input := []byte("mississippi riverbed mississippi")
	first, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	firstBlob := EncodeArchive(first)
	for i := 0; i < 10; i++ {
		again, err := Compress(input)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		if !bytes.Equal(firstBlob, EncodeArchive(again)) {
			t.Fatal("identical inputs produced different archives")
		}
	}
}

func TestCompress_Stats(t *testing.T) {
	result := roundTrip(t, []byte("AAAAAAAB"))

	expect := Stats{OriginalSymbols: 8, OriginalBits: 64, CompressedBits: 8}
	if result.Stats != expect {
		t.Errorf("wrong stats:\n\texpect: %+v\n\tactual: %+v", expect, result.Stats)
	}
	if expect, actual := int64(56), result.Stats.SavedBits(); expect != actual {
		t.Errorf("wrong SavedBits:\n\texpect: %d\n\tactual: %d", expect, actual)
	}
	if expect, actual := 87.5, result.Stats.Rate(); expect != actual {
		t.Errorf("wrong Rate:\n\texpect: %g\n\tactual: %g", expect, actual)
	}
	if expect, actual := 8.0, result.Stats.Factor(); expect != actual {
		t.Errorf("wrong Factor:\n\texpect: %g\n\tactual: %g", expect, actual)
	}
}

func TestDecode_TruncatedMidCode(t *testing.T) {
	// "aaabbc" encodes to 9 bits: 000 11 11 10.  Declaring only 8 valid
	// bits ends the traversal one edge below the root.
	result, err := Compress([]byte("aaabbc"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if expect, actual := uint64(9), result.Payload.BitLen(); expect != actual {
		t.Fatalf("wrong bit length:\n\texpect: %d\n\tactual: %d", expect, actual)
	}

	truncated := Payload{Data: result.Payload.Data[:1], LastBits: 8}
	_, err = Decompress(truncated, result.Tree)
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrMalformedPayload, err)
	}
}

func TestDecode_PayloadWithoutTree(t *testing.T) {
	payload := Payload{Data: []byte{0xFF}, LastBits: 8}
	_, err := Decompress(payload, nil)
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrMalformedPayload, err)
	}
}

func TestDecode_LoneLeafTree(t *testing.T) {
	root := &Node{Sym: 'X'}
	payload := Payload{Data: []byte{0x00}, LastBits: 5}
	actual, err := Decode(payload, root)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal([]byte("XXXXX"), actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "XXXXX", actual)
	}
}
