package grid

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Compression selects the compression applied by Encode.
type Compression int

const (
	// CompressionNone writes plain msgpack.
	CompressionNone Compression = iota
	// CompressionZstd wraps the msgpack payload in a zstd frame.
	CompressionZstd
)

// zstdMagic is the frame header Decode uses to detect compressed input.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// snapshot is the wire form of a Grid. Cells are row-major, one byte each.
type snapshot struct {
	Version uint8  `msgpack:"v"`
	Width   int    `msgpack:"w"`
	Height  int    `msgpack:"h"`
	Cells   []byte `msgpack:"c"`
	Start   [2]int `msgpack:"s"`
	Exit    [2]int `msgpack:"e"`
}

const snapshotVersion = 1

// maxDecodedSize caps the decompressed payload of a zstd snapshot.
const maxDecodedSize = 64 << 20

// Encode serializes g with msgpack and the requested compression.
// Complexity: O(W×H).
func Encode(g *Grid, c Compression) ([]byte, error) {
	snap := snapshot{
		Version: snapshotVersion,
		Width:   g.Width,
		Height:  g.Height,
		Cells:   make([]byte, 0, g.Width*g.Height),
		Start:   [2]int{g.start.X, g.start.Y},
		Exit:    [2]int{g.exit.X, g.exit.Y},
	}
	for _, row := range g.cells {
		for _, cell := range row {
			snap.Cells = append(snap.Cells, byte(cell))
		}
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("grid: msgpack encoding failed: %w", err)
	}
	if c != CompressionZstd {
		return data, nil
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("grid: zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decode parses bytes produced by Encode. Compressed input is detected from
// its zstd frame header. The decoded grid is validated like FromRows input.
func Decode(data []byte) (*Grid, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd reader: %v", ErrDecode, err)
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrDecode, err)
		}
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: msgpack: %v", ErrDecode, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDecode, snap.Version)
	}
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	// divide rather than multiply so huge dimensions cannot overflow
	if snap.Height > len(snap.Cells) || len(snap.Cells)%snap.Height != 0 ||
		snap.Width != len(snap.Cells)/snap.Height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrNonRectangular, len(snap.Cells), snap.Width, snap.Height)
	}

	g, err := New(snap.Width, snap.Height)
	if err != nil {
		return nil, err
	}
	for i, b := range snap.Cells {
		cell := Cell(b)
		if cell != Open && cell != Wall {
			return nil, fmt.Errorf("%w: %d at index %d", ErrBadCellValue, b, i)
		}
		g.cells[i/snap.Width][i%snap.Width] = cell
	}
	g.start = Coordinate{X: snap.Start[0], Y: snap.Start[1]}
	g.exit = Coordinate{X: snap.Exit[0], Y: snap.Exit[1]}
	return g, nil
}
