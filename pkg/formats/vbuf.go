package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Vertex buffer file errors.
var (
	ErrInvalidBufferMagic       = errors.New("invalid vertex buffer magic: expected 'BRKV'")
	ErrUnsupportedBufferVersion = errors.New("unsupported vertex buffer version")
	ErrTruncatedBufferData      = errors.New("truncated vertex buffer data")
)

const bufferMagic = "BRKV"

// BufferVersion is the current vertex buffer file version.
var BufferVersion = Version{Major: 1, Minor: 0}

// Version is a file format version.
type Version struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// VertexBuffer is a built map as stored on disk. Offsets in Bot and Top
// count floats into Vertices.
type VertexBuffer struct {
	Version  Version
	Centroid [2]float64
	Centered bool
	Bounds   [4]int32 // x1, y1, x2, y2
	Bot      []uint32
	Top      []uint32
	Vertices []float32 // x, y, r, g, b per vertex
}

// bufferHeader is the fixed part following magic and version.
type bufferHeader struct {
	Buckets  uint32
	Floats   uint32
	Centroid [2]float64
	Centered uint8
	_        [3]byte
	Bounds   [4]int32
}

// headerSize is magic, version and bufferHeader.
const headerSize = 4 + 2 + 4 + 4 + 16 + 1 + 3 + 16

// WriteVertexBuffer encodes vb in little-endian order.
func WriteVertexBuffer(w io.Writer, vb *VertexBuffer) error {
	if len(vb.Bot) != len(vb.Top) {
		return fmt.Errorf("bucket arrays differ in length: %d and %d", len(vb.Bot), len(vb.Top))
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(bufferMagic)
	bw.WriteByte(BufferVersion.Minor)
	bw.WriteByte(BufferVersion.Major)

	h := bufferHeader{
		Buckets:  uint32(len(vb.Bot)),
		Floats:   uint32(len(vb.Vertices)),
		Centroid: vb.Centroid,
		Bounds:   vb.Bounds,
	}
	if vb.Centered {
		h.Centered = 1
	}
	for _, v := range []any{h, vb.Bot, vb.Top, vb.Vertices} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write vertex buffer: %w", err)
		}
	}
	return bw.Flush()
}

// ParseVertexBuffer parses a vertex buffer file from raw bytes.
func ParseVertexBuffer(data []byte) (*VertexBuffer, error) {
	if len(data) < headerSize {
		return nil, ErrTruncatedBufferData
	}
	if string(data[0:4]) != bufferMagic {
		return nil, ErrInvalidBufferMagic
	}

	// Version is stored as [minor, major]
	version := Version{Major: data[5], Minor: data[4]}
	if version.Major != BufferVersion.Major {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBufferVersion, version)
	}

	r := bytes.NewReader(data[6:])
	var h bufferHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedBufferData)
	}

	need := 8*int64(h.Buckets) + 4*int64(h.Floats)
	if int64(r.Len()) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedBufferData, need, r.Len())
	}

	vb := &VertexBuffer{
		Version:  version,
		Centroid: h.Centroid,
		Centered: h.Centered != 0,
		Bounds:   h.Bounds,
		Bot:      make([]uint32, h.Buckets),
		Top:      make([]uint32, h.Buckets),
		Vertices: make([]float32, h.Floats),
	}
	for _, v := range []any{vb.Bot, vb.Top, vb.Vertices} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedBufferData, err)
		}
	}
	return vb, nil
}

// LoadVertexBuffer reads a vertex buffer file from disk.
func LoadVertexBuffer(path string) (*VertexBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vertex buffer file: %w", err)
	}
	return ParseVertexBuffer(data)
}

// SaveVertexBuffer writes vb to path.
func SaveVertexBuffer(path string, vb *VertexBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vertex buffer file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteVertexBuffer(f, vb)
}

// Buckets returns the number of height buckets.
func (vb *VertexBuffer) Buckets() int { return len(vb.Bot) }

// Clip returns the floats drawn for bricks reaching buckets lo through hi,
// clamped to the stored index. The result aliases Vertices.
func (vb *VertexBuffer) Clip(lo, hi int) []float32 {
	n := len(vb.Bot)
	lo, hi = max(lo, 0), min(hi, n-1)
	if n == 0 || lo > hi {
		return nil
	}
	start, end := int(vb.Bot[lo]), int(vb.Top[hi])
	if start > end || end > len(vb.Vertices) {
		return nil
	}
	return vb.Vertices[start:end]
}
