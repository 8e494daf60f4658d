package scene

import "github.com/Faultbox/brickatlas/pkg/formats"

// Export converts the buffer into its on-disk form. Vertices are shared.
func (b *Buffer) Export() *formats.VertexBuffer {
	vb := &formats.VertexBuffer{
		Version:  formats.BufferVersion,
		Centroid: [2]float64{b.Centroid.X(), b.Centroid.Y()},
		Centered: b.Centered,
		Bounds:   [4]int32{b.Bounds.X1, b.Bounds.Y1, b.Bounds.X2, b.Bounds.Y2},
		Bot:      make([]uint32, b.Index.Len()),
		Top:      make([]uint32, b.Index.Len()),
		Vertices: b.Vertices,
	}
	for i := range vb.Bot {
		vb.Bot[i] = uint32(b.Index.Bot[i])
		vb.Top[i] = uint32(b.Index.Top[i])
	}
	return vb
}
