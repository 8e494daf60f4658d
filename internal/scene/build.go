package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/brickatlas/internal/colorspace"
	"github.com/Faultbox/brickatlas/internal/logger"
	"github.com/Faultbox/brickatlas/pkg/geom"
)

// VertexSize is the number of floats per vertex: x, y, r, g, b.
const VertexSize = 5

// Options selects what Build draws.
type Options struct {
	Fills    bool
	Outlines bool
	Buckets  int // height index resolution; <= 0 means DefaultBuckets
}

// DefaultOptions draws fills and outlines at the default resolution.
func DefaultOptions() Options {
	return Options{Fills: true, Outlines: true, Buckets: DefaultBuckets}
}

// Stats summarizes one build.
type Stats struct {
	Bricks    int // visible bricks streamed
	Vertices  int
	Triangles int
}

// Buffer is the result of one build.
type Buffer struct {
	Vertices []float32
	Index    HeightIndex
	Centroid mgl64.Vec2
	Centered bool // false when the scene has no area and Centroid is the origin
	Bounds   Bounds
	Stats    Stats
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices) / VertexSize
}

// Clip returns the part of the buffer drawn for bricks reaching buckets
// lo through hi. The result aliases Vertices.
func (b *Buffer) Clip(lo, hi int) []float32 {
	start, end, ok := b.Index.Range(lo, hi)
	if !ok {
		return nil
	}
	return b.Vertices[start:end]
}

// builder appends vertices for one build and owns all per-build state.
type builder struct {
	buf    []float32
	index  HeightIndex
	marker indexer
	extent Extent
	stats  Stats
}

func newBuilder(s *Scene, buckets int) *builder {
	b := &builder{
		buf:    make([]float32, 0, s.Visible.Count()*6*VertexSize),
		index:  newHeightIndex(buckets, s.MinHeight, s.MaxHeight),
		extent: NewExtent(),
	}
	b.marker = indexer{idx: &b.index}
	return b
}

// begin starts a brick: claims buckets its top reaches and folds it into the
// centroid and bounds.
func (b *builder) begin(p Placed) {
	b.marker.reach(p.Top(), len(b.buf))
	b.extent.Add(p)
	b.stats.Bricks++
}

func (b *builder) emit(m geom.Mesh, rgb [3]float32) {
	for _, v := range m {
		b.buf = append(b.buf, v.X, v.Y, rgb[0], rgb[1], rgb[2])
	}
	b.stats.Triangles += m.Triangles()
}

func (b *builder) finish() *Buffer {
	b.marker.finish(len(b.buf))
	b.stats.Vertices = len(b.buf) / VertexSize
	c, ok := b.extent.Centroid()
	return &Buffer{
		Vertices: b.buf,
		Index:    b.index,
		Centroid: c,
		Centered: ok,
		Bounds:   b.extent.Bounds(),
		Stats:    b.stats,
	}
}

// Build streams visible bricks bottom to top into a fresh buffer. Each brick
// contributes its fill in its own color, then its outline in black. conv may
// be nil, in which case channels are only divided by 255.
func Build(s *Scene, opts Options, conv colorspace.Converter) *Buffer {
	if conv == nil {
		conv = colorspace.Linear{}
	}

	palette := make([][3]float32, len(s.Palette))
	for i, c := range s.Palette {
		palette[i] = conv.Convert(c)
	}

	b := newBuilder(s, opts.Buckets)
	for _, i := range s.Order {
		if !s.Visible.Has(i) {
			continue
		}
		p := s.Bricks[i]
		b.begin(p)

		if !opts.Fills && !opts.Outlines {
			continue
		}
		fill, outline := p.Silhouette()
		if opts.Fills {
			var rgb [3]float32
			if p.Color.Inline {
				rgb = conv.Convert(p.Color.RGBA)
			} else {
				rgb = palette[p.Color.Index]
			}
			b.emit(fill, rgb)
		}
		if opts.Outlines {
			b.emit(outline, colorspace.Black.RGB())
		}
	}

	out := b.finish()
	logger.Debug("vertex buffer built",
		zap.Int("bricks", out.Stats.Bricks),
		zap.Int("vertices", out.Stats.Vertices),
		zap.Int("triangles", out.Stats.Triangles),
		zap.Bool("fills", opts.Fills),
		zap.Bool("outlines", opts.Outlines),
	)
	return out
}

// BuildHeightmap draws only fills, shaded grey by each brick's center height
// relative to the scene's height range.
func BuildHeightmap(s *Scene, buckets int) *Buffer {
	span := float64(int64(s.MaxHeight) - int64(s.MinHeight))

	b := newBuilder(s, buckets)
	for _, i := range s.Order {
		if !s.Visible.Has(i) {
			continue
		}
		p := s.Bricks[i]
		b.begin(p)

		var shade float32
		if span > 0 {
			shade = float32(float64(int64(p.Position.Z)-int64(s.MinHeight)) / span)
		}
		fill, _ := p.Silhouette()
		b.emit(fill, [3]float32{shade, shade, shade})
	}

	out := b.finish()
	logger.Debug("heightmap buffer built",
		zap.Int("bricks", out.Stats.Bricks),
		zap.Int("vertices", out.Stats.Vertices),
	)
	return out
}
