package scene

// DefaultBuckets is the resolution of the height index.
const DefaultBuckets = 500

// HeightIndex maps height buckets to vertex buffer offsets. Bucket i covers
// tops from Cutoff(i) up to Cutoff(i+1). Bot[i] is the offset of the first
// vertex drawn for a brick reaching bucket i; Top[i] equals Bot[i+1], and the
// last Top is the buffer length. Offsets count floats, not vertices.
type HeightIndex struct {
	Bot, Top []int
	Min, Max int32
}

func newHeightIndex(k int, lo, hi int32) HeightIndex {
	if k <= 0 {
		k = DefaultBuckets
	}
	return HeightIndex{
		Bot: make([]int, k),
		Top: make([]int, k),
		Min: lo,
		Max: hi,
	}
}

// Span returns Max - Min without int32 overflow.
func (h HeightIndex) Span() int64 { return int64(h.Max) - int64(h.Min) }

// Len returns the number of buckets.
func (h HeightIndex) Len() int { return len(h.Bot) }

// Cutoff returns the lowest top height that reaches bucket i.
func (h HeightIndex) Cutoff(i int) int32 {
	if len(h.Bot) == 0 {
		return h.Min
	}
	step := float64(h.Span()) / float64(len(h.Bot))
	return int32(int64(h.Min) + int64(step*float64(i)))
}

// Bucket returns the bucket a height falls in, clamped to the index range.
func (h HeightIndex) Bucket(height int32) int {
	n := len(h.Bot)
	if n == 0 || height <= h.Min {
		return 0
	}
	// Cutoff is monotonic, so binary search for the last cutoff <= height.
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if h.Cutoff(mid) <= height {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Range returns the buffer slice bounds covering buckets lo through hi.
// Bucket numbers are clamped; ok is false when the window is empty.
func (h HeightIndex) Range(lo, hi int) (start, end int, ok bool) {
	n := len(h.Bot)
	if n == 0 {
		return 0, 0, false
	}
	lo = max(lo, 0)
	hi = min(hi, n-1)
	if lo > hi {
		return 0, 0, false
	}
	start, end = h.Bot[lo], h.Top[hi]
	return start, end, start < end
}

// indexer fills a HeightIndex while bricks stream in ascending top order.
type indexer struct {
	idx  *HeightIndex
	next int
}

// reach records offset as the start of every bucket the given top reaches
// that has not been claimed yet.
func (x *indexer) reach(top int32, offset int) {
	for x.next < len(x.idx.Bot) && top >= x.idx.Cutoff(x.next) {
		x.idx.Bot[x.next] = offset
		x.next++
	}
}

// finish assigns buckets no brick reached to the end of the buffer and
// derives Top from Bot.
func (x *indexer) finish(length int) {
	for ; x.next < len(x.idx.Bot); x.next++ {
		x.idx.Bot[x.next] = length
	}
	n := len(x.idx.Bot)
	for i := 0; i < n-1; i++ {
		x.idx.Top[i] = x.idx.Bot[i+1]
	}
	if n > 0 {
		x.idx.Top[n-1] = length
	}
}
