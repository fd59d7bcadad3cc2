package zimg

import "github.com/deepteams/zimg/internal/engine"

// UnresizeGraph is the inverse of a separable resize: given a plane
// that was produced by upsampling an original srcWidth x srcHeight
// plane to dstWidth x dstHeight, it recovers a least-squares estimate
// of that original resolution. Build one with [NewUnresizeGraph] and
// drive it with [UnresizeGraph.Process]; unlike [FilterGraph] it
// always operates on a single Float plane; there is no depth or
// colorspace stage.
type UnresizeGraph struct {
	g *engine.UnresizeGraph
}

// NewUnresizeGraph builds the graph recovering a srcWidth x srcHeight
// plane from one that was upsampled to dstWidth x dstHeight.
// shiftW/shiftH are the chroma siting offsets the original resize
// applied, in destination pixels; pass 0, 0 for luma. It returns an
// error if either dimension of the target is smaller than the source
// (unresize only reverses an upsample).
func NewUnresizeGraph(srcWidth, srcHeight, dstWidth, dstHeight int, shiftW, shiftH float64) (*UnresizeGraph, error) {
	g, err := engine.NewUnresizeGraph(srcWidth, srcHeight, dstWidth, dstHeight, shiftW, shiftH)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &UnresizeGraph{g: g}, nil
}

// GetTmpSize returns the size in bytes the tmp buffer passed to
// Process must provide.
func (u *UnresizeGraph) GetTmpSize() int { return u.g.GetTmpSize() }

// Process drives src (a single Float plane, dstWidth x dstHeight, the
// previously upsampled data) through the graph into dst (srcWidth x
// srcHeight, the recovered original). tmp must be at least
// GetTmpSize() bytes.
func (u *UnresizeGraph) Process(src, dst ImageBuffer, tmp []byte) error {
	if err := u.g.Process(src, dst, tmp); err != nil {
		return wrapErr(err)
	}
	return nil
}
