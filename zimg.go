// Package zimg converts still-image and video frame buffers between
// pixel formats, colorspaces, and resolutions: colorspace matrixing,
// bit-depth/dither conversion, separable resizing, and the inverse
// unresize operation, composed into one incremental, line-based filter
// graph per conversion.
//
// A caller describes its source and destination buffers as
// [ImageFormat] values and asks for a [FilterGraph] with
// [NewFilterGraph]; the graph reports how much scratch memory and row
// buffering it needs ([FilterGraph.GetTmpSize],
// [FilterGraph.GetInputBuffering], [FilterGraph.GetOutputBuffering])
// and then drives the conversion one row group at a time through
// [FilterGraph.Process].
package zimg

import (
	"fmt"

	"github.com/deepteams/zimg/internal/engine"
)

// Callback lets a caller stream samples into a graph's source planes
// and out of its destination planes a row range at a time, instead of
// materializing the whole image up front. A non-nil return aborts the
// in-progress Process call.
type Callback = engine.Callback

// Code is the stable error taxonomy a failed graph construction or
// Process call reports through [Error].
type Code = engine.Code

const (
	Unknown            = engine.Unknown
	IllegalArgument    = engine.IllegalArgument
	Unsupported        = engine.Unsupported
	UserCallbackFailed = engine.UserCallbackFailed
	InternalError      = engine.InternalError
)

// Error pairs a stable [Code] with a human-readable message. Use
// errors.As to recover one from an error returned by this package.
type Error = engine.Error

// wrapErr prefixes err with the package name without discarding the
// underlying *Error - errors.As still finds it through fmt.Errorf's
// %w chain.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("zimg: %w", err)
}
