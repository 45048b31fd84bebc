package geometry

import (
	hostcompat "github.com/wippyai/host-compat"
)

// Parameter keys of a display surface's geometry collection.
const (
	ParamInternalBorderWidth = "internal-border-width"
	ParamTextWidth           = "text-width"
	ParamLeftMarginWidth     = "left-margin-width"
	ParamRightMarginWidth    = "right-margin-width"
	ParamLeftFringe          = "left-fringe"
	ParamRightFringe         = "right-fringe"
	ParamScrollBarWidth      = "scroll-bar-width"
)

// intOr returns the named parameter or def when absent.
func intOr(p hostcompat.Params, key string, def int) int {
	if v, ok := p.Int(key); ok {
		return v
	}
	return def
}

// BorderWidth returns the surface's internal border width in pixels,
// or 0 when the parameter is absent.
func BorderWidth(p hostcompat.Params) int {
	return intOr(p, ParamInternalBorderWidth, 0)
}

// PixelWidth returns the surface's total width in pixels: text area,
// margins, fringes, scroll bar, and the internal border on both sides.
func PixelWidth(p hostcompat.Params) int {
	return intOr(p, ParamTextWidth, 0) +
		intOr(p, ParamLeftMarginWidth, 0) +
		intOr(p, ParamRightMarginWidth, 0) +
		intOr(p, ParamLeftFringe, 0) +
		intOr(p, ParamRightFringe, 0) +
		intOr(p, ParamScrollBarWidth, 0) +
		2*BorderWidth(p)
}
