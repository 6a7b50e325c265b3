// services/boardcfg/orientation.go
package boardcfg

import (
	"boardcfg-go/types"
	"boardcfg-go/x/mathx"
)

// One row per flag combination. Offsets depend on the panel size, so rows
// only record whether each axis needs the (size-1) origin shift.
type xfRow struct {
	xx, xy, yx, yy int
	dxW, dyH       bool
}

// Indexed by swap<<2 | flipX<<1 | flipY. Total: every combination resolves.
var xfTable = [8]xfRow{
	0: {1, 0, 0, 1, false, false},   // identity
	1: {1, 0, 0, -1, false, true},   // flip-y
	2: {-1, 0, 0, 1, true, false},   // flip-x
	3: {-1, 0, 0, -1, true, true},   // flip-x + flip-y
	4: {0, 1, 1, 0, false, false},   // swap
	5: {0, 1, -1, 0, false, true},   // swap + flip-y
	6: {0, -1, 1, 0, true, false},   // swap + flip-x
	7: {0, -1, -1, 0, true, true},   // swap + flip-x + flip-y
}

// ResolveTransform computes the raw-touch to display-space mapping for the
// given flags and panel geometry. Deterministic and side-effect free.
func ResolveTransform(f types.OrientationFlags, geom types.DisplayGeometry) types.Transform {
	i := 0
	if f.SwapXY {
		i |= 4
	}
	if f.FlipX {
		i |= 2
	}
	if f.FlipY {
		i |= 1
	}
	row := xfTable[i]

	t := types.Transform{XX: row.xx, XY: row.xy, YX: row.yx, YY: row.yy}
	if row.dxW {
		t.DX = mathx.Max(geom.Width-1, 0)
	}
	if row.dyH {
		t.DY = mathx.Max(geom.Height-1, 0)
	}
	return t
}
