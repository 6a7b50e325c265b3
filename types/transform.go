package types

// Transform maps raw touch coordinates into display space:
//
//	x' = XX*x + XY*y + DX
//	y' = YX*x + YY*y + DY
//
// Matrix entries are always -1, 0 or 1; offsets come from the panel
// dimensions. Resolved deterministically from OrientationFlags.
type Transform struct {
	XX int `json:"xx"`
	XY int `json:"xy"`
	YX int `json:"yx"`
	YY int `json:"yy"`
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Identity is the no-op transform.
var Identity = Transform{XX: 1, YY: 1}

// Apply maps one raw point into display space.
func (t Transform) Apply(x, y int) (int, int) {
	return t.XX*x + t.XY*y + t.DX, t.YX*x + t.YY*y + t.DY
}
