package boardcfg

import (
	"testing"

	"boardcfg-go/types"
)

var geom = types.DisplayGeometry{Width: 320, Height: 480}

func TestResolveTransform_AllCombinations(t *testing.T) {
	cases := []struct {
		name  string
		flags types.OrientationFlags
		want  types.Transform
	}{
		{"identity", types.OrientationFlags{}, types.Transform{XX: 1, YY: 1}},
		{"flip-y", types.OrientationFlags{FlipY: true}, types.Transform{XX: 1, YY: -1, DY: 479}},
		{"flip-x", types.OrientationFlags{FlipX: true}, types.Transform{XX: -1, YY: 1, DX: 319}},
		{"flip-x+flip-y", types.OrientationFlags{FlipX: true, FlipY: true}, types.Transform{XX: -1, YY: -1, DX: 319, DY: 479}},
		{"swap", types.OrientationFlags{SwapXY: true}, types.Transform{XY: 1, YX: 1}},
		{"swap+flip-y", types.OrientationFlags{SwapXY: true, FlipY: true}, types.Transform{XY: 1, YX: -1, DY: 479}},
		{"swap+flip-x", types.OrientationFlags{SwapXY: true, FlipX: true}, types.Transform{XY: -1, YX: 1, DX: 319}},
		{"swap+flip-x+flip-y", types.OrientationFlags{SwapXY: true, FlipX: true, FlipY: true}, types.Transform{XY: -1, YX: -1, DX: 319, DY: 479}},
	}

	for _, tc := range cases {
		got := ResolveTransform(tc.flags, geom)
		if got != tc.want {
			t.Errorf("%s: got %+v want %+v", tc.name, got, tc.want)
		}
		// Deterministic: a second resolution is identical.
		if again := ResolveTransform(tc.flags, geom); again != got {
			t.Errorf("%s: resolution not deterministic", tc.name)
		}
	}
}

func TestResolveTransform_SwapFlipXScenario(t *testing.T) {
	got := ResolveTransform(types.OrientationFlags{SwapXY: true, FlipX: true}, geom)
	// x' = (W-1) - y, y' = x
	if x, y := got.Apply(10, 20); x != 299 || y != 10 {
		t.Fatalf("Apply(10,20) = (%d,%d), want (299,10)", x, y)
	}
}

func TestResolveTransform_PureFlipsAreInvolutions(t *testing.T) {
	flips := []types.OrientationFlags{
		{FlipX: true},
		{FlipY: true},
		{FlipX: true, FlipY: true},
	}
	points := [][2]int{{0, 0}, {10, 20}, {319, 479}, {160, 240}}

	for _, f := range flips {
		tr := ResolveTransform(f, geom)
		for _, p := range points {
			x1, y1 := tr.Apply(p[0], p[1])
			x2, y2 := tr.Apply(x1, y1)
			if x2 != p[0] || y2 != p[1] {
				t.Errorf("flags %+v: applying twice moved (%d,%d) to (%d,%d)",
					f, p[0], p[1], x2, y2)
			}
		}
	}
}

func TestResolveTransform_SmallPanelOffsets(t *testing.T) {
	// Degenerate geometry must not produce negative offsets.
	tr := ResolveTransform(types.OrientationFlags{FlipX: true, FlipY: true}, types.DisplayGeometry{})
	if tr.DX != 0 || tr.DY != 0 {
		t.Fatalf("expected zero offsets for empty geometry, got %+v", tr)
	}
}
