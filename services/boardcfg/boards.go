// services/boardcfg/boards.go
package boardcfg

import "boardcfg-go/types"

// FreenoveFNK0103S is the wiring of the Freenove 4.0in FNK0103S_4P0 panel
// (ST7796 display + XPT2046 touch on a second SPI port, ESP32 host).
func FreenoveFNK0103S() types.BoardSpec {
	return types.BoardSpec{
		Chip: "esp32",
		Display: types.DisplayGeometry{
			Width:    320,
			Height:   480,
			RGBOrder: "bgr",
		},
		Pins: types.PinAssignment{
			DisplayMOSI:      13,
			DisplayMISO:      12,
			DisplaySCLK:      14,
			DisplayCS:        15,
			DisplayDC:        2,
			DisplayRST:       types.PinUnused, // panel reset tied to EN
			DisplayBacklight: 27,
			TouchCS:          33,
			TouchIRQ:         36,
			TouchMOSI:        32,
			TouchMISO:        39,
			TouchSCLK:        25,
		},
		Timing: types.BusTiming{
			WriteHz: 27_000_000,
			ReadHz:  20_000_000,
			TouchHz: 3_000_000,
		},
		Orientation: types.OrientationFlags{SwapXY: true, FlipX: true},
		Features: types.FeatureFlags{
			Fonts: types.FontFlags{
				GLCD: true, Font2: true, Font4: true,
				Font6: true, Font7: true, Font8: true, GFXFF: true,
			},
			SmoothFont:   true,
			Transactions: true,
		},
	}
}
