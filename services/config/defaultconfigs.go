// services/config/defaultconfigs.go
package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: board ID (same value placed in ctx under CtxBoardKey)
// Val: raw JSON board document
// -----------------------------------------------------------------------------

const cfgFreenove = `{
  "chip": "esp32",
  "display": {"width": 320, "height": 480, "rgb_order": "bgr"},
  "pins": {
    "display_mosi": 13,
    "display_miso": 12,
    "display_sclk": 14,
    "display_cs": 15,
    "display_dc": 2,
    "display_rst": -1,
    "display_backlight": 27,
    "touch_cs": 33,
    "touch_irq": 36,
    "touch_mosi": 32,
    "touch_miso": 39,
    "touch_sclk": 25
  },
  "timing": {"write_hz": 27000000, "read_hz": 20000000, "touch_hz": 3000000},
  "orientation": {"swap_xy": true, "flip_x": true},
  "features": {
    "fonts": {"glcd": true, "font2": true, "font4": true, "font6": true, "font7": true, "font8": true, "gfxff": true},
    "smooth_font": true,
    "transactions": true
  }
}`

var embeddedConfigs = map[string][]byte{
	"fnk0103s": []byte(cfgFreenove),
}
