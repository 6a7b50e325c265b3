// profile/profile.go

// Package profile loads declarative board documents from YAML or JSON and
// turns them into types.BoardSpec records for validation. Pins are optional
// in documents; an omitted pin means "not wired", never GPIO 0.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"boardcfg-go/types"
)

// Fallback clock rates for documents that omit the spi section, matching the
// library defaults the original setup headers assume.
const (
	DefaultWriteHz = 27_000_000
	DefaultReadHz  = 20_000_000
	DefaultTouchHz = 2_500_000
)

// Document is the on-disk shape of a board profile.
type Document struct {
	Chip    string `yaml:"chip" json:"chip"`
	Display struct {
		Width    int    `yaml:"width" json:"width"`
		Height   int    `yaml:"height" json:"height"`
		RGBOrder string `yaml:"rgb_order" json:"rgb_order"`
		Invert   bool   `yaml:"invert" json:"invert"`
	} `yaml:"display" json:"display"`
	Pins struct {
		Display struct {
			MOSI      *int `yaml:"mosi" json:"mosi"`
			MISO      *int `yaml:"miso" json:"miso"`
			SCLK      *int `yaml:"sclk" json:"sclk"`
			CS        *int `yaml:"cs" json:"cs"`
			DC        *int `yaml:"dc" json:"dc"`
			RST       *int `yaml:"rst" json:"rst"`
			Backlight *int `yaml:"backlight" json:"backlight"`
		} `yaml:"display" json:"display"`
		Touch struct {
			CS   *int `yaml:"cs" json:"cs"`
			IRQ  *int `yaml:"irq" json:"irq"`
			MOSI *int `yaml:"mosi" json:"mosi"`
			MISO *int `yaml:"miso" json:"miso"`
			SCLK *int `yaml:"sclk" json:"sclk"`
		} `yaml:"touch" json:"touch"`
	} `yaml:"pins" json:"pins"`
	SPI struct {
		WriteHz int `yaml:"write_hz" json:"write_hz"`
		ReadHz  int `yaml:"read_hz" json:"read_hz"`
		TouchHz int `yaml:"touch_hz" json:"touch_hz"`
	} `yaml:"spi" json:"spi"`
	Touch struct {
		SwapXY bool `yaml:"swap_xy" json:"swap_xy"`
		FlipX  bool `yaml:"flip_x" json:"flip_x"`
		FlipY  bool `yaml:"flip_y" json:"flip_y"`
	} `yaml:"touch" json:"touch"`
	Features struct {
		Fonts        []string `yaml:"fonts" json:"fonts"`
		SmoothFont   bool     `yaml:"smooth_font" json:"smooth_font"`
		Transactions bool     `yaml:"transactions" json:"transactions"`
	} `yaml:"features" json:"features"`
}

func pinOr(p *int) int {
	if p == nil {
		return types.PinUnused
	}
	return *p
}

func hzOr(hz, def int) int {
	if hz == 0 {
		return def
	}
	return hz
}

// Spec converts the document into the shared record, applying defaults.
func (d Document) Spec() types.BoardSpec {
	spec := types.BoardSpec{
		Chip: d.Chip,
		Display: types.DisplayGeometry{
			Width:    d.Display.Width,
			Height:   d.Display.Height,
			RGBOrder: d.Display.RGBOrder,
			Invert:   d.Display.Invert,
		},
		Pins: types.PinAssignment{
			DisplayMOSI:      pinOr(d.Pins.Display.MOSI),
			DisplayMISO:      pinOr(d.Pins.Display.MISO),
			DisplaySCLK:      pinOr(d.Pins.Display.SCLK),
			DisplayCS:        pinOr(d.Pins.Display.CS),
			DisplayDC:        pinOr(d.Pins.Display.DC),
			DisplayRST:       pinOr(d.Pins.Display.RST),
			DisplayBacklight: pinOr(d.Pins.Display.Backlight),
			TouchCS:          pinOr(d.Pins.Touch.CS),
			TouchIRQ:         pinOr(d.Pins.Touch.IRQ),
			TouchMOSI:        pinOr(d.Pins.Touch.MOSI),
			TouchMISO:        pinOr(d.Pins.Touch.MISO),
			TouchSCLK:        pinOr(d.Pins.Touch.SCLK),
		},
		Timing: types.BusTiming{
			WriteHz: hzOr(d.SPI.WriteHz, DefaultWriteHz),
			ReadHz:  hzOr(d.SPI.ReadHz, DefaultReadHz),
			TouchHz: hzOr(d.SPI.TouchHz, DefaultTouchHz),
		},
		Orientation: types.OrientationFlags{
			SwapXY: d.Touch.SwapXY,
			FlipX:  d.Touch.FlipX,
			FlipY:  d.Touch.FlipY,
		},
	}

	spec.Features.SmoothFont = d.Features.SmoothFont
	spec.Features.Transactions = d.Features.Transactions
	for _, f := range d.Features.Fonts {
		switch strings.ToLower(f) {
		case "glcd":
			spec.Features.Fonts.GLCD = true
		case "font2":
			spec.Features.Fonts.Font2 = true
		case "font4":
			spec.Features.Fonts.Font4 = true
		case "font6":
			spec.Features.Fonts.Font6 = true
		case "font7":
			spec.Features.Fonts.Font7 = true
		case "font8":
			spec.Features.Fonts.Font8 = true
		case "gfxff":
			spec.Features.Fonts.GFXFF = true
		}
	}
	return spec
}

// Load reads a board document from path. JSON for .json, YAML otherwise.
func Load(path string) (types.BoardSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.BoardSpec{}, fmt.Errorf("read profile: %w", err)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return types.BoardSpec{}, fmt.Errorf("parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return types.BoardSpec{}, fmt.Errorf("parse yaml: %w", err)
		}
	}
	if doc.Chip == "" {
		return types.BoardSpec{}, fmt.Errorf("profile %s: chip is required", filepath.Base(path))
	}
	return doc.Spec(), nil
}
