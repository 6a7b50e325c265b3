package types

// Shared board-configuration records. These are plain data: all validation
// lives in services/boardcfg.

// PinUnused marks a signal that is not wired on the board.
const PinUnused = -1

// Signal is a logical pin role on the display/touch stack.
type Signal string

const (
	DisplayMOSI      Signal = "display-mosi"
	DisplayMISO      Signal = "display-miso"
	DisplaySCLK      Signal = "display-sclk"
	DisplayCS        Signal = "display-cs"
	DisplayDC        Signal = "display-dc"
	DisplayRST       Signal = "display-rst"
	DisplayBacklight Signal = "display-backlight"
	TouchCS          Signal = "touch-cs"
	TouchIRQ         Signal = "touch-irq"
	TouchMOSI        Signal = "touch-mosi"
	TouchMISO        Signal = "touch-miso"
	TouchSCLK        Signal = "touch-sclk"
)

// PinAssignment maps each logical signal to a GPIO number, PinUnused if the
// line is not wired.
type PinAssignment struct {
	DisplayMOSI      int `json:"display_mosi"`
	DisplayMISO      int `json:"display_miso"`
	DisplaySCLK      int `json:"display_sclk"`
	DisplayCS        int `json:"display_cs"`
	DisplayDC        int `json:"display_dc"`
	DisplayRST       int `json:"display_rst"`
	DisplayBacklight int `json:"display_backlight"`
	TouchCS          int `json:"touch_cs"`
	TouchIRQ         int `json:"touch_irq"`
	TouchMOSI        int `json:"touch_mosi"`
	TouchMISO        int `json:"touch_miso"`
	TouchSCLK        int `json:"touch_sclk"`
}

// SignalPin is one (signal, GPIO) pair.
type SignalPin struct {
	Signal Signal
	Pin    int
}

// Signals returns every (signal, GPIO) pair in declaration order, including
// unused ones. The fixed order keeps conflict reports deterministic.
func (p PinAssignment) Signals() []SignalPin {
	return []SignalPin{
		{DisplayMOSI, p.DisplayMOSI},
		{DisplayMISO, p.DisplayMISO},
		{DisplaySCLK, p.DisplaySCLK},
		{DisplayCS, p.DisplayCS},
		{DisplayDC, p.DisplayDC},
		{DisplayRST, p.DisplayRST},
		{DisplayBacklight, p.DisplayBacklight},
		{TouchCS, p.TouchCS},
		{TouchIRQ, p.TouchIRQ},
		{TouchMOSI, p.TouchMOSI},
		{TouchMISO, p.TouchMISO},
		{TouchSCLK, p.TouchSCLK},
	}
}

// BusTiming holds the SPI clock rates in hertz.
type BusTiming struct {
	WriteHz int `json:"write_hz"`
	ReadHz  int `json:"read_hz"`
	TouchHz int `json:"touch_hz"`
}

// OrientationFlags select the raw-touch to display-space mapping.
type OrientationFlags struct {
	SwapXY bool `json:"swap_xy"`
	FlipX  bool `json:"flip_x"`
	FlipY  bool `json:"flip_y"`
}

// FontFlags mirror the library's optional font tables. Independent toggles.
type FontFlags struct {
	GLCD  bool `json:"glcd"`
	Font2 bool `json:"font2"`
	Font4 bool `json:"font4"`
	Font6 bool `json:"font6"`
	Font7 bool `json:"font7"`
	Font8 bool `json:"font8"`
	GFXFF bool `json:"gfxff"`
}

// FeatureFlags are independent compile-time-style capabilities.
type FeatureFlags struct {
	Fonts        FontFlags `json:"fonts"`
	SmoothFont   bool      `json:"smooth_font"`
	Transactions bool      `json:"transactions"`
}

// DisplayGeometry describes the panel itself.
type DisplayGeometry struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	RGBOrder string `json:"rgb_order,omitempty"` // "rgb" | "bgr"
	Invert   bool   `json:"invert,omitempty"`
}

// BoardSpec is the raw, declarative description of one board, as parsed from
// a profile document or supplied on the config/board topic.
type BoardSpec struct {
	Chip        string           `json:"chip"`
	Display     DisplayGeometry  `json:"display"`
	Pins        PinAssignment    `json:"pins"`
	Timing      BusTiming        `json:"timing"`
	Orientation OrientationFlags `json:"orientation"`
	Features    FeatureFlags     `json:"features"`
}

// ResolvedConfig is the product of successful validation. It is constructed
// only by services/boardcfg and treated as immutable afterwards; downstream
// consumers trust it without re-validation.
type ResolvedConfig struct {
	Chip       string          `json:"chip"`
	Display    DisplayGeometry `json:"display"`
	Pins       PinAssignment   `json:"pins"`
	Timing     BusTiming       `json:"timing"`
	Transform  Transform       `json:"transform"`
	Features   FeatureFlags    `json:"features"`
	Advisories ConflictList    `json:"advisories,omitempty"`
}
