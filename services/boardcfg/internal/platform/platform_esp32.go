// services/boardcfg/internal/platform/platform_esp32.go
//go:build esp32

package platform

import (
	"machine"

	"boardcfg-go/types"

	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/drivers/xpt2046"
)

func pin(n int) machine.Pin {
	if n == types.PinUnused {
		return machine.NoPin
	}
	return machine.Pin(n)
}

// BringUp configures the HSPI port from the resolved pin set and initialises
// the display and touch drivers. cfg is trusted as-is.
func BringUp(cfg *types.ResolvedConfig) error {
	spi := machine.SPI2 // HSPI
	err := spi.Configure(machine.SPIConfig{
		SCK:       pin(cfg.Pins.DisplaySCLK),
		SDO:       pin(cfg.Pins.DisplayMOSI),
		SDI:       pin(cfg.Pins.DisplayMISO),
		Frequency: uint32(cfg.Timing.WriteHz),
	})
	if err != nil {
		return err
	}

	display := st7789.New(spi,
		pin(cfg.Pins.DisplayRST),
		pin(cfg.Pins.DisplayDC),
		pin(cfg.Pins.DisplayCS),
		pin(cfg.Pins.DisplayBacklight))
	display.Configure(st7789.Config{
		Width:  int16(cfg.Display.Width),
		Height: int16(cfg.Display.Height),
	})

	// Touch controller on its own bit-banged lines; the resolved spec keeps
	// them distinct from (or shared with) the display bus as validated.
	touch := xpt2046.New(
		pin(cfg.Pins.TouchSCLK),
		pin(cfg.Pins.TouchCS),
		pin(cfg.Pins.TouchMOSI),
		pin(cfg.Pins.TouchMISO),
		pin(cfg.Pins.TouchIRQ))
	touch.Configure(&xpt2046.Config{Precision: 10})

	return nil
}
