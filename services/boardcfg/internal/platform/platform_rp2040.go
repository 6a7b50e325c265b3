// services/boardcfg/internal/platform/platform_rp2040.go
//go:build rp2040

package platform

import (
	"machine"

	"boardcfg-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/st7789"
)

func pin(n int) machine.Pin {
	if n == types.PinUnused {
		return machine.NoPin
	}
	return machine.Pin(n)
}

// diagUART carries the bring-up report on the Pico dev harness.
var diagUART *uartx.UART

func initDiag() {
	if diagUART != nil {
		return
	}
	diagUART = uartx.UART0
	_ = diagUART.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})
}

// BringUp configures SPI1 from the resolved pin set, initialises the display
// driver and echoes the bring-up report on the diagnostics UART.
func BringUp(cfg *types.ResolvedConfig) error {
	initDiag()

	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       pin(cfg.Pins.DisplaySCLK),
		SDO:       pin(cfg.Pins.DisplayMOSI),
		SDI:       pin(cfg.Pins.DisplayMISO),
		Frequency: uint32(cfg.Timing.WriteHz),
	})
	if err != nil {
		return err
	}

	display := st7789.New(machine.SPI1,
		pin(cfg.Pins.DisplayRST),
		pin(cfg.Pins.DisplayDC),
		pin(cfg.Pins.DisplayCS),
		pin(cfg.Pins.DisplayBacklight))
	display.Configure(st7789.Config{
		Width:  int16(cfg.Display.Width),
		Height: int16(cfg.Display.Height),
	})

	_, _ = diagUART.Write([]byte(types.Report(cfg, cfg.Advisories)))
	return nil
}
