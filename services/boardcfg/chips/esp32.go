// services/boardcfg/chips/esp32.go
package chips

func init() { Register(esp32{}) }

// esp32 covers the original ESP32 (not S2/S3/C3 variants).
type esp32 struct{}

func (esp32) Name() string { return "esp32" }

func (esp32) PinValid(n int) bool {
	// GPIO 20, 24 and 28-31 do not exist on the package.
	switch n {
	case 20, 24, 28, 29, 30, 31:
		return false
	}
	return n >= 0 && n <= 39
}

// GPIO 34-39 have no output driver.
func (esp32) InputOnly(n int) bool { return n >= 34 && n <= 39 }

func (esp32) Reserved(n int) (string, bool) {
	switch n {
	case 0, 2, 5, 12, 15:
		return "strapping pin sampled at boot", true
	case 6, 7, 8, 9, 10, 11:
		return "connected to embedded SPI flash", true
	}
	return "", false
}

// 80 MHz is the SPI master ceiling on matched IO_MUX pins.
func (esp32) MaxSPIHz() int { return 80_000_000 }
