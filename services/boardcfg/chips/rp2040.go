// services/boardcfg/chips/rp2040.go
package chips

func init() { Register(rp2040{}) }

type rp2040 struct{}

func (rp2040) Name() string { return "rp2040" }

func (rp2040) PinValid(n int) bool { return n >= 0 && n <= 29 }

func (rp2040) InputOnly(int) bool { return false }

func (rp2040) Reserved(n int) (string, bool) {
	// QSPI flash lives on dedicated pads, not the GPIO bank; only the
	// Pico's on-board wiring is worth flagging.
	switch n {
	case 23:
		return "controls the on-board SMPS power-save mode", true
	case 24:
		return "senses VBUS on the Pico", true
	case 29:
		return "ADC3 measures VSYS on the Pico", true
	}
	return "", false
}

func (rp2040) MaxSPIHz() int { return 62_500_000 }
