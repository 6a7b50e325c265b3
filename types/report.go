package types

import (
	"fmt"
	"strings"
)

// Report renders a validation outcome for logs, serial consoles and the CLI.
// cfg may be nil when validation failed.
func Report(cfg *ResolvedConfig, list ConflictList) string {
	var b strings.Builder

	if cfg != nil {
		fmt.Fprintf(&b, "board ok: chip=%s panel=%dx%d spi=%d/%d/%d Hz\n",
			cfg.Chip, cfg.Display.Width, cfg.Display.Height,
			cfg.Timing.WriteHz, cfg.Timing.ReadHz, cfg.Timing.TouchHz)
		t := cfg.Transform
		fmt.Fprintf(&b, "touch transform: [%d %d; %d %d] + (%d, %d)\n",
			t.XX, t.XY, t.YX, t.YY, t.DX, t.DY)
	} else {
		fmt.Fprintf(&b, "board rejected: %d blocking conflict(s)\n", len(list.Blocking()))
	}

	for _, c := range list {
		b.WriteString("  ")
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
