// services/boardcfg/validate.go
package boardcfg

import (
	"fmt"

	"boardcfg-go/errcode"
	"boardcfg-go/services/boardcfg/chips"
	"boardcfg-go/types"
	"boardcfg-go/x/mathx"
)

// busLine maps bus signals to the SPI line they carry. Signals on the same
// line may legitimately share a GPIO (two devices, one bus, distinct CS).
var busLine = map[types.Signal]string{
	types.DisplayMOSI: "mosi",
	types.TouchMOSI:   "mosi",
	types.DisplayMISO: "miso",
	types.TouchMISO:   "miso",
	types.DisplaySCLK: "sclk",
	types.TouchSCLK:   "sclk",
}

// inputSignals never drive the pin, so input-only GPIOs are acceptable.
var inputSignals = map[types.Signal]bool{
	types.DisplayMISO: true,
	types.TouchMISO:   true,
	types.TouchIRQ:    true,
}

func shareable(a, b types.Signal) bool {
	la, ok := busLine[a]
	if !ok {
		return false
	}
	return la == busLine[b]
}

// Validate checks one BoardSpec against a chip profile.
//
// Every check runs to completion; the returned ConflictList holds all
// findings, warnings included, in deterministic order. On zero blocking
// findings a ResolvedConfig is returned with the warnings attached as
// advisories; otherwise the config is nil. Pure: identical inputs produce
// identical outputs.
func Validate(p chips.Profile, spec types.BoardSpec) (*types.ResolvedConfig, types.ConflictList) {
	var list types.ConflictList

	signals := spec.Pins.Signals()

	// Per-pin checks.
	for _, sp := range signals {
		if sp.Pin == types.PinUnused {
			continue
		}
		if !p.PinValid(sp.Pin) {
			list = append(list, types.Conflict{
				Severity: types.Blocking,
				Code:     string(errcode.PinRange),
				Signals:  []types.Signal{sp.Signal},
				Pin:      sp.Pin,
				Msg:      fmt.Sprintf("GPIO %d is not a valid pin on %s", sp.Pin, p.Name()),
			})
			continue
		}
		if p.InputOnly(sp.Pin) && !inputSignals[sp.Signal] {
			list = append(list, types.Conflict{
				Severity: types.Blocking,
				Code:     string(errcode.PinInputOnly),
				Signals:  []types.Signal{sp.Signal},
				Pin:      sp.Pin,
				Msg:      fmt.Sprintf("GPIO %d is input-only on %s but %s drives it", sp.Pin, p.Name(), sp.Signal),
			})
		}
		if reason, ok := p.Reserved(sp.Pin); ok {
			list = append(list, types.Conflict{
				Severity: types.Warning,
				Code:     string(errcode.PinReserved),
				Signals:  []types.Signal{sp.Signal},
				Pin:      sp.Pin,
				Msg:      fmt.Sprintf("GPIO %d: %s", sp.Pin, reason),
			})
		}
	}

	// Double assignments: one finding per colliding pair, bus lines of the
	// same kind excepted.
	for i := 0; i < len(signals); i++ {
		for j := i + 1; j < len(signals); j++ {
			a, b := signals[i], signals[j]
			if a.Pin == types.PinUnused || a.Pin != b.Pin {
				continue
			}
			if shareable(a.Signal, b.Signal) {
				continue
			}
			list = append(list, types.Conflict{
				Severity: types.Blocking,
				Code:     string(errcode.PinConflict),
				Signals:  []types.Signal{a.Signal, b.Signal},
				Pin:      a.Pin,
				Msg:      fmt.Sprintf("%s and %s both assigned to GPIO %d", a.Signal, b.Signal, a.Pin),
			})
		}
	}

	// Bus timing.
	maxHz := p.MaxSPIHz()
	for _, f := range []struct {
		name string
		hz   int
	}{
		{"write", spec.Timing.WriteHz},
		{"read", spec.Timing.ReadHz},
		{"touch", spec.Timing.TouchHz},
	} {
		if !mathx.Between(f.hz, 1, maxHz) {
			list = append(list, types.Conflict{
				Severity: types.Blocking,
				Code:     string(errcode.FreqRange),
				Msg:      fmt.Sprintf("%s frequency %d Hz outside (0, %d] for %s", f.name, f.hz, maxHz, p.Name()),
			})
		}
	}
	if spec.Timing.ReadHz > spec.Timing.WriteHz && spec.Timing.WriteHz > 0 {
		list = append(list, types.Conflict{
			Severity: types.Warning,
			Code:     string(errcode.FreqOrder),
			Msg: fmt.Sprintf("read frequency %d Hz exceeds write frequency %d Hz",
				spec.Timing.ReadHz, spec.Timing.WriteHz),
		})
	}

	if list.HasBlocking() {
		return nil, list
	}

	cfg := &types.ResolvedConfig{
		Chip:       p.Name(),
		Display:    spec.Display,
		Pins:       spec.Pins,
		Timing:     spec.Timing,
		Transform:  ResolveTransform(spec.Orientation, spec.Display),
		Features:   spec.Features,
		Advisories: list.Warnings(),
	}
	return cfg, list
}

// ValidateSpec resolves the chip profile named in the spec and validates.
// An unknown chip is itself a blocking finding.
func ValidateSpec(spec types.BoardSpec) (*types.ResolvedConfig, types.ConflictList) {
	p, ok := chips.ByName(spec.Chip)
	if !ok {
		return nil, types.ConflictList{{
			Severity: types.Blocking,
			Code:     string(errcode.UnknownChip),
			Msg:      fmt.Sprintf("no chip profile registered for %q", spec.Chip),
		}}
	}
	return Validate(p, spec)
}
