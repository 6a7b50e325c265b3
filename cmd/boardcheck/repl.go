// cmd/boardcheck/repl.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"boardcfg-go/profile"
	"boardcfg-go/services/boardcfg"
	"boardcfg-go/services/boardcfg/chips"
	"boardcfg-go/types"
)

const replHelp = `commands:
  load <path>              load a profile document
  chip <name>              select chip profile
  set <signal> <gpio>      assign a pin (-1 = unused)
  freq <write|read|touch> <hz>
  orient <swap|flipx|flipy> <on|off>
  show                     dump the working spec
  validate                 run validation and print the report
  chips                    list registered chip profiles
  quit`

// runREPL edits a working BoardSpec interactively and validates on demand.
func runREPL(in io.Reader, out io.Writer) error {
	spec := types.BoardSpec{
		Chip: "esp32",
		Timing: types.BusTiming{
			WriteHz: profile.DefaultWriteHz,
			ReadHz:  profile.DefaultReadHz,
			TouchHz: profile.DefaultTouchHz,
		},
	}
	// All lines start unwired.
	spec.Pins = types.PinAssignment{
		DisplayMOSI: types.PinUnused, DisplayMISO: types.PinUnused,
		DisplaySCLK: types.PinUnused, DisplayCS: types.PinUnused,
		DisplayDC: types.PinUnused, DisplayRST: types.PinUnused,
		DisplayBacklight: types.PinUnused,
		TouchCS:          types.PinUnused, TouchIRQ: types.PinUnused,
		TouchMOSI: types.PinUnused, TouchMISO: types.PinUnused,
		TouchSCLK: types.PinUnused,
	}

	fmt.Fprintln(out, "boardcheck repl; 'help' for commands")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		args, err := shlex.Split(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, replHelp)
		case "load":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: load <path>")
				continue
			}
			s, err := profile.Load(args[1])
			if err != nil {
				fmt.Fprintln(out, "load:", err)
				continue
			}
			spec = s
			fmt.Fprintln(out, "loaded", args[1])
		case "chip":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: chip <name>")
				continue
			}
			spec.Chip = args[1]
		case "chips":
			fmt.Fprintln(out, strings.Join(chips.Names(), " "))
		case "set":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: set <signal> <gpio>")
				continue
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Fprintln(out, "bad gpio:", args[2])
				continue
			}
			if !setSignal(&spec.Pins, types.Signal(args[1]), n) {
				fmt.Fprintln(out, "unknown signal:", args[1])
			}
		case "freq":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: freq <write|read|touch> <hz>")
				continue
			}
			hz, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Fprintln(out, "bad hz:", args[2])
				continue
			}
			switch args[1] {
			case "write":
				spec.Timing.WriteHz = hz
			case "read":
				spec.Timing.ReadHz = hz
			case "touch":
				spec.Timing.TouchHz = hz
			default:
				fmt.Fprintln(out, "unknown bus:", args[1])
			}
		case "orient":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: orient <swap|flipx|flipy> <on|off>")
				continue
			}
			on := args[2] == "on"
			switch args[1] {
			case "swap":
				spec.Orientation.SwapXY = on
			case "flipx":
				spec.Orientation.FlipX = on
			case "flipy":
				spec.Orientation.FlipY = on
			default:
				fmt.Fprintln(out, "unknown axis:", args[1])
			}
		case "show":
			b, _ := json.MarshalIndent(spec, "", "  ")
			fmt.Fprintln(out, string(b))
		case "validate":
			cfg, list := boardcfg.ValidateSpec(spec)
			fmt.Fprint(out, types.Report(cfg, list))
		default:
			fmt.Fprintln(out, "unknown command:", args[0])
		}
	}
}

func setSignal(p *types.PinAssignment, sig types.Signal, n int) bool {
	switch sig {
	case types.DisplayMOSI:
		p.DisplayMOSI = n
	case types.DisplayMISO:
		p.DisplayMISO = n
	case types.DisplaySCLK:
		p.DisplaySCLK = n
	case types.DisplayCS:
		p.DisplayCS = n
	case types.DisplayDC:
		p.DisplayDC = n
	case types.DisplayRST:
		p.DisplayRST = n
	case types.DisplayBacklight:
		p.DisplayBacklight = n
	case types.TouchCS:
		p.TouchCS = n
	case types.TouchIRQ:
		p.TouchIRQ = n
	case types.TouchMOSI:
		p.TouchMOSI = n
	case types.TouchMISO:
		p.TouchMISO = n
	case types.TouchSCLK:
		p.TouchSCLK = n
	default:
		return false
	}
	return true
}
