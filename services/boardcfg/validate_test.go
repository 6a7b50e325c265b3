package boardcfg

import (
	"reflect"
	"testing"

	"boardcfg-go/errcode"
	"boardcfg-go/types"
)

// disjointSpec wires every signal to its own pin, avoiding reserved pins.
func disjointSpec() types.BoardSpec {
	return types.BoardSpec{
		Chip:    "esp32",
		Display: types.DisplayGeometry{Width: 320, Height: 480},
		Pins: types.PinAssignment{
			DisplayMOSI:      13,
			DisplayMISO:      19,
			DisplaySCLK:      14,
			DisplayCS:        16,
			DisplayDC:        17,
			DisplayRST:       types.PinUnused,
			DisplayBacklight: 27,
			TouchCS:          33,
			TouchIRQ:         36,
			TouchMOSI:        32,
			TouchMISO:        39,
			TouchSCLK:        25,
		},
		Timing: types.BusTiming{WriteHz: 27_000_000, ReadHz: 20_000_000, TouchHz: 2_500_000},
	}
}

func countCode(list types.ConflictList, code errcode.Code) int {
	n := 0
	for _, c := range list {
		if c.Code == string(code) {
			n++
		}
	}
	return n
}

func TestValidate_DisjointSpecResolves(t *testing.T) {
	cfg, list := ValidateSpec(disjointSpec())
	if cfg == nil {
		t.Fatalf("expected resolution, got %v", list)
	}
	if list.HasBlocking() {
		t.Fatalf("unexpected blocking conflicts: %v", list)
	}
	if len(cfg.Advisories) != 0 {
		t.Fatalf("unexpected advisories: %v", cfg.Advisories)
	}
}

func TestValidate_SeparateBuses(t *testing.T) {
	// display-CS=15, touch-CS=33, display-SCLK=14, touch-SCLK=25.
	spec := disjointSpec()
	spec.Pins.DisplayCS = 15

	cfg, list := ValidateSpec(spec)
	if cfg == nil {
		t.Fatalf("expected resolution, got %v", list)
	}
	// GPIO 15 is a strapping pin: advisory, never blocking.
	if got := countCode(list, errcode.PinReserved); got != 1 {
		t.Fatalf("expected 1 reserved-pin advisory, got %d (%v)", got, list)
	}
	if len(list.Blocking()) != 0 {
		t.Fatalf("unexpected blocking conflicts: %v", list)
	}
}

func TestValidate_IdenticalCSConflict(t *testing.T) {
	spec := disjointSpec()
	spec.Pins.DisplayCS = 15
	spec.Pins.TouchCS = 15

	cfg, list := ValidateSpec(spec)
	if cfg != nil {
		t.Fatal("expected rejection")
	}
	if got := countCode(list, errcode.PinConflict); got != 1 {
		t.Fatalf("expected exactly 1 pin conflict, got %d (%v)", got, list)
	}
	for _, c := range list {
		if c.Code != string(errcode.PinConflict) {
			continue
		}
		want := []types.Signal{types.DisplayCS, types.TouchCS}
		if !reflect.DeepEqual(c.Signals, want) || c.Pin != 15 {
			t.Fatalf("conflict should reference %v on GPIO 15, got %+v", want, c)
		}
	}
}

func TestValidate_SharedBusLinesAllowed(t *testing.T) {
	spec := disjointSpec()
	// One physical SPI bus for both devices; only the CS lines differ.
	spec.Pins.TouchMOSI = spec.Pins.DisplayMOSI
	spec.Pins.TouchMISO = spec.Pins.DisplayMISO
	spec.Pins.TouchSCLK = spec.Pins.DisplaySCLK

	cfg, list := ValidateSpec(spec)
	if cfg == nil {
		t.Fatalf("shared bus lines must not conflict: %v", list)
	}
	if got := countCode(list, errcode.PinConflict); got != 0 {
		t.Fatalf("expected 0 pin conflicts, got %d (%v)", got, list)
	}
}

func TestValidate_OnePairPerCollision(t *testing.T) {
	spec := disjointSpec()
	// Three non-shareable signals on one GPIO: 3 colliding pairs.
	spec.Pins.DisplayCS = 21
	spec.Pins.DisplayDC = 21
	spec.Pins.TouchCS = 21

	_, list := ValidateSpec(spec)
	if got := countCode(list, errcode.PinConflict); got != 3 {
		t.Fatalf("expected 3 pairwise conflicts, got %d (%v)", got, list)
	}
}

func TestValidate_PinRange(t *testing.T) {
	spec := disjointSpec()
	spec.Pins.TouchCS = 42

	cfg, list := ValidateSpec(spec)
	if cfg != nil {
		t.Fatal("expected rejection")
	}
	if got := countCode(list, errcode.PinRange); got != 1 {
		t.Fatalf("expected 1 range finding, got %d (%v)", got, list)
	}

	// GPIO 20 does not exist on the ESP32 package.
	spec = disjointSpec()
	spec.Pins.DisplayDC = 20
	cfg, list = ValidateSpec(spec)
	if cfg != nil || countCode(list, errcode.PinRange) != 1 {
		t.Fatalf("expected range finding for GPIO 20, got %v", list)
	}
}

func TestValidate_InputOnlyPins(t *testing.T) {
	// Touch IRQ and MISO are inputs; 36/39 are fine for them.
	cfg, list := ValidateSpec(disjointSpec())
	if cfg == nil || countCode(list, errcode.PinInputOnly) != 0 {
		t.Fatalf("input signals on input-only pins must pass: %v", list)
	}

	// SCLK drives the pin; 36 cannot.
	spec := disjointSpec()
	spec.Pins.DisplaySCLK = 36
	cfg, list = ValidateSpec(spec)
	if cfg != nil {
		t.Fatal("expected rejection")
	}
	if got := countCode(list, errcode.PinInputOnly); got != 1 {
		t.Fatalf("expected 1 input-only finding, got %d (%v)", got, list)
	}
}

func TestValidate_FrequencyRange(t *testing.T) {
	spec := disjointSpec()
	spec.Timing.WriteHz = 100_000_000

	cfg, list := ValidateSpec(spec)
	if cfg != nil {
		t.Fatal("expected rejection above the 80 MHz ceiling")
	}
	if got := countCode(list, errcode.FreqRange); got != 1 {
		t.Fatalf("expected 1 range finding, got %d (%v)", got, list)
	}

	spec = disjointSpec()
	spec.Timing.TouchHz = 0
	if cfg, list := ValidateSpec(spec); cfg != nil || countCode(list, errcode.FreqRange) != 1 {
		t.Fatalf("zero frequency must block: %v", list)
	}
}

func TestValidate_ReadAboveWriteIsAdvisory(t *testing.T) {
	spec := disjointSpec()
	spec.Timing.ReadHz = 30_000_000 // > 27 MHz write

	cfg, list := ValidateSpec(spec)
	if cfg == nil {
		t.Fatalf("ordering anomaly must not block: %v", list)
	}
	if got := countCode(list, errcode.FreqOrder); got != 1 {
		t.Fatalf("expected 1 ordering advisory, got %d (%v)", got, list)
	}
	if got := countCode(cfg.Advisories, errcode.FreqOrder); got != 1 {
		t.Fatalf("advisory missing from resolved config: %v", cfg.Advisories)
	}
}

func TestValidate_UnknownChip(t *testing.T) {
	spec := disjointSpec()
	spec.Chip = "esp999"

	cfg, list := ValidateSpec(spec)
	if cfg != nil || countCode(list, errcode.UnknownChip) != 1 {
		t.Fatalf("expected unknown-chip rejection, got %v", list)
	}
}

func TestValidate_ExhaustiveCollection(t *testing.T) {
	spec := disjointSpec()
	spec.Pins.DisplayCS = 42       // range
	spec.Pins.TouchCS = 25         // collides with touch-sclk
	spec.Timing.WriteHz = -1       // range
	spec.Timing.TouchHz = 90_000_000

	_, list := ValidateSpec(spec)
	if countCode(list, errcode.PinRange) != 1 ||
		countCode(list, errcode.PinConflict) != 1 ||
		countCode(list, errcode.FreqRange) != 2 {
		t.Fatalf("expected every finding reported, got %v", list)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	spec := FreenoveFNK0103S()

	cfg1, list1 := ValidateSpec(spec)
	cfg2, list2 := ValidateSpec(spec)
	if !reflect.DeepEqual(cfg1, cfg2) {
		t.Fatalf("resolved configs differ:\n%+v\n%+v", cfg1, cfg2)
	}
	if !reflect.DeepEqual(list1, list2) {
		t.Fatalf("conflict lists differ:\n%v\n%v", list1, list2)
	}
}

func TestValidate_FreenoveBoard(t *testing.T) {
	cfg, list := ValidateSpec(FreenoveFNK0103S())
	if cfg == nil {
		t.Fatalf("reference wiring must resolve: %v", list)
	}
	// DC=2, MISO=12, CS=15 are strapping pins: advisories only.
	if got := countCode(list, errcode.PinReserved); got != 3 {
		t.Fatalf("expected 3 reserved-pin advisories, got %d (%v)", got, list)
	}
	if !reflect.DeepEqual(cfg.Advisories, list.Warnings()) {
		t.Fatalf("advisories mismatch: %v vs %v", cfg.Advisories, list.Warnings())
	}
}
