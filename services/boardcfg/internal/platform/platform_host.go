// services/boardcfg/internal/platform/platform_host.go
//go:build !esp32 && !rp2040

package platform

import (
	"sync"

	"boardcfg-go/types"

	"tinygo.org/x/drivers"
)

// Ensure the fake satisfies the driver contract at compile time.
var _ drivers.SPI = (*HostSPI)(nil)

// HostSPI implements tinygo drivers.SPI for host-side tests. It records the
// last transfer and returns zeroed reads.
type HostSPI struct {
	mu     sync.Mutex
	LastTx struct {
		W  []byte
		Rn int
	}
}

func (h *HostSPI) Tx(w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (h *HostSPI) Transfer(b byte) (byte, error) {
	if err := h.Tx([]byte{b}, nil); err != nil {
		return 0, err
	}
	return 0, nil
}

var (
	muApplied sync.Mutex
	applied   *types.ResolvedConfig
)

// BringUp records the config; there is no hardware on host builds.
func BringUp(cfg *types.ResolvedConfig) error {
	muApplied.Lock()
	applied = cfg
	muApplied.Unlock()
	return nil
}

// LastApplied exposes the most recent BringUp argument for tests.
func LastApplied() *types.ResolvedConfig {
	muApplied.Lock()
	defer muApplied.Unlock()
	return applied
}

// Reset clears recorded state between tests.
func Reset() {
	muApplied.Lock()
	applied = nil
	muApplied.Unlock()
}
