// services/boardcfg/chips/registry.go
package chips

import (
	"fmt"
	"sync"
)

// Profile describes the pin and bus capabilities of one microcontroller
// family. Implementations must be stateless.
type Profile interface {
	Name() string
	// PinValid reports whether n addresses a GPIO on this chip.
	PinValid(n int) bool
	// InputOnly reports whether GPIO n cannot drive an output.
	InputOnly(n int) bool
	// Reserved returns a reason string for pins with boot/flash duties.
	Reserved(n int) (reason string, ok bool)
	// MaxSPIHz is the fastest SPI clock the peripheral supports.
	MaxSPIHz() int
}

var (
	muProfiles sync.RWMutex
	profiles   = map[string]Profile{}
)

// Register installs a profile under its name.
// It panics on duplicate registration to catch mistakes at start-up.
func Register(p Profile) {
	muProfiles.Lock()
	defer muProfiles.Unlock()
	if p.Name() == "" {
		panic("chips: empty profile name")
	}
	if _, exists := profiles[p.Name()]; exists {
		panic(fmt.Sprintf("chips: profile already registered for %q", p.Name()))
	}
	profiles[p.Name()] = p
}

// ByName looks up a registered profile.
func ByName(name string) (Profile, bool) {
	muProfiles.RLock()
	defer muProfiles.RUnlock()
	p, ok := profiles[name]
	return p, ok
}

// Names returns the registered profile names (unordered).
func Names() []string {
	muProfiles.RLock()
	defer muProfiles.RUnlock()
	out := make([]string, 0, len(profiles))
	for n := range profiles {
		out = append(out, n)
	}
	return out
}
