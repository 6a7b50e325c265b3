// services/boardcfg/internal/platform/platform.go
package platform

// BringUp hands a trusted ResolvedConfig to the build-specific driver stack.
// Host builds record it; MCU builds configure the SPI port and initialise
// the display and touch drivers. No re-validation happens here.
//
// The per-build implementations live in platform_host.go, platform_esp32.go
// and platform_rp2040.go.
