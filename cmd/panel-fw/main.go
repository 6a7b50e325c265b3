// cmd/panel-fw/main.go

// panel-fw is the firmware-style entry point: the config service publishes
// the embedded board document, the boardcfg service validates it and brings
// the driver stack up, the bridge mirrors the outcome to a host companion,
// and the heartbeat service keeps the console alive.
package main

import (
	"context"
	"time"

	"boardcfg-go/bus"
	"boardcfg-go/services/boardcfg"
	"boardcfg-go/services/bridge"
	"boardcfg-go/services/config"
	"boardcfg-go/services/heartbeat"
	"boardcfg-go/types"
)

const boardID = "fnk0103s"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	b := bus.NewBus(16)
	ctx := context.WithValue(context.Background(), config.CtxBoardKey, boardID)

	go boardcfg.Run(ctx, b.NewConnection("boardcfg"))
	// Idle until a config/bridge document arrives (e.g. pushed by a companion
	// over another surface or added to the embedded configs).
	go bridge.Start(ctx, b.NewConnection("bridge"))

	conn := b.NewConnection("main")
	resolved := conn.Subscribe(boardcfg.TopicResolved())
	conflicts := conn.Subscribe(boardcfg.TopicConflicts())

	config.NewService().Start(ctx, b.NewConnection("config"))

	cfg, list := awaitOutcome(resolved, conflicts, 5*time.Second)
	switch {
	case cfg != nil:
		print(types.Report(cfg, cfg.Advisories))
	case list != nil:
		print(types.Report(nil, list))
		println("halted: configuration rejected")
		select {}
	default:
		println("halted: no answer from boardcfg")
		select {}
	}

	_ = (&heartbeat.Service{}).Start(ctx, b.NewConnection("heartbeat"))
	select {}
}

// awaitOutcome waits for the boardcfg service to accept or reject the
// published document. Retained clears arrive as nil payloads on both topics
// and are skipped. Both returns are nil on timeout.
func awaitOutcome(resolved, conflicts *bus.Subscription, timeout time.Duration) (*types.ResolvedConfig, types.ConflictList) {
	deadline := time.After(timeout)
	for {
		select {
		case msg := <-resolved.Channel():
			if cfg, ok := msg.Payload.(*types.ResolvedConfig); ok && cfg != nil {
				return cfg, nil
			}
		case msg := <-conflicts.Channel():
			if list, ok := msg.Payload.(types.ConflictList); ok && len(list) > 0 {
				return nil, list
			}
		case <-deadline:
			return nil, nil
		}
	}
}
