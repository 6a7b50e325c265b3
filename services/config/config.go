// services/config/config.go
package config

import (
	"context"
	"encoding/json"
	"errors"

	"boardcfg-go/bus"
	"boardcfg-go/services/boardcfg"
	"boardcfg-go/types"
)

const serviceName = "config"

// ctxBoardKey is the context key carrying the board ID for this build.
type ctxKey string

const CtxBoardKey ctxKey = "board"

// EmbeddedConfigLookup allows overriding how board documents are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Service publishes the embedded board document for this device as a
// retained message on config/board, where the boardcfg service picks it up.
type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxBoardKey).(string)
	if board == "" {
		return errors.New("missing board ID in context")
	}

	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return errors.New("no embedded config for board: " + board)
	}

	var spec types.BoardSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return err
	}

	conn.Publish(&bus.Message{
		Topic:    boardcfg.TopicConfig(),
		Payload:  spec,
		Retained: true,
	})
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		_ = s.publishConfig(ctx, conn) // replace with logging if needed
	}()
}
