// services/boardcfg/service.go
package boardcfg

import (
	"context"
	"encoding/json"

	"boardcfg-go/bus"
	"boardcfg-go/errcode"
	"boardcfg-go/services/boardcfg/internal/platform"
	"boardcfg-go/types"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

func TopicConfig() bus.Topic     { return bus.T("config", "board") }
func TopicState() bus.Topic      { return bus.T("board", "state") }
func TopicResolved() bus.Topic   { return bus.T("board", "resolved") }
func TopicConflicts() bus.Topic  { return bus.T("board", "conflicts") }
func TopicAdvisories() bus.Topic { return bus.T("board", "advisories") }
func TopicValidate() bus.Topic   { return bus.T("board", "control", "validate") }

// StateDoc is retained on board/state.
type StateDoc struct {
	State  string `json:"state"` // "idle" | "ready" | "rejected"
	Detail string `json:"detail,omitempty"`
}

// ValidateReply answers a board/control/validate request.
type ValidateReply struct {
	OK        bool                  `json:"ok"`
	Code      errcode.Code          `json:"code"`
	Config    *types.ResolvedConfig `json:"config,omitempty"`
	Conflicts types.ConflictList    `json:"conflicts,omitempty"`
}

// -----------------------------------------------------------------------------
// Service
// -----------------------------------------------------------------------------

// Run consumes board specs from config/board, validates them, keeps the
// retained board/resolved and board/conflicts documents current and hands
// each accepted config to the platform driver stack. Blocks until ctx is
// cancelled.
func Run(ctx context.Context, conn *bus.Connection) {
	s := &service{conn: conn, apply: platform.BringUp}
	s.loop(ctx)
}

type service struct {
	conn *bus.Connection
	// apply hands an accepted config to the driver collaborator.
	apply func(*types.ResolvedConfig) error
}

func (s *service) loop(ctx context.Context) {
	cfgSub := s.conn.Subscribe(TopicConfig())
	ctrlSub := s.conn.Subscribe(TopicValidate())
	defer s.conn.Unsubscribe(cfgSub)
	defer s.conn.Unsubscribe(ctrlSub)

	s.publishState("idle", "awaiting_config")

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-cfgSub.Channel():
			s.handleConfig(msg)
		case msg := <-ctrlSub.Channel():
			s.handleValidate(msg)
		}
	}
}

func (s *service) handleConfig(msg *bus.Message) {
	spec, err := decodeSpec(msg.Payload)
	if err != nil {
		// Clear both retained documents: a stale conflict list from an
		// earlier rejection would misdescribe the current document.
		s.retain(TopicResolved(), nil)
		s.retain(TopicConflicts(), nil)
		s.publishState("rejected", string(errcode.Of(err)))
		return
	}

	cfg, list := ValidateSpec(spec)
	if cfg == nil {
		s.retain(TopicResolved(), nil)
		s.retain(TopicConflicts(), list)
		s.publishState("rejected", firstBlockingCode(list))
		return
	}

	s.retain(TopicConflicts(), nil)
	s.retain(TopicResolved(), cfg)
	if len(cfg.Advisories) > 0 {
		s.conn.Publish(s.conn.NewMessage(TopicAdvisories(), cfg.Advisories, false))
	}
	if s.apply != nil {
		if err := s.apply(cfg); err != nil {
			s.publishState("error", err.Error())
			return
		}
	}
	s.publishState("ready", "")
}

func (s *service) handleValidate(msg *bus.Message) {
	if len(msg.ReplyTo) == 0 {
		return
	}
	reply := ValidateReply{Code: errcode.OK}

	spec, err := decodeSpec(msg.Payload)
	if err != nil {
		reply.Code = errcode.Of(err)
	} else {
		cfg, list := ValidateSpec(spec)
		reply.OK = cfg != nil
		reply.Config = cfg
		reply.Conflicts = list
		if cfg == nil {
			reply.Code = errcode.Code(firstBlockingCode(list))
		}
	}
	s.conn.Publish(s.conn.NewMessage(msg.ReplyTo, reply, false))
}

func (s *service) publishState(state, detail string) {
	s.retain(TopicState(), StateDoc{State: state, Detail: detail})
}

func (s *service) retain(topic bus.Topic, payload any) {
	s.conn.Publish(s.conn.NewMessage(topic, payload, true))
}

func firstBlockingCode(list types.ConflictList) string {
	for _, c := range list {
		if c.Severity == types.Blocking {
			return c.Code
		}
	}
	return string(errcode.Error)
}

// decodeSpec accepts an already-parsed BoardSpec or raw JSON bytes.
func decodeSpec(payload any) (types.BoardSpec, error) {
	switch v := payload.(type) {
	case types.BoardSpec:
		return v, nil
	case *types.BoardSpec:
		if v == nil {
			return types.BoardSpec{}, errcode.InvalidPayload
		}
		return *v, nil
	case []byte:
		var spec types.BoardSpec
		if err := json.Unmarshal(v, &spec); err != nil {
			return types.BoardSpec{}, &errcode.E{C: errcode.InvalidPayload, Op: "decode", Err: err}
		}
		return spec, nil
	case string:
		var spec types.BoardSpec
		if err := json.Unmarshal([]byte(v), &spec); err != nil {
			return types.BoardSpec{}, &errcode.E{C: errcode.InvalidPayload, Op: "decode", Err: err}
		}
		return spec, nil
	default:
		return types.BoardSpec{}, errcode.InvalidPayload
	}
}
