package synth

import (
	"context"

	"github.com/boolsynth/boolsynth/internal/expr"
	"github.com/boolsynth/boolsynth/internal/translog"
	"github.com/boolsynth/boolsynth/internal/wire"
)

// Session drives one-shot tree transfers to a synthesis engine.
//
// A session is identified by a token shared by all its transfers. Sessions
// hold no mutable tree state: every Synthesize call is independent, so a
// single Session is safe for concurrent use when its Engine and log are.
type Session struct {
	token  string
	engine Engine
	log    *translog.Store
	limits wire.Limits
}

// Option configures a Session.
type Option func(*Session)

// WithLog records every request and result transfer in the given log.
func WithLog(log *translog.Store) Option {
	return func(s *Session) { s.log = log }
}

// WithTokenSource overrides the default UUIDv7 token source.
func WithTokenSource(src TokenSource) Option {
	return func(s *Session) { s.token = src() }
}

// WithLimits overrides the decode limits applied to engine replies.
func WithLimits(lim wire.Limits) Option {
	return func(s *Session) { s.limits = lim }
}

// NewSession creates a session bound to an engine.
func NewSession(engine Engine, opts ...Option) *Session {
	s := &Session{
		token:  NewSessionToken(),
		engine: engine,
		limits: wire.DefaultLimits,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the session token.
func (s *Session) Token() string {
	return s.token
}

// Synthesize hands a tree to the engine and returns the engine's
// replacement tree.
//
// The transfer is atomic from the caller's view: encode, hand over, decode.
// Any failure yields a TransferError and no partial result; the input tree
// is never mutated or retained.
func (s *Session) Synthesize(ctx context.Context, root expr.Node) (expr.Node, error) {
	request, err := wire.Encode(root)
	if err != nil {
		return expr.Node{}, transferErr(ErrCodeEncodeFailed, s.token, "request tree rejected", err)
	}

	if err := s.record(ctx, translog.DirectionRequest, root, request); err != nil {
		return expr.Node{}, err
	}

	reply, err := s.engine.Synthesize(ctx, request)
	if err != nil {
		return expr.Node{}, transferErr(ErrCodeEngineFailed, s.token, "engine call failed", err)
	}

	result, err := wire.DecodeWithLimits(reply, s.limits)
	if err != nil {
		return expr.Node{}, transferErr(ErrCodeDecodeFailed, s.token, "engine reply malformed", err)
	}

	if err := s.record(ctx, translog.DirectionResult, result, reply); err != nil {
		return expr.Node{}, err
	}

	return result, nil
}

// record appends one transfer to the log, when a log is configured.
// A logging failure fails the transfer: an unrecorded transfer would make
// the log lie about the session.
func (s *Session) record(ctx context.Context, direction string, n expr.Node, payload []byte) error {
	if s.log == nil {
		return nil
	}

	canonical, err := wire.MarshalCanonical(n)
	if err != nil {
		return transferErr(ErrCodeLogFailed, s.token, "canonical form failed", err)
	}

	_, err = s.log.Append(ctx, translog.Entry{
		SessionToken:  s.token,
		Direction:     direction,
		ExprID:        wire.MustExprID(n),
		Canonical:     string(canonical),
		Wire:          payload,
		FormatVersion: wire.FormatVersion,
	})
	if err != nil {
		return transferErr(ErrCodeLogFailed, s.token, "append to transfer log failed", err)
	}
	return nil
}
