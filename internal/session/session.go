// Package session keeps the input and output buffers of an interactive
// minification session and decides which of several overlapping requests wins.
//
// Every Load or Submit cancels the request that was in flight before it. A
// request that has been superseded returns ErrSuperseded and never touches the
// buffers, so the latest trigger always wins.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"minipress/internal/minifier"
)

// ErrSuperseded is returned by a request that was replaced by a newer one.
var ErrSuperseded = errors.New("superseded by a newer request")

// Minifier is the part of minifier.Engine a Session needs.
type Minifier interface {
	Minify(ctx context.Context, source string, opts minifier.Options) (*minifier.Result, error)
}

// Session is safe for concurrent use.
type Session struct {
	engine Minifier
	opts   minifier.Options
	logger *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	input  string
	result *minifier.Result
}

// New returns a Session that minifies with engine and opts.
func New(engine Minifier, opts minifier.Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{engine: engine, opts: opts, logger: logger}
}

// Input returns the last accepted input text.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Result returns the last successful result, or nil.
func (s *Session) Result() *minifier.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// begin cancels the in-flight request and registers a new one.
func (s *Session) begin(parent context.Context) (context.Context, uint64, minifier.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.seq++
	s.cancel = cancel
	return ctx, s.seq, s.opts
}

// finish reports whether id is still the latest request and releases its context.
func (s *Session) finish(id uint64) bool {
	if s.seq != id {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// Submit minifies text. The input buffer is updated even when minification
// fails; the result buffer only on success.
func (s *Session) Submit(ctx context.Context, text string) (*minifier.Result, error) {
	ctx, id, opts := s.begin(ctx)
	return s.run(ctx, id, opts, text)
}

// Load reads path ("-" for stdin) and minifies its content.
func (s *Session) Load(ctx context.Context, path string) (*minifier.Result, error) {
	ctx, id, opts := s.begin(ctx)

	text, err := ReadFile(ctx, path)
	if err != nil {
		if s.superseded(id) {
			return nil, ErrSuperseded
		}
		s.mu.Lock()
		s.finish(id)
		s.mu.Unlock()
		return nil, err
	}
	return s.run(ctx, id, opts, text)
}

func (s *Session) run(ctx context.Context, id uint64, opts minifier.Options, text string) (*minifier.Result, error) {
	res, err := s.engine.Minify(ctx, text, opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.finish(id) {
		s.logger.Debug("session.superseded", "request", id, "latest", s.seq)
		return nil, ErrSuperseded
	}
	s.input = text
	if err != nil {
		return nil, err
	}
	s.result = res
	return res, nil
}

func (s *Session) superseded(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq != id
}

// Close cancels any request still in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
