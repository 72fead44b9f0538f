package testutil

import (
	"context"
	"sync"
)

// DigestResponse is one scripted reply of a ScriptedDigest.
type DigestResponse struct {
	Hex string
	Err error
}

// ScriptedDigest is a digest provider whose replies are fixed per message.
// Messages without a scripted reply get Default. Every call is recorded.
type ScriptedDigest struct {
	mu        sync.Mutex
	Responses map[string]DigestResponse
	Default   DigestResponse
	// Block, when set, makes every call wait for ctx to be done and then
	// return Default regardless of the context error. It simulates a
	// service that answers after the caller has given up.
	Block bool
	calls []string
}

// DigestHex implements digest.Provider.
func (s *ScriptedDigest) DigestHex(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, message)
	resp, ok := s.Responses[message]
	if !ok {
		resp = s.Default
	}
	block := s.Block
	s.mu.Unlock()

	if block {
		<-ctx.Done()
	}
	return resp.Hex, resp.Err
}

// Calls returns the messages the provider was asked to digest, in order.
func (s *ScriptedDigest) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
