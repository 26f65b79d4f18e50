package face

import "sync"

// GateState tracks where a login session stands in the verification
// flow. State is per session and transient; it does not survive a
// process restart.
type GateState int

const (
	GateAwaitingCapture GateState = iota
	GateExtracting
	GateComparing
	GateAccepted
	GateRejected
)

func (s GateState) String() string {
	switch s {
	case GateAwaitingCapture:
		return "awaiting_capture"
	case GateExtracting:
		return "extracting"
	case GateComparing:
		return "comparing"
	case GateAccepted:
		return "accepted"
	case GateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type gateEntry struct {
	state GateState

	// votePass is the one-time capability granted on acceptance. It is
	// consumed by the first vote submission and never re-armed within
	// the session.
	votePass bool
}

// GateStore keeps the verification gate for each live session.
type GateStore struct {
	mu    sync.RWMutex
	gates map[string]*gateEntry
}

func NewGateStore() *GateStore {
	return &GateStore{gates: make(map[string]*gateEntry)}
}

// Begin enters AwaitingCapture for a fresh session, replacing any
// state left by a previous login under the same ID.
func (s *GateStore) Begin(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gates[sessionID] = &gateEntry{state: GateAwaitingCapture}
}

func (s *GateStore) State(sessionID string) (GateState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.gates[sessionID]
	if !ok {
		return GateAwaitingCapture, false
	}
	return entry.state, true
}

// Advance moves a session to an intermediate state. Unknown sessions
// are created on the spot so a server restart mid-session degrades to
// a retry rather than an error.
func (s *GateStore) Advance(sessionID string, state GateState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.gates[sessionID]
	if !ok {
		entry = &gateEntry{}
		s.gates[sessionID] = entry
	}
	entry.state = state
}

// Accept marks the session verified and arms the one-shot vote pass.
func (s *GateStore) Accept(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.gates[sessionID]
	if !ok {
		entry = &gateEntry{}
		s.gates[sessionID] = entry
	}
	entry.state = GateAccepted
	entry.votePass = true
}

// Reject returns the session to AwaitingCapture. Retries are
// unlimited; no lockout or backoff is applied.
func (s *GateStore) Reject(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.gates[sessionID]
	if !ok {
		entry = &gateEntry{}
		s.gates[sessionID] = entry
	}
	entry.state = GateAwaitingCapture
	entry.votePass = false
}

// ConsumeVotePass spends the capability granted by Accept. It reports
// false for sessions that never passed verification or that already
// used their pass.
func (s *GateStore) ConsumeVotePass(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.gates[sessionID]
	if !ok || !entry.votePass {
		return false
	}
	entry.votePass = false
	return true
}

// Drop discards a session's gate, typically on logout.
func (s *GateStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gates, sessionID)
}
