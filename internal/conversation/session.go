// Package conversation drives the multi-turn dialogue: it owns the
// single employee's ledger, the pending-flow state and the transcript,
// and turns each raw utterance into a response string.
package conversation

import (
	"errors"
	"strings"
	"sync"
	"time"

	"leavebot/internal/domain/ledger"
	"leavebot/internal/interpreter"
)

// Session is the per-conversation orchestrator. A pending flow always
// takes precedence over fresh intent detection; small talk is answered
// only when neither a flow nor an intent matched. All state lives in
// memory for the lifetime of the process.
type Session struct {
	mu         sync.Mutex
	ledger     *ledger.Ledger
	interp     *interpreter.Interpreter
	state      State
	transcript Transcript
	now        func() time.Time
}

type Option func(*Session)

// WithNow overrides the clock used for "today" in upcoming queries.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSession(l *ledger.Ledger, interp *interpreter.Interpreter, opts ...Option) *Session {
	s := &Session{
		ledger: l,
		interp: interp,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes one handled turn.
type Result struct {
	Reply string
	State StateKind
	// Unrecognized is set when the turn fell through to the help text.
	Unrecognized bool
}

// Submit handles one user turn and returns the assistant's reply. Both
// lines are appended to the transcript.
func (s *Session) Submit(utterance string) string {
	return s.HandleTurn(utterance).Reply
}

// HandleTurn is Submit with the turn outcome attached, for transport
// callers that report state or metrics.
func (s *Session) HandleTurn(utterance string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := s.handle(strings.TrimSpace(utterance))
	s.transcript.Append(SpeakerUser, utterance)
	s.transcript.Append(SpeakerAssistant, reply)
	return Result{Reply: reply, State: s.state.Kind, Unrecognized: reply == replyHelp}
}

func (s *Session) handle(text string) string {
	// Pending flows consume the utterance before any intent detection.
	switch s.state.Kind {
	case StateAwaitingCancelDate:
		from, _, ok := s.interp.ExtractDates(text)
		if !ok {
			return promptCancelRetry
		}
		s.state = State{}
		return s.cancel(from)

	case StateAwaitingApplyDates:
		from, to, ok := s.interp.ExtractDates(text)
		if !ok {
			return promptDatesRetry
		}
		s.state = State{Kind: StateCollectingReason, From: from, To: to}
		return promptReason

	case StateCollectingReason:
		// The whole utterance is the reason, verbatim.
		s.state = State{Kind: StateCollectingType, From: s.state.From, To: s.state.To, Reason: text}
		return promptType

	case StateCollectingType:
		typ, ok := s.interp.ExtractLeaveType(text)
		if !ok {
			return promptTypeRetry
		}
		pending := s.state
		s.state = State{}
		return s.apply(pending.From, pending.To, pending.Reason, typ)
	}

	switch s.interp.DetectIntent(text) {
	case interpreter.IntentApplyLeave:
		from, to, ok := s.interp.ExtractDates(text)
		if !ok {
			s.state = State{Kind: StateAwaitingApplyDates}
			return promptApplyDates
		}
		if typ, hasType := s.interp.ExtractLeaveType(text); hasType {
			return s.apply(from, to, reasonUnspecified, typ)
		}
		s.state = State{Kind: StateCollectingReason, From: from, To: to}
		return promptReason

	case interpreter.IntentCheckBalance:
		return msgBalance(s.ledger.Balances())

	case interpreter.IntentViewUpcoming:
		return msgUpcoming(s.ledger.Upcoming(s.now()))

	case interpreter.IntentCancelLeave:
		from, _, ok := s.interp.ExtractDates(text)
		if !ok {
			s.state = State{Kind: StateAwaitingCancelDate}
			return promptCancelDate
		}
		return s.cancel(from)
	}

	switch s.interp.DetectSmallTalk(text) {
	case interpreter.SmallTalkThanks:
		return replyThanks
	case interpreter.SmallTalkGreeting:
		return replyGreeting
	case interpreter.SmallTalkFarewell:
		return replyFarewell
	}

	return replyHelp
}

func (s *Session) apply(from, to time.Time, reason string, typ ledger.LeaveType) string {
	rec, err := s.ledger.Apply(from, to, reason, typ)
	switch {
	case errors.Is(err, ledger.ErrDuplicate):
		return msgDuplicate(typ, ledger.DateOnly(from))
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return msgInsufficient(typ)
	case errors.Is(err, ledger.ErrInvalidRange):
		return msgInvalidRange(ledger.DateOnly(from), ledger.DateOnly(to))
	case errors.Is(err, ledger.ErrInvalidType):
		return promptTypeRetry
	case err != nil:
		return replyHelp
	}
	return msgApplied(rec)
}

func (s *Session) cancel(from time.Time) string {
	rec, err := s.ledger.Cancel(from)
	if errors.Is(err, ledger.ErrNotFound) {
		return msgNotFound(ledger.DateOnly(from))
	}
	if err != nil {
		return replyHelp
	}
	return msgCancelled(rec.From)
}

// State returns the current pending-flow state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the transcript so far.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Entries()
}

// Balances returns the current per-type balances.
func (s *Session) Balances() ledger.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Balances()
}

// Upcoming returns copies of the approved records from today onward.
func (s *Session) Upcoming() []ledger.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecords(s.ledger.Upcoming(s.now()))
}

// Snapshot returns the employee identity, balances and full history
// under the session lock, copied so callers can render without racing
// Submit.
func (s *Session) Snapshot() (ledger.Employee, []ledger.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp := *s.ledger.Employee()
	emp.Balance = s.ledger.Balances()
	emp.Records = nil
	return emp, copyRecords(s.ledger.History())
}

func copyRecords(records []*ledger.Record) []ledger.Record {
	out := make([]ledger.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}
	return out
}

// Reset discards the conversation and swaps in a freshly seeded
// ledger.
func (s *Session) Reset(l *ledger.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = l
	s.state = State{}
	s.transcript = Transcript{}
}
