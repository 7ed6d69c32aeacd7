// Package interpreter turns free-text utterances into structured
// intents and slots (dates, leave type) using keyword and pattern
// heuristics. It is a deliberately narrow rule-based matcher, not a
// language model.
package interpreter

import (
	"sync"
	"time"
)

type Interpreter struct {
	mu    sync.RWMutex
	rules Rules
	now   func() time.Time
}

type Option func(*Interpreter)

// WithRules replaces the default rule vocabulary.
func WithRules(rules Rules) Option {
	return func(i *Interpreter) { i.rules = rules }
}

// WithNow overrides the clock used to resolve year-less dates.
func WithNow(now func() time.Time) Option {
	return func(i *Interpreter) {
		if now != nil {
			i.now = now
		}
	}
}

func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		rules: DefaultRules(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Rules returns the active rule set.
func (i *Interpreter) Rules() Rules {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.rules
}

// SetRules swaps the active rule set. Safe for concurrent use; the
// rules watcher calls this on file change.
func (i *Interpreter) SetRules(rules Rules) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.rules = rules
}
