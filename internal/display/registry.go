// Package display holds the registry of periodic messages offered to the
// scrolling sign. The sign itself is external; it polls the registry at its
// own cadence and shows whatever non-empty text wins on priority.
package display

import (
	"sort"
	"sync"
	"time"
)

// Source produces the current text of one message, possibly empty.
type Source func() string

// Message is a registered regular message.
type Message struct {
	Name       string
	Period     time.Duration
	Priority   int
	Repeatable bool
	Fn         Source
}

// Registry is safe for concurrent registration and polling.
type Registry struct {
	mu       sync.RWMutex
	messages []Message
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a regular message. Messages with a nil Fn are ignored.
func (r *Registry) Add(m Message) {
	if m.Fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	// lower priority value wins, stable across equal priorities
	sort.SliceStable(r.messages, func(i, j int) bool {
		return r.messages[i].Priority < r.messages[j].Priority
	})
}

// Current returns the text of the highest-priority message that currently
// produces a non-empty string, or "".
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.messages {
		if s := m.Fn(); s != "" {
			return s
		}
	}
	return ""
}

// Messages returns a snapshot of the registered messages, for the status
// surface.
func (r *Registry) Messages() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
