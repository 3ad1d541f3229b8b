// Package signal provides a minimal synchronous change notification primitive:
// handler registration with opaque tokens, per token suppression and ordered delivery.
package signal

import (
	"errors"
	"sync"
)

// Handler consumes a value emitted by a Signal; a non nil error is returned to the emitter.
type Handler func(value interface{}) error

// Token identifies a single subscription; it is required to unsubscribe, suppress or resume it.
type Token struct {
	id int
}

type subscription struct {
	token      *Token
	handler    Handler
	suppressed bool
}

// Signal notifies subscribed handlers about value changes. Delivery is synchronous
// and follows subscription order. All methods are safe for concurrent use; handlers
// run outside the internal lock so a handler may subscribe, unsubscribe or emit
// re-entrantly.
type Signal struct {
	mux    sync.Mutex
	subs   []*subscription
	nextID int
}

// New creates a signal
func New() *Signal {
	return &Signal{}
}

// Subscribe registers a handler and returns its subscription token
func (s *Signal) Subscribe(handler Handler) *Token {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.nextID++
	token := &Token{id: s.nextID}
	s.subs = append(s.subs, &subscription{token: token, handler: handler})
	return token
}

// Unsubscribe removes the subscription identified by token; it returns false
// when the token is nil, unknown or already removed.
func (s *Signal) Unsubscribe(token *Token) bool {
	if token == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	for i, sub := range s.subs {
		if sub.token == token {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Suppress blocks delivery to the subscription identified by token without
// removing it; other subscriptions are unaffected.
func (s *Signal) Suppress(token *Token) {
	s.setSuppressed(token, true)
}

// Resume re-enables delivery to a previously suppressed subscription.
func (s *Signal) Resume(token *Token) {
	s.setSuppressed(token, false)
}

func (s *Signal) setSuppressed(token *Token, flag bool) {
	if token == nil {
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, sub := range s.subs {
		if sub.token == token {
			sub.suppressed = flag
			return
		}
	}
}

// Emit delivers value to every non suppressed subscription in subscription
// order and returns handler errors joined.
func (s *Signal) Emit(value interface{}) error {
	s.mux.Lock()
	active := make([]Handler, 0, len(s.subs))
	for _, sub := range s.subs {
		if !sub.suppressed {
			active = append(active, sub.handler)
		}
	}
	s.mux.Unlock()
	var errs []error
	for _, handler := range active {
		if err := handler(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of subscriptions, suppressed included
func (s *Signal) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.subs)
}

// Notifier is the conventional change notification contract an object may
// expose to be wired without explicit signal options.
type Notifier interface {
	Changed() *Signal
}
