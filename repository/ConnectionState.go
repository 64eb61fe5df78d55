package repository

import (
	"log"
	"sync"
)

// ConnState is the store client's view of its transport connection.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnected
	StateReconnecting
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	}
	return "unknown"
}

// ConnEvent is a transport-level notification fed into the state machine.
type ConnEvent int

const (
	EventConnect ConnEvent = iota
	EventError
	EventReconnecting
	EventEnd
)

func (e ConnEvent) String() string {
	switch e {
	case EventConnect:
		return "connect"
	case EventError:
		return "error"
	case EventReconnecting:
		return "reconnecting"
	case EventEnd:
		return "end"
	}
	return "unknown"
}

// connTransitions is the full transition table. An event missing from the
// current state's row is ignored.
var connTransitions = map[ConnState]map[ConnEvent]ConnState{
	StateDisconnected: {
		EventConnect:      StateConnected,
		EventReconnecting: StateReconnecting,
	},
	StateConnected: {
		EventError:        StateDisconnected,
		EventReconnecting: StateReconnecting,
		EventEnd:          StateDisconnected,
	},
	StateReconnecting: {
		EventConnect: StateConnected,
		EventError:   StateDisconnected,
		EventEnd:     StateDisconnected,
	},
}

// ConnectionState tracks the current transport state. The store client's
// event plumbing is the single writer; everyone else only reads.
type ConnectionState struct {
	mu    sync.RWMutex
	state ConnState
}

func NewConnectionState() *ConnectionState {
	return &ConnectionState{state: StateDisconnected}
}

// Apply feeds one event through the transition table and returns the
// resulting state.
func (c *ConnectionState) Apply(ev ConnEvent) ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := connTransitions[c.state][ev]
	if !ok {
		return c.state
	}
	if next != c.state {
		log.Printf("redis connection %s -> %s (on %s)", c.state, next, ev)
	}
	c.state = next
	return next
}

// Current returns the state without blocking writers for long.
func (c *ConnectionState) Current() ConnState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Connected is shorthand for Current() == StateConnected.
func (c *ConnectionState) Connected() bool {
	return c.Current() == StateConnected
}
