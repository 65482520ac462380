// Package fsm is a flat finite state machine whose transitions only move forward
package fsm

import "time"

// StateID is a unique identifier for a state
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// State is a node of the machine
type State[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]

	// Transitions are evaluated in insertion order
	Transitions []Transition[T]
}

// Transition links two states
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = always
}

// Record is one entry of the machine's history
type Record struct {
	ID          StateID
	Name        string
	TimeInState time.Duration
}
