package fsm

import (
	"fmt"
	"time"
)

// Machine runs a set of states with guarded transitions
// A state is entered at most once; transitions back into a visited state are never taken
type Machine[T any] struct {
	states map[StateID]*State[T]

	active      StateID
	timeInState time.Duration
	visited     map[StateID]bool
	history     []Record
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states:  make(map[StateID]*State[T]),
		visited: make(map[StateID]bool),
	}
}

// AddState registers a state with optional enter actions
func (m *Machine[T]) AddState(id StateID, name string, onEnter ...ActionFunc[T]) error {
	if id == StateNone {
		return fmt.Errorf("state %q: id 0 is reserved", name)
	}
	if _, ok := m.states[id]; ok {
		return fmt.Errorf("state %d already registered", id)
	}
	m.states[id] = &State[T]{ID: id, Name: name, OnEnter: onEnter}
	return nil
}

// OnUpdate adds a per-update action to a state
func (m *Machine[T]) OnUpdate(id StateID, fn ActionFunc[T]) error {
	s, ok := m.states[id]
	if !ok {
		return fmt.Errorf("state %d not found", id)
	}
	s.OnUpdate = append(s.OnUpdate, fn)
	return nil
}

// AddTransition adds a guarded transition between registered states
func (m *Machine[T]) AddTransition(from, to StateID, guard GuardFunc[T]) error {
	s, ok := m.states[from]
	if !ok {
		return fmt.Errorf("transition source %d not found", from)
	}
	if _, ok := m.states[to]; !ok {
		return fmt.Errorf("transition target %d not found", to)
	}
	if from == to {
		return fmt.Errorf("self transition on %s", s.Name)
	}
	s.Transitions = append(s.Transitions, Transition[T]{TargetID: to, Guard: guard})
	return nil
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	if m.active != StateNone {
		return fmt.Errorf("machine already initialized in %s", m.ActiveName())
	}
	if _, ok := m.states[initial]; !ok {
		return fmt.Errorf("initial state %d not found", initial)
	}
	m.enter(ctx, initial)
	return nil
}

// Update runs the active state's update actions, then takes at most one transition
// Returns true when a transition was taken
func (m *Machine[T]) Update(ctx T, dt time.Duration) bool {
	if m.active == StateNone {
		return false
	}
	m.timeInState += dt

	s := m.states[m.active]
	for _, fn := range s.OnUpdate {
		fn(ctx)
	}

	for _, tr := range s.Transitions {
		if m.visited[tr.TargetID] {
			continue
		}
		if tr.Guard == nil || tr.Guard(ctx) {
			m.enter(ctx, tr.TargetID)
			return true
		}
	}
	return false
}

func (m *Machine[T]) enter(ctx T, id StateID) {
	if m.active != StateNone {
		m.history = append(m.history, Record{
			ID:          m.active,
			Name:        m.states[m.active].Name,
			TimeInState: m.timeInState,
		})
	}
	m.active = id
	m.timeInState = 0
	m.visited[id] = true

	for _, fn := range m.states[id].OnEnter {
		fn(ctx)
	}
}

// Active returns the current state
func (m *Machine[T]) Active() StateID {
	return m.active
}

// ActiveName returns the current state's name, empty before Init
func (m *Machine[T]) ActiveName() string {
	if s, ok := m.states[m.active]; ok {
		return s.Name
	}
	return ""
}

// TimeInState returns the time accumulated in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Visited reports whether a state has been entered
func (m *Machine[T]) Visited(id StateID) bool {
	return m.visited[id]
}

// History returns the states left so far, oldest first
func (m *Machine[T]) History() []Record {
	return m.history
}
