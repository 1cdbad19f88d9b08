package testutil

import "testing"

// Steps labels subtests in scenario order. It keeps flow-style tests readable
// without pulling in a BDD framework: each step wraps t.Run with a prefixed
// name, and steps share state through the enclosing closure.
type Steps struct {
	t *testing.T
}

// Scenario starts a labeled step sequence for t.
func Scenario(t *testing.T) Steps {
	t.Helper()
	return Steps{t: t}
}

func (s Steps) Given(desc string, fn func(t *testing.T)) {
	s.t.Helper()
	s.t.Run("Given "+desc, fn)
}

func (s Steps) When(desc string, fn func(t *testing.T)) {
	s.t.Helper()
	s.t.Run("When "+desc, fn)
}

func (s Steps) Then(desc string, fn func(t *testing.T)) {
	s.t.Helper()
	s.t.Run("Then "+desc, fn)
}

func (s Steps) And(desc string, fn func(t *testing.T)) {
	s.t.Helper()
	s.t.Run("And "+desc, fn)
}
