/*
File    : prim/environment/environment.go
*/
// Package environment implements Prim's single flat variable mapping. There
// is no scope chain and no Parent pointer - the language has no functions
// and no nested scoping (see spec Non-goals), so this is the teacher's
// scope.Scope trimmed to exactly the operations the evaluator needs: assign
// with type pinning, and get.
package environment

import (
	"github.com/primlang/prim/primerr"
	"github.com/primlang/prim/value"
)

// Environment is the one mapping from identifier name to current value
// that lives for the whole run. Keys are only ever added, never removed.
type Environment struct {
	vars map[string]value.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Assign binds name to v. If name already holds a value, v's tag must
// match the existing value's tag - the type-pinning invariant - or the
// assignment is a fatal error at the given line.
func (e *Environment) Assign(line int, name string, v value.Value) {
	if existing, ok := e.vars[name]; ok {
		if !value.SameTag(existing, v) {
			primerr.Fatal(line, "Variable type does not match.")
		}
	}
	e.vars[name] = v
}

// Get returns the value bound to name, or fails fatally at the given line
// if name was never assigned.
func (e *Environment) Get(line int, name string) value.Value {
	v, ok := e.vars[name]
	if !ok {
		primerr.Fatal(line, "Variable not declared.")
	}
	return v
}
