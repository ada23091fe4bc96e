package typechecker

import "flavor/frontend-go/pkg/types"

// Environment is a name→type table. It carries an optional parent link so
// nested lexical scopes can be layered on later; the checker currently
// instantiates exactly one (no block scoping).
type Environment struct {
	parent  *Environment
	symbols map[string]types.Type
}

// NewEnvironment constructs an empty environment chained to parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		parent:  parent,
		symbols: make(map[string]types.Type),
	}
}

// Define binds name to typ in this environment, overwriting any prior
// binding for the same name.
func (e *Environment) Define(name string, typ types.Type) {
	e.symbols[name] = typ
}

// Lookup resolves name through the environment chain, innermost first.
func (e *Environment) Lookup(name string) (types.Type, bool) {
	for env := e; env != nil; env = env.parent {
		if typ, ok := env.symbols[name]; ok {
			return typ, true
		}
	}
	return nil, false
}

// Has reports whether name is bound in this environment, ignoring parents.
func (e *Environment) Has(name string) bool {
	_, ok := e.symbols[name]
	return ok
}
