// Package analyse decides whether a function is a Rask component.
package analyse

import "github.com/christianalfoni/rask-ui/internal/ast"

// Marker function names emitted by the upstream JSX lowering. A call to any
// of them produces a renderable element.
const (
	CreateVNode          = "createVNode"
	CreateComponentVNode = "createComponentVNode"
	CreateFragment       = "createFragment"
	CreateTextVNode      = "createTextVNode"
)

// IsMarkerName reports whether name is one of the element-creating marker
// functions.
func IsMarkerName(name string) bool {
	switch name {
	case CreateVNode, CreateComponentVNode, CreateFragment, CreateTextVNode:
		return true
	}
	return false
}

// Classification is the component shape of a function.
type Classification uint8

const (
	NotAComponent Classification = iota
	Stateless
	Stateful
)

func (c Classification) String() string {
	switch c {
	case Stateless:
		return "stateless"
	case Stateful:
		return "stateful"
	default:
		return "none"
	}
}

// unspread returns the argument of a spread element, or e itself.
func unspread(e ast.Expr) ast.Expr {
	if s, ok := e.(*ast.Spread); ok {
		return s.Arg
	}
	return e
}
