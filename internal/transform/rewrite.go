package transform

import (
	"github.com/christianalfoni/rask-ui/internal/analyse"
	"github.com/christianalfoni/rask-ui/internal/ast"
)

const (
	setupProp  = "setup"
	renderProp = "renderFn"

	// DefaultComponentName names classes synthesized for anonymous default
	// exports.
	DefaultComponentName = "DefaultComponent"
)

// toCanonicalFunction converts an arrow function into the function shape the
// classifier and rewriter work on. An expression body becomes a block with a
// single return statement.
func toCanonicalFunction(arrow *ast.Arrow) *ast.Function {
	body := arrow.Body
	if body == nil {
		body = &ast.Block{Stmts: []ast.Stmt{&ast.Return{Arg: arrow.Expr}}}
	}
	return &ast.Function{
		Params:      arrow.Params,
		Body:        body,
		IsAsync:     arrow.IsAsync,
		IsGenerator: arrow.IsGenerator,
		TypeParams:  arrow.TypeParams,
		ReturnType:  arrow.ReturnType,
	}
}

// statefulClassFor builds `class Name extends <stateful> { setup = function Name() {...} }`.
func (s *state) statefulClassFor(name *ast.Ident, fn *ast.Function) *ast.ClassDecl {
	return &ast.ClassDecl{Name: name, Class: s.componentClass(name, fn, analyse.Stateful)}
}

// statelessClassFor builds `class Name extends <stateless> { renderFn = function Name() {...} }`.
func (s *state) statelessClassFor(name *ast.Ident, fn *ast.Function) *ast.ClassDecl {
	return &ast.ClassDecl{Name: name, Class: s.componentClass(name, fn, analyse.Stateless)}
}

// classDeclFor dispatches on kind to the declaration builders.
func (s *state) classDeclFor(name *ast.Ident, fn *ast.Function, kind analyse.Classification) *ast.ClassDecl {
	if kind == analyse.Stateful {
		return s.statefulClassFor(name, fn)
	}
	return s.statelessClassFor(name, fn)
}

// classExprFor builds the same class as an expression, for initializers and
// default exports.
func (s *state) classExprFor(name *ast.Ident, fn *ast.Function, kind analyse.Classification) *ast.ClassExpr {
	return &ast.ClassExpr{Name: name, Class: s.componentClass(name, fn, kind)}
}

// componentClass holds the original function, named after the component so
// stack traces keep pointing at it, in the single class property.
func (s *state) componentClass(name *ast.Ident, fn *ast.Function, kind analyse.Classification) *ast.Class {
	key := renderProp
	if kind == analyse.Stateful {
		key = setupProp
	}
	return &ast.Class{
		SuperClass: s.baseBinding(kind),
		Body: []ast.ClassMember{
			&ast.ClassProp{
				Key:   &ast.Ident{Name: key},
				Value: &ast.FnExpr{Name: name.Clone(), Fn: fn},
			},
		},
	}
}
