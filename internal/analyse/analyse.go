package analyse

import "github.com/christianalfoni/rask-ui/internal/ast"

// ContainsMarkerCall reports whether a marker call is reachable from expr
// through the positions that can produce the rendered value: call
// arguments, parentheses, conditional branches, binary operands, array
// elements, arrow bodies, member objects and unary operands.
//
// For block-bodied arrows only the arguments of top-level return statements
// are searched. Nested control flow is handled by BlockHasMarkerReturn.
// Optional chains never match.
func ContainsMarkerCall(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Call:
		if e.Optional {
			return false
		}
		if callee, ok := e.Callee.(*ast.Ident); ok && IsMarkerName(callee.Name) {
			return true
		}
		// Arguments cover items.map(item => createVNode(...)) and friends.
		for _, arg := range e.Args {
			if ContainsMarkerCall(unspread(arg)) {
				return true
			}
		}
		return false

	case *ast.Paren:
		return ContainsMarkerCall(e.X)

	case *ast.Cond:
		return ContainsMarkerCall(e.Cons) || ContainsMarkerCall(e.Alt)

	case *ast.Binary:
		return ContainsMarkerCall(e.Left) || ContainsMarkerCall(e.Right)

	case *ast.Array:
		for _, elem := range e.Elems {
			if elem != nil && ContainsMarkerCall(unspread(elem)) {
				return true
			}
		}
		return false

	case *ast.Arrow:
		if e.Body == nil {
			return ContainsMarkerCall(e.Expr)
		}
		for _, stmt := range e.Body.Stmts {
			if ret, ok := stmt.(*ast.Return); ok && ret.Arg != nil && ContainsMarkerCall(ret.Arg) {
				return true
			}
		}
		return false

	case *ast.Member:
		return !e.Optional && ContainsMarkerCall(e.Object)

	case *ast.Unary:
		return ContainsMarkerCall(e.Arg)
	}
	return false
}

// IsStateless reports whether fn directly returns a marker call from one of
// its top-level return statements. Returns nested inside control flow are
// not considered.
func IsStateless(fn *ast.Function) bool {
	if fn == nil || fn.Body == nil {
		return false
	}
	for _, stmt := range fn.Body.Stmts {
		ret, ok := stmt.(*ast.Return)
		if !ok || ret.Arg == nil {
			continue
		}
		// A returned arrow belongs to the stateful shape. A parenthesized
		// arrow is not one and is searched like any other expression.
		if _, isArrow := ret.Arg.(*ast.Arrow); isArrow {
			continue
		}
		if ContainsMarkerCall(ret.Arg) {
			return true
		}
	}
	return false
}

// IsStateful reports whether fn returns, from a top-level return statement,
// a bare arrow function that produces a marker call. Block-bodied arrows may
// return from anywhere in their control flow.
func IsStateful(fn *ast.Function) bool {
	if fn == nil || fn.Body == nil {
		return false
	}
	for _, stmt := range fn.Body.Stmts {
		ret, ok := stmt.(*ast.Return)
		if !ok || ret.Arg == nil {
			continue
		}
		arrow, isArrow := ret.Arg.(*ast.Arrow)
		if !isArrow {
			continue
		}
		if arrow.Body == nil {
			if ContainsMarkerCall(arrow.Expr) {
				return true
			}
		} else if BlockHasMarkerReturn(arrow.Body) {
			return true
		}
	}
	return false
}

// Classify returns the component shape of fn. The stateful shape is tested
// first: a stateful component also has a top-level return, and its shape
// must win over anything the stateless test could find elsewhere in the
// body.
func Classify(fn *ast.Function) Classification {
	if IsStateful(fn) {
		return Stateful
	}
	if IsStateless(fn) {
		return Stateless
	}
	return NotAComponent
}

// BlockHasMarkerReturn reports whether any return statement in block, at any
// depth of control flow, returns a marker call.
func BlockHasMarkerReturn(block *ast.Block) bool {
	if block == nil {
		return false
	}
	return stmtsHaveMarkerReturn(block.Stmts)
}

func stmtsHaveMarkerReturn(stmts []ast.Stmt) bool {
	for _, stmt := range stmts {
		if stmtHasMarkerReturn(stmt) {
			return true
		}
	}
	return false
}

func stmtHasMarkerReturn(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.Return:
		return s.Arg != nil && ContainsMarkerCall(s.Arg)

	case *ast.If:
		if stmtHasMarkerReturn(s.Cons) {
			return true
		}
		return s.Alt != nil && stmtHasMarkerReturn(s.Alt)

	case *ast.Block:
		return BlockHasMarkerReturn(s)

	case *ast.Switch:
		for _, c := range s.Cases {
			if stmtsHaveMarkerReturn(c.Body) {
				return true
			}
		}
		return false

	case *ast.Try:
		if BlockHasMarkerReturn(s.Block) {
			return true
		}
		if s.Handler != nil && BlockHasMarkerReturn(s.Handler.Body) {
			return true
		}
		return BlockHasMarkerReturn(s.Finalizer)

	case *ast.For:
		return stmtHasMarkerReturn(s.Body)
	case *ast.ForIn:
		return stmtHasMarkerReturn(s.Body)
	case *ast.ForOf:
		return stmtHasMarkerReturn(s.Body)
	case *ast.While:
		return stmtHasMarkerReturn(s.Body)
	case *ast.DoWhile:
		return stmtHasMarkerReturn(s.Body)

	case *ast.Labeled:
		return stmtHasMarkerReturn(s.Body)
	}
	return false
}
