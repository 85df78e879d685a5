package ast

// Inspect traverses the tree rooted at node in depth-first pre-order,
// calling f for every non-nil node. If f returns false the children of that
// node are skipped. Accepted roots are *Module and any node type of this
// package.
func Inspect(node any, f func(node any) bool) {
	if node == nil || isNilNode(node) {
		return
	}
	if !f(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, item := range n.Body {
			Inspect(item, f)
		}

	case *Function:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *Class:
		if n.SuperClass != nil {
			Inspect(n.SuperClass, f)
		}
		for _, m := range n.Body {
			Inspect(m, f)
		}

	// Expressions
	case *Template:
		inspectExprs(n.Exprs, f)
	case *TaggedTemplate:
		Inspect(n.Tag, f)
		if n.Tpl != nil {
			Inspect(n.Tpl, f)
		}
	case *Array:
		inspectExprs(n.Elems, f)
	case *Object:
		for _, p := range n.Props {
			Inspect(p, f)
		}
	case *Prop:
		if n.Key != nil {
			Inspect(n.Key, f)
		}
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *FnExpr:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		if n.Fn != nil {
			Inspect(n.Fn, f)
		}
	case *Arrow:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
		if n.Expr != nil {
			Inspect(n.Expr, f)
		}
	case *ClassExpr:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		if n.Class != nil {
			Inspect(n.Class, f)
		}
	case *Call:
		Inspect(n.Callee, f)
		inspectExprs(n.Args, f)
	case *New:
		Inspect(n.Callee, f)
		inspectExprs(n.Args, f)
	case *Member:
		Inspect(n.Object, f)
		Inspect(n.Property, f)
	case *Paren:
		Inspect(n.X, f)
	case *Cond:
		Inspect(n.Test, f)
		Inspect(n.Cons, f)
		Inspect(n.Alt, f)
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Unary:
		Inspect(n.Arg, f)
	case *Update:
		Inspect(n.Arg, f)
	case *Assign:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *Seq:
		inspectExprs(n.Exprs, f)
	case *Spread:
		Inspect(n.Arg, f)
	case *Await:
		Inspect(n.Arg, f)
	case *Yield:
		if n.Arg != nil {
			Inspect(n.Arg, f)
		}

	// Patterns
	case *AssignPat:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *RestPat:
		Inspect(n.Arg, f)

	// Class members
	case *ClassProp:
		Inspect(n.Key, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *ClassMethod:
		Inspect(n.Key, f)
		if n.Fn != nil {
			Inspect(n.Fn, f)
		}

	// Statements
	case *Block:
		inspectStmts(n.Stmts, f)
	case *ExprStmt:
		Inspect(n.X, f)
	case *Return:
		if n.Arg != nil {
			Inspect(n.Arg, f)
		}
	case *If:
		Inspect(n.Test, f)
		Inspect(n.Cons, f)
		if n.Alt != nil {
			Inspect(n.Alt, f)
		}
	case *Switch:
		Inspect(n.Disc, f)
		for _, c := range n.Cases {
			if c.Test != nil {
				Inspect(c.Test, f)
			}
			inspectStmts(c.Body, f)
		}
	case *Try:
		if n.Block != nil {
			Inspect(n.Block, f)
		}
		if n.Handler != nil {
			if n.Handler.Param != nil {
				Inspect(n.Handler.Param, f)
			}
			if n.Handler.Body != nil {
				Inspect(n.Handler.Body, f)
			}
		}
		if n.Finalizer != nil {
			Inspect(n.Finalizer, f)
		}
	case *For:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
		if n.Test != nil {
			Inspect(n.Test, f)
		}
		if n.Update != nil {
			Inspect(n.Update, f)
		}
		Inspect(n.Body, f)
	case *ForIn:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
		Inspect(n.Body, f)
	case *ForOf:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
		Inspect(n.Body, f)
	case *While:
		Inspect(n.Test, f)
		Inspect(n.Body, f)
	case *DoWhile:
		Inspect(n.Body, f)
		Inspect(n.Test, f)
	case *Labeled:
		Inspect(n.Body, f)
	case *Throw:
		Inspect(n.Arg, f)
	case *VarDecl:
		for _, d := range n.Decls {
			Inspect(d.Name, f)
			if d.Init != nil {
				Inspect(d.Init, f)
			}
		}
	case *FnDecl:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		if n.Fn != nil {
			Inspect(n.Fn, f)
		}
	case *ClassDecl:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		if n.Class != nil {
			Inspect(n.Class, f)
		}

	// Module declarations
	case *ImportDecl:
		for _, s := range n.Specifiers {
			Inspect(s, f)
		}
	case *ImportNamed:
		Inspect(n.Local, f)
		if n.Imported != nil {
			Inspect(n.Imported, f)
		}
	case *ImportDefault:
		Inspect(n.Local, f)
	case *ImportNamespace:
		Inspect(n.Local, f)
	case *ExportDecl:
		Inspect(n.Decl, f)
	case *ExportDefaultDecl:
		Inspect(n.Decl, f)
	case *ExportDefaultExpr:
		Inspect(n.X, f)
	}
}

func inspectExprs(list []Expr, f func(any) bool) {
	for _, e := range list {
		if e != nil {
			Inspect(e, f)
		}
	}
}

func inspectStmts(list []Stmt, f func(any) bool) {
	for _, s := range list {
		Inspect(s, f)
	}
}

// isNilNode reports typed nil pointers hidden behind interface values.
func isNilNode(node any) bool {
	switch n := node.(type) {
	case *Module:
		return n == nil
	case *Function:
		return n == nil
	case *Class:
		return n == nil
	case *Ident:
		return n == nil
	case *Block:
		return n == nil
	case *Template:
		return n == nil
	case *FnExpr:
		return n == nil
	case *ClassExpr:
		return n == nil
	}
	return false
}
