// Package codegen prints syntax trees back to JavaScript source.
//
// Output uses two-space indentation, double-quoted strings and one
// statement per line. Parentheses are emitted where the tree holds a Paren
// node and around statement-leading function, class and object expressions,
// so trees are expected to come from a parser that preserves them. Raw nodes
// print their text verbatim.
package codegen

import (
	"strings"

	"github.com/christianalfoni/rask-ui/internal/ast"
)

// Print renders a module. The result is a pure function of the tree.
func Print(m *ast.Module) string {
	if m == nil || len(m.Body) == 0 {
		return ""
	}
	p := &printer{}
	for i, item := range m.Body {
		if i > 0 {
			p.newline()
		}
		p.item(item)
	}
	p.sb.WriteByte('\n')
	return p.sb.String()
}

// PrintExpr renders a single expression.
func PrintExpr(e ast.Expr) string {
	p := &printer{}
	p.expr(e)
	return p.sb.String()
}

// PrintStmt renders a single statement at indentation level zero.
func PrintStmt(s ast.Stmt) string {
	p := &printer{}
	p.stmt(s)
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) print(s string) {
	p.sb.WriteString(s)
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString("  ")
	}
}

func (p *printer) item(item ast.Item) {
	switch n := item.(type) {
	case *ast.ImportDecl:
		p.importDecl(n)

	case *ast.ExportDecl:
		p.print("export ")
		p.stmt(n.Decl)

	case *ast.ExportDefaultDecl:
		p.print("export default ")
		switch d := n.Decl.(type) {
		case *ast.FnExpr:
			p.fnExpr(d)
		case *ast.ClassExpr:
			p.classExpr(d)
		}

	case *ast.ExportDefaultExpr:
		p.print("export default ")
		p.leadingExpr(n.X, false)
		p.print(";")

	case *ast.ExportNamed:
		p.print("export {")
		for i, s := range n.Specifiers {
			if i > 0 {
				p.print(",")
			}
			p.print(" " + s.Local)
			if s.Exported != "" && s.Exported != s.Local {
				p.print(" as " + s.Exported)
			}
		}
		if len(n.Specifiers) > 0 {
			p.print(" ")
		}
		p.print("}")
		if n.Source != nil {
			p.print(" from ")
			p.str(n.Source.Value)
		}
		p.print(";")

	case *ast.ExportAll:
		p.print("export *")
		if n.Exported != "" {
			p.print(" as " + n.Exported)
		}
		p.print(" from ")
		p.str(n.Source.Value)
		p.print(";")

	case ast.Stmt:
		p.stmt(n)
	}
}

func (p *printer) importDecl(n *ast.ImportDecl) {
	p.print("import ")
	if n.TypeOnly {
		p.print("type ")
	}

	var named []*ast.ImportNamed
	wrote := false
	for _, spec := range n.Specifiers {
		switch s := spec.(type) {
		case *ast.ImportDefault:
			if wrote {
				p.print(", ")
			}
			p.print(s.Local.Name)
			wrote = true
		case *ast.ImportNamespace:
			if wrote {
				p.print(", ")
			}
			p.print("* as " + s.Local.Name)
			wrote = true
		case *ast.ImportNamed:
			named = append(named, s)
		}
	}
	if len(named) > 0 {
		if wrote {
			p.print(", ")
		}
		p.print("{ ")
		for i, s := range named {
			if i > 0 {
				p.print(", ")
			}
			if s.TypeOnly {
				p.print("type ")
			}
			if s.Imported != nil && s.Imported.Name != s.Local.Name {
				p.print(s.Imported.Name + " as ")
			}
			p.print(s.Local.Name)
		}
		p.print(" }")
		wrote = true
	}
	if wrote {
		p.print(" from ")
	}
	p.str(n.Source.Value)
	p.print(";")
}

func (p *printer) block(b *ast.Block) {
	if b == nil || len(b.Stmts) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, s := range b.Stmts {
		p.newline()
		p.stmt(s)
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		p.block(s)

	case *ast.ExprStmt:
		p.leadingExpr(s.X, true)
		p.print(";")

	case *ast.Return:
		p.print("return")
		if s.Arg != nil {
			p.print(" ")
			p.expr(s.Arg)
		}
		p.print(";")

	case *ast.If:
		p.print("if (")
		p.expr(s.Test)
		p.print(") ")
		p.stmt(s.Cons)
		if s.Alt != nil {
			p.print(" else ")
			p.stmt(s.Alt)
		}

	case *ast.Switch:
		p.print("switch (")
		p.expr(s.Disc)
		p.print(") ")
		if len(s.Cases) == 0 {
			p.print("{}")
			return
		}
		p.print("{")
		p.indent++
		for _, c := range s.Cases {
			p.newline()
			if c.Test != nil {
				p.print("case ")
				p.expr(c.Test)
				p.print(":")
			} else {
				p.print("default:")
			}
			p.indent++
			for _, b := range c.Body {
				p.newline()
				p.stmt(b)
			}
			p.indent--
		}
		p.indent--
		p.newline()
		p.print("}")

	case *ast.Try:
		p.print("try ")
		p.block(s.Block)
		if s.Handler != nil {
			p.print(" catch ")
			if s.Handler.Param != nil {
				p.print("(")
				p.pat(s.Handler.Param)
				p.print(") ")
			}
			p.block(s.Handler.Body)
		}
		if s.Finalizer != nil {
			p.print(" finally ")
			p.block(s.Finalizer)
		}

	case *ast.For:
		p.print("for (")
		if s.Init != nil {
			p.expr(s.Init)
		}
		p.print(";")
		if s.Test != nil {
			p.print(" ")
			p.expr(s.Test)
		}
		p.print(";")
		if s.Update != nil {
			p.print(" ")
			p.expr(s.Update)
		}
		p.print(") ")
		p.stmt(s.Body)

	case *ast.ForIn:
		p.print("for (")
		p.expr(s.Left)
		p.print(" in ")
		p.expr(s.Right)
		p.print(") ")
		p.stmt(s.Body)

	case *ast.ForOf:
		p.print("for ")
		if s.Await {
			p.print("await ")
		}
		p.print("(")
		p.expr(s.Left)
		p.print(" of ")
		p.expr(s.Right)
		p.print(") ")
		p.stmt(s.Body)

	case *ast.While:
		p.print("while (")
		p.expr(s.Test)
		p.print(") ")
		p.stmt(s.Body)

	case *ast.DoWhile:
		p.print("do ")
		p.stmt(s.Body)
		p.print(" while (")
		p.expr(s.Test)
		p.print(");")

	case *ast.Labeled:
		p.print(s.Label + ": ")
		p.stmt(s.Body)

	case *ast.Break:
		p.jump("break", s.Label)

	case *ast.Continue:
		p.jump("continue", s.Label)

	case *ast.Throw:
		p.print("throw ")
		p.expr(s.Arg)
		p.print(";")

	case *ast.Empty:
		p.print(";")

	case *ast.VarDecl:
		p.print(s.Kind + " ")
		for i, d := range s.Decls {
			if i > 0 {
				p.print(", ")
			}
			p.pat(d.Name)
			if d.Init != nil {
				p.print(" = ")
				p.expr(d.Init)
			}
		}
		p.print(";")

	case *ast.FnDecl:
		p.function("function", s.Name, s.Fn)

	case *ast.ClassDecl:
		p.class(s.Name, s.Class)

	case *ast.RawStmt:
		p.print(s.Text)
	}
}

func (p *printer) jump(keyword, label string) {
	p.print(keyword)
	if label != "" {
		p.print(" " + label)
	}
	p.print(";")
}

// function prints `[async ]<keyword>[*][ name]<T>(params)[: R] body`.
func (p *printer) function(keyword string, name *ast.Ident, fn *ast.Function) {
	if fn == nil {
		fn = &ast.Function{}
	}
	if fn.IsAsync {
		p.print("async ")
	}
	p.print(keyword)
	if fn.IsGenerator {
		p.print("*")
	}
	if name != nil {
		p.print(" " + name.Name)
	}
	p.signature(fn.TypeParams, fn.Params, fn.ReturnType)
	if fn.Body == nil {
		p.print(";")
		return
	}
	p.print(" ")
	p.block(fn.Body)
}

func (p *printer) signature(typeParams string, params []ast.Pat, returnType string) {
	p.print(typeParams)
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.print(", ")
		}
		p.pat(param)
	}
	p.print(")")
	if returnType != "" {
		p.print(": " + returnType)
	}
}

func (p *printer) fnExpr(e *ast.FnExpr) {
	p.function("function", e.Name, e.Fn)
}

func (p *printer) classExpr(e *ast.ClassExpr) {
	p.class(e.Name, e.Class)
}

func (p *printer) class(name *ast.Ident, c *ast.Class) {
	p.print("class")
	if name != nil {
		p.print(" " + name.Name)
	}
	if c == nil {
		p.print(" {}")
		return
	}
	if c.SuperClass != nil {
		p.print(" extends ")
		p.expr(c.SuperClass)
	}
	if len(c.Body) == 0 {
		p.print(" {}")
		return
	}
	p.print(" {")
	p.indent++
	for _, m := range c.Body {
		p.newline()
		p.classMember(m)
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) classMember(m ast.ClassMember) {
	switch m := m.(type) {
	case *ast.ClassProp:
		if m.Static {
			p.print("static ")
		}
		p.propKey(m.Key, m.Computed)
		if m.Value != nil {
			p.print(" = ")
			p.expr(m.Value)
		}
		p.print(";")

	case *ast.ClassMethod:
		if m.Static {
			p.print("static ")
		}
		p.method(m.Kind, m.Key, m.Computed, m.Fn)

	case *ast.RawMember:
		p.print(m.Text)
	}
}

// method prints object and class methods, including accessors.
func (p *printer) method(kind string, key ast.Expr, computed bool, fn *ast.Function) {
	if fn == nil {
		fn = &ast.Function{}
	}
	switch kind {
	case "get", "set":
		p.print(kind + " ")
	}
	if fn.IsAsync {
		p.print("async ")
	}
	if fn.IsGenerator {
		p.print("*")
	}
	p.propKey(key, computed)
	p.signature(fn.TypeParams, fn.Params, fn.ReturnType)
	if fn.Body == nil {
		p.print(";")
		return
	}
	p.print(" ")
	p.block(fn.Body)
}

func (p *printer) propKey(key ast.Expr, computed bool) {
	if computed {
		p.print("[")
		p.expr(key)
		p.print("]")
		return
	}
	p.expr(key)
}

func (p *printer) pat(pat ast.Pat) {
	switch n := pat.(type) {
	case *ast.BindingIdent:
		p.print(n.Name)
		if n.TypeAnn != "" {
			p.print(": " + n.TypeAnn)
		}
	case *ast.AssignPat:
		p.pat(n.Left)
		p.print(" = ")
		p.expr(n.Right)
	case *ast.RestPat:
		p.print("...")
		p.pat(n.Arg)
	case *ast.RawPat:
		p.print(n.Text)
	}
}

// leadingExpr prints an expression in a position where a leading function,
// class or, for statements, object literal would be read as a declaration
// or block.
func (p *printer) leadingExpr(e ast.Expr, statement bool) {
	if startsAmbiguously(e, statement) {
		p.print("(")
		p.expr(e)
		p.print(")")
		return
	}
	p.expr(e)
}

func startsAmbiguously(e ast.Expr, statement bool) bool {
	for {
		switch n := e.(type) {
		case *ast.FnExpr, *ast.ClassExpr:
			return true
		case *ast.Object:
			return statement
		case *ast.Call:
			e = n.Callee
		case *ast.Member:
			e = n.Object
		case *ast.TaggedTemplate:
			e = n.Tag
		case *ast.Binary:
			e = n.Left
		case *ast.Cond:
			e = n.Test
		case *ast.Assign:
			e = n.Target
		case *ast.Update:
			if n.Prefix {
				return false
			}
			e = n.Arg
		case *ast.Seq:
			if len(n.Exprs) == 0 {
				return false
			}
			e = n.Exprs[0]
		default:
			return false
		}
	}
}

func (p *printer) exprList(list []ast.Expr) {
	for i, e := range list {
		if i > 0 {
			p.print(", ")
		}
		p.expr(e)
	}
}

func (p *printer) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Ident:
		p.print(e.Name)

	case *ast.Str:
		p.str(e.Value)

	case *ast.Literal:
		p.print(e.Raw)

	case *ast.Template:
		p.template(e)

	case *ast.TaggedTemplate:
		p.expr(e.Tag)
		p.template(e.Tpl)

	case *ast.Array:
		p.print("[")
		p.exprList(e.Elems)
		if n := len(e.Elems); n > 0 && e.Elems[n-1] == nil {
			p.print(",")
		}
		p.print("]")

	case *ast.Object:
		p.object(e)

	case *ast.FnExpr:
		p.fnExpr(e)

	case *ast.Arrow:
		if e.IsAsync {
			p.print("async ")
		}
		p.signature(e.TypeParams, e.Params, e.ReturnType)
		p.print(" => ")
		if e.Body != nil {
			p.block(e.Body)
		} else if _, isObject := e.Expr.(*ast.Object); isObject {
			p.print("(")
			p.expr(e.Expr)
			p.print(")")
		} else {
			p.expr(e.Expr)
		}

	case *ast.ClassExpr:
		p.classExpr(e)

	case *ast.Call:
		p.expr(e.Callee)
		if e.Optional {
			p.print("?.")
		}
		p.print("(")
		p.exprList(e.Args)
		p.print(")")

	case *ast.New:
		p.print("new ")
		p.expr(e.Callee)
		p.print("(")
		p.exprList(e.Args)
		p.print(")")

	case *ast.Member:
		p.expr(e.Object)
		switch {
		case e.Computed && e.Optional:
			p.print("?.[")
		case e.Computed:
			p.print("[")
		case e.Optional:
			p.print("?.")
		default:
			p.print(".")
		}
		p.expr(e.Property)
		if e.Computed {
			p.print("]")
		}

	case *ast.Paren:
		p.print("(")
		p.expr(e.X)
		p.print(")")

	case *ast.Cond:
		p.expr(e.Test)
		p.print(" ? ")
		p.expr(e.Cons)
		p.print(" : ")
		p.expr(e.Alt)

	case *ast.Binary:
		p.expr(e.Left)
		p.print(" " + e.Op + " ")
		p.expr(e.Right)

	case *ast.Unary:
		p.print(e.Op)
		switch e.Op {
		case "typeof", "void", "delete":
			p.print(" ")
		}
		p.expr(e.Arg)

	case *ast.Update:
		if e.Prefix {
			p.print(e.Op)
			p.expr(e.Arg)
		} else {
			p.expr(e.Arg)
			p.print(e.Op)
		}

	case *ast.Assign:
		p.expr(e.Target)
		p.print(" " + e.Op + " ")
		p.expr(e.Value)

	case *ast.Seq:
		p.exprList(e.Exprs)

	case *ast.Spread:
		p.print("...")
		p.expr(e.Arg)

	case *ast.Await:
		p.print("await ")
		p.expr(e.Arg)

	case *ast.Yield:
		p.print("yield")
		if e.Delegate {
			p.print("*")
		}
		if e.Arg != nil {
			p.print(" ")
			p.expr(e.Arg)
		}

	case *ast.This:
		p.print("this")

	case *ast.Super:
		p.print("super")

	case *ast.Raw:
		p.print(e.Text)
	}
}

func (p *printer) object(o *ast.Object) {
	if len(o.Props) == 0 {
		p.print("{}")
		return
	}
	p.print("{ ")
	for i, prop := range o.Props {
		if i > 0 {
			p.print(", ")
		}
		switch prop.Kind {
		case ast.PropSpread:
			p.print("...")
			p.expr(prop.Value)
		case ast.PropMethod, ast.PropGet, ast.PropSet:
			var fn *ast.Function
			if fe, ok := prop.Value.(*ast.FnExpr); ok {
				fn = fe.Fn
			}
			kind := "method"
			if prop.Kind == ast.PropGet {
				kind = "get"
			} else if prop.Kind == ast.PropSet {
				kind = "set"
			}
			p.method(kind, prop.Key, prop.Computed, fn)
		default:
			p.propKey(prop.Key, prop.Computed)
			if !prop.Shorthand {
				p.print(": ")
				p.expr(prop.Value)
			}
		}
	}
	p.print(" }")
}

func (p *printer) template(t *ast.Template) {
	if t == nil {
		p.print("``")
		return
	}
	p.print("`")
	for i, q := range t.Quasis {
		p.print(q)
		if i < len(t.Exprs) {
			p.print("${")
			p.expr(t.Exprs[i])
			p.print("}")
		}
	}
	p.print("`")
}

func (p *printer) str(s string) {
	p.print(`"` + escapeString(s) + `"`)
}

// escapeString escapes a string for use in a double-quoted JavaScript
// string literal.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\u2028", "\\u2028")
	s = strings.ReplaceAll(s, "\u2029", "\\u2029")
	return s
}
