// Package transform rewrites Rask function components into the class
// components consumed by the runtime.
//
// A function whose body returns a marker call directly becomes a class
// extending RaskStatelessComponent with the function in its renderFn
// property. A function returning a closure that produces a marker call
// becomes a class extending RaskStatefulComponent with the function in its
// setup property. Imports are then reconciled: framework imports point at
// the runtime's compiler entry and the base classes used are imported.
package transform

import (
	"go.uber.org/zap"

	"github.com/christianalfoni/rask-ui/internal/analyse"
	"github.com/christianalfoni/rask-ui/internal/ast"
)

// Component describes one rewritten declaration.
type Component struct {
	Name string
	Kind analyse.Classification
}

// Result summarises what a transform changed.
type Result struct {
	Components []Component

	// RewrittenImports counts framework imports redirected to the compiler
	// entry.
	RewrittenImports int

	// Injected is the import prepended to the module, or nil.
	Injected *ast.ImportDecl
}

// Changed reports whether the module was modified.
func (r *Result) Changed() bool {
	return len(r.Components) > 0 || r.RewrittenImports > 0 || r.Injected != nil
}

type options struct {
	logger *zap.Logger
}

// Option configures a transform run.
type Option func(*options)

// WithLogger routes debug output about rewritten components to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Transform rewrites the components of m in place and reconciles its
// imports. It never fails: anything it does not recognise is left as is.
func Transform(m *ast.Module, cfg Config, opts ...Option) *Result {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	result := &Result{}
	if m == nil {
		return result
	}

	w := &walker{
		st:     newState(m, cfg.ImportSourceOrDefault()),
		log:    o.logger,
		result: result,
	}
	for i, item := range m.Body {
		m.Body[i] = w.item(item)
	}

	result.RewrittenImports = rewriteFrameworkImports(m, cfg)
	result.Injected = injectRuntimeImports(m, w.st)
	if result.Injected != nil {
		o.logger.Debug("injected runtime import",
			zap.String("source", w.st.source),
			zap.Int("specifiers", len(result.Injected.Specifiers)))
	}
	return result
}

// walker performs a single pre-order pass, replacing matched declarations.
// Replacements are never visited again.
type walker struct {
	st     *state
	log    *zap.Logger
	result *Result
}

func (w *walker) record(name string, kind analyse.Classification) {
	w.result.Components = append(w.result.Components, Component{Name: name, Kind: kind})
	w.log.Debug("rewrote component", zap.String("name", name), zap.Stringer("kind", kind))
}

func (w *walker) item(item ast.Item) ast.Item {
	switch n := item.(type) {
	case *ast.ExportDefaultDecl:
		// export default function Name() {...}
		if fe, ok := n.Decl.(*ast.FnExpr); ok {
			if kind := analyse.Classify(fe.Fn); kind != analyse.NotAComponent {
				name := fe.Name
				if name == nil {
					name = &ast.Ident{Name: DefaultComponentName}
				}
				n.Decl = w.st.classExprFor(name, fe.Fn, kind)
				w.record(name.Name, kind)
				return n
			}
			w.function(fe.Fn)
		} else if ce, ok := n.Decl.(*ast.ClassExpr); ok {
			w.class(ce.Class)
		}
		return n

	case *ast.ExportDefaultExpr:
		// export default () => {...}
		if arrow, ok := n.X.(*ast.Arrow); ok {
			fn := toCanonicalFunction(arrow)
			if kind := analyse.Classify(fn); kind != analyse.NotAComponent {
				n.X = w.st.classExprFor(&ast.Ident{Name: DefaultComponentName}, fn, kind)
				w.record(DefaultComponentName, kind)
				return n
			}
		}
		w.expr(n.X)
		return n

	case *ast.ExportDecl:
		// export function Name() {...}, export const Name = () => {...}
		n.Decl = w.stmt(n.Decl)
		return n

	case ast.Stmt:
		return w.stmt(n)
	}
	return item
}

// componentDecl returns the class replacing a function declaration, or nil
// when the function is not a component.
func (w *walker) componentDecl(decl *ast.FnDecl) *ast.ClassDecl {
	if decl.Name == nil {
		return nil
	}
	kind := analyse.Classify(decl.Fn)
	if kind == analyse.NotAComponent {
		return nil
	}
	w.record(decl.Name.Name, kind)
	return w.st.classDeclFor(decl.Name, decl.Fn, kind)
}

func (w *walker) stmt(stmt ast.Stmt) ast.Stmt {
	switch s := stmt.(type) {
	case *ast.FnDecl:
		if class := w.componentDecl(s); class != nil {
			return class
		}
		w.function(s.Fn)

	case *ast.VarDecl:
		w.varDecl(s)

	case *ast.ClassDecl:
		w.class(s.Class)

	case *ast.Block:
		w.block(s)

	case *ast.ExprStmt:
		w.expr(s.X)

	case *ast.Return:
		w.expr(s.Arg)

	case *ast.Throw:
		w.expr(s.Arg)

	case *ast.If:
		w.expr(s.Test)
		s.Cons = w.stmt(s.Cons)
		s.Alt = w.stmt(s.Alt)

	case *ast.Switch:
		w.expr(s.Disc)
		for _, c := range s.Cases {
			w.expr(c.Test)
			w.stmts(c.Body)
		}

	case *ast.Try:
		w.block(s.Block)
		if s.Handler != nil {
			w.block(s.Handler.Body)
		}
		w.block(s.Finalizer)

	case *ast.For:
		w.expr(s.Init)
		w.expr(s.Test)
		w.expr(s.Update)
		s.Body = w.stmt(s.Body)

	case *ast.ForIn:
		w.expr(s.Right)
		s.Body = w.stmt(s.Body)

	case *ast.ForOf:
		w.expr(s.Right)
		s.Body = w.stmt(s.Body)

	case *ast.While:
		w.expr(s.Test)
		s.Body = w.stmt(s.Body)

	case *ast.DoWhile:
		s.Body = w.stmt(s.Body)
		w.expr(s.Test)

	case *ast.Labeled:
		s.Body = w.stmt(s.Body)
	}
	return stmt
}

func (w *walker) stmts(list []ast.Stmt) {
	for i, s := range list {
		list[i] = w.stmt(s)
	}
}

func (w *walker) block(b *ast.Block) {
	if b != nil {
		w.stmts(b.Stmts)
	}
}

// varDecl rewrites `const Name = () => {...}`. Bindings other than a plain
// identifier are left alone.
func (w *walker) varDecl(decl *ast.VarDecl) {
	for _, d := range decl.Decls {
		if d.Init == nil {
			continue
		}
		if arrow, ok := d.Init.(*ast.Arrow); ok {
			if binding, ok := d.Name.(*ast.BindingIdent); ok {
				fn := toCanonicalFunction(arrow)
				if kind := analyse.Classify(fn); kind != analyse.NotAComponent {
					d.Init = w.st.classExprFor(&ast.Ident{Name: binding.Name}, fn, kind)
					w.record(binding.Name, kind)
					// Unlike declarations, the body of a rewritten arrow is
					// still searched for nested components.
					w.function(fn)
					continue
				}
			}
		}
		w.expr(d.Init)
	}
}

func (w *walker) function(fn *ast.Function) {
	if fn != nil {
		w.block(fn.Body)
	}
}

func (w *walker) class(c *ast.Class) {
	if c == nil {
		return
	}
	w.expr(c.SuperClass)
	for _, m := range c.Body {
		switch m := m.(type) {
		case *ast.ClassProp:
			if m.Computed {
				w.expr(m.Key)
			}
			w.expr(m.Value)
		case *ast.ClassMethod:
			if m.Computed {
				w.expr(m.Key)
			}
			w.function(m.Fn)
		}
	}
}

// expr descends into an expression looking for nested functions whose
// bodies may declare components. Expressions themselves are never replaced
// here.
func (w *walker) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.FnExpr:
		w.function(e.Fn)
	case *ast.Arrow:
		if e.Body != nil {
			w.block(e.Body)
		} else {
			w.expr(e.Expr)
		}
	case *ast.ClassExpr:
		w.class(e.Class)
	case *ast.Call:
		w.expr(e.Callee)
		w.exprs(e.Args)
	case *ast.New:
		w.expr(e.Callee)
		w.exprs(e.Args)
	case *ast.Member:
		w.expr(e.Object)
		if e.Computed {
			w.expr(e.Property)
		}
	case *ast.Paren:
		w.expr(e.X)
	case *ast.Cond:
		w.expr(e.Test)
		w.expr(e.Cons)
		w.expr(e.Alt)
	case *ast.Binary:
		w.expr(e.Left)
		w.expr(e.Right)
	case *ast.Unary:
		w.expr(e.Arg)
	case *ast.Update:
		w.expr(e.Arg)
	case *ast.Assign:
		w.expr(e.Target)
		w.expr(e.Value)
	case *ast.Seq:
		w.exprs(e.Exprs)
	case *ast.Spread:
		w.expr(e.Arg)
	case *ast.Await:
		w.expr(e.Arg)
	case *ast.Yield:
		w.expr(e.Arg)
	case *ast.Array:
		w.exprs(e.Elems)
	case *ast.Object:
		for _, p := range e.Props {
			if p.Computed {
				w.expr(p.Key)
			}
			w.expr(p.Value)
		}
	case *ast.Template:
		w.exprs(e.Exprs)
	case *ast.TaggedTemplate:
		w.expr(e.Tag)
		if e.Tpl != nil {
			w.exprs(e.Tpl.Exprs)
		}
	}
}

func (w *walker) exprs(list []ast.Expr) {
	for _, e := range list {
		w.expr(e)
	}
}
