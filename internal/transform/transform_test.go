package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/christianalfoni/rask-ui/internal/analyse"
	"github.com/christianalfoni/rask-ui/internal/ast"
	"github.com/christianalfoni/rask-ui/internal/codegen"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(raw string) *ast.Literal { return &ast.Literal{Raw: raw} }

func str(v string) *ast.Str { return &ast.Str{Value: v} }

func vnode(args ...ast.Expr) *ast.Call {
	return &ast.Call{Callee: id("createVNode"), Args: args}
}

func componentVNode(args ...ast.Expr) *ast.Call {
	return &ast.Call{Callee: id("createComponentVNode"), Args: args}
}

func ret(e ast.Expr) *ast.Return { return &ast.Return{Arg: e} }

func block(stmts ...ast.Stmt) *ast.Block { return &ast.Block{Stmts: stmts} }

func fnDecl(name string, stmts ...ast.Stmt) *ast.FnDecl {
	return &ast.FnDecl{Name: id(name), Fn: &ast.Function{Body: block(stmts...)}}
}

func exprArrow(e ast.Expr) *ast.Arrow { return &ast.Arrow{Expr: e} }

func constDecl(name string, init ast.Expr) *ast.VarDecl {
	return &ast.VarDecl{Kind: "const", Decls: []*ast.Declarator{
		{Name: &ast.BindingIdent{Name: name}, Init: init},
	}}
}

func named(imported, local string) *ast.ImportNamed {
	spec := &ast.ImportNamed{Local: id(local)}
	if imported != local {
		spec.Imported = id(imported)
	}
	return spec
}

func importDecl(source string, specs ...ast.ImportSpec) *ast.ImportDecl {
	return &ast.ImportDecl{Specifiers: specs, Source: str(source)}
}

func module(items ...ast.Item) *ast.Module { return &ast.Module{Body: items} }

// counter is `function Counter() { return () => createComponentVNode(1, "div"); }`.
func counter() *ast.FnDecl {
	return fnDecl("Counter", ret(exprArrow(componentVNode(num("1"), str("div")))))
}

// label is `const Label = () => createVNode(2, "span");`.
func label() *ast.VarDecl {
	return constDecl("Label", exprArrow(vnode(num("2"), str("span"))))
}

func TestTransformOutput(t *testing.T) {
	tests := []struct {
		name     string
		module   func() *ast.Module
		config   Config
		expected string
	}{
		{
			name:   "stateful function declaration",
			module: func() *ast.Module { return module(counter()) },
			expected: `import { RaskStatefulComponent as _RaskStatefulComponent } from "rask-ui";
class Counter extends _RaskStatefulComponent {
  setup = function Counter() {
    return () => createComponentVNode(1, "div");
  };
}
`,
		},
		{
			name:   "stateless arrow initializer",
			module: func() *ast.Module { return module(label()) },
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";
const Label = class Label extends _RaskStatelessComponent {
  renderFn = function Label() {
    return createVNode(2, "span");
  };
};
`,
		},
		{
			name: "framework import redirected to custom source",
			module: func() *ast.Module {
				return module(
					importDecl("inferno", named("createVNode", "createVNode")),
					label(),
				)
			},
			config: NewConfig("custom-ui"),
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent } from "custom-ui";
import { createVNode } from "custom-ui/compiler";
const Label = class Label extends _RaskStatelessComponent {
  renderFn = function Label() {
    return createVNode(2, "span");
  };
};
`,
		},
		{
			name: "both kinds share one import",
			module: func() *ast.Module {
				return module(label(), counter())
			},
			expected: `import { RaskStatefulComponent as _RaskStatefulComponent, RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";
const Label = class Label extends _RaskStatelessComponent {
  renderFn = function Label() {
    return createVNode(2, "span");
  };
};
class Counter extends _RaskStatefulComponent {
  setup = function Counter() {
    return () => createComponentVNode(1, "div");
  };
}
`,
		},
		{
			name: "anonymous default export function",
			module: func() *ast.Module {
				return module(&ast.ExportDefaultDecl{Decl: &ast.FnExpr{
					Fn: &ast.Function{Body: block(ret(vnode(num("1"))))},
				}})
			},
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";
export default class DefaultComponent extends _RaskStatelessComponent {
  renderFn = function DefaultComponent() {
    return createVNode(1);
  };
}
`,
		},
		{
			name: "default exported arrow",
			module: func() *ast.Module {
				return module(&ast.ExportDefaultExpr{X: exprArrow(exprArrow(vnode(num("1"))))})
			},
			expected: `import { RaskStatefulComponent as _RaskStatefulComponent } from "rask-ui";
export default (class DefaultComponent extends _RaskStatefulComponent {
  setup = function DefaultComponent() {
    return () => createVNode(1);
  };
});
`,
		},
		{
			name: "exported function declaration",
			module: func() *ast.Module {
				return module(&ast.ExportDecl{Decl: fnDecl("Card", ret(vnode(num("1"))))})
			},
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";
export class Card extends _RaskStatelessComponent {
  renderFn = function Card() {
    return createVNode(1);
  };
}
`,
		},
		{
			// Extension: export const is rewritten like a plain const.
			name: "exported const arrow",
			module: func() *ast.Module {
				return module(&ast.ExportDecl{Decl: label()})
			},
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";
export const Label = class Label extends _RaskStatelessComponent {
  renderFn = function Label() {
    return createVNode(2, "span");
  };
};
`,
		},
		{
			name: "existing base import is reused",
			module: func() *ast.Module {
				return module(
					importDecl("rask-ui", named("RaskStatefulComponent", "Base")),
					counter(),
				)
			},
			expected: `import { RaskStatefulComponent as Base } from "rask-ui";
class Counter extends Base {
  setup = function Counter() {
    return () => createComponentVNode(1, "div");
  };
}
`,
		},
		{
			name: "private name avoids collisions",
			module: func() *ast.Module {
				return module(
					constDecl("_RaskStatelessComponent", num("1")),
					label(),
				)
			},
			expected: `import { RaskStatelessComponent as _RaskStatelessComponent1 } from "rask-ui";
const _RaskStatelessComponent = 1;
const Label = class Label extends _RaskStatelessComponent1 {
  renderFn = function Label() {
    return createVNode(2, "span");
  };
};
`,
		},
		{
			name: "non-components untouched",
			module: func() *ast.Module {
				return module(
					fnDecl("add", ret(&ast.Binary{Op: "+", Left: id("a"), Right: id("b")})),
					constDecl("x", exprArrow(num("1"))),
				)
			},
			expected: `function add() {
  return a + b;
}
const x = () => 1;
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.module()
			Transform(m, tt.config)
			assert.Equal(t, tt.expected, codegen.Print(m))
		})
	}
}

func TestTransformResult(t *testing.T) {
	m := module(
		importDecl("inferno", named("createVNode", "createVNode")),
		counter(),
		label(),
	)

	result := Transform(m, Config{})

	assert.True(t, result.Changed())
	assert.Equal(t, []Component{
		{Name: "Counter", Kind: analyse.Stateful},
		{Name: "Label", Kind: analyse.Stateless},
	}, result.Components)
	assert.Equal(t, 1, result.RewrittenImports)
	require.NotNil(t, result.Injected)
	assert.Same(t, result.Injected, m.Body[0])
	assert.Len(t, result.Injected.Specifiers, 2)
}

func TestTransformKeepsEmptyImportSource(t *testing.T) {
	framework := importDecl("inferno", named("createVNode", "createVNode"))
	m := module(framework, label())

	result := Transform(m, ParseConfig([]byte(`{"importSource":""}`)))

	require.NotNil(t, result.Injected)
	assert.Equal(t, "", result.Injected.Source.Value)
	assert.Equal(t, "/compiler", framework.Source.Value)
}

func TestTransformNilModule(t *testing.T) {
	result := Transform(nil, Config{})
	assert.False(t, result.Changed())
}

func TestTransformLeavesPlainModuleUnchanged(t *testing.T) {
	m := module(
		importDecl("react", named("useState", "useState")),
		fnDecl("helper", ret(num("1"))),
	)
	before := codegen.Print(m)

	result := Transform(m, Config{})

	assert.False(t, result.Changed())
	assert.Nil(t, result.Injected)
	assert.Equal(t, before, codegen.Print(m))
}

func TestTransformIsIdempotent(t *testing.T) {
	m := module(
		importDecl("inferno", named("createVNode", "createVNode")),
		counter(),
		label(),
		&ast.ExportDefaultExpr{X: exprArrow(vnode())},
	)
	Transform(m, NewConfig("custom-ui"))
	first := codegen.Print(m)

	result := Transform(m, NewConfig("custom-ui"))

	assert.False(t, result.Changed())
	assert.Equal(t, first, codegen.Print(m))
	assert.Equal(t, 1, strings.Count(first, `from "custom-ui";`))
}

func TestTransformNestedComponents(t *testing.T) {
	inner := fnDecl("Inner", ret(vnode(num("1"))))
	outer := fnDecl("Outer", inner, ret(&ast.Literal{Raw: "null"}))
	m := module(outer)

	result := Transform(m, Config{})

	require.Len(t, result.Components, 1)
	assert.Equal(t, "Inner", result.Components[0].Name)
	assert.Same(t, outer, m.Body[1])
	class, ok := outer.Fn.Body.Stmts[0].(*ast.ClassDecl)
	require.True(t, ok, "nested declaration should become a class")
	assert.Equal(t, "Inner", class.Name.Name)
}

func TestTransformNestedInExpressions(t *testing.T) {
	// render(function App() { const Row = () => createVNode(1); return Row; })
	app := &ast.FnExpr{Name: id("App"), Fn: &ast.Function{Body: block(
		constDecl("Row", exprArrow(vnode(num("1")))),
		ret(id("Row")),
	)}}
	m := module(&ast.ExprStmt{X: &ast.Call{Callee: id("render"), Args: []ast.Expr{app}}})

	result := Transform(m, Config{})

	require.Len(t, result.Components, 1)
	assert.Equal(t, "Row", result.Components[0].Name)
	decl := app.Fn.Body.Stmts[0].(*ast.VarDecl)
	assert.IsType(t, &ast.ClassExpr{}, decl.Decls[0].Init)
}

func TestTransformDoesNotDescendIntoRewrittenComponents(t *testing.T) {
	inner := fnDecl("Inner", ret(vnode(num("2"))))
	outer := fnDecl("Outer", inner, ret(vnode(num("1"))))
	m := module(outer)

	result := Transform(m, Config{})

	require.Len(t, result.Components, 1)
	assert.Equal(t, "Outer", result.Components[0].Name)
	assert.Same(t, inner, outer.Fn.Body.Stmts[0])
}

func TestTransformDescendsIntoRewrittenArrowComponents(t *testing.T) {
	// const Outer = () => { function Inner() { return createVNode(2); } return () => createVNode(1); }
	inner := fnDecl("Inner", ret(vnode(num("2"))))
	outer := constDecl("Outer", &ast.Arrow{Body: block(inner, ret(exprArrow(vnode(num("1")))))})
	m := module(outer)

	result := Transform(m, Config{})

	assert.Equal(t, []Component{
		{Name: "Outer", Kind: analyse.Stateful},
		{Name: "Inner", Kind: analyse.Stateless},
	}, result.Components)

	class, ok := outer.Decls[0].Init.(*ast.ClassExpr)
	require.True(t, ok)
	setup := class.Class.Body[0].(*ast.ClassProp).Value.(*ast.FnExpr)
	nested, ok := setup.Fn.Body.Stmts[0].(*ast.ClassDecl)
	require.True(t, ok, "nested declaration should become a class")
	assert.Equal(t, "Inner", nested.Name.Name)
}

func TestTransformStatementPositions(t *testing.T) {
	component := func(name string) *ast.FnDecl { return fnDecl(name, ret(vnode())) }
	cond := &ast.If{Test: id("ok"), Cons: block(component("A")), Alt: block(component("B"))}
	loop := &ast.For{Body: block(component("C"))}
	tryStmt := &ast.Try{
		Block:     block(component("D")),
		Handler:   &ast.CatchClause{Body: block(component("E"))},
		Finalizer: block(component("F")),
	}
	sw := &ast.Switch{Disc: id("k"), Cases: []*ast.SwitchCase{{Body: []ast.Stmt{component("G")}}}}
	labeled := &ast.Labeled{Label: "outer", Body: &ast.While{Test: id("x"), Body: block(component("H"))}}
	m := module(cond, loop, tryStmt, sw, labeled)

	result := Transform(m, Config{})

	var names []string
	for _, c := range result.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, names)
	assert.IsType(t, &ast.ClassDecl{}, cond.Cons.(*ast.Block).Stmts[0])
	assert.IsType(t, &ast.ClassDecl{}, sw.Cases[0].Body[0])
}

func TestTransformLeavesUnsupportedBindings(t *testing.T) {
	arrow := exprArrow(vnode())
	destructured := &ast.VarDecl{Kind: "const", Decls: []*ast.Declarator{
		{Name: &ast.RawPat{Text: "{ A }"}, Init: arrow},
	}}
	fnInit := constDecl("F", &ast.FnExpr{Fn: &ast.Function{Body: block(ret(vnode()))}})
	m := module(destructured, fnInit)

	result := Transform(m, Config{})

	assert.False(t, result.Changed())
	assert.Same(t, arrow, destructured.Decls[0].Init)
}

func TestTransformLeavesParenthesizedArrows(t *testing.T) {
	constInit := &ast.Paren{X: exprArrow(vnode())}
	defaultExpr := &ast.Paren{X: exprArrow(vnode())}
	m := module(constDecl("P", constInit), &ast.ExportDefaultExpr{X: defaultExpr})

	result := Transform(m, Config{})

	assert.False(t, result.Changed())
	assert.Same(t, constInit, m.Body[0].(*ast.VarDecl).Decls[0].Init)
	assert.Same(t, defaultExpr, m.Body[1].(*ast.ExportDefaultExpr).X)
}

func TestTransformTypeOnlyImportIsNotReused(t *testing.T) {
	typeOnly := importDecl("rask-ui", named("RaskStatefulComponent", "RaskStatefulComponent"))
	typeOnly.TypeOnly = true
	m := module(typeOnly, counter())

	result := Transform(m, Config{})

	require.NotNil(t, result.Injected)
	class := m.Body[2].(*ast.ClassDecl)
	assert.Equal(t, "_RaskStatefulComponent", class.Class.SuperClass.(*ast.Ident).Name)
}

func TestTransformLogsComponents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := module(counter())

	Transform(m, Config{}, WithLogger(zap.New(core)))

	entries := logs.FilterMessage("rewrote component").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Counter", entries[0].ContextMap()["name"])
	assert.Equal(t, "stateful", entries[0].ContextMap()["kind"])
	assert.Equal(t, 1, logs.FilterMessage("injected runtime import").Len())
}

func TestComponentsShareBinding(t *testing.T) {
	a := fnDecl("A", ret(vnode()))
	b := fnDecl("B", ret(vnode()))
	m := module(a, b)

	Transform(m, Config{})

	classA := m.Body[1].(*ast.ClassDecl)
	classB := m.Body[2].(*ast.ClassDecl)
	superA := classA.Class.SuperClass.(*ast.Ident)
	superB := classB.Class.SuperClass.(*ast.Ident)
	assert.Equal(t, superA.Name, superB.Name)
	assert.NotSame(t, superA, superB)
}
