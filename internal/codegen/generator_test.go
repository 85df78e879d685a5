package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/christianalfoni/rask-ui/internal/ast"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(raw string) *ast.Literal { return &ast.Literal{Raw: raw} }

func bind(name string) *ast.BindingIdent { return &ast.BindingIdent{Name: name} }

func emptyFn() *ast.Function { return &ast.Function{Body: &ast.Block{}} }

func TestPrintExpr(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"ident", id("a"), "a"},
		{"string escapes", &ast.Str{Value: "say \"hi\"\n\t\\"}, `"say \"hi\"\n\t\\"`},
		{"line separators", &ast.Str{Value: "a\u2028b\u2029"}, `"a\u2028b\u2029"`},
		{"array with trailing hole", &ast.Array{Elems: []ast.Expr{num("1"), nil}}, "[1, ,]"},
		{"empty object", &ast.Object{}, "{}"},
		{
			"object members",
			&ast.Object{Props: []*ast.Prop{
				{Key: id("a"), Value: num("1")},
				{Key: id("b"), Value: id("b"), Shorthand: true},
				{Kind: ast.PropSpread, Value: id("c")},
				{Kind: ast.PropGet, Key: id("x"), Value: &ast.FnExpr{Fn: emptyFn()}},
				{Key: id("k"), Computed: true, Value: num("2")},
			}},
			"{ a: 1, b, ...c, get x() {}, [k]: 2 }",
		},
		{
			"arrow returning object",
			&ast.Arrow{Expr: &ast.Object{Props: []*ast.Prop{{Key: id("a"), Value: num("1")}}}},
			"() => ({ a: 1 })",
		},
		{
			"async arrow with block",
			&ast.Arrow{IsAsync: true, Params: []ast.Pat{bind("x")}, Body: &ast.Block{}},
			"async (x) => {}",
		},
		{
			"optional chain",
			&ast.Call{Callee: &ast.Member{Object: id("a"), Property: id("b"), Optional: true}, Optional: true},
			"a?.b?.()",
		},
		{
			"computed optional member",
			&ast.Member{Object: id("a"), Property: &ast.Str{Value: "k"}, Computed: true, Optional: true},
			`a?.["k"]`,
		},
		{"new", &ast.New{Callee: id("Foo"), Args: []ast.Expr{num("1")}}, "new Foo(1)"},
		{"typeof", &ast.Unary{Op: "typeof", Arg: id("x")}, "typeof x"},
		{"not", &ast.Unary{Op: "!", Arg: id("x")}, "!x"},
		{"postfix", &ast.Update{Op: "++", Arg: id("i")}, "i++"},
		{"prefix", &ast.Update{Op: "--", Prefix: true, Arg: id("i")}, "--i"},
		{"assign", &ast.Assign{Op: "+=", Target: id("x"), Value: num("1")}, "x += 1"},
		{"conditional", &ast.Cond{Test: id("a"), Cons: id("b"), Alt: id("c")}, "a ? b : c"},
		{"sequence", &ast.Seq{Exprs: []ast.Expr{id("a"), id("b")}}, "a, b"},
		{"paren", &ast.Paren{X: &ast.Binary{Op: "+", Left: id("a"), Right: id("b")}}, "(a + b)"},
		{
			"template",
			&ast.Template{Quasis: []string{"a ", ""}, Exprs: []ast.Expr{id("x")}},
			"`a ${x}`",
		},
		{"tagged template", &ast.TaggedTemplate{Tag: id("css"), Tpl: &ast.Template{Quasis: []string{"x"}}}, "css`x`"},
		{"yield delegate", &ast.Yield{Arg: id("g"), Delegate: true}, "yield* g"},
		{"await", &ast.Await{Arg: &ast.Call{Callee: id("f")}}, "await f()"},
		{"spread this", &ast.Spread{Arg: &ast.This{}}, "...this"},
		{"super call", &ast.Call{Callee: &ast.Super{}, Args: []ast.Expr{id("props")}}, "super(props)"},
		{"raw", &ast.Raw{Text: "/re/g"}, "/re/g"},
		{
			"class expression",
			&ast.ClassExpr{Name: id("A"), Class: &ast.Class{SuperClass: id("B")}},
			"class A extends B {}",
		},
		{"anonymous function", &ast.FnExpr{Fn: emptyFn()}, "function() {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintExpr(tt.expr))
		})
	}
}

func TestPrintStmt(t *testing.T) {
	tests := []struct {
		name string
		stmt ast.Stmt
		want string
	}{
		{
			"iife is parenthesized",
			&ast.ExprStmt{X: &ast.Call{Callee: &ast.FnExpr{Fn: emptyFn()}}},
			"(function() {}());",
		},
		{
			"object pattern assignment is parenthesized",
			&ast.ExprStmt{X: &ast.Assign{
				Op:     "=",
				Target: &ast.Object{Props: []*ast.Prop{{Key: id("a"), Value: id("a"), Shorthand: true}}},
				Value:  id("b"),
			}},
			"({ a } = b);",
		},
		{
			"member call",
			&ast.ExprStmt{X: &ast.Call{Callee: &ast.Member{Object: id("console"), Property: id("log")}}},
			"console.log();",
		},
		{
			"if else chain",
			&ast.If{
				Test: id("a"),
				Cons: &ast.Block{Stmts: []ast.Stmt{&ast.Return{}}},
				Alt:  &ast.If{Test: id("b"), Cons: &ast.Block{}},
			},
			"if (a) {\n  return;\n} else if (b) {}",
		},
		{
			"switch",
			&ast.Switch{Disc: id("x"), Cases: []*ast.SwitchCase{
				{Test: num("1"), Body: []ast.Stmt{&ast.Break{}}},
				{Body: []ast.Stmt{&ast.Return{Arg: id("y")}}},
			}},
			"switch (x) {\n  case 1:\n    break;\n  default:\n    return y;\n}",
		},
		{
			"try catch finally",
			&ast.Try{
				Block:     &ast.Block{},
				Handler:   &ast.CatchClause{Param: bind("e"), Body: &ast.Block{}},
				Finalizer: &ast.Block{},
			},
			"try {} catch (e) {} finally {}",
		},
		{"empty for", &ast.For{Body: &ast.Block{}}, "for (;;) {}"},
		{
			"for await of",
			&ast.ForOf{Left: &ast.Raw{Text: "const x"}, Right: id("xs"), Body: &ast.Block{}, Await: true},
			"for await (const x of xs) {}",
		},
		{
			"for in",
			&ast.ForIn{Left: &ast.Raw{Text: "const k"}, Right: id("o"), Body: &ast.Empty{}},
			"for (const k in o) ;",
		},
		{"do while", &ast.DoWhile{Body: &ast.Block{}, Test: id("a")}, "do {} while (a);"},
		{
			"labeled continue",
			&ast.Labeled{Label: "outer", Body: &ast.While{
				Test: num("true"),
				Body: &ast.Block{Stmts: []ast.Stmt{&ast.Continue{Label: "outer"}}},
			}},
			"outer: while (true) {\n  continue outer;\n}",
		},
		{"throw", &ast.Throw{Arg: &ast.New{Callee: id("Error")}}, "throw new Error();"},
		{
			"variable declarators",
			&ast.VarDecl{Kind: "let", Decls: []*ast.Declarator{
				{Name: bind("a"), Init: num("1")},
				{Name: bind("b")},
			}},
			"let a = 1, b;",
		},
		{
			"async generator params",
			&ast.FnDecl{Name: id("gen"), Fn: &ast.Function{
				IsAsync:     true,
				IsGenerator: true,
				Params: []ast.Pat{
					bind("a"),
					&ast.AssignPat{Left: bind("b"), Right: num("2")},
					&ast.RestPat{Arg: bind("rest")},
				},
				Body: &ast.Block{},
			}},
			"async function* gen(a, b = 2, ...rest) {}",
		},
		{
			"bodiless declaration",
			&ast.FnDecl{Name: id("f"), Fn: &ast.Function{ReturnType: "void"}},
			"function f(): void;",
		},
		{
			"component class",
			&ast.ClassDecl{Name: id("A"), Class: &ast.Class{
				SuperClass: id("B"),
				Body: []ast.ClassMember{
					&ast.ClassProp{Key: id("setup"), Value: &ast.FnExpr{Name: id("A"), Fn: &ast.Function{
						Body: &ast.Block{Stmts: []ast.Stmt{&ast.Return{Arg: num("1")}}},
					}}},
					&ast.ClassMethod{Kind: "get", Key: id("x"), Static: true, Fn: emptyFn()},
					&ast.RawMember{Text: "#y = 1;"},
				},
			}},
			"class A extends B {\n  setup = function A() {\n    return 1;\n  };\n  static get x() {}\n  #y = 1;\n}",
		},
		{"raw", &ast.RawStmt{Text: "debugger;"}, "debugger;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintStmt(tt.stmt))
		})
	}
}

func TestPrintModule(t *testing.T) {
	m := &ast.Module{Body: []ast.Item{
		&ast.ImportDecl{
			Specifiers: []ast.ImportSpec{
				&ast.ImportDefault{Local: id("React")},
				&ast.ImportNamed{Local: id("b"), Imported: id("a")},
				&ast.ImportNamed{Local: id("c")},
			},
			Source: &ast.Str{Value: "x"},
		},
		&ast.ImportDecl{Source: &ast.Str{Value: "y"}},
		&ast.ImportDecl{
			Specifiers: []ast.ImportSpec{&ast.ImportNamespace{Local: id("ns")}},
			Source:     &ast.Str{Value: "z"},
		},
		&ast.ImportDecl{
			TypeOnly:   true,
			Specifiers: []ast.ImportSpec{&ast.ImportNamed{Local: id("T")}},
			Source:     &ast.Str{Value: "t"},
		},
		&ast.ExportNamed{
			Specifiers: []*ast.ExportSpec{{Local: "a"}, {Local: "b", Exported: "c"}},
			Source:     &ast.Str{Value: "m"},
		},
		&ast.ExportNamed{},
		&ast.ExportAll{Source: &ast.Str{Value: "m"}, Exported: "ns"},
		&ast.ExportDecl{Decl: &ast.VarDecl{Kind: "const", Decls: []*ast.Declarator{{Name: bind("a"), Init: num("1")}}}},
		&ast.ExportDefaultDecl{Decl: &ast.FnExpr{Name: id("App"), Fn: emptyFn()}},
		&ast.ExportDefaultExpr{X: &ast.ClassExpr{Name: id("A"), Class: &ast.Class{}}},
		&ast.ExportDefaultExpr{X: id("x")},
	}}

	want := `import React, { a as b, c } from "x";
import "y";
import * as ns from "z";
import type { T } from "t";
export { a, b as c } from "m";
export {};
export * as ns from "m";
export const a = 1;
export default function App() {}
export default (class A {});
export default x;
`
	assert.Equal(t, want, Print(m))
}

func TestPrintEmptyModule(t *testing.T) {
	assert.Equal(t, "", Print(nil))
	assert.Equal(t, "", Print(&ast.Module{}))
}
