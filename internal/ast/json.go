package ast

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
)

// ErrUnknownNode is returned when a JSON tree contains a node type this
// package does not model, or a node in a position that cannot hold it.
var ErrUnknownNode = errors.New("unknown node")

// MarshalModule encodes a module as an ESTree-flavoured JSON document where
// every node is an object with a "type" discriminator. Object keys are
// emitted in sorted order so identical trees always encode identically.
func MarshalModule(m *Module) ([]byte, error) {
	return json.Marshal(encodeModule(m), json.Deterministic(true))
}

// UnmarshalModule decodes a document produced by MarshalModule or by a host
// speaking the same node schema.
func UnmarshalModule(data []byte) (*Module, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode module: %w", err)
	}
	d := &decoder{}
	m := d.module(raw)
	if d.err != nil {
		return nil, d.err
	}
	return m, nil
}

type object = map[string]any

func node(typ string, fields ...any) object {
	o := object{"type": typ}
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == nil {
			continue
		}
		o[fields[i].(string)] = fields[i+1]
	}
	return o
}

func encodeModule(m *Module) object {
	body := make([]any, 0, len(m.Body))
	for _, item := range m.Body {
		body = append(body, encodeItem(item))
	}
	return node("Module", "body", body)
}

func encodeItem(item Item) any {
	switch n := item.(type) {
	case *ImportDecl:
		specs := make([]any, 0, len(n.Specifiers))
		for _, s := range n.Specifiers {
			specs = append(specs, encodeImportSpec(s))
		}
		return node("ImportDeclaration", "specifiers", specs, "source", encodeExpr(n.Source), "typeOnly", n.TypeOnly)
	case *ExportDecl:
		return node("ExportDeclaration", "declaration", encodeItem(n.Decl))
	case *ExportDefaultDecl:
		var decl any
		switch d := n.Decl.(type) {
		case *FnExpr:
			decl = encodeExpr(d)
		case *ClassExpr:
			decl = encodeExpr(d)
		}
		return node("ExportDefaultDeclaration", "declaration", decl)
	case *ExportDefaultExpr:
		return node("ExportDefaultExpression", "expression", encodeExpr(n.X))
	case *ExportNamed:
		specs := make([]any, 0, len(n.Specifiers))
		for _, s := range n.Specifiers {
			specs = append(specs, node("ExportSpecifier", "local", s.Local, "exported", optString(s.Exported)))
		}
		var src any
		if n.Source != nil {
			src = encodeExpr(n.Source)
		}
		return node("ExportNamedDeclaration", "specifiers", specs, "source", src)
	case *ExportAll:
		return node("ExportAllDeclaration", "source", encodeExpr(n.Source), "exported", optString(n.Exported))
	case Stmt:
		return encodeStmt(n)
	}
	return nil
}

func encodeImportSpec(s ImportSpec) any {
	switch n := s.(type) {
	case *ImportNamed:
		var imported any
		if n.Imported != nil {
			imported = encodeExpr(n.Imported)
		}
		return node("ImportSpecifier", "local", encodeExpr(n.Local), "imported", imported, "typeOnly", n.TypeOnly)
	case *ImportDefault:
		return node("ImportDefaultSpecifier", "local", encodeExpr(n.Local))
	case *ImportNamespace:
		return node("ImportNamespaceSpecifier", "local", encodeExpr(n.Local))
	}
	return nil
}

func encodeStmts(list []Stmt) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, encodeStmt(s))
	}
	return out
}

func encodeBlock(b *Block) any {
	if b == nil {
		return nil
	}
	return node("BlockStatement", "body", encodeStmts(b.Stmts))
}

func encodeStmt(s Stmt) any {
	switch n := s.(type) {
	case nil:
		return nil
	case *Block:
		return encodeBlock(n)
	case *ExprStmt:
		return node("ExpressionStatement", "expression", encodeExpr(n.X))
	case *Return:
		return node("ReturnStatement", "argument", encodeExpr(n.Arg))
	case *If:
		return node("IfStatement", "test", encodeExpr(n.Test), "consequent", encodeStmt(n.Cons), "alternate", encodeStmt(n.Alt))
	case *Switch:
		cases := make([]any, 0, len(n.Cases))
		for _, c := range n.Cases {
			cases = append(cases, node("SwitchCase", "test", encodeExpr(c.Test), "consequent", encodeStmts(c.Body)))
		}
		return node("SwitchStatement", "discriminant", encodeExpr(n.Disc), "cases", cases)
	case *Try:
		var handler any
		if n.Handler != nil {
			handler = node("CatchClause", "param", encodePat(n.Handler.Param), "body", encodeBlock(n.Handler.Body))
		}
		return node("TryStatement", "block", encodeBlock(n.Block), "handler", handler, "finalizer", encodeBlock(n.Finalizer))
	case *For:
		return node("ForStatement", "init", encodeExpr(n.Init), "test", encodeExpr(n.Test), "update", encodeExpr(n.Update), "body", encodeStmt(n.Body))
	case *ForIn:
		return node("ForInStatement", "left", encodeExpr(n.Left), "right", encodeExpr(n.Right), "body", encodeStmt(n.Body))
	case *ForOf:
		return node("ForOfStatement", "left", encodeExpr(n.Left), "right", encodeExpr(n.Right), "body", encodeStmt(n.Body), "await", n.Await)
	case *While:
		return node("WhileStatement", "test", encodeExpr(n.Test), "body", encodeStmt(n.Body))
	case *DoWhile:
		return node("DoWhileStatement", "body", encodeStmt(n.Body), "test", encodeExpr(n.Test))
	case *Labeled:
		return node("LabeledStatement", "label", n.Label, "body", encodeStmt(n.Body))
	case *Break:
		return node("BreakStatement", "label", optString(n.Label))
	case *Continue:
		return node("ContinueStatement", "label", optString(n.Label))
	case *Throw:
		return node("ThrowStatement", "argument", encodeExpr(n.Arg))
	case *Empty:
		return node("EmptyStatement")
	case *VarDecl:
		decls := make([]any, 0, len(n.Decls))
		for _, d := range n.Decls {
			decls = append(decls, node("VariableDeclarator", "id", encodePat(d.Name), "init", encodeExpr(d.Init)))
		}
		return node("VariableDeclaration", "kind", n.Kind, "declarations", decls)
	case *FnDecl:
		return node("FunctionDeclaration", "id", encodeExpr(n.Name), "function", encodeFunction(n.Fn))
	case *ClassDecl:
		return node("ClassDeclaration", "id", encodeExpr(n.Name), "class", encodeClass(n.Class))
	case *RawStmt:
		return node("RawStatement", "text", n.Text)
	}
	return nil
}

func encodeFunction(f *Function) any {
	if f == nil {
		return nil
	}
	return node("Function",
		"params", encodePats(f.Params),
		"body", encodeBlock(f.Body),
		"async", f.IsAsync,
		"generator", f.IsGenerator,
		"typeParameters", optString(f.TypeParams),
		"returnType", optString(f.ReturnType),
	)
}

func encodeClass(c *Class) any {
	if c == nil {
		return nil
	}
	body := make([]any, 0, len(c.Body))
	for _, m := range c.Body {
		switch n := m.(type) {
		case *ClassProp:
			body = append(body, node("ClassProperty", "key", encodeExpr(n.Key), "computed", n.Computed, "static", n.Static, "value", encodeExpr(n.Value)))
		case *ClassMethod:
			body = append(body, node("ClassMethod", "kind", n.Kind, "key", encodeExpr(n.Key), "computed", n.Computed, "static", n.Static, "function", encodeFunction(n.Fn)))
		case *RawMember:
			body = append(body, node("RawClassMember", "text", n.Text))
		}
	}
	return node("Class", "superClass", encodeExpr(c.SuperClass), "body", body)
}

func encodePats(list []Pat) []any {
	out := make([]any, 0, len(list))
	for _, p := range list {
		out = append(out, encodePat(p))
	}
	return out
}

func encodePat(p Pat) any {
	switch n := p.(type) {
	case *BindingIdent:
		return node("BindingIdentifier", "name", n.Name, "typeAnnotation", optString(n.TypeAnn))
	case *AssignPat:
		return node("AssignmentPattern", "left", encodePat(n.Left), "right", encodeExpr(n.Right))
	case *RestPat:
		return node("RestElement", "argument", encodePat(n.Arg))
	case *RawPat:
		return node("RawPattern", "text", n.Text)
	}
	return nil
}

func encodeExprs(list []Expr) []any {
	out := make([]any, 0, len(list))
	for _, e := range list {
		out = append(out, encodeExpr(e))
	}
	return out
}

var propKindNames = [...]string{
	PropInit:   "init",
	PropMethod: "method",
	PropGet:    "get",
	PropSet:    "set",
	PropSpread: "spread",
}

func encodeExpr(e Expr) any {
	switch n := e.(type) {
	case nil:
		return nil
	case *Ident:
		if n == nil {
			return nil
		}
		return node("Identifier", "name", n.Name)
	case *Str:
		if n == nil {
			return nil
		}
		return node("StringLiteral", "value", n.Value)
	case *Literal:
		return node("Literal", "raw", n.Raw)
	case *Template:
		if n == nil {
			return nil
		}
		quasis := make([]any, 0, len(n.Quasis))
		for _, q := range n.Quasis {
			quasis = append(quasis, q)
		}
		return node("TemplateLiteral", "quasis", quasis, "expressions", encodeExprs(n.Exprs))
	case *TaggedTemplate:
		return node("TaggedTemplateExpression", "tag", encodeExpr(n.Tag), "quasi", encodeExpr(n.Tpl))
	case *Array:
		return node("ArrayExpression", "elements", encodeExprs(n.Elems))
	case *Object:
		props := make([]any, 0, len(n.Props))
		for _, p := range n.Props {
			props = append(props, node("Property",
				"kind", propKindNames[p.Kind],
				"key", encodeExpr(p.Key),
				"computed", p.Computed,
				"shorthand", p.Shorthand,
				"value", encodeExpr(p.Value),
			))
		}
		return node("ObjectExpression", "properties", props)
	case *FnExpr:
		if n == nil {
			return nil
		}
		return node("FunctionExpression", "id", encodeExpr(n.Name), "function", encodeFunction(n.Fn))
	case *Arrow:
		return node("ArrowFunctionExpression",
			"params", encodePats(n.Params),
			"body", encodeBlock(n.Body),
			"expression", encodeExpr(n.Expr),
			"async", n.IsAsync,
			"generator", n.IsGenerator,
			"typeParameters", optString(n.TypeParams),
			"returnType", optString(n.ReturnType),
		)
	case *ClassExpr:
		return node("ClassExpression", "id", encodeExpr(n.Name), "class", encodeClass(n.Class))
	case *Call:
		return node("CallExpression", "callee", encodeExpr(n.Callee), "arguments", encodeExprs(n.Args), "optional", n.Optional)
	case *New:
		return node("NewExpression", "callee", encodeExpr(n.Callee), "arguments", encodeExprs(n.Args))
	case *Member:
		return node("MemberExpression", "object", encodeExpr(n.Object), "property", encodeExpr(n.Property), "computed", n.Computed, "optional", n.Optional)
	case *Paren:
		return node("ParenthesizedExpression", "expression", encodeExpr(n.X))
	case *Cond:
		return node("ConditionalExpression", "test", encodeExpr(n.Test), "consequent", encodeExpr(n.Cons), "alternate", encodeExpr(n.Alt))
	case *Binary:
		return node("BinaryExpression", "operator", n.Op, "left", encodeExpr(n.Left), "right", encodeExpr(n.Right))
	case *Unary:
		return node("UnaryExpression", "operator", n.Op, "argument", encodeExpr(n.Arg))
	case *Update:
		return node("UpdateExpression", "operator", n.Op, "prefix", n.Prefix, "argument", encodeExpr(n.Arg))
	case *Assign:
		return node("AssignmentExpression", "operator", n.Op, "left", encodeExpr(n.Target), "right", encodeExpr(n.Value))
	case *Seq:
		return node("SequenceExpression", "expressions", encodeExprs(n.Exprs))
	case *Spread:
		return node("SpreadElement", "argument", encodeExpr(n.Arg))
	case *Await:
		return node("AwaitExpression", "argument", encodeExpr(n.Arg))
	case *Yield:
		return node("YieldExpression", "argument", encodeExpr(n.Arg), "delegate", n.Delegate)
	case *This:
		return node("ThisExpression")
	case *Super:
		return node("Super")
	case *Raw:
		return node("Raw", "text", n.Text)
	}
	return nil
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// decoder records the first error and keeps returning zero nodes after it,
// so the recursive descent needs no error plumbing.
type decoder struct {
	err error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf(format, args...)
	}
}

func (d *decoder) obj(v any) (object, string) {
	o, ok := v.(object)
	if !ok {
		if v != nil {
			d.fail("%w: expected object, got %T", ErrUnknownNode, v)
		}
		return nil, ""
	}
	typ, _ := o["type"].(string)
	return o, typ
}

func (d *decoder) list(v any) []any {
	if v == nil {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		d.fail("%w: expected array, got %T", ErrUnknownNode, v)
	}
	return l
}

func str(o object, key string) string {
	s, _ := o[key].(string)
	return s
}

func boolean(o object, key string) bool {
	b, _ := o[key].(bool)
	return b
}

func (d *decoder) module(v any) *Module {
	o, typ := d.obj(v)
	if typ != "Module" {
		d.fail("%w: expected Module, got %q", ErrUnknownNode, typ)
		return nil
	}
	m := &Module{}
	for _, item := range d.list(o["body"]) {
		if it := d.item(item); it != nil {
			m.Body = append(m.Body, it)
		}
	}
	return m
}

func (d *decoder) item(v any) Item {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	switch typ {
	case "ImportDeclaration":
		imp := &ImportDecl{Source: d.str(o["source"]), TypeOnly: boolean(o, "typeOnly")}
		for _, s := range d.list(o["specifiers"]) {
			if spec := d.importSpec(s); spec != nil {
				imp.Specifiers = append(imp.Specifiers, spec)
			}
		}
		return imp
	case "ExportDeclaration":
		return &ExportDecl{Decl: d.stmt(o["declaration"])}
	case "ExportDefaultDeclaration":
		switch e := d.expr(o["declaration"]).(type) {
		case *FnExpr:
			return &ExportDefaultDecl{Decl: e}
		case *ClassExpr:
			return &ExportDefaultDecl{Decl: e}
		default:
			d.fail("%w: default export declaration must be a function or class, got %T", ErrUnknownNode, e)
			return nil
		}
	case "ExportDefaultExpression":
		return &ExportDefaultExpr{X: d.expr(o["expression"])}
	case "ExportNamedDeclaration":
		exp := &ExportNamed{}
		if o["source"] != nil {
			exp.Source = d.str(o["source"])
		}
		for _, s := range d.list(o["specifiers"]) {
			so, _ := d.obj(s)
			if so == nil {
				continue
			}
			exp.Specifiers = append(exp.Specifiers, &ExportSpec{Local: str(so, "local"), Exported: str(so, "exported")})
		}
		return exp
	case "ExportAllDeclaration":
		return &ExportAll{Source: d.str(o["source"]), Exported: str(o, "exported")}
	}
	return d.stmt(v)
}

func (d *decoder) importSpec(v any) ImportSpec {
	o, typ := d.obj(v)
	switch typ {
	case "ImportSpecifier":
		spec := &ImportNamed{Local: d.ident(o["local"]), TypeOnly: boolean(o, "typeOnly")}
		if o["imported"] != nil {
			spec.Imported = d.ident(o["imported"])
		}
		return spec
	case "ImportDefaultSpecifier":
		return &ImportDefault{Local: d.ident(o["local"])}
	case "ImportNamespaceSpecifier":
		return &ImportNamespace{Local: d.ident(o["local"])}
	}
	if o != nil {
		d.fail("%w: import specifier %q", ErrUnknownNode, typ)
	}
	return nil
}

func (d *decoder) stmts(v any) []Stmt {
	var out []Stmt
	for _, s := range d.list(v) {
		if st := d.stmt(s); st != nil {
			out = append(out, st)
		}
	}
	return out
}

func (d *decoder) block(v any) *Block {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	if typ != "BlockStatement" {
		d.fail("%w: expected BlockStatement, got %q", ErrUnknownNode, typ)
		return nil
	}
	return &Block{Stmts: d.stmts(o["body"])}
}

func (d *decoder) stmt(v any) Stmt {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	switch typ {
	case "BlockStatement":
		return d.block(v)
	case "ExpressionStatement":
		return &ExprStmt{X: d.expr(o["expression"])}
	case "ReturnStatement":
		return &Return{Arg: d.expr(o["argument"])}
	case "IfStatement":
		return &If{Test: d.expr(o["test"]), Cons: d.stmt(o["consequent"]), Alt: d.stmt(o["alternate"])}
	case "SwitchStatement":
		sw := &Switch{Disc: d.expr(o["discriminant"])}
		for _, c := range d.list(o["cases"]) {
			co, _ := d.obj(c)
			if co == nil {
				continue
			}
			sw.Cases = append(sw.Cases, &SwitchCase{Test: d.expr(co["test"]), Body: d.stmts(co["consequent"])})
		}
		return sw
	case "TryStatement":
		t := &Try{Block: d.block(o["block"]), Finalizer: d.block(o["finalizer"])}
		if ho, _ := d.obj(o["handler"]); ho != nil {
			t.Handler = &CatchClause{Param: d.pat(ho["param"]), Body: d.block(ho["body"])}
		}
		return t
	case "ForStatement":
		return &For{Init: d.expr(o["init"]), Test: d.expr(o["test"]), Update: d.expr(o["update"]), Body: d.stmt(o["body"])}
	case "ForInStatement":
		return &ForIn{Left: d.expr(o["left"]), Right: d.expr(o["right"]), Body: d.stmt(o["body"])}
	case "ForOfStatement":
		return &ForOf{Left: d.expr(o["left"]), Right: d.expr(o["right"]), Body: d.stmt(o["body"]), Await: boolean(o, "await")}
	case "WhileStatement":
		return &While{Test: d.expr(o["test"]), Body: d.stmt(o["body"])}
	case "DoWhileStatement":
		return &DoWhile{Body: d.stmt(o["body"]), Test: d.expr(o["test"])}
	case "LabeledStatement":
		return &Labeled{Label: str(o, "label"), Body: d.stmt(o["body"])}
	case "BreakStatement":
		return &Break{Label: str(o, "label")}
	case "ContinueStatement":
		return &Continue{Label: str(o, "label")}
	case "ThrowStatement":
		return &Throw{Arg: d.expr(o["argument"])}
	case "EmptyStatement":
		return &Empty{}
	case "VariableDeclaration":
		vd := &VarDecl{Kind: str(o, "kind")}
		for _, decl := range d.list(o["declarations"]) {
			do, _ := d.obj(decl)
			if do == nil {
				continue
			}
			vd.Decls = append(vd.Decls, &Declarator{Name: d.pat(do["id"]), Init: d.expr(do["init"])})
		}
		return vd
	case "FunctionDeclaration":
		return &FnDecl{Name: d.ident(o["id"]), Fn: d.function(o["function"])}
	case "ClassDeclaration":
		return &ClassDecl{Name: d.ident(o["id"]), Class: d.class(o["class"])}
	case "RawStatement":
		return &RawStmt{Text: str(o, "text")}
	}
	d.fail("%w: statement %q", ErrUnknownNode, typ)
	return nil
}

func (d *decoder) function(v any) *Function {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	if typ != "Function" {
		d.fail("%w: expected Function, got %q", ErrUnknownNode, typ)
		return nil
	}
	return &Function{
		Params:      d.pats(o["params"]),
		Body:        d.block(o["body"]),
		IsAsync:     boolean(o, "async"),
		IsGenerator: boolean(o, "generator"),
		TypeParams:  str(o, "typeParameters"),
		ReturnType:  str(o, "returnType"),
	}
}

func (d *decoder) class(v any) *Class {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	if typ != "Class" {
		d.fail("%w: expected Class, got %q", ErrUnknownNode, typ)
		return nil
	}
	c := &Class{SuperClass: d.expr(o["superClass"])}
	for _, m := range d.list(o["body"]) {
		mo, mt := d.obj(m)
		switch mt {
		case "ClassProperty":
			c.Body = append(c.Body, &ClassProp{
				Key:      d.expr(mo["key"]),
				Computed: boolean(mo, "computed"),
				Static:   boolean(mo, "static"),
				Value:    d.expr(mo["value"]),
			})
		case "ClassMethod":
			c.Body = append(c.Body, &ClassMethod{
				Kind:     str(mo, "kind"),
				Key:      d.expr(mo["key"]),
				Computed: boolean(mo, "computed"),
				Static:   boolean(mo, "static"),
				Fn:       d.function(mo["function"]),
			})
		case "RawClassMember":
			c.Body = append(c.Body, &RawMember{Text: str(mo, "text")})
		default:
			d.fail("%w: class member %q", ErrUnknownNode, mt)
		}
	}
	return c
}

func (d *decoder) pats(v any) []Pat {
	var out []Pat
	for _, p := range d.list(v) {
		if pat := d.pat(p); pat != nil {
			out = append(out, pat)
		}
	}
	return out
}

func (d *decoder) pat(v any) Pat {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	switch typ {
	case "BindingIdentifier":
		return &BindingIdent{Name: str(o, "name"), TypeAnn: str(o, "typeAnnotation")}
	case "AssignmentPattern":
		return &AssignPat{Left: d.pat(o["left"]), Right: d.expr(o["right"])}
	case "RestElement":
		return &RestPat{Arg: d.pat(o["argument"])}
	case "RawPattern":
		return &RawPat{Text: str(o, "text")}
	}
	d.fail("%w: pattern %q", ErrUnknownNode, typ)
	return nil
}

func (d *decoder) ident(v any) *Ident {
	id, ok := d.expr(v).(*Ident)
	if !ok && v != nil {
		d.fail("%w: expected Identifier", ErrUnknownNode)
	}
	return id
}

func (d *decoder) str(v any) *Str {
	s, ok := d.expr(v).(*Str)
	if !ok {
		d.fail("%w: expected StringLiteral", ErrUnknownNode)
	}
	return s
}

// exprs keeps nil entries: they are elided array elements.
func (d *decoder) exprs(v any) []Expr {
	l := d.list(v)
	out := make([]Expr, 0, len(l))
	for _, e := range l {
		out = append(out, d.expr(e))
	}
	return out
}

func (d *decoder) template(v any) *Template {
	t, ok := d.expr(v).(*Template)
	if !ok {
		d.fail("%w: expected TemplateLiteral", ErrUnknownNode)
	}
	return t
}

func (d *decoder) expr(v any) Expr {
	o, typ := d.obj(v)
	if o == nil {
		return nil
	}
	switch typ {
	case "Identifier":
		return &Ident{Name: str(o, "name")}
	case "StringLiteral":
		return &Str{Value: str(o, "value")}
	case "Literal":
		return &Literal{Raw: str(o, "raw")}
	case "TemplateLiteral":
		t := &Template{Exprs: d.exprs(o["expressions"])}
		for _, q := range d.list(o["quasis"]) {
			s, _ := q.(string)
			t.Quasis = append(t.Quasis, s)
		}
		return t
	case "TaggedTemplateExpression":
		return &TaggedTemplate{Tag: d.expr(o["tag"]), Tpl: d.template(o["quasi"])}
	case "ArrayExpression":
		return &Array{Elems: d.exprs(o["elements"])}
	case "ObjectExpression":
		obj := &Object{}
		for _, p := range d.list(o["properties"]) {
			po, _ := d.obj(p)
			if po == nil {
				continue
			}
			obj.Props = append(obj.Props, &Prop{
				Kind:      propKind(str(po, "kind")),
				Key:       d.expr(po["key"]),
				Computed:  boolean(po, "computed"),
				Shorthand: boolean(po, "shorthand"),
				Value:     d.expr(po["value"]),
			})
		}
		return obj
	case "FunctionExpression":
		return &FnExpr{Name: d.ident(o["id"]), Fn: d.function(o["function"])}
	case "ArrowFunctionExpression":
		return &Arrow{
			Params:      d.pats(o["params"]),
			Body:        d.block(o["body"]),
			Expr:        d.expr(o["expression"]),
			IsAsync:     boolean(o, "async"),
			IsGenerator: boolean(o, "generator"),
			TypeParams:  str(o, "typeParameters"),
			ReturnType:  str(o, "returnType"),
		}
	case "ClassExpression":
		return &ClassExpr{Name: d.ident(o["id"]), Class: d.class(o["class"])}
	case "CallExpression":
		return &Call{Callee: d.expr(o["callee"]), Args: d.exprs(o["arguments"]), Optional: boolean(o, "optional")}
	case "NewExpression":
		return &New{Callee: d.expr(o["callee"]), Args: d.exprs(o["arguments"])}
	case "MemberExpression":
		return &Member{Object: d.expr(o["object"]), Property: d.expr(o["property"]), Computed: boolean(o, "computed"), Optional: boolean(o, "optional")}
	case "ParenthesizedExpression":
		return &Paren{X: d.expr(o["expression"])}
	case "ConditionalExpression":
		return &Cond{Test: d.expr(o["test"]), Cons: d.expr(o["consequent"]), Alt: d.expr(o["alternate"])}
	case "BinaryExpression":
		return &Binary{Op: str(o, "operator"), Left: d.expr(o["left"]), Right: d.expr(o["right"])}
	case "UnaryExpression":
		return &Unary{Op: str(o, "operator"), Arg: d.expr(o["argument"])}
	case "UpdateExpression":
		return &Update{Op: str(o, "operator"), Prefix: boolean(o, "prefix"), Arg: d.expr(o["argument"])}
	case "AssignmentExpression":
		return &Assign{Op: str(o, "operator"), Target: d.expr(o["left"]), Value: d.expr(o["right"])}
	case "SequenceExpression":
		return &Seq{Exprs: d.exprs(o["expressions"])}
	case "SpreadElement":
		return &Spread{Arg: d.expr(o["argument"])}
	case "AwaitExpression":
		return &Await{Arg: d.expr(o["argument"])}
	case "YieldExpression":
		return &Yield{Arg: d.expr(o["argument"]), Delegate: boolean(o, "delegate")}
	case "ThisExpression":
		return &This{}
	case "Super":
		return &Super{}
	case "Raw":
		return &Raw{Text: str(o, "text")}
	}
	d.fail("%w: expression %q", ErrUnknownNode, typ)
	return nil
}

func propKind(name string) PropKind {
	for k, n := range propKindNames {
		if n == name {
			return PropKind(k)
		}
	}
	return PropInit
}
