package parse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/christianalfoni/rask-ui/internal/ast"
)

// lowerer converts a tree-sitter JavaScript tree into ast nodes.
type lowerer struct {
	src []byte
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Content(l.src)
}

// children returns the named children of n, without comments.
func children(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "comment" || c.Type() == "html_comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// hasToken reports whether n has a direct anonymous child of the given type
// before the byte offset stop.
func hasToken(n *sitter.Node, typ string, stop uint32) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.StartByte() >= stop {
			break
		}
		if !c.IsNamed() && c.Type() == typ {
			return true
		}
	}
	return false
}

func hasChild(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == typ {
			return true
		}
	}
	return false
}

func (l *lowerer) program(n *sitter.Node) *ast.Module {
	m := &ast.Module{}
	for _, c := range children(n) {
		m.Body = append(m.Body, l.item(c))
	}
	return m
}

func (l *lowerer) item(n *sitter.Node) ast.Item {
	switch n.Type() {
	case "import_statement":
		return l.importStatement(n)
	case "export_statement":
		return l.exportStatement(n)
	}
	return l.stmt(n)
}

func (l *lowerer) importStatement(n *sitter.Node) ast.Item {
	source := l.moduleSource(n.ChildByFieldName("source"))
	if source == nil {
		return &ast.RawStmt{Text: l.text(n)}
	}
	decl := &ast.ImportDecl{Source: source}
	for _, c := range children(n) {
		if c.Type() != "import_clause" {
			continue
		}
		for _, spec := range children(c) {
			switch spec.Type() {
			case "identifier":
				decl.Specifiers = append(decl.Specifiers, &ast.ImportDefault{Local: l.ident(spec)})
			case "namespace_import":
				if ids := children(spec); len(ids) > 0 {
					decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespace{Local: l.ident(ids[0])})
				}
			case "named_imports":
				for _, s := range children(spec) {
					if s.Type() != "import_specifier" {
						continue
					}
					decl.Specifiers = append(decl.Specifiers, l.importSpecifier(s))
				}
			}
		}
	}
	return decl
}

func (l *lowerer) importSpecifier(n *sitter.Node) *ast.ImportNamed {
	name := n.ChildByFieldName("name")
	alias := n.ChildByFieldName("alias")
	if alias == nil {
		return &ast.ImportNamed{Local: l.ident(name)}
	}
	return &ast.ImportNamed{Local: l.ident(alias), Imported: l.ident(name)}
}

// moduleSource decodes a module specifier string.
func (l *lowerer) moduleSource(n *sitter.Node) *ast.Str {
	if n == nil || n.Type() != "string" {
		return nil
	}
	if s, ok := l.expr(n).(*ast.Str); ok {
		return s
	}
	return nil
}

func (l *lowerer) exportStatement(n *sitter.Node) ast.Item {
	if hasChild(n, "decorator") {
		return &ast.RawStmt{Text: l.text(n)}
	}

	isDefault := hasToken(n, "default", n.EndByte())
	if decl := n.ChildByFieldName("declaration"); decl != nil {
		if !isDefault {
			return &ast.ExportDecl{Decl: l.stmt(decl)}
		}
		switch s := l.stmt(decl).(type) {
		case *ast.FnDecl:
			return &ast.ExportDefaultDecl{Decl: &ast.FnExpr{Name: s.Name, Fn: s.Fn}}
		case *ast.ClassDecl:
			return &ast.ExportDefaultDecl{Decl: &ast.ClassExpr{Name: s.Name, Class: s.Class}}
		}
		return &ast.RawStmt{Text: l.text(n)}
	}

	if value := n.ChildByFieldName("value"); value != nil {
		switch e := l.expr(value).(type) {
		case *ast.FnExpr:
			return &ast.ExportDefaultDecl{Decl: e}
		case *ast.ClassExpr:
			return &ast.ExportDefaultDecl{Decl: e}
		default:
			return &ast.ExportDefaultExpr{X: e}
		}
	}

	source := l.moduleSource(n.ChildByFieldName("source"))
	for _, c := range children(n) {
		switch c.Type() {
		case "export_clause":
			named := &ast.ExportNamed{Source: source}
			for _, s := range children(c) {
				if s.Type() != "export_specifier" {
					continue
				}
				local := l.text(s.ChildByFieldName("name"))
				exported := local
				if alias := s.ChildByFieldName("alias"); alias != nil {
					exported = l.text(alias)
				}
				named.Specifiers = append(named.Specifiers, &ast.ExportSpec{Local: local, Exported: exported})
			}
			return named
		case "namespace_export":
			if source != nil {
				if ids := children(c); len(ids) > 0 {
					return &ast.ExportAll{Source: source, Exported: l.text(ids[0])}
				}
			}
		}
	}
	if source != nil && hasToken(n, "*", n.EndByte()) {
		return &ast.ExportAll{Source: source}
	}
	return &ast.RawStmt{Text: l.text(n)}
}

func (l *lowerer) stmts(nodes []*sitter.Node) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, l.stmt(n))
	}
	return out
}

func (l *lowerer) block(n *sitter.Node) *ast.Block {
	if n == nil {
		return nil
	}
	return &ast.Block{Stmts: l.stmts(children(n))}
}

func (l *lowerer) stmt(n *sitter.Node) ast.Stmt {
	if n == nil {
		return &ast.Empty{}
	}
	switch n.Type() {
	case "statement_block":
		return l.block(n)

	case "expression_statement":
		if cs := children(n); len(cs) == 1 {
			return &ast.ExprStmt{X: l.expr(cs[0])}
		}

	case "return_statement":
		ret := &ast.Return{}
		if cs := children(n); len(cs) > 0 {
			ret.Arg = l.expr(cs[0])
		}
		return ret

	case "throw_statement":
		if cs := children(n); len(cs) > 0 {
			return &ast.Throw{Arg: l.expr(cs[0])}
		}

	case "if_statement":
		s := &ast.If{
			Test: l.condition(n.ChildByFieldName("condition")),
			Cons: l.stmt(n.ChildByFieldName("consequence")),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == "else_clause" {
				if cs := children(alt); len(cs) > 0 {
					s.Alt = l.stmt(cs[0])
				}
			} else {
				s.Alt = l.stmt(alt)
			}
		}
		return s

	case "switch_statement":
		return l.switchStatement(n)

	case "try_statement":
		s := &ast.Try{Block: l.block(n.ChildByFieldName("body"))}
		if h := n.ChildByFieldName("handler"); h != nil {
			s.Handler = &ast.CatchClause{Body: l.block(h.ChildByFieldName("body"))}
			if param := h.ChildByFieldName("parameter"); param != nil {
				s.Handler.Param = l.pat(param)
			}
		}
		if f := n.ChildByFieldName("finalizer"); f != nil {
			s.Finalizer = l.block(f.ChildByFieldName("body"))
		}
		return s

	case "for_statement":
		return &ast.For{
			Init:   l.forClause(n.ChildByFieldName("initializer")),
			Test:   l.forClause(n.ChildByFieldName("condition")),
			Update: l.forClause(n.ChildByFieldName("increment")),
			Body:   l.stmt(n.ChildByFieldName("body")),
		}

	case "for_in_statement":
		return l.forIn(n)

	case "while_statement":
		return &ast.While{
			Test: l.condition(n.ChildByFieldName("condition")),
			Body: l.stmt(n.ChildByFieldName("body")),
		}

	case "do_statement":
		return &ast.DoWhile{
			Body: l.stmt(n.ChildByFieldName("body")),
			Test: l.condition(n.ChildByFieldName("condition")),
		}

	case "labeled_statement":
		return &ast.Labeled{
			Label: l.text(n.ChildByFieldName("label")),
			Body:  l.stmt(n.ChildByFieldName("body")),
		}

	case "break_statement":
		s := &ast.Break{}
		if label := n.ChildByFieldName("label"); label != nil {
			s.Label = l.text(label)
		}
		return s

	case "continue_statement":
		s := &ast.Continue{}
		if label := n.ChildByFieldName("label"); label != nil {
			s.Label = l.text(label)
		}
		return s

	case "empty_statement":
		return &ast.Empty{}

	case "lexical_declaration", "variable_declaration":
		return l.varDecl(n)

	case "function_declaration", "generator_function_declaration":
		if hasChild(n, "decorator") {
			break
		}
		return &ast.FnDecl{Name: l.ident(n.ChildByFieldName("name")), Fn: l.function(n)}

	case "class_declaration":
		if hasChild(n, "decorator") {
			break
		}
		return &ast.ClassDecl{Name: l.ident(n.ChildByFieldName("name")), Class: l.class(n)}
	}
	return &ast.RawStmt{Text: l.text(n)}
}

// condition unwraps the parenthesized head of if, while and do statements.
func (l *lowerer) condition(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	if n.Type() == "parenthesized_expression" {
		if cs := children(n); len(cs) == 1 {
			return l.expr(cs[0])
		}
	}
	return l.expr(n)
}

// forClause keeps one part of a for head as raw text.
func (l *lowerer) forClause(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	text := strings.TrimSpace(l.text(n))
	text = strings.TrimSpace(strings.TrimSuffix(text, ";"))
	if text == "" {
		return nil
	}
	return &ast.Raw{Text: text}
}

func (l *lowerer) forIn(n *sitter.Node) ast.Stmt {
	left := n.ChildByFieldName("left")
	op := n.ChildByFieldName("operator")
	right := n.ChildByFieldName("right")
	if left == nil || op == nil || right == nil {
		return &ast.RawStmt{Text: l.text(n)}
	}

	// The head starts after the opening parenthesis so declaration keywords
	// are kept.
	start := left.StartByte()
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == "(" {
			start = c.EndByte()
			break
		}
	}
	head := &ast.Raw{Text: strings.TrimSpace(string(l.src[start:op.StartByte()]))}
	body := l.stmt(n.ChildByFieldName("body"))

	if l.text(op) == "of" {
		return &ast.ForOf{
			Left:  head,
			Right: l.expr(right),
			Body:  body,
			Await: hasToken(n, "await", left.StartByte()),
		}
	}
	return &ast.ForIn{Left: head, Right: l.expr(right), Body: body}
}

func (l *lowerer) switchStatement(n *sitter.Node) ast.Stmt {
	s := &ast.Switch{Disc: l.condition(n.ChildByFieldName("value"))}
	body := n.ChildByFieldName("body")
	if body == nil {
		return &ast.RawStmt{Text: l.text(n)}
	}
	for _, c := range children(body) {
		sc := &ast.SwitchCase{}
		stmts := children(c)
		switch c.Type() {
		case "switch_case":
			value := c.ChildByFieldName("value")
			if value == nil {
				return &ast.RawStmt{Text: l.text(n)}
			}
			sc.Test = l.expr(value)
			var rest []*sitter.Node
			for _, st := range stmts {
				if st.StartByte() > value.StartByte() {
					rest = append(rest, st)
				}
			}
			stmts = rest
		case "switch_default":
		default:
			continue
		}
		sc.Body = l.stmts(stmts)
		s.Cases = append(s.Cases, sc)
	}
	return s
}

func (l *lowerer) varDecl(n *sitter.Node) ast.Stmt {
	decl := &ast.VarDecl{Kind: "var"}
	if n.Type() == "lexical_declaration" {
		kind := n.ChildByFieldName("kind")
		if kind == nil {
			kind = n.Child(0)
		}
		decl.Kind = l.text(kind)
	}
	for _, c := range children(n) {
		if c.Type() != "variable_declarator" {
			continue
		}
		d := &ast.Declarator{Name: l.pat(c.ChildByFieldName("name"))}
		if value := c.ChildByFieldName("value"); value != nil {
			d.Init = l.expr(value)
		}
		decl.Decls = append(decl.Decls, d)
	}
	return decl
}

// function lowers the shared parts of function declarations, expressions,
// arrows and methods.
func (l *lowerer) function(n *sitter.Node) *ast.Function {
	fn := &ast.Function{
		Params:      l.params(n),
		IsGenerator: strings.Contains(n.Type(), "generator"),
	}
	stop := n.EndByte()
	if params := n.ChildByFieldName("parameters"); params != nil {
		stop = params.StartByte()
	}
	fn.IsAsync = hasToken(n, "async", stop)
	if hasToken(n, "*", stop) {
		fn.IsGenerator = true
	}
	if body := n.ChildByFieldName("body"); body != nil && body.Type() == "statement_block" {
		fn.Body = l.block(body)
	}
	return fn
}

func (l *lowerer) params(n *sitter.Node) []ast.Pat {
	if single := n.ChildByFieldName("parameter"); single != nil {
		return []ast.Pat{l.pat(single)}
	}
	params := n.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var out []ast.Pat
	for _, c := range children(params) {
		out = append(out, l.pat(c))
	}
	return out
}

func (l *lowerer) pat(n *sitter.Node) ast.Pat {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "undefined":
		return &ast.BindingIdent{Name: l.text(n)}
	case "assignment_pattern":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left != nil && right != nil {
			return &ast.AssignPat{Left: l.pat(left), Right: l.expr(right)}
		}
	case "rest_pattern":
		if cs := children(n); len(cs) == 1 {
			return &ast.RestPat{Arg: l.pat(cs[0])}
		}
	}
	return &ast.RawPat{Text: l.text(n)}
}

func (l *lowerer) class(n *sitter.Node) *ast.Class {
	c := &ast.Class{}
	for _, child := range children(n) {
		if child.Type() == "class_heritage" {
			if cs := children(child); len(cs) == 1 {
				c.SuperClass = l.expr(cs[0])
			}
		}
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return c
	}
	for _, m := range children(body) {
		c.Body = append(c.Body, l.classMember(m))
	}
	return c
}

func (l *lowerer) classMember(n *sitter.Node) ast.ClassMember {
	if hasChild(n, "decorator") {
		return &ast.RawMember{Text: l.text(n)}
	}
	switch n.Type() {
	case "method_definition":
		name := n.ChildByFieldName("name")
		if name == nil {
			break
		}
		key, computed := l.propertyKey(name)
		stop := name.StartByte()
		m := &ast.ClassMethod{
			Kind:     methodKind(n, name),
			Key:      key,
			Computed: computed,
			Static:   hasToken(n, "static", stop) || hasToken(n, "static get", stop),
			Fn:       l.function(n),
		}
		if m.Kind == "method" && !computed && l.text(name) == "constructor" {
			m.Kind = "constructor"
		}
		return m

	case "field_definition":
		prop := n.ChildByFieldName("property")
		if prop == nil {
			break
		}
		key, computed := l.propertyKey(prop)
		p := &ast.ClassProp{
			Key:      key,
			Computed: computed,
			Static:   hasToken(n, "static", prop.StartByte()),
		}
		if value := n.ChildByFieldName("value"); value != nil {
			p.Value = l.expr(value)
		}
		return p
	}
	return &ast.RawMember{Text: l.text(n)}
}

func methodKind(n, name *sitter.Node) string {
	stop := name.StartByte()
	switch {
	case hasToken(n, "get", stop), hasToken(n, "static get", stop):
		return "get"
	case hasToken(n, "set", stop):
		return "set"
	}
	return "method"
}

// propertyKey lowers a property name, unwrapping computed keys.
func (l *lowerer) propertyKey(n *sitter.Node) (ast.Expr, bool) {
	if n.Type() == "computed_property_name" {
		if cs := children(n); len(cs) == 1 {
			return l.expr(cs[0]), true
		}
		return &ast.Raw{Text: l.text(n)}, false
	}
	return l.expr(n), false
}

func (l *lowerer) args(n *sitter.Node) []ast.Expr {
	if n == nil {
		return nil
	}
	return l.exprs(children(n))
}

func (l *lowerer) exprs(nodes []*sitter.Node) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, l.expr(n))
	}
	return out
}

func (l *lowerer) ident(n *sitter.Node) *ast.Ident {
	if n == nil {
		return nil
	}
	return &ast.Ident{Name: l.text(n)}
}

func (l *lowerer) expr(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "property_identifier", "shorthand_property_identifier",
		"private_property_identifier", "statement_identifier", "undefined":
		return &ast.Ident{Name: l.text(n)}

	case "string":
		raw := l.text(n)
		if len(raw) >= 2 {
			if value, ok := cookString(raw[1 : len(raw)-1]); ok {
				return &ast.Str{Value: value}
			}
		}
		return &ast.Literal{Raw: raw}

	case "number", "true", "false", "null", "regex":
		return &ast.Literal{Raw: l.text(n)}

	case "this":
		return &ast.This{}

	case "super":
		return &ast.Super{}

	case "template_string":
		return l.template(n)

	case "array":
		return l.array(n)

	case "object":
		return l.object(n)

	case "function", "function_expression", "generator_function":
		return &ast.FnExpr{Name: l.ident(n.ChildByFieldName("name")), Fn: l.function(n)}

	case "arrow_function":
		return l.arrow(n)

	case "class":
		if hasChild(n, "decorator") {
			break
		}
		return &ast.ClassExpr{Name: l.ident(n.ChildByFieldName("name")), Class: l.class(n)}

	case "call_expression":
		callee := l.expr(n.ChildByFieldName("function"))
		args := n.ChildByFieldName("arguments")
		if args != nil && args.Type() == "template_string" {
			if tpl, ok := l.template(args).(*ast.Template); ok {
				return &ast.TaggedTemplate{Tag: callee, Tpl: tpl}
			}
			break
		}
		return &ast.Call{
			Callee:   callee,
			Args:     l.args(args),
			Optional: hasChild(n, "optional_chain"),
		}

	case "new_expression":
		return &ast.New{
			Callee: l.expr(n.ChildByFieldName("constructor")),
			Args:   l.args(n.ChildByFieldName("arguments")),
		}

	case "member_expression":
		return &ast.Member{
			Object:   l.expr(n.ChildByFieldName("object")),
			Property: l.expr(n.ChildByFieldName("property")),
			Optional: hasChild(n, "optional_chain"),
		}

	case "subscript_expression":
		return &ast.Member{
			Object:   l.expr(n.ChildByFieldName("object")),
			Property: l.expr(n.ChildByFieldName("index")),
			Computed: true,
			Optional: hasChild(n, "optional_chain"),
		}

	case "parenthesized_expression":
		if cs := children(n); len(cs) == 1 {
			return &ast.Paren{X: l.expr(cs[0])}
		}

	case "ternary_expression":
		return &ast.Cond{
			Test: l.expr(n.ChildByFieldName("condition")),
			Cons: l.expr(n.ChildByFieldName("consequence")),
			Alt:  l.expr(n.ChildByFieldName("alternative")),
		}

	case "binary_expression":
		return &ast.Binary{
			Op:    n.ChildByFieldName("operator").Type(),
			Left:  l.expr(n.ChildByFieldName("left")),
			Right: l.expr(n.ChildByFieldName("right")),
		}

	case "unary_expression":
		return &ast.Unary{
			Op:  n.ChildByFieldName("operator").Type(),
			Arg: l.expr(n.ChildByFieldName("argument")),
		}

	case "update_expression":
		op := n.ChildByFieldName("operator")
		arg := n.ChildByFieldName("argument")
		return &ast.Update{
			Op:     op.Type(),
			Prefix: op.StartByte() < arg.StartByte(),
			Arg:    l.expr(arg),
		}

	case "assignment_expression":
		return &ast.Assign{
			Op:     "=",
			Target: l.assignTarget(n.ChildByFieldName("left")),
			Value:  l.expr(n.ChildByFieldName("right")),
		}

	case "augmented_assignment_expression":
		return &ast.Assign{
			Op:     n.ChildByFieldName("operator").Type(),
			Target: l.assignTarget(n.ChildByFieldName("left")),
			Value:  l.expr(n.ChildByFieldName("right")),
		}

	case "sequence_expression":
		return &ast.Seq{Exprs: l.sequence(n, nil)}

	case "spread_element":
		if cs := children(n); len(cs) == 1 {
			return &ast.Spread{Arg: l.expr(cs[0])}
		}

	case "await_expression":
		if cs := children(n); len(cs) == 1 {
			return &ast.Await{Arg: l.expr(cs[0])}
		}

	case "yield_expression":
		y := &ast.Yield{Delegate: hasToken(n, "*", n.EndByte())}
		if cs := children(n); len(cs) == 1 {
			y.Arg = l.expr(cs[0])
		}
		return y
	}
	return &ast.Raw{Text: l.text(n)}
}

// assignTarget keeps destructuring targets as raw text.
func (l *lowerer) assignTarget(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "object_pattern", "array_pattern":
		return &ast.Raw{Text: l.text(n)}
	}
	return l.expr(n)
}

// sequence flattens nested sequence expressions.
func (l *lowerer) sequence(n *sitter.Node, out []ast.Expr) []ast.Expr {
	for _, c := range children(n) {
		if c.Type() == "sequence_expression" {
			out = l.sequence(c, out)
			continue
		}
		out = append(out, l.expr(c))
	}
	return out
}

func (l *lowerer) arrow(n *sitter.Node) ast.Expr {
	fn := l.function(n)
	a := &ast.Arrow{
		Params:  fn.Params,
		Body:    fn.Body,
		IsAsync: fn.IsAsync,
	}
	if a.Body == nil {
		a.Expr = l.expr(n.ChildByFieldName("body"))
	}
	return a
}

// template keeps quasis as they appear in the source, escapes included.
func (l *lowerer) template(n *sitter.Node) ast.Expr {
	start, end := n.StartByte(), n.EndByte()
	if end-start < 2 {
		return &ast.Raw{Text: l.text(n)}
	}
	t := &ast.Template{}
	cursor := start + 1
	for _, c := range children(n) {
		if c.Type() != "template_substitution" {
			continue
		}
		cs := children(c)
		if len(cs) != 1 {
			return &ast.Raw{Text: l.text(n)}
		}
		t.Quasis = append(t.Quasis, string(l.src[cursor:c.StartByte()]))
		t.Exprs = append(t.Exprs, l.expr(cs[0]))
		cursor = c.EndByte()
	}
	t.Quasis = append(t.Quasis, string(l.src[cursor:end-1]))
	return t
}

// array records holes as nil elements.
func (l *lowerer) array(n *sitter.Node) ast.Expr {
	a := &ast.Array{}
	expectElem := true
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == ",":
			if expectElem {
				a.Elems = append(a.Elems, nil)
			}
			expectElem = true
		case c.IsNamed() && c.Type() != "comment":
			a.Elems = append(a.Elems, l.expr(c))
			expectElem = false
		}
	}
	return a
}

func (l *lowerer) object(n *sitter.Node) ast.Expr {
	o := &ast.Object{}
	for _, c := range children(n) {
		switch c.Type() {
		case "pair":
			key, computed := l.propertyKey(c.ChildByFieldName("key"))
			o.Props = append(o.Props, &ast.Prop{
				Kind:     ast.PropInit,
				Key:      key,
				Computed: computed,
				Value:    l.expr(c.ChildByFieldName("value")),
			})

		case "shorthand_property_identifier":
			o.Props = append(o.Props, &ast.Prop{
				Kind:      ast.PropInit,
				Key:       l.expr(c),
				Shorthand: true,
				Value:     l.expr(c),
			})

		case "spread_element":
			if cs := children(c); len(cs) == 1 {
				o.Props = append(o.Props, &ast.Prop{Kind: ast.PropSpread, Value: l.expr(cs[0])})
				continue
			}
			return &ast.Raw{Text: l.text(n)}

		case "method_definition":
			name := c.ChildByFieldName("name")
			if name == nil || hasChild(c, "decorator") {
				return &ast.Raw{Text: l.text(n)}
			}
			key, computed := l.propertyKey(name)
			kind := ast.PropMethod
			switch methodKind(c, name) {
			case "get":
				kind = ast.PropGet
			case "set":
				kind = ast.PropSet
			}
			o.Props = append(o.Props, &ast.Prop{
				Kind:     kind,
				Key:      key,
				Computed: computed,
				Value:    &ast.FnExpr{Fn: l.function(c)},
			})

		default:
			return &ast.Raw{Text: l.text(n)}
		}
	}
	return o
}
