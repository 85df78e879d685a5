// Package ast defines the JavaScript syntax tree rewritten by the component
// compiler.
//
// The node set is a tagged union encoded with unexported marker methods:
// every expression implements Expr, every statement implements Stmt, and
// every top-level module entry implements Item. Forms the compiler never
// needs to look inside are kept as Raw nodes holding their source text so
// that a tree can be printed back without loss.
//
// Trees are owned by a single caller and mutated in place by the transform.
package ast

// These interfaces are never called. They encode variant types in Go's type
// system.
type (
	Item        interface{ isItem() }
	Stmt        interface{ Item; isStmt() }
	Expr        interface{ isExpr() }
	Pat         interface{ isPat() }
	ClassMember interface{ isClassMember() }
	ImportSpec  interface{ isImportSpec() }
	DefaultDecl interface{ isDefaultDecl() }
)

// Module is a parsed ES module: an ordered list of statements and
// import/export declarations.
type Module struct {
	Body []Item
}

// Function is the canonical function shape shared by declarations,
// function expressions, methods and normalized arrows.
type Function struct {
	Params      []Pat
	Body        *Block // nil for bodiless declarations (overloads, ambient)
	IsAsync     bool
	IsGenerator bool
	TypeParams  string // opaque source text, "" when absent
	ReturnType  string // opaque source text, "" when absent
}

type Class struct {
	SuperClass Expr
	Body       []ClassMember
}

// Expressions

type Ident struct{ Name string }

func (i *Ident) Clone() *Ident {
	if i == nil {
		return nil
	}
	return &Ident{Name: i.Name}
}

type Str struct{ Value string }

// Literal covers numbers, bigints, booleans, null and regular expressions.
type Literal struct{ Raw string }

// Template holds raw quasis; len(Quasis) == len(Exprs)+1.
type Template struct {
	Quasis []string
	Exprs  []Expr
}

type TaggedTemplate struct {
	Tag Expr
	Tpl *Template
}

// Array elements are nil for elided slots.
type Array struct{ Elems []Expr }

type PropKind uint8

const (
	PropInit PropKind = iota
	PropMethod
	PropGet
	PropSet
	PropSpread
)

// Prop is an object literal member. Methods and accessors carry their
// function in Value as a *FnExpr; spreads carry their argument in Value.
type Prop struct {
	Kind      PropKind
	Key       Expr
	Computed  bool
	Shorthand bool
	Value     Expr
}

type Object struct{ Props []*Prop }

type FnExpr struct {
	Name *Ident
	Fn   *Function
}

// Arrow has exactly one of Body and Expr set.
type Arrow struct {
	Params      []Pat
	Body        *Block
	Expr        Expr
	IsAsync     bool
	IsGenerator bool
	TypeParams  string
	ReturnType  string
}

type ClassExpr struct {
	Name  *Ident
	Class *Class
}

type Call struct {
	Callee   Expr
	Args     []Expr
	Optional bool
}

type New struct {
	Callee Expr
	Args   []Expr
}

// Member is obj.prop or obj[prop]. A non-computed Property is an *Ident.
type Member struct {
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

type Paren struct{ X Expr }

type Cond struct{ Test, Cons, Alt Expr }

// Binary covers arithmetic, comparison and logical operators.
type Binary struct {
	Op          string
	Left, Right Expr
}

type Unary struct {
	Op  string
	Arg Expr
}

type Update struct {
	Op     string
	Prefix bool
	Arg    Expr
}

type Assign struct {
	Op     string
	Target Expr
	Value  Expr
}

type Seq struct{ Exprs []Expr }

type Spread struct{ Arg Expr }

type Await struct{ Arg Expr }

type Yield struct {
	Arg      Expr
	Delegate bool
}

type This struct{}

type Super struct{}

// Raw is an expression the compiler does not model, kept as source text.
type Raw struct{ Text string }

func (*Ident) isExpr()          {}
func (*Str) isExpr()            {}
func (*Literal) isExpr()        {}
func (*Template) isExpr()       {}
func (*TaggedTemplate) isExpr() {}
func (*Array) isExpr()          {}
func (*Object) isExpr()         {}
func (*FnExpr) isExpr()         {}
func (*Arrow) isExpr()          {}
func (*ClassExpr) isExpr()      {}
func (*Call) isExpr()           {}
func (*New) isExpr()            {}
func (*Member) isExpr()         {}
func (*Paren) isExpr()          {}
func (*Cond) isExpr()           {}
func (*Binary) isExpr()         {}
func (*Unary) isExpr()          {}
func (*Update) isExpr()         {}
func (*Assign) isExpr()         {}
func (*Seq) isExpr()            {}
func (*Spread) isExpr()         {}
func (*Await) isExpr()          {}
func (*Yield) isExpr()          {}
func (*This) isExpr()           {}
func (*Super) isExpr()          {}
func (*Raw) isExpr()            {}

// Patterns

type BindingIdent struct {
	Name    string
	TypeAnn string
}

type AssignPat struct {
	Left  Pat
	Right Expr
}

type RestPat struct{ Arg Pat }

// RawPat is a destructuring pattern kept as source text.
type RawPat struct{ Text string }

func (*BindingIdent) isPat() {}
func (*AssignPat) isPat()    {}
func (*RestPat) isPat()      {}
func (*RawPat) isPat()       {}

// Class members

type ClassProp struct {
	Key      Expr
	Computed bool
	Static   bool
	Value    Expr
}

type ClassMethod struct {
	Kind     string // "method", "get", "set"
	Key      Expr
	Computed bool
	Static   bool
	Fn       *Function
}

type RawMember struct{ Text string }

func (*ClassProp) isClassMember()   {}
func (*ClassMethod) isClassMember() {}
func (*RawMember) isClassMember()   {}

// Statements

type Block struct{ Stmts []Stmt }

type ExprStmt struct{ X Expr }

type Return struct{ Arg Expr }

type If struct {
	Test Expr
	Cons Stmt
	Alt  Stmt
}

type SwitchCase struct {
	Test Expr // nil for default
	Body []Stmt
}

type Switch struct {
	Disc  Expr
	Cases []*SwitchCase
}

type CatchClause struct {
	Param Pat
	Body  *Block
}

type Try struct {
	Block     *Block
	Handler   *CatchClause
	Finalizer *Block
}

// For loop heads that declare variables are kept as Raw expressions.
type For struct {
	Init   Expr
	Test   Expr
	Update Expr
	Body   Stmt
}

type ForIn struct {
	Left  Expr
	Right Expr
	Body  Stmt
}

type ForOf struct {
	Left  Expr
	Right Expr
	Body  Stmt
	Await bool
}

type While struct {
	Test Expr
	Body Stmt
}

type DoWhile struct {
	Body Stmt
	Test Expr
}

type Labeled struct {
	Label string
	Body  Stmt
}

type Break struct{ Label string }

type Continue struct{ Label string }

type Throw struct{ Arg Expr }

type Empty struct{}

type Declarator struct {
	Name Pat
	Init Expr
}

type VarDecl struct {
	Kind  string // "var", "let", "const"
	Decls []*Declarator
}

type FnDecl struct {
	Name *Ident
	Fn   *Function
}

type ClassDecl struct {
	Name  *Ident
	Class *Class
}

type RawStmt struct{ Text string }

func (*Block) isStmt()     {}
func (*ExprStmt) isStmt()  {}
func (*Return) isStmt()    {}
func (*If) isStmt()        {}
func (*Switch) isStmt()    {}
func (*Try) isStmt()       {}
func (*For) isStmt()       {}
func (*ForIn) isStmt()     {}
func (*ForOf) isStmt()     {}
func (*While) isStmt()     {}
func (*DoWhile) isStmt()   {}
func (*Labeled) isStmt()   {}
func (*Break) isStmt()     {}
func (*Continue) isStmt()  {}
func (*Throw) isStmt()     {}
func (*Empty) isStmt()     {}
func (*VarDecl) isStmt()   {}
func (*FnDecl) isStmt()    {}
func (*ClassDecl) isStmt() {}
func (*RawStmt) isStmt()   {}

func (*Block) isItem()     {}
func (*ExprStmt) isItem()  {}
func (*Return) isItem()    {}
func (*If) isItem()        {}
func (*Switch) isItem()    {}
func (*Try) isItem()       {}
func (*For) isItem()       {}
func (*ForIn) isItem()     {}
func (*ForOf) isItem()     {}
func (*While) isItem()     {}
func (*DoWhile) isItem()   {}
func (*Labeled) isItem()   {}
func (*Break) isItem()     {}
func (*Continue) isItem()  {}
func (*Throw) isItem()     {}
func (*Empty) isItem()     {}
func (*VarDecl) isItem()   {}
func (*FnDecl) isItem()    {}
func (*ClassDecl) isItem() {}
func (*RawStmt) isItem()   {}

// Module declarations

// ImportNamed is `{ Imported as Local }`; Imported is nil when unaliased.
type ImportNamed struct {
	Local    *Ident
	Imported *Ident
	TypeOnly bool
}

type ImportDefault struct{ Local *Ident }

type ImportNamespace struct{ Local *Ident }

func (*ImportNamed) isImportSpec()     {}
func (*ImportDefault) isImportSpec()   {}
func (*ImportNamespace) isImportSpec() {}

type ImportDecl struct {
	Specifiers []ImportSpec
	Source     *Str
	TypeOnly   bool
}

// ExportDecl is `export <decl>` for function, class and variable
// declarations.
type ExportDecl struct{ Decl Stmt }

// ExportDefaultDecl holds a *FnExpr or *ClassExpr.
type ExportDefaultDecl struct{ Decl DefaultDecl }

type ExportDefaultExpr struct{ X Expr }

type ExportSpec struct {
	Local    string
	Exported string // "" when not renamed
}

type ExportNamed struct {
	Specifiers []*ExportSpec
	Source     *Str // nil unless re-exporting
}

type ExportAll struct {
	Source   *Str
	Exported string
}

func (*FnExpr) isDefaultDecl()    {}
func (*ClassExpr) isDefaultDecl() {}

func (*ImportDecl) isItem()        {}
func (*ExportDecl) isItem()        {}
func (*ExportDefaultDecl) isItem() {}
func (*ExportDefaultExpr) isItem() {}
func (*ExportNamed) isItem()       {}
func (*ExportAll) isItem()         {}
