package ast

import "github.com/indentlang/langcore/internal/token"

func (*Ident) exprNode()          {}
func (*Literal) exprNode()        {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*BoolOpExpr) exprNode()     {}
func (*CompareExpr) exprNode()    {}
func (*LambdaExpr) exprNode()     {}
func (*TernaryExpr) exprNode()    {}
func (*CallExpr) exprNode()       {}
func (*TupleExpr) exprNode()      {}
func (*AttributeExpr) exprNode()  {}
func (*SubscriptExpr) exprNode()  {}
func (*SliceExpr) exprNode()      {}
func (*GroupedExpr) exprNode()    {}
func (*ListExpr) exprNode()       {}
func (*DictExpr) exprNode()       {}
func (*SetExpr) exprNode()        {}
func (*ComprehensionExpr) exprNode() {}
func (*FStringExpr) exprNode()    {}

// LiteralKind distinguishes the literal forms (spec §3).
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitBool
	LitNone
)

// Ident is an identifier reference.
type Ident struct {
	NodeMeta
	Name string
}

func (n *Ident) Meta() NodeMeta { return n.NodeMeta }

// Literal is a number/string/bool/none literal.
type Literal struct {
	NodeMeta
	Kind LiteralKind

	Raw string // source text, preserved verbatim

	// String-literal detail, populated when Kind == LitString.
	StringStyle   token.StringStyle
	StringValue   string
	StringEscaped bool

	// Bool-literal detail, populated when Kind == LitBool.
	BoolValue bool
}

func (n *Literal) Meta() NodeMeta { return n.NodeMeta }

// BinaryExpr is a binary operator application (spec §3, §4.4).
type BinaryExpr struct {
	NodeMeta
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Meta() NodeMeta { return n.NodeMeta }

// UnaryExpr is a prefix unary operator application.
type UnaryExpr struct {
	NodeMeta
	Op      UnaryOp
	Operand Expr
}

func (n *UnaryExpr) Meta() NodeMeta { return n.NodeMeta }

// BoolOpExpr is a short-circuit boolean expression with a flattened operand
// list (spec §3 "bool-op (short-circuit and/or with flattened operand
// lists)").
type BoolOpExpr struct {
	NodeMeta
	Op       BoolOp
	Operands []Expr
}

func (n *BoolOpExpr) Meta() NodeMeta { return n.NodeMeta }

// CompareExpr is a chained comparison: one left operand plus aligned
// operator/comparator lists (spec §3, invariant len(Ops) == len(Comparators) >= 1).
type CompareExpr struct {
	NodeMeta
	Left        Expr
	Ops         []CompareOp
	Comparators []Expr
}

func (n *CompareExpr) Meta() NodeMeta { return n.NodeMeta }

// LambdaExpr is a lambda expression.
type LambdaExpr struct {
	NodeMeta
	Params []string
	Body   Expr
}

func (n *LambdaExpr) Meta() NodeMeta { return n.NodeMeta }

// TernaryExpr is a conditional (if/else) expression: `Then if Cond else Else`.
type TernaryExpr struct {
	NodeMeta
	Then Expr
	Cond Expr
	Else Expr
}

func (n *TernaryExpr) Meta() NodeMeta { return n.NodeMeta }

// Keyword is a single `name = value` keyword argument in a call.
type Keyword struct {
	Name  string
	Value Expr
}

// CallExpr is a function call: positional args first, then named keyword
// args (spec §3, §4.4 "Postfix").
type CallExpr struct {
	NodeMeta
	Func     Expr
	Args     []Expr
	Keywords []Keyword
}

func (n *CallExpr) Meta() NodeMeta { return n.NodeMeta }

// TupleExpr is a tuple literal.
type TupleExpr struct {
	NodeMeta
	Elements []Expr
}

func (n *TupleExpr) Meta() NodeMeta { return n.NodeMeta }

// AttributeExpr is `Target.Attr`.
type AttributeExpr struct {
	NodeMeta
	Target Expr
	Attr   string
}

func (n *AttributeExpr) Meta() NodeMeta { return n.NodeMeta }

// SubscriptExpr is `Target[Index]`.
type SubscriptExpr struct {
	NodeMeta
	Target Expr
	Index  Expr
}

func (n *SubscriptExpr) Meta() NodeMeta { return n.NodeMeta }

// SliceExpr is `Lower:Upper:Step`, each component optional; it only ever
// appears as a SubscriptExpr's Index (spec §4.4 "Postfix").
type SliceExpr struct {
	NodeMeta
	Lower Expr
	Upper Expr
	Step  Expr
}

func (n *SliceExpr) Meta() NodeMeta { return n.NodeMeta }

// GroupedExpr is an explicitly parenthesized expression (spec §3, §8
// "Pretty round-trip ... unwraps Grouped nodes on either side").
type GroupedExpr struct {
	NodeMeta
	Inner Expr
}

func (n *GroupedExpr) Meta() NodeMeta { return n.NodeMeta }

// ListExpr is a list literal.
type ListExpr struct {
	NodeMeta
	Elements []Expr
}

func (n *ListExpr) Meta() NodeMeta { return n.NodeMeta }

// DictEntry is one `Key: Value` pair of a dict literal or comprehension.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictExpr is a dict literal.
type DictExpr struct {
	NodeMeta
	Entries []DictEntry
}

func (n *DictExpr) Meta() NodeMeta { return n.NodeMeta }

// SetExpr is a set literal.
type SetExpr struct {
	NodeMeta
	Elements []Expr
}

func (n *SetExpr) Meta() NodeMeta { return n.NodeMeta }

// ComprehensionKind distinguishes the four comprehension forms (spec §3).
type ComprehensionKind int

const (
	ListComprehension ComprehensionKind = iota
	SetComprehension
	GeneratorComprehension
	DictComprehension
)

// ForClause is one `for Target in Iterable [if Guard]*` clause of a
// comprehension (spec §3 "Expressions").
type ForClause struct {
	Target   Expr
	Iterable Expr
	Guards   []Expr
}

// ComprehensionExpr covers list/set/generator/dict comprehensions: an
// element (or Key/Value pair for dict) plus one or more ForClauses.
type ComprehensionExpr struct {
	NodeMeta
	Kind ComprehensionKind

	Element Expr // populated for list/set/generator
	Key     Expr // populated for dict
	Value   Expr // populated for dict

	For []ForClause
}

func (n *ComprehensionExpr) Meta() NodeMeta { return n.NodeMeta }

// FStringExpr is an f-string: a sequence of literal and embedded-expression
// parts (spec §3, §4.4 "F-string sub-parse").
type FStringExpr struct {
	NodeMeta
	Style token.StringStyle
	Parts []FStringPart
}

func (n *FStringExpr) Meta() NodeMeta { return n.NodeMeta }

// FStringPartKind distinguishes a literal text segment from an embedded
// expression.
type FStringPartKind int

const (
	FStrLiteral FStringPartKind = iota
	FStrExpr
)

// FStringPart is one segment of an f-string.
type FStringPart struct {
	Kind FStringPartKind
	Text string // populated when Kind == FStrLiteral
	Expr Expr   // populated when Kind == FStrExpr
}
