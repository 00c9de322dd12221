package ast

// CompareOp is the closed comparison-operator enum (spec §3 "Operators").
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNotEq
	CmpLt
	CmpLe
	CmpGt
	CmpGe
	CmpIn
	CmpNotIn
	CmpIs
	CmpIsNot
)

var compareOpText = map[CompareOp]string{
	CmpEq: "==", CmpNotEq: "!=", CmpLt: "<", CmpLe: "<=", CmpGt: ">", CmpGe: ">=",
	CmpIn: "in", CmpNotIn: "not in", CmpIs: "is", CmpIsNot: "is not",
}

func (o CompareOp) String() string { return compareOpText[o] }

// BoolOp is the closed short-circuit boolean operator enum.
type BoolOp int

const (
	BoolAnd BoolOp = iota
	BoolOr
)

func (o BoolOp) String() string {
	if o == BoolOr {
		return "or"
	}
	return "and"
}

// UnaryOp is the closed unary operator enum.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
)

func (o UnaryOp) String() string {
	if o == UnaryNot {
		return "not"
	}
	return "-"
}

// Assoc is operator associativity.
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// BinaryOp is the closed binary-operator enum (spec §3 "Operators",
// §4.4 precedence table).
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	FloorDiv
	Pow
)

var binaryOpText = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", FloorDiv: "//", Pow: "**",
}

func (o BinaryOp) String() string { return binaryOpText[o] }

// binaryOpInfo holds the fixed precedence/associativity of a binary
// operator, per spec §4.4's precedence table:
//
//	level 5: + -      left
//	level 6: * / % //  left
//	level 7: **        right
type binaryOpInfo struct {
	Precedence int
	Assoc      Assoc
}

var binaryOpTable = map[BinaryOp]binaryOpInfo{
	Add:      {Precedence: PrecAdditive, Assoc: LeftAssoc},
	Sub:      {Precedence: PrecAdditive, Assoc: LeftAssoc},
	Mul:      {Precedence: PrecMultiplicative, Assoc: LeftAssoc},
	Div:      {Precedence: PrecMultiplicative, Assoc: LeftAssoc},
	Mod:      {Precedence: PrecMultiplicative, Assoc: LeftAssoc},
	FloorDiv: {Precedence: PrecMultiplicative, Assoc: LeftAssoc},
	Pow:      {Precedence: PrecPower, Assoc: RightAssoc},
}

// Precedence returns the binding power of o; higher binds tighter.
func (o BinaryOp) Precedence() int { return binaryOpTable[o].Precedence }

// Associativity returns the associativity of o.
func (o BinaryOp) Associativity() Assoc { return binaryOpTable[o].Assoc }

// Precedence levels, spec §4.4. These are shared between the parser (to
// decide how tightly to bind) and the renderer (to decide when to
// parenthesize) — the operator table is the single source of truth for
// both, per spec §9 "Design notes".
const (
	PrecLambda = iota
	PrecTernary
	PrecOr
	PrecAnd
	PrecCompare
	PrecAdditive
	PrecMultiplicative
	PrecPower
	PrecUnary
	PrecPostfix
)
