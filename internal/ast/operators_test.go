package ast

import "testing"

func TestBinaryOpPrecedenceLadder(t *testing.T) {
	if Add.Precedence() != Sub.Precedence() {
		t.Error("Add and Sub should share a precedence level")
	}
	if Mul.Precedence() != Div.Precedence() || Mul.Precedence() != Mod.Precedence() || Mul.Precedence() != FloorDiv.Precedence() {
		t.Error("Mul, Div, Mod, FloorDiv should share a precedence level")
	}
	if Add.Precedence() >= Mul.Precedence() {
		t.Errorf("additive precedence %d must be lower than multiplicative %d", Add.Precedence(), Mul.Precedence())
	}
	if Mul.Precedence() >= Pow.Precedence() {
		t.Errorf("multiplicative precedence %d must be lower than power %d", Mul.Precedence(), Pow.Precedence())
	}
}

func TestBinaryOpAssociativity(t *testing.T) {
	for _, op := range []BinaryOp{Add, Sub, Mul, Div, Mod, FloorDiv} {
		if op.Associativity() != LeftAssoc {
			t.Errorf("%s.Associativity() = %v, want LeftAssoc", op, op.Associativity())
		}
	}
	if Pow.Associativity() != RightAssoc {
		t.Errorf("Pow.Associativity() = %v, want RightAssoc", Pow.Associativity())
	}
}

func TestPrecedenceLevelOrdering(t *testing.T) {
	levels := []int{
		PrecLambda, PrecTernary, PrecOr, PrecAnd, PrecCompare,
		PrecAdditive, PrecMultiplicative, PrecPower, PrecUnary, PrecPostfix,
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("precedence level %d (%d) must exceed level %d (%d)", i, levels[i], i-1, levels[i-1])
		}
	}
}

func TestCompareOpString(t *testing.T) {
	cases := map[CompareOp]string{
		CmpEq: "==", CmpNotEq: "!=", CmpLt: "<", CmpLe: "<=",
		CmpGt: ">", CmpGe: ">=", CmpIn: "in", CmpNotIn: "not in",
		CmpIs: "is", CmpIsNot: "is not",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("CompareOp(%d).String() = %q, want %q", op, got, want)
		}
	}
}
