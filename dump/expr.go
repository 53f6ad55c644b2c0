package dump

import "mibk.dev/hirdump/hir"

func (d *dumper) literalExpr(e *hir.LiteralExpr) {
	d.put(e.Literal.String()+" "+e.Mappings().String(), false)
}

func arithmeticOrLogicalSymbol(op hir.ArithmeticOrLogicalOperator) (string, bool) {
	switch op {
	case hir.Add:
		return "+", true
	case hir.Subtract:
		return "-", true
	case hir.Multiply:
		return "*", true
	case hir.Divide:
		return "/", true
	case hir.Modulus:
		return "%", true
	case hir.BitwiseAnd:
		return "&", true
	case hir.BitwiseOr:
		return "|", true
	case hir.BitwiseXor:
		return "^", true
	case hir.LeftShift:
		return "<<", true
	case hir.RightShift:
		return ">>", true
	}
	return "", false
}

// arithmeticOrLogicalExpr has no frame of its own;
// the operator gets a line between the operands.
func (d *dumper) arithmeticOrLogicalExpr(e *hir.ArithmeticOrLogicalExpr) {
	op, ok := arithmeticOrLogicalSymbol(e.Op)
	if !ok {
		d.fatalf("unknown arithmetic or logical operator %d", e.Op)
	}
	d.node(e.LHS)
	d.put("", true)
	d.put(op, true)
	d.node(e.RHS)
}

func (d *dumper) arrayExpr(e *hir.ArrayExpr) {
	d.begin("ArrayExpr", curly)
	d.innerAttrs(e.InnerAttrs)
	d.put(e.String(), true)
	d.end("ArrayExpr", curly)
}

func (d *dumper) blockExpr(b *hir.BlockExpr) {
	if b == nil {
		d.fatalf("missing block")
	}
	d.begin("BlockExpr", square)
	d.innerAttrs(b.InnerAttrs)

	for _, s := range b.Stmts {
		d.begin("Stmt", curly)
		d.node(s)
		d.end("Stmt", curly)
	}

	// Only summarized.
	if b.HasExpr() {
		d.put("final expression: "+b.Expr.String(), true)
	}
	d.end("BlockExpr", square)
}

func (d *dumper) ifExpr(e *hir.IfExpr) {
	d.begin("IfExpr", curly)

	d.begin("condition", curly)
	d.node(e.Cond)
	d.end("condition", curly)

	d.begin("if_block", curly)
	d.blockExpr(e.Block)
	d.end("if_block", curly)

	d.end("IfExpr", curly)
}
