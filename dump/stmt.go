package dump

import "mibk.dev/hirdump/hir"

func (d *dumper) letStmt(s *hir.LetStmt) {
	d.begin("LetStmt", curly)

	if s.Pattern == nil {
		d.fatalf("let statement without a pattern")
	}
	d.put(s.Pattern.String(), false)
	if s.HasType() {
		d.put(": "+s.Type.String(), false)
	}

	if s.HasInitExpr() {
		d.begin("Expr", curly)
		d.node(s.Init)
		d.end("Expr", curly)
	}

	d.end("LetStmt", curly)
}

func (d *dumper) exprStmt(s *hir.ExprStmt) {
	d.node(s.Expr)
}
