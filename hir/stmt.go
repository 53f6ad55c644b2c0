package hir

type EmptyStmt struct {
	Base
}

func (s *EmptyStmt) String() string { return ";" }

// LetStmt binds a pattern, optionally annotated and initialized.
type LetStmt struct {
	Base
	Pattern Pattern
	Type    Type // may be nil
	Init    Expr // may be nil
}

func (s *LetStmt) HasType() bool     { return s.Type != nil }
func (s *LetStmt) HasInitExpr() bool { return s.Init != nil }

func (s *LetStmt) String() string {
	out := "let " + str(s.Pattern)
	if s.HasType() {
		out += ": " + s.Type.String()
	}
	if s.HasInitExpr() {
		out += " = " + s.Init.String()
	}
	return out + ";"
}

type ExprStmt struct {
	Base
	Expr      Expr
	Semicolon bool
}

func (s *ExprStmt) String() string {
	if s.Semicolon {
		return str(s.Expr) + ";"
	}
	return str(s.Expr)
}

func (*EmptyStmt) Kind() Kind { return KindEmptyStmt }
func (*LetStmt) Kind() Kind   { return KindLetStmt }
func (*ExprStmt) Kind() Kind  { return KindExprStmt }

func (*EmptyStmt) stmtNode() {}
func (*LetStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()  {}
