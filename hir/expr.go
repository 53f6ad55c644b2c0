package hir

import (
	"strconv"
	"strings"
)

// Literal is the token of a literal expression or pattern.
type Literal struct {
	Type LiteralKind
	Text string // unquoted
}

func (l Literal) String() string {
	switch l.Type {
	case CharLit:
		return "'" + l.Text + "'"
	case ByteLit:
		return "b'" + l.Text + "'"
	case StringLit:
		return `"` + l.Text + `"`
	case ByteStringLit:
		return `b"` + l.Text + `"`
	}
	return l.Text
}

type LiteralExpr struct {
	Base
	Literal Literal
}

func (e *LiteralExpr) String() string { return e.Literal.String() }

type BorrowExpr struct {
	Base
	Expr   Expr
	Mut    bool
	Double bool
}

func (e *BorrowExpr) String() string {
	s := "&"
	if e.Double {
		s += "&"
	}
	if e.Mut {
		s += "mut "
	}
	return s + str(e.Expr)
}

type DereferenceExpr struct {
	Base
	Expr Expr
}

func (e *DereferenceExpr) String() string { return "*" + str(e.Expr) }

// ErrorPropagationExpr is the ? operator.
type ErrorPropagationExpr struct {
	Base
	Expr Expr
}

func (e *ErrorPropagationExpr) String() string { return str(e.Expr) + "?" }

type NegationExpr struct {
	Base
	Expr Expr
	Not  bool // ! instead of -
}

func (e *NegationExpr) String() string {
	if e.Not {
		return "!" + str(e.Expr)
	}
	return "-" + str(e.Expr)
}

type ArithmeticOrLogicalExpr struct {
	Base
	Op       ArithmeticOrLogicalOperator
	LHS, RHS Expr
}

func (e *ArithmeticOrLogicalExpr) String() string {
	return str(e.LHS) + " " + e.Op.String() + " " + str(e.RHS)
}

type ComparisonExpr struct {
	Base
	Op       ComparisonOperator
	LHS, RHS Expr
}

func (e *ComparisonExpr) String() string {
	return str(e.LHS) + " " + e.Op.String() + " " + str(e.RHS)
}

type LazyBooleanExpr struct {
	Base
	Op       LazyBooleanOperator
	LHS, RHS Expr
}

func (e *LazyBooleanExpr) String() string {
	return str(e.LHS) + " " + e.Op.String() + " " + str(e.RHS)
}

type TypeCastExpr struct {
	Base
	Expr Expr
	Type Type
}

func (e *TypeCastExpr) String() string { return str(e.Expr) + " as " + str(e.Type) }

type AssignmentExpr struct {
	Base
	LHS, RHS Expr
}

func (e *AssignmentExpr) String() string { return str(e.LHS) + " = " + str(e.RHS) }

type CompoundAssignmentExpr struct {
	Base
	Op       ArithmeticOrLogicalOperator
	LHS, RHS Expr
}

func (e *CompoundAssignmentExpr) String() string {
	return str(e.LHS) + " " + e.Op.String() + "= " + str(e.RHS)
}

type GroupedExpr struct {
	Base
	InnerAttrs []Attribute
	Expr       Expr
}

func (e *GroupedExpr) String() string { return "(" + str(e.Expr) + ")" }

// ArrayElems is the contents of an [ArrayExpr].
type ArrayElems interface {
	Node
	arrayElemsNode()
}

type ArrayElemsValues struct {
	Base
	Values []Expr
}

func (e *ArrayElemsValues) String() string { return joinNodes(e.Values, ", ") }

// ArrayElemsCopied is the [elem; count] form.
type ArrayElemsCopied struct {
	Base
	Elem  Expr
	Count Expr
}

func (e *ArrayElemsCopied) String() string { return str(e.Elem) + "; " + str(e.Count) }

type ArrayExpr struct {
	Base
	InnerAttrs []Attribute
	Elems      ArrayElems // nil for []
}

func (e *ArrayExpr) String() string { return "[" + str(e.Elems) + "]" }

type ArrayIndexExpr struct {
	Base
	Array, Index Expr
}

func (e *ArrayIndexExpr) String() string { return str(e.Array) + "[" + str(e.Index) + "]" }

type TupleExpr struct {
	Base
	InnerAttrs []Attribute
	Elems      []Expr
}

func (e *TupleExpr) String() string {
	if len(e.Elems) == 1 {
		return "(" + e.Elems[0].String() + ",)"
	}
	return "(" + joinNodes(e.Elems, ", ") + ")"
}

type TupleIndexExpr struct {
	Base
	Tuple Expr
	Index int
}

func (e *TupleIndexExpr) String() string { return str(e.Tuple) + "." + strconv.Itoa(e.Index) }

// StructExprStruct is a struct expression without fields: S {}.
type StructExprStruct struct {
	Base
	Path *PathInExpression
}

func (e *StructExprStruct) String() string { return e.Path.String() + " {}" }

// StructExprField is a field initializer of a [StructExprStructFields].
type StructExprField interface {
	Node
	structExprFieldNode()
}

// StructExprFieldIdentifier is the shorthand field form: S { x }.
type StructExprFieldIdentifier struct {
	Base
	Field string
}

func (f *StructExprFieldIdentifier) String() string { return f.Field }

type StructExprFieldIdentifierValue struct {
	Base
	Field string
	Value Expr
}

func (f *StructExprFieldIdentifierValue) String() string { return f.Field + ": " + str(f.Value) }

type StructExprFieldIndexValue struct {
	Base
	Index int
	Value Expr
}

func (f *StructExprFieldIndexValue) String() string {
	return strconv.Itoa(f.Index) + ": " + str(f.Value)
}

type StructExprStructFields struct {
	Base
	Path   *PathInExpression
	Fields []StructExprField
	Rest   *StructExprStructBase // may be nil
}

func (e *StructExprStructFields) String() string {
	parts := make([]string, 0, len(e.Fields)+1)
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	if e.Rest != nil {
		parts = append(parts, e.Rest.String())
	}
	return e.Path.String() + " { " + strings.Join(parts, ", ") + " }"
}

// StructExprStructBase is the functional update syntax: ..base.
type StructExprStructBase struct {
	Base
	Expr Expr
}

func (b *StructExprStructBase) String() string { return ".." + str(b.Expr) }

type CallExpr struct {
	Base
	Fn   Expr
	Args []Expr
}

func (e *CallExpr) String() string { return str(e.Fn) + "(" + joinNodes(e.Args, ", ") + ")" }

type MethodCallExpr struct {
	Base
	Receiver Expr
	Method   PathExprSegment
	Args     []Expr
}

func (e *MethodCallExpr) String() string {
	return str(e.Receiver) + "." + e.Method.String() + "(" + joinNodes(e.Args, ", ") + ")"
}

type FieldAccessExpr struct {
	Base
	Receiver Expr
	Field    string
}

func (e *FieldAccessExpr) String() string { return str(e.Receiver) + "." + e.Field }

type ClosureParam struct {
	Pattern Pattern
	Type    Type // may be nil
}

func (p ClosureParam) String() string {
	if p.Type == nil {
		return str(p.Pattern)
	}
	return str(p.Pattern) + ": " + p.Type.String()
}

type ClosureExpr struct {
	Base
	Move   bool
	Params []ClosureParam
	Return Type
	Body   Expr
}

func (e *ClosureExpr) String() string {
	var b strings.Builder
	if e.Move {
		b.WriteString("move ")
	}
	b.WriteByte('|')
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("|")
	b.WriteString(returns(e.Return))
	b.WriteString(" " + str(e.Body))
	return b.String()
}

type BlockExpr struct {
	Base
	InnerAttrs []Attribute
	Stmts      []Stmt
	Expr       Expr // trailing expression; may be nil
}

func (e *BlockExpr) HasStatements() bool { return len(e.Stmts) > 0 }
func (e *BlockExpr) HasExpr() bool       { return e.Expr != nil }

func (e *BlockExpr) String() string {
	if e == nil || !e.HasStatements() && !e.HasExpr() {
		return "{}"
	}
	parts := make([]string, 0, len(e.Stmts)+1)
	for _, s := range e.Stmts {
		parts = append(parts, s.String())
	}
	if e.HasExpr() {
		parts = append(parts, e.Expr.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func label(l *Lifetime) string {
	if l == nil {
		return ""
	}
	return l.String() + ": "
}

type ContinueExpr struct {
	Base
	Label *Lifetime
}

func (e *ContinueExpr) String() string {
	if e.Label == nil {
		return "continue"
	}
	return "continue " + e.Label.String()
}

type BreakExpr struct {
	Base
	Label *Lifetime
	Expr  Expr
}

func (e *BreakExpr) String() string {
	s := "break"
	if e.Label != nil {
		s += " " + e.Label.String()
	}
	if e.Expr != nil {
		s += " " + e.Expr.String()
	}
	return s
}

type RangeFromToExpr struct {
	Base
	From, To Expr
}

func (e *RangeFromToExpr) String() string { return str(e.From) + ".." + str(e.To) }

type RangeFromExpr struct {
	Base
	From Expr
}

func (e *RangeFromExpr) String() string { return str(e.From) + ".." }

type RangeToExpr struct {
	Base
	To Expr
}

func (e *RangeToExpr) String() string { return ".." + str(e.To) }

type RangeFullExpr struct {
	Base
}

func (e *RangeFullExpr) String() string { return ".." }

type RangeFromToInclExpr struct {
	Base
	From, To Expr
}

func (e *RangeFromToInclExpr) String() string { return str(e.From) + "..=" + str(e.To) }

type RangeToInclExpr struct {
	Base
	To Expr
}

func (e *RangeToInclExpr) String() string { return "..=" + str(e.To) }

type ReturnExpr struct {
	Base
	Expr Expr // may be nil
}

func (e *ReturnExpr) String() string {
	if e.Expr == nil {
		return "return"
	}
	return "return " + e.Expr.String()
}

type UnsafeBlockExpr struct {
	Base
	Block *BlockExpr
}

func (e *UnsafeBlockExpr) String() string { return "unsafe " + e.Block.String() }

type LoopExpr struct {
	Base
	Label *Lifetime
	Body  *BlockExpr
}

func (e *LoopExpr) String() string { return label(e.Label) + "loop " + e.Body.String() }

type WhileLoopExpr struct {
	Base
	Label *Lifetime
	Cond  Expr
	Body  *BlockExpr
}

func (e *WhileLoopExpr) String() string {
	return label(e.Label) + "while " + str(e.Cond) + " " + e.Body.String()
}

type WhileLetLoopExpr struct {
	Base
	Label     *Lifetime
	Patterns  []Pattern
	Scrutinee Expr
	Body      *BlockExpr
}

func (e *WhileLetLoopExpr) String() string {
	return label(e.Label) + "while let " + joinNodes(e.Patterns, " | ") + " = " +
		str(e.Scrutinee) + " " + e.Body.String()
}

type ForLoopExpr struct {
	Base
	Label   *Lifetime
	Pattern Pattern
	Iter    Expr
	Body    *BlockExpr
}

func (e *ForLoopExpr) String() string {
	return label(e.Label) + "for " + str(e.Pattern) + " in " + str(e.Iter) + " " + e.Body.String()
}

// IfExpr is an if without an else branch.
type IfExpr struct {
	Base
	Cond  Expr
	Block *BlockExpr
}

func (e *IfExpr) String() string { return "if " + str(e.Cond) + " " + e.Block.String() }

type IfExprConseqElse struct {
	Base
	Cond  Expr
	Block *BlockExpr
	Else  Expr // *BlockExpr or another if
}

func (e *IfExprConseqElse) String() string {
	return "if " + str(e.Cond) + " " + e.Block.String() + " else " + str(e.Else)
}

type IfLetExpr struct {
	Base
	Patterns  []Pattern
	Scrutinee Expr
	Block     *BlockExpr
}

func (e *IfLetExpr) String() string {
	return "if let " + joinNodes(e.Patterns, " | ") + " = " + str(e.Scrutinee) + " " + e.Block.String()
}

type IfLetExprConseqElse struct {
	Base
	Patterns  []Pattern
	Scrutinee Expr
	Block     *BlockExpr
	Else      Expr
}

func (e *IfLetExprConseqElse) String() string {
	return "if let " + joinNodes(e.Patterns, " | ") + " = " + str(e.Scrutinee) + " " +
		e.Block.String() + " else " + str(e.Else)
}

type MatchArm struct {
	Patterns []Pattern
	Guard    Expr // may be nil
}

func (a MatchArm) String() string {
	s := joinNodes(a.Patterns, " | ")
	if a.Guard != nil {
		s += " if " + a.Guard.String()
	}
	return s
}

type MatchCase struct {
	Arm  MatchArm
	Expr Expr
}

type MatchExpr struct {
	Base
	InnerAttrs []Attribute
	Scrutinee  Expr
	Cases      []MatchCase
}

func (e *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString("match " + str(e.Scrutinee) + " {")
	for i, c := range e.Cases {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(" " + c.Arm.String() + " => " + str(c.Expr))
	}
	b.WriteString(" }")
	return b.String()
}

type AwaitExpr struct {
	Base
	Expr Expr
}

func (e *AwaitExpr) String() string { return str(e.Expr) + ".await" }

type AsyncBlockExpr struct {
	Base
	Move  bool
	Block *BlockExpr
}

func (e *AsyncBlockExpr) String() string {
	if e.Move {
		return "async move " + e.Block.String()
	}
	return "async " + e.Block.String()
}

func (*LiteralExpr) Kind() Kind                    { return KindLiteralExpr }
func (*BorrowExpr) Kind() Kind                     { return KindBorrowExpr }
func (*DereferenceExpr) Kind() Kind                { return KindDereferenceExpr }
func (*ErrorPropagationExpr) Kind() Kind           { return KindErrorPropagationExpr }
func (*NegationExpr) Kind() Kind                   { return KindNegationExpr }
func (*ArithmeticOrLogicalExpr) Kind() Kind        { return KindArithmeticOrLogicalExpr }
func (*ComparisonExpr) Kind() Kind                 { return KindComparisonExpr }
func (*LazyBooleanExpr) Kind() Kind                { return KindLazyBooleanExpr }
func (*TypeCastExpr) Kind() Kind                   { return KindTypeCastExpr }
func (*AssignmentExpr) Kind() Kind                 { return KindAssignmentExpr }
func (*CompoundAssignmentExpr) Kind() Kind         { return KindCompoundAssignmentExpr }
func (*GroupedExpr) Kind() Kind                    { return KindGroupedExpr }
func (*ArrayElemsValues) Kind() Kind               { return KindArrayElemsValues }
func (*ArrayElemsCopied) Kind() Kind               { return KindArrayElemsCopied }
func (*ArrayExpr) Kind() Kind                      { return KindArrayExpr }
func (*ArrayIndexExpr) Kind() Kind                 { return KindArrayIndexExpr }
func (*TupleExpr) Kind() Kind                      { return KindTupleExpr }
func (*TupleIndexExpr) Kind() Kind                 { return KindTupleIndexExpr }
func (*StructExprStruct) Kind() Kind               { return KindStructExprStruct }
func (*StructExprFieldIdentifier) Kind() Kind      { return KindStructExprFieldIdentifier }
func (*StructExprFieldIdentifierValue) Kind() Kind { return KindStructExprFieldIdentifierValue }
func (*StructExprFieldIndexValue) Kind() Kind      { return KindStructExprFieldIndexValue }
func (*StructExprStructFields) Kind() Kind         { return KindStructExprStructFields }
func (*StructExprStructBase) Kind() Kind           { return KindStructExprStructBase }
func (*CallExpr) Kind() Kind                       { return KindCallExpr }
func (*MethodCallExpr) Kind() Kind                 { return KindMethodCallExpr }
func (*FieldAccessExpr) Kind() Kind                { return KindFieldAccessExpr }
func (*ClosureExpr) Kind() Kind                    { return KindClosureExpr }
func (*BlockExpr) Kind() Kind                      { return KindBlockExpr }
func (*ContinueExpr) Kind() Kind                   { return KindContinueExpr }
func (*BreakExpr) Kind() Kind                      { return KindBreakExpr }
func (*RangeFromToExpr) Kind() Kind                { return KindRangeFromToExpr }
func (*RangeFromExpr) Kind() Kind                  { return KindRangeFromExpr }
func (*RangeToExpr) Kind() Kind                    { return KindRangeToExpr }
func (*RangeFullExpr) Kind() Kind                  { return KindRangeFullExpr }
func (*RangeFromToInclExpr) Kind() Kind            { return KindRangeFromToInclExpr }
func (*RangeToInclExpr) Kind() Kind                { return KindRangeToInclExpr }
func (*ReturnExpr) Kind() Kind                     { return KindReturnExpr }
func (*UnsafeBlockExpr) Kind() Kind                { return KindUnsafeBlockExpr }
func (*LoopExpr) Kind() Kind                       { return KindLoopExpr }
func (*WhileLoopExpr) Kind() Kind                  { return KindWhileLoopExpr }
func (*WhileLetLoopExpr) Kind() Kind               { return KindWhileLetLoopExpr }
func (*ForLoopExpr) Kind() Kind                    { return KindForLoopExpr }
func (*IfExpr) Kind() Kind                         { return KindIfExpr }
func (*IfExprConseqElse) Kind() Kind               { return KindIfExprConseqElse }
func (*IfLetExpr) Kind() Kind                      { return KindIfLetExpr }
func (*IfLetExprConseqElse) Kind() Kind            { return KindIfLetExprConseqElse }
func (*MatchExpr) Kind() Kind                      { return KindMatchExpr }
func (*AwaitExpr) Kind() Kind                      { return KindAwaitExpr }
func (*AsyncBlockExpr) Kind() Kind                 { return KindAsyncBlockExpr }

func (*LiteralExpr) exprNode()             {}
func (*BorrowExpr) exprNode()              {}
func (*DereferenceExpr) exprNode()         {}
func (*ErrorPropagationExpr) exprNode()    {}
func (*NegationExpr) exprNode()            {}
func (*ArithmeticOrLogicalExpr) exprNode() {}
func (*ComparisonExpr) exprNode()          {}
func (*LazyBooleanExpr) exprNode()         {}
func (*TypeCastExpr) exprNode()            {}
func (*AssignmentExpr) exprNode()          {}
func (*CompoundAssignmentExpr) exprNode()  {}
func (*GroupedExpr) exprNode()             {}
func (*ArrayExpr) exprNode()               {}
func (*ArrayIndexExpr) exprNode()          {}
func (*TupleExpr) exprNode()               {}
func (*TupleIndexExpr) exprNode()          {}
func (*StructExprStruct) exprNode()        {}
func (*StructExprStructFields) exprNode()  {}
func (*CallExpr) exprNode()                {}
func (*MethodCallExpr) exprNode()          {}
func (*FieldAccessExpr) exprNode()         {}
func (*ClosureExpr) exprNode()             {}
func (*BlockExpr) exprNode()               {}
func (*ContinueExpr) exprNode()            {}
func (*BreakExpr) exprNode()               {}
func (*RangeFromToExpr) exprNode()         {}
func (*RangeFromExpr) exprNode()           {}
func (*RangeToExpr) exprNode()             {}
func (*RangeFullExpr) exprNode()           {}
func (*RangeFromToInclExpr) exprNode()     {}
func (*RangeToInclExpr) exprNode()         {}
func (*ReturnExpr) exprNode()              {}
func (*UnsafeBlockExpr) exprNode()         {}
func (*LoopExpr) exprNode()                {}
func (*WhileLoopExpr) exprNode()           {}
func (*WhileLetLoopExpr) exprNode()        {}
func (*ForLoopExpr) exprNode()             {}
func (*IfExpr) exprNode()                  {}
func (*IfExprConseqElse) exprNode()        {}
func (*IfLetExpr) exprNode()               {}
func (*IfLetExprConseqElse) exprNode()     {}
func (*MatchExpr) exprNode()               {}
func (*AwaitExpr) exprNode()               {}
func (*AsyncBlockExpr) exprNode()          {}

func (*ArrayElemsValues) arrayElemsNode() {}
func (*ArrayElemsCopied) arrayElemsNode() {}

func (*StructExprFieldIdentifier) structExprFieldNode()      {}
func (*StructExprFieldIdentifierValue) structExprFieldNode() {}
func (*StructExprFieldIndexValue) structExprFieldNode()      {}
