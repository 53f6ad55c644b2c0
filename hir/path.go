package hir

import "strings"

// PathExprSegment is one segment of an expression path, e.g. Vec::<u8>.
type PathExprSegment struct {
	Ident    string
	Generics []Type
}

func (s PathExprSegment) String() string {
	if len(s.Generics) == 0 {
		return s.Ident
	}
	return s.Ident + "::<" + joinNodes(s.Generics, ", ") + ">"
}

func joinSegments(segs []PathExprSegment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, "::")
}

// PathInExpression is a path used as an expression or a pattern.
type PathInExpression struct {
	Base
	Segments []PathExprSegment
	Global   bool // starts with ::
}

func (p *PathInExpression) String() string {
	s := joinSegments(p.Segments)
	if p.Global {
		s = "::" + s
	}
	return s
}

type QualifiedPathInExpression struct {
	Base
	QualifiedType Type
	Trait         *TypePath // may be nil
	Segments      []PathExprSegment
}

func (p *QualifiedPathInExpression) String() string {
	return qualifiedPrefix(p.QualifiedType, p.Trait) + "::" + joinSegments(p.Segments)
}

func qualifiedPrefix(t Type, trait *TypePath) string {
	s := "<" + str(t)
	if trait != nil {
		s += " as " + trait.String()
	}
	return s + ">"
}

// TypeSegment is a segment of a [TypePath].
type TypeSegment interface {
	Node
	typeSegmentNode()
}

type TypePathSegment struct {
	Base
	Ident string
}

func (s *TypePathSegment) String() string { return s.Ident }

type TypePathSegmentGeneric struct {
	Base
	Ident     string
	Lifetimes []*Lifetime
	Args      []Type
}

func (s *TypePathSegmentGeneric) String() string {
	args := make([]string, 0, len(s.Lifetimes)+len(s.Args))
	for _, l := range s.Lifetimes {
		args = append(args, l.String())
	}
	for _, t := range s.Args {
		args = append(args, t.String())
	}
	return s.Ident + "<" + strings.Join(args, ", ") + ">"
}

type TypePathSegmentFunction struct {
	Base
	Ident  string
	Inputs []Type
	Return Type
}

func (s *TypePathSegmentFunction) String() string {
	return s.Ident + "(" + joinNodes(s.Inputs, ", ") + ")" + returns(s.Return)
}

type TypePath struct {
	Base
	Segments []TypeSegment
	Global   bool
}

func (p *TypePath) String() string {
	s := joinNodes(p.Segments, "::")
	if p.Global {
		s = "::" + s
	}
	return s
}

type QualifiedPathInType struct {
	Base
	QualifiedType Type
	Trait         *TypePath
	Segments      []TypeSegment
}

func (p *QualifiedPathInType) String() string {
	return qualifiedPrefix(p.QualifiedType, p.Trait) + "::" + joinNodes(p.Segments, "::")
}

func returns(t Type) string {
	if t == nil {
		return ""
	}
	return " -> " + t.String()
}

func (*PathInExpression) Kind() Kind          { return KindPathInExpression }
func (*QualifiedPathInExpression) Kind() Kind { return KindQualifiedPathInExpression }
func (*TypePathSegment) Kind() Kind           { return KindTypePathSegment }
func (*TypePathSegmentGeneric) Kind() Kind    { return KindTypePathSegmentGeneric }
func (*TypePathSegmentFunction) Kind() Kind   { return KindTypePathSegmentFunction }
func (*TypePath) Kind() Kind                  { return KindTypePath }
func (*QualifiedPathInType) Kind() Kind       { return KindQualifiedPathInType }

func (*PathInExpression) exprNode()             {}
func (*PathInExpression) patternNode()          {}
func (*QualifiedPathInExpression) exprNode()    {}
func (*QualifiedPathInExpression) patternNode() {}

func (*TypePathSegment) typeSegmentNode()         {}
func (*TypePathSegmentGeneric) typeSegmentNode()  {}
func (*TypePathSegmentFunction) typeSegmentNode() {}

func (*TypePath) typeNode()            {}
func (*QualifiedPathInType) typeNode() {}
