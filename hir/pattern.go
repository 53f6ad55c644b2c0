package hir

import (
	"strconv"
	"strings"
)

type LiteralPattern struct {
	Base
	Literal Literal
}

func (p *LiteralPattern) String() string { return p.Literal.String() }

// IdentifierPattern binds a name, optionally by reference and with a
// sub-pattern: ref mut x @ Some(_).
type IdentifierPattern struct {
	Base
	Name string
	Ref  bool
	Mut  bool
	Sub  Pattern // may be nil
}

func (p *IdentifierPattern) String() string {
	s := ""
	if p.Ref {
		s += "ref "
	}
	if p.Mut {
		s += "mut "
	}
	s += p.Name
	if p.Sub != nil {
		s += " @ " + p.Sub.String()
	}
	return s
}

type WildcardPattern struct {
	Base
}

func (p *WildcardPattern) String() string { return "_" }

// RangePatternBound is one end of a [RangePattern].
type RangePatternBound interface {
	Node
	rangePatternBoundNode()
}

type RangePatternBoundLiteral struct {
	Base
	Literal  Literal
	Negative bool
}

func (b *RangePatternBoundLiteral) String() string {
	if b.Negative {
		return "-" + b.Literal.String()
	}
	return b.Literal.String()
}

type RangePatternBoundPath struct {
	Base
	Path *PathInExpression
}

func (b *RangePatternBoundPath) String() string { return b.Path.String() }

type RangePatternBoundQualPath struct {
	Base
	Path *QualifiedPathInExpression
}

func (b *RangePatternBoundQualPath) String() string { return b.Path.String() }

type RangePattern struct {
	Base
	Lower, Upper RangePatternBound
}

func (p *RangePattern) String() string { return str(p.Lower) + "..=" + str(p.Upper) }

type ReferencePattern struct {
	Base
	Pattern Pattern
	Mut     bool
	Double  bool
}

func (p *ReferencePattern) String() string {
	s := "&"
	if p.Double {
		s += "&"
	}
	if p.Mut {
		s += "mut "
	}
	return s + str(p.Pattern)
}

// StructPatternField is a field of a [StructPattern].
type StructPatternField interface {
	Node
	structPatternFieldNode()
}

type StructPatternFieldTuplePat struct {
	Base
	Index   int
	Pattern Pattern
}

func (f *StructPatternFieldTuplePat) String() string {
	return strconv.Itoa(f.Index) + ": " + str(f.Pattern)
}

type StructPatternFieldIdentPat struct {
	Base
	Ident   string
	Pattern Pattern
}

func (f *StructPatternFieldIdentPat) String() string { return f.Ident + ": " + str(f.Pattern) }

type StructPatternFieldIdent struct {
	Base
	Ref, Mut bool
	Ident    string
}

func (f *StructPatternFieldIdent) String() string {
	s := ""
	if f.Ref {
		s += "ref "
	}
	if f.Mut {
		s += "mut "
	}
	return s + f.Ident
}

type StructPattern struct {
	Base
	Path   *PathInExpression
	Fields []StructPatternField
	Etc    bool // trailing ..
}

func (p *StructPattern) String() string {
	parts := strs(p.Fields)
	if p.Etc {
		parts = append(parts, "..")
	}
	return p.Path.String() + " { " + strings.Join(parts, ", ") + " }"
}

// TupleStructItems is the parenthesized part of a [TupleStructPattern].
type TupleStructItems interface {
	Node
	tupleStructItemsNode()
}

type TupleStructItemsNoRange struct {
	Base
	Patterns []Pattern
}

func (i *TupleStructItemsNoRange) String() string { return joinNodes(i.Patterns, ", ") }

type TupleStructItemsRange struct {
	Base
	Lower, Upper []Pattern
}

func (i *TupleStructItemsRange) String() string { return rangedItems(i.Lower, i.Upper) }

func rangedItems(lower, upper []Pattern) string {
	parts := append(strs(lower), "..")
	return strings.Join(append(parts, strs(upper)...), ", ")
}

type TupleStructPattern struct {
	Base
	Path  *PathInExpression
	Items TupleStructItems
}

func (p *TupleStructPattern) String() string {
	return p.Path.String() + "(" + str(p.Items) + ")"
}

// TuplePatternItems is the contents of a [TuplePattern].
type TuplePatternItems interface {
	Node
	tuplePatternItemsNode()
}

type TuplePatternItemsMultiple struct {
	Base
	Patterns []Pattern
}

func (i *TuplePatternItemsMultiple) String() string { return joinNodes(i.Patterns, ", ") }

type TuplePatternItemsRanged struct {
	Base
	Lower, Upper []Pattern
}

func (i *TuplePatternItemsRanged) String() string { return rangedItems(i.Lower, i.Upper) }

type TuplePattern struct {
	Base
	Items TuplePatternItems
}

func (p *TuplePattern) String() string { return "(" + str(p.Items) + ")" }

type SlicePattern struct {
	Base
	Items []Pattern
}

func (p *SlicePattern) String() string { return "[" + joinNodes(p.Items, ", ") + "]" }

type AltPattern struct {
	Base
	Alts []Pattern
}

func (p *AltPattern) String() string { return joinNodes(p.Alts, " | ") }

func (*LiteralPattern) Kind() Kind             { return KindLiteralPattern }
func (*IdentifierPattern) Kind() Kind          { return KindIdentifierPattern }
func (*WildcardPattern) Kind() Kind            { return KindWildcardPattern }
func (*RangePatternBoundLiteral) Kind() Kind   { return KindRangePatternBoundLiteral }
func (*RangePatternBoundPath) Kind() Kind      { return KindRangePatternBoundPath }
func (*RangePatternBoundQualPath) Kind() Kind  { return KindRangePatternBoundQualPath }
func (*RangePattern) Kind() Kind               { return KindRangePattern }
func (*ReferencePattern) Kind() Kind           { return KindReferencePattern }
func (*StructPatternFieldTuplePat) Kind() Kind { return KindStructPatternFieldTuplePat }
func (*StructPatternFieldIdentPat) Kind() Kind { return KindStructPatternFieldIdentPat }
func (*StructPatternFieldIdent) Kind() Kind    { return KindStructPatternFieldIdent }
func (*StructPattern) Kind() Kind              { return KindStructPattern }
func (*TupleStructItemsNoRange) Kind() Kind    { return KindTupleStructItemsNoRange }
func (*TupleStructItemsRange) Kind() Kind      { return KindTupleStructItemsRange }
func (*TupleStructPattern) Kind() Kind         { return KindTupleStructPattern }
func (*TuplePatternItemsMultiple) Kind() Kind  { return KindTuplePatternItemsMultiple }
func (*TuplePatternItemsRanged) Kind() Kind    { return KindTuplePatternItemsRanged }
func (*TuplePattern) Kind() Kind               { return KindTuplePattern }
func (*SlicePattern) Kind() Kind               { return KindSlicePattern }
func (*AltPattern) Kind() Kind                 { return KindAltPattern }

func (*LiteralPattern) patternNode()     {}
func (*IdentifierPattern) patternNode()  {}
func (*WildcardPattern) patternNode()    {}
func (*RangePattern) patternNode()       {}
func (*ReferencePattern) patternNode()   {}
func (*StructPattern) patternNode()      {}
func (*TupleStructPattern) patternNode() {}
func (*TuplePattern) patternNode()       {}
func (*SlicePattern) patternNode()       {}
func (*AltPattern) patternNode()         {}

func (*RangePatternBoundLiteral) rangePatternBoundNode()  {}
func (*RangePatternBoundPath) rangePatternBoundNode()     {}
func (*RangePatternBoundQualPath) rangePatternBoundNode() {}

func (*StructPatternFieldTuplePat) structPatternFieldNode() {}
func (*StructPatternFieldIdentPat) structPatternFieldNode() {}
func (*StructPatternFieldIdent) structPatternFieldNode()    {}

func (*TupleStructItemsNoRange) tupleStructItemsNode() {}
func (*TupleStructItemsRange) tupleStructItemsNode()   {}

func (*TuplePatternItemsMultiple) tuplePatternItemsNode() {}
func (*TuplePatternItemsRanged) tuplePatternItemsNode()   {}
