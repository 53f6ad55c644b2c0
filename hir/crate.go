package hir

import "strings"

// Crate is the root of a compilation unit.
type Crate struct {
	Base
	InnerAttrs []Attribute
	Items      []Item
}

func (c *Crate) String() string {
	var b strings.Builder
	for _, a := range c.InnerAttrs {
		b.WriteString("#![" + a.String() + "]\n")
	}
	b.WriteString(joinNodes(c.Items, "\n"))
	return b.String()
}

// Lifetime is a lifetime reference. It doubles as a type parameter bound.
type Lifetime struct {
	Base
	Type LifetimeType
	Name string // without the leading quote; only for NamedLifetime

	// Error is set by resolution when the lifetime could not be resolved.
	Error bool
}

func (l *Lifetime) String() string {
	if l.Error {
		return "error lifetime"
	}
	switch l.Type {
	case NamedLifetime:
		return "'" + l.Name
	case StaticLifetime:
		return "'static"
	case WildcardLifetime:
		return "'_"
	}
	return l.Type.String()
}

// TypeParamBound is a [TraitBound] or a [Lifetime].
type TypeParamBound interface {
	Node
	boundNode()
}

type LifetimeParam struct {
	Base
	Lifetime *Lifetime
	Bounds   []*Lifetime
}

func (p *LifetimeParam) String() string {
	s := p.Lifetime.String()
	if len(p.Bounds) > 0 {
		s += ": " + joinNodes(p.Bounds, " + ")
	}
	return s
}

type TypeParam struct {
	Base
	Name    string
	Bounds  []TypeParamBound
	Default Type
}

func (p *TypeParam) String() string {
	s := p.Name
	if len(p.Bounds) > 0 {
		s += ": " + joinNodes(p.Bounds, " + ")
	}
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

type ConstGenericParam struct {
	Base
	Name    string
	Type    Type
	Default Expr
}

func (p *ConstGenericParam) String() string {
	s := "const " + p.Name + ": " + str(p.Type)
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

// WhereClauseItem is one predicate of a where clause.
type WhereClauseItem interface {
	Node
	whereClauseItemNode()
}

type LifetimeWhereClauseItem struct {
	Base
	Lifetime *Lifetime
	Bounds   []*Lifetime
}

func (w *LifetimeWhereClauseItem) String() string {
	return w.Lifetime.String() + ": " + joinNodes(w.Bounds, " + ")
}

type TypeBoundWhereClauseItem struct {
	Base
	ForLifetimes []*LifetimeParam
	BoundType    Type
	Bounds       []TypeParamBound
}

func (w *TypeBoundWhereClauseItem) String() string {
	return forLifetimes(w.ForLifetimes) + str(w.BoundType) + ": " + joinNodes(w.Bounds, " + ")
}

func forLifetimes(ls []*LifetimeParam) string {
	if len(ls) == 0 {
		return ""
	}
	return "for<" + joinNodes(ls, ", ") + "> "
}

func generics(ps []GenericParam) string {
	if len(ps) == 0 {
		return ""
	}
	return "<" + joinNodes(ps, ", ") + ">"
}

func where(ws []WhereClauseItem) string {
	if len(ws) == 0 {
		return ""
	}
	return " where " + joinNodes(ws, ", ")
}

func (*Crate) Kind() Kind                    { return KindCrate }
func (*Lifetime) Kind() Kind                 { return KindLifetime }
func (*LifetimeParam) Kind() Kind            { return KindLifetimeParam }
func (*TypeParam) Kind() Kind                { return KindTypeParam }
func (*ConstGenericParam) Kind() Kind        { return KindConstGenericParam }
func (*LifetimeWhereClauseItem) Kind() Kind  { return KindLifetimeWhereClauseItem }
func (*TypeBoundWhereClauseItem) Kind() Kind { return KindTypeBoundWhereClauseItem }

func (*Lifetime) boundNode() {}

func (*LifetimeParam) genericParamNode()     {}
func (*TypeParam) genericParamNode()         {}
func (*ConstGenericParam) genericParamNode() {}

func (*LifetimeWhereClauseItem) whereClauseItemNode()  {}
func (*TypeBoundWhereClauseItem) whereClauseItemNode() {}
