package hir

import "strings"

// TraitBound is a trait used as a bound: ?Sized, for<'a> Fn(&'a u8).
type TraitBound struct {
	Base
	Maybe        bool
	ForLifetimes []*LifetimeParam
	Path         *TypePath
}

func (b *TraitBound) String() string {
	s := ""
	if b.Maybe {
		s = "?"
	}
	return s + forLifetimes(b.ForLifetimes) + b.Path.String()
}

type ImplTraitType struct {
	Base
	Bounds []TypeParamBound
}

func (t *ImplTraitType) String() string { return "impl " + joinNodes(t.Bounds, " + ") }

type TraitObjectType struct {
	Base
	Dyn    bool
	Bounds []TypeParamBound
}

func (t *TraitObjectType) String() string {
	if t.Dyn {
		return "dyn " + joinNodes(t.Bounds, " + ")
	}
	return joinNodes(t.Bounds, " + ")
}

type ParenthesisedType struct {
	Base
	Type Type
}

func (t *ParenthesisedType) String() string { return "(" + str(t.Type) + ")" }

type ImplTraitTypeOneBound struct {
	Base
	Bound *TraitBound
}

func (t *ImplTraitTypeOneBound) String() string { return "impl " + t.Bound.String() }

type TupleType struct {
	Base
	Elems []Type
}

func (t *TupleType) String() string {
	if len(t.Elems) == 1 {
		return "(" + t.Elems[0].String() + ",)"
	}
	return "(" + joinNodes(t.Elems, ", ") + ")"
}

type NeverType struct {
	Base
}

func (t *NeverType) String() string { return "!" }

type RawPointerType struct {
	Base
	Mut  bool
	Type Type
}

func (t *RawPointerType) String() string {
	if t.Mut {
		return "*mut " + str(t.Type)
	}
	return "*const " + str(t.Type)
}

type ReferenceType struct {
	Base
	Lifetime *Lifetime // may be nil
	Mut      bool
	Type     Type
}

func (t *ReferenceType) String() string {
	s := "&"
	if t.Lifetime != nil {
		s += t.Lifetime.String() + " "
	}
	if t.Mut {
		s += "mut "
	}
	return s + str(t.Type)
}

type ArrayType struct {
	Base
	Elem Type
	Size Expr
}

func (t *ArrayType) String() string { return "[" + str(t.Elem) + "; " + str(t.Size) + "]" }

type SliceType struct {
	Base
	Elem Type
}

func (t *SliceType) String() string { return "[" + str(t.Elem) + "]" }

// InferredType is the _ type.
type InferredType struct {
	Base
}

func (t *InferredType) String() string { return "_" }

type MaybeNamedParam struct {
	Name string // may be empty or "_"
	Type Type
}

func (p MaybeNamedParam) String() string {
	if p.Name == "" {
		return str(p.Type)
	}
	return p.Name + ": " + str(p.Type)
}

type BareFunctionType struct {
	Base
	ForLifetimes []*LifetimeParam
	Qualifiers   FunctionQualifiers
	Params       []MaybeNamedParam
	Variadic     bool
	Return       Type
}

func (t *BareFunctionType) String() string {
	parts := make([]string, 0, len(t.Params)+1)
	for _, p := range t.Params {
		parts = append(parts, p.String())
	}
	if t.Variadic {
		parts = append(parts, "...")
	}
	return forLifetimes(t.ForLifetimes) + t.Qualifiers.String() + "fn(" + strings.Join(parts, ", ") + ")" + returns(t.Return)
}

func (*TraitBound) Kind() Kind            { return KindTraitBound }
func (*ImplTraitType) Kind() Kind         { return KindImplTraitType }
func (*TraitObjectType) Kind() Kind       { return KindTraitObjectType }
func (*ParenthesisedType) Kind() Kind     { return KindParenthesisedType }
func (*ImplTraitTypeOneBound) Kind() Kind { return KindImplTraitTypeOneBound }
func (*TupleType) Kind() Kind             { return KindTupleType }
func (*NeverType) Kind() Kind             { return KindNeverType }
func (*RawPointerType) Kind() Kind        { return KindRawPointerType }
func (*ReferenceType) Kind() Kind         { return KindReferenceType }
func (*ArrayType) Kind() Kind             { return KindArrayType }
func (*SliceType) Kind() Kind             { return KindSliceType }
func (*InferredType) Kind() Kind          { return KindInferredType }
func (*BareFunctionType) Kind() Kind      { return KindBareFunctionType }

func (*TraitBound) boundNode() {}

func (*ImplTraitType) typeNode()         {}
func (*TraitObjectType) typeNode()       {}
func (*ParenthesisedType) typeNode()     {}
func (*ImplTraitTypeOneBound) typeNode() {}
func (*TupleType) typeNode()             {}
func (*NeverType) typeNode()             {}
func (*RawPointerType) typeNode()        {}
func (*ReferenceType) typeNode()         {}
func (*ArrayType) typeNode()             {}
func (*SliceType) typeNode()             {}
func (*InferredType) typeNode()          {}
func (*BareFunctionType) typeNode()      {}
