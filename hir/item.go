package hir

import (
	"strconv"
	"strings"
)

func pub(public bool) string {
	if public {
		return "pub "
	}
	return ""
}

func block(items []string) string {
	if len(items) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(items, " ") + " }"
}

func strs[T Node](nodes []T) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

type Module struct {
	Base
	Public     bool
	Name       string
	InnerAttrs []Attribute
	Items      []Item
}

func (m *Module) String() string {
	return pub(m.Public) + "mod " + m.Name + " " + block(strs(m.Items))
}

type ExternCrate struct {
	Base
	Public bool
	Crate  string
	As     string // may be empty
}

func (c *ExternCrate) String() string {
	s := pub(c.Public) + "extern crate " + c.Crate
	if c.As != "" {
		s += " as " + c.As
	}
	return s + ";"
}

// UseTree is the tree of a [UseDeclaration].
type UseTree interface {
	Node
	useTreeNode()
}

func prefixed(path, s string) string {
	if path == "" {
		return s
	}
	return path + "::" + s
}

type UseTreeGlob struct {
	Base
	Path string // may be empty
}

func (t *UseTreeGlob) String() string { return prefixed(t.Path, "*") }

type UseTreeList struct {
	Base
	Path  string
	Trees []UseTree
}

func (t *UseTreeList) String() string {
	return prefixed(t.Path, "{"+joinNodes(t.Trees, ", ")+"}")
}

type UseTreeRebind struct {
	Base
	Path string
	As   string // may be empty or "_"
}

func (t *UseTreeRebind) String() string {
	if t.As == "" {
		return t.Path
	}
	return t.Path + " as " + t.As
}

type UseDeclaration struct {
	Base
	Public bool
	Tree   UseTree
}

func (d *UseDeclaration) String() string { return pub(d.Public) + "use " + str(d.Tree) + ";" }

type FunctionQualifiers struct {
	Const, Async, Unsafe bool
	ABI                  string // set for extern functions
}

func (q FunctionQualifiers) String() string {
	var b strings.Builder
	if q.Const {
		b.WriteString("const ")
	}
	if q.Async {
		b.WriteString("async ")
	}
	if q.Unsafe {
		b.WriteString("unsafe ")
	}
	if q.ABI != "" {
		b.WriteString("extern " + strconv.Quote(q.ABI) + " ")
	}
	return b.String()
}

// FunctionParam is a parameter of a [Function] or [TraitItemFunc].
// It has its own mappings but is not a node on its own.
type FunctionParam struct {
	Base
	Pattern Pattern
	Type    Type
}

func (p FunctionParam) String() string { return str(p.Pattern) + ": " + str(p.Type) }

func params(ps []FunctionParam) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

type Function struct {
	Base
	Public     bool
	Qualifiers FunctionQualifiers
	Name       string
	Generics   []GenericParam
	Params     []FunctionParam
	Return     Type // may be nil
	Where      []WhereClauseItem
	Body       *BlockExpr
}

func (f *Function) HasReturnType() bool     { return f.Return != nil }
func (f *Function) HasFunctionParams() bool { return len(f.Params) > 0 }

func (f *Function) String() string {
	return pub(f.Public) + f.Qualifiers.String() + "fn " + f.Name + generics(f.Generics) +
		"(" + params(f.Params) + ")" + returns(f.Return) + where(f.Where) + " " + f.Body.String()
}

type TypeAlias struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Where    []WhereClauseItem
	Type     Type
}

func (a *TypeAlias) String() string {
	return pub(a.Public) + "type " + a.Name + generics(a.Generics) + where(a.Where) + " = " + str(a.Type) + ";"
}

type StructField struct {
	Base
	Public bool
	Name   string
	Type   Type
}

func (f StructField) String() string { return pub(f.Public) + f.Name + ": " + str(f.Type) }

type TupleField struct {
	Base
	Public bool
	Type   Type
}

func (f TupleField) String() string { return pub(f.Public) + str(f.Type) }

func structFields(fs []StructField) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func tupleFields(fs []TupleField) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type StructStruct struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Where    []WhereClauseItem
	Fields   []StructField
	Unit     bool // struct S;
}

func (s *StructStruct) String() string {
	head := pub(s.Public) + "struct " + s.Name + generics(s.Generics) + where(s.Where)
	if s.Unit {
		return head + ";"
	}
	return head + " " + structFields(s.Fields)
}

type TupleStruct struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Where    []WhereClauseItem
	Fields   []TupleField
}

func (s *TupleStruct) String() string {
	return pub(s.Public) + "struct " + s.Name + generics(s.Generics) + tupleFields(s.Fields) + where(s.Where) + ";"
}

// EnumVariant is one variant of an [Enum].
type EnumVariant interface {
	Node
	enumVariantNode()
}

type EnumItem struct {
	Base
	Name string
}

func (v *EnumItem) String() string { return v.Name }

type EnumItemTuple struct {
	Base
	Name   string
	Fields []TupleField
}

func (v *EnumItemTuple) String() string { return v.Name + tupleFields(v.Fields) }

type EnumItemStruct struct {
	Base
	Name   string
	Fields []StructField
}

func (v *EnumItemStruct) String() string { return v.Name + " " + structFields(v.Fields) }

type EnumItemDiscriminant struct {
	Base
	Name  string
	Value Expr
}

func (v *EnumItemDiscriminant) String() string { return v.Name + " = " + str(v.Value) }

type Enum struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Where    []WhereClauseItem
	Variants []EnumVariant
}

func (e *Enum) String() string {
	return pub(e.Public) + "enum " + e.Name + generics(e.Generics) + where(e.Where) +
		" { " + joinNodes(e.Variants, ", ") + " }"
}

type Union struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Where    []WhereClauseItem
	Fields   []StructField
}

func (u *Union) String() string {
	return pub(u.Public) + "union " + u.Name + generics(u.Generics) + where(u.Where) + " " + structFields(u.Fields)
}

type ConstantItem struct {
	Base
	Public bool
	Name   string // "_" for unnamed constants
	Type   Type
	Value  Expr
}

func (c *ConstantItem) String() string {
	return pub(c.Public) + "const " + c.Name + ": " + str(c.Type) + " = " + str(c.Value) + ";"
}

type StaticItem struct {
	Base
	Public bool
	Mut    bool
	Name   string
	Type   Type
	Value  Expr
}

func (s *StaticItem) String() string {
	m := ""
	if s.Mut {
		m = "mut "
	}
	return pub(s.Public) + "static " + m + s.Name + ": " + str(s.Type) + " = " + str(s.Value) + ";"
}

// TraitItem is an associated item declared inside a [Trait].
type TraitItem interface {
	Node
	traitItemNode()
}

type TraitItemFunc struct {
	Base
	Qualifiers FunctionQualifiers
	Name       string
	Generics   []GenericParam
	Params     []FunctionParam
	Return     Type
	Where      []WhereClauseItem
	Body       *BlockExpr // nil for a required method
}

func (f *TraitItemFunc) String() string {
	s := f.Qualifiers.String() + "fn " + f.Name + generics(f.Generics) +
		"(" + params(f.Params) + ")" + returns(f.Return) + where(f.Where)
	if f.Body == nil {
		return s + ";"
	}
	return s + " " + f.Body.String()
}

type TraitItemConst struct {
	Base
	Name  string
	Type  Type
	Value Expr // may be nil
}

func (c *TraitItemConst) String() string {
	s := "const " + c.Name + ": " + str(c.Type)
	if c.Value != nil {
		s += " = " + c.Value.String()
	}
	return s + ";"
}

type TraitItemType struct {
	Base
	Name   string
	Bounds []TypeParamBound
}

func (t *TraitItemType) String() string {
	if len(t.Bounds) == 0 {
		return "type " + t.Name + ";"
	}
	return "type " + t.Name + ": " + joinNodes(t.Bounds, " + ") + ";"
}

type Trait struct {
	Base
	Public   bool
	Unsafe   bool
	Name     string
	Generics []GenericParam
	Bounds   []TypeParamBound
	Where    []WhereClauseItem
	Items    []TraitItem
}

func (t *Trait) String() string {
	s := pub(t.Public)
	if t.Unsafe {
		s += "unsafe "
	}
	s += "trait " + t.Name + generics(t.Generics)
	if len(t.Bounds) > 0 {
		s += ": " + joinNodes(t.Bounds, " + ")
	}
	return s + where(t.Where) + " " + block(strs(t.Items))
}

// ImplItem is an item inside an [ImplBlock].
type ImplItem interface {
	Node
	implItemNode()
}

type ImplBlock struct {
	Base
	Unsafe   bool
	Generics []GenericParam
	Negative bool
	Trait    *TypePath // nil for inherent impls
	SelfType Type
	Where    []WhereClauseItem
	Items    []ImplItem
}

func (b *ImplBlock) String() string {
	s := ""
	if b.Unsafe {
		s = "unsafe "
	}
	s += "impl" + generics(b.Generics) + " "
	if b.Trait != nil {
		if b.Negative {
			s += "!"
		}
		s += b.Trait.String() + " for "
	}
	return s + str(b.SelfType) + where(b.Where) + " " + block(strs(b.Items))
}

// ExternalItem is an item inside an [ExternBlock].
type ExternalItem interface {
	Node
	externalItemNode()
}

type ExternalStaticItem struct {
	Base
	Public bool
	Mut    bool
	Name   string
	Type   Type
}

func (s *ExternalStaticItem) String() string {
	m := ""
	if s.Mut {
		m = "mut "
	}
	return pub(s.Public) + "static " + m + s.Name + ": " + str(s.Type) + ";"
}

type NamedFunctionParam struct {
	Name string
	Type Type
}

type ExternalFunctionItem struct {
	Base
	Public   bool
	Name     string
	Generics []GenericParam
	Params   []NamedFunctionParam
	Variadic bool
	Return   Type
	Where    []WhereClauseItem
}

func (f *ExternalFunctionItem) String() string {
	parts := make([]string, 0, len(f.Params)+1)
	for _, p := range f.Params {
		parts = append(parts, p.Name+": "+str(p.Type))
	}
	if f.Variadic {
		parts = append(parts, "...")
	}
	return pub(f.Public) + "fn " + f.Name + generics(f.Generics) + "(" + strings.Join(parts, ", ") + ")" +
		returns(f.Return) + where(f.Where) + ";"
}

type ExternBlock struct {
	Base
	ABI        string
	InnerAttrs []Attribute
	Items      []ExternalItem
}

func (b *ExternBlock) String() string {
	return "extern " + strconv.Quote(b.ABI) + " " + block(strs(b.Items))
}

func (*Module) Kind() Kind               { return KindModule }
func (*ExternCrate) Kind() Kind          { return KindExternCrate }
func (*UseTreeGlob) Kind() Kind          { return KindUseTreeGlob }
func (*UseTreeList) Kind() Kind          { return KindUseTreeList }
func (*UseTreeRebind) Kind() Kind        { return KindUseTreeRebind }
func (*UseDeclaration) Kind() Kind       { return KindUseDeclaration }
func (*Function) Kind() Kind             { return KindFunction }
func (*TypeAlias) Kind() Kind            { return KindTypeAlias }
func (*StructStruct) Kind() Kind         { return KindStructStruct }
func (*TupleStruct) Kind() Kind          { return KindTupleStruct }
func (*EnumItem) Kind() Kind             { return KindEnumItem }
func (*EnumItemTuple) Kind() Kind        { return KindEnumItemTuple }
func (*EnumItemStruct) Kind() Kind       { return KindEnumItemStruct }
func (*EnumItemDiscriminant) Kind() Kind { return KindEnumItemDiscriminant }
func (*Enum) Kind() Kind                 { return KindEnum }
func (*Union) Kind() Kind                { return KindUnion }
func (*ConstantItem) Kind() Kind         { return KindConstantItem }
func (*StaticItem) Kind() Kind           { return KindStaticItem }
func (*TraitItemFunc) Kind() Kind        { return KindTraitItemFunc }
func (*TraitItemConst) Kind() Kind       { return KindTraitItemConst }
func (*TraitItemType) Kind() Kind        { return KindTraitItemType }
func (*Trait) Kind() Kind                { return KindTrait }
func (*ImplBlock) Kind() Kind            { return KindImplBlock }
func (*ExternalStaticItem) Kind() Kind   { return KindExternalStaticItem }
func (*ExternalFunctionItem) Kind() Kind { return KindExternalFunctionItem }
func (*ExternBlock) Kind() Kind          { return KindExternBlock }

func (*Module) stmtNode()         {}
func (*ExternCrate) stmtNode()    {}
func (*UseDeclaration) stmtNode() {}
func (*Function) stmtNode()       {}
func (*TypeAlias) stmtNode()      {}
func (*StructStruct) stmtNode()   {}
func (*TupleStruct) stmtNode()    {}
func (*Enum) stmtNode()           {}
func (*Union) stmtNode()          {}
func (*ConstantItem) stmtNode()   {}
func (*StaticItem) stmtNode()     {}
func (*Trait) stmtNode()          {}
func (*ImplBlock) stmtNode()      {}
func (*ExternBlock) stmtNode()    {}

func (*Module) itemNode()         {}
func (*ExternCrate) itemNode()    {}
func (*UseDeclaration) itemNode() {}
func (*Function) itemNode()       {}
func (*TypeAlias) itemNode()      {}
func (*StructStruct) itemNode()   {}
func (*TupleStruct) itemNode()    {}
func (*Enum) itemNode()           {}
func (*Union) itemNode()          {}
func (*ConstantItem) itemNode()   {}
func (*StaticItem) itemNode()     {}
func (*Trait) itemNode()          {}
func (*ImplBlock) itemNode()      {}
func (*ExternBlock) itemNode()    {}

func (*UseTreeGlob) useTreeNode()   {}
func (*UseTreeList) useTreeNode()   {}
func (*UseTreeRebind) useTreeNode() {}

func (*EnumItem) enumVariantNode()             {}
func (*EnumItemTuple) enumVariantNode()        {}
func (*EnumItemStruct) enumVariantNode()       {}
func (*EnumItemDiscriminant) enumVariantNode() {}

func (*TraitItemFunc) traitItemNode()  {}
func (*TraitItemConst) traitItemNode() {}
func (*TraitItemType) traitItemNode()  {}

func (*Function) implItemNode()     {}
func (*ConstantItem) implItemNode() {}
func (*TypeAlias) implItemNode()    {}

func (*ExternalStaticItem) externalItemNode()   {}
func (*ExternalFunctionItem) externalItemNode() {}
