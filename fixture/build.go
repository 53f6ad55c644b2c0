package fixture

import (
	"strings"

	"mibk.dev/hirdump/hir"
)

var kindsByName = func() map[string]hir.Kind {
	m := make(map[string]hir.Kind)
	for _, k := range hir.Kinds() {
		m[k.String()] = k
	}
	return m
}()

// node converts r into the node its kind names.
func (b *builder) node(r *rawNode) hir.Node {
	if r == nil || b.err != nil {
		return nil
	}
	if r.Kind == "" {
		b.errorf(r.Line, "node without kind")
		return nil
	}
	k, ok := kindsByName[r.Kind]
	if !ok {
		b.errorf(r.Line, "unknown kind %q", r.Kind)
		return nil
	}
	b.nodes++

	switch k {
	// Items.
	case hir.KindFunction:
		return b.function(r)
	case hir.KindModule:
		m := &hir.Module{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r)}
		m.InnerAttrs = attributes(b.strs(r, "attrs"))
		for _, c := range b.children(r, "items") {
			if item := b.item(c); item != nil {
				m.Items = append(m.Items, item)
			}
		}
		return m
	case hir.KindStructStruct:
		s := &hir.StructStruct{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r), Unit: b.flag(r, "unit")}
		for _, c := range b.children(r, "fields") {
			s.Fields = append(s.Fields, hir.StructField{
				Base:   b.base(c, false),
				Public: b.flag(c, "public"),
				Name:   b.name(c),
				Type:   b.typ(b.required(c, "type")),
			})
		}
		return s
	case hir.KindEnum:
		e := &hir.Enum{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r)}
		for _, v := range b.strs(r, "variants") {
			e.Variants = append(e.Variants, &hir.EnumItem{Base: hir.Base{Mapping: b.fresh(true)}, Name: v})
		}
		return e
	case hir.KindConstantItem:
		c := &hir.ConstantItem{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r)}
		c.Type = b.typ(b.required(r, "type"))
		c.Value = b.expr(b.required(r, "value"))
		return c
	case hir.KindStaticItem:
		s := &hir.StaticItem{Base: b.base(r, true), Public: b.flag(r, "public"), Mut: b.flag(r, "mut"), Name: b.name(r)}
		s.Type = b.typ(b.required(r, "type"))
		s.Value = b.expr(b.required(r, "value"))
		return s
	case hir.KindTypeAlias:
		a := &hir.TypeAlias{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r)}
		a.Type = b.typ(b.required(r, "type"))
		return a
	case hir.KindUseDeclaration:
		u := &hir.UseDeclaration{Base: b.base(r, true), Public: b.flag(r, "public")}
		u.Tree = b.useTree(r)
		return u
	case hir.KindExternCrate:
		return &hir.ExternCrate{Base: b.base(r, true), Public: b.flag(r, "public"), Crate: b.str(r, "crate"), As: b.str(r, "as")}

	// Expressions.
	case hir.KindLiteralExpr:
		return &hir.LiteralExpr{Base: b.base(r, false), Literal: b.literal(r)}
	case hir.KindPathInExpression:
		p := &hir.PathInExpression{Base: b.base(r, false)}
		p.Global, p.Segments = b.exprPath(r)
		return p
	case hir.KindArithmeticOrLogicalExpr:
		e := &hir.ArithmeticOrLogicalExpr{Base: b.base(r, false)}
		e.Op = operator(b, r, hir.RightShift)
		e.LHS, e.RHS = b.operands(r)
		return e
	case hir.KindComparisonExpr:
		e := &hir.ComparisonExpr{Base: b.base(r, false)}
		e.Op = operator(b, r, hir.LessOrEqual)
		e.LHS, e.RHS = b.operands(r)
		return e
	case hir.KindLazyBooleanExpr:
		e := &hir.LazyBooleanExpr{Base: b.base(r, false)}
		e.Op = operator(b, r, hir.LogicalAnd)
		e.LHS, e.RHS = b.operands(r)
		return e
	case hir.KindAssignmentExpr:
		e := &hir.AssignmentExpr{Base: b.base(r, false)}
		e.LHS, e.RHS = b.operands(r)
		return e
	case hir.KindNegationExpr:
		e := &hir.NegationExpr{Base: b.base(r, false), Not: b.flag(r, "not")}
		e.Expr = b.expr(b.required(r, "expr"))
		return e
	case hir.KindBorrowExpr:
		e := &hir.BorrowExpr{Base: b.base(r, false), Mut: b.flag(r, "mut")}
		e.Expr = b.expr(b.required(r, "expr"))
		return e
	case hir.KindDereferenceExpr:
		e := &hir.DereferenceExpr{Base: b.base(r, false)}
		e.Expr = b.expr(b.required(r, "expr"))
		return e
	case hir.KindGroupedExpr:
		e := &hir.GroupedExpr{Base: b.base(r, false)}
		e.Expr = b.expr(b.required(r, "expr"))
		return e
	case hir.KindTupleExpr:
		e := &hir.TupleExpr{Base: b.base(r, false)}
		e.Elems = b.exprs(r, "elems")
		return e
	case hir.KindArrayExpr:
		return b.arrayExpr(r)
	case hir.KindCallExpr:
		e := &hir.CallExpr{Base: b.base(r, false)}
		e.Fn = b.expr(b.required(r, "fn"))
		e.Args = b.exprs(r, "args")
		return e
	case hir.KindMethodCallExpr:
		e := &hir.MethodCallExpr{Base: b.base(r, false), Method: hir.PathExprSegment{Ident: b.str(r, "method")}}
		e.Receiver = b.expr(b.required(r, "receiver"))
		e.Args = b.exprs(r, "args")
		return e
	case hir.KindFieldAccessExpr:
		e := &hir.FieldAccessExpr{Base: b.base(r, false), Field: b.str(r, "field")}
		e.Receiver = b.expr(b.required(r, "receiver"))
		return e
	case hir.KindBlockExpr:
		return b.blockExpr(r)
	case hir.KindIfExpr:
		e := &hir.IfExpr{Base: b.base(r, false)}
		e.Cond = b.expr(b.required(r, "cond"))
		e.Block = b.block(r, "block")
		return e
	case hir.KindIfExprConseqElse:
		e := &hir.IfExprConseqElse{Base: b.base(r, false)}
		e.Cond = b.expr(b.required(r, "cond"))
		e.Block = b.block(r, "block")
		e.Else = b.expr(b.required(r, "else"))
		return e
	case hir.KindReturnExpr:
		e := &hir.ReturnExpr{Base: b.base(r, false)}
		e.Expr = b.expr(b.child(r, "expr"))
		return e
	case hir.KindBreakExpr:
		e := &hir.BreakExpr{Base: b.base(r, false)}
		e.Expr = b.expr(b.child(r, "expr"))
		return e
	case hir.KindLoopExpr:
		e := &hir.LoopExpr{Base: b.base(r, false)}
		e.Body = b.block(r, "body")
		return e
	case hir.KindWhileLoopExpr:
		e := &hir.WhileLoopExpr{Base: b.base(r, false)}
		e.Cond = b.expr(b.required(r, "cond"))
		e.Body = b.block(r, "body")
		return e

	// Statements.
	case hir.KindLetStmt:
		s := &hir.LetStmt{Base: b.base(r, false)}
		s.Pattern = b.pattern(b.required(r, "pattern"))
		s.Type = b.typ(b.child(r, "type"))
		s.Init = b.expr(b.child(r, "init"))
		return s
	case hir.KindExprStmt:
		s := &hir.ExprStmt{Base: b.base(r, false), Semicolon: b.flag(r, "semicolon")}
		s.Expr = b.expr(b.required(r, "expr"))
		return s
	case hir.KindEmptyStmt:
		return &hir.EmptyStmt{Base: b.base(r, false)}

	// Patterns.
	case hir.KindIdentifierPattern:
		return &hir.IdentifierPattern{
			Base: b.base(r, false),
			Name: b.name(r),
			Ref:  b.flag(r, "ref"),
			Mut:  b.flag(r, "mut"),
		}
	case hir.KindWildcardPattern:
		return &hir.WildcardPattern{Base: b.base(r, false)}
	case hir.KindLiteralPattern:
		return &hir.LiteralPattern{Base: b.base(r, false), Literal: b.literal(r)}
	case hir.KindTuplePattern:
		p := &hir.TuplePattern{Base: b.base(r, false)}
		items := new(hir.TuplePatternItemsMultiple)
		for _, c := range b.children(r, "items") {
			if pat := b.pattern(c); pat != nil {
				items.Patterns = append(items.Patterns, pat)
			}
		}
		p.Items = items
		return p

	// Types.
	case hir.KindTypePath:
		t := &hir.TypePath{Base: b.base(r, false)}
		var idents []string
		t.Global, idents = b.path(r)
		for _, id := range idents {
			t.Segments = append(t.Segments, &hir.TypePathSegment{Ident: id})
		}
		return t
	case hir.KindReferenceType:
		t := &hir.ReferenceType{Base: b.base(r, false), Mut: b.flag(r, "mut")}
		if l := b.str(r, "lifetime"); l != "" {
			t.Lifetime = lifetime(l)
		}
		t.Type = b.typ(b.required(r, "type"))
		return t
	case hir.KindArrayType:
		t := &hir.ArrayType{Base: b.base(r, false)}
		t.Elem = b.typ(b.required(r, "elem"))
		t.Size = b.expr(b.required(r, "size"))
		return t
	case hir.KindSliceType:
		t := &hir.SliceType{Base: b.base(r, false)}
		t.Elem = b.typ(b.required(r, "elem"))
		return t
	case hir.KindTupleType:
		t := &hir.TupleType{Base: b.base(r, false)}
		for _, c := range b.children(r, "elems") {
			if typ := b.typ(c); typ != nil {
				t.Elems = append(t.Elems, typ)
			}
		}
		return t
	case hir.KindNeverType:
		return &hir.NeverType{Base: b.base(r, false)}
	case hir.KindInferredType:
		return &hir.InferredType{Base: b.base(r, false)}
	}

	b.errorf(r.Line, "kind %v not supported in fixtures", k)
	return nil
}

func (b *builder) base(r *rawNode, item bool) hir.Base {
	return hir.Base{Mapping: b.mapping(r, item)}
}

func (b *builder) name(r *rawNode) string {
	name := b.str(r, "name")
	if name == "" {
		b.errorf(r.Line, "%s: missing name", r.Kind)
	}
	return name
}

func (b *builder) function(r *rawNode) *hir.Function {
	f := &hir.Function{Base: b.base(r, true), Public: b.flag(r, "public"), Name: b.name(r)}
	f.Qualifiers = hir.FunctionQualifiers{
		Const:  b.flag(r, "const"),
		Async:  b.flag(r, "async"),
		Unsafe: b.flag(r, "unsafe"),
		ABI:    b.str(r, "abi"),
	}
	for _, c := range b.children(r, "params") {
		f.Params = append(f.Params, hir.FunctionParam{
			Base:    b.base(c, false),
			Pattern: b.pattern(b.required(c, "pattern")),
			Type:    b.typ(b.required(c, "type")),
		})
	}
	f.Return = b.typ(b.child(r, "return"))
	f.Body = b.block(r, "body")
	return f
}

func (b *builder) blockExpr(r *rawNode) *hir.BlockExpr {
	e := &hir.BlockExpr{Base: b.base(r, false), InnerAttrs: attributes(b.strs(r, "attrs"))}
	for _, c := range b.children(r, "stmts") {
		if s := b.stmt(c); s != nil {
			e.Stmts = append(e.Stmts, s)
		}
	}
	e.Expr = b.expr(b.child(r, "expr"))
	return e
}

// block returns the block in field key of r, which is required.
func (b *builder) block(r *rawNode, key string) *hir.BlockExpr {
	c := b.required(r, key)
	if c == nil || b.err != nil {
		return nil
	}
	if c.Kind != hir.KindBlockExpr.String() {
		b.errorf(c.Line, "%s: %s must be a %v, not %q", r.Kind, key, hir.KindBlockExpr, c.Kind)
		return nil
	}
	b.nodes++
	return b.blockExpr(c)
}

func (b *builder) arrayExpr(r *rawNode) *hir.ArrayExpr {
	e := &hir.ArrayExpr{Base: b.base(r, false), InnerAttrs: attributes(b.strs(r, "attrs"))}
	if _, ok := r.fields["count"]; ok {
		elems := &hir.ArrayElemsCopied{Base: hir.Base{Mapping: b.fresh(false)}}
		elems.Elem = b.expr(b.required(r, "elem"))
		elems.Count = b.expr(b.required(r, "count"))
		e.Elems = elems
		return e
	}
	elems := &hir.ArrayElemsValues{Base: hir.Base{Mapping: b.fresh(false)}}
	elems.Values = b.exprs(r, "elems")
	e.Elems = elems
	return e
}

func (b *builder) useTree(r *rawNode) hir.UseTree {
	path := b.str(r, "path")
	if path == "" {
		b.errorf(r.Line, "%s: missing path", r.Kind)
		return nil
	}
	if p, ok := strings.CutSuffix(path, "*"); ok {
		return &hir.UseTreeGlob{Path: strings.TrimSuffix(p, "::")}
	}
	return &hir.UseTreeRebind{Path: path, As: b.str(r, "as")}
}

func (b *builder) exprPath(r *rawNode) (global bool, segs []hir.PathExprSegment) {
	global, idents := b.path(r)
	for _, id := range idents {
		segs = append(segs, hir.PathExprSegment{Ident: id})
	}
	return global, segs
}

// path splits the path field of r, e.g. ::std::mem::swap.
func (b *builder) path(r *rawNode) (global bool, idents []string) {
	path := b.str(r, "path")
	path, global = strings.CutPrefix(path, "::")
	if path == "" {
		b.errorf(r.Line, "%s: missing path", r.Kind)
		return false, nil
	}
	return global, strings.Split(path, "::")
}

func (b *builder) operands(r *rawNode) (lhs, rhs hir.Expr) {
	lhs = b.expr(b.required(r, "lhs"))
	rhs = b.expr(b.required(r, "rhs"))
	return lhs, rhs
}

// operator looks up the op field of r among the operators up to last.
func operator[Op interface {
	~uint8
	String() string
}](b *builder, r *rawNode, last Op) Op {
	sym := b.str(r, "op")
	for op := Op(0); op <= last; op++ {
		if op.String() == sym {
			return op
		}
	}
	b.errorf(r.Line, "%s: unknown operator %q", r.Kind, sym)
	return 0
}

func (b *builder) literal(r *rawNode) hir.Literal {
	lit := hir.Literal{Type: hir.IntLit, Text: b.str(r, "value")}
	if t := b.str(r, "type"); t != "" {
		lit.Type = literalKind(b, r, t)
	}
	return lit
}

func literalKind(b *builder, r *rawNode, name string) hir.LiteralKind {
	for k := hir.CharLit; k <= hir.BoolLit; k++ {
		if k.String() == name {
			return k
		}
	}
	b.errorf(r.Line, "%s: unknown literal type %q", r.Kind, name)
	return hir.IntLit
}

func lifetime(s string) *hir.Lifetime {
	switch s = strings.TrimPrefix(s, "'"); s {
	case "static":
		return &hir.Lifetime{Type: hir.StaticLifetime}
	case "_":
		return &hir.Lifetime{Type: hir.WildcardLifetime}
	}
	return &hir.Lifetime{Type: hir.NamedLifetime, Name: s}
}

func (b *builder) exprs(r *rawNode, key string) []hir.Expr {
	var es []hir.Expr
	for _, c := range b.children(r, key) {
		if e := b.expr(c); e != nil {
			es = append(es, e)
		}
	}
	return es
}

func (b *builder) item(r *rawNode) hir.Item {
	n := b.node(r)
	if n == nil {
		return nil
	}
	item, ok := n.(hir.Item)
	if !ok {
		b.errorf(r.Line, "%v is not an item", n.Kind())
	}
	return item
}

func (b *builder) stmt(r *rawNode) hir.Stmt {
	n := b.node(r)
	if n == nil {
		return nil
	}
	s, ok := n.(hir.Stmt)
	if !ok {
		b.errorf(r.Line, "%v is not a statement", n.Kind())
	}
	return s
}

func (b *builder) expr(r *rawNode) hir.Expr {
	n := b.node(r)
	if n == nil {
		return nil
	}
	e, ok := n.(hir.Expr)
	if !ok {
		b.errorf(r.Line, "%v is not an expression", n.Kind())
	}
	return e
}

func (b *builder) pattern(r *rawNode) hir.Pattern {
	n := b.node(r)
	if n == nil {
		return nil
	}
	p, ok := n.(hir.Pattern)
	if !ok {
		b.errorf(r.Line, "%v is not a pattern", n.Kind())
	}
	return p
}

func (b *builder) typ(r *rawNode) hir.Type {
	n := b.node(r)
	if n == nil {
		return nil
	}
	t, ok := n.(hir.Type)
	if !ok {
		b.errorf(r.Line, "%v is not a type", n.Kind())
	}
	return t
}
