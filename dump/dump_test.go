package dump_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mibk.dev/hirdump/dump"
	"mibk.dev/hirdump/hir"
)

func lines(ls ...string) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func lit(text string, nid, hid uint32) *hir.LiteralExpr {
	return &hir.LiteralExpr{
		Base:    hir.Base{Mapping: hir.Mapping{NodeID: nid, HirID: hid}},
		Literal: hir.Literal{Type: hir.IntLit, Text: text},
	}
}

func path(idents ...string) *hir.PathInExpression {
	p := new(hir.PathInExpression)
	for _, id := range idents {
		p.Segments = append(p.Segments, hir.PathExprSegment{Ident: id})
	}
	return p
}

func typePath(ident string) *hir.TypePath {
	return &hir.TypePath{Segments: []hir.TypeSegment{&hir.TypePathSegment{Ident: ident}}}
}

func ident(name string) *hir.IdentifierPattern { return &hir.IdentifierPattern{Name: name} }

func testDump(t *testing.T, n hir.Node, want string) {
	t.Helper()
	got, err := dump.Sprint(n, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyCrate(t *testing.T) {
	testDump(t, &hir.Crate{}, lines(
		"",
		"Crate {",
		"\t",
		"\titems [",
		"\t",
		"\t] // items",
		"\tnode_mappings: [C: 0]",
		"",
		"} // Crate",
	))
}

func TestFunctionWithoutParams(t *testing.T) {
	// fn f() { 1 + 2 }
	crate := &hir.Crate{
		Items: []hir.Item{&hir.Function{
			Base: hir.Base{Mapping: hir.Mapping{NodeID: 2, HirID: 3, LocalDefID: 1}},
			Name: "f",
			Body: &hir.BlockExpr{
				Expr: &hir.ArithmeticOrLogicalExpr{Op: hir.Add, LHS: lit("1", 5, 6), RHS: lit("2", 7, 8)},
			},
		}},
	}
	testDump(t, crate, lines(
		"",
		"Crate {",
		"\t",
		"\titems [",
		"\t\t",
		"\t\tFunction {",
		"\t\t\tfunc_name: f,",
		"\t\t\treturn_type: void,",
		"\t\t\t",
		"\t\t\tBlockExpr [",
		"\t\t\t\tfinal expression: 1 + 2",
		"\t\t\t",
		"\t\t\t] // BlockExpr",
		"\t\t\tnode_mappings: [C: 0 Nid: 2 Hid: 3 Lid: 1]",
		"\t\t",
		"\t\t} // Function",
		"\t",
		"\t] // items",
		"\tnode_mappings: [C: 0]",
		"",
		"} // Crate",
	))
}

func TestFunctionWithParams(t *testing.T) {
	// #![feature(no_core)]
	// fn add(a: i32, b: i32) -> i32 { a + b }
	crate := &hir.Crate{
		InnerAttrs: []hir.Attribute{{Path: "feature", Input: "(no_core)"}},
		Items: []hir.Item{&hir.Function{
			Base: hir.Base{Mapping: hir.Mapping{NodeID: 1, HirID: 1, LocalDefID: 1}},
			Name: "add",
			Params: []hir.FunctionParam{
				{Base: hir.Base{Mapping: hir.Mapping{NodeID: 2, HirID: 2}}, Pattern: ident("a"), Type: typePath("i32")},
				{Base: hir.Base{Mapping: hir.Mapping{NodeID: 3, HirID: 3}}, Pattern: ident("b"), Type: typePath("i32")},
			},
			Return: typePath("i32"),
			Body: &hir.BlockExpr{
				Expr: &hir.ArithmeticOrLogicalExpr{Op: hir.Add, LHS: path("a"), RHS: path("b")},
			},
		}},
	}
	testDump(t, crate, lines(
		"",
		"Crate {",
		"\t",
		"\tinner_attrs [",
		"\t\tfeature(no_core)",
		"\t",
		"\t] // inner_attrs",
		"\t",
		"\titems [",
		"\t\t",
		"\t\tFunction {",
		"\t\t\tfunc_name: add,",
		"\t\t\treturn_type: i32,",
		"\t\t\t",
		"\t\t\tparams [",
		"\t\t\t\ta: i32,",
		"\t\t\t\tb: i32,",
		"\t\t\t",
		"\t\t\t] // params",
		"\t\t\t",
		"\t\t\tnode_mappings [",
		"\t\t\t\ta:[C: 0 Nid: 2 Hid: 2],",
		"\t\t\t\tb:[C: 0 Nid: 3 Hid: 3],",
		"\t\t\t",
		"\t\t\t] // node_mappings",
		"\t\t\t",
		"\t\t\tBlockExpr [",
		"\t\t\t\tfinal expression: a + b",
		"\t\t\t",
		"\t\t\t] // BlockExpr",
		"\t\t\tnode_mappings: [C: 0 Nid: 1 Hid: 1 Lid: 1]",
		"\t\t",
		"\t\t} // Function",
		"\t",
		"\t] // items",
		"\tnode_mappings: [C: 0]",
		"",
		"} // Crate",
	))
}

func TestArithmeticOrLogicalOperators(t *testing.T) {
	symbols := map[hir.ArithmeticOrLogicalOperator]string{
		hir.Add:        "+",
		hir.Subtract:   "-",
		hir.Multiply:   "*",
		hir.Divide:     "/",
		hir.Modulus:    "%",
		hir.BitwiseAnd: "&",
		hir.BitwiseOr:  "|",
		hir.BitwiseXor: "^",
		hir.LeftShift:  "<<",
		hir.RightShift: ">>",
	}
	for op, sym := range symbols {
		t.Run(op.String(), func(t *testing.T) {
			e := &hir.ArithmeticOrLogicalExpr{Op: op, LHS: lit("6", 1, 2), RHS: lit("3", 3, 4)}
			testDump(t, e, lines(
				"6 [C: 0 Nid: 1 Hid: 2]",
				sym,
				"3 [C: 0 Nid: 3 Hid: 4]",
			))
		})
	}
}

func TestUnknownOperator(t *testing.T) {
	e := &hir.ArithmeticOrLogicalExpr{Op: 42, LHS: lit("6", 1, 2), RHS: lit("3", 3, 4)}
	_, err := dump.Sprint(e, 0)
	if !errors.Is(err, dump.ErrInternal) {
		t.Fatalf("got err %v, want %v", err, dump.ErrInternal)
	}
}

func TestLetStmt(t *testing.T) {
	// let x: i32 = 1 + 2;
	s := &hir.LetStmt{
		Pattern: ident("x"),
		Type:    typePath("i32"),
		Init:    &hir.ArithmeticOrLogicalExpr{Op: hir.Add, LHS: lit("1", 7, 8), RHS: lit("2", 9, 10)},
	}
	testDump(t, s, lines(
		"",
		"LetStmt {",
		"\tx: i32",
		"\tExpr {",
		"\t\t1 [C: 0 Nid: 7 Hid: 8]",
		"\t\t+",
		"\t\t2 [C: 0 Nid: 9 Hid: 10]",
		"\t} // Expr",
		"",
		"} // LetStmt",
	))

	// let _y;
	testDump(t, &hir.LetStmt{Pattern: ident("_y")}, lines(
		"",
		"LetStmt {",
		"\t_y",
		"} // LetStmt",
	))
}

func TestIfExpr(t *testing.T) {
	// if true { 1; }
	e := &hir.IfExpr{
		Cond: &hir.LiteralExpr{Literal: hir.Literal{Type: hir.BoolLit, Text: "true"}},
		Block: &hir.BlockExpr{
			Stmts: []hir.Stmt{&hir.ExprStmt{Expr: lit("1", 0, 0), Semicolon: true}},
		},
	}
	testDump(t, e, lines(
		"",
		"IfExpr {",
		"\t",
		"\tcondition {",
		"\t\ttrue [C: 0]",
		"\t} // condition",
		"\t",
		"\tif_block {",
		"\t\t",
		"\t\tBlockExpr [",
		"\t\t\t",
		"\t\t\tStmt {",
		"\t\t\t\t1 [C: 0]",
		"\t\t\t} // Stmt",
		"\t\t",
		"\t\t] // BlockExpr",
		"\t",
		"\t} // if_block",
		"",
		"} // IfExpr",
	))
}

func TestMultilineLiteral(t *testing.T) {
	b := &hir.BlockExpr{
		Expr: &hir.LiteralExpr{Literal: hir.Literal{Type: hir.StringLit, Text: "first\n  second\nthird"}},
	}
	testDump(t, b, lines(
		"",
		"BlockExpr [",
		"\tfinal expression: \"first",
		"\t  second",
		"\tthird\"",
		"",
		"] // BlockExpr",
	))
}

func TestArrayExpr(t *testing.T) {
	e := &hir.ArrayExpr{
		InnerAttrs: []hir.Attribute{{Path: "rustfmt::skip"}},
		Elems:      &hir.ArrayElemsValues{Values: []hir.Expr{lit("1", 1, 1), lit("2", 2, 2)}},
	}
	testDump(t, e, lines(
		"",
		"ArrayExpr {",
		"\t",
		"\tinner_attrs [",
		"\t\trustfmt::skip",
		"\t",
		"\t] // inner_attrs",
		"\t[1, 2]",
		"",
		"} // ArrayExpr",
	))
}

func TestInlineTypes(t *testing.T) {
	testDump(t, &hir.ArrayType{Elem: typePath("u8"), Size: lit("4", 0, 0)}, "[u8; 4 [C: 0]]\n")
	testDump(t, &hir.SliceType{Elem: typePath("u8")}, "&[u8]\n")
	testDump(t, ident("x"), "x\n")
}

func TestLifetime(t *testing.T) {
	tests := []struct {
		lifetime *hir.Lifetime
		want     string
	}{
		{&hir.Lifetime{Type: hir.NamedLifetime, Name: "a"}, "'a\n"},
		{&hir.Lifetime{Type: hir.StaticLifetime}, "'static\n"},
		{&hir.Lifetime{Type: hir.WildcardLifetime}, "'_\n"},
		{&hir.Lifetime{Type: hir.NamedLifetime, Name: "a", Error: true}, "ERROR-MARK-STRING error lifetime\n"},
		{&hir.Lifetime{Type: hir.WildcardLifetime, Error: true}, "ERROR-MARK-STRING error lifetime\n"},
	}
	for _, tt := range tests {
		testDump(t, tt.lifetime, tt.want)
	}

	_, err := dump.Sprint(&hir.Lifetime{Type: 7}, 0)
	if !errors.Is(err, dump.ErrInternal) {
		t.Errorf("got err %v, want %v", err, dump.ErrInternal)
	}
}

func TestMalformedTree(t *testing.T) {
	tests := []struct {
		name string
		node hir.Node
	}{
		{"nil node", nil},
		{"function without body", &hir.Function{Name: "f"}},
		{"if without block", &hir.IfExpr{Cond: lit("1", 0, 0)}},
		{"expression statement without expression", &hir.ExprStmt{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dump.Sprint(tt.node, 0)
			if !errors.Is(err, dump.ErrInternal) {
				t.Errorf("got err %v, want %v", err, dump.ErrInternal)
			}
		})
	}
}

// detailed returns a dumpable node for every kind with a rule of its own.
func detailed() []hir.Node {
	block := &hir.BlockExpr{}
	return []hir.Node{
		&hir.Crate{},
		&hir.Lifetime{Type: hir.StaticLifetime},
		lit("1", 1, 1),
		&hir.ArithmeticOrLogicalExpr{LHS: lit("1", 1, 1), RHS: lit("2", 2, 2)},
		&hir.ArrayExpr{},
		block,
		&hir.IfExpr{Cond: lit("1", 1, 1), Block: block},
		&hir.Function{Name: "f", Body: block},
		ident("x"),
		&hir.LetStmt{Pattern: ident("x")},
		&hir.ExprStmt{Expr: lit("1", 1, 1)},
		&hir.ArrayType{Elem: typePath("u8"), Size: lit("1", 1, 1)},
		&hir.SliceType{Elem: typePath("u8")},
	}
}

func incomplete() []hir.Node {
	return []hir.Node{
		&hir.LifetimeParam{},
		&hir.PathInExpression{},
		&hir.TypePathSegment{},
		&hir.TypePathSegmentGeneric{},
		&hir.TypePathSegmentFunction{},
		&hir.TypePath{},
		&hir.QualifiedPathInExpression{},
		&hir.QualifiedPathInType{},
		&hir.BorrowExpr{},
		&hir.DereferenceExpr{},
		&hir.ErrorPropagationExpr{},
		&hir.NegationExpr{},
		&hir.ComparisonExpr{},
		&hir.LazyBooleanExpr{},
		&hir.TypeCastExpr{},
		&hir.AssignmentExpr{},
		&hir.CompoundAssignmentExpr{},
		&hir.GroupedExpr{},
		&hir.ArrayElemsValues{},
		&hir.ArrayElemsCopied{},
		&hir.ArrayIndexExpr{},
		&hir.TupleExpr{},
		&hir.TupleIndexExpr{},
		&hir.StructExprStruct{},
		&hir.StructExprFieldIdentifier{},
		&hir.StructExprFieldIdentifierValue{},
		&hir.StructExprFieldIndexValue{},
		&hir.StructExprStructFields{},
		&hir.StructExprStructBase{},
		&hir.CallExpr{},
		&hir.MethodCallExpr{},
		&hir.FieldAccessExpr{},
		&hir.ClosureExpr{},
		&hir.ContinueExpr{},
		&hir.BreakExpr{},
		&hir.RangeFromToExpr{},
		&hir.RangeFromExpr{},
		&hir.RangeToExpr{},
		&hir.RangeFullExpr{},
		&hir.RangeFromToInclExpr{},
		&hir.RangeToInclExpr{},
		&hir.ReturnExpr{},
		&hir.UnsafeBlockExpr{},
		&hir.LoopExpr{},
		&hir.WhileLoopExpr{},
		&hir.WhileLetLoopExpr{},
		&hir.ForLoopExpr{},
		&hir.IfExprConseqElse{},
		&hir.IfLetExpr{},
		&hir.IfLetExprConseqElse{},
		&hir.MatchExpr{},
		&hir.AwaitExpr{},
		&hir.AsyncBlockExpr{},
		&hir.TypeParam{},
		&hir.ConstGenericParam{},
		&hir.LifetimeWhereClauseItem{},
		&hir.TypeBoundWhereClauseItem{},
		&hir.Module{},
		&hir.ExternCrate{},
		&hir.UseTreeGlob{},
		&hir.UseTreeList{},
		&hir.UseTreeRebind{},
		&hir.UseDeclaration{},
		&hir.TypeAlias{},
		&hir.StructStruct{},
		&hir.TupleStruct{},
		&hir.EnumItem{},
		&hir.EnumItemTuple{},
		&hir.EnumItemStruct{},
		&hir.EnumItemDiscriminant{},
		&hir.Enum{},
		&hir.Union{},
		&hir.ConstantItem{},
		&hir.StaticItem{},
		&hir.TraitItemFunc{},
		&hir.TraitItemConst{},
		&hir.TraitItemType{},
		&hir.Trait{},
		&hir.ImplBlock{},
		&hir.ExternalStaticItem{},
		&hir.ExternalFunctionItem{},
		&hir.ExternBlock{},
		&hir.LiteralPattern{},
		&hir.WildcardPattern{},
		&hir.RangePatternBoundLiteral{},
		&hir.RangePatternBoundPath{},
		&hir.RangePatternBoundQualPath{},
		&hir.RangePattern{},
		&hir.ReferencePattern{},
		&hir.StructPatternFieldTuplePat{},
		&hir.StructPatternFieldIdentPat{},
		&hir.StructPatternFieldIdent{},
		&hir.StructPattern{},
		&hir.TupleStructItemsNoRange{},
		&hir.TupleStructItemsRange{},
		&hir.TupleStructPattern{},
		&hir.TuplePatternItemsMultiple{},
		&hir.TuplePatternItemsRanged{},
		&hir.TuplePattern{},
		&hir.SlicePattern{},
		&hir.AltPattern{},
		&hir.EmptyStmt{},
		&hir.TraitBound{},
		&hir.ImplTraitType{},
		&hir.TraitObjectType{},
		&hir.ParenthesisedType{},
		&hir.ImplTraitTypeOneBound{},
		&hir.TupleType{},
		&hir.NeverType{},
		&hir.RawPointerType{},
		&hir.ReferenceType{},
		&hir.InferredType{},
		&hir.BareFunctionType{},
	}
}

func TestAllKinds(t *testing.T) {
	seen := make(map[hir.Kind]bool)
	for _, n := range detailed() {
		seen[n.Kind()] = true
		if _, err := dump.Sprint(n, 0); err != nil {
			t.Errorf("%v: unexpected err: %v", n.Kind(), err)
		}
	}
	for _, n := range incomplete() {
		k := n.Kind()
		if seen[k] {
			t.Fatalf("%v listed twice", k)
		}
		seen[k] = true
		t.Run(k.String(), func(t *testing.T) {
			testDump(t, n, lines(
				"",
				k.String()+" (INCOMPLETE -- CONTENT NOT DISPLAYED) {",
				"",
				"} // "+k.String(),
			))
		})
	}
	for _, k := range hir.Kinds() {
		if !seen[k] {
			t.Errorf("kind %v not covered", k)
		}
	}
}

func TestStubInsideFrame(t *testing.T) {
	b := &hir.BlockExpr{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: &hir.TupleExpr{}}}}
	testDump(t, b, lines(
		"",
		"BlockExpr [",
		"\t",
		"\tStmt {",
		"\t\t",
		"\t\tTupleExpr (INCOMPLETE -- CONTENT NOT DISPLAYED) {",
		"\t\t",
		"\t\t} // TupleExpr",
		"\t",
		"\t} // Stmt",
		"",
		"] // BlockExpr",
	))
}

func TestUseSpaces(t *testing.T) {
	got, err := dump.Sprint(&hir.Crate{}, dump.UseSpaces)
	if err != nil {
		t.Fatal(err)
	}
	want := lines(
		"",
		"Crate {",
		"    ",
		"    items [",
		"    ",
		"    ] // items",
		"    node_mappings: [C: 0]",
		"",
		"} // Crate",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func sampleCrate() *hir.Crate {
	return &hir.Crate{
		Items: []hir.Item{
			&hir.Function{
				Name:   "main",
				Params: []hir.FunctionParam{{Pattern: ident("argc"), Type: typePath("i32")}},
				Body: &hir.BlockExpr{
					Stmts: []hir.Stmt{
						&hir.LetStmt{Pattern: ident("x"), Init: lit("1", 4, 4)},
						&hir.ExprStmt{Expr: &hir.IfExpr{Cond: path("x"), Block: &hir.BlockExpr{}}},
					},
					Expr: path("x"),
				},
			},
			&hir.StructStruct{Name: "S", Unit: true},
		},
	}
}

func TestIdempotent(t *testing.T) {
	crate := sampleCrate()
	first, err := dump.Sprint(crate, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := dump.Sprint(crate, 0)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("dumps differ:\n%s", cmp.Diff(first, second))
	}
}

func TestConcurrentDumps(t *testing.T) {
	crate := sampleCrate()
	want, err := dump.Sprint(crate, 0)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	got := make([]string, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = dump.Sprint(crate, 0)
		}()
	}
	wg.Wait()
	for i, g := range got {
		if g != want {
			t.Errorf("dump %d differs:\n%s", i, cmp.Diff(want, g))
		}
	}
}

var errBroken = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriterError(t *testing.T) {
	err := dump.Fprint(brokenWriter{}, sampleCrate(), 0)
	if err != errBroken {
		t.Errorf("got err %v, want %v", err, errBroken)
	}
}
