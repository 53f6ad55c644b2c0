package fixture_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"mibk.dev/hirdump/dump"
	"mibk.dev/hirdump/fixture"
	"mibk.dev/hirdump/hir"
)

func m(id uint32) hir.Base {
	return hir.Base{Mapping: hir.Mapping{NodeID: id, HirID: id}}
}

func typ(id uint32, name string) *hir.TypePath {
	return &hir.TypePath{Base: m(id), Segments: []hir.TypeSegment{&hir.TypePathSegment{Ident: name}}}
}

const addFixture = `format: 1.0.0
crate:
  attrs: [feature(no_core)]
  items:
    - kind: Function
      name: add
      params:
        - pattern: {kind: IdentifierPattern, name: a}
          type: {kind: TypePath, path: i32}
      return: {kind: TypePath, path: i32}
      body:
        kind: BlockExpr
        expr:
          kind: ArithmeticOrLogicalExpr
          op: "+"
          lhs: {kind: PathInExpression, path: a}
          rhs: {kind: LiteralExpr, value: "1"}
`

func TestDecode(t *testing.T) {
	got, err := fixture.Decode(strings.NewReader(addFixture))
	if err != nil {
		t.Fatal(err)
	}

	fn := &hir.Function{
		Name: "add",
		Params: []hir.FunctionParam{{
			Base:    m(2),
			Pattern: &hir.IdentifierPattern{Base: m(3), Name: "a"},
			Type:    typ(4, "i32"),
		}},
		Return: typ(5, "i32"),
		Body: &hir.BlockExpr{
			Base: m(6),
			Expr: &hir.ArithmeticOrLogicalExpr{
				Base: m(7),
				Op:   hir.Add,
				LHS:  &hir.PathInExpression{Base: m(8), Segments: []hir.PathExprSegment{{Ident: "a"}}},
				RHS:  &hir.LiteralExpr{Base: m(9), Literal: hir.Literal{Type: hir.IntLit, Text: "1"}},
			},
		},
	}
	fn.Mapping = hir.Mapping{NodeID: 1, HirID: 1, LocalDefID: 1}
	want := &hir.Crate{
		InnerAttrs: []hir.Attribute{{Path: "feature", Input: "(no_core)"}},
		Items:      []hir.Item{fn},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("crate mismatch (-want +got):\n%s", diff)
	}
}

func TestExplicitMappings(t *testing.T) {
	const src = `format: 1.2.0
crate:
  items:
    - kind: Function
      name: f
      mappings: {node: 2, hir: 3, local: 1}
      body:
        kind: BlockExpr
        expr:
          kind: ArithmeticOrLogicalExpr
          op: "+"
          lhs: {kind: LiteralExpr, value: "1"}
          rhs: {kind: LiteralExpr, value: "2"}
`
	crate, err := fixture.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	got, err := dump.Sprint(crate, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
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
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestKinds(t *testing.T) {
	const src = `format: 1.0.0
crate:
  items:
    - kind: Module
      name: m
      items:
        - {kind: UseDeclaration, path: "std::io::*"}
        - {kind: ExternCrate, crate: core}
        - {kind: TypeAlias, name: T, type: {kind: NeverType}}
        - {kind: Enum, name: E, variants: [A, B]}
        - kind: StructStruct
          name: S
          fields:
            - {name: x, type: {kind: ReferenceType, lifetime: "'a", type: {kind: TypePath, path: str}}}
        - kind: ConstantItem
          name: N
          type: {kind: ArrayType, elem: {kind: TypePath, path: u8}, size: {kind: LiteralExpr, value: "4"}}
          value:
            kind: ArrayExpr
            elem: {kind: LiteralExpr, value: "0"}
            count: {kind: LiteralExpr, value: "4"}
        - kind: StaticItem
          name: FLAG
          mut: true
          type: {kind: TypePath, path: bool}
          value: {kind: LiteralExpr, type: bool, value: "true"}
    - kind: Function
      name: main
      body:
        kind: BlockExpr
        stmts:
          - kind: LetStmt
            pattern: {kind: TuplePattern, items: [{kind: IdentifierPattern, name: a, mut: true}, {kind: WildcardPattern}]}
            type: {kind: TupleType, elems: [{kind: TypePath, path: i32}, {kind: InferredType}]}
            init: {kind: TupleExpr, elems: [{kind: LiteralExpr, value: "1"}, {kind: LiteralExpr, value: "2"}]}
          - kind: ExprStmt
            semicolon: true
            expr:
              kind: WhileLoopExpr
              cond:
                kind: LazyBooleanExpr
                op: "&&"
                lhs: {kind: ComparisonExpr, op: "<", lhs: {kind: PathInExpression, path: a}, rhs: {kind: LiteralExpr, value: "9"}}
                rhs: {kind: NegationExpr, not: true, expr: {kind: GroupedExpr, expr: {kind: PathInExpression, path: done}}}
              body:
                kind: BlockExpr
                stmts:
                  - kind: ExprStmt
                    semicolon: true
                    expr: {kind: AssignmentExpr, lhs: {kind: PathInExpression, path: a}, rhs: {kind: CallExpr, fn: {kind: PathInExpression, path: "::std::mem::take"}, args: [{kind: BorrowExpr, mut: true, expr: {kind: PathInExpression, path: a}}]}}
          - {kind: EmptyStmt}
        expr:
          kind: IfExprConseqElse
          cond: {kind: MethodCallExpr, receiver: {kind: FieldAccessExpr, receiver: {kind: PathInExpression, path: s}, field: v}, method: is_empty}
          block: {kind: BlockExpr, expr: {kind: ReturnExpr}}
          else: {kind: BlockExpr, stmts: [{kind: ExprStmt, expr: {kind: LoopExpr, body: {kind: BlockExpr, expr: {kind: BreakExpr, expr: {kind: DereferenceExpr, expr: {kind: PathInExpression, path: p}}}}}}]}
`
	crate, err := fixture.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"mod m { use std::io::*; extern crate core; type T = !; enum E { A, B } struct S { x: &'a str } const N: [u8; 4] = [0; 4]; static mut FLAG: bool = true; }",
		"fn main() { let (mut a, _): (i32, _) = (1, 2); while a < 9 && !(done) { a = ::std::mem::take(&mut a); }; ; if s.v.is_empty() { return } else { loop { break *p } } }",
	}
	var got []string
	for _, item := range crate.Items {
		got = append(got, item.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"empty", "", 0, "empty fixture"},
		{"no format", "crate: {}\n", 0, "missing format version"},
		{"bad format", "format: one\ncrate: {}\n", 0, `format "one"`},
		{"future format", "format: 2.0.0\ncrate: {}\n", 0, "unsupported format 2.0.0"},
		{"no crate", "format: 1.0.0\n", 0, "missing crate"},
		{"unknown kind", "format: 1.0.0\ncrate:\n  items:\n    - kind: Funktion\n", 4, `unknown kind "Funktion"`},
		{"unsupported kind", "format: 1.0.0\ncrate:\n  items:\n    - kind: TupleStruct\n", 4, "kind TupleStruct not supported"},
		{"no kind", "format: 1.0.0\ncrate:\n  items:\n    - name: f\n", 4, "node without kind"},
		{"not a mapping", "format: 1.0.0\ncrate:\n  items: [1]\n", 3, "node must be a mapping"},
		{"not an item", "format: 1.0.0\ncrate:\n  items:\n    - {kind: LiteralExpr, value: \"1\"}\n", 4, "LiteralExpr is not an item"},
		{"missing body", "format: 1.0.0\ncrate:\n  items:\n    - {kind: Function, name: f}\n", 4, "Function: missing body"},
		{"missing name", "format: 1.0.0\ncrate:\n  items:\n    - {kind: Module}\n", 4, "Module: missing name"},
		{"body not a block", "format: 1.0.0\ncrate:\n  items:\n    - kind: Function\n      name: f\n      body: {kind: TupleExpr}\n", 6, "body must be a BlockExpr"},
		{
			"unknown operator",
			"format: 1.0.0\ncrate:\n  items:\n    - kind: StaticItem\n      name: X\n      type: {kind: TypePath, path: i32}\n      value:\n        kind: ArithmeticOrLogicalExpr\n        op: \"**\"\n        lhs: {kind: LiteralExpr, value: \"1\"}\n        rhs: {kind: LiteralExpr, value: \"1\"}\n",
			8, `unknown operator "**"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.Decode(strings.NewReader(tt.src))
			var de *fixture.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("got err %v, want *fixture.DecodeError", err)
			}
			if de.Line != tt.line {
				t.Errorf("got line %d, want %d", de.Line, tt.line)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestDecoderLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := &fixture.Decoder{Logger: zap.New(core)}
	if _, err := d.Decode(strings.NewReader(addFixture)); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("decoded fixture").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["items"] != int64(1) || fields["nodes"] != int64(8) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}
