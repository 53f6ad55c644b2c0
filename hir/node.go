package hir

import (
	"strconv"
	"strings"
)

// Node is implemented by every HIR node.
type Node interface {
	Kind() Kind

	// String returns the node as a single piece of surface syntax.
	// It may span several lines, e.g. for raw string literals.
	String() string

	Mappings() Mapping
}

type (
	// Expr is an expression node.
	Expr interface {
		Node
		exprNode()
	}

	// Stmt is a statement node. Items are statements too.
	Stmt interface {
		Node
		stmtNode()
	}

	// Item is a declaration that may appear at crate level.
	Item interface {
		Stmt
		itemNode()
	}

	Pattern interface {
		Node
		patternNode()
	}

	Type interface {
		Node
		typeNode()
	}

	// GenericParam is a lifetime, type or const parameter.
	GenericParam interface {
		Node
		genericParamNode()
	}
)

// Base holds the data shared by all nodes.
type Base struct {
	Mapping Mapping
}

func (b *Base) Mappings() Mapping { return b.Mapping }

// Mapping correlates a node with the ids other passes know it by.
// A zero id means the id is unknown.
type Mapping struct {
	CrateNum   uint32
	NodeID     uint32
	HirID      uint32
	LocalDefID uint32
}

func (m Mapping) String() string {
	var b strings.Builder
	b.WriteString("[C: ")
	b.WriteString(strconv.FormatUint(uint64(m.CrateNum), 10))
	if m.NodeID != 0 {
		b.WriteString(" Nid: ")
		b.WriteString(strconv.FormatUint(uint64(m.NodeID), 10))
	}
	if m.HirID != 0 {
		b.WriteString(" Hid: ")
		b.WriteString(strconv.FormatUint(uint64(m.HirID), 10))
	}
	if m.LocalDefID != 0 {
		b.WriteString(" Lid: ")
		b.WriteString(strconv.FormatUint(uint64(m.LocalDefID), 10))
	}
	b.WriteByte(']')
	return b.String()
}

// Attribute is an outer or inner attribute such as #[inline] or
// #![allow(dead_code)]. It is not a node on its own.
type Attribute struct {
	Path  string
	Input string // already rendered, e.g. `(dead_code)` or ` = "x"`
}

func (a Attribute) HasInput() bool { return a.Input != "" }

func (a Attribute) String() string { return a.Path + a.Input }

func joinNodes[T Node](nodes []T, sep string) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(n.String())
	}
	return b.String()
}

func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}
