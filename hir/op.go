package hir

//go:generate go tool stringer -type ArithmeticOrLogicalOperator,ComparisonOperator,LazyBooleanOperator,LiteralKind,LifetimeType -linecomment -output op_string.go

// ArithmeticOrLogicalOperator is the operator of an [ArithmeticOrLogicalExpr]
// or a [CompoundAssignmentExpr].
type ArithmeticOrLogicalOperator uint8

const (
	Add        ArithmeticOrLogicalOperator = iota // +
	Subtract                                      // -
	Multiply                                      // *
	Divide                                        // /
	Modulus                                       // %
	BitwiseAnd                                    // &
	BitwiseOr                                     // |
	BitwiseXor                                    // ^
	LeftShift                                     // <<
	RightShift                                    // >>
)

type ComparisonOperator uint8

const (
	Equal            ComparisonOperator = iota // ==
	NotEqual                                   // !=
	GreaterThan                                // >
	LessThan                                   // <
	GreaterOrEqual                             // >=
	LessOrEqual                                // <=
)

type LazyBooleanOperator uint8

const (
	LogicalOr  LazyBooleanOperator = iota // ||
	LogicalAnd                            // &&
)

// LiteralKind tells how the text of a [Literal] is to be read.
type LiteralKind uint8

const (
	CharLit       LiteralKind = iota // char
	StringLit                        // string
	ByteLit                          // byte
	ByteStringLit                    // byte string
	IntLit                           // integer
	FloatLit                         // float
	BoolLit                          // bool
)

type LifetimeType uint8

const (
	NamedLifetime    LifetimeType = iota // named
	StaticLifetime                       // static
	WildcardLifetime                     // wildcard
)
