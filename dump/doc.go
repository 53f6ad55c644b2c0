// Package dump renders an HIR tree as nested, bracketed text for debugging
// the compiler.
//
// Each node kind with a dedicated rule prints its real content. Every other
// kind prints a placeholder frame naming the kind, so that nothing in the
// tree is silently dropped:
//
//	TupleExpr (INCOMPLETE -- CONTENT NOT DISPLAYED) {
//
//	} // TupleExpr
//
// The output is meant for people and diffing tools. It cannot be parsed back.
package dump
