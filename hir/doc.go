// Package hir defines the high-level intermediate representation of a crate
// as it leaves name resolution.
//
// Every node belongs to exactly one [Kind] and is immutable once built.
// Besides its kind-specific fields, a node can describe itself as a single
// line of surface syntax (String) and reports the [Mapping] that correlates
// it with other compiler passes.
package hir
