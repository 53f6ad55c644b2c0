// Package fixture decodes YAML descriptions of crates into HIR trees.
//
// A fixture looks like this:
//
//	format: 1.0.0
//	crate:
//	  attrs: [feature(no_core)]
//	  items:
//	    - kind: Function
//	      name: f
//	      body:
//	        kind: BlockExpr
//	        expr: {kind: LiteralExpr, value: "1"}
//
// Every node is a mapping with a kind field naming its [hir.Kind].
// Node and HIR ids are numbered in depth-first order unless a node
// carries explicit mappings.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"mibk.dev/hirdump/hir"
)

// SupportedFormats is the constraint a fixture's format version must meet.
const SupportedFormats = "^1.0"

// DecodeError records an error and the line of the fixture it occurred on.
// Line is 0 when the position is unknown.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line:%d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// A Decoder converts fixtures into crates. The zero value is ready to use.
type Decoder struct {
	// Logger receives a summary of each decoded fixture at debug level.
	// A nil Logger discards it.
	Logger *zap.Logger
}

// Decode decodes a single fixture. Errors in the fixture itself are
// of type *DecodeError.
func Decode(r io.Reader) (*hir.Crate, error) {
	return new(Decoder).Decode(r)
}

type document struct {
	Format string `yaml:"format"`
	Crate  *struct {
		Attrs    []string    `yaml:"attrs"`
		Items    []*rawNode  `yaml:"items"`
		Mappings *rawMapping `yaml:"mappings"`
	} `yaml:"crate"`
}

type rawMapping struct {
	Crate uint32 `yaml:"crate"`
	Node  uint32 `yaml:"node"`
	HIR   uint32 `yaml:"hir"`
	Local uint32 `yaml:"local"`
}

func (m *rawMapping) mapping() hir.Mapping {
	return hir.Mapping{CrateNum: m.Crate, NodeID: m.Node, HirID: m.HIR, LocalDefID: m.Local}
}

// rawNode is a node as it appears in the fixture.
type rawNode struct {
	Kind   string
	Line   int
	fields map[string]*yaml.Node
}

func (r *rawNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &DecodeError{Line: value.Line, Err: errors.New("node must be a mapping")}
	}
	r.Line = value.Line
	r.fields = make(map[string]*yaml.Node, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		r.fields[value.Content[i].Value] = value.Content[i+1]
	}
	if k, ok := r.fields["kind"]; ok {
		r.Kind = k.Value
	}
	return nil
}

func (d *Decoder) Decode(r io.Reader) (*hir.Crate, error) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		if errors.Is(err, io.EOF) {
			return nil, &DecodeError{Err: errors.New("empty fixture")}
		}
		return nil, &DecodeError{Err: err}
	}

	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	if doc.Crate == nil {
		return nil, &DecodeError{Err: errors.New("missing crate")}
	}

	b := &builder{nextID: 1, nextLocal: 1}
	crate := &hir.Crate{InnerAttrs: attributes(doc.Crate.Attrs)}
	if m := doc.Crate.Mappings; m != nil {
		crate.Mapping = m.mapping()
	}
	for _, raw := range doc.Crate.Items {
		if item := b.item(raw); item != nil {
			crate.Items = append(crate.Items, item)
		}
	}
	if b.err != nil {
		return nil, b.err
	}

	log.Debug("decoded fixture",
		zap.String("format", doc.Format),
		zap.Int("items", len(crate.Items)),
		zap.Int("nodes", b.nodes),
	)
	return crate, nil
}

func checkFormat(format string) error {
	if format == "" {
		return &DecodeError{Err: errors.New("missing format version")}
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return &DecodeError{Err: fmt.Errorf("format %q: %v", format, err)}
	}
	c, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		panic(err)
	}
	if !c.Check(v) {
		return &DecodeError{Err: fmt.Errorf("unsupported format %v (want %s)", v, SupportedFormats)}
	}
	return nil
}

// attributes splits each attribute into its path and its input,
// e.g. `doc = "x"` into `doc` and ` = "x"`.
func attributes(attrs []string) []hir.Attribute {
	var out []hir.Attribute
	for _, a := range attrs {
		a = strings.TrimSpace(a)
		if i := strings.IndexAny(a, "( ="); i >= 0 {
			out = append(out, hir.Attribute{Path: a[:i], Input: a[i:]})
			continue
		}
		out = append(out, hir.Attribute{Path: a})
	}
	return out
}

// builder converts raw nodes into HIR nodes. The first error sticks;
// after it, conversion yields nil nodes.
type builder struct {
	nextID    uint32
	nextLocal uint32
	nodes     int
	err       error
}

func (b *builder) errorf(line int, format string, args ...any) {
	if b.err == nil {
		b.err = &DecodeError{Line: line, Err: fmt.Errorf(format, args...)}
	}
}

// mapping returns the explicit mappings of r or the next free ids.
// Items also get a local definition id.
func (b *builder) mapping(r *rawNode, item bool) hir.Mapping {
	if f, ok := r.fields["mappings"]; ok {
		var m rawMapping
		if err := f.Decode(&m); err != nil {
			b.errorf(f.Line, "mappings: %v", err)
		}
		return m.mapping()
	}
	return b.fresh(item)
}

// fresh returns the next free ids.
func (b *builder) fresh(item bool) hir.Mapping {
	m := hir.Mapping{NodeID: b.nextID, HirID: b.nextID}
	b.nextID++
	if item {
		m.LocalDefID = b.nextLocal
		b.nextLocal++
	}
	return m
}

// child returns the node in field key of r, or nil if there is none.
func (b *builder) child(r *rawNode, key string) *rawNode {
	f, ok := r.fields[key]
	if !ok || b.err != nil {
		return nil
	}
	c := new(rawNode)
	if err := f.Decode(c); err != nil {
		b.decodeErr(f, key, err)
		return nil
	}
	return c
}

func (b *builder) required(r *rawNode, key string) *rawNode {
	if _, ok := r.fields[key]; !ok {
		b.errorf(r.Line, "%s: missing %s", r.Kind, key)
		return nil
	}
	return b.child(r, key)
}

func (b *builder) children(r *rawNode, key string) []*rawNode {
	f, ok := r.fields[key]
	if !ok || b.err != nil {
		return nil
	}
	var cs []*rawNode
	if err := f.Decode(&cs); err != nil {
		b.decodeErr(f, key, err)
		return nil
	}
	for _, c := range cs {
		if c == nil {
			b.errorf(f.Line, "%s: empty node", key)
			return nil
		}
	}
	return cs
}

func (b *builder) decodeErr(f *yaml.Node, key string, err error) {
	var de *DecodeError
	if errors.As(err, &de) {
		if b.err == nil {
			b.err = de
		}
		return
	}
	b.errorf(f.Line, "%s: %v", key, err)
}

func (b *builder) str(r *rawNode, key string) string {
	f, ok := r.fields[key]
	if !ok {
		return ""
	}
	if f.Kind != yaml.ScalarNode {
		b.errorf(f.Line, "%s must be a scalar", key)
		return ""
	}
	return f.Value
}

func (b *builder) flag(r *rawNode, key string) bool {
	f, ok := r.fields[key]
	if !ok {
		return false
	}
	var v bool
	if err := f.Decode(&v); err != nil {
		b.errorf(f.Line, "%s: %v", key, err)
	}
	return v
}

func (b *builder) strs(r *rawNode, key string) []string {
	f, ok := r.fields[key]
	if !ok {
		return nil
	}
	var ss []string
	if err := f.Decode(&ss); err != nil {
		b.errorf(f.Line, "%s: %v", key, err)
	}
	return ss
}
