package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mibk.dev/hirdump/hir"
)

type Options uint8

const (
	// UseSpaces indents each level with four spaces instead of a tab.
	UseSpaces Options = 1 << iota
)

// ErrInternal is wrapped by the error Fprint returns when the tree
// is malformed, e.g. when an enumerated field holds an unknown value.
var ErrInternal = errors.New("internal compiler error")

type internalError struct {
	msg string
}

func (e *internalError) Error() string { return ErrInternal.Error() + ": " + e.msg }
func (e *internalError) Unwrap() error { return ErrInternal }

// Fprint writes the dump of node to w. Errors returned by w are
// passed through as they are.
func Fprint(w io.Writer, node hir.Node, options Options) (err error) {
	d := newDumper(w, options)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*internalError)
		if !ok {
			panic(r)
		}
		// Keep what was dumped so far; it shows where things went wrong.
		d.w.Flush()
		err = ie
	}()

	d.node(node)
	if !d.bol {
		d.put("", true)
	}
	if n := len(d.frames); n > 0 {
		d.fatalf("%d frames left open", n)
	}
	return d.w.Flush()
}

// Sprint is like Fprint but returns the dump as a string.
func Sprint(node hir.Node, options Options) (string, error) {
	var b strings.Builder
	err := Fprint(&b, node, options)
	return b.String(), err
}

type delim uint8

const (
	curly delim = iota
	square
)

var delims = [...][2]string{
	curly:  {"{", "}"},
	square: {"[", "]"},
}

type indentation struct {
	depth int
	unit  string
}

func (in *indentation) increment() { in.depth++ }

func (in *indentation) decrement() {
	if in.depth == 0 {
		panic(&internalError{msg: "negative indentation"})
	}
	in.depth--
}

func (in indentation) String() string { return strings.Repeat(in.unit, in.depth) }

// dumper holds the state of a single dump.
type dumper struct {
	w      *bufio.Writer // sticky on errors
	indent indentation
	bol    bool    // at the beginning of a line
	frames []delim // open frames, innermost last
}

func newDumper(w io.Writer, options Options) *dumper {
	unit := "\t"
	if options&UseSpaces > 0 {
		unit = "    "
	}
	return &dumper{
		w:      bufio.NewWriter(w),
		indent: indentation{unit: unit},
		bol:    true,
	}
}

// put writes text, indenting it if a line starts with it. Lines embedded
// in text are indented to the current depth as well. If endline is set,
// the line is terminated.
func (d *dumper) put(text string, endline bool) {
	prefix := d.indent.String()
	if d.bol {
		d.w.WriteString(prefix)
		d.bol = false
	}

	line, rest, more := strings.Cut(text, "\n")
	d.w.WriteString(line)
	for more {
		line, rest, more = strings.Cut(rest, "\n")
		d.w.WriteByte('\n')
		d.w.WriteString(prefix)
		d.w.WriteString(line)
	}

	if endline {
		d.w.WriteByte('\n')
		d.bol = true
	}
}

// begin opens a frame called name.
func (d *dumper) begin(name string, dl delim) {
	d.put("", true)
	d.put(name+" "+delims[dl][0], true)
	d.frames = append(d.frames, dl)
	d.indent.increment()
}

// end closes the innermost frame, which must have been opened
// with the same delimiter.
func (d *dumper) end(name string, dl delim) {
	n := len(d.frames)
	if n == 0 || d.frames[n-1] != dl {
		d.fatalf("unbalanced end of frame %q", name)
	}
	d.frames = d.frames[:n-1]
	d.indent.decrement()
	d.put("", true)
	d.put(delims[dl][1]+" // "+name, true)
}

func (d *dumper) fatalf(format string, args ...any) {
	panic(&internalError{msg: fmt.Sprintf(format, args...)})
}

// node dumps any node. Kinds without a rule of their own
// get a placeholder frame.
func (d *dumper) node(n hir.Node) {
	switch n := n.(type) {
	case nil:
		d.fatalf("missing node")
	case *hir.Crate:
		d.crate(n)
	case *hir.Lifetime:
		d.lifetime(n)
	case *hir.LiteralExpr:
		d.literalExpr(n)
	case *hir.ArithmeticOrLogicalExpr:
		d.arithmeticOrLogicalExpr(n)
	case *hir.ArrayExpr:
		d.arrayExpr(n)
	case *hir.BlockExpr:
		d.blockExpr(n)
	case *hir.IfExpr:
		d.ifExpr(n)
	case *hir.Function:
		d.function(n)
	case *hir.IdentifierPattern:
		d.identifierPattern(n)
	case *hir.LetStmt:
		d.letStmt(n)
	case *hir.ExprStmt:
		d.exprStmt(n)
	case *hir.ArrayType:
		d.arrayType(n)
	case *hir.SliceType:
		d.sliceType(n)
	default:
		d.stub(n.Kind())
	}
}

func (d *dumper) stub(k hir.Kind) {
	d.begin(k.String()+" (INCOMPLETE -- CONTENT NOT DISPLAYED)", curly)
	d.end(k.String(), curly)
}
