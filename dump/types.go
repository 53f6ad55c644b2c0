package dump

import "mibk.dev/hirdump/hir"

func (d *dumper) lifetime(l *hir.Lifetime) {
	if l.Error {
		d.put("ERROR-MARK-STRING error lifetime", false)
		return
	}

	switch l.Type {
	case hir.NamedLifetime:
		d.put("'"+l.Name, false)
	case hir.StaticLifetime:
		d.put("'static", false)
	case hir.WildcardLifetime:
		d.put("'_", false)
	default:
		d.fatalf("unknown lifetime type %d", l.Type)
	}
}

func (d *dumper) arrayType(t *hir.ArrayType) {
	if t.Elem == nil {
		d.fatalf("array type without element type")
	}
	d.put("["+t.Elem.String()+"; ", false)
	d.node(t.Size)
	d.put("]", false)
}

func (d *dumper) sliceType(t *hir.SliceType) {
	if t.Elem == nil {
		d.fatalf("slice type without element type")
	}
	d.put("&["+t.Elem.String()+"]", false)
}
