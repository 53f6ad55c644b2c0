package dump

import "mibk.dev/hirdump/hir"

func (d *dumper) identifierPattern(p *hir.IdentifierPattern) {
	d.put(p.Name, false)
}
