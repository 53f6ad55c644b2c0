package dump

import "mibk.dev/hirdump/hir"

func (d *dumper) crate(c *hir.Crate) {
	d.begin("Crate", curly)
	d.innerAttrs(c.InnerAttrs)

	d.begin("items", square)
	for _, item := range c.Items {
		d.node(item)
	}
	d.end("items", square)

	d.put("node_mappings: "+c.Mappings().String(), true)
	d.end("Crate", curly)
}

func (d *dumper) attribute(a hir.Attribute) {
	d.put(a.Path, false)
	if a.HasInput() {
		d.put(a.Input, false)
	}
}

func (d *dumper) innerAttrs(attrs []hir.Attribute) {
	if len(attrs) == 0 {
		return
	}
	d.begin("inner_attrs", square)
	for _, a := range attrs {
		d.attribute(a)
		d.put("", true)
	}
	d.end("inner_attrs", square)
}

// function prints its fields in a fixed order; dumps are diffed.
func (d *dumper) function(f *hir.Function) {
	d.begin("Function", curly)

	d.put("func_name: "+f.Name+",", true)

	d.put("return_type: ", false)
	if f.HasReturnType() {
		d.put(f.Return.String()+",", true)
	} else {
		d.put("void,", true)
	}

	if f.HasFunctionParams() {
		d.begin("params", square)
		for _, p := range f.Params {
			d.put(p.String()+",", true)
		}
		d.end("params", square)

		d.begin("node_mappings", square)
		for _, p := range f.Params {
			name := ""
			if p.Pattern != nil {
				name = p.Pattern.String()
			}
			d.put(name+":"+p.Mappings().String()+",", true)
		}
		d.end("node_mappings", square)
	}

	if f.Body == nil {
		d.fatalf("function %s has no body", f.Name)
	}
	d.blockExpr(f.Body)

	d.put("node_mappings: "+f.Mappings().String(), true)
	d.end("Function", curly)
}
