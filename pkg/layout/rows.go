package layout

// Row is one label/editor pair. Editor is nil for a trailing label in an
// odd-length sequence.
type Row struct {
	Index  int
	Label  Element
	Editor Element
}

// HasEditor reports whether the row has an editor.
func (r Row) HasEditor() bool { return r.Editor != nil }

// Pair groups children into rows: children[2i] is the label of row i and
// children[2i+1], when present, its editor.
func Pair(children []Element) []Row {
	rows := make([]Row, 0, (len(children)+1)/2)
	for i := 0; i < len(children); i += 2 {
		row := Row{Index: i / 2, Label: children[i]}
		if i+1 < len(children) {
			row.Editor = children[i+1]
		}
		rows = append(rows, row)
	}
	return rows
}

// height is the row height from the cached desired sizes.
func (r Row) height() float64 {
	h := desiredSizeWithMargin(r.Label).Height
	if r.Editor != nil {
		if eh := desiredSizeWithMargin(r.Editor).Height; eh > h {
			h = eh
		}
	}
	return h
}
