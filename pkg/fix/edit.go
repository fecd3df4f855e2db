// Package fix holds byte-range edits, the splicer that applies them, and a
// unified diff renderer for previewing the result.
package fix

import "fmt"

// Edit replaces the bytes [Start, End) of a source with Text.
// An insertion has Start == End; a deletion has empty Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Insert returns an edit that inserts text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// Delete returns an edit that removes [start, end).
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// Replace returns an edit that replaces [start, end) with text.
func Replace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// IsInsert reports whether e removes nothing.
func (e Edit) IsInsert() bool {
	return e.Start == e.End
}

// Delta is the change in length e causes.
func (e Edit) Delta() int {
	return len(e.Text) - (e.End - e.Start)
}

func (e Edit) String() string {
	return fmt.Sprintf("[%d:%d]%q", e.Start, e.End, e.Text)
}

// Builder accumulates edits in the order they are produced.
type Builder struct {
	edits []Edit
}

// Insert records an insertion.
func (b *Builder) Insert(offset int, text string) {
	b.edits = append(b.edits, Insert(offset, text))
}

// Delete records a deletion. Empty ranges are dropped.
func (b *Builder) Delete(start, end int) {
	if start == end {
		return
	}
	b.edits = append(b.edits, Delete(start, end))
}

// Replace records a replacement.
func (b *Builder) Replace(start, end int, text string) {
	b.edits = append(b.edits, Replace(start, end, text))
}

// Len returns the number of recorded edits.
func (b *Builder) Len() int {
	return len(b.edits)
}

// Mark returns a position that Rollback can return to.
func (b *Builder) Mark() int {
	return len(b.edits)
}

// Rollback drops every edit recorded after mark.
func (b *Builder) Rollback(mark int) {
	if mark >= 0 && mark <= len(b.edits) {
		b.edits = b.edits[:mark]
	}
}

// Edits returns a copy of the recorded edits.
func (b *Builder) Edits() []Edit {
	out := make([]Edit, len(b.edits))
	copy(out, b.edits)
	return out
}
