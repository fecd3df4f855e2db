package fix

import (
	"bytes"
	"fmt"
	"sort"
)

// RangeError describes an edit that does not fit the content.
type RangeError struct {
	Edit    Edit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// OverlapError describes two edits that claim the same bytes.
type OverlapError struct {
	First  Edit
	Second Edit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks that every edit lies within content of length contentLen.
func Validate(edits []Edit, contentLen int) error {
	for _, edit := range edits {
		switch {
		case edit.Start < 0:
			return &RangeError{Edit: edit, Message: "start offset is negative"}
		case edit.End < edit.Start:
			return &RangeError{Edit: edit, Message: "end offset is before start offset"}
		case edit.End > contentLen:
			return &RangeError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.End, contentLen),
			}
		}
	}
	return nil
}

// Prepare validates edits and returns them sorted by position.
//
// Edits at the same offset keep their recorded order, so several insertions
// at one point are emitted in the order they were produced. An insertion at
// the boundary of a removed range does not overlap it; any other shared byte
// yields an *OverlapError.
func Prepare(edits []Edit, contentLen int) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &OverlapError{First: sorted[i-1], Second: sorted[i]}
		}
	}

	return sorted, nil
}

// Apply splices edits into content and returns the new text. content is not
// modified. Bytes outside every edit are copied verbatim, in order.
func Apply(content []byte, edits []Edit) ([]byte, error) {
	prepared, err := Prepare(edits, len(content))
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		out := make([]byte, len(content))
		copy(out, content)
		return out, nil
	}

	delta := 0
	for _, e := range prepared {
		delta += e.Delta()
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range prepared {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.Text)
		cursor = e.End
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}

// Revert reconstructs the original content from output and the edits that
// produced it. originals holds, for each edit in prepared order, the bytes
// the edit replaced.
func Revert(output []byte, prepared []Edit, originals []string) ([]byte, error) {
	if len(prepared) != len(originals) {
		return nil, fmt.Errorf("revert: %d edits but %d originals", len(prepared), len(originals))
	}

	reverse := make([]Edit, len(prepared))
	shift := 0
	for i, e := range prepared {
		start := e.Start + shift
		reverse[i] = Replace(start, start+len(e.Text), originals[i])
		shift += e.Delta()
	}

	return Apply(output, reverse)
}
