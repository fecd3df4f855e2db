package fix

import (
	"fmt"
	"strings"
)

// Op classifies a diff line.
type Op int

const (
	// OpEqual is a context line present on both sides.
	OpEqual Op = iota

	// OpInsert is a line only in the new text.
	OpInsert

	// OpDelete is a line only in the old text.
	OpDelete
)

// Line is one line of a hunk, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a contiguous region of change with surrounding context.
// Line numbers are 1-based.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// Diff is a line-oriented unified diff of one file.
type Diff struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Removed int
}

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 3

// Unified computes the diff from before to after. It returns nil when the
// texts have the same lines.
func Unified(path string, before, after []byte) *Diff {
	if string(before) == string(after) {
		return nil
	}

	a := splitLines(before)
	b := splitLines(after)
	script := editScript(a, b)

	diff := &Diff{Path: path, Hunks: groupHunks(script)}
	for _, hunk := range diff.Hunks {
		for _, line := range hunk.Lines {
			switch line.Op {
			case OpInsert:
				diff.Added++
			case OpDelete:
				diff.Removed++
			case OpEqual:
			}
		}
	}
	if len(diff.Hunks) == 0 {
		return nil
	}
	return diff
}

// HasChanges reports whether d holds at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// Header returns the "diff --git" line.
func (d *Diff) Header() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff body in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", hunk.OldStart, hunk.OldLines, hunk.NewStart, hunk.NewLines)
		for _, line := range hunk.Lines {
			sb.WriteByte(line.Op.prefix())
			sb.WriteString(line.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FullString renders the header followed by the body.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.Header() + "\n" + d.String()
}

func (op Op) prefix() byte {
	switch op {
	case OpInsert:
		return '+'
	case OpDelete:
		return '-'
	default:
		return ' '
	}
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// step is one line of the edit script with its 0-based positions.
type step struct {
	op   Op
	text string
	oldN int
	newN int
}

// editScript returns a shortest line edit script from a to b.
//
// Rewrites touch few lines of large files, so the common head and tail are
// peeled off first and the quadratic LCS table only covers the middle.
func editScript(a, b []string) []step {
	head := 0
	for head < len(a) && head < len(b) && a[head] == b[head] {
		head++
	}
	tail := 0
	for tail < len(a)-head && tail < len(b)-head && a[len(a)-1-tail] == b[len(b)-1-tail] {
		tail++
	}

	script := make([]step, 0, len(a)+len(b)-head-tail)
	for i := range head {
		script = append(script, step{op: OpEqual, text: a[i], oldN: i, newN: i})
	}

	midA := a[head : len(a)-tail]
	midB := b[head : len(b)-tail]
	for _, s := range lcsScript(midA, midB) {
		s.oldN += head
		s.newN += head
		script = append(script, s)
	}

	for k := tail; k > 0; k-- {
		i, j := len(a)-k, len(b)-k
		script = append(script, step{op: OpEqual, text: a[i], oldN: i, newN: j})
	}
	return script
}

func lcsScript(a, b []string) []step {
	// table[i][j] is the LCS length of a[i:] and b[j:].
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var script []step
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			script = append(script, step{op: OpEqual, text: a[i], oldN: i, newN: j})
			i++
			j++
		case j == len(b) || (i < len(a) && table[i+1][j] >= table[i][j+1]):
			script = append(script, step{op: OpDelete, text: a[i], oldN: i, newN: j})
			i++
		default:
			script = append(script, step{op: OpInsert, text: b[j], oldN: i, newN: j})
			j++
		}
	}
	return script
}

// groupHunks cuts the script into hunks, merging changes separated by at
// most 2*ContextLines unchanged lines.
func groupHunks(script []step) []Hunk {
	var hunks []Hunk

	i := 0
	for i < len(script) {
		for i < len(script) && script[i].op == OpEqual {
			i++
		}
		if i == len(script) {
			break
		}

		start := max(i-ContextLines, 0)

		end := i
		for end < len(script) {
			if script[end].op != OpEqual {
				end++
				continue
			}
			run := end
			for run < len(script) && script[run].op == OpEqual {
				run++
			}
			if run == len(script) || run-end > 2*ContextLines {
				break
			}
			end = run
		}

		stop := min(end+ContextLines, len(script))
		hunks = append(hunks, buildHunk(script[start:stop]))
		i = stop
	}

	return hunks
}

func buildHunk(steps []step) Hunk {
	hunk := Hunk{
		OldStart: steps[0].oldN + 1,
		NewStart: steps[0].newN + 1,
		Lines:    make([]Line, 0, len(steps)),
	}
	for _, s := range steps {
		hunk.Lines = append(hunk.Lines, Line{Op: s.op, Text: s.text})
		switch s.op {
		case OpEqual:
			hunk.OldLines++
			hunk.NewLines++
		case OpDelete:
			hunk.OldLines++
		case OpInsert:
			hunk.NewLines++
		}
	}
	return hunk
}
