package draftpatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatPrettyString is a convenience wrapper that outputs to a string instead
// of an io.Writer
func FormatPrettyString(ops []Operation, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, ops, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type palette struct {
	add, remove, replace, neutral *color.Color
}

func newPalette(colorTTY bool) palette {
	p := palette{
		add:     color.New(color.FgGreen),
		remove:  color.New(color.FgRed),
		replace: color.New(color.FgBlue),
		neutral: color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{p.add, p.remove, p.replace, p.neutral} {
		if colorTTY {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forOp(op Op) *color.Color {
	switch op {
	case OpAdd:
		return p.add
	case OpRemove:
		return p.remove
	case OpReplace:
		return p.replace
	default:
		return p.neutral
	}
}

// opSymbols are single-character markers for each op
var opSymbols = map[Op]string{
	OpAdd:     "+",
	OpRemove:  "-",
	OpReplace: "~",
}

// FormatPretty writes a text report to w, one line per operation. if colorTTY
// is true it will add
// green "+" for additions
// red "-" for removals
// blue "~" for replacements
func FormatPretty(w io.Writer, ops []Operation, colorTTY bool) error {
	p := newPalette(colorTTY)
	for _, op := range ops {
		sym, ok := opSymbols[op.Op]
		if !ok {
			sym = "?"
		}

		line := fmt.Sprintf("%s %s", sym, op.Path.Pointer())
		if op.Op != OpRemove {
			data, err := json.Marshal(op.Value)
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s: %s", line, data)
		}
		if _, err := p.forOp(op.Op).Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, colorTTY bool) string {
	if st == nil {
		return "<nil>"
	}

	p := newPalette(colorTTY)
	buf := &bytes.Buffer{}

	opsWord := "operations"
	if st.Total() == 1 {
		opsWord = "operation"
	}
	buf.WriteString(p.neutral.Sprintf("%d %s.", st.Total(), opsWord))

	addsWord := "adds"
	if st.Adds == 1 {
		addsWord = "add"
	}
	buf.WriteString(" " + p.add.Sprintf("%d %s.", st.Adds, addsWord))

	removesWord := "removes"
	if st.Removes == 1 {
		removesWord = "remove"
	}
	buf.WriteString(" " + p.remove.Sprintf("%d %s.", st.Removes, removesWord))

	replacesWord := "replaces"
	if st.Replaces == 1 {
		replacesWord = "replace"
	}
	buf.WriteString(" " + p.replace.Sprintf("%d %s.", st.Replaces, replacesWord))

	buf.WriteRune('\n')
	return buf.String()
}
