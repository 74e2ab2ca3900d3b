package dem

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteTo renders the flattened model in DEM text form, one event per line.
// Parsing the output yields an equal Model (the repeat structure is not restored).
// Implements io.WriterTo.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	var sb strings.Builder
	for _, e := range m.Events {
		sb.Reset()
		formatEvent(&sb, e)
		n, err := bw.WriteString(sb.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// String renders the model; convenient in tests and debugging.
func (m *Model) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)
	return sb.String()
}

// String renders a single event in DEM syntax, without a trailing newline.
func (e Event) String() string {
	var sb strings.Builder
	formatEvent(&sb, e)
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatEvent(sb *strings.Builder, e Event) {
	sb.WriteString(e.Type.String())
	if len(e.Args) > 0 {
		sb.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
		sb.WriteByte(')')
	}
	for _, t := range e.Targets {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	sb.WriteByte('\n')
}
