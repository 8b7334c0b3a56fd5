// Package gonb displays matrix instances inside GoNB notebooks.
//
// Display renders rank-1 and rank-2 instances as HTML tables in the current
// cell; higher ranks fall back to the text Summary in a <pre> block. Outside
// a notebook everything is a no-op, so the calls are safe to leave in code
// that also runs from the command line.
package gonb

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/gomlx/matrices/pkg/core/shapes"
	"github.com/janpfeifer/gonb/gonbui"
)

// Displayable is the part of a matrix instance the notebook rendering needs.
// Instances of all three families (Numeric, Integer, Generic) implement it.
type Displayable interface {
	Name() string
	Shape() shapes.Shape
	Value() any
	Summary(precision int) string
}

// DefaultPrecision used by Display for float elements.
const DefaultPrecision = 4

// Display renders the matrix in the current notebook cell.
func Display(m Displayable) {
	DisplayWithPrecision(m, DefaultPrecision)
}

// DisplayWithPrecision renders the matrix in the current notebook cell, with
// the given precision for float elements.
func DisplayWithPrecision(m Displayable, precision int) {
	if !gonbui.IsNotebook {
		return
	}
	gonbui.DisplayHtmlf("%s", renderHTML(m, precision))
}

// renderHTML builds the HTML for one matrix: a table for ranks 1 and 2, the
// text summary for higher ranks.
func renderHTML(m Displayable, precision int) string {
	caption := fmt.Sprintf("<b>%s</b> %s",
		html.EscapeString(m.Name()), html.EscapeString(m.Shape().String()))
	if m.Shape().Rank() > 2 {
		return fmt.Sprintf("<p>%s</p>\n<pre>%s</pre>", caption, html.EscapeString(m.Summary(precision)))
	}

	var sb strings.Builder
	sb.WriteString("<table>\n")
	fmt.Fprintf(&sb, "  <caption>%s</caption>\n", caption)
	value := reflect.ValueOf(m.Value())
	if m.Shape().Rank() == 1 {
		writeRow(&sb, value, precision)
	} else {
		for ii := 0; ii < value.Len(); ii++ {
			writeRow(&sb, value.Index(ii), precision)
		}
	}
	sb.WriteString("</table>")
	return sb.String()
}

func writeRow(sb *strings.Builder, row reflect.Value, precision int) {
	sb.WriteString("  <tr>")
	for ii := 0; ii < row.Len(); ii++ {
		fmt.Fprintf(sb, "<td>%s</td>", cellText(row.Index(ii).Interface(), precision))
	}
	sb.WriteString("</tr>\n")
}

func cellText(value any, precision int) string {
	var text string
	switch v := value.(type) {
	case float32, float64:
		text = fmt.Sprintf("%.*g", precision, v)
	default:
		text = fmt.Sprintf("%v", v)
	}
	return html.EscapeString(text)
}
