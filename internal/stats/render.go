package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Styles maps config names to table styles.
var Styles = map[string]table.Style{
	"ascii":   table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"double":  table.StyleDouble,
	"bold":    table.StyleBold,
}

const maxKeysWidth = 48

// Render draws one row per summary, plus a total footer when there is more
// than one. Unknown style names fall back to rounded.
func Render(list []*Summary, style string) string {
	tw := table.NewWriter()
	st, ok := Styles[style]
	if !ok {
		st = table.StyleRounded
	}
	tw.SetStyle(st)

	tw.AppendHeader(table.Row{"Input", "Records", "Residues", "With ID", "With metadata", "Metadata keys"})
	for _, s := range list {
		tw.AppendRow(row(s))
	}
	if len(list) > 1 {
		total := New("total")
		for _, s := range list {
			total.Merge(s)
		}
		tw.AppendFooter(row(total))
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, WidthMax: maxKeysWidth},
	})
	return tw.Render()
}

func row(s *Summary) table.Row {
	keys := strings.Join(s.MetadataKeys(), ", ")
	if keys == "" {
		keys = "-"
	}
	return table.Row{
		s.Input,
		humanize.Comma(int64(s.Records)),
		humanize.Comma(int64(s.Residues)),
		fmt.Sprintf("%d", s.WithID),
		fmt.Sprintf("%d", s.WithMetadata),
		keys,
	}
}
