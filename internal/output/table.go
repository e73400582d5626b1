package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintPairs writes key/value pairs as a borderless two-column table.
func PrintPairs(w io.Writer, title string, pairs [][2]string) {
	if title != "" {
		io.WriteString(w, title+"\n")
	}

	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(":")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}

	table.Render()
}
