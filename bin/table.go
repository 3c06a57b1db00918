package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/go-sdelete/parser"
)

var (
	table_command = app.Command(
		"table", "Show recovered names as a table.")

	table_command_file_arg = table_command.Flag(
		"file", "Path to the input CSV file containing USN Journal data.",
	).Short('f').Required().String()
)

func renderTable(out io.Writer, results []*parser.USNRecord,
	options parser.Options) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"EntryNumber",
		"UpdateTimestamp",
		"Name",
		"USN",
		"FullPath",
	})
	table.SetAutoWrapText(false)
	table.SetCaption(true, fmt.Sprintf(
		"%d files with SDelete artifacts", len(results)))
	defer table.Render()

	for _, record := range results {
		table.Append([]string{
			fmt.Sprintf("%d", record.EntryNumber),
			record.UpdateTimestamp,
			record.Name,
			record.UpdateSequenceNumber,
			record.FullPath(options.PathSeparator),
		})
	}
}

func doTable() {
	results, _, err := parser.FindArtifacts(*table_command_file_arg)
	kingpin.FatalIfError(err, "Can not process USN journal")

	renderTable(os.Stdout, results, parser.GetDefaultOptions())
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case table_command.FullCommand():
			doTable()
		default:
			return false
		}
		return true
	})
}
