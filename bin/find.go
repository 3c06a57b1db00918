package main

import (
	"fmt"
	"io"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/go-sdelete/parser"
)

var (
	find_command = app.Command(
		"find", "Report names of files deleted by SDelete.").Default()

	find_command_file_arg = find_command.Flag(
		"file", "Path to the input CSV file containing USN Journal data.",
	).Short('f').Required().String()

	find_command_output = find_command.Flag(
		"output", "Path to the CSV file where the filtered data will be saved.",
	).Short('o').String()
)

func reportArtifacts(out io.Writer, results []*parser.USNRecord,
	output_path string, options parser.Options) error {
	fmt.Fprintf(out, "Number of files with SDelete artifacts: %d\n", len(results))

	if len(results) == 0 {
		fmt.Fprintln(out, "No SDelete artifacts were found.")
		return nil
	}

	fmt.Fprintln(out, "Details of the results:")
	for _, record := range results {
		fmt.Fprintf(out, "- Name: %s, Path: %s, UpdateTimestamp: %s\n",
			record.Name, record.FullPath(options.PathSeparator),
			record.UpdateTimestamp)
	}

	// Only write the CSV if there is something in it.
	if output_path != "" {
		err := parser.WriteResultsCSVFile(output_path, results)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV file has been successfully exported to: %s\n",
			output_path)
	}
	return nil
}

func doFind() {
	results, _, err := parser.FindArtifacts(*find_command_file_arg)
	kingpin.FatalIfError(err, "Can not process USN journal")

	err = reportArtifacts(os.Stdout, results, *find_command_output,
		parser.GetDefaultOptions())
	kingpin.FatalIfError(err, "Can not export CSV")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case find_command.FullCommand():
			doFind()
		default:
			return false
		}
		return true
	})
}
