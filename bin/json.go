package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/go-sdelete/parser"
)

var (
	json_command = app.Command(
		"json", "Emit recovered names as JSON lines.")

	json_command_file_arg = json_command.Flag(
		"file", "Path to the input CSV file containing USN Journal data.",
	).Short('f').Required().String()
)

func writeJSONL(out io.Writer, results []*parser.USNRecord,
	options parser.Options) error {
	for _, record := range results {
		serialized, err := json.Marshal(parser.ModelArtifact(record, options))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(serialized))
	}
	return nil
}

func doJSON() {
	results, _, err := parser.FindArtifacts(*json_command_file_arg)
	kingpin.FatalIfError(err, "Can not process USN journal")

	err = writeJSONL(os.Stdout, results, parser.GetDefaultOptions())
	kingpin.FatalIfError(err, "Marshal")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case json_command.FullCommand():
			doJSON()
		default:
			return false
		}
		return true
	})
}
