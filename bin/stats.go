package main

import (
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/go-sdelete/parser"
)

var (
	stats_command = app.Command(
		"stats", "Show how many journal records each filter step kept.")

	stats_command_file_arg = stats_command.Flag(
		"file", "Path to the input CSV file containing USN Journal data.",
	).Short('f').Required().String()
)

func doStats() {
	_, stats, err := parser.FindArtifacts(*stats_command_file_arg)
	kingpin.FatalIfError(err, "Can not process USN journal")

	if *debug_flag {
		parser.Debug(stats)
	}

	fmt.Println(stats.DebugString())
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case stats_command.FullCommand():
			doStats()
		default:
			return false
		}
		return true
	})
}
