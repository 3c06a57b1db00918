package main

import (
	"fmt"
	"io"
	"os"

	"www.velocidex.com/golang/go-sdelete/parser"
)

var (
	check_command = app.Command(
		"check", "Check if filenames look like SDelete placeholders.")

	check_command_names = check_command.Arg(
		"name", "Filenames to check",
	).Required().Strings()
)

func checkNames(out io.Writer, names []string) {
	for _, name := range names {
		if parser.HasPlaceholderPattern(name) {
			fmt.Fprintf(out, "%s: placeholder\n", name)
		} else {
			fmt.Fprintf(out, "%s: not placeholder\n", name)
		}
	}
}

func doCheck() {
	checkNames(os.Stdout, *check_command_names)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case check_command.FullCommand():
			doCheck()
		default:
			return false
		}
		return true
	})
}
