package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/go-sdelete/parser"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("sdelete",
		"Find the original names of files wiped by SDelete in an exported USN journal.")

	debug_flag = app.Flag("debug", "Print debug information").Bool()

	command_handlers []CommandHandler
)

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug_flag {
		parser.SetDebug(true)
	}

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
