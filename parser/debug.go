package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var (
	SDELETE_DEBUG *bool
)

func Debug(arg interface{}) {
	spew.Dump(arg)
}

type Debugger interface {
	DebugString() string
}

// SetDebug forces debug output on or off regardless of the
// environment.
func SetDebug(value bool) {
	SDELETE_DEBUG = &value
}

func DebugPrint(fmt_str string, v ...interface{}) {
	if SDELETE_DEBUG == nil {
		// os.Environ() seems very expensive in Go so we cache
		// it.
		for _, x := range os.Environ() {
			if strings.HasPrefix(x, "SDELETE_DEBUG=") {
				value := true
				SDELETE_DEBUG = &value
				break
			}
		}
	}

	if SDELETE_DEBUG == nil {
		value := false
		SDELETE_DEBUG = &value
	}

	if *SDELETE_DEBUG {
		fmt.Printf(fmt_str, v...)
	}
}

// DebugRecords dumps each record when debugging is enabled.
func DebugRecords(title string, records []*USNRecord) {
	DebugPrint("%v: %v records\n", title, len(records))
	if !*SDELETE_DEBUG {
		return
	}

	for _, record := range records {
		var debugger Debugger = record
		fmt.Print(debugger.DebugString())
	}
}
