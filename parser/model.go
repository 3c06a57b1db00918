package parser

import "github.com/Velocidex/ordereddict"

// This file defines the output model of a recovered name.

// The columns of a result row, in output order.
var ResultColumns = []string{
	"EntryNumber",
	"UpdateTimestamp",
	"Name",
	"UpdateSequenceNumber",
	"ParentPath",
}

func ModelArtifact(record *USNRecord, options Options) *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("EntryNumber", record.EntryNumber).
		Set("UpdateTimestamp", record.UpdateTimestamp).
		Set("Name", record.Name).
		Set("UpdateSequenceNumber", record.UpdateSequenceNumber).
		Set("ParentPath", record.ParentPath).
		Set("FullPath", record.FullPath(options.PathSeparator))
}
