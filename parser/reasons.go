package parser

var (
	// The UpdateReasons values SDelete leaves behind while it
	// overwrites, renames and finally deletes a file. These are
	// matched against the whole column, not individual flags.
	SDELETE_REASONS = []string{
		"DataOverwrite",
		"DataOverwrite|Close",
		"RenameNewName",
		"RenameNewName|Close",
		"RenameOldName",
		"FileDelete|Close",
	}

	sdelete_reasons_lookup = make(map[string]bool)
)

func IsSDeleteReason(update_reasons string) bool {
	return sdelete_reasons_lookup[update_reasons]
}

func init() {
	for _, reason := range SDELETE_REASONS {
		sdelete_reasons_lookup[reason] = true
	}
}
