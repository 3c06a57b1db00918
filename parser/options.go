package parser

const (
	// Separator used when joining ParentPath and Name. The journal
	// is exported from Windows so paths use backslashes.
	DefaultPathSeparator = "\\"
)

type Options struct {
	// Joins ParentPath and Name into the FullPath of a result.
	PathSeparator string
}

func GetDefaultOptions() Options {
	return Options{
		PathSeparator: DefaultPathSeparator,
	}
}
