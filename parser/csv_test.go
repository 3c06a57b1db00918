package parser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal_header = "EntryNumber,UpdateTimestamp,UpdateReasons,Name,UpdateSequenceNumber,ParentPath\n"

func TestParseCSV(t *testing.T) {
	records, err := ParseUSNCSV(strings.NewReader(
		"\ufeffName, EntryNumber ,Extra,UpdateTimestamp,UpdateReasons,UpdateSequenceNumber,ParentPath\n" +
			"report.docx,100,x,2024-03-01 10:00:00,RenameOldName,42,.\\Users\n" +
			"\"a,b.txt\",101,y,2024-03-01 10:00:01,FileDelete|Close,43,\".\\My Docs\"\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, &USNRecord{
		EntryNumber:          100,
		UpdateTimestamp:      "2024-03-01 10:00:00",
		UpdateReasons:        "RenameOldName",
		Name:                 "report.docx",
		UpdateSequenceNumber: "42",
		ParentPath:           ".\\Users",
	}, records[0])
	assert.Equal(t, "a,b.txt", records[1].Name)
	assert.Equal(t, ".\\My Docs", records[1].ParentPath)
}

func TestParseCSVShortRow(t *testing.T) {
	records, err := ParseUSNCSV(strings.NewReader(minimal_header +
		"7,2024-03-01 10:00:00,RenameNewName\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].EntryNumber)
	assert.Equal(t, "", records[0].Name)
	assert.Equal(t, "", records[0].ParentPath)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := ParseUSNCSV(strings.NewReader(minimal_header))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseCSVMissingColumns(t *testing.T) {
	_, err := ParseUSNCSV(strings.NewReader(
		"Name,EntryNumber,UpdateTimestamp\nfoo,1,2024\n"))
	require.Error(t, err)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"UpdateReasons", "UpdateSequenceNumber",
		"ParentPath"}, missing.Columns)
	assert.Contains(t, err.Error(),
		"UpdateReasons, UpdateSequenceNumber, ParentPath")
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseUSNCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseCSVBadEntryNumber(t *testing.T) {
	_, err := ParseUSNCSV(strings.NewReader(minimal_header +
		"1,2024,RenameNewName,a,1,.\n" +
		"x1,2024,RenameNewName,b,2,.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "x1")
}

func TestParseCSVFileMissing(t *testing.T) {
	_, err := ParseUSNCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteResultsCSV(t *testing.T) {
	results := []*USNRecord{{
		EntryNumber:          100,
		UpdateTimestamp:      "2024-03-01 10:00:00",
		UpdateReasons:        "RenameOldName",
		Name:                 "a,b.txt",
		UpdateSequenceNumber: "42",
		ParentPath:           ".\\Users",
	}}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResultsCSV(buf, results))
	assert.Equal(t,
		"EntryNumber,UpdateTimestamp,Name,UpdateSequenceNumber,ParentPath\n"+
			"100,2024-03-01 10:00:00,\"a,b.txt\",42,.\\Users\n", buf.String())

	// The output reads back as the same five columns.
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteResultsCSVFile(path, results))

	fd, err := os.Open(path)
	require.NoError(t, err)
	defer fd.Close()

	_, err = ParseUSNCSV(fd)
	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"UpdateReasons"}, missing.Columns)
}

func TestWriteResultsCSVFileUnwritable(t *testing.T) {
	err := WriteResultsCSVFile(
		filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.Error(t, err)
}
