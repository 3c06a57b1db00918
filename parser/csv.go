package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The columns we read from a $J export. Other columns (e.g. those
// emitted by MFTECmd) are ignored.
var RequiredColumns = []string{
	"EntryNumber",
	"UpdateTimestamp",
	"UpdateReasons",
	"Name",
	"UpdateSequenceNumber",
	"ParentPath",
}

const utf8_bom = "\ufeff"

type MissingColumnsError struct {
	Columns []string
}

func (self *MissingColumnsError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: %s",
		strings.Join(self.Columns, ", "))
}

// ParseUSNCSV reads an exported USN journal. The first row must be
// a header naming at least the RequiredColumns.
func ParseUSNCSV(reader io.Reader) ([]*USNRecord, error) {
	csv_reader := csv.NewReader(reader)
	csv_reader.FieldsPerRecord = -1

	header, err := csv_reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("CSV has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index, err := getColumnIndex(header)
	if err != nil {
		return nil, err
	}

	result := []*USNRecord{}
	for {
		row, err := csv_reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}

		get := func(column string) string {
			idx := index[column]
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}

		line, _ := csv_reader.FieldPos(0)
		entry_number, err := strconv.ParseInt(
			strings.TrimSpace(get("EntryNumber")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"line %v: invalid EntryNumber %q", line, get("EntryNumber"))
		}

		result = append(result, &USNRecord{
			EntryNumber:          entry_number,
			UpdateTimestamp:      get("UpdateTimestamp"),
			UpdateReasons:        get("UpdateReasons"),
			Name:                 get("Name"),
			UpdateSequenceNumber: get("UpdateSequenceNumber"),
			ParentPath:           get("ParentPath"),
		})
	}

	DebugPrint("Parsed %v USN records\n", len(result))
	return result, nil
}

func ParseUSNCSVFile(path string) ([]*USNRecord, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %v: %w", path, err)
	}
	defer fd.Close()

	records, err := ParseUSNCSV(fd)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return records, nil
}

func getColumnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for idx, column := range header {
		if idx == 0 {
			column = strings.TrimPrefix(column, utf8_bom)
		}
		column = strings.TrimSpace(column)

		// First occurrence wins if a column is repeated.
		if _, pres := index[column]; !pres {
			index[column] = idx
		}
	}

	missing := []string{}
	for _, column := range RequiredColumns {
		if _, pres := index[column]; !pres {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return index, nil
}

// WriteResultsCSV writes the result records projected to
// ResultColumns.
func WriteResultsCSV(writer io.Writer, results []*USNRecord) error {
	csv_writer := csv.NewWriter(writer)

	err := csv_writer.Write(ResultColumns)
	if err != nil {
		return err
	}

	for _, record := range results {
		err := csv_writer.Write([]string{
			strconv.FormatInt(record.EntryNumber, 10),
			record.UpdateTimestamp,
			record.Name,
			record.UpdateSequenceNumber,
			record.ParentPath,
		})
		if err != nil {
			return err
		}
	}

	csv_writer.Flush()
	return csv_writer.Error()
}

func WriteResultsCSVFile(path string, results []*USNRecord) error {
	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		os.FileMode(0666))
	if err != nil {
		return fmt.Errorf("creating %v: %w", path, err)
	}

	err = WriteResultsCSV(fd, results)
	if err != nil {
		fd.Close()
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return fd.Close()
}
