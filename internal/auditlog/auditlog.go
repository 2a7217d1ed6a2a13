package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the import log: a record of what a statement import
// actually did to an account.
type Entry struct {
	Timestamp time.Time
	Source    string // statement file name
	AccountID string
	Parsed    int // rows in the statement
	Appended  int // rows the reconciliation actually added
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,source,account_id,parsed,appended"

const (
	numFields    = 5
	logDir       = "logs"
	logFile      = "logs/import-log.csv"
	colTimestamp = 0
	colSource    = 1
	colAccountID = 2
	colParsed    = 3
	colAppended  = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colAccountID] = e.AccountID
	row[colParsed] = strconv.Itoa(e.Parsed)
	row[colAppended] = strconv.Itoa(e.Appended)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	parsed, err := strconv.Atoi(record[colParsed])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing parsed count %q: %w", record[colParsed], err)
	}
	appended, err := strconv.Atoi(record[colAppended])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing appended count %q: %w", record[colAppended], err)
	}

	return Entry{
		Timestamp: ts,
		Source:    record[colSource],
		AccountID: record[colAccountID],
		Parsed:    parsed,
		Appended:  appended,
	}, nil
}

// Append writes entries to <root>/logs/import-log.csv, creating the file
// and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/import-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
