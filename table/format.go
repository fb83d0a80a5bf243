package table

import (
	"path/filepath"
	"strings"
)

// Format describes how a delimited text file is laid out. It is resolved from the file extension.
type Format struct {
	Delim  byte   // field separator, ',' or '\t'
	Header bool   // file begins with a column-description record (csvc/tsvc)
	Ext    string // extension without the leading dot or a trailing .gz
	Gzip   bool
}

// FormatFromPath resolves the Format of a file by its extension.
// .tsv and .tsvc are tab delimited, everything else is comma delimited.
// A 'c' suffix (csvc, tsvc) marks a leading column-description record.
func FormatFromPath(path string) Format {
	var answer Format
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		answer.Gzip = true
		name = name[:len(name)-3]
	}
	answer.Ext = strings.TrimPrefix(filepath.Ext(name), ".")

	switch strings.ToLower(answer.Ext) {
	case "tsv":
		answer.Delim = '\t'
	case "tsvc":
		answer.Delim = '\t'
		answer.Header = true
	case "csvc":
		answer.Delim = ','
		answer.Header = true
	default:
		answer.Delim = ','
	}
	return answer
}

// Stem returns path with its extension (and a trailing .gz) removed.
func Stem(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		path = path[:len(path)-3]
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
