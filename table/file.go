package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/vertgenlab/gonomics/fileio"
)

// FileOpenError is returned when a file cannot be opened for reading or writing.
type FileOpenError struct {
	Path  string
	Write bool
	cause error
}

func (e *FileOpenError) Error() string {
	if e.Write {
		return fmt.Sprintf("couldn't open the output file '%s'", e.Path)
	}
	return fmt.Sprintf("file '%s' couldn't be opened. Either it doesn't exist, or you don't have permissions to read it", e.Path)
}

func (e *FileOpenError) Unwrap() error { return e.cause }

// Reader reads a delimited file one Record at a time.
// Blank lines are not records and are skipped.
type Reader interface {
	Format() Format
	// Header returns the column-description record, if the format carries one.
	Header() (Record, bool)
	// Read returns the next record. It returns false once the input is exhausted.
	Read() (Record, bool)
	Close() error
}

type plainReader struct {
	file   *fileio.EasyReader
	gz     *pgzip.Reader // nil unless the input is gzipped
	format Format
}

func (r *plainReader) Format() Format { return r.format }

func (r *plainReader) Header() (Record, bool) { return Record{}, false }

// Read treats a final line without a trailing newline as a record. A read error ends the input.
func (r *plainReader) Read() (Record, bool) {
	var line string
	var err error
	for err == nil {
		line, err = r.file.BuffReader.ReadString('\n')
		if err != nil && err != io.EOF {
			log.Printf("WARNING: stopped reading %s: %v\n", r.file.File.Name(), err)
			return Record{}, false
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			return ParseRecord(line, r.format.Delim), true
		}
	}
	return Record{}, false
}

func (r *plainReader) Close() error {
	var gzErr error
	if r.gz != nil {
		gzErr = r.gz.Close()
	}
	return errors.Join(gzErr, r.file.Close())
}

// headerReader consumes the column-description record when opened so that
// Read only ever returns data records.
type headerReader struct {
	plainReader
	header    Record
	hasHeader bool
}

func (r *headerReader) Header() (Record, bool) { return r.header, r.hasHeader }

// Open opens path for reading with the Format given by its extension.
func Open(path string) (Reader, error) {
	return OpenFormat(path, FormatFromPath(path))
}

// OpenFormat opens path for reading with an explicit Format.
func OpenFormat(path string, format Format) (Reader, error) {
	file, err := openReadable(path)
	if err != nil {
		return nil, err
	}
	plain := plainReader{file: &fileio.EasyReader{File: file}, format: format}
	isGzip := fileio.IsGzip(file)
	switch {
	case format.Gzip && isGzip:
		plain.gz, err = pgzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, &FileOpenError{Path: path, cause: err}
		}
		plain.file.BuffReader = bufio.NewReader(plain.gz)
	case format.Gzip:
		file.Close()
		return nil, &FileOpenError{Path: path, cause: fmt.Errorf("%s has the .gz suffix, but is not a gzip file", path)}
	default:
		plain.file.BuffReader = bufio.NewReader(file)
	}
	if !format.Header {
		return &plain, nil
	}
	answer := &headerReader{plainReader: plain}
	answer.header, answer.hasHeader = answer.plainReader.Read()
	return answer, nil
}

// openReadable opens path itself rather than through fileio.EasyOpen, which gives
// special meaning to names containing "http" or starting with "stdin".
func openReadable(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, cause: err}
	}
	if info.IsDir() {
		return nil, &FileOpenError{Path: path, cause: fmt.Errorf("%s is a directory", path)}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, cause: err}
	}
	return file, nil
}

// Writer writes records to a delimited file, one per line.
type Writer struct {
	out    *fileio.EasyWriter
	path   string
	format Format
}

// Create opens path for writing, truncating any existing file.
func Create(path string, format Format) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return nil, &FileOpenError{Path: path, Write: true, cause: err}
	}
	if err = file.Close(); err != nil {
		return nil, &FileOpenError{Path: path, Write: true, cause: err}
	}
	// fileio.EasyCreate sends names starting with "stdout" or "stderr" to the process streams
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Write: true, cause: err}
	}
	return &Writer{out: fileio.EasyCreate(abs), path: path, format: format}, nil
}

func (w *Writer) Format() Format { return w.format }

// Path returns the path the Writer was created with.
func (w *Writer) Path() string { return w.path }

// Write writes line followed by a newline.
func (w *Writer) Write(line string) error {
	_, err := fmt.Fprintln(w.out, line)
	return err
}

func (w *Writer) Close() error { return w.out.Close() }
