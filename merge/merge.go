package merge

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dasnellings/mergeTables/annotation"
	"github.com/dasnellings/mergeTables/table"
	"github.com/vertgenlab/gonomics/exception"
)

// HeaderLabel is the column description added to a forwarded column-description record.
const HeaderLabel = `"Merged from the input"`

// Settings holds the options for a single Merge run.
type Settings struct {
	AnnotationFile string
	DataMatrixFile string
	OutputFile     string // derived with OutputPath when empty
	Force          bool   // overwrite an existing output without asking
	ForwardHeader  bool   // write the data matrix column-description record to the output
	Verbose        int
	PlotFile       string // optional png of the values-per-row distribution
	Prompter       Prompter
	Stdout         io.Writer
}

// DefaultSettings returns Settings that forward the header and prompt on stdin/stdout.
func DefaultSettings() Settings {
	return Settings{
		ForwardHeader: true,
		Prompter:      NewLinePrompter(os.Stdin, os.Stdout),
		Stdout:        os.Stdout,
	}
}

// Merge left-joins the data matrix file against the annotation file on the first column of each,
// appending the annotation values as a quoted column to every data matrix record.
func Merge(s Settings) (Summary, error) {
	var err error
	if s.AnnotationFile == "" {
		return Summary{}, &UsageError{Msg: "No input files has been provided. See 'help' for reference."}
	}
	if s.DataMatrixFile == "" {
		return Summary{}, &UsageError{Msg: "No data matrix file has been provided. See 'help' for reference."}
	}
	if s.Prompter == nil {
		s.Prompter = FixedPrompter(false)
	}
	if s.Stdout == nil {
		s.Stdout = io.Discard
	}

	idx, err := annotation.ReadIndex(s.AnnotationFile)
	if err != nil {
		return Summary{}, err
	}
	if s.Verbose > 0 {
		log.Printf("read %d annotation records for %d identifiers from %s\n", idx.Records(), idx.Size(), s.AnnotationFile)
	}

	in, err := table.Open(s.DataMatrixFile)
	if err != nil {
		return Summary{}, err
	}
	defer cleanup(in)

	if s.OutputFile == "" {
		s.OutputFile = OutputPath(s.DataMatrixFile)
	}
	if err = PrepareOutput(s.DataMatrixFile, s.OutputFile, s.Force, s.Prompter); err != nil {
		return Summary{}, err
	}

	out, err := table.Create(s.OutputFile, in.Format())
	if err != nil {
		return Summary{}, err
	}

	summary, err := Stream(idx, in, out, s.ForwardHeader)
	if err != nil {
		return summary, discardOutput(out, err)
	}
	err = out.Close()
	exception.PanicOnErr(err)

	if s.Verbose > 0 {
		Report(summary)
	}
	if s.PlotFile != "" {
		if err = WritePlot(summary, s.PlotFile); err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(s.Stdout, "The output file is located at '%s'\n", s.OutputFile)
	return summary, nil
}

// Stream writes one output record for every record in in, in input order. Each output record is the
// input record followed by the delimiter and the quoted, delimiter-joined values idx holds for its
// identifier. If forwardHeader is set, a column-description record in in is written first with
// HeaderLabel appended.
func Stream(idx annotation.Index, in table.Reader, out *table.Writer, forwardHeader bool) (Summary, error) {
	var err error
	var answer Summary
	delim := in.Format().Delim

	if header, ok := in.Header(); ok && forwardHeader {
		if err = out.Write(header.Raw + string(delim) + HeaderLabel); err != nil {
			return answer, err
		}
		answer.HeaderForwarded = true
	}

	var values []string
	for rec, ok := in.Read(); ok; rec, ok = in.Read() {
		values = idx.Lookup(rec.ID())
		if err = out.Write(JoinLine(rec.Raw, values, delim)); err != nil {
			return answer, err
		}
		answer.add(len(values))
	}
	answer.finish()
	return answer, nil
}

// JoinLine appends delim and the quoted, delim-joined values to raw.
func JoinLine(raw string, values []string, delim byte) string {
	s := new(strings.Builder)
	s.WriteString(raw)
	s.WriteByte(delim)
	s.WriteString(table.Quote(strings.Join(values, string(delim))))
	return s.String()
}

// discardOutput closes and removes a partially written output, returning cause joined with any close error.
func discardOutput(out *table.Writer, cause error) error {
	err := errors.Join(cause, out.Close())
	if rmErr := os.Remove(out.Path()); rmErr != nil {
		log.Printf("WARNING: could not remove partial output %s: %v\n", out.Path(), rmErr)
	}
	return err
}

func cleanup(c io.Closer) {
	err := c.Close()
	exception.PanicOnErr(err)
}
