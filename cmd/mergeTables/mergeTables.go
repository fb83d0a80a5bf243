// Command mergeTables appends the values of an annotation table to each row of a data matrix
// sharing the same identifier in the first column.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dasnellings/mergeTables/merge"
)

const version string = "0.1.0"

func usage(w io.Writer) {
	fmt.Fprint(w,
		"mergeTables v"+version+" - merge annotation values into a data matrix using the first column (ID)\n\n"+
			"Usage:\n"+
			"  mergeTables <input file path> <data matrix path> [-o <output path>]\n\n"+
			"Options:\n"+
			"  -h             Show this message\n"+
			"  -f             Override the existing '-merged' file even if it already exists.\n"+
			"  -o <path>      Output file. Default: <data matrix>-merged.<ext> next to the data matrix.\n"+
			"  -v             Verbose output.\n"+
			"  -plot <path>   Save a chart of merged values per row (png, svg, pdf).\n\n"+
			"Examples:\n"+
			"  mergeTables input_file.csv data_matrix.csv\n"+
			"        Merge 'data_matrix.csv' and 'input_file.csv' using the first column (ID).\n"+
			"        The output will be located in the same directory as 'data_matrix.csv'.\n"+
			"  mergeTables input_file.csv data_matrix.csv -o ~/merged_file.csv\n"+
			"        The output will be located at $HOME/merged_file.csv.\n")
}

// options are the parsed command line arguments.
type options struct {
	positional []string
	output     string
	force      bool
	verbose    bool
	plot       string
	help       bool
}

// parseArgs accepts flags before, between, and after the positional arguments.
func parseArgs(args []string) (options, error) {
	var opt options
	var err error
	fs := flag.NewFlagSet("mergeTables", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opt.output, "o", "", "")
	fs.BoolVar(&opt.force, "f", false, "")
	fs.BoolVar(&opt.verbose, "v", false, "")
	fs.StringVar(&opt.plot, "plot", "", "")
	fs.BoolVar(&opt.help, "h", false, "")

	for {
		err = fs.Parse(args)
		if err != nil {
			msg := err.Error()
			switch {
			case msg == "flag needs an argument: -o":
				msg = "No valid output path entered."
			case strings.HasPrefix(msg, "flag provided but not defined: "):
				msg = fmt.Sprintf("Unknown flag '%s'", strings.TrimPrefix(msg, "flag provided but not defined: "))
			}
			return opt, &merge.UsageError{Msg: msg}
		}
		if fs.NArg() == 0 {
			break
		}
		opt.positional = append(opt.positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if strings.HasPrefix(opt.output, "-") {
		return opt, &merge.UsageError{Msg: "No valid output path entered."}
	}
	if len(opt.positional) > 2 {
		return opt, &merge.UsageError{Msg: fmt.Sprintf("Unexpected argument '%s'", opt.positional[2])}
	}
	return opt, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 1
	}

	opt, err := parseArgs(args)
	if err != nil {
		usage(stderr)
		fmt.Fprintln(stderr, err)
		return 1
	}
	if opt.help {
		usage(stdout)
		return 0
	}

	s := merge.DefaultSettings()
	if len(opt.positional) > 0 {
		s.AnnotationFile = opt.positional[0]
	}
	if len(opt.positional) > 1 {
		s.DataMatrixFile = opt.positional[1]
	}
	s.OutputFile = opt.output
	s.Force = opt.force
	s.PlotFile = opt.plot
	if opt.verbose {
		s.Verbose = 1
	}
	s.Prompter = merge.NewLinePrompter(stdin, stdout)
	s.Stdout = stdout

	_, err = merge.Merge(s)
	var usageErr *merge.UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr):
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
