package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/mergeTables/merge"
	"github.com/vertgenlab/gonomics/exception"
)

func mergeUsage(mergeFlags *flag.FlagSet) {
	fmt.Print(
		"merge - append the values of an annotation file to each data matrix row with a matching identifier (first column)\n" +
			"\tFormat is chosen by extension: tsv/tsvc are tab delimited, all others comma delimited.\n" +
			"\tcsvc/tsvc files begin with a column-description line.\n\n" +
			"Usage:\n" +
			"  tabletools merge [options] -a annotation.csv -i dataMatrix.csv\n\n" +
			"Options:\n")
	mergeFlags.PrintDefaults()
}

func runMerge(args []string) {
	var err error
	mergeFlags := flag.NewFlagSet("merge", flag.ExitOnError)

	anno := mergeFlags.String("a", "", "Annotation file. Column 1 is the identifier, column 2 the value. Read fully into memory.")
	input := mergeFlags.String("i", "", "Data matrix file. Column 1 is the identifier.")
	output := mergeFlags.String("o", "", "Output file. Default: <data matrix>-merged.<ext>")
	force := mergeFlags.Bool("f", false, "Overwrite the output file without asking if it already exists.")
	noHeader := mergeFlags.Bool("noHeader", false, "Do not write the column-description line of a csvc/tsvc data matrix to the output.")
	plotFile := mergeFlags.String("plot", "", "Save a chart of merged values per row to this file (png, svg, pdf).")
	verbose := mergeFlags.Int("v", 0, "Verbose output by setting to >0.")

	mergeFlags.Usage = func() { mergeUsage(mergeFlags) }
	err = mergeFlags.Parse(args)
	exception.PanicOnErr(err)

	if *anno == "" || *input == "" {
		mergeFlags.Usage()
		errExit("\nERROR: must have inputs for -a and -i")
	}

	s := merge.DefaultSettings()
	s.AnnotationFile = *anno
	s.DataMatrixFile = *input
	s.OutputFile = *output
	s.Force = *force
	s.ForwardHeader = !*noHeader
	s.PlotFile = *plotFile
	s.Verbose = *verbose

	_, err = merge.Merge(s)
	if err != nil {
		errExit(err.Error())
	}
}
