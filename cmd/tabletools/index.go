package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/dasnellings/mergeTables/annotation"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func indexUsage(indexFlags *flag.FlagSet) {
	fmt.Print(
		"index - print the identifier index of an annotation file as id, value count, and comma separated values\n\n" +
			"Usage:\n" +
			"  tabletools index [options] -a annotation.csv > index.tsv\n\n" +
			"Options:\n")
	indexFlags.PrintDefaults()
}

func runIndex(args []string) {
	var err error
	indexFlags := flag.NewFlagSet("index", flag.ExitOnError)

	anno := indexFlags.String("a", "", "Annotation file.")
	output := indexFlags.String("o", "stdout", "Output file.")
	verbose := indexFlags.Int("v", 0, "Verbose output by setting to >0.")

	indexFlags.Usage = func() { indexUsage(indexFlags) }
	err = indexFlags.Parse(args)
	exception.PanicOnErr(err)

	if *anno == "" {
		indexFlags.Usage()
		errExit("\nERROR: must input an annotation file with -a")
	}

	idx, err := annotation.ReadIndex(*anno)
	if err != nil {
		errExit(err.Error())
	}
	if *verbose > 0 {
		log.Printf("read %d annotation records for %d identifiers\n", idx.Records(), idx.Size())
	}

	// only the exact name "stdout" means standard output
	if *output != "stdout" {
		*output, err = filepath.Abs(*output)
		exception.PanicOnErr(err)
	}
	out := fileio.EasyCreate(*output)
	fmt.Fprint(out, idx)
	err = out.Close()
	exception.PanicOnErr(err)
}
