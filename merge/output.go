package merge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dasnellings/mergeTables/table"
)

// Suffix is appended to the data matrix file name to derive the default output path.
const Suffix = "-merged"

// OutputPath derives the default output path from the data matrix path:
// <dir>/<name>-merged.<ext>, keeping a trailing .gz.
func OutputPath(dataMatrix string) string {
	f := table.FormatFromPath(dataMatrix)
	answer := table.Stem(dataMatrix) + Suffix
	if f.Ext != "" {
		answer += "." + f.Ext
	}
	if f.Gzip {
		answer += ".gz"
	}
	return answer
}

// PrepareOutput checks whether output may be written. Unless force is set, an existing
// output file is only replaced if p confirms. A declined overwrite returns a
// *DeclinedOverwriteError naming input and leaves the existing file untouched.
func PrepareOutput(input, output string, force bool, p Prompter) error {
	if force {
		return nil
	}
	file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err == nil {
		return file.Close()
	}
	if !errors.Is(err, fs.ErrExist) {
		// table.Create reports the failure with the output path
		return nil
	}

	ok, err := p.Confirm(fmt.Sprintf("File '%s' already exists. Do you wish to override it? [y/N] ", output))
	if err != nil {
		return err
	}
	if !ok {
		return &DeclinedOverwriteError{Input: input, Output: output}
	}
	return nil
}
