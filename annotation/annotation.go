package annotation

import (
	"fmt"
	"log"
	"strings"

	"github.com/dasnellings/mergeTables/table"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Index maps each identifier in an annotation file to every value recorded for it,
// in the order the values appear in the file. It is not modified after ReadIndex returns.
type Index struct {
	values  map[string][]string
	records int
}

// String method for Index enables easy writing with the fmt package.
// Each identifier is written on its own line, sorted, followed by its value count and values.
func (idx Index) String() string {
	answer := new(strings.Builder)
	for _, id := range idx.IDs() {
		answer.WriteString(fmt.Sprintf("%s\t%d\t%s\n", id, len(idx.values[id]), strings.Join(idx.values[id], ",")))
	}
	return answer.String()
}

// ReadIndex reads an annotation file into an Index. The first field of each record is the
// identifier and the second is the value. Remaining fields are ignored.
func ReadIndex(filename string) (Index, error) {
	file, err := table.Open(filename)
	if err != nil {
		return Index{}, err
	}
	answer := New()
	for rec, ok := file.Read(); ok; rec, ok = file.Read() {
		if len(rec.Fields) < 2 {
			log.Printf("WARNING: annotation record '%s' in %s has no value field.\n", rec.Raw, filename)
		}
		answer.Add(rec.ID(), table.Field(rec.Fields, 1))
	}
	return answer, file.Close()
}

// New returns an empty Index.
func New() Index {
	return Index{values: make(map[string][]string)}
}

// Add appends value to the list for id. Duplicate values are retained.
func (idx *Index) Add(id, value string) {
	idx.values[id] = append(idx.values[id], value)
	idx.records++
}

// Lookup returns the values recorded for id, or an empty slice if id is unknown.
// The returned slice must not be modified.
func (idx Index) Lookup(id string) []string {
	v, found := idx.values[id]
	if !found {
		return []string{}
	}
	return slices.Clip(v)
}

// IDs returns every identifier in the index in sorted order.
func (idx Index) IDs() []string {
	answer := maps.Keys(idx.values)
	slices.Sort(answer)
	return answer
}

// Size returns the number of distinct identifiers.
func (idx Index) Size() int {
	return len(idx.values)
}

// Records returns the number of annotation records read into the index.
func (idx Index) Records() int {
	return idx.records
}
