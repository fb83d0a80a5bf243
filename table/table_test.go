package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		delim  byte
		header bool
		ext    string
	}{
		{"data.csv", ',', false, "csv"},
		{"data.csvc", ',', true, "csvc"},
		{"data.tsv", '\t', false, "tsv"},
		{"dir.v2/data.tsvc", '\t', true, "tsvc"},
		{"data.TSV", '\t', false, "TSV"},
		{"data.txt", ',', false, "txt"},
		{"data", ',', false, ""},
		{"data.tsv.gz", '\t', false, "tsv"},
	}
	for _, tt := range tests {
		f := FormatFromPath(tt.path)
		assert.Equal(t, tt.delim, f.Delim, tt.path)
		assert.Equal(t, tt.header, f.Header, tt.path)
		assert.Equal(t, tt.ext, f.Ext, tt.path)
	}
	assert.True(t, FormatFromPath("a.csv.gz").Gzip)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "dir/data", Stem("dir/data.csv"))
	assert.Equal(t, "dir/data", Stem("dir/data.tsv.gz"))
	assert.Equal(t, "dir.v2/data", Stem("dir.v2/data"))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line  string
		delim byte
		want  []string
	}{
		{"A,1", ',', []string{"A", "1"}},
		{"A\t1\t2", '\t', []string{"A", "1", "2"}},
		{"A,1,2", '\t', []string{"A,1,2"}},
		{"A,", ',', []string{"A", ""}},
		{"A", ',', []string{"A"}},
		{`A,"x,y",z`, ',', []string{"A", "x,y", "z"}},
		{`A,"say ""hi"""`, ',', []string{"A", `say "hi"`}},
		{`A,""`, ',', []string{"A", ""}},
		{`A,b"c`, ',', []string{"A", `b"c`}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.line, tt.delim), tt.line)
	}
}

func TestRecordID(t *testing.T) {
	r := ParseRecord("id1,x,y", ',')
	assert.Equal(t, "id1", r.ID())
	assert.Equal(t, "id1,x,y", r.Raw)
	assert.Equal(t, "", Field(r.Fields, 5))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `""`, Quote(""))
	assert.Equal(t, `"1,2"`, Quote("1,2"))
	assert.Equal(t, `"a ""b"""`, Quote(`a "b"`))
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readAll(r Reader) []string {
	var answer []string
	for rec, ok := r.Read(); ok; rec, ok = r.Read() {
		answer = append(answer, rec.Raw)
	}
	return answer
}

func TestOpenPlain(t *testing.T) {
	path := writeFile(t, "in.csv", "A,1\r\n\nB,2\n")
	r, err := Open(path)
	require.NoError(t, err)
	_, ok := r.Header()
	assert.False(t, ok)
	assert.Equal(t, []string{"A,1", "B,2"}, readAll(r))
	require.NoError(t, r.Close())
}

func TestOpenHeader(t *testing.T) {
	path := writeFile(t, "in.tsvc", "id\tvalue\nA\t1\n")
	r, err := Open(path)
	require.NoError(t, err)
	h, ok := r.Header()
	require.True(t, ok)
	assert.Equal(t, []string{"id", "value"}, h.Fields)
	assert.Equal(t, []string{"A\t1"}, readAll(r))
	require.NoError(t, r.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	var openErr *FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.False(t, openErr.Write)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Open(t.TempDir())
	require.True(t, errors.As(err, &openErr))
}

func TestCreate(t *testing.T) {
	path := writeFile(t, "out.csv", "old contents that are long\n")
	w, err := Create(path, FormatFromPath(path))
	require.NoError(t, err)
	require.NoError(t, w.Write("A,x"))
	require.NoError(t, w.Close())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A,x\n", string(got))

	_, err = Create(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), Format{Delim: ','})
	var openErr *FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.True(t, openErr.Write)
}

// chdirTemp moves the working directory into a new temp dir for the duration of the test
// so relative file names can be exercised.
func chdirTemp(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
	return dir
}

func TestOpenLineEndingsAndNames(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "httpd_logs"), 0755))
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"noNewline.csv", "A,1\nA,2\nB,3", []string{"A,1", "A,2", "B,3"}},
		{"crlfNoNewline.csv", "A,1\r\nB,3\r", []string{"A,1", "B,3"}},
		{"crlf.csv", "A,1\r\nB,3\r\n", []string{"A,1", "B,3"}},
		{"single.csv", "A,1", []string{"A,1"}},
		{"empty.csv", "", nil},
		{"httpd_logs/anno.csv", "A,1\n", []string{"A,1"}},
		{"http_anno.csv", "A,1", []string{"A,1"}},
		{"stdin_anno.csv", "A,1\nB,2\n", []string{"A,1", "B,2"}},
		{"stdout_data.csv", "A,1\n", []string{"A,1"}},
	}
	for _, tt := range tests {
		require.NoError(t, os.WriteFile(tt.name, []byte(tt.content), 0644))
		r, err := Open(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, readAll(r), tt.name)
		require.NoError(t, r.Close())
	}
}

func TestOpenHeaderNoNewline(t *testing.T) {
	path := writeFile(t, "in.csvc", "id,value")
	r, err := Open(path)
	require.NoError(t, err)
	h, ok := r.Header()
	require.True(t, ok)
	assert.Equal(t, "id,value", h.Raw)
	assert.Empty(t, readAll(r))
	require.NoError(t, r.Close())
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.tsv.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(file)
	_, err = gz.Write([]byte("A\t1\nB\t2"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	r, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\t'), r.Format().Delim)
	assert.Equal(t, []string{"A\t1", "B\t2"}, readAll(r))
	require.NoError(t, r.Close())
}

func TestOpenFakeGzip(t *testing.T) {
	path := writeFile(t, "in.csv.gz", "A,1\n")
	_, err := Open(path)
	var openErr *FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
}

func TestCreateReservedNames(t *testing.T) {
	chdirTemp(t)
	for _, name := range []string{"stdout_data-merged.csv", "stderr_data-merged.csv", "http-merged.csv"} {
		w, err := Create(name, FormatFromPath(name))
		require.NoError(t, err, name)
		require.NoError(t, w.Write("A,x"))
		require.NoError(t, w.Close())
		assert.Equal(t, name, w.Path())
		got, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, "A,x\n", string(got), name)
	}
}
