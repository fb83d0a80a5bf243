package table

import "strings"

// Record is one line of a delimited file. Raw is the line as read, without the line terminator.
type Record struct {
	Raw    string
	Fields []string
}

// ParseRecord splits line on delim and returns the resulting Record.
func ParseRecord(line string, delim byte) Record {
	return Record{Raw: line, Fields: Split(line, delim)}
}

// ID returns the first field of the record, the join key.
func (r Record) ID() string {
	return Field(r.Fields, 0)
}

// Field returns fields[i], or an empty string if the record is too short.
func Field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// Split breaks line into fields separated by delim. A field that begins with a double quote
// runs to the matching closing quote and may contain delim; a doubled quote inside it is read
// as a single literal quote. Surrounding quotes are removed from the returned field.
func Split(line string, delim byte) []string {
	answer := make([]string, 0, strings.Count(line, string(delim))+1)
	field := new(strings.Builder)
	var inQuotes, quoted bool
	var c byte
	for i := 0; i < len(line); i++ {
		c = line[i]
		switch {
		case inQuotes && c == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			field.WriteByte(c)
		case c == delim:
			answer = append(answer, field.String())
			field.Reset()
			quoted = false
		case c == '"' && field.Len() == 0 && !quoted:
			inQuotes = true
			quoted = true
		default:
			field.WriteByte(c)
		}
	}
	return append(answer, field.String())
}

// Quote wraps s in double quotes, doubling any quotes s already contains.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
