package merge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// LinePrompter writes the question to Out and reads a one-line answer from In.
// An answer starting with 'y' or 'Y' confirms. End of input declines.
type LinePrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{In: bufio.NewReader(in), Out: out}
}

func (p *LinePrompter) Confirm(question string) (bool, error) {
	var err error
	_, err = fmt.Fprint(p.Out, question)
	if err != nil {
		return false, err
	}
	answer, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y'), nil
}

// FixedPrompter answers every question with its own value without blocking.
type FixedPrompter bool

func (p FixedPrompter) Confirm(string) (bool, error) { return bool(p), nil }
