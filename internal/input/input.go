// Package input reads user lines one at a time, either from a plain stream
// or through a line editor when attached to a terminal.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// LineReader yields one line of user input per call, without its line
// terminator. It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Scanner reads lines from any io.Reader and echoes prompts to out.
// There is no maximum line length.
type Scanner struct {
	r   *bufio.Reader
	out io.Writer
}

func NewScanner(in io.Reader, out io.Writer) *Scanner {
	if out == nil {
		out = io.Discard
	}
	return &Scanner{r: bufio.NewReader(in), out: out}
}

func (s *Scanner) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		// A final line without a terminator still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (s *Scanner) Close() error { return nil }

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Open returns a line editor when allowEditing is set and both in and out
// are terminals; otherwise a plain Scanner over in.
func Open(in, out *os.File, allowEditing bool) LineReader {
	if allowEditing && isTerminal(in) && isTerminal(out) && EditorSupported() {
		return NewEditor()
	}
	return NewScanner(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
