package input

import (
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Editor is a terminal line editor with in-session history.
// Ctrl-C and Ctrl-D both end input.
type Editor struct {
	st *liner.State
}

// EditorSupported reports whether the terminal can host an Editor.
func EditorSupported() bool { return liner.TerminalSupported() }

func NewEditor() *Editor {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &Editor{st: st}
}

func (e *Editor) ReadLine(prompt string) (string, error) {
	line, err := e.st.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		e.st.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal mode.
func (e *Editor) Close() error { return e.st.Close() }
