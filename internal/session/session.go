// Package session runs the conversational prompt loop: Usagi asks what to
// add, then whether there is anything else, and slash commands may be typed
// at either prompt.
//
// The loop has two states:
//
//	awaitingItem --plain item--> awaitingConfirmation
//	awaitingConfirmation --y--> awaitingItem
//	awaitingConfirmation --n--> done
//
// End of input ends the session from either state. Quit is reported to the
// caller as OutcomeQuit rather than exiting the process.
package session

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Makepad-fr/usagi/internal/input"
	"github.com/Makepad-fr/usagi/internal/model"
	"github.com/Makepad-fr/usagi/internal/ui"
)

// DefaultPrefix marks a line as a command.
const DefaultPrefix = "/"

const inputPrompt = "> "

// Outcome says how a session ended.
type Outcome int

const (
	// OutcomeDone: end of input or a "n" answer. The final list was printed.
	OutcomeDone Outcome = iota
	// OutcomeQuit: the quit command. The final list was not printed.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeQuit:
		return "quit"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type state int

const (
	awaitingItem state = iota
	awaitingConfirmation
)

// Config wires a Session to its collaborators.
type Config struct {
	List    *model.List
	Reader  input.LineReader
	Printer *ui.Printer
	Logger  *zap.Logger
	// Prefix defaults to DefaultPrefix.
	Prefix string
}

// Session owns the list for the lifetime of one conversation.
type Session struct {
	list   *model.List
	in     input.LineReader
	p      *ui.Printer
	log    *zap.Logger
	prefix string
}

func New(cfg Config) *Session {
	s := &Session{
		list:   cfg.List,
		in:     cfg.Reader,
		p:      cfg.Printer,
		log:    cfg.Logger,
		prefix: cfg.Prefix,
	}
	if s.list == nil {
		s.list = model.New()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.prefix == "" {
		s.prefix = DefaultPrefix
	}
	return s
}

// List returns the list the session mutates.
func (s *Session) List() *model.List { return s.list }

// Run prints the banner and loops until the conversation ends.
// A read error other than io.EOF ends the session like end of input and is
// returned after the final list is printed.
func (s *Session) Run() (Outcome, error) {
	s.p.Line("Welcome to Usagi's Shopping List!")
	s.p.Linef("Type an item to add it. Type %shelp for commands.", s.prefix)
	s.p.Line("")

	st := awaitingItem
	for {
		question := "What do you want to add?"
		if st == awaitingConfirmation {
			question = "Anything else? (y/n)"
		}
		s.p.Say(question)
		line, err := s.in.ReadLine(inputPrompt)
		if err != nil {
			s.finish()
			if errors.Is(err, io.EOF) {
				s.log.Debug("end of input", zap.Int("items", s.list.Len()))
				return OutcomeDone, nil
			}
			return OutcomeDone, fmt.Errorf("read input: %w", err)
		}

		var (
			next state
			end  bool
			out  Outcome
		)
		if st == awaitingItem {
			next, end, out = s.onItem(line)
		} else {
			next, end, out = s.onConfirmation(line)
		}
		if end {
			if out == OutcomeDone {
				s.finish()
			}
			s.log.Debug("session ended", zap.Stringer("outcome", out), zap.Int("items", s.list.Len()))
			return out, nil
		}
		st = next
	}
}

func (s *Session) onItem(line string) (state, bool, Outcome) {
	text := model.Normalize(line)
	if text == "" {
		s.p.Line("(no input)")
		return awaitingItem, false, 0
	}
	if res := s.Dispatch(text); res.Handled {
		if res.Quit {
			return awaitingItem, true, OutcomeQuit
		}
		return awaitingItem, false, 0
	}
	s.list.Add(text)
	s.log.Debug("item added", zap.String("item", text), zap.Int("count", s.list.Len()))
	s.p.Success("Added: " + text)
	return awaitingConfirmation, false, 0
}

func (s *Session) onConfirmation(line string) (state, bool, Outcome) {
	text := model.Normalize(line)
	if text == "" {
		s.p.Line("Please answer y or n.")
		return awaitingConfirmation, false, 0
	}
	switch text[0] {
	case 'y', 'Y':
		return awaitingItem, false, 0
	case 'n', 'N':
		return awaitingItem, true, OutcomeDone
	}
	if s.isCommand(text) {
		res := s.Dispatch(text)
		if res.Quit {
			return awaitingConfirmation, true, OutcomeQuit
		}
		if !res.Handled {
			s.p.Linef("Please answer y or n or enter a command starting with %s.", s.prefix)
		}
		return awaitingConfirmation, false, 0
	}
	s.p.Linef("Please answer y or n. You can also use %[1]sview, %[1]ssave, %[1]shelp, etc.", s.prefix)
	return awaitingConfirmation, false, 0
}

func (s *Session) finish() {
	s.p.Line("")
	s.p.Line("Final list:")
	s.printList()
}

func (s *Session) printList() {
	if s.list.Empty() {
		s.p.Hint("(shopping list is empty)")
		return
	}
	s.p.Line("Your shopping list:")
	for pos, it := range s.list.All() {
		s.p.Linef("%d. %s", pos, it)
	}
}
