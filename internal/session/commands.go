package session

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/usagi/internal/store"
)

// Result reports what Dispatch did with a line.
type Result struct {
	// Handled is true for every line that starts with the command prefix,
	// including unknown commands.
	Handled bool
	// Quit asks the caller to end the session without the final list.
	Quit bool
}

func (s *Session) isCommand(line string) bool {
	return strings.HasPrefix(line, s.prefix)
}

// Dispatch runs line as a command. The first whitespace-separated token
// names the command and the second is its optional argument; anything
// after that is ignored. Failures are reported to the user and never
// change the list.
func (s *Session) Dispatch(line string) Result {
	if !s.isCommand(line) {
		return Result{}
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{Handled: true}
	}
	name := strings.TrimPrefix(fields[0], s.prefix)
	var arg string
	if len(fields) > 1 {
		arg = fields[1]
	}
	s.log.Debug("command", zap.String("name", name), zap.String("arg", arg))

	switch name {
	case "view":
		s.printList()
	case "remove":
		s.doRemove(arg)
	case "save":
		s.doSave(arg)
	case "load":
		if arg == "" {
			s.p.Linef("Usage: %sload filename", s.prefix)
			break
		}
		s.Load(arg)
	case "clear":
		s.list.Clear()
		s.p.Line("Cleared the list")
	case "help":
		s.printHelp()
	case "quit":
		s.p.Line("Goodbye!")
		return Result{Handled: true, Quit: true}
	default:
		s.p.Linef("Unknown command. Type %shelp for commands.", s.prefix)
	}
	return Result{Handled: true}
}

func (s *Session) printHelp() {
	p := s.prefix
	s.p.Line("Commands:")
	s.p.Linef("  %sview            - show list", p)
	s.p.Linef("  %sremove INDEX    - remove item by number", p)
	s.p.Linef("  %ssave FILE       - save list to file", p)
	s.p.Linef("  %sload FILE       - load items from file (appends)", p)
	s.p.Linef("  %sclear           - remove all items", p)
	s.p.Linef("  %squit            - quit immediately", p)
}

func (s *Session) doRemove(arg string) {
	if arg == "" {
		s.p.Linef("Usage: %sremove INDEX", s.prefix)
		return
	}
	pos := leadingInt(arg)
	if pos <= 0 {
		s.p.Warn("Specify a positive index")
		return
	}
	it, err := s.list.Remove(pos)
	if err != nil {
		s.log.Warn("remove rejected", zap.Error(err))
		s.p.Warn("Invalid index")
		return
	}
	s.p.Line("Removed: " + it)
}

func (s *Session) doSave(path string) {
	if path == "" {
		s.p.Linef("Usage: %ssave filename", s.prefix)
		return
	}
	items := s.list.Items()
	if err := store.Text.Save(path, items); err != nil {
		s.log.Warn("save failed", zap.String("path", path), zap.Error(err))
		s.p.Warn("Failed to open file: " + err.Error())
		return
	}
	s.log.Debug("saved", zap.String("path", path), zap.Int("count", len(items)))
	s.p.Linef("Saved %d items to '%s'", len(items), path)
}

// Load appends the items of the text file at path to the list and reports
// the new count. It returns false when the file could not be read.
func (s *Session) Load(path string) bool {
	n, err := store.Text.LoadInto(s.list, path)
	if err != nil {
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		s.p.Warn("Failed to open file: " + err.Error())
		return false
	}
	s.log.Debug("loaded", zap.String("path", path), zap.Int("added", n), zap.Int("count", s.list.Len()))
	s.p.Linef("Loaded items from '%s' (now %d items)", path, s.list.Len())
	return true
}

// leadingInt reads an optional sign and the digits after it, ignoring
// whatever follows. Text with no leading digits is 0; values too large for
// an int saturate.
func leadingInt(s string) int {
	i, neg := 0, false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
