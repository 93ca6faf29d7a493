package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/usagi/internal/input"
	"github.com/Makepad-fr/usagi/internal/model"
	"github.com/Makepad-fr/usagi/internal/session"
	"github.com/Makepad-fr/usagi/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Theme   string
	NoColor bool
	Verbose bool
	NoEdit  bool   // plain line input even on a terminal
	Load    string // text file preloaded into the interactive session
	Format  string // codec of the one-shot commands
}

// Streams are the process's standard streams; tests swap them for buffers.
type Streams struct {
	In       io.Reader
	Out, Err io.Writer
}

// Stdio returns the real standard streams.
func Stdio() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// runner holds everything a command needs once flags are parsed.
type runner struct {
	opt Options
	io  Streams
	p   *ui.Printer
	log *zap.Logger
}

// Run executes the usagi command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string, streams Streams) int {
	r := &runner{io: streams}
	root := r.rootCmd()
	root.SetArgs(args)
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	err := root.Execute()
	if r.log != nil {
		_ = r.log.Sync()
	}
	if err == nil {
		return 0
	}
	if r.p == nil {
		r.p = ui.NewPrinter(streams.Out, streams.Err, ui.Options{Theme: ui.ThemeByName(r.opt.Theme), NoColor: r.opt.NoColor})
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.reported {
			r.p.Fail(ee.Error())
		}
		return ee.code
	}
	// Flag and argument errors come straight from cobra.
	r.p.Fail(err.Error())
	return 2
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "usagi",
		Short: "Usagi's interactive shopping list",
		Long: `usagi - a tiny shopping list you talk to

Run without arguments and Usagi asks what you want to add, then whether
there is anything else. Type /help at any prompt for the commands
(/view, /remove, /save, /load, /clear, /quit).`,
		Example: `  usagi
  usagi --load groceries.txt
  usagi add groceries.txt "Buy milk"
  usagi ls groceries.txt
  usagi rm groceries.txt 2
  usagi add --format json groceries.json "Buy milk"
  usagi browse groceries.txt`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validTheme(r.opt.Theme) {
				return usageErrorf("unknown theme %q (want one of %s)", r.opt.Theme, strings.Join(ui.ThemeNames, ", "))
			}
			r.p = ui.NewPrinter(r.io.Out, r.io.Err, ui.Options{
				Theme:   ui.ThemeByName(r.opt.Theme),
				NoColor: r.opt.NoColor,
			})
			r.log = newLogger(r.opt.Verbose, r.io.Err)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSession()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&r.opt.Theme, "theme", "classic", "color theme: "+strings.Join(ui.ThemeNames, ", "))
	f.BoolVar(&r.opt.NoColor, "no-color", false, "disable colored output")
	f.BoolVarP(&r.opt.Verbose, "verbose", "v", false, "debug logging to stderr")
	root.Flags().BoolVar(&r.opt.NoEdit, "no-edit", false, "read plain lines even on a terminal")
	root.Flags().StringVar(&r.opt.Load, "load", "", "load items from `FILE` before the first prompt")

	root.AddCommand(r.viewCmd(), r.addCmd(), r.rmCmd(), r.browseCmd())
	return root
}

func validTheme(name string) bool {
	for _, n := range ui.ThemeNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func (r *runner) runSession() error {
	reader := r.openReader()
	defer reader.Close()

	s := session.New(session.Config{
		List:    model.New(),
		Reader:  reader,
		Printer: r.p,
		Logger:  r.log,
	})
	if r.opt.Load != "" {
		s.Load(r.opt.Load)
	}
	outcome, err := s.Run()
	if err != nil {
		return runtimeError(err)
	}
	r.log.Debug("session finished", zap.Stringer("outcome", outcome))
	return nil
}

// openReader uses the line editor only when both ends are real terminals.
func (r *runner) openReader() input.LineReader {
	in, inOK := r.io.In.(*os.File)
	out, outOK := r.io.Out.(*os.File)
	if inOK && outOK {
		return input.Open(in, out, !r.opt.NoEdit)
	}
	return input.NewScanner(r.io.In, r.io.Out)
}
