package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/usagi/internal/model"
	"github.com/Makepad-fr/usagi/internal/store"
	"github.com/Makepad-fr/usagi/internal/tui"
)

// -------------- one-shot commands on a saved list --------------

func (r *runner) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view FILE",
		Aliases: []string{"ls"},
		Short:   "Print a saved list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.doView(args[0])
		},
	}
	r.formatFlag(cmd)
	return cmd
}

func (r *runner) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add FILE ITEM...",
		Short: "Append an item to a saved list (words are joined)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.doAdd(args[0], strings.Join(args[1:], " "))
		},
	}
	r.formatFlag(cmd)
	return cmd
}

func (r *runner) rmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm FILE INDEX",
		Aliases: []string{"remove"},
		Short:   "Remove the item at a 1-based index from a saved list",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return usageErrorf("rm: not a number: %s", args[1])
			}
			return r.doRemove(args[0], n)
		},
	}
	r.formatFlag(cmd)
	return cmd
}

func (r *runner) browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse and edit a saved list full-screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.codec()
			if err != nil {
				return err
			}
			if err := tui.Run(args[0], c, r.p, r.log); err != nil {
				return runtimeError(fmt.Errorf("browse: %w", err))
			}
			return nil
		},
	}
	r.formatFlag(cmd)
	return cmd
}

// formatFlag adds --format to a one-shot command. The interactive session
// always uses plain text.
func (r *runner) formatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.opt.Format, "format", store.Text.Name,
		"file format: "+strings.Join(store.FormatNames, ", "))
}

func (r *runner) codec() (store.Codec, error) {
	c, err := store.ByName(r.opt.Format)
	if err != nil {
		return store.Codec{}, usageErrorf("%v", err)
	}
	return c, nil
}

// load reads a saved list; a missing file is an empty list when allowMissing is set.
func (r *runner) load(path string, allowMissing bool) (*model.List, error) {
	c, err := r.codec()
	if err != nil {
		return nil, err
	}
	l := model.New()
	if _, err := c.LoadInto(l, path); err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, runtimeError(fmt.Errorf("load: %w", err))
	}
	return l, nil
}

func (r *runner) save(path string, l *model.List) error {
	c, err := r.codec()
	if err != nil {
		return err
	}
	if err := c.Save(path, l.Items()); err != nil {
		return runtimeError(fmt.Errorf("save: %w", err))
	}
	r.log.Debug("saved", zap.String("path", path), zap.Int("count", l.Len()))
	return nil
}

func (r *runner) doView(path string) error {
	l, err := r.load(path, false)
	if err != nil {
		return err
	}
	lines := []string{r.p.Header("Shopping list", l.Len()), ""}
	lines = append(lines, r.p.ListLines(l.Items())...)
	lines = append(lines, "", r.p.Muted(fmt.Sprintf("Tip: add with `usagi add %s \"Buy milk\"`", path)))
	r.p.Panel(lines)
	return nil
}

func (r *runner) doAdd(path, title string) error {
	if model.Normalize(title) == "" {
		return usageErrorf("add: empty item")
	}
	l, err := r.load(path, true)
	if err != nil {
		return err
	}
	l.Add(title)
	if err := r.save(path, l); err != nil {
		return err
	}
	r.p.OK(fmt.Sprintf("added (now %d items)", l.Len()))
	return nil
}

func (r *runner) doRemove(path string, userIndex int) error {
	l, err := r.load(path, false)
	if err != nil {
		return err
	}
	it, err := l.Remove(userIndex)
	if err != nil {
		r.log.Warn("remove rejected", zap.String("path", path), zap.Error(err))
		msg := fmt.Sprintf("index out of range: have %d, got %d", l.Len(), userIndex)
		r.p.Fail(msg)
		fmt.Fprintln(r.io.Err, r.p.Muted("Hint: run `usagi ls "+path+"` to see valid indexes"))
		return &exitError{code: 2, err: errors.New(msg), reported: true}
	}
	if err := r.save(path, l); err != nil {
		return err
	}
	r.p.OK("removed: " + it)
	return nil
}
