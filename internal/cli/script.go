package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/dom"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newScriptCmd(r *root) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Drive the page headlessly from line commands (stdin by default)",
		Long:  strings.TrimSpace(scriptHelp),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			a, err := r.mount()
			if err != nil {
				return err
			}
			s := &session{app: a, out: cmd.OutOrStdout(), group: group, log: r.log}
			return s.run(in)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "ls groups output by status")
	return cmd
}

const scriptHelp = `
Commands, one per line (blank lines and # comments are skipped):

  add <text...>            Submit the creation form
  done <index>             Press "Mark as Done/Pending" on item at 1-based index
  cancel <index>           Press "Cancel"
  edit <index> <text...>   Press "Edit", fill the inline form, press "Save"
  status <index> <STATUS>  Assign PENDING|DONE|CANCELLED|DESTROYED directly
  visible <index> <bool>   Assign visibility directly
  toggle-cancelled         Press the global cancelled toggle
  ls                       List items
  html                     Print the page markup

Stops at the first failing command.
`

// session replays commands against one mounted page.
type session struct {
	app   *app.App
	out   io.Writer
	group bool
	log   *log.Logger
}

func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// exec dispatches one command.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	cmd, a := fields[0], fields[1:]
	s.log.Debug("script command", "cmd", cmd, "args", a)

	switch cmd {
	case "help":
		fmt.Fprintln(s.out, strings.TrimSpace(scriptHelp))
		return nil

	case "ls":
		s.list()
		return nil

	case "html":
		fmt.Fprintln(s.out, s.app.Doc.HTML())
		return nil

	case "add":
		if len(a) == 0 {
			return usageErr("usage: add <text...>")
		}
		return s.add(strings.Join(a, " "))

	case "done", "cancel":
		if len(a) != 1 {
			return usageErr("usage: %s <index>", cmd)
		}
		it, err := s.itemAt(a[0])
		if err != nil {
			return err
		}
		class := "button-status"
		if cmd == "cancel" {
			class = "button-cancel"
		}
		if err := s.press(it.View(), "."+class); err != nil {
			return err
		}
		ui.OK(s.out, fmt.Sprintf("%s: %s", strings.ToLower(string(it.Status())), it.Text()))
		return nil

	case "edit":
		if len(a) < 2 {
			return usageErr("usage: edit <index> <text...>")
		}
		it, err := s.itemAt(a[0])
		if err != nil {
			return err
		}
		return s.edit(it, strings.Join(a[1:], " "))

	case "status":
		if len(a) != 2 {
			return usageErr("usage: status <index> <STATUS>")
		}
		it, err := s.itemAt(a[0])
		if err != nil {
			return err
		}
		if err := it.SetStatusValue(a[1]); err != nil {
			return &exitError{code: 1, err: err}
		}
		ui.OK(s.out, "status set")
		return nil

	case "visible":
		if len(a) != 2 {
			return usageErr("usage: visible <index> <bool>")
		}
		it, err := s.itemAt(a[0])
		if err != nil {
			return err
		}
		var v any = a[1]
		if b, err := strconv.ParseBool(a[1]); err == nil {
			v = b
		}
		if err := it.SetVisibleValue(v); err != nil {
			return &exitError{code: 1, err: err}
		}
		ui.OK(s.out, "visibility set")
		return nil

	case "toggle-cancelled":
		before := app.Stats(s.app.List.Items()).Hidden
		s.app.Toggle.Click()
		after := app.Stats(s.app.List.Items()).Hidden
		ui.OK(s.out, fmt.Sprintf("toggled (hidden %d → %d)", before, after))
		return nil
	}

	return usageErr("unknown command: %s", cmd)
}

func (s *session) add(text string) error {
	form := s.app.List.Form()
	input := form.FormElement(todo.NewItemField)
	if input == nil {
		return fmt.Errorf("creation form has no %q input", todo.NewItemField)
	}
	before := s.app.List.Len()
	input.SetValue(text)
	if err := s.press(form, "button[type=submit]"); err != nil {
		return err
	}
	if s.app.List.Len() == before {
		return usageErr("add: empty text")
	}
	ui.OK(s.out, "added")
	return nil
}

func (s *session) edit(it *todo.Item, text string) error {
	if err := s.press(it.View(), ".button-edit"); err != nil {
		return err
	}
	form := it.EditForm()
	if form == nil {
		return fmt.Errorf("edit form did not open")
	}
	form.FormElement("item").SetValue(text)
	if err := s.press(form, "button[type=submit]"); err != nil {
		return err
	}
	ui.OK(s.out, "edited")
	return nil
}

// press clicks the first element under scope matching sel.
func (s *session) press(scope *dom.Element, sel string) error {
	el, err := scope.QuerySelector(sel)
	if err != nil {
		return err
	}
	el.Click()
	return nil
}

func (s *session) itemAt(arg string) (*todo.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, usageErr("not a number: %s", arg)
	}
	if n < 1 || n > s.app.List.Len() {
		return nil, usageErr("index out of range: have %d, got %d", s.app.List.Len(), n)
	}
	return s.app.List.At(n - 1), nil
}

// -------------- rendering helpers --------------

func (s *session) list() {
	t := ui.Current()
	items := s.app.List.Items()
	c := app.Stats(items)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.GlyphDone), c.Done,
		t.Pending.Render(t.GlyphPending), c.Pending,
		t.Cancelled.Render(t.GlyphCancelled), c.Cancelled,
		t.Accent.Render("Total"), c.Total(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(c.Done, c.Done+c.Pending, 28)))
	lines = append(lines, "")
	if s.group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	ui.Panel(s.out, lines)
}

// maxLineText is the display width item text is cut to in ls output.
const maxLineText = 80

func flatLines(items []*todo.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, itemLine(t, i+1, it))
	}
	return out
}

// itemLine renders one item under its 1-based list index, the index the
// item commands accept.
func itemLine(t ui.Theme, n int, it *todo.Item) string {
	text := xansi.Truncate(it.Text(), maxLineText, "...")
	line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", n)), t.Glyph(it.Status()), t.Text(it.Status(), text))
	if !it.Visible() {
		line += " " + t.Muted.Render("(hidden)")
	}
	return line
}

func groupLines(items []*todo.Item) []string {
	t := ui.Current()
	var lines []string
	for i, st := range model.Statuses() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(strings.ToLower(string(st))))
		empty := true
		for n, it := range items {
			if it.Status() != st {
				continue
			}
			lines = append(lines, itemLine(t, n+1, it))
			empty = false
		}
		if empty {
			lines = append(lines, t.Muted.Render("(none)"))
		}
	}
	return lines
}
