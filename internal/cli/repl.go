package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/TESTMECS/generatitonal-mem/arena"
)

var replCommands = []string{
	"insert", "get", "set", "replace", "remove", "swap", "map",
	"clear", "len", "ls", "view", "deref", "views", "help", "quit",
}

// Session is an interactive string arena. Each call to Execute runs one
// command line and writes its result to the session's output.
type Session struct {
	arena *arena.Arena[string]
	out   io.Writer
	views map[string]arena.View[string]
	next  int
}

// NewSession creates a Session writing to out.
func NewSession(out io.Writer, opts ...arena.Option) *Session {
	return &Session{
		arena: arena.New[string](opts...),
		out:   out,
		views: make(map[string]arena.View[string]),
	}
}

// Execute runs one command line. It returns true when the session should end.
func (s *Session) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.printHelp()
	case "insert", "add":
		err = s.cmdInsert(args)
	case "get":
		err = s.cmdGet(args)
	case "set":
		err = s.cmdSet(args)
	case "replace":
		err = s.cmdReplace(args)
	case "remove", "rm", "del":
		err = s.cmdRemove(args)
	case "swap":
		err = s.cmdSwap(args)
	case "map":
		err = s.cmdMap(args)
	case "clear":
		live := s.arena.Live()
		s.arena.Clear()
		fmt.Fprintf(s.out, "cleared %d slot(s)\n", live)
	case "len":
		fmt.Fprintf(s.out, "slots=%d live=%d\n", s.arena.Len(), s.arena.Live())
	case "ls", "list":
		s.cmdList()
	case "view":
		err = s.cmdView(args)
	case "deref":
		err = s.cmdDeref(args)
	case "views":
		s.cmdViews()
	default:
		err = fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  insert <value>          Insert a value, print its handle
  get <h>                 Read the value behind a handle
  set <h> <value>         Overwrite in place (handle stays valid)
  replace <h> <value>     Replace contents, print the new handle
  remove <h>              Remove the value
  swap <a> <b>            Exchange the values behind two handles
  map <h> upper|lower|drop
                          Transform the value and invalidate the handle
  clear                   Remove everything
  len                     Show slot and live counts
  ls                      List live handles
  view <h>                Create a weak view, print its name
  deref <view>            Dereference a view
  views                   List views
  quit                    Exit
Handles are written <index>v<generation>, e.g. 0v1.
`)
}

func parseArgs(args []string, n int, usage string) ([]arena.Handle, error) {
	if len(args) < n {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	hs := make([]arena.Handle, n)
	for i := 0; i < n; i++ {
		h, err := arena.ParseHandle(args[i])
		if err != nil {
			return nil, err
		}
		hs[i] = h
	}
	return hs, nil
}

func (s *Session) cmdInsert(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: insert <value>")
	}
	h := s.arena.Insert(strings.Join(args, " "))
	fmt.Fprintln(s.out, h)
	return nil
}

func (s *Session) cmdGet(args []string) error {
	hs, err := parseArgs(args, 1, "get <h>")
	if err != nil {
		return err
	}
	v, ok := s.arena.Get(hs[0])
	if !ok {
		fmt.Fprintf(s.out, "%s: stale\n", hs[0])
		return nil
	}
	fmt.Fprintf(s.out, "%s: %q\n", hs[0], v)
	return nil
}

func (s *Session) cmdSet(args []string) error {
	hs, err := parseArgs(args, 1, "set <h> <value>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: set <h> <value>")
	}
	value := strings.Join(args[1:], " ")
	if !s.arena.Update(hs[0], func(v *string) { *v = value }) {
		fmt.Fprintf(s.out, "%s: stale\n", hs[0])
		return nil
	}
	fmt.Fprintf(s.out, "%s: %q\n", hs[0], value)
	return nil
}

func (s *Session) cmdReplace(args []string) error {
	hs, err := parseArgs(args, 1, "replace <h> <value>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: replace <h> <value>")
	}
	next, err := s.arena.Replace(hs[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, next)
	return nil
}

func (s *Session) cmdRemove(args []string) error {
	hs, err := parseArgs(args, 1, "remove <h>")
	if err != nil {
		return err
	}
	v, ok := s.arena.Remove(hs[0])
	if !ok {
		fmt.Fprintf(s.out, "%s: stale\n", hs[0])
		return nil
	}
	fmt.Fprintf(s.out, "removed %q\n", v)
	return nil
}

func (s *Session) cmdSwap(args []string) error {
	hs, err := parseArgs(args, 2, "swap <a> <b>")
	if err != nil {
		return err
	}
	if err := s.arena.Swap(hs[0], hs[1]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "swapped %s and %s\n", hs[0], hs[1])
	return nil
}

func (s *Session) cmdMap(args []string) error {
	hs, err := parseArgs(args, 1, "map <h> upper|lower|drop")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: map <h> upper|lower|drop")
	}

	var fn func(string, bool) (string, bool)
	switch args[1] {
	case "upper":
		fn = func(v string, ok bool) (string, bool) { return strings.ToUpper(v), ok }
	case "lower":
		fn = func(v string, ok bool) (string, bool) { return strings.ToLower(v), ok }
	case "drop":
		fn = func(string, bool) (string, bool) { return "", false }
	default:
		return fmt.Errorf("unknown transform %q", args[1])
	}

	next, err := s.arena.MapInvalidate(hs[0], fn)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, next)
	return nil
}

func (s *Session) cmdList() {
	n := 0
	for h, v := range s.arena.All() {
		fmt.Fprintf(s.out, "%s: %q\n", h, v)
		n++
	}
	if n == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
}

func (s *Session) cmdView(args []string) error {
	hs, err := parseArgs(args, 1, "view <h>")
	if err != nil {
		return err
	}
	v, ok := arena.NewView(s.arena, hs[0])
	if !ok {
		fmt.Fprintf(s.out, "%s: stale, no view created\n", hs[0])
		return nil
	}
	s.next++
	name := fmt.Sprintf("v%d", s.next)
	s.views[name] = v
	fmt.Fprintf(s.out, "%s -> %s\n", name, hs[0])
	return nil
}

func (s *Session) cmdDeref(args []string) (err error) {
	if len(args) == 0 {
		return errors.New("usage: deref <view>")
	}
	v, ok := s.views[args[0]]
	if !ok {
		return fmt.Errorf("no view named %q", args[0])
	}

	// A dangling view is a programming error; the session reports it
	// instead of exiting.
	defer func() {
		if r := recover(); r != nil {
			var uerr *arena.UseAfterInvalidateError
			if e, ok := r.(error); ok && errors.As(e, &uerr) {
				delete(s.views, args[0])
				fmt.Fprintf(s.out, "panic: %v\n", uerr)
				return
			}
			panic(r)
		}
	}()
	fmt.Fprintf(s.out, "%s: %q\n", args[0], v.Deref())
	return nil
}

func (s *Session) cmdViews() {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := s.views[name]
		fmt.Fprintf(s.out, "%s -> %s valid=%v\n", name, v.Handle(), v.Valid())
	}
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".genmem_history")
}

func completer(line string) []string {
	var out []string
	for _, c := range replCommands {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}
	return out
}

// RunREPL reads commands from the terminal until quit or EOF.
func RunREPL(s *Session) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	history := historyFile()
	if f, err := os.Open(history); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(s.out, "genmem - generational arena REPL")
	fmt.Fprintln(s.out, "Type 'help' for available commands.")

	for {
		input, err := line.Prompt("genmem> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if s.Execute(input) {
			fmt.Fprintln(s.out, "Bye!")
			break
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}
