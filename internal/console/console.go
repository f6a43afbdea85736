// Package console is the interactive shell around the registry. It parses
// commands, prints results and owns no scheduling logic.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"daysched/internal/agenda"
	"daysched/internal/notifier"
	"daysched/internal/registry"
	"daysched/internal/task"
	"daysched/pkg/logx"
)

const helpText = `Commands:
  add <description> <HH:MM> <HH:MM> <priority>   add a task (quoting is optional; unquoted text keeps its spacing)
  remove <description>                          remove a task
  list                                          show the day's tasks by start time
  conflicts                                     show recently rejected tasks
  help                                          show this help
  quit                                          leave`

type Shell struct {
	in      io.Reader
	out     io.Writer
	reg     *registry.Registry
	factory task.Factory
	log     logx.Logger

	prompt string
}

// New builds the shell and subscribes a listener that prints conflicts to out.
func New(in io.Reader, out io.Writer, reg *registry.Registry, f task.Factory, log logx.Logger) *Shell {
	if log.IsZero() {
		log = logx.Nop()
	}
	reg.Subscribe(notifier.WriterListener(out))
	return &Shell{in: in, out: out, reg: reg, factory: f, log: log, prompt: "> "}
}

// Run reads commands until EOF, quit, or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	s.println("Daily task scheduler. Type 'help' for commands.")
	for {
		fmt.Fprint(s.out, s.prompt)
		select {
		case <-ctx.Done():
			s.println("")
			return nil
		case err := <-readErr:
			s.println("")
			return err
		case line := <-lines:
			if !s.Exec(line) {
				return nil
			}
		}
	}
}

// Exec runs one command line. It returns false when the session should end.
func (s *Shell) Exec(line string) bool {
	toks := tokenizeLine(line)
	if len(toks) == 0 {
		return true
	}
	cmd, args := strings.ToLower(toks[0]), toks[1:]
	s.log.Debug("command", logx.String("cmd", cmd), logx.Int("args", len(args)))

	switch cmd {
	case "add":
		s.add(line, args)
	case "remove", "rm":
		s.remove(line, args)
	case "list", "ls":
		for _, l := range agenda.Render(s.reg.List()) {
			s.println(l)
		}
	case "conflicts":
		s.conflicts()
	case "help", "?":
		s.println(helpText)
	case "quit", "exit":
		s.println("Goodbye.")
		return false
	default:
		s.println(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", toks[0]))
	}
	return true
}

func (s *Shell) add(line string, args []string) {
	a, ok := parseAdd(args)
	if !ok {
		s.println("Usage: add <description> <HH:MM> <HH:MM> <priority>")
		return
	}
	if rest, plain := plainRest(line); plain {
		a.Description = dropLastFields(rest, 3)
	}
	t, err := s.factory.Create(a.Description, a.Start, a.End, a.Priority)
	if err != nil {
		s.printErr(err)
		return
	}
	err = s.reg.Add(t)
	switch {
	case err == nil:
		s.println("Task added successfully.")
	case errors.Is(err, registry.ErrConflict):
		// Already printed by the conflict listener.
	default:
		s.printErr(err)
	}
}

func (s *Shell) remove(line string, args []string) {
	if len(args) == 0 {
		s.println("Usage: remove <description>")
		return
	}
	description := strings.Join(args, " ")
	if rest, plain := plainRest(line); plain {
		description = rest
	}
	if err := s.reg.Remove(description); err != nil {
		s.printErr(err)
		return
	}
	s.println("Task removed successfully.")
}

func (s *Shell) conflicts() {
	hist := s.reg.Hub().History()
	if len(hist) == 0 {
		s.println("No conflicts recorded.")
		return
	}
	for _, e := range hist {
		s.println(fmt.Sprintf("%s %s (blocked by %s)", e.At.Format("15:04:05"), e.Message(), e.Existing.Description))
	}
}

func (s *Shell) printErr(err error) {
	s.println("Error: " + err.Error())
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
