// Package repl runs the interactive session loop: read a line, route it,
// print the reply, repeat until an exit keyword or interrupt.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Session text.
const (
	Welcome = "\n🤖 Welcome to your AI Task Manager! Type 'exit' to quit.\n" +
		"You can ask me to add tasks, list tasks, or ask general questions."
	Goodbye     = "\n👋 Goodbye!"
	Interrupted = "\n👋 Operation cancelled by user."

	prompt      = "\nYou: "
	replyPrefix = "\n🤖 "
	errorPrefix = "\n❌ An error occurred: "
)

// exitWords terminate the session, matched case-insensitively.
var exitWords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
}

// Router produces one reply per line of user input.
type Router interface {
	Turn(ctx context.Context, input string) (string, error)
}

// Session is the interactive loop over a router.
type Session struct {
	router Router
	in     io.Reader
	out    io.Writer
	log    *log.Logger
}

// NewSession creates a session reading from in and writing to out.
func NewSession(router Router, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	return &Session{router: router, in: in, out: out, log: logger}
}

// Run blocks until the user exits, input ends, or ctx is cancelled.
// Routing errors are printed and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, Welcome)

	// Reads happen on a goroutine so cancellation is honored while blocked
	// on input. The goroutine is abandoned on cancel; the process is about
	// to exit anyway.
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		fmt.Fprint(s.out, prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, Interrupted)
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out, Goodbye)
				return nil
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if exitWords[strings.ToLower(line)] {
				fmt.Fprintln(s.out, Goodbye)
				return nil
			}

			reply, err := s.router.Turn(ctx, line)
			if err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(s.out, Interrupted)
					return nil
				}
				s.log.Warn("turn failed", "err", err)
				fmt.Fprintf(s.out, "%s%s\n", errorPrefix, err)
				continue
			}
			fmt.Fprintf(s.out, "%s%s\n", replyPrefix, reply)
		}
	}
}
