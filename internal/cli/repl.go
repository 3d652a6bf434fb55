package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/logging"
	"todo-cli/internal/session"
)

const (
	menuPrompt     = "What would you like to do? (add, list, toggle, delete, exit): "
	titlePrompt    = "Enter todo title: "
	positionPrompt = "Enter the number of the todo: "
)

// REPL reads commands line by line and prints the result of each one
type REPL struct {
	in         io.Reader
	out        io.Writer
	session    *session.Session
	dispatcher *Dispatcher
	logger     *logging.Logger
	lines      <-chan string
	eof        bool
}

// NewREPL creates a REPL over in and out working on sess
func NewREPL(in io.Reader, out io.Writer, sess *session.Session, dispatcher *Dispatcher, logger *logging.Logger) *REPL {
	if logger == nil {
		logger = logging.Nop()
	}
	return &REPL{
		in:         in,
		out:        out,
		session:    sess,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run prompts until exit, end of input or cancellation of ctx, then closes
// the session so the list is written to the durable store. Errors from
// individual commands are printed and never end the loop.
func (r *REPL) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	r.lines = readLines(r.in, done)

	if warning := r.session.LoadWarning(); warning != nil {
		r.println(r.dispatcher.errorHandler.Message(warning))
	}

	m := r.session.Manager()
	for {
		word, ok := r.readLine(ctx, menuPrompt)
		if !ok {
			break
		}

		cmd := ParseCommand(word)
		var arg string
		switch {
		case cmd == CommandAdd:
			if arg, ok = r.readLine(ctx, titlePrompt); !ok {
				return r.finish(ctx)
			}
		case cmd.NeedsPosition():
			r.println(r.dispatcher.RenderList(m.List()))
			if arg, ok = r.readLine(ctx, positionPrompt); !ok {
				return r.finish(ctx)
			}
		}

		result := r.dispatcher.Dispatch(ctx, m, cmd, arg)
		r.println(result.Message)
		if result.Exit {
			break
		}
	}

	return r.finish(ctx)
}

func (r *REPL) finish(ctx context.Context) error {
	switch {
	case ctx.Err() != nil:
		r.logger.Debugf("interrupted, saving before exit")
		r.println("")
	case r.eof:
		// End the line the last prompt was left on
		r.println("")
	}

	// The flush must still run when ctx was cancelled by a signal
	if err := r.session.Close(context.WithoutCancel(ctx)); err != nil {
		r.println(r.dispatcher.errorHandler.Message(err))
	}
	return nil
}

// readLine prints prompt and waits for the next line. It returns false at
// end of input or when ctx is cancelled.
func (r *REPL) readLine(ctx context.Context, prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)

	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-r.lines:
		if !ok {
			r.logger.Debugf("end of input")
			r.eof = true
			return "", false
		}
		return strings.TrimRight(line, "\r\n"), true
	}
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}

// readLines feeds lines from in to the returned channel until end of input
// or until done is closed. A final line without a newline is still sent.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- line:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}
