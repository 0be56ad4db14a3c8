// Package greeter holds the Greeter component, which writes a fixed
// greeting line to standard output.
package greeter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/savantbuild/greeter/logger"
)

// Greeting is the text written by RunGreeting, without the line terminator.
const Greeting = "Hello world"

// Greeter writes Greeting to its output. The zero value is ready to use
// and writes to os.Stdout.
type Greeter struct {
	// request is reserved for a future network call. Nothing in this package sets it.
	request *http.Request

	// log is the component logger. RunGreeting does not log.
	log *slog.Logger
	out io.Writer
}

// New returns a Greeter that writes to the process's standard output.
func New() *Greeter {
	return &Greeter{log: logger.ForComponent("greeter")}
}

// NewWithWriter returns a Greeter that writes to w instead of stdout.
// A nil w behaves like New.
func NewWithWriter(w io.Writer) *Greeter {
	g := New()
	g.out = w
	return g
}

// Request returns the reserved request handle. It is nil for every
// Greeter built by this package.
func (g *Greeter) Request() *http.Request {
	return g.request
}

// RunGreeting writes "Hello world\n" to the output in a single write.
// Write failures are returned to the caller unhandled.
func (g *Greeter) RunGreeting() error {
	if _, err := io.WriteString(g.writer(), Greeting+"\n"); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}
	return nil
}

// writer resolves os.Stdout on each call so redirection after
// construction is honoured.
func (g *Greeter) writer() io.Writer {
	if g.out != nil {
		return g.out
	}
	return os.Stdout
}
