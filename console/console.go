// Package console implements a small command shell on the serial
// port for poking at the running animation: inspecting calibration,
// reading the animation state, setting brightness. It is the debug
// surface of the device; there is no other logging.
package console

import (
	"fmt"
	"io"

	"github.com/google/shlex"
)

// Port is the subset of machine.Serial the console needs. Input must
// be non-blocking: Buffered reports how many bytes are waiting.
type Port interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

// Handler runs one command. args holds the arguments after the
// command name. Returned errors are printed back to the port.
type Handler func(w io.Writer, args []string) error

type Console struct {
	port     Port
	line     []byte
	commands map[string]Handler
}

func New(port Port) *Console {
	return &Console{
		port:     port,
		line:     make([]byte, 0, 64),
		commands: make(map[string]Handler),
	}
}

// Register adds a command. Registering a name twice replaces the
// earlier handler.
func (c *Console) Register(name string, h Handler) {
	c.commands[name] = h
}

// Poll drains pending input and runs any commands completed by it.
// It never blocks, so it is safe to call once per loop iteration
// between strip writes. Carriage returns are dropped, so both LF and
// CRLF terminals work.
func (c *Console) Poll() {
	for c.port.Buffered() > 0 {
		b, err := c.port.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case '\r':
		case '\n':
			c.run(string(c.line))
			c.line = c.line[:0]
		default:
			c.line = append(c.line, b)
		}
	}
}

func (c *Console) run(line string) {
	fields, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(c.port, "parse error: %v\r\n", err)
		return
	}
	if len(fields) == 0 {
		return
	}
	h, ok := c.commands[fields[0]]
	if !ok {
		fmt.Fprintf(c.port, "unknown command %q\r\n", fields[0])
		return
	}
	if err := h(c.port, fields[1:]); err != nil {
		fmt.Fprintf(c.port, "%s: %v\r\n", fields[0], err)
	}
}
