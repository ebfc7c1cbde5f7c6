package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console implements IO over a reader and a writer. Prompts go to prompts
// so that stdout stays parseable when the output is piped.
type Console struct {
	out     io.Writer
	prompts io.Writer
	in      *bufio.Reader
	// fd дескриптор терминала ввода, -1 если ввод не терминал
	fd int
}

// NewStdio returns the console of the process: stdin, stdout, prompts on stderr.
func NewStdio() IO {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &Console{
		out:     os.Stdout,
		prompts: os.Stderr,
		in:      bufio.NewReader(os.Stdin),
		fd:      fd,
	}
}

// New returns a console over arbitrary streams, input is never a terminal.
func New(in io.Reader, out, prompts io.Writer) *Console {
	return &Console{
		out:     out,
		prompts: prompts,
		in:      bufio.NewReader(in),
		fd:      -1,
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) ReadInput(prompt string) (string, error) {
	fmt.Fprint(c.prompts, prompt)
	return c.readLine()
}

func (c *Console) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(c.prompts, prompt)
	if c.fd < 0 {
		// ключ передан через pipe
		return c.readLine()
	}

	secret, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.prompts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

// readLine читает строку; последняя строка без \n тоже считается вводом
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
