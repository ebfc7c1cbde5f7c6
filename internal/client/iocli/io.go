// Package iocli abstracts terminal input and output for the CLI commands so
// they can be tested without a real terminal.
package iocli

//go:generate moq -out io_mock.go . IO

// IO console of a CLI command. Output is plain text, prompts are read line
// by line.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadPassword reads without echo when input is a terminal
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
