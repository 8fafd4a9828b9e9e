package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/argecho/cmd/argecho/root"
)

// exitCoder is implemented by errors that carry their own exit status,
// such as catalog.LoadError.
type exitCoder interface {
	ExitCode() int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := root.NewRootCmd(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return report(stderr, err)
	}
	return 0
}

// report writes err as one line and returns the exit status for it.
func report(stderr io.Writer, err error) int {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(stderr, msg+"\n")
	var ec exitCoder
	if errors.As(err, &ec) && ec.ExitCode() != 0 {
		return ec.ExitCode()
	}
	return 1
}
