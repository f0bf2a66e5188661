package clp

import (
	"io"
	"os"
)

// ExitFunc is called by ProcessOrExit to terminate the program.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit
var stderrWriter io.Writer = os.Stderr
var stdoutWriter io.Writer = os.Stdout

// SetStderrWriter redirects error output, e.g. in tests.
func SetStderrWriter(writer io.Writer) {
	stderrWriter = writer
}

// SetStdoutWriter redirects usage and completion output.
func SetStdoutWriter(writer io.Writer) {
	stdoutWriter = writer
}

func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
