package command

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/urfave/cli/v2"
)

// runApp runs the CLI with the given arguments and captures stdout.
// The exit handler is suppressed so errors come back instead of
// terminating the test process.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := App()
	app.Writer = &buf
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"uacore-cli"}, args...))
	return buf.String(), err
}

// exitCode extracts the exit code carried by err, or 0 for nil.
func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	if !errors.As(err, &coder) {
		t.Fatalf("error does not carry an exit code: %v", err)
	}
	return coder.ExitCode()
}

// writeRaw writes a YAML document verbatim, bypassing Save and its
// validation.
func writeRaw(path, doc string) error {
	return os.WriteFile(path, []byte(doc), 0o600)
}
