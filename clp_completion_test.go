package clp

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseCompletion captures completion output. Returns stdout and the error from Process.
func parseCompletion(p *Parser, args []string) (string, error) {
	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	_, err := p.Process(args)
	return stdout.String(), err
}

// parseCompletionLines splits completion output into candidates and the directive line.
func parseCompletionLines(output string) ([]string, string) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	directive := lines[len(lines)-1]
	var candidates []string
	for _, c := range lines[:len(lines)-1] {
		if c != "" {
			candidates = append(candidates, c)
		}
	}
	return candidates, directive
}

func newCompletionParser(t *testing.T) *Parser {
	t.Helper()
	p := newPaintParser(t, newPaintSettings()).EnableCompletion()
	mustAdd(t, p, NewOption("-modern", 0, noop).ConflictWith("-legacy"))
	return p
}

func TestCompletionDisabledByDefault(t *testing.T) {
	p := NewParser("paint")
	mustAdd(t, p, NewOption("-verbose", 0, noop))

	files, err := p.Process([]string{"__complete", ""})

	// without EnableCompletion, __complete is a positional token
	require.NoError(t, err)
	assert.Equal(t, []string{"__complete", ""}, files)
}

func TestCompletionReturnsCompletionInvokedErr(t *testing.T) {
	p := newCompletionParser(t)

	_, err := parseCompletion(p, []string{"__complete", ""})
	assert.True(t, errors.Is(err, CompletionInvokedErr))
}

func TestCompletionDoesNotRunActionsOrObservers(t *testing.T) {
	settings := newPaintSettings()
	processed := false
	p := newPaintParser(t, settings, WithObserver(ObserverFuncs{
		Processed: func(*Option) error { processed = true; return nil },
	})).EnableCompletion()

	_, err := parseCompletion(p, []string{"__complete", "-legacy", "-no-borders", "-"})

	assert.True(t, errors.Is(err, CompletionInvokedErr))
	assert.False(t, settings.legacy)
	assert.True(t, settings.bordered)
	assert.False(t, processed)
}

func TestCompletionProcessOrExitExitsZero(t *testing.T) {
	p := newCompletionParser(t)

	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	var exitCode int
	exitCalled := false
	SetExitFunc(func(code int) {
		exitCode = code
		exitCalled = true
	})
	defer SetExitFunc(os.Exit)

	files := p.ProcessOrExit([]string{"__complete", ""})
	assert.Nil(t, files)
	assert.True(t, exitCalled)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, ":0\n", stdout.String())
}

func TestCompletionOptionNamesByPrefix(t *testing.T) {
	p := newCompletionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-l"})
	candidates, directive := parseCompletionLines(output)

	assert.Equal(t, []string{"-l", "-legacy", "-lg"}, candidates)
	assert.Equal(t, ":4", directive)
}

func TestCompletionAllOptionNames(t *testing.T) {
	p := newCompletionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-"})
	candidates, directive := parseCompletionLines(output)

	assert.Equal(t, []string{
		"-border-width",
		"-l",
		"-legacy",
		"-lg",
		"-min-size",
		"-modern",
		"-no-borders",
		"-remote-server",
		"-window-name",
	}, candidates)
	assert.Equal(t, ":4", directive)
}

func TestCompletionSkipsSeenOptions(t *testing.T) {
	p := newCompletionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-window-name", "canvas", "-w"})
	candidates, directive := parseCompletionLines(output)

	assert.Empty(t, candidates)
	assert.Equal(t, ":4", directive)
}

func TestCompletionSkipsConflictingOptions(t *testing.T) {
	p := newCompletionParser(t)

	t.Run("declared on the seen option", func(t *testing.T) {
		output, _ := parseCompletion(p, []string{"__complete", "-modern", "-l"})
		candidates, _ := parseCompletionLines(output)
		assert.Empty(t, candidates)
	})

	t.Run("declared on the candidate", func(t *testing.T) {
		output, _ := parseCompletion(p, []string{"__complete", "-lg", "-m"})
		candidates, _ := parseCompletionLines(output)
		assert.Equal(t, []string{"-min-size"}, candidates)
	})
}

func TestCompletionPendingParameter(t *testing.T) {
	p := newCompletionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-min-size", "600", "-"})
	candidates, directive := parseCompletionLines(output)

	// "-" is the second parameter of -min-size, not an option
	assert.Empty(t, candidates)
	assert.Equal(t, ":0", directive)
}

func TestCompletionPositionalFallsBackToFiles(t *testing.T) {
	p := newCompletionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-legacy", "pic"})
	candidates, directive := parseCompletionLines(output)

	assert.Empty(t, candidates)
	assert.Equal(t, ":0", directive)
}

func TestGenBashCompletion(t *testing.T) {
	p := NewParser("paint")

	var buf bytes.Buffer
	require.NoError(t, p.GenBashCompletion(&buf))

	script := buf.String()
	assert.Contains(t, script, "_paint_clp_complete()")
	assert.Contains(t, script, "paint __complete")
	assert.Contains(t, script, "complete -o default -F _paint_clp_complete paint")
}

func TestGenZshCompletion(t *testing.T) {
	p := NewParser("paint")

	var buf bytes.Buffer
	require.NoError(t, p.GenZshCompletion(&buf))

	script := buf.String()
	assert.True(t, strings.HasPrefix(script, "#compdef paint\n"))
	assert.Contains(t, script, "paint __complete")
}

func TestCompletionDirectiveValues(t *testing.T) {
	// the generated scripts test these bits
	assert.Equal(t, 0, int(CompletionDirectiveDefault))
	assert.Equal(t, 1, int(CompletionDirectiveError))
	assert.Equal(t, 2, int(CompletionDirectiveNoSpace))
	assert.Equal(t, 4, int(CompletionDirectiveNoFileComp))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCompletionWriteFailure(t *testing.T) {
	p := newCompletionParser(t)

	SetStdoutWriter(failingWriter{})
	defer SetStdoutWriter(os.Stdout)

	_, err := p.Process([]string{"__complete", "-"})

	assert.False(t, errors.Is(err, CompletionInvokedErr))
	assert.EqualError(t, err, "failed to write completions: broken pipe")
}
