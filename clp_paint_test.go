package clp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// paintSettings stands in for the configuration object option actions write to.
type paintSettings struct {
	windowName   string
	legacy       bool
	bordered     bool
	windowWidth  int
	windowHeight int
	borderWidth  int
	host         string
	port         int
}

func newPaintSettings() *paintSettings {
	return &paintSettings{bordered: true, windowWidth: 500, windowHeight: 500, borderWidth: 10}
}

func mustBuild(t *testing.T, b *OptionBuilder) *Option {
	t.Helper()
	opt, err := b.Build()
	require.NoError(t, err)
	return opt
}

func mustAdd(t *testing.T, p *Parser, b *OptionBuilder) {
	t.Helper()
	require.NoError(t, p.AddOption(mustBuild(t, b)))
}

// newPaintParser registers the options of the paint program.
func newPaintParser(t *testing.T, settings *paintSettings, opts ...ParserOpt) *Parser {
	t.Helper()
	p := NewParser("paint", opts...)

	mustAdd(t, p, NewOptionBuilder("-legacy", 0).
		SetFlagAction(func() { settings.legacy = true }).
		AddAliases("-l", "-lg"))
	mustAdd(t, p, NewOptionBuilder("-no-borders", 0).
		SetFlagAction(func() { settings.bordered = false }).
		SetDoc("Remove the border of the drawing window"))
	mustAdd(t, p, NewOptionBuilder("-border-width", 1).
		SetIntAction(func(w int) { settings.borderWidth = w }))
	mustAdd(t, p, NewOptionBuilder("-window-name", 1).
		SetStringAction(func(name string) { settings.windowName = name }).
		SetDoc("Set the name of the graphic window"))
	mustAdd(t, p, NewOptionBuilder("-min-size", 2).
		SetIntPairAction(func(w, h int) {
			settings.windowWidth = w
			settings.windowHeight = h
		}))
	mustAdd(t, p, NewOptionBuilder("-remote-server", 2).
		SetHostPortAction(func(host string, port int) {
			settings.host = host
			settings.port = port
		}))

	return p
}
