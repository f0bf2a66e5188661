package clp

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

// NoOptionsMessage is the usage text of a parser without registered options.
const NoOptionsMessage = "No options have been registered yet"

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

// Documentation lists every registered option by canonical name, sorted.
func (p *Parser) Documentation() []DocEntry {
	return p.docs.entries()
}

func (p *Parser) GenerateUsage() string {
	initializeColorFromEnv()

	if p.registry.isEmpty() {
		return NoOptionsMessage + "\n"
	}

	var sb strings.Builder
	headers := p.getUsageHeaders()

	if p.description != "" {
		sb.WriteString(p.description + "\n\n")
	}
	sb.WriteString(GreenBoldS(headers.Usage) + "\n")
	sb.WriteString(fmt.Sprintf("  %s [OPTIONS] [FILES...]\n", BoldS(p.name)))

	sb.WriteString("\n" + GreenBoldS(headers.Options) + "\n")
	sb.WriteString(p.formatOptions())

	return sb.String()
}

func (p *Parser) PrintUsage() {
	fmt.Fprint(stdoutWriter, p.GenerateUsage())
}

// formatOptions aligns docs three spaces past the widest option name.
func (p *Parser) formatOptions() string {
	entries := p.docs.entries()

	width := 0
	for _, entry := range entries {
		if len(entry.Name) > width {
			width = len(entry.Name)
		}
	}
	width += 3

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString("  " + entry.Name)
		if entry.Doc != "" {
			sb.WriteString(strings.Repeat(" ", width-len(entry.Name)))
			sb.WriteString(entry.Doc)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
