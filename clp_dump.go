package clp

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// GenerateDump describes the parser, its options and the arguments it would process.
func (p *Parser) GenerateDump(args []string) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Clp Parser Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(p.generateParserInfoSection())
	sb.WriteString(p.generateArgumentsToProcessSection(args))
	sb.WriteString(p.generateOptionsStructureSection())
	sb.WriteString(generateEnvironmentSection())

	return sb.String()
}

func (p *Parser) generateParserInfoSection() string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Parser Information:") + "\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", BoldS(p.name)))
	if p.description != "" {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", BoldS(p.description)))
	} else {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", CyanS("<not set>")))
	}
	sb.WriteString(fmt.Sprintf("  Completion Enabled: %s\n", BoldS(fmt.Sprintf("%t", p.completionEnabled))))
	sb.WriteString(fmt.Sprintf("  Suggestions Enabled: %s\n", BoldS(fmt.Sprintf("%t", p.cfg.suggestions))))
	if p.cfg.logger != nil {
		sb.WriteString(fmt.Sprintf("  Logger: %s\n", BoldS("set")))
	} else {
		sb.WriteString(fmt.Sprintf("  Logger: %s\n", CyanS("not set")))
	}
	sb.WriteString(fmt.Sprintf("  Custom Observers: %s\n", BoldS(fmt.Sprintf("%d", len(p.cfg.observers)))))
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateArgumentsToProcessSection(args []string) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Arguments to Process:") + "\n")
	if len(args) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", CyanS("none")))
	}
	for i, arg := range args {
		sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, arg))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (p *Parser) generateOptionsStructureSection() string {
	var sb strings.Builder

	required := 0
	for _, opt := range p.registry.order {
		if opt.required {
			required++
		}
	}

	sb.WriteString(GreenBoldS("Options Structure:") + "\n")
	sb.WriteString(fmt.Sprintf("  Total Options: %s\n", BoldS(fmt.Sprintf("%d", len(p.registry.order)))))
	sb.WriteString(fmt.Sprintf("  Registered Names: %s\n", BoldS(fmt.Sprintf("%d", len(p.registry.byName)))))
	sb.WriteString(fmt.Sprintf("  Required Options: %s\n", BoldS(fmt.Sprintf("%d", required))))

	if len(p.registry.order) > 0 {
		sb.WriteString("\n  " + BoldS("Options (in registration order):") + "\n")
		for i, opt := range p.registry.order {
			sb.WriteString(fmt.Sprintf("    [%d] %s\n", i, formatOptionForDump(opt)))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func formatOptionForDump(opt *Option) string {
	parts := []string{opt.name, fmt.Sprintf("arity:%d", opt.arity)}
	if opt.required {
		parts = append(parts, "required")
	} else {
		parts = append(parts, "optional")
	}
	if len(opt.aliases) > 0 {
		parts = append(parts, fmt.Sprintf("aliases:[%s]", strings.Join(opt.Aliases(), ", ")))
	}
	if len(opt.conflicts) > 0 {
		parts = append(parts, fmt.Sprintf("conflicts:[%s]", strings.Join(opt.Conflicts(), ", ")))
	}
	if opt.doc != "" {
		parts = append(parts, fmt.Sprintf("doc:%q", opt.doc))
	}
	return strings.Join(parts, " ")
}

func generateEnvironmentSection() string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Environment:") + "\n")
	colorEnv := os.Getenv("CLP_COLOR")
	if colorEnv == "" {
		sb.WriteString(fmt.Sprintf("  CLP_COLOR: %s\n", CyanS("<not set>")))
	} else {
		sb.WriteString(fmt.Sprintf("  CLP_COLOR: %s\n", BoldS(colorEnv)))
	}

	return sb.String()
}

type OptionDescription struct {
	Name      string   `yaml:"name"`
	Arity     int      `yaml:"arity"`
	Required  bool     `yaml:"required"`
	Aliases   []string `yaml:"aliases,omitempty"`
	Conflicts []string `yaml:"conflicts,omitempty"`
	Doc       string   `yaml:"doc,omitempty"`
}

type ParserDescription struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Options     []OptionDescription `yaml:"options"`
}

// Describe returns the registered options in registration order.
func (p *Parser) Describe() ParserDescription {
	desc := ParserDescription{
		Name:        p.name,
		Description: p.description,
		Options:     make([]OptionDescription, 0, len(p.registry.order)),
	}
	for _, opt := range p.registry.order {
		desc.Options = append(desc.Options, OptionDescription{
			Name:      opt.name,
			Arity:     opt.arity,
			Required:  opt.required,
			Aliases:   opt.Aliases(),
			Conflicts: opt.Conflicts(),
			Doc:       opt.doc,
		})
	}
	return desc
}

// DescribeYAML marshals Describe for tooling such as documentation generators.
func (p *Parser) DescribeYAML() ([]byte, error) {
	out, err := yaml.Marshal(p.Describe())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parser description: %w", err)
	}
	return out, nil
}
