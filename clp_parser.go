package clp

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

type UsageHeaders struct {
	Usage   string
	Options string
}

func DefaultUsageHeaders() UsageHeaders {
	return UsageHeaders{
		Usage:   "Usage:",
		Options: "Options:",
	}
}

// Parser separates registered options from positional tokens. A Parser is not
// safe for concurrent use. It may process any number of argument lists; the
// required and conflict checks start over with each call to Process.
type Parser struct {
	name        string
	description string
	registry    *registry
	docs        *docCollector
	cfg         *parserCfg

	// options
	usageHeaders      *UsageHeaders
	completionEnabled bool
}

func NewParser(name string, opts ...ParserOpt) *Parser {
	cfg := &parserCfg{suggestions: true}
	for _, opt := range opts {
		opt(cfg)
	}

	docs := newDocCollector()
	reg := newRegistry(newRequiredTracker(), newConflictTracker(), docs)
	if cfg.logger != nil {
		reg.addObserver(newLogObserver(cfg.logger))
	}
	for _, o := range cfg.observers {
		reg.addObserver(o)
	}

	return &Parser{
		name:     name,
		registry: reg,
		docs:     docs,
		cfg:      cfg,
	}
}

func (p *Parser) SetDescription(desc string) *Parser {
	p.description = desc
	return p
}

func (p *Parser) SetUsageHeaders(headers UsageHeaders) *Parser {
	p.usageHeaders = &headers
	return p
}

func (p *Parser) getUsageHeaders() UsageHeaders {
	if p.usageHeaders != nil {
		return *p.usageHeaders
	}
	return DefaultUsageHeaders()
}

func (p *Parser) AddOption(opt *Option) error {
	if opt == nil {
		return NewConfigurationError("option cannot be nil")
	}
	return p.registry.register(opt)
}

func (p *Parser) AddFlag(name string, action func()) error {
	if action == nil {
		return NewConfigurationError(fmt.Sprintf("flag %q has no action", name))
	}
	return p.buildAndAdd(NewOptionBuilder(name, 0).SetFlagAction(action))
}

func (p *Parser) AddOptionWithOneParameter(name string, action func(string)) error {
	if action == nil {
		return NewConfigurationError(fmt.Sprintf("option %q has no action", name))
	}
	return p.buildAndAdd(NewOptionBuilder(name, 1).SetStringAction(action))
}

func (p *Parser) RegisterWithParameters(name string, arity int, action Action) error {
	return p.buildAndAdd(NewOption(name, arity, action))
}

func (p *Parser) buildAndAdd(b *OptionBuilder) error {
	opt, err := b.Build()
	if err != nil {
		return err
	}
	return p.AddOption(opt)
}

// Process runs every option found in args and returns the positional tokens in
// the order they were given. Actions that ran before a failure are not undone.
func (p *Parser) Process(args []string) ([]string, error) {
	if p.completionEnabled && len(args) > 0 && args[0] == completeCmdName {
		return nil, p.handleCompletion(args[1:])
	}

	p.registry.begin()

	files := []string{}
	i := 0
	for i < len(args) {
		arg := args[i]

		if !IsOption(arg) {
			files = append(files, arg)
			i++
			continue
		}

		consumed, err := p.processOption(args, i)
		if err != nil {
			return nil, err
		}
		i += consumed
	}

	if err := p.registry.finish(); err != nil {
		return nil, err
	}
	return files, nil
}

// ProcessString splits line with shell quoting rules, then calls Process.
func (p *Parser) ProcessString(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split arguments: %w", err)
	}
	return p.Process(args)
}

// ProcessOrExit prints the error and exits with status 1 when Process fails.
func (p *Parser) ProcessOrExit(args []string) []string {
	files, err := p.Process(args)
	if err == nil {
		return files
	}

	if errors.Is(err, CompletionInvokedErr) {
		osExit(0)
		return nil
	}

	fmt.Fprintln(stderrWriter, err.Error())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		// user input error, show what is accepted
		fmt.Fprintln(stderrWriter)
		fmt.Fprint(stderrWriter, p.GenerateUsage())
	}
	osExit(1)
	return nil
}

// processOption handles the option at args[index] and returns how many tokens it consumed.
func (p *Parser) processOption(args []string, index int) (int, error) {
	name := args[index]

	opt, exists, err := p.registry.process(name)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, p.unknownOptionError(name)
	}

	remaining := len(args) - index - 1
	if remaining < opt.arity {
		return 0, &ArityMismatchError{Option: opt.name, Want: opt.arity, Got: remaining}
	}

	params := make([]string, opt.arity)
	copy(params, args[index+1:index+1+opt.arity])
	if err := runAction(opt, params); err != nil {
		return 0, err
	}
	return 1 + opt.arity, nil
}

func (p *Parser) unknownOptionError(name string) error {
	unknownErr := &UnknownOptionError{Name: name}
	if p.cfg.suggestions {
		unknownErr.Suggestion = closestName(name, p.registry.names())
	}
	return unknownErr
}

func runAction(opt *Option, params []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ActionError{Option: opt.name, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	if cause := opt.action(params); cause != nil {
		return &ActionError{Option: opt.name, Cause: cause}
	}
	return nil
}
