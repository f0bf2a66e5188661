package clp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// completeCmdName is the hidden first argument shell scripts use to ask for candidates.
const completeCmdName = "__complete"

// CompletionDirective flags are written after the candidates as ":<n>" and
// read by the generated shell scripts.
type CompletionDirective int

const CompletionDirectiveDefault CompletionDirective = 0

const (
	CompletionDirectiveError CompletionDirective = 1 << iota
	CompletionDirectiveNoSpace
	CompletionDirectiveNoFileComp
)

// CompletionInvokedErr tells the caller that Process answered a completion
// request instead of scanning. ProcessOrExit exits with status 0 on it.
var CompletionInvokedErr = errors.New("completion invoked")

func (p *Parser) EnableCompletion() *Parser {
	p.completionEnabled = true
	return p
}

func (p *Parser) handleCompletion(args []string) error {
	candidates, directive := p.computeCompletions(args)

	w := bufio.NewWriter(stdoutWriter)
	for _, candidate := range candidates {
		fmt.Fprintln(w, candidate)
	}
	fmt.Fprintf(w, ":%d\n", directive)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write completions: %w", err)
	}
	return CompletionInvokedErr
}

// computeCompletions completes the last element of args, which may be empty.
// Completion never runs actions or observers.
func (p *Parser) computeCompletions(args []string) ([]string, CompletionDirective) {
	var toComplete string
	var preceding []string
	if len(args) > 0 {
		toComplete = args[len(args)-1]
		preceding = args[:len(args)-1]
	}

	var seen []*Option
	seenNames := make(map[string]bool)

	for i := 0; i < len(preceding); i++ {
		opt, exists := p.registry.lookup(preceding[i])
		if !exists {
			continue
		}
		seen = append(seen, opt)
		for _, name := range opt.Names() {
			seenNames[name] = true
		}

		if len(preceding)-1-i < opt.arity {
			// the word being completed is one of this option's parameters
			return nil, CompletionDirectiveDefault
		}
		i += opt.arity
	}

	if IsOption(toComplete) {
		return p.completeOptionNames(toComplete, seen, seenNames)
	}

	// positional tokens are files
	return nil, CompletionDirectiveDefault
}

func (p *Parser) completeOptionNames(
	prefix string,
	seen []*Option,
	seenNames map[string]bool,
) ([]string, CompletionDirective) {
	var candidates []string

	for _, opt := range p.registry.order {
		if seenNames[opt.name] || conflictsWithAny(opt, seen, seenNames) {
			continue
		}
		for _, name := range opt.Names() {
			if strings.HasPrefix(name, prefix) {
				candidates = append(candidates, name)
			}
		}
	}

	sort.Strings(candidates)
	return candidates, CompletionDirectiveNoFileComp
}

func conflictsWithAny(opt *Option, seen []*Option, seenNames map[string]bool) bool {
	for conflict := range opt.conflicts {
		if seenNames[conflict] {
			return true
		}
	}
	for _, other := range seen {
		for _, name := range opt.Names() {
			if other.conflicts[name] {
				return true
			}
		}
	}
	return false
}

// GenBashCompletion writes a bash completion script for this parser's program.
func (p *Parser) GenBashCompletion(w io.Writer) error {
	_, err := fmt.Fprintf(w, bashCompletionTemplate, p.name, p.name, p.name, p.name, p.name)
	return err
}

// GenZshCompletion writes a zsh completion script for this parser's program.
func (p *Parser) GenZshCompletion(w io.Writer) error {
	_, err := fmt.Fprintf(w, zshCompletionTemplate, p.name, p.name, p.name, p.name, p.name)
	return err
}
