package clp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// OptionMarker is the leading string identifying a token as an option.
const OptionMarker = "-"

// Action receives exactly Arity parameter tokens.
type Action func(params []string) error

// Option is an immutable option descriptor. Build one with NewOption or NewOptionBuilder.
type Option struct {
	name      string
	arity     int
	action    Action
	required  bool
	aliases   map[string]bool
	conflicts map[string]bool
	doc       string
}

func (o *Option) Name() string {
	return o.name
}

func (o *Option) Arity() int {
	return o.arity
}

func (o *Option) Required() bool {
	return o.required
}

func (o *Option) Doc() string {
	return o.doc
}

// Aliases returns a sorted copy of the option's aliases.
func (o *Option) Aliases() []string {
	return sortedKeys(o.aliases)
}

// Conflicts returns a sorted copy of the option names this option cannot be used with.
func (o *Option) Conflicts() []string {
	return sortedKeys(o.conflicts)
}

// Names returns the canonical name followed by the sorted aliases.
func (o *Option) Names() []string {
	names := make([]string, 0, len(o.aliases)+1)
	names = append(names, o.name)
	return append(names, o.Aliases()...)
}

func (o *Option) String() string {
	return strconv.Quote(o.name)
}

type OptionBuilder struct {
	name      string
	arity     int
	action    Action
	minArity  int    // parameters needed by a typed action helper
	helper    string // name of the typed helper that set minArity
	required  bool
	aliases   map[string]bool
	conflicts map[string]bool
	doc       string
	errs      []string
}

func NewOption(name string, arity int, action Action) *OptionBuilder {
	return NewOptionBuilder(name, arity).SetAction(action)
}

func NewOptionBuilder(name string, arity int) *OptionBuilder {
	return &OptionBuilder{
		name:      name,
		arity:     arity,
		aliases:   make(map[string]bool),
		conflicts: make(map[string]bool),
	}
}

func (b *OptionBuilder) SetAction(action Action) *OptionBuilder {
	b.action = action
	b.minArity = 0
	b.helper = ""
	return b
}

func (b *OptionBuilder) SetFlagAction(fn func()) *OptionBuilder {
	if fn == nil {
		return b.SetAction(nil)
	}
	return b.SetAction(func([]string) error {
		fn()
		return nil
	})
}

func (b *OptionBuilder) SetStringAction(fn func(string)) *OptionBuilder {
	if fn == nil {
		return b.SetAction(nil)
	}
	b.SetAction(func(params []string) error {
		fn(params[0])
		return nil
	})
	return b.needs(1, "SetStringAction")
}

func (b *OptionBuilder) SetIntAction(fn func(int)) *OptionBuilder {
	if fn == nil {
		return b.SetAction(nil)
	}
	b.SetAction(func(params []string) error {
		v, err := parseInt(params[0])
		if err != nil {
			return err
		}
		fn(v)
		return nil
	})
	return b.needs(1, "SetIntAction")
}

func (b *OptionBuilder) SetIntPairAction(fn func(int, int)) *OptionBuilder {
	if fn == nil {
		return b.SetAction(nil)
	}
	b.SetAction(func(params []string) error {
		first, err := parseInt(params[0])
		if err != nil {
			return err
		}
		second, err := parseInt(params[1])
		if err != nil {
			return err
		}
		fn(first, second)
		return nil
	})
	return b.needs(2, "SetIntPairAction")
}

func (b *OptionBuilder) SetHostPortAction(fn func(host string, port int)) *OptionBuilder {
	if fn == nil {
		return b.SetAction(nil)
	}
	b.SetAction(func(params []string) error {
		port, err := strconv.ParseUint(params[1], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", params[1], err)
		}
		fn(params[0], int(port))
		return nil
	})
	return b.needs(2, "SetHostPortAction")
}

// AddAliases adds alternate names. Calling it without any name is reported by Build.
func (b *OptionBuilder) AddAliases(names ...string) *OptionBuilder {
	if len(names) == 0 {
		b.errs = append(b.errs, "alias list cannot be empty")
		return b
	}
	for _, name := range names {
		b.aliases[name] = true
	}
	return b
}

// ConflictWith declares an option that cannot appear in the same scan.
// Names that do not start with OptionMarker are reported by Build.
func (b *OptionBuilder) ConflictWith(name string) *OptionBuilder {
	if !IsOption(name) {
		b.errs = append(b.errs, fmt.Sprintf("conflict %q is not an option name", name))
		return b
	}
	b.conflicts[name] = true
	return b
}

func (b *OptionBuilder) SetRequired() *OptionBuilder {
	b.required = true
	return b
}

func (b *OptionBuilder) SetDoc(doc string) *OptionBuilder {
	b.doc = doc
	return b
}

func (b *OptionBuilder) Build() (*Option, error) {
	if b.name == "" {
		return nil, NewConfigurationError("option name cannot be empty")
	}
	if !IsOption(b.name) {
		return nil, NewConfigurationError(fmt.Sprintf("option name %q must start with %q", b.name, OptionMarker))
	}
	if b.arity < 0 {
		return nil, NewConfigurationError(fmt.Sprintf("option %q: arity must be >= 0, got %d", b.name, b.arity))
	}
	if b.action == nil {
		return nil, NewConfigurationError(fmt.Sprintf("option %q has no action", b.name))
	}
	if len(b.errs) > 0 {
		return nil, NewConfigurationError(fmt.Sprintf("option %q: %s", b.name, strings.Join(b.errs, "; ")))
	}
	if b.minArity > b.arity {
		return nil, NewConfigurationError(
			fmt.Sprintf("option %q: %s needs %d parameters but arity is %d", b.name, b.helper, b.minArity, b.arity),
		)
	}
	for alias := range b.aliases {
		if alias == "" {
			return nil, NewConfigurationError(fmt.Sprintf("option %q: alias cannot be empty", b.name))
		}
		if alias == b.name {
			return nil, NewConfigurationError(fmt.Sprintf("option %q: alias repeats the option name", b.name))
		}
	}

	return &Option{
		name:      b.name,
		arity:     b.arity,
		action:    b.action,
		required:  b.required,
		aliases:   copySet(b.aliases),
		conflicts: copySet(b.conflicts),
		doc:       b.doc,
	}, nil
}

func (b *OptionBuilder) needs(n int, helper string) *OptionBuilder {
	b.minArity = n
	b.helper = helper
	return b
}

// IsOption reports whether token looks like an option rather than positional data.
func IsOption(token string) bool {
	return strings.HasPrefix(token, OptionMarker)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k := range set {
		out[k] = true
	}
	return out
}

func sortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
