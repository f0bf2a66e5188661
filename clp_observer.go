package clp

import "sort"

// Observer receives the registry's lifecycle events. Returning an error from
// OnProcessed or OnFinished aborts the scan in progress.
type Observer interface {
	OnRegistered(opt *Option) error
	OnProcessed(opt *Option) error
	OnFinished() error
}

// ScanStarter is implemented by observers holding per-scan state.
type ScanStarter interface {
	OnScanStarted()
}

// RegistrationReverter is implemented by observers that can forget an option.
// When an observer rejects a registration, the ones already notified are
// reverted in reverse order and the option is not registered.
type RegistrationReverter interface {
	OnRegistrationReverted(opt *Option)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Registered  func(opt *Option) error
	Processed   func(opt *Option) error
	Finished    func() error
	ScanStarted func()
	Reverted    func(opt *Option)
}

func (f ObserverFuncs) OnRegistered(opt *Option) error {
	if f.Registered != nil {
		return f.Registered(opt)
	}
	return nil
}

func (f ObserverFuncs) OnProcessed(opt *Option) error {
	if f.Processed != nil {
		return f.Processed(opt)
	}
	return nil
}

func (f ObserverFuncs) OnFinished() error {
	if f.Finished != nil {
		return f.Finished()
	}
	return nil
}

func (f ObserverFuncs) OnScanStarted() {
	if f.ScanStarted != nil {
		f.ScanStarted()
	}
}

func (f ObserverFuncs) OnRegistrationReverted(opt *Option) {
	if f.Reverted != nil {
		f.Reverted(opt)
	}
}

// requiredTracker fails at the end of a scan if a required option was never seen.
type requiredTracker struct {
	required map[string]string // every name of every required option -> canonical name
	pending  map[string]string
}

func newRequiredTracker() *requiredTracker {
	return &requiredTracker{
		required: make(map[string]string),
		pending:  make(map[string]string),
	}
}

func (t *requiredTracker) OnRegistered(opt *Option) error {
	if !opt.required {
		return nil
	}
	for _, name := range opt.Names() {
		t.required[name] = opt.name
		t.pending[name] = opt.name
	}
	return nil
}

func (t *requiredTracker) OnProcessed(opt *Option) error {
	if !opt.required {
		return nil
	}
	for _, name := range opt.Names() {
		delete(t.pending, name)
	}
	return nil
}

func (t *requiredTracker) OnFinished() error {
	if len(t.pending) == 0 {
		return nil
	}
	missing := make(map[string]bool)
	for _, canonical := range t.pending {
		missing[canonical] = true
	}
	return &RequiredOptionMissingError{Missing: sortedKeys(missing)}
}

func (t *requiredTracker) OnRegistrationReverted(opt *Option) {
	for _, name := range opt.Names() {
		delete(t.required, name)
		delete(t.pending, name)
	}
}

func (t *requiredTracker) OnScanStarted() {
	t.pending = make(map[string]string, len(t.required))
	for name, canonical := range t.required {
		t.pending[name] = canonical
	}
}

// conflictTracker fails as soon as two options declared in conflict are both seen.
// Conflicts are recorded in both directions so scan order does not matter.
type conflictTracker struct {
	adjacency map[string]map[string]int // link counts, two options may declare the same pair
	seen      map[string]string         // name -> canonical name, current scan only
}

func newConflictTracker() *conflictTracker {
	return &conflictTracker{
		adjacency: make(map[string]map[string]int),
		seen:      make(map[string]string),
	}
}

func (t *conflictTracker) OnRegistered(opt *Option) error {
	for _, name := range opt.Names() {
		for conflict := range opt.conflicts {
			t.link(name, conflict)
			t.link(conflict, name)
		}
	}
	return nil
}

func (t *conflictTracker) OnRegistrationReverted(opt *Option) {
	for _, name := range opt.Names() {
		for conflict := range opt.conflicts {
			t.unlink(name, conflict)
			t.unlink(conflict, name)
		}
	}
}

func (t *conflictTracker) OnProcessed(opt *Option) error {
	names := opt.Names()
	for _, name := range names {
		if with, found := t.seenConflict(name, opt.name); found {
			return &ConflictError{Option: opt.name, With: with}
		}
	}
	for _, name := range names {
		t.seen[name] = opt.name
	}
	return nil
}

// OnFinished re-checks every seen pair. Nothing should be caught here when
// OnProcessed ran for every match.
func (t *conflictTracker) OnFinished() error {
	seenNames := make([]string, 0, len(t.seen))
	for name := range t.seen {
		seenNames = append(seenNames, name)
	}
	sort.Strings(seenNames)

	for _, name := range seenNames {
		if with, found := t.seenConflict(name, t.seen[name]); found {
			return &ConflictError{Option: t.seen[name], With: with}
		}
	}
	return nil
}

func (t *conflictTracker) OnScanStarted() {
	t.seen = make(map[string]string)
}

func (t *conflictTracker) link(from, to string) {
	if t.adjacency[from] == nil {
		t.adjacency[from] = make(map[string]int)
	}
	t.adjacency[from][to]++
}

func (t *conflictTracker) unlink(from, to string) {
	links := t.adjacency[from]
	if links[to] <= 1 {
		delete(links, to)
	} else {
		links[to]--
	}
	if len(links) == 0 {
		delete(t.adjacency, from)
	}
}

// seenConflict returns the canonical name of an already seen option that
// conflicts with name. Options never conflict with themselves.
func (t *conflictTracker) seenConflict(name, canonical string) (string, bool) {
	for _, conflict := range sortedKeys(t.adjacency[name]) {
		if other, seen := t.seen[conflict]; seen && other != canonical {
			return other, true
		}
	}
	return "", false
}

type DocEntry struct {
	Name string
	Doc  string
}

// docCollector records option documentation at registration. Its state is
// not scan-local.
type docCollector struct {
	docs map[string]string
}

func newDocCollector() *docCollector {
	return &docCollector{docs: make(map[string]string)}
}

func (d *docCollector) OnRegistered(opt *Option) error {
	d.docs[opt.name] = opt.doc
	return nil
}

func (d *docCollector) OnRegistrationReverted(opt *Option) {
	delete(d.docs, opt.name)
}

func (d *docCollector) OnProcessed(*Option) error {
	return nil
}

func (d *docCollector) OnFinished() error {
	return nil
}

// entries lists canonical names in lexicographic order.
func (d *docCollector) entries() []DocEntry {
	names := make([]string, 0, len(d.docs))
	for name := range d.docs {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]DocEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, DocEntry{Name: name, Doc: d.docs[name]})
	}
	return entries
}
