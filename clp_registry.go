package clp

import "fmt"

// registry owns the name -> option mapping (aliases included) and fires
// lifecycle events to its observers in a fixed order.
type registry struct {
	byName    map[string]*Option
	order     []*Option // registration order, one entry per option
	observers []Observer
}

func newRegistry(observers ...Observer) *registry {
	return &registry{
		byName:    make(map[string]*Option),
		observers: observers,
	}
}

func (r *registry) addObserver(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *registry) register(opt *Option) error {
	names := opt.Names()
	for _, name := range names {
		if existing, exists := r.byName[name]; exists {
			if existing.name == name {
				return NewConfigurationError(fmt.Sprintf("option %q already registered", name))
			}
			return NewConfigurationError(fmt.Sprintf("option %q already registered as an alias of %q", name, existing.name))
		}
	}

	for i, o := range r.observers {
		if err := o.OnRegistered(opt); err != nil {
			r.revert(opt, r.observers[:i])
			return err
		}
	}

	for _, name := range names {
		r.byName[name] = opt
	}
	r.order = append(r.order, opt)
	return nil
}

// revert undoes a rejected registration in the observers already notified.
func (r *registry) revert(opt *Option, notified []Observer) {
	for i := len(notified) - 1; i >= 0; i-- {
		if rev, ok := notified[i].(RegistrationReverter); ok {
			rev.OnRegistrationReverted(opt)
		}
	}
}

func (r *registry) lookup(name string) (*Option, bool) {
	opt, exists := r.byName[name]
	return opt, exists
}

// process looks up an option encountered during a scan and notifies observers.
func (r *registry) process(name string) (*Option, bool, error) {
	opt, exists := r.byName[name]
	if !exists {
		return nil, false, nil
	}
	for _, o := range r.observers {
		if err := o.OnProcessed(opt); err != nil {
			return opt, true, err
		}
	}
	return opt, true, nil
}

func (r *registry) begin() {
	for _, o := range r.observers {
		if s, ok := o.(ScanStarter); ok {
			s.OnScanStarted()
		}
	}
}

func (r *registry) finish() error {
	for _, o := range r.observers {
		if err := o.OnFinished(); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) isEmpty() bool {
	return len(r.order) == 0
}

// names returns every registered name, aliases included, in no particular order.
func (r *registry) names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
