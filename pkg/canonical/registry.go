package canonical

import "sync"

// Registry maps codec names to codecs. Registration is last-write-wins and
// there is no removal; once startup population is done, concurrent lookups
// are safe.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry returns an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register stores the codec under its name, overwriting any previous entry.
func (r *Registry) Register(c Codec) {
	if c == nil {
		return
	}
	r.mu.Lock()
	r.codecs[c.Name()] = c
	r.mu.Unlock()
}

// Lookup returns the codec registered under name, if any.
func (r *Registry) Lookup(name string) (Codec, bool) {
	r.mu.RLock()
	c, ok := r.codecs[name]
	r.mu.RUnlock()
	return c, ok
}

// Names returns the registered codec names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		out = append(out, name)
	}
	return out
}

// defaultRegistry holds the two codecs every filesystem-path check uses,
// independent of whatever the host application registers for its own fields.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(HTMLEntityCodec{})
	r.Register(PercentCodec{})
	return r
}()

// DefaultRegistry returns the process-wide registry pre-populated with the
// HTML-entity and percent codecs. Treat it as read-only.
func DefaultRegistry() *Registry { return defaultRegistry }
