package registration

// Registry is the session-scoped list of successfully submitted
// registrations, kept in insertion order.
//
// The registry is append-only: records are immutable once added and there
// is no update, delete, reorder, or dedup operation. It lives only as long
// as the view that owns it; nothing is persisted. The owning view passes
// it explicitly rather than sharing it through package state, and all
// access happens on the UI event loop, so there is no locking.
type Registry struct {
	records []Registration
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a successfully submitted registration.
// Callers must only add records that passed validation and whose
// submission was accepted by the endpoint.
func (r *Registry) Add(rec Registration) {
	r.records = append(r.records, rec)
}

// Len returns the number of registered students this session
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns the registrations in insertion order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Records() []Registration {
	out := make([]Registration, len(r.records))
	copy(out, r.records)
	return out
}
