package uri

// FieldSet is a bitset recording which components a parse populated.
type FieldSet uint16

const (
	FieldScheme FieldSet = 1 << iota
	FieldUserInfo
	FieldHost
	FieldPort
	FieldPath
	FieldQuery
	FieldFragment
)

// Has reports whether every bit in want is present in the set.
func (f FieldSet) Has(want FieldSet) bool {
	return f&want == want
}

// Result is the output of either state machine: a bitset of which fields
// were populated, the component spans (relative to the buffer passed to
// Parse), the decoded port, the recognized scheme, and the offset at which
// the machine stopped consuming input.
type Result struct {
	Set FieldSet

	Scheme   Scheme
	UserInfo Span
	Host     Span
	Path     Span
	Query    Span
	Fragment Span

	Port uint16

	// End is the offset, relative to the start of the buffer passed to
	// Parse, immediately after the last byte consumed.
	End int
}

// spanRefs returns pointers to every populated, non-empty component span,
// used by the percent-decode pass to know which ranges to decode and which
// separator bytes between them to leave untouched.
func (r *Result) spanRefs() []*Span {
	refs := make([]*Span, 0, 5)

	if r.Set.Has(FieldUserInfo) && !r.UserInfo.Empty() {
		refs = append(refs, &r.UserInfo)
	}

	if r.Set.Has(FieldHost) && !r.Host.Empty() {
		refs = append(refs, &r.Host)
	}

	if r.Set.Has(FieldPath) && !r.Path.Empty() {
		refs = append(refs, &r.Path)
	}

	if r.Set.Has(FieldQuery) && !r.Query.Empty() {
		refs = append(refs, &r.Query)
	}

	if r.Set.Has(FieldFragment) && !r.Fragment.Empty() {
		refs = append(refs, &r.Fragment)
	}

	return refs
}
