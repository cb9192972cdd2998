package urlscan

import "github.com/hueristiq/hq-go-urlscan/uri"

// Flags is a bitset of properties attached to an accepted URL record.
type Flags uint8

const (
	// Phished marks a URL whose visible text differed from its href
	// target. The core never sets this bit itself — it is populated by
	// an upstream HTML walker that has both the anchor text and the
	// target to compare.
	Phished Flags = 1 << iota

	// NumericHost marks a host that parsed as an IPv4 or IPv6 address,
	// literally or via the permissive decoder.
	NumericHost

	// ObscuredHost marks a NumericHost reconstructed from octal,
	// hexadecimal, or packed-decimal components rather than a literal
	// dotted-quad or bracketed IPv6 address.
	ObscuredHost
)

// URL is one accepted, normalized URL or mailto record. Scheme is the
// classified protocol; UserInfo, Host, Path, Query, and Fragment are all
// sub-ranges of Raw — Host's bytes are lowercased in place before Raw is
// handed off, which is length-preserving and so never disturbs
// Path/Query/Fragment's offsets.
//
// HostOwned is the sanctioned exception: when NumericHost is set, the
// canonical dotted-quad or IPv6 text (without brackets) can be a different length
// than what was actually written in Raw (e.g. "0x7f.1" canonicalizes to
// "127.0.0.1"), so it cannot be expressed as a span into Raw. HostOwned
// holds that independently-allocated replacement; Host still spans the
// original, as-written host text in Raw. Use HostString/TLDString rather
// than the fields directly to get the resolved view.
type URL struct {
	Raw []byte

	Scheme    uri.Scheme
	UserInfo  uri.Span
	Host      uri.Span
	HostOwned []byte
	TLD       uri.Span
	Path      uri.Span
	Query     uri.Span
	Fragment  uri.Span

	Port  uint16
	Flags Flags

	// PhishedURL, when non-nil, is the second record an upstream HTML
	// walker associates with this one after setting Phished.
	PhishedURL *URL
}

// hostBytes returns the resolved host bytes: HostOwned's canonical text
// when present, otherwise Host sliced out of Raw. TLD is always a
// sub-range of whichever buffer this returns.
func (u *URL) hostBytes() []byte {
	if u.HostOwned != nil {
		return u.HostOwned
	}

	return u.Host.Slice(u.Raw)
}

// UserInfoString returns the decoded userinfo component.
func (u *URL) UserInfoString() string {
	return string(u.UserInfo.Slice(u.Raw))
}

// HostString returns the resolved host.
func (u *URL) HostString() string {
	return string(u.hostBytes())
}

// TLDString returns the effective top-level domain carved out of Host.
func (u *URL) TLDString() string {
	return string(u.TLD.Slice(u.hostBytes()))
}

// PathString returns the decoded path component.
func (u *URL) PathString() string {
	return string(u.Path.Slice(u.Raw))
}

// QueryString returns the decoded query component.
func (u *URL) QueryString() string {
	return string(u.Query.Slice(u.Raw))
}

// FragmentString returns the decoded fragment component.
func (u *URL) FragmentString() string {
	return string(u.Fragment.Slice(u.Raw))
}

// Equal is the method form of the package-level Equal, matching the
// public API's Engine.Equal signature for hash-set-keyed duplicate
// suppression.
func (e *Engine) Equal(a, b *URL) bool {
	return Equal(a, b)
}

// Equal reports whether a and b carry byte-identical Raw text, the
// property spec.md's ordering guarantee relies on for hash-set-keyed
// duplicate suppression across a single text block.
func Equal(a, b *URL) bool {
	if a == nil || b == nil {
		return a == b
	}

	if len(a.Raw) != len(b.Raw) {
		return false
	}

	for i := range a.Raw {
		if a.Raw[i] != b.Raw[i] {
			return false
		}
	}

	return true
}
