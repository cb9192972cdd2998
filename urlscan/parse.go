package urlscan

import (
	"strings"

	"github.com/hueristiq/hq-go-urlscan/tld"
	"github.com/hueristiq/hq-go-urlscan/uri"
	"github.com/hueristiq/hq-go-urlscan/urlscan/errcode"
)

// ParseURL parses a single, already-isolated URL or mailto string in
// strict mode: text is expected to be exactly one URL, not a block of
// prose to search.
func (e *Engine) ParseURL(text []byte) (url *URL, err error) {
	if len(text) == 0 {
		return nil, errcode.New(errcode.Empty)
	}

	var res uri.Result

	if hasMailtoPrefix(text) {
		res, err = uri.ParseMailto(text, 0, true)
	} else {
		res, err = uri.ParseWeb(text, 0, true)
	}

	if err != nil {
		return nil, err
	}

	return e.finalize(text, res, e.scheme)
}

func hasMailtoPrefix(text []byte) bool {
	const prefix = "mailto:"

	if len(text) < len(prefix) {
		return false
	}

	return strings.EqualFold(string(text[:len(prefix)]), prefix)
}

// finalize percent-decodes raw, resolves and lowercases the host, runs it
// through the TLD classifier, and assembles the accepted URL record. raw
// must already be exactly the candidate span — callers never need to
// rebase res's spans, since both ParseURL and the extraction driver parse
// sub-slices starting at offset 0 rather than offsets into a larger
// buffer.
func (e *Engine) finalize(raw []byte, res uri.Result, schemeFallback string) (url *URL, err error) {
	decoded := uri.DecodeInPlace(raw, &res)

	var hostBytes []byte

	if res.Set.Has(uri.FieldHost) {
		hostBytes = res.Host.Slice(decoded)
	}

	isMailto := res.Scheme == uri.SchemeMailto

	if len(hostBytes) == 0 {
		if isMailto {
			return &URL{
				Raw:      decoded,
				Scheme:   res.Scheme,
				UserInfo: res.UserInfo,
				Path:     res.Path,
				Query:    res.Query,
				Fragment: res.Fragment,
				Port:     res.Port,
			}, nil
		}

		return nil, errcode.New(errcode.HostMissing)
	}

	lowerASCIIInPlace(hostBytes)

	tldRes, classifyErr := e.tld.Classify(hostBytes)
	if classifyErr != nil {
		return nil, classifyErr
	}

	scheme := res.Scheme

	if !res.Set.Has(uri.FieldScheme) && schemeFallback != "" {
		scheme = uri.SchemeFromText(schemeFallback)
	}

	url = &URL{
		Raw:      decoded,
		Scheme:   scheme,
		UserInfo: res.UserInfo,
		Host:     res.Host,
		TLD:      tldRes.TLD,
		Path:     res.Path,
		Query:    res.Query,
		Fragment: res.Fragment,
		Port:     res.Port,
		Flags:    mapTLDFlags(tldRes.Flags),
	}

	if tldRes.Host != nil {
		url.HostOwned = tldRes.Host
	}

	return url, nil
}

// lowerASCIIInPlace rewrites every uppercase ASCII byte in b to lowercase,
// in place. ASCII case-folding is length-preserving, so the host span can
// be normalized this way without shifting any span that follows it in the
// owning buffer.
func lowerASCIIInPlace(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}

func mapTLDFlags(f tld.Flags) (out Flags) {
	if f&tld.NumericHost != 0 {
		out |= NumericHost
	}

	if f&tld.ObscuredHost != 0 {
		out |= ObscuredHost
	}

	return out
}
