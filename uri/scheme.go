package uri

import (
	"strings"

	"github.com/hueristiq/hq-go-urlscan/schemes"
)

// Scheme enumerates the small set of protocols the parser recognizes by
// name; every other syntactically valid scheme is accepted but classified
// as SchemeUnknown.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeFile
	SchemeFTP
	SchemeHTTP
	SchemeHTTPS
	SchemeMailto
)

// String returns the lowercase textual form of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeFile:
		return "file"
	case SchemeFTP:
		return "ftp"
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	case SchemeMailto:
		return "mailto"
	default:
		return "unknown"
	}
}

// SchemeFromText classifies a scheme name the same way the parsers do,
// exported for callers synthesizing a scheme for a schemeless match
// (e.g. "www." rewritten to "http").
func SchemeFromText(text string) Scheme {
	return schemeFromText(text)
}

// schemeFromText classifies a lowercased scheme name. Schemes outside the
// small enum (sftp, news, nntp, telnet, webcal, callto, h323, sip, and any
// other syntactically valid scheme) resolve to SchemeUnknown, which is not
// an error by itself — the web grammar still parses the rest of the URL.
func schemeFromText(text string) Scheme {
	switch strings.ToLower(text) {
	case "file":
		return SchemeFile
	case "ftp":
		return SchemeFTP
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "mailto":
		return SchemeMailto
	default:
		return SchemeUnknown
	}
}

var knownSchemeNames = buildKnownSchemeNames()

func buildKnownSchemeNames() map[string]struct{} {
	m := make(map[string]struct{}, len(schemes.Official)+len(schemes.Unofficial)+len(schemes.NoAuthority))

	for _, list := range [][]string{schemes.Official, schemes.Unofficial, schemes.NoAuthority} {
		for _, s := range list {
			m[s] = struct{}{}
		}
	}

	return m
}

// isKnownScheme reports whether text names a scheme the parser recognizes
// at all, either as one of the small Scheme enum's five names or as an
// entry in the schemes package's official/unofficial/no-authority
// registries. A scheme text matching neither is rejected outright in
// strict mode with InvalidProtocol, rather than silently accepted as
// SchemeUnknown and parsed through the web grammar anyway.
func isKnownScheme(text string) bool {
	lowered := strings.ToLower(text)

	if schemeFromText(lowered) != SchemeUnknown {
		return true
	}

	_, ok := knownSchemeNames[lowered]

	return ok
}
