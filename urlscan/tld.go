package urlscan

import "strings"

// FindTLD classifies host exactly as the internal TLD classifier does
// during extraction, returning the byte offset and length of the
// effective top-level domain within the (lowercased) host. ok is false
// when host matched no suffix rule and did not parse as a numeric
// address.
func (e *Engine) FindTLD(host []byte) (offset, length int, ok bool) {
	if len(host) == 0 {
		return 0, 0, false
	}

	lowered := []byte(strings.ToLower(string(host)))

	res, err := e.tld.Classify(lowered)
	if err != nil {
		return 0, 0, false
	}

	if res.Host != nil {
		// Numeric hosts: the effective TLD is the whole host, expressed
		// as an offset/length into the original (not canonicalized) host
		// the caller passed in.
		return 0, len(lowered), true
	}

	return res.TLD.Begin, res.TLD.Len(), true
}
