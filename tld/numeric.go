package tld

import (
	"net"
	"strconv"
)

// parseLiteralIPv4 accepts only a strict four-component decimal dotted-quad
// ("1.2.3.4"), returning its canonical textual form. Anything using octal,
// hexadecimal, or fewer than four components is left to
// parseObscuredIPv4.
func parseLiteralIPv4(text string) (canonical string, ok bool) {
	if !looksLikeDottedDecimal(text) {
		return "", false
	}

	ip := net.ParseIP(text)
	if ip == nil {
		return "", false
	}

	v4 := ip.To4()
	if v4 == nil {
		return "", false
	}

	return v4.String(), true
}

// parseLiteralIPv6 accepts a literal IPv6 address, optionally bracketed
// ("[::1]" or "::1"), returning its canonical textual form.
func parseLiteralIPv6(text string) (canonical string, ok bool) {
	stripped := stripBrackets(text)

	ip := net.ParseIP(stripped)
	if ip == nil {
		return "", false
	}

	if ip.To4() != nil {
		return "", false
	}

	if ip.To16() == nil {
		return "", false
	}

	return ip.String(), true
}

// parseObscuredIPv4 decodes a permissive, inet_aton-style host of one to
// four dot-separated components, each itself decimal, octal (a leading
// "0"), or hexadecimal (a leading "0x"/"0X"). Components combine by
// bit-shift the way BSD's inet_aton does: the last component absorbs
// whatever bit width the missing components would otherwise have
// occupied. Non-last components must fit in a byte; the last component
// must fit in the remaining width.
func parseObscuredIPv4(text string) (addr uint32, ok bool) {
	if text == "" {
		return 0, false
	}

	parts := splitDot(text)
	if len(parts) == 0 || len(parts) > 4 {
		return 0, false
	}

	values := make([]uint64, len(parts))

	for i, p := range parts {
		v, valid := parseComponent(p)
		if !valid {
			return 0, false
		}

		values[i] = v
	}

	n := len(values)

	for i := 0; i < n-1; i++ {
		if values[i] > 0xff {
			return 0, false
		}
	}

	lastWidth := uint(32 - 8*(n-1))

	if lastWidth < 32 && values[n-1] >= (uint64(1)<<lastWidth) {
		return 0, false
	}

	switch n {
	case 1:
		addr = uint32(values[0])
	case 2:
		addr = uint32(values[0])<<24 | uint32(values[1])
	case 3:
		addr = uint32(values[0])<<24 | uint32(values[1])<<16 | uint32(values[2])
	case 4:
		addr = uint32(values[0])<<24 | uint32(values[1])<<16 | uint32(values[2])<<8 | uint32(values[3])
	}

	return addr, true
}

// formatDottedQuad renders addr as a standard IPv4 dotted-quad string.
func formatDottedQuad(addr uint32) string {
	b0 := byte(addr >> 24)
	b1 := byte(addr >> 16)
	b2 := byte(addr >> 8)
	b3 := byte(addr)

	buf := make([]byte, 0, 15)
	buf = strconv.AppendUint(buf, uint64(b0), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(b1), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(b2), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(b3), 10)

	return string(buf)
}

// parseComponent parses a single inet_aton-style numeric component:
// hexadecimal with a "0x"/"0X" prefix, octal with a bare leading "0" and
// more than one digit, decimal otherwise.
func parseComponent(s string) (val uint64, ok bool) {
	if s == "" {
		return 0, false
	}

	base := 10

	switch {
	case len(s) > 2 && (s[0:2] == "0x" || s[0:2] == "0X"):
		base = 16
		s = s[2:]
	case len(s) > 1 && s[0] == '0':
		base = 8
	}

	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// splitDot splits s on '.' without producing empty leading/trailing
// components for a well-formed host, and rejects doubled dots outright by
// surfacing the empty component to the caller's component parser.
func splitDot(s string) []string {
	parts := make([]string, 0, 4)

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	parts = append(parts, s[start:])

	return parts
}
