package uri

import "sort"

// DecodeInPlace percent-decodes every populated component of raw described
// by res, returning a new buffer. Because components are contiguous
// sub-ranges of raw, decoding one in place shrinks it; every later
// component (and the byte ranges between components, which are copied
// verbatim) shift left by the bytes reclaimed. res's spans are rewritten
// to describe offsets into the returned buffer.
//
// An invalid escape (a '%' not followed by two hex digits) is left
// literal rather than rejected, per the lenient decoding policy.
func DecodeInPlace(raw []byte, res *Result) []byte {
	refs := res.spanRefs()

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Begin < refs[j].Begin
	})

	out := make([]byte, 0, len(raw))
	pos := 0

	for _, sp := range refs {
		out = append(out, raw[pos:sp.Begin]...)

		origEnd := sp.End
		newBegin := len(out)

		i := sp.Begin
		for i < origEnd {
			if raw[i] == '%' && i+2 <= origEnd-1 && isHexDigit(raw[i+1]) && isHexDigit(raw[i+2]) {
				out = append(out, hexByte(raw[i+1], raw[i+2]))
				i += 3

				continue
			}

			out = append(out, raw[i])
			i++
		}

		sp.Begin = newBegin
		sp.End = len(out)
		pos = origEnd
	}

	out = append(out, raw[pos:]...)

	res.End = len(out)

	return out
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func hexByte(hi, lo byte) byte {
	return hexVal(hi)<<4 | hexVal(lo)
}
