package uri

import (
	"unicode"
	"unicode/utf8"

	"github.com/hueristiq/hq-go-urlscan/internal/charclass"
	"github.com/hueristiq/hq-go-urlscan/urlscan/errcode"
)

// webState enumerates the states of the web grammar state machine.
type webState int

const (
	webProtocol webState = iota
	webSlash
	webSlashSlash
	webUser
	webPasswordStart
	webPassword
	webAt
	webIPv6
	webDomain
	webPortPassword
	webPort
	webSuffixSlash
	webPath
	webQuery
	webFragment
	webDone
)

// isURLTerminator reports whether b is one of the balanced-punctuation
// bytes that end a URL rather than belong to it.
func isURLTerminator(b byte) bool {
	switch b {
	case ')', '}', '>', '\'':
		return true
	default:
		return false
	}
}

// ParseWeb runs the web grammar over buf[start:] and returns the
// decomposed result. strict requires the machine to reach an accepting
// state; in lenient mode, reaching end-of-input mid-host or later always
// counts as success, which is what the extraction driver's end probes
// rely on for speculative end-of-URL detection.
func ParseWeb(buf []byte, start int, strict bool) (res Result, err error) {
	n := len(buf)

	if start >= n {
		err = errcode.New(errcode.Empty)

		return
	}

	i := start
	state := webProtocol
	protoStart := i

	var (
		userStart  int
		hostStart  int
		pathStart  int
		queryStart int
		fragStart  int
		sawAt      bool
		accepted   bool
	)

loop:
	for i <= n {
		var b byte

		atEnd := i >= n
		if !atEnd {
			b = buf[i]
		}

		switch state {
		case webProtocol:
			if atEnd {
				// No colon ever found: rewind and reparse as bare domain.
				i = protoStart
				state = webDomain
				hostStart = i

				continue
			}

			if b == ':' {
				protoText := string(buf[protoStart:i])

				if strict && !isKnownScheme(protoText) {
					err = errcode.Wrap(errcode.InvalidProtocol, "scheme not in any known registry: "+protoText)

					return
				}

				res.Scheme = schemeFromText(protoText)
				res.Set |= FieldScheme
				state = webSlash
				i++

				continue
			}

			if isSchemeByte(b) {
				i++

				continue
			}

			// Invalid protocol byte before any colon: rewind to domain.
			i = protoStart
			state = webDomain
			hostStart = i

		case webSlash, webSlashSlash:
			if !atEnd && b == '/' {
				i++
				state = webSlashSlash

				continue
			}

			if !atEnd && b == '[' {
				state = webIPv6
				hostStart = i + 1
				i++

				continue
			}

			hostStart = i
			userStart = i
			state = webDomain

		case webIPv6:
			if atEnd {
				err = errcode.Wrap(errcode.BadFormat, "unterminated ipv6 literal")

				return
			}

			if b == ']' {
				res.Host = Span{Begin: hostStart, End: i}
				res.Set |= FieldHost
				i++
				state = webSuffixSlash

				continue
			}

			if isHexDigit(b) || b == ':' || b == '.' {
				i++

				continue
			}

			err = errcode.Wrap(errcode.BadFormat, "invalid ipv6 literal")

			return

		case webUser:
			if atEnd || isURLTerminator(b) {
				state = webDone

				break loop
			}

			switch b {
			case ':':
				state = webPasswordStart
				i++
			case '@':
				sawAt = true
				res.UserInfo = Span{Begin: userStart, End: i}
				res.Set |= FieldUserInfo
				i++
				state = webAt
			case '/', '?', '#':
				// Never actually a userinfo: fall back to treating the
				// consumed bytes as the host.
				hostStart = userStart
				state = webDomain
			default:
				if charclass.IsMailSafe(b) {
					i++
				} else {
					state = webDone

					break loop
				}
			}

		case webPasswordStart, webPassword:
			if atEnd {
				// Ambiguous userinfo/host:port — rewind, reparse as domain.
				hostStart = userStart
				state = webDomain
				i = userStart

				continue
			}

			switch b {
			case '@':
				sawAt = true
				res.UserInfo = Span{Begin: userStart, End: i}
				res.Set |= FieldUserInfo
				i++
				state = webAt
			case '/', '?', '#':
				hostStart = userStart
				state = webDomain
				i = userStart
			default:
				i++
				state = webPassword
			}

		case webAt:
			hostStart = i
			state = webDomain

		case webDomain:
			consumed, ok := consumeDomainLabel(buf, i)
			i = consumed

			res.Host = Span{Begin: hostStart, End: i}
			res.Set |= FieldHost

			if !ok || i >= n {
				state = webDone

				break loop
			}

			switch buf[i] {
			case ':':
				if sawAt {
					state = webPort
				} else {
					state = webPortPassword
				}

				i++
			case '/':
				state = webSuffixSlash
			case '?':
				state = webQuery
				i++
				queryStart = i
			case '#':
				state = webFragment
				i++
				fragStart = i
			default:
				// URL terminator or whitespace: the host ends here and
				// nothing that follows belongs to the URL.
				state = webDone

				break loop
			}

		case webPortPassword:
			if !atEnd && isDigit(b) {
				state = webPort

				continue
			}

			// Not a digit: this was user:password, not host:port. Rewind
			// and reparse the whole authority as userinfo.
			userStart = hostStart
			state = webUser
			i = hostStart

		case webPort:
			portStart := i

			for i < n && isDigit(buf[i]) {
				i++
			}

			if i == portStart {
				err = errcode.Wrap(errcode.InvalidPort, "empty port")

				return
			}

			port, convErr := parsePort(buf[portStart:i])
			if convErr != nil {
				err = errcode.Wrap(errcode.InvalidPort, "port out of range")

				return
			}

			res.Port = port
			res.Set |= FieldPort

			if i >= n {
				state = webDone

				break loop
			}

			switch buf[i] {
			case '/':
				state = webSuffixSlash
			case '?':
				i++
				state = webQuery
				queryStart = i
			case '#':
				i++
				state = webFragment
				fragStart = i
			default:
				state = webDone

				break loop
			}

		case webSuffixSlash:
			pathStart = i
			state = webPath

		case webPath:
			for i < n && !isURLTerminator(buf[i]) && buf[i] != '?' && buf[i] != '#' && !charclass.IsLWSP(buf[i]) {
				i++
			}

			res.Path = Span{Begin: pathStart, End: i}
			res.Set |= FieldPath

			if i >= n {
				state = webDone

				break loop
			}

			switch buf[i] {
			case '?':
				i++
				queryStart = i
				state = webQuery
			case '#':
				i++
				fragStart = i
				state = webFragment
			default:
				state = webDone

				break loop
			}

		case webQuery:
			for i < n && !isURLTerminator(buf[i]) && buf[i] != '#' && !charclass.IsLWSP(buf[i]) {
				i++
			}

			res.Query = Span{Begin: queryStart, End: i}
			res.Set |= FieldQuery

			if i >= n || buf[i] != '#' {
				state = webDone

				break loop
			}

			i++
			fragStart = i
			state = webFragment

		case webFragment:
			for i < n && !isURLTerminator(buf[i]) && !charclass.IsLWSP(buf[i]) {
				i++
			}

			res.Fragment = Span{Begin: fragStart, End: i}
			res.Set |= FieldFragment
			state = webDone

			break loop

		case webDone:
			break loop
		}
	}

	res.End = i

	switch {
	case res.Set.Has(FieldHost) && res.Host.Len() > 0:
		accepted = true
	case !strict:
		accepted = true
	}

	if !accepted {
		err = errcode.Wrap(errcode.BadFormat, "web grammar did not reach an accepting state")

		return
	}

	return res, nil
}

// consumeDomainLabel advances i across one run of domain bytes, honoring
// UTF-8 lead bytes validated with unicode.IsLetter/unicode.IsDigit. It
// returns the new index and, in ok, whether the stop was a clean boundary;
// ok is false only for invalid UTF-8, which the caller treats as the end
// of the host rather than a hard parse failure (lenient decoding policy).
func consumeDomainLabel(buf []byte, i int) (next int, ok bool) {
	n := len(buf)

	for i < n {
		b := buf[i]

		if isURLTerminator(b) || charclass.IsLWSP(b) {
			return i, true
		}

		if b == '/' || b == ':' || b == '?' || b == '#' {
			return i, true
		}

		if b == '.' || b == '-' || b == '_' || b == '%' {
			i++

			continue
		}

		if b < utf8.RuneSelf {
			if charclass.IsDomain(b) {
				i++

				continue
			}

			return i, true
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError {
			return i, false
		}

		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			i += size

			continue
		}

		return i, true
	}

	return i, true
}

func isSchemeByte(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '+' || b == '-'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func parsePort(digits []byte) (uint16, error) {
	var v int

	for _, d := range digits {
		v = v*10 + int(d-'0')

		if v > 65535 {
			return 0, errcode.New(errcode.InvalidPort)
		}
	}

	if v < 1 {
		return 0, errcode.New(errcode.InvalidPort)
	}

	return uint16(v), nil
}
