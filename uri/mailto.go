package uri

import (
	"github.com/hueristiq/hq-go-urlscan/internal/charclass"
	"github.com/hueristiq/hq-go-urlscan/urlscan/errcode"
)

// mailtoState enumerates the states of the mailto grammar state machine.
type mailtoState int

const (
	mailtoScheme mailtoState = iota
	mailtoSlash
	mailtoSlashSlash
	mailtoPrefixQuestion
	mailtoUser
	mailtoAt
	mailtoDomain
	mailtoSuffixQuestion
	mailtoQuery
	mailtoDone
)

const mailtoPrefix = "mailto:"

// ParseMailto runs the mailto grammar over buf[start:], expecting the
// literal prefix "mailto:" optionally followed by "//", an optional
// "?to=" destination prefix, then "local-part@domain[?query]".
func ParseMailto(buf []byte, start int, strict bool) (res Result, err error) {
	n := len(buf)

	if start >= n {
		err = errcode.New(errcode.Empty)

		return
	}

	if !hasPrefixAt(buf, start, mailtoPrefix) {
		err = errcode.Wrap(errcode.InvalidProtocol, "missing mailto: prefix")

		return
	}

	res.Scheme = SchemeMailto
	res.Set |= FieldScheme

	i := start + len(mailtoPrefix)
	state := mailtoSlash

	var userStart, domainStart, queryStart int

loop:
	for i <= n {
		atEnd := i >= n

		var b byte
		if !atEnd {
			b = buf[i]
		}

		switch state {
		case mailtoSlash, mailtoSlashSlash:
			if !atEnd && b == '/' {
				i++
				state = mailtoSlashSlash

				continue
			}

			if !atEnd && b == '?' {
				i++
				state = mailtoPrefixQuestion

				continue
			}

			userStart = i
			state = mailtoUser

		case mailtoPrefixQuestion:
			if hasPrefixAt(buf, i, "to=") {
				i += len("to=")
			}

			userStart = i
			state = mailtoUser

		case mailtoUser:
			if atEnd {
				state = mailtoDone

				break loop
			}

			if b == '@' {
				if i == userStart {
					err = errcode.Wrap(errcode.BadFormat, "empty mailto local-part")

					return
				}

				res.UserInfo = Span{Begin: userStart, End: i}
				res.Set |= FieldUserInfo
				i++
				state = mailtoAt

				continue
			}

			if charclass.IsMailSafe(b) {
				i++

				continue
			}

			state = mailtoDone

			break loop

		case mailtoAt:
			domainStart = i
			state = mailtoDomain

		case mailtoDomain:
			for i < n {
				b2 := buf[i]

				if charclass.IsDomain(b2) || b2 == '.' || b2 == '_' {
					i++

					continue
				}

				break
			}

			res.Host = Span{Begin: domainStart, End: i}
			res.Set |= FieldHost

			if i >= n {
				state = mailtoDone

				break loop
			}

			if buf[i] == '?' {
				i++
				state = mailtoSuffixQuestion

				continue
			}

			state = mailtoDone

			break loop

		case mailtoSuffixQuestion:
			queryStart = i
			state = mailtoQuery

		case mailtoQuery:
			for i < n && charclass.IsMailSafe(buf[i]) {
				i++
			}

			res.Query = Span{Begin: queryStart, End: i}
			res.Set |= FieldQuery
			state = mailtoDone

			break loop

		case mailtoDone:
			break loop
		}
	}

	res.End = i

	if !res.Set.Has(FieldUserInfo) || res.UserInfo.Empty() {
		if strict {
			err = errcode.Wrap(errcode.BadFormat, "mailto grammar did not reach an accepting state")

			return
		}
	}

	return res, nil
}

func hasPrefixAt(buf []byte, at int, prefix string) bool {
	if at+len(prefix) > len(buf) {
		return false
	}

	for i := 0; i < len(prefix); i++ {
		c := buf[at+i]

		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		if c != prefix[i] {
			return false
		}
	}

	return true
}
