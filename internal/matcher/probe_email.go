package matcher

import (
	"github.com/hueristiq/hq-go-urlscan/internal/charclass"
	"github.com/hueristiq/hq-go-urlscan/uri"
)

// MailtoEnd runs the mailto grammar in lenient mode from matchBegin,
// reporting the offset the grammar stopped at and the end of the
// userinfo span (for last_at suppression).
func MailtoEnd(text []byte, matchBegin int) (end int, userInfoEnd int, ok bool) {
	res, err := uri.ParseMailto(text, matchBegin, false)
	if err != nil {
		return 0, 0, false
	}

	if res.Set.Has(uri.FieldUserInfo) {
		userInfoEnd = res.UserInfo.End
	}

	return res.End, userInfoEnd, true
}

// BareAtSpan grows a bare '@' sentinel at position at into a local-part@
// domain span: walk left collecting MAILSAFE bytes for the local-part,
// walk right collecting DOMAIN bytes for the domain, then trim
// non-alphanumeric bytes from both ends. Requires an alphanumeric
// immediately on each side of '@'.
func BareAtSpan(text []byte, at int) (begin, end int, ok bool) {
	if at <= 0 || at >= len(text)-1 {
		return 0, 0, false
	}

	if !isASCIIAlnum(text[at-1]) || !isASCIIAlnum(text[at+1]) {
		return 0, 0, false
	}

	left := at

	for left > 0 && charclass.IsMailSafe(text[left-1]) {
		left--
	}

	right := at + 1

	for right < len(text) && charclass.IsDomain(text[right]) {
		right++
	}

	for left < at && !isASCIIAlnum(text[left]) {
		left++
	}

	for right > at+1 && !isASCIIAlnum(text[right-1]) {
		right--
	}

	if left >= at || right <= at+1 {
		return 0, 0, false
	}

	return left, right, true
}
