package uri

// Span is an offset pair into a byte buffer owned elsewhere. It never
// copies the bytes it describes; callers slice the owning buffer with
// Slice when they need the bytes themselves.
type Span struct {
	Begin int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.End <= s.Begin
}

// Slice returns the bytes of buf covered by s.
func (s Span) Slice(buf []byte) []byte {
	if s.Empty() {
		return nil
	}

	return buf[s.Begin:s.End]
}
