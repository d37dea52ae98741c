package detect

// charSet is an explicit allow-list of byte values.
type charSet [256]bool

func newCharSet(allowWhitespace bool) *charSet {
	var set charSet
	for c := 0x20; c <= 0x7e; c++ {
		set[c] = true
	}
	if allowWhitespace {
		set['\t'] = true
		set['\n'] = true
		set['\r'] = true
	}
	return &set
}

var printableASCII = newCharSet(false)

func (s *charSet) all(data []byte) bool {
	for _, b := range data {
		if !s[b] {
			return false
		}
	}
	return true
}

// IsPrintableText returns true if every byte in data is printable ASCII, from space through tilde.
// An empty buffer is trivially printable.
func IsPrintableText(data []byte) bool {
	return printableASCII.all(data)
}

// TryDecodeAsText returns data as a string if IsPrintableText holds for it.
func TryDecodeAsText(data []byte) (string, bool) {
	if !IsPrintableText(data) {
		return "", false
	}
	return string(data), true
}
