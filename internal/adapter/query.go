package adapter

import "strings"

const upperhex = "0123456789ABCDEF"

// encodeURIComponent escapes s the way browsers do for a URI component:
// everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is percent-encoded
// byte by byte. Unlike url.QueryEscape, spaces become %20 and "+" is always
// escaped, so Base64 ciphertext survives the trip intact.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// rawQuery keeps parameters in insertion order.
type rawQuery struct {
	parts []string
}

func (q *rawQuery) add(name, value string) *rawQuery {
	q.parts = append(q.parts, encodeURIComponent(name)+"="+encodeURIComponent(value))
	return q
}

func (q *rawQuery) String() string {
	return strings.Join(q.parts, "&")
}

// withQuery appends q to path.
func withQuery(path string, q *rawQuery) string {
	if len(q.parts) == 0 {
		return path
	}
	return path + "?" + q.String()
}
