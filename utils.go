package cloudinary

import (
	"crypto/sha1"
	"encoding/base64"
	"strconv"

	"github.com/pkg/errors"
)

// signatureLength is the number of base64 characters the service checks in a
// signed delivery URL.
const signatureLength = 8

// signature returns the short delivery signature of toSign: the URL-safe
// base64 of SHA-1(toSign + secret), cut to signatureLength.
func signature(toSign, secret string) (string, error) {
	hash := sha1.New()
	_, err := hash.Write([]byte(toSign + secret))
	if err != nil {
		return "", errors.Wrap(err, "Failed to write to hash writer")
	}
	return base64.URLEncoding.EncodeToString(hash.Sum(nil))[:signatureLength], nil
}

// formatFloat renders the shortest decimal that parses back to v: 2 -> "2",
// 2.5 -> "2.5".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFragmentChar reports whether c may appear unescaped in a URL fragment.
func isFragmentChar(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@' || c == '/' || c == '?'
}

// escapeFragment percent-encodes every byte of s outside the fragment
// character set.
func escapeFragment(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isFragmentChar(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isFragmentChar(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

// invalidPathOffset returns the offset of the first byte of s that is not
// allowed in a path segment, or -1. Percent escapes must be complete.
// Slashes are allowed only when allowSlash is set.
func invalidPathOffset(s string, allowSlash bool) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c), isSubDelim(c), c == ':', c == '@':
		case c == '/' && allowSlash:
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return i
			}
			i += 2
		default:
			return i
		}
	}
	return -1
}

// invalidHostOffset returns the offset of the first byte of host that is not
// allowed in a host name, or -1.
func invalidHostOffset(host string) int {
	for i := 0; i < len(host); i++ {
		c := host[i]
		if isUnreserved(c) || c == ':' || c == '[' || c == ']' {
			continue
		}
		return i
	}
	return -1
}

func validatePublicID(id string) error {
	if id == "" {
		return ErrEmptyPublicID
	}
	if i := invalidPathOffset(id, true); i >= 0 {
		return &InvalidComponentError{Component: "public id", Value: id, Offset: i}
	}
	return nil
}

func validateBucket(bucket string) error {
	if i := invalidPathOffset(bucket, false); i >= 0 {
		return &InvalidComponentError{Component: "bucket", Value: bucket, Offset: i}
	}
	return nil
}

func validateHost(host string) error {
	if host == "" {
		return &InvalidComponentError{Component: "host", Value: host, Offset: -1}
	}
	if i := invalidHostOffset(host); i >= 0 {
		return &InvalidComponentError{Component: "host", Value: host, Offset: i}
	}
	return nil
}
