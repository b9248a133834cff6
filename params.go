package cloudinary

import (
	"strings"
)

// params is an ordered list of transformation tokens. Tokens are joined with
// "," to form one component of a transformation segment; components are
// joined with "/".
type params []string

// set appends prefix+value, skipping empty values so that absent or default
// parameters never show up as bare prefixes.
func (p *params) set(prefix, value string) {
	if value == "" {
		return
	}
	*p = append(*p, prefix+value)
}

// flags appends the given flag tokens as one "."-joined parameter.
func (p *params) flags(tokens []string) {
	if len(tokens) == 0 {
		return
	}
	*p = append(*p, strings.Join(tokens, "."))
}

func (p *params) trim(t *VideoTrim) {
	*p = append(*p, t.tokens()...)
}

func (p params) String() string {
	return strings.Join(p, ",")
}

// chain joins non-empty components with "/".
func chain(components ...string) string {
	var buf strings.Builder
	for _, c := range components {
		if c == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(c)
	}
	return buf.String()
}
