package listing

import (
	"net/url"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Params is a query string that keeps its keys in insertion order, so a
// rewritten URL reads the same way the visitor's URL did. Set replaces the
// first occurrence in place and drops duplicates; a new key is appended.
//
// The zero value is an empty query ready to use.
type Params struct {
	pairs []pair
}

// ParseParams parses a raw query (with or without the leading '?').
// Malformed escapes are kept verbatim rather than rejected, the way browsers
// treat them.
func ParseParams(rawQuery string) Params {
	rawQuery = strings.TrimPrefix(rawQuery, "?")

	var p Params
	for part := range strings.SplitSeq(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		p.pairs = append(p.pairs, pair{key: unescape(key), value: unescape(value)})
	}
	return p
}

// ParamsFromValues builds Params from url.Values. url.Values has no order, so
// well-known listing keys come first in their canonical order followed by the
// rest sorted by name.
func ParamsFromValues(v url.Values) Params {
	var p Params
	seen := make(map[string]bool, len(v))
	for _, key := range canonicalOrder {
		for _, value := range v[key] {
			p.pairs = append(p.pairs, pair{key: key, value: value})
		}
		seen[key] = true
	}
	for _, key := range sortedKeys(v) {
		if seen[key] {
			continue
		}
		for _, value := range v[key] {
			p.pairs = append(p.pairs, pair{key: key, value: value})
		}
	}
	return p
}

// Get returns the first value for key, or "" when absent.
func (p Params) Get(key string) string {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value
		}
	}
	return ""
}

// Has reports whether key is present, even with an empty value.
func (p Params) Has(key string) bool {
	for _, kv := range p.pairs {
		if kv.key == key {
			return true
		}
	}
	return false
}

// Set assigns value to key.
func (p *Params) Set(key, value string) {
	out := make([]pair, 0, len(p.pairs))
	found := false
	for _, kv := range p.pairs {
		if kv.key != key {
			out = append(out, kv)
			continue
		}
		if !found {
			out = append(out, pair{key: key, value: value})
			found = true
		}
	}
	if !found {
		out = append(out, pair{key: key, value: value})
	}
	p.pairs = out
}

// Del removes every occurrence of key.
func (p *Params) Del(key string) {
	out := make([]pair, 0, len(p.pairs))
	for _, kv := range p.pairs {
		if kv.key != key {
			out = append(out, kv)
		}
	}
	p.pairs = out
}

// Len returns the number of key/value pairs.
func (p Params) Len() int {
	return len(p.pairs)
}

// Clone returns an independent copy.
func (p Params) Clone() Params {
	if p.pairs == nil {
		return Params{}
	}
	out := make([]pair, len(p.pairs))
	copy(out, p.pairs)
	return Params{pairs: out}
}

// Values converts to url.Values for consumers that do not care about order.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p.pairs))
	for _, kv := range p.pairs {
		v[kv.key] = append(v[kv.key], kv.value)
	}
	return v
}

// Encode renders the query in form encoding without the leading '?'.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.value))
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return p.Encode()
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
