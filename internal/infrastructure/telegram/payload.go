// Package telegram verifies Telegram Mini App init data.
// https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app
package telegram

import (
	"net/url"
	"sort"
	"strings"
)

const (
	fieldHash     = "hash"
	fieldAuthDate = "auth_date"
	fieldUser     = "user"
)

// InitDataPayload holds the decoded init data fields
type InitDataPayload map[string]string

// ParseInitData decodes a raw query string. It never fails: a component with a
// broken escape is kept as is, later checks reject what it turns into.
func ParseInitData(raw string) InitDataPayload {
	payload := make(InitDataPayload)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		payload[decodeComponent(key)] = decodeComponent(value)
	}
	return payload
}

func decodeComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return decoded
}

// Hash returns the supplied signature
func (p InitDataPayload) Hash() string {
	return p[fieldHash]
}

// DataCheckString joins every field except hash as key=value, sorted by key, with \n
func (p InitDataPayload) DataCheckString() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if k == fieldHash {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k])
	}
	return b.String()
}

// Clone returns an independent copy
func (p InitDataPayload) Clone() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
