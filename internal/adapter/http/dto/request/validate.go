package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
)

func init() {
	validate.Config(func(opt *validate.GlobalOption) {
		opt.StopOnError = false
		opt.SkipOnEmpty = true
	})
}

// Validate runs the `validate` tag rules of payload and returns one message per
// failing field, or nil.
func Validate(payload any) map[string]string {
	v := validate.Struct(payload)
	if v.Validate() {
		return nil
	}

	fields := map[string]string{}
	for field, errs := range v.Errors.All() {
		for _, msg := range errs {
			fields[jsonFieldName(field)] = msg
			break
		}
	}
	return fields
}

// jsonFieldName turns a Go field path like "Quote.ClientID" into the snake
// case name the client sent ("quote.client_id").
func jsonFieldName(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || (nextLower && runes[i-1] >= 'A' && runes[i-1] <= 'Z')) {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// merge adds src into dst under prefix and returns dst, allocating it when needed.
func merge(dst map[string]string, prefix string, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = map[string]string{}
	}
	for k, v := range src {
		if prefix != "" {
			k = prefix + "." + k
		}
		dst[k] = v
	}
	return dst
}

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date or an RFC 3339 timestamp. Empty input
// yields the zero time.
func parseDate(field, value string, problems map[string]string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC()
	}
	problems[field] = fmt.Sprintf("must be a date (%s) or an RFC 3339 timestamp", dateLayout)
	return time.Time{}
}

func parseOptionalDate(field, value string, problems map[string]string) *time.Time {
	t := parseDate(field, value, problems)
	if t.IsZero() {
		return nil
	}
	return &t
}

func orNil(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
