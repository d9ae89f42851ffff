package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringArray maps PostgreSQL TEXT[] columns, implementing the GORM
// Scanner/Valuer interfaces. Used for the talla selection on pedidos.
type StringArray []string

// Scan parses the {a,b,"c d"} text form PostgreSQL returns.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*a = StringArray{}
		return nil
	}
	parts := splitArrayElements(s)
	arr := make(StringArray, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) && len(p) >= 2 {
			p = strings.ReplaceAll(p[1:len(p)-1], `\"`, `"`)
		}
		arr = append(arr, p)
	}
	*a = arr
	return nil
}

// Value serializes to the {a,b,"c d"} text form.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	parts := make([]string, len(a))
	for i, s := range a {
		if strings.ContainsAny(s, `,"{} `) {
			parts[i] = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
		} else {
			parts[i] = s
		}
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// splitArrayElements splits on commas outside double quotes.
func splitArrayElements(s string) []string {
	var parts []string
	var b strings.Builder
	inQuotes := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '"':
			b.WriteRune(r)
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	parts = append(parts, b.String())
	return parts
}
