package validators

import (
	"reflect"
	"strings"
)

// escaper mirrors the HTML escaping of validator.js escape().
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape HTML-escapes s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// sanitize applies the `sanitize` tag operations ("trim", "escape") to the
// string fields of the struct obj points to. Other values are left as-is.
func sanitize(obj any) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("sanitize")
		if !ok {
			continue
		}
		f := v.Field(i)
		if f.Kind() != reflect.String || !f.CanSet() {
			continue
		}

		s := f.String()
		for _, op := range strings.Split(tag, ",") {
			switch strings.TrimSpace(op) {
			case "trim":
				s = strings.TrimSpace(s)
			case "escape":
				s = Escape(s)
			}
		}
		f.SetString(s)
	}
}
