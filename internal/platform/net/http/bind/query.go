package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "workdays/internal/platform/errors"
)

// ParseQuery binds URL query parameters into T by `query` struct tags, then
// runs the struct validator. Absent parameters leave the field at its zero
// value (nil for pointer fields), so handlers can distinguish "missing" from
// "zero". Supported field kinds: string, int, int64, float64, bool, and
// pointers to those.
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		return dst, perr.Internalf("query bind target must be a struct")
	}

	q := r.URL.Query()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("query")
		if name == "" || name == "-" {
			continue
		}
		if idx := strings.Index(name, ","); idx >= 0 {
			name = name[:idx]
		}
		if !q.Has(name) {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if err := setField(rv.Field(i), raw); err != nil {
			return dst, perr.WithField(
				perr.Validationf("parameter %q %s", name, err.Error()), name)
		}
	}

	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// fieldErr is a tiny error for setField so ParseQuery can phrase the message
type fieldErr string

func (e fieldErr) Error() string { return string(e) }

func setField(fv reflect.Value, raw string) error {
	if fv.Kind() == reflect.Pointer {
		p := reflect.New(fv.Type().Elem())
		if err := setField(p.Elem(), raw); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fieldErr("must be an integer")
		}
		fv.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fieldErr("must be a number")
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fieldErr("must be a boolean")
		}
		fv.SetBool(b)
	default:
		return fieldErr("has an unsupported type")
	}
	return nil
}
