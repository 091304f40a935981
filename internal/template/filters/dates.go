package filters

import (
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/goodsign/monday"
)

// DefaultDateLayout is used when formatDate is called without a layout.
const DefaultDateLayout = "2006-01-02"

// filterFormatDate formats a date value with a Go reference layout:
//
//	{{ createdAt | formatDate:"Jan 2, 2006" }}
//
// Accepts time.Time values, RFC 3339 strings, date-only strings, and
// Unix epoch integers.
func filterFormatDate(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, err := coerceTime(in)
	if err != nil {
		return nil, filterError("formatDate", err)
	}

	layout := DefaultDateLayout
	if param != nil && param.String() != "" {
		layout = param.String()
	}

	return pongo2.AsValue(monday.Format(t, layout, monday.LocaleEnUS)), nil
}

// filterFormatDateLocale formats a date for a specific locale. The
// parameter is "locale|layout", the pipe keeping layouts free to
// contain commas:
//
//	{{ createdAt | formatDateLocale:"fr_FR|2 January 2006" }}
func filterFormatDateLocale(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, err := coerceTime(in)
	if err != nil {
		return nil, filterError("formatDateLocale", err)
	}

	if param == nil || param.String() == "" {
		return nil, filterError("formatDateLocale",
			fmt.Errorf("missing parameter, expected \"locale|layout\""))
	}

	locale := monday.Locale(monday.LocaleEnUS)
	layout := DefaultDateLayout

	spec := param.String()
	if idx := strings.Index(spec, "|"); idx >= 0 {
		if idx > 0 {
			locale = monday.Locale(spec[:idx])
		}
		if idx+1 < len(spec) {
			layout = spec[idx+1:]
		}
	} else {
		locale = monday.Locale(spec)
	}

	return pongo2.AsValue(monday.Format(t, layout, locale)), nil
}

// coerceTime converts a template value to time.Time.
func coerceTime(in *pongo2.Value) (time.Time, error) {
	switch v := in.Interface().(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil time value")
		}
		return *v, nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", v)
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("cannot format %T as a date", v)
	}
}
