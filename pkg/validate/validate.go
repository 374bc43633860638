// Package validate checks struct fields against rules declared in a
// `validate` tag, comma-separated:
//
//	required            must not be zero/empty
//	nullable            empty skips every other rule on the field
//	email               well-formed email address
//	date                parseable date (common layouts tried in order)
//	numeric             any number
//	integer             whole number
//	min=N / max=N       char length for strings, value for numbers
//	gt / gte / lt / lte numeric comparison against N
//	in=a,b,c            one of the listed values
//	regex=pattern       must match pattern (no commas inside)
//
//	type Input struct {
//	    Name  string  `json:"name"  validate:"required,max=255"`
//	    Price float64 `json:"price" validate:"required,gt=0"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Struct checks every exported field of v carrying a `validate` tag and
// returns a field→message map keyed by the json field name. An empty map
// means v passed.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("validate")
		if tag == "" {
			continue
		}
		f := field{
			name:  tagName(rt.Field(i)),
			value: rv.Field(i),
		}

		rules := splitTag(tag)
		if contains(rules, "nullable") && f.empty() {
			continue
		}
		for _, r := range rules {
			if r == "nullable" {
				continue
			}
			name, param, _ := strings.Cut(r, "=")
			check, ok := checks[name]
			if !ok {
				continue
			}
			if msg := check(f, param); msg != "" {
				errs[f.name] = msg
				break
			}
		}
	}
	return errs
}

// HasErrors reports whether Struct found anything.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

// field bundles a value with its json name so checks can build messages.
type field struct {
	name  string
	value reflect.Value
}

func (f field) str() string { return fmt.Sprintf("%v", f.value.Interface()) }

func (f field) empty() bool {
	v := f.value
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		// false is a value, not an absence
		return false
	default:
		return f.numeric() && f.float() == 0
	}
}

func (f field) numeric() bool {
	switch f.value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (f field) float() float64 {
	v := f.value
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	n, _ := strconv.ParseFloat(f.str(), 64)
	return n
}

// size is what min/max measure: rune count for strings, value for numbers.
func (f field) size() float64 {
	if f.numeric() {
		return f.float()
	}
	return float64(len([]rune(f.str())))
}

type check func(f field, param string) string

var checks = map[string]check{
	"required": func(f field, _ string) string {
		if f.empty() {
			return f.name + " is required"
		}
		return ""
	},
	"email": func(f field, _ string) string {
		if !emailPattern.MatchString(f.str()) {
			return f.name + " must be a valid email address"
		}
		return ""
	},
	"date": func(f field, _ string) string {
		if _, err := parseDate(f.str()); err != nil {
			return f.name + " is not a valid date"
		}
		return ""
	},
	"numeric": func(f field, _ string) string {
		if _, err := strconv.ParseFloat(f.str(), 64); err != nil {
			return f.name + " must be a number"
		}
		return ""
	},
	"integer": func(f field, _ string) string {
		if _, err := strconv.ParseInt(f.str(), 10, 64); err != nil {
			return f.name + " must be an integer"
		}
		return ""
	},
	"min": bound(func(have, want float64) bool { return have >= want }, "at least"),
	"max": bound(func(have, want float64) bool { return have <= want }, "at most"),
	"gt":  compare(func(have, want float64) bool { return have > want }, "greater than"),
	"gte": compare(func(have, want float64) bool { return have >= want }, "at least"),
	"lt":  compare(func(have, want float64) bool { return have < want }, "less than"),
	"lte": compare(func(have, want float64) bool { return have <= want }, "at most"),
	"in": func(f field, param string) string {
		got := f.str()
		for _, allowed := range strings.Split(param, ",") {
			if got == strings.TrimSpace(allowed) {
				return ""
			}
		}
		return f.name + " must be one of: " + param
	},
	"regex": func(f field, param string) string {
		re, err := regexp.Compile(param)
		if err != nil {
			return f.name + " has an invalid pattern"
		}
		if !re.MatchString(f.str()) {
			return f.name + " format is invalid"
		}
		return ""
	},
}

// bound builds the min/max checks, which measure length for strings and
// value for numbers.
func bound(ok func(have, want float64) bool, word string) check {
	return func(f field, param string) string {
		want, _ := strconv.ParseFloat(strings.TrimSpace(param), 64)
		if ok(f.size(), want) {
			return ""
		}
		if f.numeric() {
			return fmt.Sprintf("%s must be %s %s", f.name, word, param)
		}
		return fmt.Sprintf("%s must be %s %s characters", f.name, word, param)
	}
}

// compare builds the strictly numeric gt/gte/lt/lte checks.
func compare(ok func(have, want float64) bool, word string) check {
	return func(f field, param string) string {
		want, _ := strconv.ParseFloat(strings.TrimSpace(param), 64)
		if ok(f.float(), want) {
			return ""
		}
		return fmt.Sprintf("%s must be %s %s", f.name, word, param)
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04:05", "January 2, 2006", "Jan 2, 2006",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func tagName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	name, _, _ = strings.Cut(name, ",")
	return name
}

// splitTag splits on commas, except commas that continue an in= value
// list. A comma ends the list only when what follows starts a known rule.
func splitTag(tag string) []string {
	var out []string
	var cur strings.Builder
	inList := false

	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c == ',' && (!inList || startsRule(tag[i+1:])) {
			out = append(out, cur.String())
			cur.Reset()
			inList = false
			continue
		}
		cur.WriteByte(c)
		if !inList && strings.HasSuffix(cur.String(), "in=") {
			inList = true
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func startsRule(s string) bool {
	for name := range checks {
		if s == name || strings.HasPrefix(s, name+"=") || strings.HasPrefix(s, name+",") {
			return true
		}
	}
	return s == "nullable" || strings.HasPrefix(s, "nullable,")
}

func contains(rules []string, target string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == target {
			return true
		}
	}
	return false
}
