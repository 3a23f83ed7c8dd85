package apiclient

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"chargili/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Query holds query parameters. Empty values are never sent.
type Query map[string]string

func (q Query) Str(key, value string) Query {
	if value != "" {
		q[key] = value
	}
	return q
}

func (q Query) Int(key string, value int64) Query {
	if value != 0 {
		q[key] = strconv.FormatInt(value, 10)
	}
	return q
}

func (q Query) Float(key string, value float64) Query {
	q[key] = strconv.FormatFloat(value, 'f', -1, 64)
	return q
}

// Page always sends page and size, zero based. Sort is optional.
func (q Query) Page(p models.PageRequest) Query {
	q["page"] = strconv.Itoa(p.Page)
	q["size"] = strconv.Itoa(p.Size)
	return q.Str("sort", p.Sort)
}

// Encode renders the query with sorted keys.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	for _, k := range keys {
		args.Add(k, q[k])
	}
	return args.String()
}

// QueryFrom turns a filter struct into a Query using its json tag names.
// Zero values are skipped.
func QueryFrom(filter interface{}) Query {
	q := Query{}
	v := reflect.ValueOf(filter)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return q
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return q
	}
	collect(q, v)
	return q
}

func collect(q Query, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && value.Kind() == reflect.Struct {
			collect(q, value)
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		if value.Kind() == reflect.Pointer {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		} else if value.IsZero() {
			continue
		}
		switch value.Kind() {
		case reflect.String:
			q.Str(name, value.String())
		case reflect.Int, reflect.Int32, reflect.Int64:
			q[name] = strconv.FormatInt(value.Int(), 10)
		case reflect.Float32, reflect.Float64:
			q.Float(name, value.Float())
		case reflect.Bool:
			q[name] = strconv.FormatBool(value.Bool())
		}
	}
}
