package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
)

// structFields calls fn for every exported field of the struct
// that resource is or points to.
func structFields(resource any, fn func(field reflect.StructField)) {
	t := reflect.Indirect(reflect.ValueOf(resource)).Type()
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			fn(f)
		}
	}
}

// GetURLFields returns the fields of a query filter struct that are
// set in the URL's query string.
//
// queryFields only contains fields that can be passed to a gorm Where
// as field names. Fields tagged with filterField:"false" are handled by
// explicit logic in the controllers (e.g. search) and only appear in
// setFields, which allows filtering for zero values without pointer
// fields.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	query := url.Query()

	structFields(filter, func(f reflect.StructField) {
		if !query.Has(f.Tag.Get("form")) {
			return
		}

		setFields = append(setFields, f.Name)
		if f.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, f.Name)
		}
	})

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource that are
// present in the JSON body, so that updates only write those.
//
// The body is restored after reading, so this must be called before
// BindData.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		return nil, ErrInvalidBody
	}

	var bodyFields []any
	structFields(resource, func(f reflect.StructField) {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if _, ok := present[name]; ok {
			bodyFields = append(bodyFields, f.Name)
		}
	})

	return bodyFields, nil
}
