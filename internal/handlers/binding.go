package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// BindNestedOrFlat binds the request body to obj, accepting both a nested
// payload under the given key (e.g. {"colony": {...}}) and a flat one ({...}).
// Rails-style clients send the nested form; plain API clients send the flat
// form, and both must keep working.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	// Restore the body so later reads still work
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nested); err == nil {
		if val, ok := nested[key]; ok {
			// Key present: the nested object must match the target struct.
			return json.Unmarshal(val, obj)
		}
	}

	// No nested key (or the body was not a JSON object): bind flat.
	return json.Unmarshal(bodyBytes, obj)
}
