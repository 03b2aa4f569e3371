package conversion

import (
	"reflect"
	"testing"

	schema "github.com/viant/mcp-protocol/schema"

	"github.com/stretchr/testify/assert"
)

func TestTypeFromInputSchema(t *testing.T) {
	testCases := []struct {
		name         string
		schema       schema.ToolInputSchema
		expFieldInfo map[string]reflect.Kind
	}{
		{
			name:         "no properties",
			schema:       schema.ToolInputSchema{Type: "object"},
			expFieldInfo: map[string]reflect.Kind{},
		},
		{
			name: "handle and key",
			schema: schema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"handle": {"type": "integer"},
					"key":    {"type": "integer"},
				},
				Required: []string{"handle", "key"},
			},
			expFieldInfo: map[string]reflect.Kind{"Handle": reflect.Int, "Key": reflect.Int},
		},
		{
			name: "mixed required/optional fields",
			schema: schema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"backend": {"type": "string"},
					"keys":    {"type": "array"},
					"found":   {"type": "boolean"},
				},
				Required: []string{"keys"},
			},
			expFieldInfo: map[string]reflect.Kind{"Backend": reflect.String, "Keys": reflect.Slice, "Found": reflect.Bool},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rType, err := TypeFromInputSchema(tc.schema)
			assert.NoError(t, err)
			assert.EqualValues(t, reflect.Struct, rType.Kind())
			assert.EqualValues(t, len(tc.expFieldInfo), rType.NumField())

			for fieldName, kind := range tc.expFieldInfo {
				field, ok := rType.FieldByName(fieldName)
				if assert.True(t, ok, "expected field %s", fieldName) {
					assert.EqualValues(t, kind, field.Type.Kind())
				}
			}
		})
	}
}
