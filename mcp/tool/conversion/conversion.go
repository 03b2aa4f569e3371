package conversion

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// BuildSchema derives the MCP tool definition of an action signature.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(newSample(sig.Input)); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	output := sig.Output
	if output.Kind() == reflect.Pointer {
		output = output.Elem()
	}
	props, required := schema.StructToProperties(output)
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

func newSample(t reflect.Type) interface{} {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// typeRegistry holds dynamic Go types generated from remote tool schemas.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of dynamic types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a Go type for schema-based conversion.
func RegisterType(t reflect.Type) {
	typeRegistry.Register(x.NewType(t))
}

// TypeFromInputSchema converts a tool input schema into a generated struct
// type. A schema without properties yields an empty struct, never a map,
// so the result can always be converted back with StructToProperties.
func TypeFromInputSchema(inputSchema schema.ToolInputSchema) (reflect.Type, error) {
	return typeFromProperties(inputSchema.Properties, inputSchema.Required)
}

// TypeFromOutputSchema is the ToolOutputSchema counterpart of TypeFromInputSchema.
func TypeFromOutputSchema(outputSchema schema.ToolOutputSchema) (reflect.Type, error) {
	return typeFromProperties(outputSchema.Properties, outputSchema.Required)
}

func typeFromProperties(props map[string]map[string]interface{}, required []string) (reflect.Type, error) {
	if len(props) == 0 {
		return reflect.StructOf([]reflect.StructField{}), nil
	}
	fields, err := buildFields(props, required)
	if err != nil {
		return nil, err
	}
	t := reflect.StructOf(fields)
	RegisterType(t)
	return t, nil
}

func buildFields(props map[string]map[string]interface{}, required []string) ([]reflect.StructField, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
	}
	fields := make([]reflect.StructField, 0, len(names))
	for _, name := range names {
		fieldType, err := goType(props[name])
		if err != nil {
			return nil, fmt.Errorf("failed to determine type for field %q: %w", name, err)
		}
		tag := name
		if !requiredSet[name] {
			tag += ",omitempty"
		}
		fields = append(fields, reflect.StructField{
			Name: exportedName(name),
			Type: fieldType,
			Tag:  reflect.StructTag(fmt.Sprintf("json:%q", tag)),
		})
	}
	return fields, nil
}

func exportedName(name string) string {
	if name == "" {
		return "Field"
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func schemaType(def map[string]interface{}) string {
	switch v := def["type"].(type) {
	case string:
		return v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func goType(def map[string]interface{}) (reflect.Type, error) {
	switch schemaType(def) {
	case "string":
		return reflect.TypeOf(""), nil
	case "integer":
		return reflect.TypeOf(0), nil
	case "number":
		return reflect.TypeOf(float64(0)), nil
	case "boolean":
		return reflect.TypeOf(true), nil
	case "object":
		nested := map[string]map[string]interface{}{}
		if raw, ok := def["properties"].(map[string]interface{}); ok {
			for k, v := range raw {
				if m, ok := v.(map[string]interface{}); ok {
					nested[k] = m
				}
			}
		}
		var nestedRequired []string
		if raw, ok := def["required"].([]interface{}); ok {
			for _, item := range raw {
				if s, ok := item.(string); ok {
					nestedRequired = append(nestedRequired, s)
				}
			}
		}
		return typeFromProperties(nested, nestedRequired)
	case "array":
		if raw, ok := def["items"].(map[string]interface{}); ok {
			itemType, err := goType(raw)
			if err != nil {
				return nil, err
			}
			return reflect.SliceOf(itemType), nil
		}
		return reflect.TypeOf([]interface{}{}), nil
	case "":
		return reflect.TypeOf(new(interface{})).Elem(), nil
	default:
		return nil, fmt.Errorf("unsupported schema type %q", strings.TrimSpace(schemaType(def)))
	}
}
