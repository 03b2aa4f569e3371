package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ActionCmd shows detailed information about one action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ActionCmd) Execute(_ []string) error {
	idx := strings.LastIndex(c.Name, "/")
	if idx == -1 {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := c.Name[:idx], c.Name[idx+1:]

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, s := range svc.Services() {
		if s.Name() != svcName {
			continue
		}
		sig := s.Methods().Lookup(method)
		if sig == nil {
			return fmt.Errorf("method %q not found in service %q", method, svcName)
		}
		info := struct {
			Service     string `json:"service"`
			Method      string `json:"method"`
			Description string `json:"description"`
			InputType   string `json:"inputType"`
			OutputType  string `json:"outputType"`
			InputDef    string `json:"inputDefinition,omitempty"`
			OutputDef   string `json:"outputDefinition,omitempty"`
		}{
			Service:     svcName,
			Method:      method,
			Description: sig.Description,
			InputType:   typeString(sig.Input),
			OutputType:  typeString(sig.Output),
			InputDef:    typeDefinition(sig.Input),
			OutputDef:   typeDefinition(sig.Output),
		}

		if c.JSON {
			data, _ := json.MarshalIndent(info, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Service : %s\n", info.Service)
		fmt.Printf("Method  : %s\n", info.Method)
		fmt.Printf("Desc    : %s\n", info.Description)
		fmt.Printf("Input   : %s\n", info.InputType)
		fmt.Printf("Output  : %s\n", info.OutputType)
		if info.InputDef != "" {
			fmt.Printf("\nInput Definition:\n%s\n", info.InputDef)
		}
		if info.OutputDef != "" {
			fmt.Printf("\nOutput Definition:\n%s\n", info.OutputDef)
		}
		return nil
	}
	return fmt.Errorf("service %q not found", svcName)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + typeString(t.Elem())
	}
	if t.Name() == "" && t.Kind() == reflect.Struct {
		return "struct{…}"
	}
	return t.String()
}

// typeDefinition renders the fields of a struct type, one per line.
func typeDefinition(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("struct {\n")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		b.WriteString("    ")
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(typeString(f.Type))
		if tag := strings.TrimSpace(string(f.Tag)); tag != "" {
			b.WriteString(" `")
			b.WriteString(tag)
			b.WriteString("`")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
