package tool

import "strings"

// Name represents tool name in the form service-method, nested services use
// "_" in place of "/".
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical normalises user supplied tool references such as
// "intmap/create" or "intmap.create" into "intmap-create".
func Canonical(name string) string {
	idx := strings.LastIndexAny(name, "/.-")
	if idx == -1 {
		return name
	}
	return NewName(name[:idx], name[idx+1:]).String()
}
