package markup

import "strings"

type declaration struct {
	property string
	value    string
}

// declarations is an ordered inline style.
type declarations []declaration

func parseStyle(raw string) declarations {
	var decls declarations
	for _, part := range strings.Split(raw, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		if property == "" {
			continue
		}
		decls = append(decls, declaration{property: property, value: strings.TrimSpace(value)})
	}
	return decls
}

func (d declarations) get(property string) string {
	property = strings.ToLower(property)
	for _, decl := range d {
		if decl.property == property {
			return decl.value
		}
	}
	return ""
}

func (d declarations) set(property, value string) declarations {
	property = strings.ToLower(property)
	for i := range d {
		if d[i].property == property {
			d[i].value = value
			return d
		}
	}
	return append(d, declaration{property: property, value: value})
}

func (d declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, decl.property+": "+decl.value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
