package naming

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy selects how a schema name is built from a package and type name.
type Strategy int

const (
	// TypeOnly uses just "TypeName". This is the default.
	TypeOnly Strategy = iota
	// Qualified uses "package.TypeName".
	Qualified
	// PascalCase uses "PackageTypeName".
	PascalCase
	// CamelCase uses "packageTypeName".
	CamelCase
	// SnakeCase uses "package_type_name".
	SnakeCase
	// KebabCase uses "package-type-name".
	KebabCase
)

var strategyNames = map[string]Strategy{
	"type":      TypeOnly,
	"qualified": Qualified,
	"pascal":    PascalCase,
	"camel":     CamelCase,
	"snake":     SnakeCase,
	"kebab":     KebabCase,
}

// ParseStrategy maps a strategy name ("type", "qualified", "pascal",
// "camel", "snake", "kebab") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return TypeOnly, fmt.Errorf("unknown naming strategy %q", name)
	}
	return s, nil
}

// Context is the data available to a naming template.
type Context struct {
	// Package is the package name (may be empty)
	Package string
	// Type is the type name without package
	Type string
}

// SplitQualified splits "pkg.Type" into package and type. A name with no
// dot has an empty package.
func SplitQualified(name string) Context {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return Context{Package: name[:i], Type: name[i+1:]}
	}
	return Context{Type: name}
}

// Namer builds schema names.
type Namer struct {
	strategy Strategy
	tmpl     *template.Template
}

// NewNamer returns a namer using the given strategy.
func NewNamer(strategy Strategy) *Namer {
	return &Namer{strategy: strategy}
}

// WithTemplate returns a namer that renders names with a text/template.
// The template sees a Context and the functions of TemplateFuncs.
// The template is validated by executing it with a sample context.
func (n *Namer) WithTemplate(tmpl string) (*Namer, error) {
	t, err := template.New("schemaName").Funcs(TemplateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("invalid schema name template: %w", err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, Context{Package: "models", Type: "User"}); err != nil {
		return nil, fmt.Errorf("schema name template execution failed: %w", err)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return nil, errors.New("schema name template produced an empty name")
	}
	return &Namer{strategy: n.strategy, tmpl: t}, nil
}

// Name returns the schema name for ctx.
func (n *Namer) Name(ctx Context) string {
	if n.tmpl != nil {
		var sb strings.Builder
		if err := n.tmpl.Execute(&sb, ctx); err == nil {
			if name := Sanitize(sb.String()); name != "" {
				return name
			}
		}
	}
	switch n.strategy {
	case Qualified:
		if ctx.Package == "" {
			return ctx.Type
		}
		return ctx.Package + "." + ctx.Type
	case PascalCase:
		return ToPascalCase(ctx.Package) + ToPascalCase(ctx.Type)
	case CamelCase:
		if ctx.Package == "" {
			return ToCamelCase(ctx.Type)
		}
		return ToCamelCase(ctx.Package) + ToPascalCase(ctx.Type)
	case SnakeCase:
		return joinNonEmpty("_", ToSnakeCase(ctx.Package), ToSnakeCase(ctx.Type))
	case KebabCase:
		return joinNonEmpty("-", ToKebabCase(ctx.Package), ToKebabCase(ctx.Type))
	default:
		return ctx.Type
	}
}

func joinNonEmpty(sep, a, b string) string {
	if a == "" {
		return b
	}
	return a + sep + b
}

// TemplateFuncs returns the functions available to naming templates.
func TemplateFuncs() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		"pascal":     ToPascalCase,
		"camel":      ToCamelCase,
		"snake":      ToSnakeCase,
		"kebab":      ToKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   Sanitize,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
	}
}

// Sanitize makes a name safe for use in a JSON pointer segment.
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	r := strings.NewReplacer("[", "_", "]", "_", ",", "_", " ", "_", "/", "_", "#", "_")
	name = r.Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) capitalize the next letter.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a string to snake_case. Runs of capitals are kept
// together, so "APIClient" becomes "api_client".
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ToTitleCase upper-cases the first letter only.
// Example: "hello_world" -> "Hello_world"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToKebabCase converts a string to kebab-case.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}
