package decl

import "strings"

// Level is the precedence level of a declaring scope.
// Higher levels override lower ones field by field.
type Level int

const (
	// LevelPackage is a package (module) scope; it contributes document-wide values.
	LevelPackage Level = iota
	// LevelType is a type (class) scope; it contributes to every operation of the type.
	LevelType
	// LevelMethod is a method scope; it contributes to exactly one operation.
	LevelMethod
	// LevelArg is a method argument scope. It merges at method precedence.
	LevelArg
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelPackage:
		return "package"
	case LevelType:
		return "type"
	case LevelMethod:
		return "method"
	case LevelArg:
		return "arg"
	default:
		return "unknown"
	}
}

// Scope identifies where a declaration was made. Inner fields are only
// meaningful when every outer field is set.
type Scope struct {
	Package string `yaml:"package,omitempty" json:"package,omitempty"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Method  string `yaml:"method,omitempty" json:"method,omitempty"`
	Arg     string `yaml:"arg,omitempty" json:"arg,omitempty"`
}

// Level returns the precedence level of the scope.
func (s Scope) Level() Level {
	switch {
	case s.Arg != "":
		return LevelArg
	case s.Method != "":
		return LevelMethod
	case s.Type != "":
		return LevelType
	default:
		return LevelPackage
	}
}

// Parent returns the enclosing scope. The parent of a package scope is itself.
func (s Scope) Parent() Scope {
	switch s.Level() {
	case LevelArg:
		s.Arg = ""
	case LevelMethod:
		s.Method = ""
	case LevelType:
		s.Type = ""
	}
	return s
}

// MethodScope returns the method scope enclosing an arg scope, or s itself.
func (s Scope) MethodScope() Scope {
	if s.Level() == LevelArg {
		return s.Parent()
	}
	return s
}

// TypeScope returns the type scope enclosing s.
func (s Scope) TypeScope() Scope {
	return Scope{Package: s.Package, Type: s.Type}
}

// PackageScope returns the package scope enclosing s.
func (s Scope) PackageScope() Scope {
	return Scope{Package: s.Package}
}

// Contains reports whether s is other or encloses it.
func (s Scope) Contains(other Scope) bool {
	if s.Package != other.Package {
		return false
	}
	if s.Type != "" && s.Type != other.Type {
		return false
	}
	if s.Method != "" && s.Method != other.Method {
		return false
	}
	if s.Arg != "" && s.Arg != other.Arg {
		return false
	}
	return true
}

// String renders the scope as "pkg.Type.Method(arg)".
func (s Scope) String() string {
	var sb strings.Builder
	sb.WriteString(s.Package)
	if s.Type != "" {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.Type)
	}
	if s.Method != "" {
		sb.WriteByte('.')
		sb.WriteString(s.Method)
	}
	if s.Arg != "" {
		sb.WriteByte('(')
		sb.WriteString(s.Arg)
		sb.WriteByte(')')
	}
	if sb.Len() == 0 {
		return "<root>"
	}
	return sb.String()
}
