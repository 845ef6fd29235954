package oaserrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateDefinitionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &DuplicateDefinitionError{
			Kind:    "tags",
			Name:    "user",
			Sources: []string{"a.go:1", "b.go:2"},
		}
		assert.Equal(t, `duplicate definition of tags "user" in a.go:1, b.go:2`, err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "duplicate definition", (&DuplicateDefinitionError{}).Error())
	})

	t.Run("Is matches only its sentinel", func(t *testing.T) {
		err := &DuplicateDefinitionError{Kind: "schemas", Name: "User"}
		assert.ErrorIs(t, err, ErrDuplicateDefinition)
		assert.NotErrorIs(t, err, ErrConflictingField)
		assert.True(t, IsGlobal(err))
		assert.False(t, IsInformational(err))
	})
}

func TestUnresolvedReferenceError(t *testing.T) {
	t.Run("local ref", func(t *testing.T) {
		err := &UnresolvedReferenceError{Kind: "tags", Ref: "#/components/tags/missing", Source: "x.go:3"}
		assert.Equal(t, "unresolved reference: #/components/tags/missing (from x.go:3)", err.Error())
		assert.ErrorIs(t, err, ErrUnresolvedReference)
		assert.True(t, IsInformational(err))
		assert.False(t, IsGlobal(err))
	})

	t.Run("external ref", func(t *testing.T) {
		err := &UnresolvedReferenceError{Ref: "other.yaml#/Pet", External: true}
		assert.Equal(t, "external reference: other.yaml#/Pet", err.Error())
	})
}

func TestConflictingFieldError(t *testing.T) {
	err := &ConflictingFieldError{
		Element: "parameter",
		Name:    "id",
		In:      "query",
		Path:    "GET /users",
		Fields:  []string{"schema", "content"},
		Source:  "users.go:12",
	}
	assert.Equal(t,
		`conflicting field in parameter "id" (in: query) at GET /users: schema and content are mutually exclusive [users.go:12]`,
		err.Error())
	assert.ErrorIs(t, err, ErrConflictingField)
	assert.NotErrorIs(t, err, ErrDuplicateDefinition)
}

func TestDuplicateExtensionKeyError(t *testing.T) {
	err := &DuplicateExtensionKeyError{Path: "link userName", Key: "x-link", Sources: []string{"a:1", "a:2"}}
	assert.Equal(t, "duplicate extension key x-link at link userName in a:1, a:2", err.Error())
	assert.ErrorIs(t, err, ErrDuplicateExtensionKey)
}

func TestInvalidExtensionKeyError(t *testing.T) {
	err := &InvalidExtensionKeyError{Path: "tag user", Key: "name", Reason: `must start with "x-"`}
	assert.Equal(t, `invalid extension key "name" at tag user: must start with "x-"`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidExtensionKey)
}

func TestDuplicateOperationIDError(t *testing.T) {
	err := &DuplicateOperationIDError{OperationID: "getUser", Method: "GET", Path: "/b", First: "GET /a"}
	assert.Equal(t, `duplicate operationId "getUser" at GET /b (first defined at GET /a)`, err.Error())
	assert.ErrorIs(t, err, ErrDuplicateOperationID)
}

func TestInvalidDeclarationError(t *testing.T) {
	err := &InvalidDeclarationError{Kind: "parameter", Field: "in", Value: "body", Message: "unknown location"}
	assert.Equal(t, "invalid declaration parameter.in (value: body): unknown location", err.Error())
	assert.ErrorIs(t, err, ErrInvalidDeclaration)
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{Path: "decl.yaml", Line: 42, Column: 10, Message: "invalid syntax", Cause: cause}
		assert.Equal(t, "parse error in decl.yaml at line 42, column 10: invalid syntax: underlying error", err.Error())
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		assert.ErrorIs(t, &ParseError{}, ErrParse)
		assert.NotErrorIs(t, &ParseError{}, ErrConfig)
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "DefaultServerURL", Value: "", Message: "must not be empty"}
	assert.Equal(t, "configuration error for DefaultServerURL (value: ): must not be empty", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
}

func TestErrors(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		var errs Errors
		assert.Equal(t, "", errs.Error())
		assert.NoError(t, errs.ErrOrNil())
		assert.NoError(t, Errors{nil, nil}.ErrOrNil())
	})

	t.Run("single error is not decorated", func(t *testing.T) {
		errs := Errors{&ConfigError{Option: "x"}}
		assert.Equal(t, "configuration error for x", errs.Error())
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := Errors{
			&DuplicateDefinitionError{Kind: "tags", Name: "a"},
			nil,
			&DuplicateDefinitionError{Kind: "tags", Name: "b"},
		}
		assert.Equal(t, "2 error(s):\n  - duplicate definition of tags \"a\"\n  - duplicate definition of tags \"b\"", errs.Error())
		require.Error(t, errs.ErrOrNil())
		assert.Len(t, errs.Unwrap(), 2)
	})

	t.Run("errors.As sees through the batch", func(t *testing.T) {
		var err error = Errors{&ConflictingFieldError{Name: "id"}}
		var cf *ConflictingFieldError
		require.ErrorAs(t, err, &cf)
		assert.Equal(t, "id", cf.Name)
		assert.ErrorIs(t, err, ErrConflictingField)
	})
}
