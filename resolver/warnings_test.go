package resolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/oaserrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want severity.Severity
	}{
		{"nil", nil, severity.SeverityInfo},
		{"duplicate definition", &oaserrors.DuplicateDefinitionError{Kind: "tags", Name: "user"}, severity.SeverityError},
		{"wrapped duplicate", fmt.Errorf("build: %w", &oaserrors.DuplicateDefinitionError{Kind: "tags", Name: "user"}), severity.SeverityError},
		{"unresolved", &oaserrors.UnresolvedReferenceError{Kind: "schemas", Ref: "#/components/schemas/X"}, severity.SeverityInfo},
		{"conflict", &oaserrors.ConflictingFieldError{Element: "parameter", Name: "q"}, severity.SeverityWarning},
		{"duplicate extension", &oaserrors.DuplicateExtensionKeyError{Key: "x-link"}, severity.SeverityWarning},
		{"invalid extension", &oaserrors.InvalidExtensionKeyError{Key: "link"}, severity.SeverityWarning},
		{"duplicate operationId", &oaserrors.DuplicateOperationIDError{OperationID: "get"}, severity.SeverityWarning},
		{"parse", &oaserrors.ParseError{Path: "decls.yaml", Message: "bad"}, severity.SeverityError},
		{"config", &oaserrors.ConfigError{Option: "DefaultMediaType"}, severity.SeverityError},
		{"other", errors.New("boom"), severity.SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWarningString(t *testing.T) {
	w := newIgnoredWarning("schema", "airlines.UserResource.get", "user.go:12", "schemas belong on types or arguments")
	assert.Equal(t, "user.go:12: schema declaration ignored: schemas belong on types or arguments", w.String())
	assert.Equal(t, severity.SeverityWarning, w.Severity)

	d := newDefaultWarning("servers", "/")
	assert.Equal(t, `servers: no servers declared, using "/"`, d.String())
	assert.Equal(t, severity.SeverityInfo, d.Severity)

	assert.Equal(t, "hidden", (&Warning{Message: "hidden"}).String())
}

func TestResultWarningsForAirlineFixture(t *testing.T) {
	res := mustResolve(t, airlineSet())
	for _, w := range res.Warnings {
		assert.NotEqual(t, WarnIgnoredDeclaration, w.Category, w.String())
		assert.NotEqual(t, WarnMissingEndpoint, w.Category, w.String())
	}
}
