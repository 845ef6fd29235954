package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(-1), "unknown"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.severity.String())
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityError.AtLeast(SeverityWarning))
	assert.True(t, SeverityWarning.AtLeast(SeverityWarning))
	assert.False(t, SeverityInfo.AtLeast(SeverityWarning))
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Severity{"info": SeverityInfo, " WARN ": SeverityWarning, "warning": SeverityWarning, "Error": SeverityError} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("critical")
	assert.Error(t, err)
}
