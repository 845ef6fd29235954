package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "exactly one",
			sources: []Source{{"file", true}, {"url", false}, {"content", false}},
		},
		{
			name:    "none",
			sources: []Source{{"file", false}, {"url", false}, {"content", false}},
			wantErr: "exactly one of file, url, or content must be provided (got 0)",
		},
		{
			name:    "several",
			sources: []Source{{"file", true}, {"url", true}, {"content", true}},
			wantErr: "exactly one of file, url, or content must be provided (got 3)",
		},
		{
			name:    "two names",
			sources: []Source{{"dir", false}, {"files", false}},
			wantErr: "exactly one of dir or files must be provided (got 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
