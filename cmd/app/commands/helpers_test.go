package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dernekportal/tcguard/internal/requestcontext"
)

func TestWithOperator(t *testing.T) {
	t.Run("Success_SetsIdentity", func(t *testing.T) {
		ctx, err := withOperator(context.Background(), "  admin@example.com ")
		require.NoError(t, err)

		identity, ok := requestcontext.IdentityFrom(ctx)
		require.True(t, ok)
		assert.Equal(t, "admin@example.com", identity.TokenIdentifier)
	})

	t.Run("Error_Blank", func(t *testing.T) {
		_, err := withOperator(context.Background(), "   ")
		assert.ErrorContains(t, err, "operator email is required")
	})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "Success_Text", format: "text"},
		{name: "Success_JSON", format: "json"},
		{name: "Error_Yaml", format: "yaml", wantErr: true},
		{name: "Error_Empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid format")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer

	err := writeJSON(&out, map[string]int{"count": 3})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 3\n}\n", out.String())
}
