package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "Success_Disabled", enabled: false, origins: "https://panel.dernek.org.tr", wantNil: true},
		{name: "Success_EnabledWithoutOrigins", enabled: true, origins: "", wantNil: true},
		{name: "Success_OnlySeparators", enabled: true, origins: " , ,", wantNil: true},
		{name: "Success_Origins", enabled: true, origins: "https://panel.dernek.org.tr, https://yonetim.dernek.org.tr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, discardLogger())
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestCreateCORSMiddleware_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(createCORSMiddleware(true, "https://panel.dernek.org.tr", discardLogger()))
	router.PATCH("/v1/beneficiaries/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Success_AllowedOrigin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/beneficiaries/1", nil)
		req.Header.Set("Origin", "https://panel.dernek.org.tr")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://panel.dernek.org.tr", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Error_UnknownOrigin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/beneficiaries/1", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Success_Empty", input: "", expected: nil},
		{name: "Success_Single", input: "https://panel.dernek.org.tr", expected: []string{"https://panel.dernek.org.tr"}},
		{
			name:     "Success_TrimsAndDropsBlanks",
			input:    " https://a.dernek.org.tr ,, https://b.dernek.org.tr ",
			expected: []string{"https://a.dernek.org.tr", "https://b.dernek.org.tr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}
