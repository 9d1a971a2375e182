package clipdrop

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestGenerateImage(t *testing.T) {
	t.Parallel()

	imgBytes := testPNG(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/text-to-image/v1", r.URL.Path)
		assert.Equal(t, "api-key-123", r.Header.Get("x-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a cat in space", r.FormValue("prompt"))

		w.Write(imgBytes)
	}))
	defer server.Close()

	client := NewClient("api-key-123", server.URL)

	data, err := client.GenerateImage(context.Background(), "a cat in space")
	require.NoError(t, err)
	assert.Equal(t, imgBytes, data)
}

// Ключ из окружения может прийти с переводами строк - они вычищаются.
func TestNewClient_SanitizesKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api-key-123", r.Header.Get("x-api-key"))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient("  api-key-123\r\n", server.URL)
	_, err := client.GenerateImage(context.Background(), "prompt")
	require.NoError(t, err)
}

func TestGenerateImage_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)

	_, err := client.GenerateImage(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}
