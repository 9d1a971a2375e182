package clipdrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"time"
)

const textToImagePath = "/text-to-image/v1"

// ключи из окружения иногда приходят со скрытыми переводами строк
var keyJunk = regexp.MustCompile(`\s`)

// Client - клиент ClipDrop text-to-image API.
type Client struct {
	apiKey  string
	baseURL string

	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  keyJunk.ReplaceAllString(apiKey, ""),
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateImage отправляет prompt и возвращает сырые байты PNG.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	if err := writer.WriteField("prompt", prompt); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+textToImagePath, &form)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clipdrop: generation failed: %s", upstreamErrorMessage(body, resp.StatusCode))
	}

	return body, nil
}

func upstreamErrorMessage(body []byte, status int) string {
	// ClipDrop отдает {"error": "..."} на ошибках
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return fmt.Sprintf("status %d", status)
}
