package billing

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Order - заказ, созданный на стороне Razorpay. Поля сериализуются в тех же
// именах, что отдает шлюз: браузерному checkout-виджету нужен этот объект как есть.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"` // в минорных единицах (пайсы)
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// RazorpayService - клиент платежного шлюза.
type RazorpayService struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Currency  string

	httpClient *http.Client
}

// NewRazorpayService инициализирует клиент шлюза.
func NewRazorpayService(keyID, keySecret, baseURL, currency string) *RazorpayService {
	return &RazorpayService{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   baseURL,
		Currency:  currency,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// CreateOrder создает заказ на amountMinor минорных единиц.
// receipt - наш id транзакции, чтобы заказ был сопоставим при сверке.
func (r *RazorpayService) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*Order, error) {
	payload := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        r.Currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.KeyID, r.KeySecret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("razorpay: order create failed: %s", gatewayErrorMessage(respBody, resp.StatusCode))
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("razorpay: decode order response: %w", err)
	}

	return &order, nil
}

// VerifySignature проверяет подпись callback'а: HMAC-SHA256 от
// "orderID|paymentID" на секрете шлюза должен побайтно совпасть с подписью
// клиента. Сравнение константное по времени.
func (r *RazorpayService) VerifySignature(orderID, paymentID, receivedSig string) bool {
	mac := hmac.New(sha256.New, []byte(r.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(receivedSig))
}

// gatewayErrorMessage достает человекочитаемое описание из ответа шлюза.
func gatewayErrorMessage(body []byte, status int) string {
	var errResp struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Description != "" {
		return errResp.Error.Description
	}
	return fmt.Sprintf("status %d", status)
}
