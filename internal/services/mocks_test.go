package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shivharejitendra/visora/internal/billing"
	"github.com/shivharejitendra/visora/internal/models"
	"github.com/shivharejitendra/visora/internal/repositories"
)

// In-memory реализации репозиториев для тестов сервисного слоя.
// Семантика ошибок повторяет реальные реализации один в один.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) DebitCredit(userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return 0, repositories.ErrUserNotFound
	}
	if u.Credits <= 0 {
		return 0, repositories.ErrInsufficientCredits
	}
	u.Credits--
	return u.Credits, nil
}

func (r *fakeUserRepo) AddCredits(userID string, amount int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return 0, repositories.ErrUserNotFound
	}
	u.Credits += amount
	return u.Credits, nil
}

type fakeTxnRepo struct {
	mu   sync.Mutex
	txns map[string]*models.Transaction
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{txns: make(map[string]*models.Transaction)}
}

func (r *fakeTxnRepo) Create(txn *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	copied := *txn
	r.txns[txn.ID] = &copied
	return nil
}

func (r *fakeTxnRepo) FindByID(id string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.txns[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTxnRepo) AttachOrderID(id, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.txns[id]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	t.RazorpayOrderID = orderID
	return nil
}

func (r *fakeTxnRepo) MarkPaid(id, paymentID, signature string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.txns[id]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	t.Status = models.TransactionStatusPaid
	t.PaymentVerified = true
	t.RazorpayPaymentID = paymentID
	t.RazorpaySignature = signature
	return nil
}

// fakeGateway подменяет только создание заказа; проверка подписи - настоящая,
// через встроенный RazorpayService.
type fakeGateway struct {
	*billing.RazorpayService

	failCreate  bool
	orderCount  int
	lastAmount  int64
	lastReceipt string
}

const gatewaySecret = "gw_secret"

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		RazorpayService: billing.NewRazorpayService("key_id", gatewaySecret, "http://unused", "INR"),
	}
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, receipt string) (*billing.Order, error) {
	if g.failCreate {
		return nil, errors.New("gateway unavailable")
	}
	g.orderCount++
	g.lastAmount = amountMinor
	g.lastReceipt = receipt
	return &billing.Order{
		ID:       fmt.Sprintf("order_%d", g.orderCount),
		Entity:   "order",
		Amount:   amountMinor,
		Currency: "INR",
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func gatewaySign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(gatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakeGenerator struct {
	result []byte
	err    error
	calls  int
}

func (g *fakeGenerator) GenerateImage(_ context.Context, _ string) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func seedUser(r *fakeUserRepo, email string, credits int) *models.User {
	u := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefak",
		Credits:      credits,
	}
	if err := r.Create(u); err != nil {
		panic(err)
	}
	return u
}
