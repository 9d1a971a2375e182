package repositories

import (
	"errors"

	"github.com/shivharejitendra/visora/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(txn *models.Transaction) error
	FindByID(id string) (*models.Transaction, error)
	AttachOrderID(id, orderID string) error
	MarkPaid(id, paymentID, signature string) error
}

type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

func (r *TransactionRepositoryImpl) FindByID(id string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepositoryImpl) AttachOrderID(id, orderID string) error {
	res := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Update("razorpay_order_id", orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepositoryImpl) MarkPaid(id, paymentID, signature string) error {
	res := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              models.TransactionStatusPaid,
			"payment_verified":    true,
			"razorpay_payment_id": paymentID,
			"razorpay_signature":  signature,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
