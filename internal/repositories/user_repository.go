package repositories

import (
	"errors"

	"github.com/shivharejitendra/visora/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)

	// Ledger operations. Обе мутации - одиночные атомарные UPDATE по id,
	// иначе конкурентные запросы одного пользователя теряют обновления.
	DebitCredit(userID string) (int, error)
	AddCredits(userID string, amount int) (int, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		// Уникальный индекс по email ловит гонку между проверкой и вставкой
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DebitCredit списывает один кредит. Условие credits > 0 входит в сам UPDATE,
// поэтому баланс не может уйти в минус даже при конкурентных генерациях.
func (r *UserRepositoryImpl) DebitCredit(userID string) (int, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND credits > 0", userID).
		UpdateColumn("credits", gorm.Expr("credits - 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		// Либо пользователя нет, либо баланс исчерпан
		if _, err := r.FindByID(userID); err != nil {
			return 0, err
		}
		return 0, ErrInsufficientCredits
	}

	user, err := r.FindByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// AddCredits начисляет amount кредитов атомарным инкрементом.
func (r *UserRepositoryImpl) AddCredits(userID string, amount int) (int, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}

	user, err := r.FindByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}
