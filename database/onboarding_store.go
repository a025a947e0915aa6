package database

import (
	"errors"

	"github.com/akshat2912/vidyalaya/models"
	"github.com/akshat2912/vidyalaya/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingStore is the GORM-backed services.Store.
type OnboardingStore struct {
	db *gorm.DB
}

func NewOnboardingStore(db *gorm.DB) *OnboardingStore {
	return &OnboardingStore{db: db}
}

func (s *OnboardingStore) RegistrationExists(registrationNumber, email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Institution{}).
		Where("registration_number = ? OR email = ?", registrationNumber, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateRegistration persists the account, institution and payment order as a
// single transaction. The unique indexes on registration number and email are
// the authoritative duplicate guard; the pre-check in the service only gives
// nicer errors for the common case.
func (s *OnboardingStore) CreateRegistration(inst *models.Institution, acct *models.Account, order *models.PaymentOrder) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(acct).Error; err != nil {
			return err
		}
		if err := tx.Create(inst).Error; err != nil {
			return err
		}
		return tx.Create(order).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return services.ErrDuplicateRegistration
	}
	return err
}

func (s *OnboardingStore) InstitutionByID(id uuid.UUID) (*models.Institution, error) {
	var inst models.Institution
	if err := s.db.Where("id = ?", id).First(&inst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &inst, nil
}

func (s *OnboardingStore) PendingInstitutions() ([]models.Institution, error) {
	var pending []models.Institution
	err := s.db.Where("approval_status = ?", models.ApprovalStatusPending).
		Order("created_at asc").
		Find(&pending).Error
	return pending, err
}

func (s *OnboardingStore) OrderByGatewayOrderID(gatewayOrderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := s.db.Where("gateway_order_id = ?", gatewayOrderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OnboardingStore) OrderByInstitutionID(institutionID uuid.UUID) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := s.db.Where("institution_id = ?", institutionID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MarkOrderPaid applies PENDING->PAID with a conditional update so webhook
// retries and concurrent deliveries cannot double-apply.
func (s *OnboardingStore) MarkOrderPaid(gatewayOrderID, gatewayPaymentID string) (bool, error) {
	res := s.db.Model(&models.PaymentOrder{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":             models.PaymentStatusPaid,
			"gateway_payment_id": gatewayPaymentID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	if _, err := s.OrderByGatewayOrderID(gatewayOrderID); err != nil {
		return false, err
	}
	return false, nil
}

// DecideInstitution applies PENDING->status; the loser of two concurrent
// decisions sees false and maps to ALREADY_DECIDED upstream.
func (s *OnboardingStore) DecideInstitution(id uuid.UUID, status string) (bool, error) {
	res := s.db.Model(&models.Institution{}).
		Where("id = ? AND approval_status = ?", id, models.ApprovalStatusPending).
		Update("approval_status", status)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	if _, err := s.InstitutionByID(id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *OnboardingStore) UpdateAccountPassword(accountID uuid.UUID, passwordHash string) error {
	res := s.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}
