package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/akshat2912/vidyalaya/models"
	"github.com/akshat2912/vidyalaya/notifications"
	"github.com/akshat2912/vidyalaya/utils"
	"github.com/google/uuid"
)

var (
	ErrDuplicateRegistration = errors.New("an institution with this registration number or email already exists")
	ErrNotFound              = errors.New("record not found")
	ErrInvalidSignature      = errors.New("payment signature verification failed")
	ErrAlreadyDecided        = errors.New("institution has already been approved or rejected")
	ErrGatewayUnavailable    = errors.New("payment gateway unavailable")
)

// Onboarding is the process-wide workflow instance, wired in main.
var Onboarding *OnboardingService

type (
	// Store is the persistence surface the workflow needs. The GORM
	// implementation lives in the database package.
	Store interface {
		RegistrationExists(registrationNumber, email string) (bool, error)
		CreateRegistration(inst *models.Institution, acct *models.Account, order *models.PaymentOrder) error
		InstitutionByID(id uuid.UUID) (*models.Institution, error)
		PendingInstitutions() ([]models.Institution, error)
		OrderByGatewayOrderID(gatewayOrderID string) (*models.PaymentOrder, error)
		OrderByInstitutionID(institutionID uuid.UUID) (*models.PaymentOrder, error)
		// MarkOrderPaid transitions the order PENDING->PAID and records the
		// gateway payment id. Returns false when the order was already PAID.
		MarkOrderPaid(gatewayOrderID, gatewayPaymentID string) (bool, error)
		// DecideInstitution transitions PENDING->status. Returns false when the
		// institution was already decided.
		DecideInstitution(id uuid.UUID, status string) (bool, error)
		UpdateAccountPassword(accountID uuid.UUID, passwordHash string) error
	}

	// Gateway creates payment orders and verifies signed callbacks.
	Gateway interface {
		CreateOrder(amountPaise int64, currency, receipt string) (string, error)
		VerifySignature(orderID, paymentID, signature string) bool
	}

	// Mailer queues a transactional email. Delivery is best-effort and must
	// never block or fail the caller.
	Mailer interface {
		Send(toName, toEmail, subject, htmlContent string)
	}

	OnboardingService struct {
		store       Store
		gateway     Gateway
		mailer      Mailer
		adminEmail  string
		frontendURL string
	}
)

func NewOnboardingService(store Store, gateway Gateway, mailer Mailer, adminEmail, frontendURL string) *OnboardingService {
	return &OnboardingService{
		store:       store,
		gateway:     gateway,
		mailer:      mailer,
		adminEmail:  adminEmail,
		frontendURL: frontendURL,
	}
}

type RegisterInstitutionInput struct {
	RegisteredName     string
	RegistrationNumber string
	InstitutionType    string
	StreetAddress      string
	City               string
	District           string
	State              string
	Pincode            string
	PhoneNumber        string
	Email              string
	PrincipalName      string
	PrincipalPhone     string
	PlanType           string
	PlanDuration       int
}

type RegistrationResult struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

func accountRole(institutionType string) string {
	switch institutionType {
	case models.InstitutionTypeCoaching:
		return "coaching"
	case models.InstitutionTypeCollege:
		return "college"
	default:
		return "school"
	}
}

// Register creates the institution, its login account and a pending payment
// order as one unit. The gateway order is created before anything is persisted
// so a gateway failure leaves no half-registered institution behind.
func (s *OnboardingService) Register(in RegisterInstitutionInput) (*RegistrationResult, error) {
	exists, err := s.store.RegistrationExists(in.RegistrationNumber, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRegistration
	}

	amount, err := PlanAmount(in.PlanType, in.PlanDuration)
	if err != nil {
		return nil, err
	}

	tempPassword, err := utils.GeneratePassword(10)
	if err != nil {
		return nil, err
	}
	passwordHash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("reg_%s", uuid.NewString()[:13])
	gatewayOrderID, err := s.gateway.CreateOrder(amount, "INR", receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	acct := &models.Account{
		ID:       uuid.New(),
		Email:    in.Email,
		Password: passwordHash,
		Role:     accountRole(in.InstitutionType),
	}
	inst := &models.Institution{
		ID:                 uuid.New(),
		RegisteredName:     in.RegisteredName,
		RegistrationNumber: in.RegistrationNumber,
		InstitutionType:    in.InstitutionType,
		StreetAddress:      in.StreetAddress,
		City:               in.City,
		District:           in.District,
		State:              in.State,
		Pincode:            in.Pincode,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		PrincipalName:      in.PrincipalName,
		PrincipalPhone:     in.PrincipalPhone,
		PlanType:           in.PlanType,
		PlanDuration:       in.PlanDuration,
		ApprovalStatus:     models.ApprovalStatusPending,
		AccountID:          acct.ID,
	}
	order := &models.PaymentOrder{
		ID:             uuid.New(),
		InstitutionID:  inst.ID,
		Amount:         amount,
		Currency:       "INR",
		GatewayOrderID: gatewayOrderID,
		Status:         models.PaymentStatusPending,
	}

	if err := s.store.CreateRegistration(inst, acct, order); err != nil {
		return nil, err
	}

	subject, body := notifications.RegistrationEmail(inst.RegisteredName, tempPassword, gatewayOrderID)
	s.mailer.Send(inst.PrincipalName, inst.Email, subject, body)

	if s.adminEmail != "" {
		subject, body = notifications.AdminRegistrationNotice(inst.RegisteredName, inst.RegistrationNumber, inst.PlanType)
		s.mailer.Send("Admin", s.adminEmail, subject, body)
	}

	return &RegistrationResult{OrderID: gatewayOrderID, Amount: amount}, nil
}

// ConfirmPayment verifies a signed gateway callback and marks the order PAID.
// Replays of an already-applied callback succeed without further side effects.
func (s *OnboardingService) ConfirmPayment(orderID, paymentID, signature string) error {
	order, err := s.store.OrderByGatewayOrderID(orderID)
	if err != nil {
		return err
	}

	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		log.Printf("invalid payment signature for order %s, possible tampering", orderID)
		return ErrInvalidSignature
	}

	applied, err := s.store.MarkOrderPaid(orderID, paymentID)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	inst, err := s.store.InstitutionByID(order.InstitutionID)
	if err != nil {
		log.Printf("payment %s confirmed but institution lookup failed: %v", paymentID, err)
		return nil
	}
	subject, body := notifications.PaymentReceiptEmail(inst.RegisteredName, order.Amount, order.Currency, paymentID)
	s.mailer.Send(inst.PrincipalName, inst.Email, subject, body)
	return nil
}

// Approve transitions a pending institution to APPROVED, rotates its account
// password and mails the new credentials.
func (s *OnboardingService) Approve(id uuid.UUID) error {
	inst, err := s.store.InstitutionByID(id)
	if err != nil {
		return err
	}

	applied, err := s.store.DecideInstitution(id, models.ApprovalStatusApproved)
	if err != nil {
		return err
	}
	if !applied {
		return ErrAlreadyDecided
	}

	if order, err := s.store.OrderByInstitutionID(id); err == nil && order.Status != models.PaymentStatusPaid {
		log.Printf("institution %s approved with payment still %s", id, order.Status)
	}

	newPassword, err := utils.GeneratePassword(10)
	if err != nil {
		return err
	}
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdateAccountPassword(inst.AccountID, passwordHash); err != nil {
		log.Printf("CRITICAL: institution %s approved but password rotation failed: %v", id, err)
		return err
	}

	loginURL := fmt.Sprintf("%s/login", s.frontendURL)
	subject, body := notifications.WelcomeEmail(inst.RegisteredName, inst.Email, newPassword, loginURL)
	s.mailer.Send(inst.PrincipalName, inst.Email, subject, body)
	return nil
}

// Reject transitions a pending institution to REJECTED and mails the reason.
func (s *OnboardingService) Reject(id uuid.UUID, reason string) error {
	inst, err := s.store.InstitutionByID(id)
	if err != nil {
		return err
	}

	applied, err := s.store.DecideInstitution(id, models.ApprovalStatusRejected)
	if err != nil {
		return err
	}
	if !applied {
		return ErrAlreadyDecided
	}

	subject, body := notifications.RejectionEmail(inst.RegisteredName, reason)
	s.mailer.Send(inst.PrincipalName, inst.Email, subject, body)
	return nil
}

// Pending lists institutions still awaiting an admin decision.
func (s *OnboardingService) Pending() ([]models.Institution, error) {
	return s.store.PendingInstitutions()
}
