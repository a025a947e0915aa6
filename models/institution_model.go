package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InstitutionTypeSchool   = "SCHOOL"
	InstitutionTypeCoaching = "COACHING"
	InstitutionTypeCollege  = "COLLEGE"

	PlanTypeBasic = "BASIC"
	PlanTypePro   = "PRO"

	ApprovalStatusPending  = "PENDING"
	ApprovalStatusApproved = "APPROVED"
	ApprovalStatusRejected = "REJECTED"
)

type Institution struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RegisteredName     string    `gorm:"size:255;not null" json:"registered_name"`
	RegistrationNumber string    `gorm:"size:100;not null;uniqueIndex" json:"registration_number"`
	InstitutionType    string    `gorm:"size:20;not null" json:"institution_type"`

	StreetAddress string `gorm:"size:255;not null" json:"street_address"`
	City          string `gorm:"size:100;not null" json:"city"`
	District      string `gorm:"size:100;not null" json:"district"`
	State         string `gorm:"size:100;not null" json:"state"`
	Pincode       string `gorm:"size:6;not null" json:"pincode"`

	PhoneNumber    string `gorm:"size:15;not null" json:"phone_number"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PrincipalName  string `gorm:"size:255;not null" json:"principal_name"`
	PrincipalPhone string `gorm:"size:15;not null" json:"principal_phone"`

	PlanType     string `gorm:"size:10;not null" json:"plan_type"`
	PlanDuration int    `gorm:"not null" json:"plan_duration"`

	ApprovalStatus string `gorm:"size:20;not null;default:'PENDING'" json:"approval_status"`

	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"`
	Account   Account   `gorm:"foreignkey:AccountID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
