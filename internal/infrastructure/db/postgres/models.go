package postgres

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

type userModel struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	Role            string  `gorm:"type:varchar(16);not null;index"`
	Name            string  `gorm:"not null"`
	Email           string  `gorm:"uniqueIndex;not null"`
	PasswordHash    string  `gorm:"not null"`
	Phone           *string `gorm:"uniqueIndex"`
	City            *string
	District        *string
	Street          *string
	Gender          *string `gorm:"type:varchar(16)"`
	RegionsJSON     *string `gorm:"column:regions_json"`
	ProfileImageURL *string
	BasePrice       *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (userModel) TableName() string {
	return "users"
}

func (m *userModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type offerModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	CustomerID string `gorm:"type:uuid;not null;index"`
	CleanerID  string `gorm:"type:uuid;not null;index"`
	Price      int    `gorm:"not null"`
	Note       *string
	CreatedAt  time.Time
}

func (offerModel) TableName() string {
	return "offers"
}

func (m *offerModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// --- model ↔ entity mapping ---

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:              u.ID,
		Role:            u.Role,
		Name:            u.Name,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Phone:           strPtr(u.Phone),
		City:            strPtr(u.City),
		District:        strPtr(u.District),
		Street:          strPtr(u.Street),
		Gender:          strPtr(u.Gender),
		RegionsJSON:     marshalRegions(u.Regions),
		ProfileImageURL: strPtr(u.ProfileImageURL),
		BasePrice:       u.BasePrice,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toUserEntity(m *userModel) *domain.User {
	return &domain.User{
		ID:              m.ID,
		Role:            m.Role,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Phone:           strVal(m.Phone),
		City:            strVal(m.City),
		District:        strVal(m.District),
		Street:          strVal(m.Street),
		Gender:          strVal(m.Gender),
		Regions:         unmarshalRegions(m.RegionsJSON),
		ProfileImageURL: strVal(m.ProfileImageURL),
		BasePrice:       m.BasePrice,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOfferModel(o *domain.Offer) offerModel {
	return offerModel{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CleanerID:  o.CleanerID,
		Price:      o.Price,
		Note:       strPtr(o.Note),
		CreatedAt:  o.CreatedAt,
	}
}

func toOfferEntity(m *offerModel) *domain.Offer {
	return &domain.Offer{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		CleanerID:  m.CleanerID,
		Price:      m.Price,
		Note:       strVal(m.Note),
		CreatedAt:  m.CreatedAt,
	}
}

// Regions are stored as a JSON-encoded text column.
func marshalRegions(regions []string) *string {
	if len(regions) == 0 {
		return nil
	}
	b, err := json.Marshal(regions)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func unmarshalRegions(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var regions []string
	if err := json.Unmarshal([]byte(*raw), &regions); err != nil {
		return nil
	}
	return regions
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
