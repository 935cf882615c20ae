// Package entities holds the GORM persistence schema. Each entity maps
// to and from its domain type; numeric primary keys stay inside this
// layer while public IDs travel through the domain.
package entities

import (
	"time"

	"synthia-server/internal/domain/company"
)

type Company struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	PublicID          string    `gorm:"column:public_id;uniqueIndex;size:64;not null"`
	Name              string    `gorm:"size:255;not null"`
	LogoURL           string    `gorm:"column:logo_url;size:1024"`
	PrimaryColor      string    `gorm:"size:32"`
	PublicContextText string    `gorm:"type:text"`
	Industry          string    `gorm:"size:255"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "company"
}

func (e *Company) EtoD() *company.Company {
	return &company.Company{
		ID:                e.ID,
		PublicID:          e.PublicID,
		Name:              e.Name,
		LogoURL:           e.LogoURL,
		PrimaryColor:      e.PrimaryColor,
		PublicContextText: e.PublicContextText,
		Industry:          e.Industry,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func NewSchemaCompany(d *company.Company) *Company {
	return &Company{
		ID:                d.ID,
		PublicID:          d.PublicID,
		Name:              d.Name,
		LogoURL:           d.LogoURL,
		PrimaryColor:      d.PrimaryColor,
		PublicContextText: d.PublicContextText,
		Industry:          d.Industry,
	}
}
