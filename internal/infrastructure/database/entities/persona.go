package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"synthia-server/internal/domain/persona"
)

type Persona struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	PublicID         string         `gorm:"column:public_id;uniqueIndex;size:64;not null"`
	CompanyPublicID  string         `gorm:"column:company_public_id;index;size:64;not null"`
	Name             string         `gorm:"size:255;not null"`
	AvatarURL        string         `gorm:"column:avatar_url;size:1024"`
	ShortDescription string         `gorm:"type:text"`
	Parameters       datatypes.JSON `gorm:"column:persona_parameters;type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Persona) TableName() string {
	return "persona"
}

func (e *Persona) EtoD() (*persona.Persona, error) {
	var params persona.Parameters
	if len(e.Parameters) > 0 {
		if err := json.Unmarshal(e.Parameters, &params); err != nil {
			return nil, err
		}
	}

	return &persona.Persona{
		ID:               e.ID,
		PublicID:         e.PublicID,
		CompanyPublicID:  e.CompanyPublicID,
		Name:             e.Name,
		AvatarURL:        e.AvatarURL,
		ShortDescription: e.ShortDescription,
		Parameters:       params,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}, nil
}

func NewSchemaPersona(d *persona.Persona) (*Persona, error) {
	params, err := json.Marshal(d.Parameters)
	if err != nil {
		return nil, err
	}

	return &Persona{
		ID:               d.ID,
		PublicID:         d.PublicID,
		CompanyPublicID:  d.CompanyPublicID,
		Name:             d.Name,
		AvatarURL:        d.AvatarURL,
		ShortDescription: d.ShortDescription,
		Parameters:       datatypes.JSON(params),
	}, nil
}
