// Package persona holds the synthetic customer persona aggregate.
package persona

import (
	"context"
	"time"
)

// Parameters are the grounding attributes of a persona. Known fields
// are typed; anything else the caller supplies lands in Extra.
type Parameters struct {
	Age         string            `json:"age,omitempty"`
	Occupation  string            `json:"occupation,omitempty"`
	Location    string            `json:"location,omitempty"`
	Traits      []string          `json:"traits,omitempty"`
	Motivations []string          `json:"motivations,omitempty"`
	PainPoints  []string          `json:"pain_points,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

type Persona struct {
	ID               int64
	PublicID         string
	CompanyPublicID  string
	Name             string
	AvatarURL        string
	ShortDescription string
	Parameters       Parameters
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Repository finders are company scoped so a persona is never visible
// outside the company that owns it.
type Repository interface {
	FindByPublicID(ctx context.Context, companyPublicID, publicID string) (*Persona, error)
	ListByCompany(ctx context.Context, companyPublicID string) ([]*Persona, error)
	Create(ctx context.Context, p *Persona) error
	Update(ctx context.Context, p *Persona) error
	Delete(ctx context.Context, companyPublicID, publicID string) error
}
