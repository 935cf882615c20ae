// Package company holds the company aggregate. A company is the
// authenticated tenant: it owns personas and conversations, and its
// public context text grounds persona prompts.
package company

import (
	"context"
	"time"
)

type Company struct {
	ID                int64
	PublicID          string
	Name              string
	LogoURL           string
	PrimaryColor      string
	PublicContextText string
	Industry          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Repository interface {
	FindByPublicID(ctx context.Context, publicID string) (*Company, error)
	Create(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
}
