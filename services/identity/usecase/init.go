package usecase

import (
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity"
)

// IdentityUC implements the identity usecase
type IdentityUC struct {
	repo identity.IdentityRepo
	gw   identity.IdentityGW
	cfg  *models.Config
}

// NewIdentityUC creates a new identity usecase
func NewIdentityUC(repo identity.IdentityRepo, gw identity.IdentityGW, cfg *models.Config) *IdentityUC {
	return &IdentityUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
