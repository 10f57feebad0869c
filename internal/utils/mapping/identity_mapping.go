package mapping

import (
	"github.com/azrs7/Login/internal/core/domain"
	"github.com/azrs7/Login/internal/models"
)

// ToModelIdentity converts a domain Identity to a model Identity
func ToModelIdentity(d domain.Identity) models.Identity {
	return models.Identity{
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainIdentity converts a model Identity to a domain Identity
func ToDomainIdentity(m models.Identity) domain.Identity {
	return domain.Identity{
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
