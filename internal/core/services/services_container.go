package services

import (
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	portssvc "github.com/azrs7/Login/internal/core/ports/services"
	"github.com/azrs7/Login/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Credential: NewCredentialService(repos.IdentityRepo, WithBcryptCost(cfg.BcryptCost)),
		Ledger:     NewLedgerService(repos.TransactionLogs),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CredentialSvcFacade = (*credentialService)(nil)
	_ portssvc.LedgerSvcFacade     = (*ledgerService)(nil)
)
