package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the shell handlers through a Session.
type ServiceContainer struct {
	Credential CredentialSvcFacade
	Ledger     LedgerSvcFacade
}
