package services

import (
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
)

// ServicesContainer bundles the constructed services for consumers.
type ServicesContainer struct {
	Guard     portssvc.EntityGuardSvcFacade
	Resolver  portssvc.AccountResolverSvcFacade
	Setup     portssvc.EntitySetupSvcFacade
	Posting   portssvc.PostingSvcFacade
	Reporting portssvc.ReportingSvcFacade
}

// NewServicesContainer wires the service graph from repositories and flags.
func NewServicesContainer(repos portsrepo.RepositoryProvider, flags portssvc.FeatureFlags) *ServicesContainer {
	guard := NewEntityGuard(repos.EntityRepo)
	resolver := NewAccountResolver(repos.AccountRepo)

	return &ServicesContainer{
		Guard:     guard,
		Resolver:  resolver,
		Setup:     NewEntitySetupService(repos.EntityRepo),
		Posting:   NewPostingService(flags, guard, resolver, repos.LedgerRepo),
		Reporting: NewReportingService(flags, guard, repos.ReportingRepo),
	}
}
