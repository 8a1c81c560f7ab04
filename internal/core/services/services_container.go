package services

import (
	portsrepo "github.com/mjaros/beertracker/internal/core/ports/repositories"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rates portssvc.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Pricing comes first since the entry service depends on it.
	container.Pricing = NewPricingService(rates)
	container.BeerEntry = NewBeerEntryService(repos.BeerEntryRepo, container.Pricing)

	return container
}
