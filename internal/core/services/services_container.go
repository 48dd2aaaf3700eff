package services

import (
	portsrepo "github.com/kerjapay/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/kerjapay/payroll_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Thr: NewThrService(repos.EmployeeRepo, repos.PeriodRepo, repos.AdditionRepo),
	}
}
