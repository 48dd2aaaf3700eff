package services

// ServiceContainer holds all the service interfaces the handlers depend on.
type ServiceContainer struct {
	Thr ThrSvcFacade
}
