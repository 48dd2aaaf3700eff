package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	"github.com/kerjapay/payroll_backend/internal/core/domain"
	portsrepo "github.com/kerjapay/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/kerjapay/payroll_backend/internal/core/ports/services"
	"github.com/kerjapay/payroll_backend/internal/dto"
)

var (
	// ErrEmployeeNotFound is returned when the employee does not exist in the
	// company or has no currently active compensation.
	ErrEmployeeNotFound = fmt.Errorf("%w: employee not found or has no active compensation", apperrors.ErrNotFound)

	// ErrPeriodNotFound is returned when the payroll period does not exist or
	// does not belong to the given company.
	ErrPeriodNotFound = fmt.Errorf("%w: payroll period not found for company", apperrors.ErrNotFound)

	// ErrThrAlreadyExists is returned when a THR addition is already
	// persisted for the (employee, period) pair.
	ErrThrAlreadyExists = fmt.Errorf("%w: THR already exists for this employee in this period", apperrors.ErrDuplicate)

	// ErrNotEligibleForThr is returned by the create use case when the
	// calculation finds the employee not entitled; nothing is persisted.
	ErrNotEligibleForThr = fmt.Errorf("%w: employee is not eligible for THR", apperrors.ErrValidation)
)

// thrService implements the THR application workflow: it resolves employees,
// compensations and periods through repository ports, delegates the
// calculation to the pure domain calculator and owns the idempotent creation
// of THR additions.
type thrService struct {
	portssvc.ThrCalculatorSvc
	employeeRepo portsrepo.EmployeeReader
	periodRepo   portsrepo.PeriodReader
	additionRepo portsrepo.AdditionRepositoryFacade
	now          func() time.Time
}

// NewThrService creates the THR workflow service.
func NewThrService(employeeRepo portsrepo.EmployeeReader, periodRepo portsrepo.PeriodReader, additionRepo portsrepo.AdditionRepositoryFacade) portssvc.ThrSvcFacade {
	return &thrService{
		ThrCalculatorSvc: NewThrCalculator(),
		employeeRepo:     employeeRepo,
		periodRepo:       periodRepo,
		additionRepo:     additionRepo,
		now:              time.Now,
	}
}

var _ portssvc.ThrSvcFacade = (*thrService)(nil)

// resolveAndCalculate performs the lookups and calculation shared by the
// preview and create use cases. The calculation date is the period end.
func (s *thrService) resolveAndCalculate(ctx context.Context, req dto.ThrCalculationRequest) (*domain.ThrCalculationResult, *domain.PayrollPeriod, error) {
	emp, err := s.employeeRepo.FindEmployeeWithActiveCompensation(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, ErrEmployeeNotFound
		}
		return nil, nil, fmt.Errorf("failed to resolve employee %s: %w", req.EmployeeID, err)
	}

	period, err := s.periodRepo.FindPeriodForCompany(ctx, req.PeriodID, req.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, ErrPeriodNotFound
		}
		return nil, nil, fmt.Errorf("failed to resolve period %s: %w", req.PeriodID, err)
	}

	result, err := s.CalculateThr(
		emp.Employee.JoinDate,
		emp.Employee.ResignDate,
		period.PeriodEnd,
		emp.Compensation.BaseSalary,
		domain.EmployeeType(req.EmployeeType),
		req.WorkingDaysInYear,
	)
	if err != nil {
		return nil, nil, err
	}
	return result, period, nil
}

// PreviewThr calculates THR without writing anything and reports any addition
// already persisted for the pair.
func (s *thrService) PreviewThr(ctx context.Context, req dto.ThrCalculationRequest) (*dto.ThrPreviewResponse, error) {
	result, _, err := s.resolveAndCalculate(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &dto.ThrPreviewResponse{Result: dto.ToThrResultResponse(*result)}

	existing, err := s.additionRepo.FindAdditionByCode(ctx, req.EmployeeID, req.PeriodID, domain.AdditionCodeThr)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing THR addition: %w", err)
	}
	if existing != nil {
		additionResp := dto.ToThrAdditionResponse(existing)
		resp.ExistingAddition = &additionResp
	}
	return resp, nil
}

// CalculateAndCreateThr calculates THR and persists it as a payroll addition,
// at most once per (employee, period). The repository runs the existence
// check and insert in one transaction; a lost race surfaces as the same
// conflict error as the up-front check.
func (s *thrService) CalculateAndCreateThr(ctx context.Context, req dto.ThrCalculationRequest, creatorUserID string) (*dto.ThrCreateResponse, error) {
	if _, err := s.additionRepo.FindAdditionByCode(ctx, req.EmployeeID, req.PeriodID, domain.AdditionCodeThr); err == nil {
		return nil, ErrThrAlreadyExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing THR addition: %w", err)
	}

	result, period, err := s.resolveAndCalculate(ctx, req)
	if err != nil {
		return nil, err
	}

	if !result.IsEligible {
		return nil, fmt.Errorf("%w: %s", ErrNotEligibleForThr, result.Notes)
	}

	now := s.now()
	addition := domain.PayrollAddition{
		AdditionID:  uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		PeriodID:    period.PeriodID,
		CompanyID:   req.CompanyID,
		Code:        domain.AdditionCodeThr,
		Amount:      result.ThrAmount,
		Description: result.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.additionRepo.CreateAddition(ctx, addition)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrThrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create THR addition: %w", err)
	}

	return &dto.ThrCreateResponse{
		Addition: dto.ToThrAdditionResponse(created),
		Result:   dto.ToThrResultResponse(*result),
	}, nil
}

// PreviewThrForCompany calculates THR for every employee of a company with an
// active compensation, skipping those that already hold a THR addition for
// the period. Per-employee failures are collected, not fatal.
func (s *thrService) PreviewThrForCompany(ctx context.Context, req dto.BulkThrPreviewRequest) (*dto.BulkThrPreviewResponse, error) {
	if req.DefaultEmployeeType == "" {
		req.DefaultEmployeeType = string(domain.EmployeeTypePermanent)
	}

	period, err := s.periodRepo.FindPeriodForCompany(ctx, req.PeriodID, req.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to resolve period %s: %w", req.PeriodID, err)
	}

	employees, err := s.employeeRepo.ListEmployeesWithActiveCompensation(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for company %s: %w", req.CompanyID, err)
	}

	resp := &dto.BulkThrPreviewResponse{
		Summary: dto.BulkThrSummary{TotalThrAmount: decimal.Zero},
	}
	for _, emp := range employees {
		_, err := s.additionRepo.FindAdditionByCode(ctx, emp.Employee.EmployeeID, req.PeriodID, domain.AdditionCodeThr)
		if err == nil {
			continue // already has a THR addition for this period
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", emp.Employee.Name, err))
			continue
		}

		result, err := s.CalculateThr(
			emp.Employee.JoinDate,
			emp.Employee.ResignDate,
			period.PeriodEnd,
			emp.Compensation.BaseSalary,
			domain.EmployeeType(req.DefaultEmployeeType),
			req.WorkingDaysInYear,
		)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", emp.Employee.Name, err))
			continue
		}

		resp.Employees = append(resp.Employees, dto.BulkThrEmployeeRow{
			EmployeeID:   emp.Employee.EmployeeID,
			EmployeeName: emp.Employee.Name,
			MonthsWorked: result.MonthsWorked,
			ThrAmount:    result.ThrAmount,
			IsEligible:   result.IsEligible,
			Notes:        result.Notes,
		})
		if result.IsEligible {
			resp.Summary.EligibleEmployees++
			resp.Summary.TotalThrAmount = resp.Summary.TotalThrAmount.Add(result.ThrAmount)
		}
	}

	return resp, nil
}
