package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dralafandy/CuraSoft/config"
	"github.com/dralafandy/CuraSoft/internal/converter"
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"
	"github.com/dralafandy/CuraSoft/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("end date must not be before start date")

// dashboardListLimit caps the pending lab case and low stock previews
const dashboardListLimit = 5

type ReportUsecase interface {
	Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.DashboardResponse, error)
	FinancialSummary(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*dto.FinancialSummaryResponse, error)
	Demographics(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest, now time.Time) (*dto.DemographicsResponse, error)
	DoctorReport(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*dto.DoctorReportResponse, error)
	PatientBalances(ctx context.Context, userID uuid.UUID) (*dto.PatientBalanceListResponse, error)
	ExportFinancialReport(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*excelize.File, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.TreatmentRecordRepository
	definitionRepo  repository.TreatmentDefinitionRepository
	paymentRepo     repository.PaymentRepository
	expenseRepo     repository.ExpenseRepository
	labCaseRepo     repository.LabCaseRepository
	inventoryRepo   repository.InventoryItemRepository
	clinicCfg       config.ClinicConfig
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.TreatmentRecordRepository,
	definitionRepo repository.TreatmentDefinitionRepository,
	paymentRepo repository.PaymentRepository,
	expenseRepo repository.ExpenseRepository,
	labCaseRepo repository.LabCaseRepository,
	inventoryRepo repository.InventoryItemRepository,
	clinicCfg config.ClinicConfig,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		definitionRepo:  definitionRepo,
		paymentRepo:     paymentRepo,
		expenseRepo:     expenseRepo,
		labCaseRepo:     labCaseRepo,
		inventoryRepo:   inventoryRepo,
		clinicCfg:       clinicCfg,
	}
}

// parseRange resolves an inclusive calendar-date range to instants
func parseRange(req *dto.ReportRangeRequest) (start, end time.Time, err error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return service.StartOfDay(startDate), service.EndOfDay(endDate), nil
}

func (u *reportUsecase) Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)
	dayStart := service.StartOfDay(now)
	dayEnd := service.EndOfDay(now)

	appointments, err := u.appointmentRepo.FindInRange(db, userID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}

	payments, err := u.paymentRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	revenue := decimal.Zero
	for _, p := range payments {
		if !p.Date.Before(dayStart) && !p.Date.After(dayEnd) {
			revenue = revenue.Add(p.Amount)
		}
	}

	records, err := u.recordRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	dentists, err := u.dentistRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list dentists: %+v", err)
		return nil, err
	}

	labCases, err := u.labCaseRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list lab cases: %+v", err)
		return nil, err
	}
	pending := make([]entity.LabCase, 0)
	for _, lc := range labCases {
		if lc.IsPending() {
			pending = append(pending, lc)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})
	if len(pending) > dashboardListLimit {
		pending = pending[:dashboardListLimit]
	}

	items, err := u.inventoryRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list inventory items: %+v", err)
		return nil, err
	}
	lowStock := service.SelectLowStockItems(items, u.clinicCfg.LowStockDefault)
	if len(lowStock) > dashboardListLimit {
		lowStock = lowStock[:dashboardListLimit]
	}

	return &dto.DashboardResponse{
		TodaysAppointments: len(appointments),
		TodaysRevenue:      revenue,
		DoctorPerformance:  service.ComputeDoctorPerformance(now, records, dentists),
		PendingLabCases:    converter.LabCasesToResponses(pending),
		LowStockItems:      converter.InventoryItemsToResponses(lowStock),
	}, nil
}

func (u *reportUsecase) FinancialSummary(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*dto.FinancialSummaryResponse, error) {
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}
	db := u.db.WithContext(ctx)

	records, err := u.recordRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	expenses, err := u.expenseRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list expenses: %+v", err)
		return nil, err
	}

	definitions, err := u.definitionRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment definitions: %+v", err)
		return nil, err
	}

	return &dto.FinancialSummaryResponse{
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Rollup:             service.ComputePeriodRollup(start, end, records, expenses),
		ExpensesByCategory: service.GroupExpensesByCategory(start, end, expenses),
		IncomeByTreatment:  service.GroupIncomeByTreatment(start, end, records, definitions),
	}, nil
}

func (u *reportUsecase) Demographics(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest, now time.Time) (*dto.DemographicsResponse, error) {
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.DemographicsResponse{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Demographics: service.ComputeDemographics(start, end, now, patients),
	}, nil
}

func (u *reportUsecase) DoctorReport(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*dto.DoctorReportResponse, error) {
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}
	db := u.db.WithContext(ctx)

	records, err := u.recordRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	payments, err := u.paymentRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	dentists, err := u.dentistRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list dentists: %+v", err)
		return nil, err
	}

	return &dto.DoctorReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Doctors:   service.SummarizeDoctors(start, end, records, payments, dentists),
	}, nil
}

func (u *reportUsecase) PatientBalances(ctx context.Context, userID uuid.UUID) (*dto.PatientBalanceListResponse, error) {
	db := u.db.WithContext(ctx)

	patients, err := u.patientRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	records, err := u.recordRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	payments, err := u.paymentRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	balances := make([]dto.PatientBalanceResponse, len(patients))
	for i := range patients {
		balance := service.ComputePatientBalance(patients[i].ID, records, payments)
		balances[i] = converter.PatientBalanceToResponse(&patients[i], balance)
	}

	return &dto.PatientBalanceListResponse{
		Balances: balances,
		Total:    len(balances),
	}, nil
}

func (u *reportUsecase) ExportFinancialReport(ctx context.Context, userID uuid.UUID, req *dto.ReportRangeRequest) (*excelize.File, error) {
	summary, err := u.FinancialSummary(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	return service.BuildFinancialReportWorkbook(start, end, summary.Rollup, summary.ExpensesByCategory, summary.IncomeByTreatment)
}
