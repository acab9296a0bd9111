package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// rangeFromQuery reads start_date/end_date query parameters
func (h *ReportHandler) rangeFromQuery(w http.ResponseWriter, r *http.Request) (*dto.ReportRangeRequest, bool) {
	req := &dto.ReportRangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return req, true
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	dashboard, err := h.reportUsecase.Dashboard(r.Context(), userID, time.Now())
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *ReportHandler) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.rangeFromQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.reportUsecase.FinancialSummary(r.Context(), userID, req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build financial summary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Financial summary retrieved successfully", summary)
}

func (h *ReportHandler) Demographics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.rangeFromQuery(w, r)
	if !ok {
		return
	}

	demographics, err := h.reportUsecase.Demographics(r.Context(), userID, req, time.Now())
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build demographics report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Demographics retrieved successfully", demographics)
}

func (h *ReportHandler) DoctorReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.rangeFromQuery(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.DoctorReport(r.Context(), userID, req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build doctor report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor report retrieved successfully", report)
}

func (h *ReportHandler) PatientBalances(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	balances, err := h.reportUsecase.PatientBalances(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute patient balances")
		return
	}

	response.Success(w, http.StatusOK, "Patient balances retrieved successfully", balances)
}

// ExportFinancialReport streams the financial summary as an xlsx workbook
func (h *ReportHandler) ExportFinancialReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.rangeFromQuery(w, r)
	if !ok {
		return
	}

	workbook, err := h.reportUsecase.ExportFinancialReport(r.Context(), userID, req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to export financial report")
		}
		return
	}

	filename := fmt.Sprintf("financial-report-%s-%s.xlsx", req.StartDate, req.EndDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := workbook.Write(w); err != nil {
		response.InternalServerError(w, "Failed to write report")
	}
}
