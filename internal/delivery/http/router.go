package http

import (
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/http/handler"
	"github.com/dralafandy/CuraSoft/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	dentistHandler   *handler.DentistHandler
	apptHandler      *handler.AppointmentHandler
	treatmentHandler *handler.TreatmentHandler
	paymentHandler   *handler.PaymentHandler
	expenseHandler   *handler.ExpenseHandler
	supplierHandler  *handler.SupplierHandler
	inventoryHandler *handler.InventoryHandler
	labCaseHandler   *handler.LabCaseHandler
	reportHandler    *handler.ReportHandler
	reminderHandler  *handler.ReminderHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	dentistHandler *handler.DentistHandler,
	apptHandler *handler.AppointmentHandler,
	treatmentHandler *handler.TreatmentHandler,
	paymentHandler *handler.PaymentHandler,
	expenseHandler *handler.ExpenseHandler,
	supplierHandler *handler.SupplierHandler,
	inventoryHandler *handler.InventoryHandler,
	labCaseHandler *handler.LabCaseHandler,
	reportHandler *handler.ReportHandler,
	reminderHandler *handler.ReminderHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		dentistHandler:   dentistHandler,
		apptHandler:      apptHandler,
		treatmentHandler: treatmentHandler,
		paymentHandler:   paymentHandler,
		expenseHandler:   expenseHandler,
		supplierHandler:  supplierHandler,
		inventoryHandler: inventoryHandler,
		labCaseHandler:   labCaseHandler,
		reportHandler:    reportHandler,
		reminderHandler:  reminderHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires an authenticated session
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patients and dental charts
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id}/chart/{toothId}", r.patientHandler.UpdateTooth).Methods(http.MethodPatch)
	protected.HandleFunc("/patients/{id}/balance", r.paymentHandler.GetPatientBalance).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/payments", r.paymentHandler.ListByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/treatment-records", r.treatmentHandler.ListRecordsByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/lab-cases", r.labCaseHandler.ListByPatient).Methods(http.MethodGet)

	// Dentists
	protected.HandleFunc("/dentists", r.dentistHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/dentists", r.dentistHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/dentists/{id}", r.dentistHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.apptHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.apptHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.apptHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.apptHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}/status", r.apptHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/reminder-sent", r.reminderHandler.MarkReminderSent).Methods(http.MethodPost)

	// Treatment catalog and records
	protected.HandleFunc("/treatments", r.treatmentHandler.CreateDefinition).Methods(http.MethodPost)
	protected.HandleFunc("/treatments", r.treatmentHandler.ListDefinitions).Methods(http.MethodGet)
	protected.HandleFunc("/treatments/{id}", r.treatmentHandler.GetDefinition).Methods(http.MethodGet)
	protected.HandleFunc("/treatments/{id}", r.treatmentHandler.UpdateDefinition).Methods(http.MethodPut)
	protected.HandleFunc("/treatments/{id}", r.treatmentHandler.DeleteDefinition).Methods(http.MethodDelete)
	protected.HandleFunc("/treatment-records", r.treatmentHandler.AddRecord).Methods(http.MethodPost)
	protected.HandleFunc("/treatment-records", r.treatmentHandler.ListRecords).Methods(http.MethodGet)
	protected.HandleFunc("/treatment-records/{id}", r.treatmentHandler.GetRecord).Methods(http.MethodGet)
	protected.HandleFunc("/treatment-records/{id}", r.treatmentHandler.UpdateRecord).Methods(http.MethodPut)

	// Payments
	protected.HandleFunc("/payments", r.paymentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/payments", r.paymentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id}", r.paymentHandler.GetByID).Methods(http.MethodGet)

	// Expenses
	protected.HandleFunc("/expenses", r.expenseHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/expenses", r.expenseHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/expenses/{id}", r.expenseHandler.GetByID).Methods(http.MethodGet)

	// Suppliers and supplier invoices
	protected.HandleFunc("/suppliers", r.supplierHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/suppliers", r.supplierHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/suppliers/{id}", r.supplierHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/suppliers/{id}", r.supplierHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/suppliers/{id}", r.supplierHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/suppliers/{id}/invoices", r.supplierHandler.ListInvoicesBySupplier).Methods(http.MethodGet)
	protected.HandleFunc("/supplier-invoices", r.supplierHandler.CreateInvoice).Methods(http.MethodPost)
	protected.HandleFunc("/supplier-invoices", r.supplierHandler.ListInvoices).Methods(http.MethodGet)
	protected.HandleFunc("/supplier-invoices/{id}", r.supplierHandler.GetInvoice).Methods(http.MethodGet)
	protected.HandleFunc("/supplier-invoices/{id}/pay-remaining", r.supplierHandler.PayInvoiceRemaining).Methods(http.MethodPost)

	// Inventory
	protected.HandleFunc("/inventory", r.inventoryHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/inventory", r.inventoryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/low-stock", r.inventoryHandler.ListLowStock).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/{id}", r.inventoryHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/{id}", r.inventoryHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/inventory/{id}/adjust-stock", r.inventoryHandler.AdjustStock).Methods(http.MethodPost)

	// Lab cases
	protected.HandleFunc("/lab-cases", r.labCaseHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/lab-cases", r.labCaseHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/lab-cases/{id}", r.labCaseHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/lab-cases/{id}/status", r.labCaseHandler.UpdateStatus).Methods(http.MethodPatch)

	// Reports
	protected.HandleFunc("/reports/dashboard", r.reportHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/reports/financial", r.reportHandler.FinancialSummary).Methods(http.MethodGet)
	protected.HandleFunc("/reports/financial/export", r.reportHandler.ExportFinancialReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/demographics", r.reportHandler.Demographics).Methods(http.MethodGet)
	protected.HandleFunc("/reports/doctors", r.reportHandler.DoctorReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/patient-balances", r.reportHandler.PatientBalances).Methods(http.MethodGet)

	// Alerts and audit trail
	protected.HandleFunc("/alerts", r.reminderHandler.Alerts).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
