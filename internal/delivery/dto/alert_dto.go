package dto

// AlertsResponse is the combined reminder/alert feed. No ordering is imposed
// across categories; each list is sorted by its own nearest-due convention.
type AlertsResponse struct {
	AppointmentReminders []AppointmentResponse   `json:"appointment_reminders"`
	LowStockItems        []InventoryItemResponse `json:"low_stock_items"`
	DueLabCases          []LabCaseResponse       `json:"due_lab_cases"`
}
