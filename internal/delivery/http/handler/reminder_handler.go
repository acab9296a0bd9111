package handler

import (
	"net/http"
	"time"

	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

// Alerts returns the combined feed: due appointment reminders, low stock
// items, and lab cases due soon
func (h *ReminderHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	alerts, err := h.reminderUsecase.Alerts(r.Context(), userID, time.Now())
	if err != nil {
		response.InternalServerError(w, "Failed to collect alerts")
		return
	}

	response.Success(w, http.StatusOK, "Alerts retrieved successfully", alerts)
}

// MarkReminderSent acknowledges an appointment reminder exactly once
func (h *ReminderHandler) MarkReminderSent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.reminderUsecase.MarkReminderSent(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrReminderNotDue:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to mark reminder sent")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder marked as sent", nil)
}
