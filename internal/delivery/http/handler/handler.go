package handler

import (
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/http/middleware"
	"github.com/dralafandy/CuraSoft/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requireUser pulls the authenticated account ID from the request context.
// The second return is false when the response has already been written.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID path variable. The second return is false when the
// response has already been written.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
