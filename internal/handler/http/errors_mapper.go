package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/internal/store"
	"github.com/MKhiriev/work-diary/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsNotValid},
	service.ErrTodoNotFound:            {http.StatusNotFound, app.MsgTodoNotFound},

	store.ErrDiaryNotFound:      {http.StatusNotFound, app.MsgDiaryNotFound},
	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgUserAlreadyExists},
	store.ErrConcurrentUpdate:   {http.StatusConflict, store.ErrConcurrentUpdate.Error()},
}

// responseFromError picks the status and message for err. Validation
// failures carry their details in the message.
func responseFromError(err error) errorResponse {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return errorResponse{http.StatusBadRequest, err.Error()}
	}
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}
