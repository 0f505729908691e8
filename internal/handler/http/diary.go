package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/work-diary/internal/app"
	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/utils"
	"github.com/MKhiriev/work-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) saveDiary(w http.ResponseWriter, r *http.Request) {
	var req models.SaveDiaryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := utils.UserIDFrom(r.Context())
	diary, err := h.services.DiaryService.SaveToday(r.Context(), userID, req.Content)
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) listDiaries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.DiaryFilter{
		UserID: query.Get("userId"),
		Date:   query.Get("date"),
	}

	var ok bool
	if filter.Page, ok = intParam(w, r, "page"); !ok {
		return
	}
	if filter.Limit, ok = intParam(w, r, "limit"); !ok {
		return
	}

	page, err := h.services.DiaryService.ListDiaries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getDiary(w http.ResponseWriter, r *http.Request) {
	diary, err := h.services.DiaryService.GetDiary(r.Context(), chi.URLParam(r, "id"))
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := utils.UserIDFrom(r.Context())
	diary, err := h.services.DiaryService.AddComment(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) react(w http.ResponseWriter, r *http.Request) {
	var req models.ReactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := utils.UserIDFrom(r.Context())
	diary, err := h.services.DiaryService.React(r.Context(), chi.URLParam(r, "id"), userID, req.Type)
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) addTodo(w http.ResponseWriter, r *http.Request) {
	var req models.TodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	diary, err := h.services.DiaryService.AddTodo(r.Context(), chi.URLParam(r, "id"), req.Content)
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) setTodoCompleted(w http.ResponseWriter, r *http.Request) {
	var req models.TodoUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Completed == nil {
		utils.WriteError(w, "completed is required", http.StatusBadRequest)
		return
	}

	diary, err := h.services.DiaryService.SetTodoCompleted(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "todo"), *req.Completed)
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	diary, err := h.services.DiaryService.DeleteTodo(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "todo"))
	h.writeDiary(w, r, diary, err)
}

func (h *Handler) writeDiary(w http.ResponseWriter, r *http.Request, diary models.Diary, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, diary, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(w, r, dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// intParam reads an optional non-negative integer query parameter.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		utils.WriteError(w, name+" must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
