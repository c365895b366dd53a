package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/usecase"
	"github.com/techcare/pro360-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAllAuditLogs accepts optional action, adminId, since (RFC3339) and limit query parameters.
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseAuditLogFilter(r)
	if len(fieldErrors) > 0 {
		response.ValidationError(w, fieldErrors)
		return
	}

	logs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Error fetching audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs fetched successfully", logs)
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	log, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Error fetching audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log fetched successfully", log)
}

func parseAuditLogFilter(r *http.Request) (dto.AuditLogFilter, map[string]string) {
	query := r.URL.Query()
	filter := dto.AuditLogFilter{Action: query.Get("action")}
	fieldErrors := make(map[string]string)

	if raw := query.Get("adminId"); raw != "" {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			fieldErrors["adminId"] = "adminId must be a valid id"
		} else {
			filter.AdminID = &adminID
		}
	}
	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fieldErrors["since"] = "since must be an RFC3339 timestamp"
		} else {
			filter.Since = &since
		}
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			fieldErrors["limit"] = "limit must be a positive number"
		} else {
			filter.Limit = limit
		}
	}

	return filter, fieldErrors
}
