package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/usecase"
	"github.com/techcare/pro360-api/pkg/response"
	"github.com/techcare/pro360-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff fetched successfully", staff)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	staff, err := h.staffUsecase.GetStaff(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			response.NotFound(w, "Staff not found")
			return
		}
		response.InternalServerError(w, "Error fetching staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff fetched successfully", staff)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Error creating staff")
		return
	}

	response.Success(w, http.StatusCreated, "Staff created successfully", staff)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			response.NotFound(w, "Staff not found")
			return
		}
		response.InternalServerError(w, "Error updating staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff updated successfully", staff)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	if err := h.staffUsecase.DeleteStaff(r.Context(), staffID); err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			response.NotFound(w, "Staff not found")
			return
		}
		response.InternalServerError(w, "Error deleting staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff deleted successfully", nil)
}
