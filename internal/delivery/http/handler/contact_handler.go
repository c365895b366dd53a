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

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.contactUsecase.CreateContact(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Error sending message")
		return
	}

	response.Success(w, http.StatusCreated, "Contact message sent successfully", contact)
}

func (h *ContactHandler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactUsecase.GetAllContacts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching contact messages")
		return
	}

	response.Success(w, http.StatusOK, "Contact messages fetched successfully", contacts)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	contactID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contact ID", nil)
		return
	}

	contact, err := h.contactUsecase.MarkRead(r.Context(), contactID)
	if err != nil {
		if errors.Is(err, usecase.ErrContactNotFound) {
			response.NotFound(w, "Contact message not found")
			return
		}
		response.InternalServerError(w, "Error updating contact message")
		return
	}

	response.Success(w, http.StatusOK, "Contact message marked as read", contact)
}
