package usecase

import (
	"context"
	"errors"

	"github.com/techcare/pro360-api/internal/converter"
	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/domain/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact not found")
)

type ContactUsecase interface {
	CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	GetAllContacts(ctx context.Context) ([]dto.ContactResponse, error)
	MarkRead(ctx context.Context, contactID uuid.UUID) (*dto.ContactResponse, error)
}

type contactUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	contactRepo  repository.ContactRepository
	auditService service.AuditService
}

func NewContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	contactRepo repository.ContactRepository,
	auditService service.AuditService,
) ContactUsecase {
	return &contactUsecase{
		db:           db,
		log:          log,
		contactRepo:  contactRepo,
		auditService: auditService,
	}
}

func (u *contactUsecase) CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	contact := &entity.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := u.contactRepo.Create(u.db.WithContext(ctx), contact); err != nil {
		u.log.Warnf("Failed to create contact: %+v", err)
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}

func (u *contactUsecase) GetAllContacts(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := u.contactRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all contacts: %+v", err)
		return nil, err
	}

	return converter.ContactsToResponses(contacts), nil
}

func (u *contactUsecase) MarkRead(ctx context.Context, contactID uuid.UUID) (*dto.ContactResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.contactRepo.MarkRead(tx, contactID)
	if err != nil {
		u.log.Warnf("Failed to mark contact read: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrContactNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionContactRead, "contact", contactID.String(),
		nil, map[string]interface{}{"read": true},
	); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return nil, err
	}

	contact, err := u.contactRepo.FindByID(tx, contactID)
	if err != nil {
		u.log.Warnf("Failed to find contact: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}
