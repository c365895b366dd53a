package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/techcare/pro360-api/internal/delivery/dto"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingUsecase(t *testing.T) (BookingUsecase, *gorm.DB, *recordingEvents) {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()
	events := &recordingEvents{}
	uc := NewBookingUsecase(db, log, repository.NewBookingRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()), events)
	return uc, db, events
}

func TestCreateBooking(t *testing.T) {
	uc, _, events := newBookingUsecase(t)

	booking, err := uc.CreateBooking(context.Background(), &dto.CreateBookingRequest{
		Name:        "Asha",
		Phone:       "9999999999",
		Address:     "12 MG Road",
		ServiceType: "PC Repair",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, "pending", booking.Status)
	assert.Nil(t, booking.AssignedStaff)
	assert.Nil(t, booking.AssignedStaffID)
	assert.Equal(t, []string{service.EventBookingCreated}, events.keys)
}

func TestGetAllBookings_NewestFirst(t *testing.T) {
	uc, db, _ := newBookingUsecase(t)

	now := time.Now().UTC()
	older := &entity.Booking{Name: "Old", Phone: "1", Address: "a", ServiceType: "x", CreatedAt: now.Add(-time.Hour)}
	newer := &entity.Booking{Name: "New", Phone: "2", Address: "b", ServiceType: "y", CreatedAt: now}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	bookings, err := uc.GetAllBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "New", bookings[0].Name)
	assert.Equal(t, "Old", bookings[1].Name)
}

func TestAssignStaff(t *testing.T) {
	uc, db, events := newBookingUsecase(t)
	adminID := uuid.New()

	staff := &entity.Staff{Name: "Ravi", Phone: "888", Location: "Pune", Active: true}
	require.NoError(t, db.Create(staff).Error)

	booking := &entity.Booking{Name: "Asha", Phone: "1", Address: "a", ServiceType: "x", Status: entity.BookingStatusCompleted}
	require.NoError(t, db.Create(booking).Error)

	resp, err := uc.AssignStaff(adminContext(adminID), booking.ID, &dto.AssignStaffRequest{StaffID: staff.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "assigned", resp.Status)
	require.NotNil(t, resp.AssignedStaff)
	assert.Equal(t, staff.ID, resp.AssignedStaff.ID)
	assert.Equal(t, "Pune", resp.AssignedStaff.Location)
	assert.Equal(t, []string{service.EventBookingAssigned}, events.keys)

	var log entity.AuditLog
	require.NoError(t, db.Where("action = ?", entity.AuditActionBookingAssign).First(&log).Error)
	require.NotNil(t, log.AdminID)
	assert.Equal(t, adminID, *log.AdminID)
	assert.Equal(t, booking.ID.String(), log.Metadata["entityId"])
}

func TestAssignStaff_UnknownStaffIsStored(t *testing.T) {
	uc, db, _ := newBookingUsecase(t)

	booking := &entity.Booking{Name: "Asha", Phone: "1", Address: "a", ServiceType: "x"}
	require.NoError(t, db.Create(booking).Error)

	staffID := uuid.New()
	resp, err := uc.AssignStaff(context.Background(), booking.ID, &dto.AssignStaffRequest{StaffID: staffID.String()})
	require.NoError(t, err)

	assert.Equal(t, "assigned", resp.Status)
	require.NotNil(t, resp.AssignedStaffID)
	assert.Equal(t, staffID, *resp.AssignedStaffID)
	assert.Nil(t, resp.AssignedStaff)
}

func TestAssignStaff_Errors(t *testing.T) {
	uc, db, events := newBookingUsecase(t)

	booking := &entity.Booking{Name: "Asha", Phone: "1", Address: "a", ServiceType: "x"}
	require.NoError(t, db.Create(booking).Error)

	_, err := uc.AssignStaff(context.Background(), booking.ID, &dto.AssignStaffRequest{StaffID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrInvalidStaffID)

	_, err = uc.AssignStaff(context.Background(), uuid.New(), &dto.AssignStaffRequest{StaffID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.Empty(t, events.keys)
	assert.Zero(t, countAuditLogs(t, db, entity.AuditActionBookingAssign))
}

func TestUpdateBookingStatus(t *testing.T) {
	uc, db, _ := newBookingUsecase(t)

	booking := &entity.Booking{Name: "Asha", Phone: "1", Address: "a", ServiceType: "x"}
	require.NoError(t, db.Create(booking).Error)

	t.Run("rejects unknown status and leaves booking unchanged", func(t *testing.T) {
		_, err := uc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateBookingStatusRequest{Status: "bogus"})
		assert.ErrorIs(t, err, ErrInvalidBookingStatus)

		var stored entity.Booking
		require.NoError(t, db.First(&stored, "id = ?", booking.ID).Error)
		assert.Equal(t, entity.BookingStatusPending, stored.Status)
	})

	t.Run("applies any valid status", func(t *testing.T) {
		resp, err := uc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateBookingStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)

		resp, err = uc.UpdateStatus(context.Background(), booking.ID, &dto.UpdateBookingStatusRequest{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, int64(2), countAuditLogs(t, db, entity.AuditActionBookingStatus))
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := uc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateBookingStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
