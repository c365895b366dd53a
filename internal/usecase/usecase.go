package usecase

import (
	"context"

	"github.com/techcare/pro360-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext returns the authenticated admin for audit entries, or nil.
func actorFromContext(ctx context.Context) *uuid.UUID {
	adminID, ok := middleware.GetAdminIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &adminID
}
