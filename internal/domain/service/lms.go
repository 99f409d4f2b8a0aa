package service

import (
	"context"

	"enrollsync/internal/domain/entity"
)

// LMSService exposes the remote learning-management API operations the
// enrollment workflow needs. Implementations authenticate, retry on 401
// once, and surface non-2xx responses as domain errors.
type LMSService interface {
	// SearchUsersByEmail returns the users whose profile matches the exact
	// email address. The result is not deduplicated; callers decide what a
	// non-singular match means.
	SearchUsersByEmail(ctx context.Context, email string) ([]entity.RemoteUser, error)

	// CreateUser provisions a user with a freshly generated random password
	// and fixed locale/timezone/level defaults, notification email enabled.
	CreateUser(ctx context.Context, user *entity.NewUser) error

	// EnrollUserInLearningPlan subscribes the user to every course of the
	// learning plan.
	EnrollUserInLearningPlan(ctx context.Context, planID, userID string) error

	// ListPlanEnrollments returns the per-course enrollment entries of the
	// user within the learning plan. An empty slice means not enrolled.
	ListPlanEnrollments(ctx context.Context, planID, userID string) ([]entity.CourseEnrollment, error)
}
