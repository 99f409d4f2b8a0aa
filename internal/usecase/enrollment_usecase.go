// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// EnrollmentUsecase synchronizes a record's subject with the remote LMS:
// resolve or provision the user, enroll them into the learning plan named
// by the record, and write enrollment status back into repeating instances.
type EnrollmentUsecase interface {
	// SyncRecord runs the full trigger-path workflow for one record,
	// including user provisioning and the enroll call.
	SyncRecord(ctx context.Context, projectID int64, record string) error

	// ReconcileRecord runs the batch-path workflow for one record. It only
	// reconciles write-back state for users already present and enrolled;
	// it never provisions users or issues enroll calls.
	ReconcileRecord(ctx context.Context, projectID int64, record string) error

	// ReconcileProject sweeps every record of a project sequentially,
	// logging and skipping per-record failures.
	ReconcileProject(ctx context.Context, projectID int64) error

	// ReconcileAll sweeps every enabled project.
	ReconcileAll(ctx context.Context) error
}
