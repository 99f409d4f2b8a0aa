// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"enrollsync/config"
	deliverycontext "enrollsync/internal/delivery/context"
	"enrollsync/internal/domain/entity"
	domainerrors "enrollsync/internal/domain/errors"
	"enrollsync/internal/domain/repository"
	"enrollsync/internal/domain/service"
	"enrollsync/internal/usecase"

	"github.com/pkg/errors"
)

// enrollmentService implements the EnrollmentUsecase interface.
type enrollmentService struct {
	cfg     *config.Config
	lms     service.LMSService
	records repository.RecordRepository
	logger  *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(
	cfg *config.Config,
	lms service.LMSService,
	records repository.RecordRepository,
	logger *slog.Logger,
) usecase.EnrollmentUsecase {
	return &enrollmentService{
		cfg:     cfg,
		lms:     lms,
		records: records,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *enrollmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// syncState is the per-invocation workflow state, constructed fresh for
// each record and never shared across records.
type syncState struct {
	project     *config.ProjectConfig
	record      string
	subject     entity.Subject
	user        *entity.RemoteUser
	planID      string
	enrollments []entity.CourseEnrollment
}

// SyncRecord runs the full trigger-path workflow for one record.
func (srv *enrollmentService) SyncRecord(ctx context.Context, projectID int64, record string) error {
	return srv.run(ctx, projectID, record, false)
}

// ReconcileRecord runs the batch-path workflow: no user provisioning, no
// enroll call, write-back only for users already enrolled.
func (srv *enrollmentService) ReconcileRecord(ctx context.Context, projectID int64, record string) error {
	return srv.run(ctx, projectID, record, true)
}

// ReconcileProject sweeps every record of a project sequentially. A
// per-record failure is logged and the sweep moves on.
func (srv *enrollmentService) ReconcileProject(ctx context.Context, projectID int64) error {
	project := srv.cfg.Project(projectID)
	if project == nil {
		return domainerrors.ErrProjectNotConfigured.WrapMessage("reconcile project")
	}

	records, err := srv.records.ListRecords(ctx, projectID, project.EventID)
	if err != nil {
		return errors.Wrapf(err, "failed to list records for project %d", projectID)
	}

	srv.log(ctx).Info("Starting reconciliation sweep",
		slog.Int64("project_id", projectID),
		slog.Int("records", len(records)),
	)

	for _, record := range records {
		if err := srv.ReconcileRecord(ctx, projectID, record); err != nil {
			srv.log(ctx).Error("Record reconciliation failed, skipping",
				slog.Int64("project_id", projectID),
				slog.String("record", record),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// ReconcileAll sweeps every enabled project.
func (srv *enrollmentService) ReconcileAll(ctx context.Context) error {
	for _, project := range srv.cfg.Projects {
		if !project.Enabled {
			continue
		}

		if err := srv.ReconcileProject(ctx, project.ProjectID); err != nil {
			srv.log(ctx).Error("Project reconciliation failed, skipping",
				slog.Int64("project_id", project.ProjectID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// run executes the workflow state machine for one record. Batch mode skips
// user provisioning and the enroll call: it catches up on enrollment status
// for users that already exist, it does not enroll new ones.
func (srv *enrollmentService) run(ctx context.Context, projectID int64, record string, batch bool) error {
	project := srv.cfg.Project(projectID)
	if project == nil {
		return domainerrors.ErrProjectNotConfigured.WrapMessage("sync record")
	}

	st := &syncState{project: project, record: record}

	fields, err := srv.records.RecordFields(ctx, projectID, project.EventID, record)
	if err != nil {
		return errors.Wrap(err, "failed to read record fields")
	}

	// Gate on request type before touching the remote API.
	if fields[project.RequestTypeField] != project.RequestTypeValue {
		srv.log(ctx).Debug("Record is not a user-training request, skipping",
			slog.Int64("project_id", projectID),
			slog.String("record", record),
		)

		return nil
	}

	if err := srv.selectSubject(st, fields); err != nil {
		return err
	}

	if err := srv.resolveUser(ctx, st, batch); err != nil {
		return err
	}
	if st.user == nil {
		// Batch mode: nothing to reconcile for unknown users.
		return nil
	}

	st.planID = strings.TrimSpace(fields[project.RoleField])
	if st.planID == "" {
		return domainerrors.ErrRecordIncomplete.WrapMessage("primary role field is empty")
	}

	enrolled, err := srv.checkEnrollment(ctx, st)
	if err != nil {
		return err
	}

	if !enrolled {
		if batch {
			// Not enrolled and batch never enrolls: no status to write back.
			return nil
		}

		if err := srv.lms.EnrollUserInLearningPlan(ctx, st.planID, st.user.ID); err != nil {
			return errors.Wrap(err, "failed to enroll user in learning plan")
		}

		// Re-fetch so the write-back sees the per-course entries the
		// enrollment produced.
		st.enrollments, err = srv.lms.ListPlanEnrollments(ctx, st.planID, st.user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list enrollments after enrolling")
		}
	}

	return srv.writeBack(ctx, st)
}

// selectSubject extracts the subject from the record using the mapping the
// "on behalf" control field selects.
func (srv *enrollmentService) selectSubject(st *syncState, fields map[string]string) error {
	onBehalf := isChecked(fields[st.project.OnBehalfField])
	mapping := st.project.Subject(onBehalf)

	st.subject = entity.Subject{
		Email:     strings.TrimSpace(fields[mapping.Email]),
		FirstName: strings.TrimSpace(fields[mapping.FirstName]),
		LastName:  strings.TrimSpace(fields[mapping.LastName]),
	}
	if mapping.SID != "" {
		st.subject.SID = fields[mapping.SID]
	}
	if mapping.Affiliate != "" {
		st.subject.Affiliate = fields[mapping.Affiliate]
	}

	if st.subject.Email == "" {
		return domainerrors.ErrRecordIncomplete.WrapMessage("subject email field is empty")
	}

	return nil
}

// resolveUser resolves the subject to a remote user by exact email search.
// The trigger path provisions a missing user and re-runs the search, which
// must then yield exactly one match. The batch path leaves st.user nil when
// the search is not singular.
func (srv *enrollmentService) resolveUser(ctx context.Context, st *syncState, batch bool) error {
	users, err := srv.lms.SearchUsersByEmail(ctx, st.subject.Email)
	if err != nil {
		return errors.Wrap(err, "failed to search remote users")
	}

	if len(users) == 1 {
		st.user = &users[0]

		return nil
	}

	if batch {
		srv.log(ctx).Info("No unique remote user for subject, skipping record",
			slog.String("record", st.record),
			slog.Int("matches", len(users)),
		)

		return nil
	}

	if err := srv.lms.CreateUser(ctx, &entity.NewUser{
		Email:     st.subject.Email,
		FirstName: st.subject.FirstName,
		LastName:  st.subject.LastName,
	}); err != nil {
		srv.log(ctx).Error("Remote user creation failed",
			slog.String("record", st.record),
			slog.Any("error", err),
		)

		return domainerrors.ErrUserResolutionFailed.WrapMessage("user creation failed")
	}

	users, err = srv.lms.SearchUsersByEmail(ctx, st.subject.Email)
	if err != nil {
		return errors.Wrap(err, "failed to re-search remote users after creation")
	}
	if len(users) != 1 {
		return domainerrors.ErrUserResolutionFailed.WrapMessage("search after creation was not singular")
	}

	st.user = &users[0]

	return nil
}

// checkEnrollment loads the learning plan's course entries for the resolved
// user into the invocation state and reports whether any exist. A non-empty
// listing means the user is already enrolled and the enroll call must never
// be re-issued.
func (srv *enrollmentService) checkEnrollment(ctx context.Context, st *syncState) (bool, error) {
	enrollments, err := srv.lms.ListPlanEnrollments(ctx, st.planID, st.user.ID)
	if err != nil {
		return false, errors.Wrap(err, "failed to list learning plan enrollments")
	}

	st.enrollments = enrollments

	return len(enrollments) > 0, nil
}

// writeBack mirrors every course entry into a repeating instance: entries
// matching an existing instance by course ID reuse it, the rest allocate
// the next free instance number. Per-course upsert failures are logged and
// do not abort the remaining entries.
func (srv *enrollmentService) writeBack(ctx context.Context, st *syncState) error {
	wb := st.project.WriteBack

	fields := writeBackFields(wb)
	instances, err := srv.records.RepeatingInstances(ctx, st.project.ProjectID, wb.EventID, st.record, fields)
	if err != nil {
		return errors.Wrap(err, "failed to load repeating instances")
	}

	for _, course := range st.enrollments {
		instance := matchInstance(instances, wb.CourseIDField, course.CourseID)
		if instance == 0 {
			instance, err = srv.records.NextInstance(ctx, st.project.ProjectID, wb.EventID, st.record, fields)
			if err != nil {
				return errors.Wrap(err, "failed to allocate instance")
			}
		}

		values := make(map[string]string, 5)
		setField(values, wb.CourseIDField, course.CourseID)
		setField(values, wb.StatusField, course.Status)
		setField(values, wb.CourseCodeField, course.CourseCode)
		setField(values, wb.CourseNameField, course.CourseName)
		setField(values, wb.UserIDField, st.user.ID)

		if err := srv.records.UpsertInstance(ctx, st.project.ProjectID, wb.EventID, st.record, instance, values); err != nil {
			srv.log(ctx).Error("Write-back upsert failed, continuing with remaining courses",
				slog.String("record", st.record),
				slog.String("course_id", course.CourseID),
				slog.Int("instance", instance),
				slog.Any("error", err),
			)

			continue
		}
	}

	return nil
}

// writeBackFields lists the configured write-back field names; unset ones
// are skipped everywhere.
func writeBackFields(wb config.WriteBackConfig) []string {
	fields := make([]string, 0, 5)
	for _, field := range []string{
		wb.CourseIDField, wb.StatusField, wb.CourseCodeField, wb.CourseNameField, wb.UserIDField,
	} {
		if field != "" {
			fields = append(fields, field)
		}
	}

	return fields
}

// matchInstance scans existing instances for one whose course-id field
// equals courseID, returning 0 when none matches.
func matchInstance(instances map[int]map[string]string, courseIDField, courseID string) int {
	for instance, values := range instances {
		if values[courseIDField] == courseID {
			return instance
		}
	}

	return 0
}

func setField(values map[string]string, field, value string) {
	if field != "" {
		values[field] = value
	}
}

// isChecked interprets the data-capture platform's boolean field encoding.
func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
