package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"enrollsync/config"
	"enrollsync/internal/domain/entity"
	domainerrors "enrollsync/internal/domain/errors"
	mockRepo "enrollsync/internal/mocks/repository"
	mockService "enrollsync/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testProjectID int64 = 101
	testRecord          = "42"
	testPlanID          = "77"
)

type fixtures struct {
	cfg     *config.Config
	lms     *mockService.MockLMSService
	records *mockRepo.MockRecordRepository
	service *enrollmentService
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	cfg := &config.Config{
		Projects: []*config.ProjectConfig{testProject()},
	}

	lms := mockService.NewMockLMSService(t)
	records := mockRepo.NewMockRecordRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, ok := NewEnrollmentService(cfg, lms, records, logger).(*enrollmentService)
	require.True(t, ok)

	return &fixtures{cfg: cfg, lms: lms, records: records, service: service}
}

func testProject() *config.ProjectConfig {
	return &config.ProjectConfig{
		ProjectID:        testProjectID,
		Enabled:          true,
		EventID:          1,
		TriggerForm:      "training_request",
		RequestTypeField: "request_type",
		RequestTypeValue: "user_training",
		OnBehalfField:    "on_behalf",
		Requester: config.SubjectFields{
			Email:     "req_email",
			FirstName: "req_first",
			LastName:  "req_last",
		},
		Trainee: &config.SubjectFields{
			Email:     "trainee_email",
			FirstName: "trainee_first",
			LastName:  "trainee_last",
		},
		RoleField: "primary_role",
		WriteBack: config.WriteBackConfig{
			Form:            "lms_enrollment",
			EventID:         2,
			CourseIDField:   "lms_course_id",
			StatusField:     "lms_status",
			CourseCodeField: "lms_course_code",
			CourseNameField: "lms_course_name",
			UserIDField:     "lms_user_id",
		},
	}
}

func requesterFields() map[string]string {
	return map[string]string{
		"request_type": "user_training",
		"on_behalf":    "0",
		"req_email":    "jane@example.edu",
		"req_first":    "Jane",
		"req_last":     "Doe",
		"primary_role": testPlanID,
	}
}

var writeBackFieldNames = []string{
	"lms_course_id", "lms_status", "lms_course_code", "lms_course_name", "lms_user_id",
}

var remoteJane = entity.RemoteUser{
	ID:        "12045",
	Email:     "jane@example.edu",
	FirstName: "Jane",
	LastName:  "Doe",
}

func courseEntry(id, status string) entity.CourseEnrollment {
	return entity.CourseEnrollment{
		CourseID:   id,
		CourseCode: "SAFE-" + id,
		CourseName: "Course " + id,
		Status:     status,
	}
}

func (f *fixtures) expectRecord(fields map[string]string) {
	f.records.EXPECT().
		RecordFields(mock.Anything, testProjectID, int64(1), testRecord).
		Return(fields, nil).Once()
}

func (f *fixtures) expectInstances(instances map[int]map[string]string) {
	f.records.EXPECT().
		RepeatingInstances(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(instances, nil).Once()
}

func TestSyncRecord_UnknownProject(t *testing.T) {
	f := newFixtures(t)

	err := f.service.SyncRecord(context.Background(), 999, testRecord)

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindDataIntegrity, domainerrors.KindOf(err))
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotConfigured)
}

func TestSyncRecord_RequestTypeGateSkips(t *testing.T) {
	f := newFixtures(t)

	fields := requesterFields()
	fields["request_type"] = "equipment_access"
	f.expectRecord(fields)

	// No LMS expectations: the gate must fire before any remote call.
	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_MissingEmailIsFatal(t *testing.T) {
	f := newFixtures(t)

	fields := requesterFields()
	fields["req_email"] = "  "
	f.expectRecord(fields)

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecordIncomplete)
}

func TestSyncRecord_OnBehalfSelectsTraineeMapping(t *testing.T) {
	f := newFixtures(t)

	fields := requesterFields()
	fields["on_behalf"] = "1"
	fields["trainee_email"] = "trainee@example.edu"
	fields["trainee_first"] = "Tom"
	fields["trainee_last"] = "Trainee"
	f.expectRecord(fields)

	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "trainee@example.edu").
		Return([]entity.RemoteUser{{ID: "500", Email: "trainee@example.edu"}}, nil).Once()
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, "500").
		Return([]entity.CourseEnrollment{courseEntry("301", "enrolled")}, nil).Once()

	f.expectInstances(map[int]map[string]string{})
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(1, nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_MissingRoleIsFatal(t *testing.T) {
	f := newFixtures(t)

	fields := requesterFields()
	fields["primary_role"] = ""
	f.expectRecord(fields)

	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecordIncomplete)
}

func TestSyncRecord_AlreadyEnrolledSkipsEnrollCall(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()

	// Non-empty listing: enrollment must not be re-issued, listing is reused
	// for the write-back without a second fetch.
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{courseEntry("301", "completed")}, nil).Once()

	f.expectInstances(map[int]map[string]string{})
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(1, nil).Once()

	var written map[string]string
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Run(func(_ context.Context, _ int64, _ int64, _ string, _ int, values map[string]string) {
			written = values
		}).
		Return(nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"lms_course_id":   "301",
		"lms_status":      "completed",
		"lms_course_code": "SAFE-301",
		"lms_course_name": "Course 301",
		"lms_user_id":     remoteJane.ID,
	}, written)
}

func TestSyncRecord_NotEnrolledEnrollsOnceAndRelists(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()

	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return(nil, nil).Once()
	f.lms.EXPECT().EnrollUserInLearningPlan(mock.Anything, testPlanID, remoteJane.ID).
		Return(nil).Once()
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{courseEntry("301", "enrolled"), courseEntry("302", "enrolled")}, nil).Once()

	f.expectInstances(map[int]map[string]string{})
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(1, nil).Once()
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(2, nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 2, mock.Anything).
		Return(nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_WriteBackReusesMatchingInstance(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{
			courseEntry("10", "completed"),
			courseEntry("30", "enrolled"),
		}, nil).Once()

	// Course 10 already occupies instance 1, course 20 instance 2; course 30
	// is new and must land on the next free instance.
	f.expectInstances(map[int]map[string]string{
		1: {"lms_course_id": "10", "lms_status": "enrolled"},
		2: {"lms_course_id": "20", "lms_status": "enrolled"},
	})
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(3, nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 3, mock.Anything).
		Return(nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_WriteBackUpsertFailureContinues(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{courseEntry("301", "enrolled"), courseEntry("302", "enrolled")}, nil).Once()

	f.expectInstances(map[int]map[string]string{
		1: {"lms_course_id": "301"},
		2: {"lms_course_id": "302"},
	})
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(errors.New("deadlock detected")).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 2, mock.Anything).
		Return(nil).Once()

	// A single failed course must not abort the rest of the write-back.
	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_CreatesMissingUser(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())

	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return(nil, nil).Once()
	f.lms.EXPECT().CreateUser(mock.Anything, &entity.NewUser{
		Email:     "jane@example.edu",
		FirstName: "Jane",
		LastName:  "Doe",
	}).Return(nil).Once()
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()

	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{courseEntry("301", "enrolled")}, nil).Once()

	f.expectInstances(map[int]map[string]string{})
	f.records.EXPECT().
		NextInstance(mock.Anything, testProjectID, int64(2), testRecord, writeBackFieldNames).
		Return(1, nil).Once()
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestSyncRecord_CreateUserFailureIsFatal(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return(nil, nil).Once()
	f.lms.EXPECT().CreateUser(mock.Anything, mock.Anything).
		Return(domainerrors.NewRemoteAPIError(400, []byte(`{"message":"invalid payload"}`))).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserResolutionFailed)
}

func TestSyncRecord_NonSingularResearchIsFatal(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return(nil, nil).Once()
	f.lms.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil).Once()
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane, {ID: "12046", Email: "jane@example.edu"}}, nil).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserResolutionFailed)
	assert.Equal(t, domainerrors.KindDataIntegrity, domainerrors.KindOf(err))
}

func TestSyncRecord_AmbiguousInitialSearchTriesProvisioning(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())

	// Two matches up front: only a singular match is adoptable as-is, so the
	// trigger path falls through to provisioning, which the remote rejects.
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane, {ID: "12046"}}, nil).Once()
	f.lms.EXPECT().CreateUser(mock.Anything, mock.Anything).
		Return(domainerrors.NewRemoteAPIError(409, []byte(`{"message":"duplicate"}`))).Once()

	err := f.service.SyncRecord(context.Background(), testProjectID, testRecord)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserResolutionFailed)
}

func TestReconcileRecord_SkipsUnknownUser(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())

	// Batch mode never provisions: an empty search ends the record quietly.
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return(nil, nil).Once()

	err := f.service.ReconcileRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestReconcileRecord_SkipsUnenrolledUser(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()

	// Empty listing in batch mode: no enroll call, no write-back.
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return(nil, nil).Once()

	err := f.service.ReconcileRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestReconcileRecord_WritesBackExistingEnrollment(t *testing.T) {
	f := newFixtures(t)

	f.expectRecord(requesterFields())
	f.lms.EXPECT().SearchUsersByEmail(mock.Anything, "jane@example.edu").
		Return([]entity.RemoteUser{remoteJane}, nil).Once()
	f.lms.EXPECT().ListPlanEnrollments(mock.Anything, testPlanID, remoteJane.ID).
		Return([]entity.CourseEnrollment{courseEntry("301", "completed")}, nil).Once()

	f.expectInstances(map[int]map[string]string{
		1: {"lms_course_id": "301", "lms_status": "enrolled"},
	})
	f.records.EXPECT().
		UpsertInstance(mock.Anything, testProjectID, int64(2), testRecord, 1, mock.Anything).
		Return(nil).Once()

	err := f.service.ReconcileRecord(context.Background(), testProjectID, testRecord)

	require.NoError(t, err)
}

func TestReconcileProject_ContinuesPastFailingRecord(t *testing.T) {
	f := newFixtures(t)

	f.records.EXPECT().ListRecords(mock.Anything, testProjectID, int64(1)).
		Return([]string{"41", "42"}, nil).Once()

	f.records.EXPECT().
		RecordFields(mock.Anything, testProjectID, int64(1), "41").
		Return(nil, errors.New("connection reset")).Once()

	fields := requesterFields()
	fields["request_type"] = "other"
	f.records.EXPECT().
		RecordFields(mock.Anything, testProjectID, int64(1), "42").
		Return(fields, nil).Once()

	err := f.service.ReconcileProject(context.Background(), testProjectID)

	require.NoError(t, err)
}

func TestReconcileProject_UnknownProject(t *testing.T) {
	f := newFixtures(t)

	err := f.service.ReconcileProject(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotConfigured)
}

func TestReconcileAll_SkipsDisabledProjects(t *testing.T) {
	f := newFixtures(t)

	f.cfg.Projects = append(f.cfg.Projects, &config.ProjectConfig{
		ProjectID: 202,
		Enabled:   false,
	})

	f.records.EXPECT().ListRecords(mock.Anything, testProjectID, int64(1)).
		Return(nil, nil).Once()

	err := f.service.ReconcileAll(context.Background())

	require.NoError(t, err)
}

func TestIsChecked(t *testing.T) {
	tests := []struct {
		value   string
		checked bool
	}{
		{"1", true},
		{"true", true},
		{"Yes", true},
		{" 1 ", true},
		{"0", false},
		{"", false},
		{"no", false},
		{"2", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.checked, isChecked(tt.value), "value %q", tt.value)
	}
}
