package entity

// CourseEnrollment is one course entry within a learning-plan enrollment,
// owned by the remote LMS and mirrored locally into repeating-instance rows.
// Exactly one local instance row should exist per distinct CourseID.
type CourseEnrollment struct {
	CourseID   string
	CourseCode string
	CourseName string
	Status     string
}
