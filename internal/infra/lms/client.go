package lms

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"enrollsync/internal/domain/entity"
	"enrollsync/internal/domain/service"
)

// Fixed defaults applied when provisioning users. The LMS sends the welcome
// notification carrying the generated password, so the password itself is
// never surfaced or stored here.
const (
	newUserLanguage = "english"
	newUserTimezone = "America/New_York"
	newUserLevel    = "user"
)

// Client implements service.LMSService over the authenticated gateway.
type Client struct {
	gateway *Gateway
	logger  *slog.Logger
}

// NewClient constructs the typed LMS API client.
func NewClient(gateway *Gateway, logger *slog.Logger) service.LMSService {
	return &Client{
		gateway: gateway,
		logger:  logger,
	}
}

type userSearchResponse struct {
	Data struct {
		Count int `json:"count"`
		Items []struct {
			UserID    json.Number `json:"user_id"`
			Email     string      `json:"email"`
			FirstName string      `json:"first_name"`
			LastName  string      `json:"last_name"`
		} `json:"items"`
	} `json:"data"`
}

// SearchUsersByEmail looks up remote users by exact email address.
func (c *Client) SearchUsersByEmail(ctx context.Context, email string) ([]entity.RemoteUser, error) {
	query := url.Values{}
	query.Set("search_text", email)

	result, err := c.gateway.Get(ctx, "manage/v1/user", query)
	if err != nil {
		return nil, err
	}

	var parsed userSearchResponse
	if err := result.Decode(&parsed); err != nil {
		return nil, err
	}

	users := make([]entity.RemoteUser, 0, len(parsed.Data.Items))
	for _, item := range parsed.Data.Items {
		users = append(users, entity.RemoteUser{
			ID:        item.UserID.String(),
			Email:     item.Email,
			FirstName: item.FirstName,
			LastName:  item.LastName,
		})
	}

	return users, nil
}

// CreateUser provisions a remote user with a random password and the fixed
// locale/timezone/level defaults, notification email enabled.
func (c *Client) CreateUser(ctx context.Context, user *entity.NewUser) error {
	payload := map[string]any{
		"userid":                  user.Email,
		"email":                   user.Email,
		"firstname":               user.FirstName,
		"lastname":                user.LastName,
		"password":                generatePassword(),
		"language":                newUserLanguage,
		"timezone":                newUserTimezone,
		"level":                   newUserLevel,
		"send_notification_email": true,
	}

	if _, err := c.gateway.Post(ctx, "manage/v1/user", payload); err != nil {
		return err
	}

	c.logger.Info("Created remote LMS user", slog.String("email", user.Email))

	return nil
}

// EnrollUserInLearningPlan subscribes the user to the learning plan.
func (c *Client) EnrollUserInLearningPlan(ctx context.Context, planID, userID string) error {
	path := fmt.Sprintf("learningplan/v1/learningplans/%s/enrollments/%s",
		url.PathEscape(planID), url.PathEscape(userID))

	body := map[string]string{"status": "subscribed"}
	if _, err := c.gateway.Post(ctx, path, body); err != nil {
		return err
	}

	return nil
}

type planEnrollmentsResponse struct {
	Data struct {
		Items []struct {
			CourseID         json.Number `json:"course_id"`
			CourseCode       string      `json:"course_code"`
			CourseName       string      `json:"course_name"`
			EnrollmentStatus string      `json:"enrollment_status"`
		} `json:"items"`
	} `json:"data"`
}

// ListPlanEnrollments returns the user's per-course enrollment entries
// within the learning plan.
func (c *Client) ListPlanEnrollments(ctx context.Context, planID, userID string) ([]entity.CourseEnrollment, error) {
	path := fmt.Sprintf("learningplan/v1/learningplans/%s/courses/enrollments", url.PathEscape(planID))

	query := url.Values{}
	query.Set("user_id[]", userID)

	result, err := c.gateway.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var parsed planEnrollmentsResponse
	if err := result.Decode(&parsed); err != nil {
		return nil, err
	}

	enrollments := make([]entity.CourseEnrollment, 0, len(parsed.Data.Items))
	for _, item := range parsed.Data.Items {
		enrollments = append(enrollments, entity.CourseEnrollment{
			CourseID:   item.CourseID.String(),
			CourseCode: item.CourseCode,
			CourseName: item.CourseName,
			Status:     item.EnrollmentStatus,
		})
	}

	return enrollments, nil
}

// generatePassword produces a throwaway random password for provisioning;
// the user resets it through the LMS notification flow. The fixed prefix
// covers the upper/digit/symbol character classes the LMS requires.
func generatePassword() string {
	buf := make([]byte, 18)
	rand.Read(buf)

	return "Es1!" + hex.EncodeToString(buf)
}
