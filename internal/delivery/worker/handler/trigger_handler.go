// Package handler contains the webhook endpoint handlers.
package handler

import (
	"log/slog"
	"net/http"

	"enrollsync/config"
	deliverycontext "enrollsync/internal/delivery/context"
	"enrollsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SurveyCompleteRequest is the payload the data-capture platform posts when
// a survey is completed.
type SurveyCompleteRequest struct {
	ProjectID  int64  `json:"project_id" form:"project_id"`
	Record     string `json:"record" form:"record"`
	Instrument string `json:"instrument" form:"instrument"`
}

// TriggerHandler drives the enrollment workflow from survey-completion
// notifications. It is the boundary that converts workflow errors into
// logged-and-skipped outcomes: the webhook always answers 200 so the
// platform never retries or surfaces errors to respondents.
type TriggerHandler struct {
	cfg        *config.Config
	logger     *slog.Logger
	enrollment usecase.EnrollmentUsecase
}

// TriggerHandlerParams holds dependencies for the TriggerHandler
type TriggerHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Enrollment usecase.EnrollmentUsecase
}

// NewTriggerHandler creates a new survey-completion trigger handler
func NewTriggerHandler(params TriggerHandlerParams) *TriggerHandler {
	return &TriggerHandler{
		cfg:        params.Config,
		logger:     params.Logger,
		enrollment: params.Enrollment,
	}
}

// HandleSurveyComplete gates the notification on the configured trigger
// form and runs the sync for the record.
func (h *TriggerHandler) HandleSurveyComplete(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var req SurveyCompleteRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Malformed survey-completion payload", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, map[string]string{"status": "bad_request"})
	}

	if req.ProjectID == 0 || req.Record == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "bad_request"})
	}

	project := h.cfg.Project(req.ProjectID)
	if project == nil || !project.Enabled || req.Instrument != project.TriggerForm {
		logger.Debug("Survey completion outside integration scope, ignoring",
			slog.Int64("project_id", req.ProjectID),
			slog.String("instrument", req.Instrument),
		)

		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	if err := h.enrollment.SyncRecord(ctx, req.ProjectID, req.Record); err != nil {
		logger.Error("Record sync failed",
			slog.Int64("project_id", req.ProjectID),
			slog.String("record", req.Record),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusOK, map[string]string{"status": "error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "synced"})
}
