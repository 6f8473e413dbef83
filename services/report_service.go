package services

import (
	"context"
	"fmt"
	"log/slog"
)

const anonymousReporter = "Anonymous"

// ReportService принимает жалобы/баг-репорты. Хранилища для них нет,
// репорт логируется и подтверждается.
type ReportService interface {
	SubmitReport(ctx context.Context, input ReportInput) (*ReportAck, error)
}

type ReportInput struct {
	Type         string `json:"type"` // player, rule, bug
	Description  string `json:"description"`
	ReporterName string `json:"reporter_name"`
}

type ReportAck struct {
	Message  string `json:"message"`
	Reporter string `json:"reporter"`
	Type     string `json:"type"`
}

type reportService struct {
	logger *slog.Logger
}

func NewReportService(logger *slog.Logger) ReportService {
	return &reportService{logger: logger}
}

func (s *reportService) SubmitReport(ctx context.Context, input ReportInput) (*ReportAck, error) {
	if input.Type == "" || input.Description == "" {
		return nil, ErrReportFieldsRequired
	}

	reporter := input.ReporterName
	if reporter == "" {
		reporter = anonymousReporter
	}

	s.logger.Info("report received",
		slog.String("type", input.Type),
		slog.String("reporter", reporter),
		slog.String("description", input.Description),
	)

	return &ReportAck{
		Message:  fmt.Sprintf("Your %s report has been submitted successfully!", input.Type),
		Reporter: reporter,
		Type:     input.Type,
	}, nil
}
