package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

// Export renders the data behind every visualization of a report, stores the
// file and raises a success notification. The exported event is best effort:
// a publish failure is logged and the export still succeeds.
func (s *Service) Export(ctx context.Context, input ExportInput) (*domain.ExportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report, err := s.reports.GetReport(ctx, input.ReportID)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	sections := make([]section, 0, len(report.Visualizations))
	for _, v := range report.Visualizations {
		rows, err := s.query.QueryData(ctx, v.Dataset, domain.QueryFilter{})
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", v.Dataset, err)
		}
		sections = append(sections, section{ID: v.ID, Title: v.Title, Type: v.Type, Dataset: v.Dataset, Rows: rows})
	}

	now := s.now()
	body, err := render(input.Format, report, sections, now)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", input.Format, err)
	}

	exportID := s.newID()
	key := objectKey(report.ID, exportID, input.Format)

	url, err := s.blobs.Put(ctx, key, input.Format.ContentType(), body)
	if err != nil {
		return nil, fmt.Errorf("store export: %w", err)
	}

	result := &domain.ExportResult{
		ID:       exportID,
		ReportID: report.ID,
		Format:   input.Format,
		Key:      key,
		URL:      url,
		Size:     int64(len(body)),
		Created:  now,
	}

	_, err = s.notifier.CreateNotification(ctx, data.CreateNotificationInput{
		Title:   "Export completed",
		Message: fmt.Sprintf("%s was exported as %s.", report.Name, strings.ToUpper(input.Format.String())),
		Type:    domain.NotificationTypeSuccess,
	})
	if err != nil {
		return nil, fmt.Errorf("notify export: %w", err)
	}

	if err := s.events.Publish(ctx, RoutingKeyReportExported, result); err != nil {
		s.log.WarnContext(ctx, "publish export event",
			slog.String("export_id", exportID),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("report_id", report.ID),
		slog.String("export_id", exportID),
		slog.String("format", input.Format.String()),
		slog.Int64("size", result.Size),
	)

	return result, nil
}

func objectKey(reportID, exportID string, format domain.ExportFormat) string {
	return "exports/" + reportID + "/" + exportID + "." + format.Extension()
}
