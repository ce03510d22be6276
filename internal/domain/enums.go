package domain

// DatasetStatus is the refresh state of a user-registered dataset.
type DatasetStatus string

const (
	DatasetStatusActive     DatasetStatus = "active"
	DatasetStatusInactive   DatasetStatus = "inactive"
	DatasetStatusRefreshing DatasetStatus = "refreshing"
)

func (s DatasetStatus) String() string { return string(s) }

func (s DatasetStatus) IsValid() bool {
	switch s {
	case DatasetStatusActive, DatasetStatusInactive, DatasetStatusRefreshing:
		return true
	}
	return false
}

// NotificationType is the severity shown next to a notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeSuccess NotificationType = "success"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeError, NotificationTypeSuccess:
		return true
	}
	return false
}

// ChartType identifies the variant carried by a Visualization.
type ChartType string

const (
	ChartTypeLine ChartType = "line"
	ChartTypeBar  ChartType = "bar"
	ChartTypePie  ChartType = "pie"
)

func (c ChartType) String() string { return string(c) }

func (c ChartType) IsValid() bool {
	switch c {
	case ChartTypeLine, ChartTypeBar, ChartTypePie:
		return true
	}
	return false
}

// ExportFormat is the artifact format produced by a report export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatJSON:
		return true
	}
	return false
}

// Extension returns the file extension used for artifacts of this format.
func (f ExportFormat) Extension() string { return string(f) }

// ContentType returns the MIME type used when storing the artifact.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv"
	default:
		return "application/json"
	}
}
