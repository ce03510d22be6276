package rest

import "net/http"

// Handlers groups every REST handler mounted by Register.
type Handlers struct {
	Health        *HealthHandler
	Reports       *ReportHandler
	Dashboards    *DashboardHandler
	Datasets      *DatasetHandler
	Workspaces    *WorkspaceHandler
	Notifications *NotificationHandler
	Query         *QueryHandler
	Export        *ExportHandler
	Seed          *SeedHandler
}

// Register mounts all routes on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/reports", h.Reports.List)
	mux.HandleFunc("POST /api/reports", h.Reports.Create)
	mux.HandleFunc("GET /api/reports/{id}", h.Reports.Get)
	mux.HandleFunc("PATCH /api/reports/{id}", h.Reports.Update)
	mux.HandleFunc("DELETE /api/reports/{id}", h.Reports.Delete)
	mux.HandleFunc("POST /api/reports/{id}/export", h.Export.Export)

	mux.HandleFunc("GET /api/dashboards", h.Dashboards.List)
	mux.HandleFunc("POST /api/dashboards", h.Dashboards.Create)
	mux.HandleFunc("GET /api/dashboards/{id}", h.Dashboards.Get)
	mux.HandleFunc("PATCH /api/dashboards/{id}", h.Dashboards.Update)
	mux.HandleFunc("DELETE /api/dashboards/{id}", h.Dashboards.Delete)

	mux.HandleFunc("GET /api/datasets", h.Datasets.List)
	mux.HandleFunc("POST /api/datasets", h.Datasets.Create)
	mux.HandleFunc("GET /api/datasets/{id}", h.Datasets.Get)
	mux.HandleFunc("PATCH /api/datasets/{id}", h.Datasets.Update)
	mux.HandleFunc("DELETE /api/datasets/{id}", h.Datasets.Delete)

	mux.HandleFunc("GET /api/workspaces", h.Workspaces.List)
	mux.HandleFunc("POST /api/workspaces", h.Workspaces.Create)
	mux.HandleFunc("GET /api/workspaces/{id}", h.Workspaces.Get)
	mux.HandleFunc("DELETE /api/workspaces/{id}", h.Workspaces.Delete)

	mux.HandleFunc("GET /api/notifications", h.Notifications.List)
	mux.HandleFunc("POST /api/notifications", h.Notifications.Create)
	mux.HandleFunc("GET /api/notifications/unread-count", h.Notifications.UnreadCount)
	mux.HandleFunc("POST /api/notifications/read-all", h.Notifications.MarkAllAsRead)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.Notifications.MarkAsRead)

	mux.HandleFunc("GET /api/query/datasets", h.Query.Datasets)
	mux.HandleFunc("POST /api/query", h.Query.Query)
	mux.HandleFunc("POST /api/query/summary", h.Query.Summary)

	mux.HandleFunc("POST /api/seed", h.Seed.Seed)
}
