package data

import (
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// Demo record ids are fixed so the seeded dashboard can reference seeded reports.
const (
	seedReportSales     = "report-sales-performance"
	seedReportCustomers = "report-customer-analytics"
	seedReportFinance   = "report-financial-overview"
	seedReportInventory = "report-inventory-status"
)

func seedTime(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 9, 0, 0, 0, time.UTC)
}

func seedReports() []domain.Report {
	return []domain.Report{
		{
			ID:          seedReportSales,
			Name:        "Sales Performance Dashboard",
			Description: "Monthly sales and profit by category and region",
			Created:     seedTime(time.January, 15),
			Modified:    seedTime(time.March, 2),
			Owner:       "John Doe",
			Workspace:   "My Workspace",
			IsPublished: true,
			Visualizations: []domain.Visualization{
				{
					ID: "viz-sales-trend", Type: domain.ChartTypeLine, Title: "Sales Trend", Dataset: SampleSales,
					Line: &domain.LineChart{XField: "month", YFields: []string{"sales", "profit"}, Smooth: true},
				},
				{
					ID: "viz-sales-by-category", Type: domain.ChartTypeBar, Title: "Sales by Category", Dataset: SampleSales,
					Bar: &domain.BarChart{CategoryField: "category", ValueField: "sales"},
				},
			},
		},
		{
			ID:          seedReportCustomers,
			Name:        "Customer Analytics",
			Description: "Revenue split by customer segment",
			Created:     seedTime(time.February, 3),
			Modified:    seedTime(time.February, 20),
			Owner:       "Jane Smith",
			Workspace:   "Sales Team",
			IsPublished: true,
			Visualizations: []domain.Visualization{
				{
					ID: "viz-revenue-by-segment", Type: domain.ChartTypePie, Title: "Revenue by Segment", Dataset: SampleCustomers,
					Pie: &domain.PieChart{LabelField: "segment", ValueField: "revenue", Donut: true},
				},
			},
		},
		{
			ID:          seedReportFinance,
			Name:        "Financial Overview",
			Description: "Quarterly revenue against expenses",
			Created:     seedTime(time.February, 18),
			Modified:    seedTime(time.March, 10),
			Owner:       "John Doe",
			Workspace:   "My Workspace",
			IsPublished: false,
			Visualizations: []domain.Visualization{
				{
					ID: "viz-quarterly-revenue", Type: domain.ChartTypeBar, Title: "Quarterly Revenue", Dataset: SampleFinancial,
					Bar: &domain.BarChart{CategoryField: "quarter", ValueField: "revenue", Stacked: true},
				},
			},
		},
		{
			ID:             seedReportInventory,
			Name:           "Inventory Status",
			Description:    "Stock levels across warehouses",
			Created:        seedTime(time.March, 5),
			Modified:       seedTime(time.March, 5),
			Owner:          "Mike Johnson",
			Workspace:      "Sales Team",
			IsPublished:    false,
			Visualizations: []domain.Visualization{},
		},
	}
}

func seedDashboards() []domain.Dashboard {
	return []domain.Dashboard{
		{
			ID:          "dashboard-executive",
			Name:        "Executive Overview",
			Description: "Key sales and finance reports for leadership",
			Created:     seedTime(time.March, 1),
			Modified:    seedTime(time.March, 12),
			Owner:       "John Doe",
			Workspace:   "My Workspace",
			Reports:     []string{seedReportSales, seedReportFinance},
		},
	}
}

func seedDatasets() []domain.Dataset {
	return []domain.Dataset{
		{
			ID:          "dataset-sales-db",
			Name:        "Sales Database",
			Description: "Transactional sales records",
			Source:      "SQL Server",
			Created:     seedTime(time.January, 10),
			Modified:    seedTime(time.March, 14),
			Owner:       "John Doe",
			Size:        "2.4 GB",
			Status:      domain.DatasetStatusActive,
		},
		{
			ID:          "dataset-customer-crm",
			Name:        "Customer CRM",
			Description: "Accounts and contacts exported from the CRM",
			Source:      "Salesforce",
			Created:     seedTime(time.January, 22),
			Modified:    seedTime(time.March, 14),
			Owner:       "Jane Smith",
			Size:        "850 MB",
			Status:      domain.DatasetStatusRefreshing,
		},
	}
}

func seedWorkspaces() []domain.Workspace {
	return []domain.Workspace{
		{
			ID:          "workspace-my",
			Name:        "My Workspace",
			Description: "Personal workspace",
			Created:     seedTime(time.January, 1),
			Members:     1,
			IsDefault:   true,
		},
		{
			ID:          "workspace-sales-team",
			Name:        "Sales Team",
			Description: "Shared workspace for the sales department",
			Created:     seedTime(time.January, 8),
			Members:     5,
			IsDefault:   false,
		},
	}
}

// seedNotifications is ordered newest first.
func seedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:      "notification-refresh-done",
			Title:   "Dataset refreshed",
			Message: "Sales Database finished refreshing.",
			Type:    domain.NotificationTypeSuccess,
			Created: seedTime(time.March, 14),
			Read:    false,
		},
		{
			ID:      "notification-report-shared",
			Title:   "Report shared",
			Message: "Jane Smith shared Customer Analytics with you.",
			Type:    domain.NotificationTypeInfo,
			Created: seedTime(time.March, 12),
			Read:    false,
		},
		{
			ID:      "notification-refresh-slow",
			Title:   "Refresh taking longer than usual",
			Message: "Customer CRM refresh has been running for 30 minutes.",
			Type:    domain.NotificationTypeWarning,
			Created: seedTime(time.March, 10),
			Read:    true,
		},
	}
}
