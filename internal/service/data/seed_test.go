package data

import (
	"context"
	"testing"

	"github.com/Rkreels/powerbi-sub001/internal/adapter/collection"
	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

var allCollections = []string{
	collection.Reports,
	collection.Dashboards,
	collection.Datasets,
	collection.Workspaces,
	collection.Notifications,
}

func TestInitializeSampleData_EmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.InitializeSampleData(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := SeedResult{Reports: 4, Dashboards: 1, Datasets: 2, Workspaces: 2, Notifications: 3}
	if res != want {
		t.Errorf("result = %+v, want %+v", res, want)
	}
	if res.Total() != 12 {
		t.Errorf("total = %d, want 12", res.Total())
	}

	reports, _ := svc.ListReports(ctx)
	if len(reports) != 4 {
		t.Fatalf("reports = %d, want 4", len(reports))
	}
	first := reports[0]
	if first.Name != "Sales Performance Dashboard" || first.Owner != "John Doe" || !first.IsPublished {
		t.Errorf("first report = %q owner %q published %v", first.Name, first.Owner, first.IsPublished)
	}

	if unread, _ := svc.UnreadCount(ctx); unread != 2 {
		t.Errorf("unread = %d, want 2", unread)
	}
}

func TestInitializeSampleData_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newTestService(t)

	if _, err := svc.InitializeSampleData(ctx); err != nil {
		t.Fatal(err)
	}
	once := make(map[string]string)
	for _, name := range allCollections {
		once[name] = string(rawKey(t, store, name))
	}

	res, err := svc.InitializeSampleData(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total() != 0 {
		t.Errorf("second call inserted %+v, want nothing", res)
	}
	for _, name := range allCollections {
		if got := string(rawKey(t, store, name)); got != once[name] {
			t.Errorf("%s changed on second seed", name)
		}
	}
}

func TestInitializeSampleData_ChecksCollectionsIndependently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	own, err := svc.CreateReport(ctx, CreateReportInput{Name: "Mine"})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.InitializeSampleData(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reports != 0 || res.Workspaces != 2 {
		t.Errorf("result = %+v, want reports 0 and workspaces 2", res)
	}

	reports, _ := svc.ListReports(ctx)
	if len(reports) != 1 || reports[0].ID != own.ID {
		t.Errorf("reports = %+v, want only the user's report", reports)
	}
	workspaces, _ := svc.ListWorkspaces(ctx)
	if len(workspaces) != 2 {
		t.Errorf("workspaces = %d, want 2", len(workspaces))
	}
}

func TestSeedData_IsConsistent(t *testing.T) {
	t.Parallel()

	if err := validateAll(seedReports()); err != nil {
		t.Errorf("seed visualizations invalid: %v", err)
	}

	reportIDs := make(map[string]bool)
	for _, r := range seedReports() {
		reportIDs[r.ID] = true
	}
	for _, d := range seedDashboards() {
		for _, id := range d.Reports {
			if !reportIDs[id] {
				t.Errorf("dashboard %s references unknown report %s", d.ID, id)
			}
		}
	}

	notifications := seedNotifications()
	for i := 1; i < len(notifications); i++ {
		if notifications[i].Created.After(notifications[i-1].Created) {
			t.Errorf("seed notifications not newest first at %d", i)
		}
	}
}

func validateAll(reports []domain.Report) error {
	for _, r := range reports {
		if err := domain.ValidateVisualizations(r.Visualizations); err != nil {
			return err
		}
	}
	return nil
}
