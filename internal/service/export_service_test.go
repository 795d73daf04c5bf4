package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
)

func setupTestExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	r := repos.toRepository()
	logger := zap.NewNop()
	dutySvc := NewDutyService(r, logger)
	svc := NewExportService(r, dutySvc, logger)
	return svc, repos
}

func seedRoster(t *testing.T, repos *testRepos) {
	t.Helper()
	seedDutyUsers(repos)
	dutySvc := NewDutyService(repos.toRepository(), zap.NewNop())
	ctx := context.Background()

	if _, err := dutySvc.AssignDuty(ctx, "org-1", "user-ana", &dto.AssignDutyRequest{
		Shift: model.ShiftAM, UserID: "user-ana",
	}); err != nil {
		t.Fatalf("assign default: %v", err)
	}
	if _, err := dutySvc.AssignDuty(ctx, "org-1", "user-ana", &dto.AssignDutyRequest{
		Shift: model.ShiftPM, UserID: "user-ben", DutyDate: strPtr("2026-03-04"),
	}); err != nil {
		t.Fatalf("assign override: %v", err)
	}
}

func TestExportDutyRoster(t *testing.T) {
	svc, repos := setupTestExportService()
	seedRoster(t, repos)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	buf, filename, err := svc.ExportDutyRoster(context.Background(), "org-1", start)
	if err != nil {
		t.Fatalf("ExportDutyRoster: %v", err)
	}
	if filename != "duty_roster_2026-03-02.xlsx" {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("exported workbook must open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Duty Roster")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// title + header + 7 day rows
	if len(rows) != 9 {
		t.Fatalf("expected 9 rows, got %d", len(rows))
	}

	// Default resolution marked as such in every AM cell.
	firstDay := rows[2]
	if firstDay[0] != "2026-03-02" {
		t.Errorf("expected first data row 2026-03-02, got %s", firstDay[0])
	}
	if firstDay[2] != "Ana (default)" {
		t.Errorf("expected AM cell 'Ana (default)', got %q", firstDay[2])
	}

	// Wednesday PM carries the override without the default marker.
	wednesday := rows[4]
	if wednesday[3] != "Ben" {
		t.Errorf("expected PM override cell 'Ben', got %q", wednesday[3])
	}
}

func TestExportDutyCalendar(t *testing.T) {
	svc, repos := setupTestExportService()
	seedRoster(t, repos)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	buf, filename, err := svc.ExportDutyCalendar(context.Background(), "org-1", start, 7)
	if err != nil {
		t.Fatalf("ExportDutyCalendar: %v", err)
	}
	if filename != "duty_calendar_2026-03-02.ics" {
		t.Errorf("unexpected filename %q", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Fatal("output must be a VCALENDAR")
	}
	// 7 AM defaults + 1 PM override.
	if got := strings.Count(content, "BEGIN:VEVENT"); got != 8 {
		t.Errorf("expected 8 events, got %d", got)
	}
	if !strings.Contains(content, "Ana (default)") {
		t.Error("default assignee must appear in event summaries")
	}
	if !strings.Contains(content, "duty-org-1-2026-03-04-pm@chefos") {
		t.Error("override event UID missing")
	}
}

func TestExportDutyCalendar_EmptyRosterHasNoEvents(t *testing.T) {
	svc, _ := setupTestExportService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	buf, _, err := svc.ExportDutyCalendar(context.Background(), "org-1", start, 7)
	if err != nil {
		t.Fatalf("ExportDutyCalendar: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("unassigned roster must emit no events")
	}
}
