package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── export business errors ──

var ErrExportGenerateFail = errors.New("failed to generate export file")

// Shift windows used for calendar events.
const (
	amShiftStartHour = 6
	amShiftEndHour   = 14
	pmShiftStartHour = 14
	pmShiftEndHour   = 22
)

// ExportService renders the resolved duty roster as downloadable files.
// Exports are returned as a bytes.Buffer; the handler layer sets the
// HTTP headers and streams it out.
type ExportService interface {
	// ExportDutyRoster renders a 7-day duty grid as an Excel workbook.
	ExportDutyRoster(ctx context.Context, orgID string, start time.Time) (*bytes.Buffer, string, error)
	// ExportDutyCalendar renders the resolved roster as an ICS feed.
	ExportDutyCalendar(ctx context.Context, orgID string, start time.Time, days int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	dutySvc DutyService
	logger  *zap.Logger
}

// NewExportService creates an ExportService. Duty resolution is delegated
// so exports and the live endpoints can never disagree.
func NewExportService(repo *repository.Repository, dutySvc DutyService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, dutySvc: dutySvc, logger: logger}
}

// ExportDutyRoster renders one week starting at start:
//
//	| Date | Day | AM | PM |
//
// Cells show the resolved assignee, with "(default)" marking slots that
// fell back to the recurring default.
func (s *exportService) ExportDutyRoster(ctx context.Context, orgID string, start time.Time) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Duty Roster"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Food-safety duty — week of %s", start.Format(model.DateOnly)))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	f.SetCellValue(sheetName, "A2", "Date")
	f.SetCellValue(sheetName, "B2", "Day")
	f.SetCellValue(sheetName, "C2", "AM")
	f.SetCellValue(sheetName, "D2", "PM")

	row := 3
	for d := 0; d < 7; d++ {
		date := start.AddDate(0, 0, d)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date.Format(model.DateOnly))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), date.Weekday().String())

		resolved, err := s.dutySvc.ResolveDay(ctx, orgID, date)
		if err != nil {
			return nil, "", err
		}
		for _, r := range resolved {
			col := "C"
			if r.Shift == model.ShiftPM {
				col = "D"
			}
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), rosterCellText(&r))
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("duty_roster_%s.xlsx", start.Format(model.DateOnly))
	return buf, filename, nil
}

// ExportDutyCalendar emits one VEVENT per resolved shift. Unassigned
// slots are skipped rather than published as empty events.
func (s *exportService) ExportDutyCalendar(ctx context.Context, orgID string, start time.Time, days int) (*bytes.Buffer, string, error) {
	if days < 1 || days > 62 {
		days = 7
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//chefos//duty-roster//EN")
	cal.SetName("Food-safety duty roster")

	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		resolved, err := s.dutySvc.ResolveDay(ctx, orgID, date)
		if err != nil {
			return nil, "", err
		}

		for _, r := range resolved {
			if r.UserID == nil {
				continue
			}

			startHour, endHour := amShiftStartHour, amShiftEndHour
			if r.Shift == model.ShiftPM {
				startHour, endHour = pmShiftStartHour, pmShiftEndHour
			}
			eventStart := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, time.UTC)
			eventEnd := time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, time.UTC)

			uid := fmt.Sprintf("duty-%s-%s-%s@chefos", orgID, date.Format(model.DateOnly), r.Shift)
			evt := cal.AddEvent(uid)
			evt.SetCreatedTime(time.Now())
			evt.SetDtStampTime(time.Now())
			evt.SetStartAt(eventStart)
			evt.SetEndAt(eventEnd)
			evt.SetSummary(fmt.Sprintf("Food-safety duty (%s): %s", r.Shift, rosterCellText(&r)))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("duty_calendar_%s.ics", start.Format(model.DateOnly))
	return buf, filename, nil
}

func rosterCellText(r *dto.ResolvedDutyResponse) string {
	if r.UserID == nil {
		return "-"
	}
	name := *r.UserID
	if r.FullName != nil {
		name = *r.FullName
	}
	if r.IsDefault {
		name += " (default)"
	}
	return name
}
