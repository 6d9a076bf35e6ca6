package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"venuecrew/backend/internal/repository"
)

// ── export business errors ──

var (
	ErrExportNoShifts     = errors.New("no shifts in the selected range")
	ErrExportGenerateFail = errors.New("generating the Excel file failed")
)

// ExportService renders rosters as downloadable files.
//
// The buffer is returned to the handler, which sets the response headers
// and streams it out.
type ExportService interface {
	// ExportRoster writes every shift in [start, end] for the optional
	// venue, one row per assignment, to an .xlsx workbook.
	ExportRoster(ctx context.Context, venueID string, start, end time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportRoster(ctx context.Context, venueID string, start, end time.Time) (*bytes.Buffer, string, error) {
	shifts, err := s.repo.Shift.ListInRange(ctx, venueID, start, end)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrExportNoShifts
	}

	venueNames := map[string]string{}
	staffNames := map[string]string{}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Roster"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := []string{"Date", "Venue", "Start", "End", "Event", "Staff", "Role", "Lead", "On Call", "Tip"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, title)
	}

	row := 2
	for i := range shifts {
		shift := &shifts[i]

		venueName, ok := venueNames[shift.VenueID]
		if !ok {
			venueName = shift.VenueID
			if venue, err := s.repo.Venue.GetByID(ctx, shift.VenueID); err == nil {
				venueName = venue.Name
			}
			venueNames[shift.VenueID] = venueName
		}

		assignments, err := s.repo.Assignment.ListByShift(ctx, shift.ShiftID)
		if err != nil {
			s.logger.Error("list shift assignments failed", zap.Error(err))
			return nil, "", err
		}

		for _, a := range assignments {
			staffName, ok := staffNames[a.StaffID]
			if !ok {
				staffName = a.StaffID
				if member, err := s.repo.Staff.GetByID(ctx, a.StaffID); err == nil {
					staffName = member.Name
				}
				staffNames[a.StaffID] = staffName
			}

			lead := ""
			if a.IsLead {
				lead = "yes"
			}
			onCall := ""
			if a.IsOnCall {
				onCall = "yes"
			}
			tip := ""
			if shift.TipsPublished {
				tip = a.TipAmount.StringFixed(2)
			}

			values := []interface{}{
				shift.ShiftDate.Format("2006-01-02"),
				venueName,
				shift.StartTime,
				shift.EndTime,
				shift.EventName,
				staffName,
				a.Role,
				lead,
				onCall,
				tip,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheetName, cell, v)
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("roster_%s_%s.xlsx", start.Format("20060102"), end.Format("20060102"))
	return &buf, filename, nil
}
