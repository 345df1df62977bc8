package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
)

// Content types of rendered reports
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	bookingReportHeader     = []string{"date", "time", "courtroom", "caseTitle", "status", "lawyerId", "clientId"}
	appointmentReportHeader = []string{"date", "time", "description", "status", "lawyerId", "clientId"}
)

// ReportFile rendered report ready to be served as an attachment
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService reservation reports sorted by date, then catalog slot order
type ReportService interface {
	Bookings(ctx context.Context, caller Caller, req *dto.BookingListRequest) ([]dto.BookingResponse, error)
	Appointments(ctx context.Context, caller Caller, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error)
	ExportBookings(ctx context.Context, caller Caller, req *dto.BookingListRequest, format string) (*ReportFile, error)
	ExportAppointments(ctx context.Context, caller Caller, req *dto.AppointmentListRequest, format string) (*ReportFile, error)
}

type reportService struct {
	repo    *repository.Repository
	catalog *slots.Catalog
	logger  *zap.Logger
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, catalog *slots.Catalog, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, catalog: catalog, logger: logger}
}

// ────────────────────── rows ──────────────────────

func (s *reportService) Bookings(ctx context.Context, caller Caller, req *dto.BookingListRequest) ([]dto.BookingResponse, error) {
	filter, err := scopeBookingFilter(caller, req)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		s.logger.Error("load booking report failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		rows = append(rows, toBookingResponse(&bookings[i]))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return s.before(rows[i].Date, rows[i].Time, rows[j].Date, rows[j].Time)
	})
	return rows, nil
}

func (s *reportService) Appointments(ctx context.Context, caller Caller, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error) {
	filter, err := scopeAppointmentFilter(caller, req)
	if err != nil {
		return nil, err
	}
	appts, err := s.repo.Appointment.List(ctx, filter)
	if err != nil {
		s.logger.Error("load appointment report failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		rows = append(rows, toAppointmentResponse(&appts[i]))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return s.before(rows[i].Date, rows[i].Time, rows[j].Date, rows[j].Time)
	})
	return rows, nil
}

func (s *reportService) before(dateA, timeA, dateB, timeB string) bool {
	if dateA != dateB {
		return dateA < dateB
	}
	return s.catalog.Less(timeA, timeB)
}

// ────────────────────── exports ──────────────────────

func (s *reportService) ExportBookings(ctx context.Context, caller Caller, req *dto.BookingListRequest, format string) (*ReportFile, error) {
	rows, err := s.Bookings(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Date, r.Time, r.Courtroom, r.CaseTitle, r.Status, r.LawyerID, r.ClientID})
	}
	return s.render("bookings", "Bookings", req.From, req.To, format, bookingReportHeader, records)
}

func (s *reportService) ExportAppointments(ctx context.Context, caller Caller, req *dto.AppointmentListRequest, format string) (*ReportFile, error) {
	rows, err := s.Appointments(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Date, r.Time, r.Description, r.Status, r.LawyerID, r.ClientID})
	}
	return s.render("appointments", "Appointments", req.From, req.To, format, appointmentReportHeader, records)
}

func (s *reportService) render(kind, sheet, from, to, format string, header []string, records [][]string) (*ReportFile, error) {
	base := reportFilename(kind, from, to)
	switch format {
	case dto.ReportFormatCSV:
		content, err := RenderCSV(header, records)
		if err != nil {
			s.logger.Error("render csv failed", zap.String("report", kind), zap.Error(err))
			return nil, err
		}
		return &ReportFile{Filename: base + ".csv", ContentType: ContentTypeCSV, Content: content}, nil
	case dto.ReportFormatXLSX:
		content, err := RenderXLSX(sheet, header, records)
		if err != nil {
			s.logger.Error("render xlsx failed", zap.String("report", kind), zap.Error(err))
			return nil, err
		}
		return &ReportFile{Filename: base + ".xlsx", ContentType: ContentTypeXLSX, Content: content}, nil
	default:
		return nil, invalidf("unsupported report format %q", format)
	}
}

// reportFilename e.g. bookings-2025-01-01-to-2025-01-31
func reportFilename(kind, from, to string) string {
	parts := []string{kind}
	switch {
	case from != "" && to != "":
		parts = append(parts, from, "to", to)
	case from != "":
		parts = append(parts, "from", from)
	case to != "":
		parts = append(parts, "until", to)
	default:
		parts = append(parts, "all")
	}
	return slug.Make(strings.Join(parts, " "))
}

// RenderCSV writes header plus records; fields containing quotes, commas or
// newlines are double-quote escaped.
func RenderCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderXLSX one sheet with a bold header row
func RenderXLSX(sheet string, header []string, records [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	_ = f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for i, rec := range records {
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheet, "A", lastCol, 18)
	_ = f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: false, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
