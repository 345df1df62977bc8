package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// ── case module errors ──

var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrCaseNumberTaken = errors.New("case number already exists")
)

const (
	caseNumberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	caseNumberLength   = 8

	hearingPlaceholderTime      = "11:00 AM"
	consultationPlaceholderTime = "10:00 AM"
)

// CaseService legal case records
type CaseService interface {
	Create(ctx context.Context, req *dto.CreateCaseRequest, lawyerID string) (*dto.CreateCaseResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*dto.CaseResponse, error)
	List(ctx context.Context, caller Caller, req *dto.CaseListRequest) (*dto.PageResponse[dto.CaseResponse], error)
}

type caseService struct {
	repo         *repository.Repository
	catalog      *slots.Catalog
	bookings     BookingService
	appointments AppointmentService
	logger       *zap.Logger
}

// NewCaseService creates a CaseService; calendar placeholders go through the
// regular booking and appointment commands.
func NewCaseService(
	repo *repository.Repository,
	catalog *slots.Catalog,
	bookings BookingService,
	appointments AppointmentService,
	logger *zap.Logger,
) CaseService {
	return &caseService{
		repo:         repo,
		catalog:      catalog,
		bookings:     bookings,
		appointments: appointments,
		logger:       logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *caseService) Create(ctx context.Context, req *dto.CreateCaseRequest, lawyerID string) (*dto.CreateCaseResponse, error) {
	c := &model.LegalCase{
		CaseNumber: strings.TrimSpace(req.CaseNumber),
		Title:      strings.TrimSpace(req.Title),
		Court:      strings.TrimSpace(req.Court),
		Date:       strings.TrimSpace(req.Date),
		Judge:      req.Judge,
		LawyerID:   lawyerID,
		ClientIDs:  dedupe(req.ClientIDs),
	}

	if err := requireFields("title", c.Title, "court", c.Court, "date", c.Date); err != nil {
		return nil, err
	}
	if _, err := slots.ParseDate(c.Date); err != nil {
		return nil, invalidf("date must be a valid YYYY-MM-DD date")
	}
	for _, id := range c.ClientIDs {
		if err := requireRole(ctx, s.repo.User, id, model.RoleClient); err != nil {
			return nil, err
		}
	}

	if c.CaseNumber == "" {
		suffix, err := gonanoid.Generate(caseNumberAlphabet, caseNumberLength)
		if err != nil {
			return nil, err
		}
		c.CaseNumber = "CASE-" + suffix
	}

	if err := s.repo.Case.Create(ctx, c); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrCaseNumberTaken
		}
		s.logger.Error("create case failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("case created", zap.String("case_id", c.CaseID), zap.String("case_number", c.CaseNumber))

	return &dto.CreateCaseResponse{
		Case:          toCaseResponse(c),
		CalendarNotes: s.placeCalendarEntries(ctx, c),
	}, nil
}

// placeCalendarEntries books the hearing and one consultation per client.
// Each entry is conflict-checked and never replaces an existing reservation;
// the outcome of every attempt is reported as a note.
func (s *caseService) placeCalendarEntries(ctx context.Context, c *model.LegalCase) []string {
	notes := []string{}

	switch {
	case len(c.ClientIDs) == 0:
		notes = append(notes, "hearing not booked: case has no clients")
	case !s.catalog.Contains(hearingPlaceholderTime):
		notes = append(notes, fmt.Sprintf("hearing not booked: %s is not a bookable slot", hearingPlaceholderTime))
	default:
		_, err := s.bookings.Create(ctx, &dto.CreateBookingRequest{
			ClientID:  c.ClientIDs[0],
			Courtroom: c.Court,
			Date:      c.Date,
			Time:      hearingPlaceholderTime,
			CaseTitle: c.Title,
		}, c.LawyerID)
		notes = append(notes, placementNote("hearing", c.Court, c.Date, hearingPlaceholderTime, err))
	}

	if len(c.ClientIDs) > 0 && !s.catalog.Contains(consultationPlaceholderTime) {
		return append(notes, fmt.Sprintf("consultations not booked: %s is not a bookable slot", consultationPlaceholderTime))
	}
	for _, clientID := range c.ClientIDs {
		_, err := s.appointments.Create(ctx, &dto.CreateAppointmentRequest{
			LawyerID:    c.LawyerID,
			Date:        c.Date,
			Time:        consultationPlaceholderTime,
			Description: fmt.Sprintf("Case %s scheduled", c.Title),
		}, clientID)
		notes = append(notes, placementNote("consultation for client "+clientID, "", c.Date, consultationPlaceholderTime, err))
	}

	return notes
}

func placementNote(what, where, date, label string, err error) string {
	at := date + " " + label
	if where != "" {
		at = where + " " + at
	}
	switch {
	case err == nil:
		return fmt.Sprintf("%s booked: %s (pending)", what, at)
	case errors.Is(err, ErrSlotConflict):
		return fmt.Sprintf("%s not booked: %s is already reserved", what, at)
	case errors.Is(err, ErrInvalidRequest):
		return fmt.Sprintf("%s not booked: %s", what, strings.TrimPrefix(err.Error(), ErrInvalidRequest.Error()+": "))
	default:
		return fmt.Sprintf("%s not booked: internal error", what)
	}
}

// ────────────────────── GetByID ──────────────────────

// GetByID lawyers only see their own cases; anything else reads as not found
func (s *caseService) GetByID(ctx context.Context, caller Caller, id string) (*dto.CaseResponse, error) {
	if !isUUID(id) {
		return nil, ErrCaseNotFound
	}
	c, err := s.repo.Case.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		s.logger.Error("query case failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if caller.Role == model.RoleLawyer && c.LawyerID != caller.UserID {
		return nil, ErrCaseNotFound
	}
	if caller.Role == model.RoleClient && !containsString(c.ClientIDs, caller.UserID) {
		return nil, ErrCaseNotFound
	}

	resp := toCaseResponse(c)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *caseService) List(ctx context.Context, caller Caller, req *dto.CaseListRequest) (*dto.PageResponse[dto.CaseResponse], error) {
	lawyerID := ""
	if caller.Role != model.RoleAdmin {
		lawyerID = caller.UserID
	}
	cases, total, err := s.repo.Case.List(ctx, lawyerID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list cases failed", zap.Error(err))
		return nil, err
	}

	list := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		list = append(list, toCaseResponse(&cases[i]))
	}
	return &dto.PageResponse[dto.CaseResponse]{
		List:     list,
		Total:    total,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
	}, nil
}

func toCaseResponse(c *model.LegalCase) dto.CaseResponse {
	clientIDs := []string(c.ClientIDs)
	if clientIDs == nil {
		clientIDs = []string{}
	}
	return dto.CaseResponse{
		ID:         c.CaseID,
		CaseNumber: c.CaseNumber,
		Title:      c.Title,
		Court:      c.Court,
		Date:       c.Date,
		Judge:      c.Judge,
		LawyerID:   c.LawyerID,
		ClientIDs:  clientIDs,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
