package service

import (
	"errors"
	"fmt"
	"io"
	"time"

	"kollegebot/internal/domain"
	"kollegebot/internal/parser"
	"kollegebot/internal/repository"
)

var (
	// ErrNoSchedule means no schedule snapshot has been uploaded yet
	ErrNoSchedule = errors.New("schedule not uploaded")
	// ErrGroupMissing means the snapshot has no timetable for the group
	ErrGroupMissing = errors.New("group missing in schedule")
)

// ContentService owns the schedule and substitutions snapshots
type ContentService struct {
	repo   repository.ContentRepository
	parser parser.Parser
}

// NewContentService creates a new content service
func NewContentService(repo repository.ContentRepository, p parser.Parser) *ContentService {
	return &ContentService{repo: repo, parser: p}
}

// Schedule returns the current schedule snapshot, empty when not uploaded
func (s *ContentService) Schedule() ([]domain.GroupSchedule, error) {
	return s.repo.GetSchedule()
}

// UploadSchedule parses a workbook and replaces the schedule snapshot.
// On any parse failure the stored snapshot is left untouched.
func (s *ContentService) UploadSchedule(r io.Reader) (int, error) {
	schedule, err := s.parser.ParseSchedule(r)
	if err != nil {
		return 0, fmt.Errorf("parse schedule: %w", err)
	}

	if err := s.repo.ReplaceSchedule(schedule); err != nil {
		return 0, fmt.Errorf("replace schedule: %w", err)
	}

	return len(schedule), nil
}

// DeleteSchedule clears the schedule snapshot.
// Returns false without touching storage when it is already empty.
func (s *ContentService) DeleteSchedule() (bool, error) {
	schedule, err := s.repo.GetSchedule()
	if err != nil {
		return false, err
	}
	if len(schedule) == 0 {
		return false, nil
	}

	if err := s.repo.DeleteSchedule(); err != nil {
		return false, err
	}
	return true, nil
}

// Substitutions returns the entries stored for the date, empty when absent
func (s *ContentService) Substitutions(date time.Time) ([]domain.Substitution, error) {
	return s.repo.GetSubstitutions(domain.CallbackDate(date))
}

// UploadSubstitutions parses a workbook and replaces the date's entries.
// On any parse failure the stored entries are left untouched.
func (s *ContentService) UploadSubstitutions(date time.Time, r io.Reader) (int, error) {
	subs, err := s.parser.ParseSubstitutions(r)
	if err != nil {
		return 0, fmt.Errorf("parse substitutions: %w", err)
	}

	if err := s.repo.ReplaceSubstitutions(domain.CallbackDate(date), subs); err != nil {
		return 0, fmt.Errorf("replace substitutions: %w", err)
	}

	return len(subs), nil
}

// DeleteSubstitutions clears the date's entries.
// Returns false without touching storage when nothing is stored.
func (s *ContentService) DeleteSubstitutions(date time.Time) (bool, error) {
	key := domain.CallbackDate(date)

	subs, err := s.repo.GetSubstitutions(key)
	if err != nil {
		return false, err
	}
	if len(subs) == 0 {
		return false, nil
	}

	if err := s.repo.DeleteSubstitutions(key); err != nil {
		return false, err
	}
	return true, nil
}

// ScheduleFor returns the group's timetable for a date with that date's
// substitutions merged in. The second result reports whether substitutions
// were uploaded for the date at all: "no substitutions" is shown distinctly
// from an empty timetable.
func (s *ContentService) ScheduleFor(group string, date time.Time) ([]domain.Period, bool, error) {
	schedule, err := s.repo.GetSchedule()
	if err != nil {
		return nil, false, err
	}
	if len(schedule) == 0 {
		return nil, false, ErrNoSchedule
	}

	gs, ok := domain.FindGroup(schedule, group)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrGroupMissing, group)
	}

	subs, err := s.repo.GetSubstitutions(domain.CallbackDate(date))
	if err != nil {
		return nil, false, err
	}

	return domain.MergeDay(gs.Periods, subs, group), len(subs) > 0, nil
}
