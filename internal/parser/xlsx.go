package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"kollegebot/internal/domain"
)

// XLSXParser reads workbooks in the layout published by the college office.
//
// Schedule sheet: row 1 holds group names, one per column; each following
// row is one period, cells formatted as "Subject / Teacher / Room" (teacher
// and room optional).
//
// Substitutions sheet: one entry per row with columns
// group | period | subject | teacher | room.
type XLSXParser struct{}

// NewXLSXParser creates a workbook parser
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// ParseSchedule parses the first worksheet into group timetables
func (p *XLSXParser) ParseSchedule(r io.Reader) ([]domain.GroupSchedule, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("schedule sheet has no header row")
	}

	schedule := make([]domain.GroupSchedule, 0, len(rows[0]))
	for col, group := range rows[0] {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		gs := domain.GroupSchedule{Group: group}
		for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
			if col >= len(rows[rowIdx]) {
				continue
			}
			cell := strings.TrimSpace(rows[rowIdx][col])
			if cell == "" {
				continue
			}
			period := parsePeriodCell(rowIdx, cell)
			gs.Periods = append(gs.Periods, period)
		}

		schedule = append(schedule, gs)
	}

	if len(schedule) == 0 {
		return nil, fmt.Errorf("schedule sheet has no groups")
	}

	return schedule, nil
}

// ParseSubstitutions parses the first worksheet into substitution entries
func (p *XLSXParser) ParseSubstitutions(r io.Reader) ([]domain.Substitution, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	var subs []domain.Substitution
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}

		group := strings.TrimSpace(row[0])
		subject := strings.TrimSpace(row[2])
		if group == "" || subject == "" {
			continue
		}

		period, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad period number %q: %w", i+1, row[1], err)
		}

		sub := domain.Substitution{Group: group, Period: period, Subject: subject}
		if len(row) > 3 {
			sub.Teacher = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			sub.Room = strings.TrimSpace(row[4])
		}

		subs = append(subs, sub)
	}

	if len(subs) == 0 {
		return nil, fmt.Errorf("substitutions sheet has no entries")
	}

	return subs, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func parsePeriodCell(number int, cell string) domain.Period {
	period := domain.Period{Number: number, Subject: cell}

	parts := strings.Split(cell, "/")
	if len(parts) > 1 {
		period.Subject = strings.TrimSpace(parts[0])
		period.Teacher = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		period.Room = strings.TrimSpace(parts[2])
	}

	return period
}
