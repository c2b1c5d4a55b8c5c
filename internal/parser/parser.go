package parser

import (
	"io"

	"kollegebot/internal/domain"
)

// Parser turns an uploaded workbook into schedule or substitution records.
// Any failure is treated uniformly by callers: the stored content is left
// untouched and the user gets a generic failure screen.
type Parser interface {
	ParseSchedule(r io.Reader) ([]domain.GroupSchedule, error)
	ParseSubstitutions(r io.Reader) ([]domain.Substitution, error)
}
