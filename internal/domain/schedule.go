package domain

import (
	"fmt"
	"sort"
)

// Period is a single lesson slot in a group's timetable
type Period struct {
	Number  int    `json:"number"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
}

// Readable returns a display line for the period
func (p Period) Readable() string {
	line := fmt.Sprintf("%d. %s", p.Number, p.Subject)
	if p.Teacher != "" {
		line += " — " + p.Teacher
	}
	if p.Room != "" {
		line += fmt.Sprintf(" (ауд. %s)", p.Room)
	}
	return line
}

// GroupSchedule is one group's timetable
type GroupSchedule struct {
	Group   string   `json:"group"`
	Periods []Period `json:"periods"`
}

// Substitution is a single substitution entry for a date
type Substitution struct {
	Group   string `json:"group"`
	Period  int    `json:"period"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
}

// FindGroup returns the timetable for the named group, if present
func FindGroup(schedule []GroupSchedule, group string) (GroupSchedule, bool) {
	for _, gs := range schedule {
		if gs.Group == group {
			return gs, true
		}
	}
	return GroupSchedule{}, false
}

// MergeDay applies the date's substitutions for a group to its timetable.
// A substitution replaces the period with the same number; substitutions for
// period numbers missing from the timetable are appended as extra periods.
func MergeDay(periods []Period, subs []Substitution, group string) []Period {
	merged := make([]Period, len(periods))
	copy(merged, periods)

	for _, sub := range subs {
		if sub.Group != group {
			continue
		}

		replacement := Period{
			Number:  sub.Period,
			Subject: sub.Subject,
			Teacher: sub.Teacher,
			Room:    sub.Room,
		}

		replaced := false
		for i := range merged {
			if merged[i].Number == sub.Period {
				merged[i] = replacement
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, replacement)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Number < merged[j].Number
	})

	return merged
}
