// Package timewin resolves natural time-window expressions ("last week",
// "last month", a day count) into a recency cutoff and filters scanned
// projects against it.
package timewin

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/pkg/scan"
)

// Window is a resolved recency cutoff. Projects modified before Cutoff fall
// outside the window.
type Window struct {
	Cutoff time.Time `json:"cutoff"`
	Label  string    `json:"label"`
}

// maxWindowDays is the largest day count expressible as a time.Duration
// (about 292 years of nanoseconds).
const maxWindowDays = 106751

// All returns the window covering all time.
func All() Window {
	return Window{Cutoff: time.Unix(0, 0).UTC(), Label: "all time"}
}

// Resolve parses a time-window expression relative to now. An empty
// expression covers all time; an integer N means the last N days; the
// phrases "last week", "last month" and "last year" use 7 days, one calendar
// month and one calendar year respectively. Anything else is a user input
// error, reported verbatim and never silently defaulted.
func Resolve(expr string, now time.Time) (Window, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return All(), nil
	}

	if days, err := strconv.Atoi(trimmed); err == nil {
		if days < 0 {
			return Window{}, errors.InvalidWindow(expr)
		}
		label := fmt.Sprintf("last %d days", days)
		// Day counts beyond the representable duration would overflow and
		// push the cutoff into the future; they cover all time anyway.
		if days > maxWindowDays {
			return Window{Cutoff: time.Unix(0, 0).UTC(), Label: label}, nil
		}
		return Window{
			Cutoff: now.Add(-time.Duration(days) * 24 * time.Hour),
			Label:  label,
		}, nil
	}

	switch strings.ToLower(trimmed) {
	case "last week":
		return Window{
			Cutoff: now.Add(-7 * 24 * time.Hour),
			Label:  "last week",
		}, nil
	case "last month":
		return Window{Cutoff: addMonthsClamped(now, -1), Label: "last month"}, nil
	case "last year":
		return Window{Cutoff: addYearsClamped(now, -1), Label: "last year"}, nil
	}

	return Window{}, errors.InvalidWindow(expr)
}

// addMonthsClamped shifts t by the given number of calendar months, clamping
// the day-of-month to the target month's last day instead of letting the
// date overflow (March 31 minus one month is the last day of February, not
// March 2-3 as time.AddDate would produce).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	firstOfTarget := time.Date(year, month+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addYearsClamped shifts t by whole years with the same day clamping
// (February 29 minus one year is February 28).
func addYearsClamped(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	year += years

	if last := daysIn(year, month, t.Location()); day > last {
		day = last
	}

	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Filter returns the projects inside the window, most recently modified
// first. Ties in modification time break by (owner, repo) lexical order so
// output is reproducible.
func Filter(projects []scan.Project, w Window) []scan.Project {
	var result []scan.Project
	for _, p := range projects {
		if p.LastModified.Before(w.Cutoff) {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].LastModified.Equal(result[j].LastModified) {
			return result[i].LastModified.After(result[j].LastModified)
		}
		if result[i].Owner != result[j].Owner {
			return result[i].Owner < result[j].Owner
		}
		return result[i].Repo < result[j].Repo
	})

	return result
}
