package client

import (
	"math"
	"sort"
	"time"

	"github.com/fadilmartias/intern-coach/internal/model"
)

// Everything in this file is a pure function of the fetched collection.
// Nothing derived is cached or persisted; callers recompute on every refresh.

// Summary holds the headline figures for the dashboard view.
type Summary struct {
	Total      int
	Applied    int
	Interviews int
	Offers     int
	Rejected   int

	// Rates are percentages rounded to one decimal, 0 when Total is 0.
	InterviewRate float64
	OfferRate     float64

	// AvgResponseDays is the mean number of days between the application
	// date and now, over records that moved past Applied.
	AvgResponseDays int

	// ThisWeek counts records submitted since the most recent Monday.
	ThisWeek int
}

// Summarize computes the headline figures relative to now.
func Summarize(internships []model.Internship, now time.Time) Summary {
	s := Summary{Total: len(internships)}

	weekStart := WeekStart(now)
	var responseDays, responded int
	for _, rec := range internships {
		switch rec.Status {
		case model.StatusApplied:
			s.Applied++
		case model.StatusInterview:
			s.Interviews++
		case model.StatusOffer:
			s.Offers++
		case model.StatusRejected:
			s.Rejected++
		}

		if rec.Status != model.StatusApplied {
			if d, ok := parseDeadline(rec.Deadline); ok {
				responseDays += int(math.Floor(now.Sub(d).Hours() / 24))
				responded++
			}
		}

		if t, ok := appliedAt(rec); ok && !t.Before(weekStart) {
			s.ThisWeek++
		}
	}

	if s.Total > 0 {
		s.InterviewRate = round1(float64(s.Interviews) / float64(s.Total) * 100)
		s.OfferRate = round1(float64(s.Offers) / float64(s.Total) * 100)
	}
	if responded > 0 {
		s.AvgResponseDays = int(math.Round(float64(responseDays) / float64(responded)))
	}
	return s
}

// WeekStart returns local midnight of the Monday of t's week. Sundays belong
// to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	diff := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -diff)
}

// GoalProgressPercent maps this week's count onto a configured goal,
// capped at 100.
func GoalProgressPercent(thisWeek, goal int) int {
	if goal < 1 {
		goal = 1
	}
	pct := int(math.Round(float64(thisWeek) / float64(goal) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// PlatformStats is one row of the per-platform breakdown.
type PlatformStats struct {
	Platform  string
	Count     int
	OfferRate float64
}

// PlatformBreakdown counts records and offer rates per platform over the
// fixed platform list. Records without a platform land on Other; platforms
// with no records report a 0 rate.
func PlatformBreakdown(internships []model.Internship) []PlatformStats {
	counts := make(map[string]int)
	offers := make(map[string]int)
	for _, rec := range internships {
		p := rec.PlatformOrOther()
		counts[p]++
		if rec.Status == model.StatusOffer {
			offers[p]++
		}
	}

	stats := make([]PlatformStats, 0, len(model.Platforms))
	for _, p := range model.Platforms {
		row := PlatformStats{Platform: p, Count: counts[p]}
		if row.Count > 0 {
			row.OfferRate = round1(float64(offers[p]) / float64(row.Count) * 100)
		}
		stats = append(stats, row)
	}
	return stats
}

// TimelineBucket is one label of the chronological grouping, in order of
// first appearance in the collection.
type TimelineBucket struct {
	Label string
	Count int
}

// CountByDay groups records by the calendar day of their application date.
func CountByDay(internships []model.Internship) []TimelineBucket {
	return countBy(internships, "Jan 2, 2006")
}

// CountByMonth groups records by the calendar month of their application date.
func CountByMonth(internships []model.Internship) []TimelineBucket {
	return countBy(internships, "January 2006")
}

func countBy(internships []model.Internship, layout string) []TimelineBucket {
	index := make(map[string]int)
	var buckets []TimelineBucket
	for _, rec := range internships {
		d, ok := parseDeadline(rec.Deadline)
		if !ok {
			continue
		}
		label := d.Format(layout)
		if i, seen := index[label]; seen {
			buckets[i].Count++
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, TimelineBucket{Label: label, Count: 1})
	}
	return buckets
}

// Recent returns up to n records, newest first by submission time.
func Recent(internships []model.Internship, n int) []model.Internship {
	sorted := make([]model.Internship, len(internships))
	copy(sorted, internships)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := appliedAt(sorted[i])
		tj, _ := appliedAt(sorted[j])
		return ti.After(tj)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// appliedAt is the submission instant: createdAt when present and parsable,
// the application date otherwise.
func appliedAt(rec model.Internship) (time.Time, bool) {
	if rec.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			return t, true
		}
	}
	return parseDeadline(rec.Deadline)
}

func parseDeadline(deadline string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", deadline, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
