package service

import (
	"fmt"
	"time"

	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	BookableDaysAhead      = 14
	DefaultDurationMinutes = 60
)

var DefaultTimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// AvailableSlots filters out slots already held by the provider on date. The result is
// advisory; creation re-checks the slot.
func AvailableSlots(bookings []*entity.Booking, date, providerID string, slots []string) []string {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Date == date && b.ProviderID == providerID && b.HoldsSlot() {
			taken[b.StartTime] = true
		}
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if !taken[s] {
			out = append(out, s)
		}
	}
	return out
}

// BookableDays lists the n calendar days after from, formatted as dates.
func BookableDays(from time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		days = append(days, from.AddDate(0, 0, i).Format(DateLayout))
	}
	return days
}

// EndTime adds duration to an HH:MM start, wrapping past midnight.
func EndTime(start string, durationMinutes int) (string, error) {
	t, err := time.Parse(ClockLayout, start)
	if err != nil {
		return "", errors.BadRequest("Start time must be formatted as HH:MM", err)
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return t.Add(time.Duration(durationMinutes) * time.Minute).Format(ClockLayout), nil
}

type DayStatus string

const (
	DayPast      DayStatus = "past"
	DayBlocked   DayStatus = "blocked"
	DayBooked    DayStatus = "booked"
	DayAvailable DayStatus = "available"
)

type CalendarDay struct {
	Day    int       `json:"day"`
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

// Calendar is a Monday-first month grid. LeadingBlanks is the number of empty cells
// before the first day.
type Calendar struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

func MonthCalendar(year int, month time.Month, today time.Time, providerID string, blockedDates []string, bookings []*entity.Booking) (*Calendar, error) {
	if month < time.January || month > time.December {
		return nil, errors.BadRequest(fmt.Sprintf("Invalid month %d", month), nil)
	}

	blocked := make(map[string]bool, len(blockedDates))
	for _, d := range blockedDates {
		blocked[d] = true
	}
	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.ProviderID == providerID && b.HoldsSlot() {
			booked[b.Date] = true
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := &Calendar{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
		Days:          make([]CalendarDay, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		ds := date.Format(DateLayout)

		status := DayAvailable
		switch {
		case date.Before(midnight):
			status = DayPast
		case blocked[ds]:
			status = DayBlocked
		case booked[ds]:
			status = DayBooked
		}
		cal.Days = append(cal.Days, CalendarDay{Day: d, Date: ds, Status: status})
	}
	return cal, nil
}
