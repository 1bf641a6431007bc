package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
)

func TestAvailableSlots(t *testing.T) {
	bookings := []*entity.Booking{
		{Date: "2026-10-20", StartTime: "09:00", ProviderID: "user_1", Status: entity.BookingConfirmed},
		{Date: "2026-10-20", StartTime: "10:00", ProviderID: "user_1", Status: entity.BookingCancelled},
		{Date: "2026-10-20", StartTime: "11:00", ProviderID: "someone", Status: entity.BookingConfirmed},
		{Date: "2026-10-21", StartTime: "12:00", ProviderID: "user_1", Status: entity.BookingConfirmed},
	}

	got := AvailableSlots(bookings, "2026-10-20", "user_1", DefaultTimeSlots)
	assert.NotContains(t, got, "09:00")
	assert.Contains(t, got, "10:00")
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "12:00")
	assert.Len(t, got, len(DefaultTimeSlots)-1)
}

func TestBookableDays(t *testing.T) {
	from := time.Date(2026, 12, 25, 15, 0, 0, 0, time.UTC)
	days := BookableDays(from, BookableDaysAhead)
	require.Len(t, days, 14)
	assert.Equal(t, "2026-12-26", days[0])
	assert.Equal(t, "2027-01-08", days[13])
}

func TestEndTime(t *testing.T) {
	end, err := EndTime("16:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "17:30", end)

	end, err = EndTime("23:30", 60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", end)

	end, err = EndTime("08:15", 0)
	require.NoError(t, err)
	assert.Equal(t, "09:15", end)

	_, err = EndTime("4pm", 60)
	assert.Error(t, err)
}

func TestMonthCalendar(t *testing.T) {
	today := time.Date(2026, 10, 10, 13, 0, 0, 0, time.UTC)
	bookings := []*entity.Booking{
		{Date: "2026-10-15", ProviderID: "t1", Status: entity.BookingRequested},
		{Date: "2026-10-16", ProviderID: "t1", Status: entity.BookingCancelled},
	}

	cal, err := MonthCalendar(2026, time.October, today, "t1", []string{"2026-10-12"}, bookings)
	require.NoError(t, err)
	assert.Equal(t, 3, cal.LeadingBlanks)
	require.Len(t, cal.Days, 31)
	assert.Equal(t, DayPast, cal.Days[8].Status)
	assert.Equal(t, DayAvailable, cal.Days[9].Status)
	assert.Equal(t, DayBlocked, cal.Days[11].Status)
	assert.Equal(t, DayBooked, cal.Days[14].Status)
	assert.Equal(t, DayAvailable, cal.Days[15].Status)

	_, err = MonthCalendar(2026, 13, today, "t1", nil, nil)
	assert.Error(t, err)
}
