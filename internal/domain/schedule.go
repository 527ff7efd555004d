package domain

import "time"

// ScheduleConfig is the business-hours and slot-duration table for the
// whole clinic. It is loaded once at process start, passed by value
// into the schedule generator and never mutated at runtime.
type ScheduleConfig struct {
	// BusinessDays are the weekdays eligible for bookings.
	BusinessDays []time.Weekday
	// OpeningHour and ClosingHour bound the working day. Slots start
	// at OpeningHour:00; no slot may start at or after ClosingHour.
	OpeningHour int
	ClosingHour int
	// Durations maps recognized service keys to their slot duration
	// in minutes.
	Durations map[ServiceKey]int
	// DefaultDurationMinutes applies to services without an entry in
	// Durations.
	DefaultDurationMinutes int
}

// DefaultScheduleConfig returns the reference clinic schedule:
// Monday-Friday, 09:00-18:00, 60-minute veterinary slots and
// 30-minute grooming slots.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		BusinessDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		OpeningHour: DefaultOpeningHour,
		ClosingHour: DefaultClosingHour,
		Durations: map[ServiceKey]int{
			ServiceVeterinary: 60,
			ServiceGrooming:   30,
		},
		DefaultDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// IsBusinessDay reports whether the weekday is in the business-day set.
func (c ScheduleConfig) IsBusinessDay(day time.Weekday) bool {
	for _, d := range c.BusinessDays {
		if d == day {
			return true
		}
	}
	return false
}
