package search

import (
	"strconv"
	"time"

	"achaperto/internal/domain/entity"
)

// ClosingTime derives today's closing time from the provider's opening hours.
// now must already be in the deployment's time zone.
//
//   - a period for today with a close time gives "HH:MM"
//   - a period for today without a close time gives "24h" unless open_now is false
//   - open_now with no period for today gives "24h"
//   - anything else, including malformed data, gives "Consulte"
func ClosingTime(hours *entity.OpeningHours, now time.Time) (closing string) {
	defer func() {
		if recover() != nil {
			closing = entity.ClosingTimeAskPlace
		}
	}()

	if hours == nil {
		return entity.ClosingTimeAskPlace
	}

	if period, ok := periodForToday(hours.Periods, now); ok {
		if period.Close == nil {
			if hours.OpenNow == nil || *hours.OpenNow {
				return entity.ClosingTimeAllDay
			}

			return entity.ClosingTimeAskPlace
		}

		formatted, valid := formatClock(period.Close.Time)
		if !valid {
			return entity.ClosingTimeAskPlace
		}

		return formatted
	}

	if hours.OpenNow != nil && *hours.OpenNow {
		return entity.ClosingTimeAllDay
	}

	return entity.ClosingTimeAskPlace
}

// periodForToday prefers the period that is open at now (including one that started
// yesterday and closes after midnight), then the first period opening today.
func periodForToday(periods []entity.OpeningPeriod, now time.Time) (entity.OpeningPeriod, bool) {
	today := now.Weekday()
	clock := now.Format("1504")

	var (
		first    entity.OpeningPeriod
		hasFirst bool
	)

	for _, period := range periods {
		switch {
		case period.Open.Day == today:
			if period.Open.Time <= clock && (period.Close == nil || period.Close.Day != today || clock < period.Close.Time) {
				return period, true
			}
			if !hasFirst {
				first, hasFirst = period, true
			}
		case period.Close != nil && period.Close.Day == today && clock < period.Close.Time:
			return period, true
		}
	}

	return first, hasFirst
}

// formatClock turns "2200" into "22:00".
func formatClock(hhmm string) (string, bool) {
	if len(hhmm) != 4 {
		return "", false
	}

	hours, err := strconv.Atoi(hhmm[:2])
	if err != nil || hours < 0 || hours > 24 {
		return "", false
	}

	minutes, err := strconv.Atoi(hhmm[2:])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", false
	}

	return hhmm[:2] + ":" + hhmm[2:], true
}

// Zone returns the fixed-offset zone used for opening hours.
func Zone(utcOffset time.Duration) *time.Location {
	return time.FixedZone("UTC"+formatOffset(utcOffset), int(utcOffset.Seconds()))
}

func formatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset.Hours())
	minutes := int(offset.Minutes()) % 60
	if minutes == 0 {
		return sign + strconv.Itoa(hours)
	}

	return sign + strconv.Itoa(hours) + ":" + strconv.Itoa(minutes)
}
