package match

import "time"

const (
	slotSearchDays = 14
	workdayStart   = 9
	workdayEnd     = 17
)

type interval struct {
	start, end time.Time
}

func (i interval) overlaps(o interval) bool {
	return i.start.Before(o.end) && i.end.After(o.start)
}

// SuggestSlots proposes free hourly slots on weekdays between 09:00 and 17:00,
// starting tomorrow and looking two weeks ahead.
func SuggestSlots(now time.Time, busy []Meeting, duration time.Duration, n int) []TimeSlotDTO {
	taken := make([]interval, 0, len(busy))
	for _, m := range busy {
		if m.Status.Open() {
			taken = append(taken, interval{m.ScheduledStartTime, m.ScheduledEndTime})
		}
	}

	out := make([]TimeSlotDTO, 0, n)
	for day := 1; day <= slotSearchDays && len(out) < n; day++ {
		d := now.AddDate(0, 0, day)
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), workdayStart, 0, 0, 0, now.Location())
		if wd := dayStart.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dayEnd := time.Date(d.Year(), d.Month(), d.Day(), workdayEnd, 0, 0, 0, now.Location())

		for start := dayStart; start.Add(duration).Before(dayEnd) && len(out) < n; start = start.Add(time.Hour) {
			slot := interval{start, start.Add(duration)}
			if conflicts(slot, taken) {
				continue
			}
			out = append(out, TimeSlotDTO{
				StartTime:   slot.start,
				EndTime:     slot.end,
				DisplayText: slot.start.Format("Mon, Jan 2 15:04") + " - " + slot.end.Format("15:04"),
				IsAvailable: true,
			})
		}
	}
	return out
}

func conflicts(slot interval, taken []interval) bool {
	for _, t := range taken {
		if slot.overlaps(t) {
			return true
		}
	}
	return false
}
