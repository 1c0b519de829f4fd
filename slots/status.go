package slots

import (
	"fmt"
	"time"
)

// Shop status labels returned by TodayStatus.
const (
	StatusOpen        = "ouvert"
	StatusClosed      = "ferme"
	StatusClosingSoon = "bientot_ferme"
	StatusBreak       = "pause"
)

// closingSoonMinutes is how close to a window end the shop reports
// "closing soon" instead of plain open.
const closingSoonMinutes = 30

type TodayStatus struct {
	Open    bool   `json:"ouvert"`
	Status  string `json:"status"`
	Day     string `json:"jour"`
	Message string `json:"message,omitempty"`
}

// ComputeTodayStatus answers "is the shop open right now". It shares the
// weekday and window resolution with ComputeAvailableSlots: a day reported
// closed here produces zero slots there as well.
func (e *Engine) ComputeTodayStatus(now time.Time) (*TodayStatus, error) {
	status := &TodayStatus{
		Status: StatusClosed,
		Day:    dayNames[now.Weekday()],
	}

	closures, err := e.store.FindActiveClosures(now)
	if err != nil {
		return nil, err
	}
	for _, closure := range closures {
		if closure.AppliesTo(now) && closure.FullClosure {
			status.Message = closure.Message
			if status.Message == "" {
				status.Message = "Fermeture exceptionnelle"
			}
			return status, nil
		}
	}

	hours, err := e.store.LoadOpeningHours()
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return nil, ErrMissingConfig
	}

	day, ok := hours[now.Weekday()]
	if !ok || !day.Open {
		status.Message = fmt.Sprintf("Boulangerie fermée le %s", status.Day)
		return status, nil
	}

	nowMin := now.Hour()*60 + now.Minute()

	morning, err := windowBounds(day.MorningStart, day.MorningEnd)
	if err != nil {
		return nil, err
	}
	afternoon, err := windowBounds(day.AfternoonStart, day.AfternoonEnd)
	if err != nil {
		return nil, err
	}

	for _, w := range []*clockWindow{morning, afternoon} {
		if w == nil || nowMin < w.start || nowMin >= w.end {
			continue
		}
		status.Open = true
		if w.end-nowMin <= closingSoonMinutes {
			status.Status = StatusClosingSoon
			status.Message = fmt.Sprintf("Ferme bientôt à %02d:%02d", w.end/60, w.end%60)
		} else {
			status.Status = StatusOpen
		}
		return status, nil
	}

	// Between the morning and afternoon windows the shop is on break,
	// which is reported distinctly from a closed day.
	if morning != nil && afternoon != nil && nowMin >= morning.end && nowMin < afternoon.start {
		status.Status = StatusBreak
		status.Message = fmt.Sprintf("Réouverture à %02d:%02d", afternoon.start/60, afternoon.start%60)
		return status, nil
	}

	status.Message = "Boulangerie fermée"
	return status, nil
}

type clockWindow struct {
	start int // minutes since midnight
	end   int
}

func windowBounds(start, end string) (*clockWindow, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	startMin, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil, err
	}
	return &clockWindow{start: startMin, end: endMin}, nil
}
