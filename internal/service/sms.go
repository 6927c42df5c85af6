package service

import (
	"fmt"
	"time"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// smsInvalidTimes is returned instead of an error so the caller always has a
// displayable string to copy.
const smsInvalidTimes = "Unable to generate reminder: shift times are invalid"

// ComposeShiftSMS renders the fixed reminder template for a shift, with
// start/end formatted as wall-clock times in loc. The text is meant for
// manual copy/paste into an external messaging tool; there is no wire
// protocol behind it.
func ComposeShiftSMS(shift *model.Shift, loc *time.Location) string {
	if shift == nil || shift.StartAt.IsZero() || shift.EndAt.IsZero() {
		return smsInvalidTimes
	}

	start := shift.StartAt.In(loc).Format("3:04 PM")
	end := shift.EndAt.In(loc).Format("3:04 PM")

	return fmt.Sprintf(
		"Hi %s, a reminder about your shift today from %s to %s.\n"+
			"Please remember to:\n"+
			"- Clock in at the start of your shift\n"+
			"- Add a note about the visit\n"+
			"- Clock out when you finish",
		shift.StaffName, start, end,
	)
}
