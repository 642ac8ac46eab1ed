package domain

import "time"

// Report is the unit of work produced once per invocation: the calendar
// date the report is for and the quote chosen for it.
type Report struct {
	Date  time.Time
	Quote Quote
}
