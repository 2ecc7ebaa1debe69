package model

import "time"

// CodedToken is one 5-character unit from a schedule line: a 4-character
// base-36 date code followed by a single bin category character.
type CodedToken struct {
	DateCode string
	BinCode  rune
}

// ScheduleEntry pairs a collection date with the bin due that day. Date is a
// civil date pinned to UTC midnight; no time-of-day component is meaningful.
type ScheduleEntry struct {
	Date time.Time
	Bin  Bin
}

// Schedule is an ordered list of collection entries, in source-line order.
// Duplicate dates are passed through unmodified.
type Schedule []ScheduleEntry
