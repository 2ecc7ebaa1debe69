package waste

// Package waste decodes municipal waste-collection schedules published as
// compact base-36 text and matches them against the next calendar day. One
// line per address, 5-character tokens: four date characters, one bin code.
