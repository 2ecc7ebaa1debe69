package waste

import (
	"fmt"

	"github.com/mossyhq/binminder/core/model"
)

// Decode maps coded tokens to schedule entries, preserving input order. The
// first token with an undecodable date aborts the whole decode; no partial
// schedule is returned. Bin mapping is total and cannot fail.
func Decode(tokens []model.CodedToken) (model.Schedule, error) {
	schedule := make(model.Schedule, 0, len(tokens))
	for _, tok := range tokens {
		date, err := DecodeDate(tok.DateCode)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok.DateCode, err)
		}
		schedule = append(schedule, model.ScheduleEntry{Date: date, Bin: model.BinFromCode(tok.BinCode)})
	}
	return schedule, nil
}

// DecodeAll runs the full pipeline from raw schedule text to decoded entries
// for one address.
func DecodeAll(raw, addressCode string) (model.Schedule, error) {
	tokens, err := Tokenize(raw, addressCode)
	if err != nil {
		return nil, err
	}
	return Decode(tokens)
}
