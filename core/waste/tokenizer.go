package waste

import (
	"fmt"
	"strings"

	"github.com/mossyhq/binminder/core/model"
)

// tokenWidth is the fixed size of one coded unit: four date characters
// followed by one bin category character.
const tokenWidth = 5

// Tokenize selects the first line of raw starting with addressCode and splits
// its coded data field into fixed-width tokens, preserving order.
func Tokenize(raw, addressCode string) ([]model.CodedToken, error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, addressCode) {
			return tokenizeLine(line)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAddressNotFound, addressCode)
}

func tokenizeLine(line string) ([]model.CodedToken, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return nil, ErrMalformedLine
	}
	coded := []rune(fields[1])
	if len(coded)%tokenWidth != 0 {
		return nil, fmt.Errorf("%w: got %d characters", ErrMalformedLength, len(coded))
	}
	tokens := make([]model.CodedToken, 0, len(coded)/tokenWidth)
	for i := 0; i < len(coded); i += tokenWidth {
		tokens = append(tokens, model.CodedToken{
			DateCode: string(coded[i : i+tokenWidth-1]),
			BinCode:  coded[i+tokenWidth-1],
		})
	}
	return tokens, nil
}
