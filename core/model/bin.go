package model

import "fmt"

// BinKind identifies a waste-collection container category.
type BinKind int

const (
	BinUnknown BinKind = iota
	BinBlack
	BinGreen
	BinBrown
)

// Bin is a decoded bin category. Unknown codes keep the original character so
// they can surface in notifications instead of aborting the run.
type Bin struct {
	Kind BinKind
	Code rune
}

// BinFromCode maps a single category character to a Bin. It is total: codes
// outside the known set yield a BinUnknown carrying the offending character.
func BinFromCode(code rune) Bin {
	switch code {
	case 'B':
		return Bin{Kind: BinBlack, Code: code}
	case 'G':
		return Bin{Kind: BinGreen, Code: code}
	case 'R':
		return Bin{Kind: BinBrown, Code: code}
	default:
		return Bin{Kind: BinUnknown, Code: code}
	}
}

// Label returns the display name used in notifications.
func (b Bin) Label() string {
	switch b.Kind {
	case BinBlack:
		return "Black Bin"
	case BinGreen:
		return "Green Bin"
	case BinBrown:
		return "Brown Bin"
	default:
		return fmt.Sprintf("Unknown Bin '%c'", b.Code)
	}
}

// String returns a human-readable representation of the kind.
func (k BinKind) String() string {
	switch k {
	case BinBlack:
		return "black"
	case BinGreen:
		return "green"
	case BinBrown:
		return "brown"
	default:
		return "unknown"
	}
}
