package waste

import (
	"errors"
	"testing"
	"time"

	"github.com/mossyhq/binminder/core/model"
)

func TestDecodePreservesOrder(t *testing.T) {
	tokens := []model.CodedToken{
		{DateCode: "559H", BinCode: 'B'},
		{DateCode: "559I", BinCode: 'G'},
	}
	schedule, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 entries got %d", len(schedule))
	}
	if schedule[0].Bin.Kind != model.BinBlack || schedule[1].Bin.Kind != model.BinGreen {
		t.Fatalf("entries out of order: %+v", schedule)
	}
	if !schedule[0].Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first date %v", schedule[0].Date)
	}
}

func TestDecodeFailsFast(t *testing.T) {
	tokens := []model.CodedToken{
		{DateCode: "559H", BinCode: 'B'},
		{DateCode: "559G", BinCode: 'G'}, // invalid calendar date
		{DateCode: "559I", BinCode: 'R'},
	}
	schedule, err := Decode(tokens)
	if !errors.Is(err, ErrCalendarDate) {
		t.Fatalf("expected ErrCalendarDate got %v", err)
	}
	if schedule != nil {
		t.Fatalf("expected no partial schedule, got %+v", schedule)
	}
}

func TestDecodeUnknownBinCodeSurvives(t *testing.T) {
	schedule, err := Decode([]model.CodedToken{{DateCode: "559H", BinCode: 'T'}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if schedule[0].Bin.Kind != model.BinUnknown || schedule[0].Bin.Label() != "Unknown Bin 'T'" {
		t.Fatalf("unknown code not preserved: %+v", schedule[0].Bin)
	}
}

func TestDecodeAll(t *testing.T) {
	schedule, err := DecodeAll("header,xxxxx\n1234,559HB559IG", "1234")
	if err != nil {
		t.Fatalf("decode all: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 entries got %d", len(schedule))
	}
	if _, err := DecodeAll("1234,559HB", "5678"); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound got %v", err)
	}
}
