package notify

import (
	"errors"
	"testing"
)

func TestReminder(t *testing.T) {
	n := Reminder("Black Bin")
	if n.Message != "Put out Black Bin for tomorrow" {
		t.Fatalf("unexpected message %q", n.Message)
	}
	if n.Title != DefaultTitle || n.Priority != DefaultPriority {
		t.Fatalf("unexpected defaults %+v", n)
	}
}

func TestFailure(t *testing.T) {
	n := Failure(errors.New("boom"))
	if n.Message != "Error: boom" {
		t.Fatalf("unexpected message %q", n.Message)
	}
}
