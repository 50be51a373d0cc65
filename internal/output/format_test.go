package output_test

import (
	"bytes"
	"testing"

	"taskflow/internal/output"
	"taskflow/internal/service"
	"taskflow/internal/testutil"
)

func TestFormatTaskListing(t *testing.T) {
	var buf bytes.Buffer

	output.FormatTask(&buf, 1, service.Task{
		Title:       "Buy milk",
		Description: "2 liters",
		Status:      service.StatusPending,
	})
	output.FormatTask(&buf, 2, service.Task{
		Title:  "Call mom",
		Status: service.StatusCompleted,
	})
	output.FormatCounts(&buf, 1, 1)

	testutil.Golden(t, "list_all", buf.Bytes())
}

func TestFormatTask_NormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{Title: "line\none", Status: service.StatusPending})

	expected := "   1  [ ] line one\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTask_UntitledFallback(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 3, service.Task{Title: "   ", Status: service.StatusPending})

	expected := "   3  [ ] (untitled)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatUser(t *testing.T) {
	var buf bytes.Buffer
	output.FormatUser(&buf, service.User{Email: "ana@example.com", Name: "Ana"})
	if buf.String() != "Ana <ana@example.com>\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	output.FormatUser(&buf, service.User{Email: "ana@example.com"})
	if buf.String() != "ana@example.com\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
