package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Software Engineer Interview", "Question 2 of 8", 100)
	for _, want := range []string{"mockview", "Software Engineer Interview", "Question 2 of 8"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "End early"}}, 100)
	for _, want := range []string{"Enter", "Submit", "End early"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestSizing(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected sizes below the minimum to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected the minimum size to fit")
	}
	if !IsCompactWidth(MinWidth) || IsCompactWidth(CompactWidthThreshold) {
		t.Error("compact width threshold misplaced")
	}
	if !IsCompactHeight(MinHeight) || IsCompactHeight(CompactHeightThreshold) {
		t.Error("compact height threshold misplaced")
	}
}

func TestContentHeight(t *testing.T) {
	header := RenderHeader("Title", "", 100)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 100)

	if got := ContentHeight(40, header, footer); got != 34 {
		t.Errorf("ContentHeight(40) = %d, want 34", got)
	}
	if got := ContentHeight(4, header, footer); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
	if got := ContentHeight(12); got != 12 {
		t.Errorf("ContentHeight without chrome = %d, want 12", got)
	}
}

func TestRenderFooter_DropsOverflowingHints(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Submit answer"},
		{Key: "Tab", Description: "Skip follow-up"},
		{Key: "Esc", Description: "End interview early"},
		{Key: "Ctrl+C", Description: "Quit without feedback"},
	}
	f := RenderFooter(hints, 40)
	if !strings.Contains(f, "Submit answer") {
		t.Error("expected the first hint to fit")
	}
	if strings.Contains(f, "Quit without feedback") {
		t.Error("expected the last hint to be dropped at width 40")
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Title", "", 90)
	footer := RenderFooter(nil, 90)
	frame := RenderFrame(header, "body", footer, 90, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
