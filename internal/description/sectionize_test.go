package description

import (
	"reflect"
	"strings"
	"testing"
)

func TestSectionizeBasicStructure(t *testing.T) {
	input := strings.Join([]string{
		"Great day trip.",
		"Highlights:",
		"- See the falls",
		"- Guided tour",
		"What's Included:",
		"- Hotel pickup",
	}, "\n")

	got := Sectionize(input)

	if got.Overview != "Great day trip." {
		t.Fatalf("overview = %q", got.Overview)
	}
	if !reflect.DeepEqual(got.Highlights, []string{"See the falls", "Guided tour"}) {
		t.Fatalf("highlights = %v", got.Highlights)
	}
	if !reflect.DeepEqual(got.Inclusions, []string{"Hotel pickup"}) {
		t.Fatalf("inclusions = %v", got.Inclusions)
	}
	if len(got.Exclusions) != 0 {
		t.Fatalf("exclusions = %v", got.Exclusions)
	}
	if len(got.Extras) != 0 {
		t.Fatalf("extras = %v", got.Extras)
	}
}

func TestSectionizeNotIncludedGoesToExclusions(t *testing.T) {
	input := strings.Join([]string{
		"What's Included:",
		"- Lunch",
		"Not Included:",
		"- Flights",
	}, "\n")

	got := Sectionize(input)

	if !reflect.DeepEqual(got.Inclusions, []string{"Lunch"}) {
		t.Fatalf("inclusions = %v", got.Inclusions)
	}
	if !reflect.DeepEqual(got.Exclusions, []string{"Flights"}) {
		t.Fatalf("exclusions = %v", got.Exclusions)
	}
}

func TestSectionizeHeaderLinesNeverAppearAsContent(t *testing.T) {
	input := strings.Join([]string{
		"Intro text.",
		"Highlights:",
		"- One",
		"Exclusions:",
		"- Two",
		"Good to know:",
		"- Three",
	}, "\n")

	got := Sectionize(input)

	all := append([]string{}, got.Highlights...)
	all = append(all, got.Inclusions...)
	all = append(all, got.Exclusions...)
	for _, extra := range got.Extras {
		all = append(all, extra.Items...)
	}
	all = append(all, strings.Split(got.Overview, "\n")...)

	for _, item := range all {
		lowered := strings.ToLower(item)
		if strings.Contains(lowered, "highlights:") || strings.Contains(lowered, "exclusions:") || strings.Contains(lowered, "good to know:") {
			t.Fatalf("header leaked into content: %q", item)
		}
	}
}

func TestSectionizeLineConservation(t *testing.T) {
	input := strings.Join([]string{
		"Line one.",
		"Line two.",
		"Highlights:",
		"- A",
		"- B",
		"Requirements:",
		"Bring shoes",
		"Not included:",
		"- C",
	}, "\n")

	got := Sectionize(input)

	contentLines := len(strings.Split(got.Overview, "\n")) +
		len(got.Highlights) + len(got.Inclusions) + len(got.Exclusions)
	for _, extra := range got.Extras {
		contentLines += len(extra.Items)
	}

	// 9 input lines, 3 consumed as headers.
	if contentLines != 6 {
		t.Fatalf("expected 6 content lines, got %d (%+v)", contentLines, got)
	}
}

func TestSectionizeFallbackToWholeInput(t *testing.T) {
	if got := Sectionize(""); got.Overview != "" || len(got.Highlights) != 0 {
		t.Fatalf("empty input: %+v", got)
	}

	prose := "no structure, just prose"
	got := Sectionize(prose)
	if got.Overview != prose {
		t.Fatalf("overview = %q", got.Overview)
	}
	if len(got.Highlights)+len(got.Inclusions)+len(got.Exclusions)+len(got.Extras) != 0 {
		t.Fatalf("expected all lists empty: %+v", got)
	}
}

func TestSectionizeExtraSections(t *testing.T) {
	input := strings.Join([]string{
		"Overview here.",
		"Who it's for:",
		"- Families",
		"Good to know:",
		"- Bring sunscreen",
		"Good to know:",
		"- Cash only",
	}, "\n")

	got := Sectionize(input)

	if len(got.Extras) != 2 {
		t.Fatalf("expected 2 extra sections, got %v", got.Extras)
	}
	if got.Extras[0].Title != "Who it's for" {
		t.Fatalf("first extra title = %q", got.Extras[0].Title)
	}
	// Repeated identical header appends to the existing section.
	if !reflect.DeepEqual(got.Extras[1].Items, []string{"Bring sunscreen", "Cash only"}) {
		t.Fatalf("good-to-know items = %v", got.Extras[1].Items)
	}
}

func TestSectionizeExtraTitlesAreCaseSensitive(t *testing.T) {
	input := strings.Join([]string{
		"Good to know:",
		"- One",
		"good to know:",
		"- Two",
	}, "\n")

	got := Sectionize(input)
	if len(got.Extras) != 2 {
		t.Fatalf("expected differently cased titles to open separate sections, got %v", got.Extras)
	}
}

func TestSectionizeNormalizesInput(t *testing.T) {
	input := "Trip overview.\r\nHighlights:\r\n• First\\nWhat’s included:\r\n* Lunch"

	got := Sectionize(input)

	if got.Overview != "Trip overview." {
		t.Fatalf("overview = %q", got.Overview)
	}
	if !reflect.DeepEqual(got.Highlights, []string{"First"}) {
		t.Fatalf("highlights = %v", got.Highlights)
	}
	if !reflect.DeepEqual(got.Inclusions, []string{"Lunch"}) {
		t.Fatalf("inclusions = %v", got.Inclusions)
	}
}

func TestSectionizeNonBulletContentKept(t *testing.T) {
	input := strings.Join([]string{
		"Requirements:",
		"Minimum age 12",
	}, "\n")

	got := Sectionize(input)
	if len(got.Extras) != 1 || !reflect.DeepEqual(got.Extras[0].Items, []string{"Minimum age 12"}) {
		t.Fatalf("extras = %v", got.Extras)
	}
}
