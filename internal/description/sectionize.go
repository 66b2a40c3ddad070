package description

import (
	"regexp"
	"strings"
)

// Sections is the structured form of one activity description. It is
// rebuilt on every read; nothing here is persisted.
type Sections struct {
	Overview   string         `json:"overview"`
	Highlights []string       `json:"highlights"`
	Inclusions []string       `json:"inclusions"`
	Exclusions []string       `json:"exclusions"`
	Extras     []ExtraSection `json:"extraSections"`
}

// ExtraSection is an ad-hoc named section opened by a recognized header
// phrase outside the three fixed categories.
type ExtraSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type sectionKind int

const (
	sectionOverview sectionKind = iota
	sectionHighlights
	sectionInclusions
	sectionExclusions
	sectionExtra
)

// Header phrases that open an ad-hoc section. Matching is substring
// containment on the lowercased header candidate; the set deliberately
// carries apostrophe-less and typo variants seen in real copy. Extend
// conservatively: a new trigger word reclassifies existing content.
var extraSectionTriggers = []string{
	"who it's for",
	"who its for",
	"eligibility",
	"requirements",
	"rules",
	"good to know",
	"what you'll actually do",
	"what youll actually do",
	"what you will do",
}

var (
	bulletRe         = regexp.MustCompile(`^[-•*]\s+`)
	headerTrailingRe = regexp.MustCompile(`[:\-\s]+$`)
)

// Sectionize classifies each line of a free-text activity description into
// overview, highlights, inclusions, exclusions, or a named extra section.
// It is total: input with no recognizable structure comes back with the
// whole trimmed text as the overview and every list empty.
func Sectionize(raw string) Sections {
	normalized := Normalize(raw)

	sections := Sections{
		Highlights: []string{},
		Inclusions: []string{},
		Exclusions: []string{},
		Extras:     []ExtraSection{},
	}

	current := sectionOverview
	currentExtra := -1
	var overviewLines []string

	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		candidate := headerTrailingRe.ReplaceAllString(trimmed, "")
		lowered := strings.ToLower(candidate)

		switch {
		case strings.Contains(lowered, "highlight"):
			current = sectionHighlights
			continue

		// Exclusion triggers run before inclusion ones: "not included"
		// contains "included" and must not land in inclusions.
		case strings.Contains(lowered, "not included"),
			strings.Contains(lowered, "exclusion"),
			strings.Contains(lowered, "exclude"):
			current = sectionExclusions
			continue

		case strings.Contains(lowered, "included"),
			strings.Contains(lowered, "inclusion"),
			strings.Contains(lowered, "include"):
			current = sectionInclusions
			continue

		case matchesExtraTrigger(lowered):
			current = sectionExtra
			currentExtra = openExtraSection(&sections, candidate)
			continue
		}

		text := trimmed
		if bulletRe.MatchString(text) {
			text = bulletRe.ReplaceAllString(text, "")
		}

		switch current {
		case sectionHighlights:
			sections.Highlights = append(sections.Highlights, text)
		case sectionInclusions:
			sections.Inclusions = append(sections.Inclusions, text)
		case sectionExclusions:
			sections.Exclusions = append(sections.Exclusions, text)
		case sectionExtra:
			sections.Extras[currentExtra].Items = append(sections.Extras[currentExtra].Items, text)
		default:
			overviewLines = append(overviewLines, text)
		}
	}

	sections.Overview = strings.Join(overviewLines, "\n")
	if sections.Overview == "" {
		sections.Overview = strings.TrimSpace(normalized)
	}

	return sections
}

func matchesExtraTrigger(lowered string) bool {
	for _, trigger := range extraSectionTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}

// openExtraSection reuses an existing section when the exact title was seen
// before; titles are case-sensitive, so differently cased repeats open
// separate sections.
func openExtraSection(sections *Sections, title string) int {
	for i, extra := range sections.Extras {
		if extra.Title == title {
			return i
		}
	}
	sections.Extras = append(sections.Extras, ExtraSection{Title: title, Items: []string{}})
	return len(sections.Extras) - 1
}
