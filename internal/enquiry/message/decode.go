package message

import (
	"regexp"
	"strings"
)

// ParsedItem is one selection recovered from a stored message blob. All
// fields except the name are optional; consumers treat them as such.
type ParsedItem struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Price    string `json:"price,omitempty"`
	ID       string `json:"id,omitempty"`
}

// ParsedEnquiry is the structured view of a stored message blob. Summary
// and SiteInfo are empty maps when their block was present and nil when it
// was not; no field-level extraction is done for either.
type ParsedEnquiry struct {
	Original     string            `json:"original"`
	Activities   []ParsedItem      `json:"activities"`
	Destinations []ParsedItem      `json:"destinations"`
	Summary      map[string]string `json:"summary"`
	SiteInfo     map[string]string `json:"siteInfo"`
}

var itemStartRe = regexp.MustCompile(`^\d+\.`)
var itemNameRe = regexp.MustCompile(`^\d+\.\s*`)

// Decode re-derives structure from a stored message blob. It is total:
// empty input yields an all-empty result, and text that matches no marker
// accumulates into Original.
func Decode(messageText string) ParsedEnquiry {
	result := ParsedEnquiry{
		Activities:   []ParsedItem{},
		Destinations: []ParsedItem{},
	}
	if messageText == "" {
		return result
	}

	var original strings.Builder
	var inActivities, inDestinations, inSummary, inSiteInfo bool
	var currentItem *ParsedItem

	// An open item belongs to the sub-block that was active when its
	// numbered line appeared, so it must land before any mode change.
	flush := func() {
		if currentItem == nil {
			return
		}
		if inActivities {
			result.Activities = append(result.Activities, *currentItem)
		} else if inDestinations {
			result.Destinations = append(result.Destinations, *currentItem)
		}
		currentItem = nil
	}

	for _, line := range strings.Split(messageText, "\n") {
		switch {
		case strings.Contains(line, selectedItemsMarker):
			flush()
			inActivities = false
			inDestinations = false
			continue

		case strings.Contains(line, activitiesMarker):
			flush()
			inActivities = true
			inDestinations = false
			continue

		case strings.Contains(line, destinationsMarker):
			flush()
			inActivities = false
			inDestinations = true
			continue

		case strings.Contains(line, summaryMarker):
			flush()
			inActivities = false
			inDestinations = false
			inSummary = true
			result.Summary = map[string]string{}
			continue

		case strings.Contains(line, siteInfoMarker):
			flush()
			inSummary = false
			inSiteInfo = true
			result.SiteInfo = map[string]string{}
			continue

		case strings.Contains(line, Delimiter):
			// A delimiter inside the free-text preamble is customer
			// content; ones framing structured blocks are swallowed.
			if !inActivities && !inDestinations && !inSummary && !inSiteInfo {
				original.WriteString(line + "\n")
			}
			continue
		}

		if inActivities || inDestinations {
			if itemStartRe.MatchString(line) {
				flush()
				currentItem = &ParsedItem{Name: strings.TrimSpace(itemNameRe.ReplaceAllString(line, ""))}
			} else if currentItem != nil {
				switch {
				case strings.Contains(line, locationLabel):
					currentItem.Location = stripLabel(line, locationLabel)
				case strings.Contains(line, priceLabel):
					currentItem.Price = stripLabel(line, priceLabel)
				case strings.Contains(line, idLabel):
					currentItem.ID = stripLabel(line, idLabel)
				}
			}
		} else if !inSummary && !inSiteInfo && strings.TrimSpace(line) != "" {
			original.WriteString(line + "\n")
		}
	}

	flush()

	result.Original = strings.TrimSpace(original.String())
	return result
}

func stripLabel(line, label string) string {
	return strings.TrimSpace(strings.Replace(line, label, "", 1))
}
