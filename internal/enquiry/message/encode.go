package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourbrand/tours-backend/pkg/enums"
)

// The submitted line mirrors an en-US "full date, long time" rendering.
const submittedLayout = "Monday, January 2, 2006 at 3:04:05 PM MST"

// Contact is the customer identity captured by the enquiry form.
type Contact struct {
	Name             string
	Email            string
	PhoneCountryCode string
	PhoneNumber      string
}

// CartItem is one selected catalog entry, flattened from the client cart.
// It is never stored as a row of its own, only rendered into the blob.
type CartItem struct {
	ID              string
	Type            enums.ItemType
	Name            string
	DestinationID   string
	DestinationName string
	Price           decimal.Decimal
	Currency        string
}

// EncodeInput carries everything the encoder renders into one message blob.
type EncodeInput struct {
	Contact     Contact
	Items       []CartItem
	SourcePage  string
	FreeText    string
	SiteName    string
	SubmittedAt time.Time
	Location    *time.Location
}

// Encoded is the rendered blob plus the first referenced destination and
// activity IDs, stored as separate indexed columns so the dashboard can
// filter without re-parsing the text.
type Encoded struct {
	Message       string
	DestinationID string
	ActivityID    string
}

// Encode renders the enquiry message blob: optional free text, a SELECTED
// ITEMS block when the cart is non-empty, a SUMMARY block, and an ENQUIRY
// INFORMATION trailer. Segment order and every label are part of the wire
// format the decoder depends on.
func Encode(in EncodeInput) Encoded {
	var b strings.Builder
	b.WriteString(in.FreeText)

	out := Encoded{}

	activities := filterByType(in.Items, enums.ItemTypeActivity)
	destinations := filterByType(in.Items, enums.ItemTypeDestination)

	if len(in.Items) > 0 {
		b.WriteString("\n\n" + Delimiter + "\n")
		b.WriteString(fmt.Sprintf("%s%s %s\n", itemsHeaderPrefix, selectedItemsMarker, strings.ToUpper(in.SiteName)))
		b.WriteString(Delimiter + "\n\n")

		if len(activities) > 0 {
			b.WriteString(fmt.Sprintf("%s (%d):\n", activitiesMarker, len(activities)))
			for i, item := range activities {
				b.WriteString(fmt.Sprintf("\n%d. %s", i+1, item.Name))
				if out.ActivityID == "" {
					out.ActivityID = item.ID
				}
				if item.DestinationName != "" {
					b.WriteString(fmt.Sprintf("\n   %s %s", locationLabel, item.DestinationName))
					if out.DestinationID == "" {
						out.DestinationID = item.DestinationID
					}
				}
				writePriceLine(&b, item)
				b.WriteString(fmt.Sprintf("\n   %s %s", idLabel, item.ID))
			}
			b.WriteString("\n")
		}

		if len(destinations) > 0 {
			b.WriteString(fmt.Sprintf("\n%s (%d):\n", destinationsMarker, len(destinations)))
			for i, item := range destinations {
				b.WriteString(fmt.Sprintf("\n%d. %s", i+1, item.Name))
				if out.DestinationID == "" {
					out.DestinationID = item.DestinationID
				}
				writePriceLine(&b, item)
				b.WriteString(fmt.Sprintf("\n   %s %s", idLabel, item.ID))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n" + Delimiter)
		b.WriteString("\n" + summaryMarker)
		b.WriteString(fmt.Sprintf("\n   • Total Items: %d", len(in.Items)))
		b.WriteString(fmt.Sprintf("\n   • Activities: %d", len(activities)))
		b.WriteString(fmt.Sprintf("\n   • Destinations: %d", len(destinations)))

		total := decimal.Zero
		for _, item := range in.Items {
			total = total.Add(item.Price)
		}
		if total.IsPositive() {
			b.WriteString("\n   • Estimated Total: ")
			if currency, shared := sharedCurrency(in.Items); shared {
				b.WriteString(fmt.Sprintf("%s %s", currency, total.StringFixed(2)))
			} else {
				b.WriteString(multipleCurrencies)
			}
		}
		b.WriteString("\n" + Delimiter)
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	sourcePage := in.SourcePage
	if sourcePage == "" {
		sourcePage = unknownSourcePage
	}

	b.WriteString("\n\n" + Delimiter)
	b.WriteString("\n" + siteInfoMarker)
	b.WriteString("\n" + Delimiter)
	b.WriteString(fmt.Sprintf("\n%s %s", siteLabel, in.SiteName))
	b.WriteString(fmt.Sprintf("\n%s %s", pageLabel, sourcePage))
	b.WriteString(fmt.Sprintf("\n%s %s", emailLabel, in.Contact.Email))
	if in.Contact.PhoneNumber != "" {
		b.WriteString(fmt.Sprintf("\n%s %s %s", phoneLabel, in.Contact.PhoneCountryCode, in.Contact.PhoneNumber))
	}
	b.WriteString(fmt.Sprintf("\n%s %s", submittedLabel, in.SubmittedAt.In(loc).Format(submittedLayout)))
	b.WriteString("\n" + Delimiter)

	out.Message = b.String()
	return out
}

func writePriceLine(b *strings.Builder, item CartItem) {
	if item.Price.IsPositive() {
		b.WriteString(fmt.Sprintf("\n   %s %s %s", priceLabel, item.Currency, item.Price.StringFixed(2)))
	}
}

func filterByType(items []CartItem, want enums.ItemType) []CartItem {
	var out []CartItem
	for _, item := range items {
		if item.Type == want {
			out = append(out, item)
		}
	}
	return out
}

// sharedCurrency reports the single currency across all items, or false
// when the cart mixes currencies.
func sharedCurrency(items []CartItem) (string, bool) {
	seen := map[string]struct{}{}
	currency := ""
	for _, item := range items {
		if _, ok := seen[item.Currency]; !ok {
			seen[item.Currency] = struct{}{}
			currency = item.Currency
		}
	}
	if len(seen) == 1 {
		return currency, true
	}
	return "", false
}
