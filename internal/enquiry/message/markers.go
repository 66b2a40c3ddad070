package message

import "strings"

// The enquiry message blob is a semi-formal wire format. The decoder
// re-derives structure purely from the marker substrings below, so every
// constant here is load-bearing for messages already sitting in the
// database. Do not change one side without the other.
const (
	selectedItemsMarker = "SELECTED ITEMS FROM"
	activitiesMarker    = "🎯 ACTIVITIES"
	destinationsMarker  = "🌍 DESTINATIONS"
	summaryMarker       = "📊 SUMMARY:"
	siteInfoMarker      = "🏢 ENQUIRY INFORMATION"

	locationLabel = "📍 Location:"
	priceLabel    = "💰 Price:"
	idLabel       = "🆔 ID:"

	siteLabel      = "📱 Site:"
	pageLabel      = "📄 Source Page:"
	emailLabel     = "📧 Customer Email:"
	phoneLabel     = "📞 Customer Phone:"
	submittedLabel = "🕐 Submitted:"

	itemsHeaderPrefix = "📋 "

	multipleCurrencies = "Multiple currencies"
	unknownSourcePage  = "Unknown"
)

// Delimiter is the fixed heavy-box-drawing run framing each structured block.
var Delimiter = strings.Repeat("━", 40)
