package enums

import "fmt"

// EnquiryStatus describes the allowed values for the `status` column in enquiries.
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusQualified EnquiryStatus = "qualified"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

var validEnquiryStatuses = []EnquiryStatus{
	EnquiryStatusNew,
	EnquiryStatusContacted,
	EnquiryStatusQualified,
	EnquiryStatusClosed,
}

// String implements fmt.Stringer.
func (e EnquiryStatus) String() string {
	return string(e)
}

// IsValid reports whether the value matches the canonical enquiry status enum.
func (e EnquiryStatus) IsValid() bool {
	for _, candidate := range validEnquiryStatuses {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEnquiryStatus converts the raw string to EnquiryStatus.
func ParseEnquiryStatus(value string) (EnquiryStatus, error) {
	for _, candidate := range validEnquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid enquiry status %q", value)
}
