package healthcalc

import (
	"fmt"
	"net/url"
	"strings"

	"healthhub/internal/domain/entity"
)

const scheduleLayout = "Mon, Jan 2, 2006 3:04 PM"

// FormatSchedule renders a scheduled time, falling back to the raw text the
// server sent when it could not be parsed.
func FormatSchedule(ts entity.Timestamp) string {
	if ts.Valid() {
		return ts.Time.Format(scheduleLayout)
	}
	if ts.Raw != "" {
		return ts.Raw
	}
	return "Not scheduled"
}

var frequencyLabels = map[entity.Frequency]string{
	entity.FrequencyDaily:      "Daily",
	entity.FrequencyTwiceDaily: "Twice daily",
	entity.FrequencyWeekly:     "Weekly",
	entity.FrequencyMonthly:    "Monthly",
}

func FrequencyLabel(f entity.Frequency) string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return string(f)
}

// StatusLabel capitalizes an appointment status, an empty status reads as upcoming.
func StatusLabel(s entity.AppointmentStatus) string {
	if s == "" {
		s = entity.AppointmentStatusUpcoming
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// FacilityContact joins the optional contact channels of a facility.
func FacilityContact(f entity.Facility) string {
	var parts []string
	for _, p := range []string{f.Phone, f.Email, f.Website} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "No contact details"
	}
	return strings.Join(parts, " | ")
}

// MapLink points a maps search at the facility coordinates.
func MapLink(f entity.Facility) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", fmt.Sprintf("%.6f,%.6f", f.Latitude, f.Longitude))
	return "https://www.google.com/maps/search/?" + q.Encode()
}
