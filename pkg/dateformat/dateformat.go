// Package dateformat converts ISO calendar dates into the DD/MM/YYYY
// display form used everywhere the business shows a date to a person.
package dateformat

import "strings"

// Format rearranges a dash-separated "YYYY-MM-DD" string into
// "DD/MM/YYYY". The rearrangement is purely positional: any
// dash-separated 3-field input is reordered without calendar
// validation. Input that does not split into 3 fields is returned
// unchanged.
func Format(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
