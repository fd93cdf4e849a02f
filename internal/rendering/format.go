package rendering

import (
	"strings"
	"time"
)

// Present is shown in place of an open end date.
const Present = "Present"

var dateLayouts = []string{"2006-01-02", "2006-01"}

// FormatDate renders "2021-03" or "2021-03-15" as "Mar 2021". Anything else is
// returned trimmed but otherwise unchanged, so free-text dates survive.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// period joins formatted start and end dates. An open end becomes Present
// only when there is a start to anchor it, or when open is forced.
func period(start, end string, current bool) string {
	start = FormatDate(start)
	end = FormatDate(end)
	if current || (end == "" && start != "") {
		end = Present
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
