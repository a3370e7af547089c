package speech

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity positions recognized in a transcript. Digit runs are capped at
// three characters; longer runs are not a quantity, the whole transcript
// is the name.
var (
	qtyPrefix = regexp.MustCompile(`^(\d{1,3})\s+(.+)$`)
	qtySuffix = regexp.MustCompile(`^(.+?)\s+(\d{1,3})$`)
)

// Parse extracts a (quantity, name) pair from a one-shot transcript.
// "2 milk" and "milk 2" both yield (2, "milk"); anything else keeps the
// fallback quantity and uses the full transcript as the name.
func Parse(transcript string, fallbackQty int) (int, string) {
	transcript = strings.TrimSpace(transcript)
	if fallbackQty < 1 {
		fallbackQty = 1
	}

	if m := qtyPrefix.FindStringSubmatch(transcript); m != nil {
		if qty, err := strconv.Atoi(m[1]); err == nil && qty > 0 {
			return qty, m[2]
		}
	}
	if m := qtySuffix.FindStringSubmatch(transcript); m != nil {
		if qty, err := strconv.Atoi(m[2]); err == nil && qty > 0 {
			return qty, m[1]
		}
	}
	return fallbackQty, transcript
}
