package clean

import (
	"fmt"
	"strconv"
)

// Sentinel identifiers of the article dimension. 999998 is the code that
// replaces missing or non-positive article codes; composed with subcode 0 it
// yields the "OTHER" article. 999997/0 is the discount article.
const (
	OtherArticleCode  = 999998
	OtherArticleID    = 99999800
	DiscountArticleID = 99999700

	// CorruptArticleID is a known-bad row in the operational database,
	// excluded outright.
	CorruptArticleID = 99999999

	// SinRubroID is the sentinel category unresolvable references redirect to.
	SinRubroID   = 0
	SinRubroName = "SIN RUBRO"
)

// categoryKey builds the 9-digit composite category id by zero-padding the
// four hierarchy fragments to widths 3, 3, 2 and 1 and concatenating.
// Example: (5, 2, 1, 3) -> "005" + "002" + "01" + "3" -> 5002013.
// Negative fragments clamp to 0 first: a sign would leak into the composed
// string and yield a negative or unparsable id.
func categoryKey(rubro, sub1, sub2, sub3 int) int {
	s := fmt.Sprintf("%03d%03d%02d%01d",
		nonNegative(rubro), nonNegative(sub1), nonNegative(sub2), nonNegative(sub3))
	id, _ := strconv.Atoi(s)
	return id
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// articleKey builds the 8-digit composite article id by zero-padding code to
// 6 digits and subcode to 2 and concatenating.
func articleKey(code, subcode int) int {
	s := fmt.Sprintf("%06d%02d", code, subcode)
	id, _ := strconv.Atoi(s)
	return id
}
