package store

import (
	"fmt"
	"math"
	"strconv"
)

// formatPrice renders a price the way the legacy consumers expect: integral
// values keep one trailing decimal ("5.0"), everything else uses the shortest
// round-trip form.
func formatPrice(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Display renders the cart line as "<product> $<price>", the form the
// category listing has always produced.
func (l CartLine) Display() string {
	return l.Product + " $" + formatPrice(l.Price)
}

// DisplayRow renders the record in the legacy $-delimited form:
//
//	fullname$package$price$address$contactno$pincode$date$time
//
// Amount and OType are stored but deliberately absent here: the field set
// and order are kept byte-compatible with the format existing consumers
// parse, discrepancy included.
func (r OrderRecord) DisplayRow() string {
	return fmt.Sprintf("%s$%s$%s$%s$%s$%d$%s$%s",
		r.Fullname,
		r.Package,
		formatPrice(r.Price),
		r.Address,
		r.ContactNo,
		r.Pincode,
		r.Date,
		r.Time,
	)
}
