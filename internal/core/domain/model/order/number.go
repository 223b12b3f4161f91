package order

import (
	"fmt"
	"time"
)

// Order and invoice numbers are date-based with a 4-digit same-day sequence
// suffix: ORD-20260830-0001, INV-20260830-0001. The two sequences are counted
// independently. Uniqueness is ultimately enforced by the database unique
// index; the sequence number is derived from the count of same-day rows.

const (
	orderNumberPrefix   = "ORD"
	invoiceNumberPrefix = "INV"
)

// OrderNumberPrefix returns the prefix shared by all order numbers allocated
// on the given day, e.g. "ORD-20260830-".
func OrderNumberPrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s-", orderNumberPrefix, day.Format("20060102"))
}

// InvoiceNumberPrefix returns the prefix shared by all invoice numbers
// allocated on the given day, e.g. "INV-20260830-".
func InvoiceNumberPrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s-", invoiceNumberPrefix, day.Format("20060102"))
}

// NewOrderNumber allocates the order number for the given day, where
// sameDayCount is the number of orders already created that day.
func NewOrderNumber(day time.Time, sameDayCount int64) string {
	return fmt.Sprintf("%s%04d", OrderNumberPrefix(day), sameDayCount+1)
}

// NewInvoiceNumber allocates the invoice number for the given day, where
// sameDayCount is the number of invoices already created that day.
func NewInvoiceNumber(day time.Time, sameDayCount int64) string {
	return fmt.Sprintf("%s%04d", InvoiceNumberPrefix(day), sameDayCount+1)
}
