package usecase

import (
	"fmt"
	"time"
)

// documentNumber derives a human-facing number from the last six digits of
// the unix milliseconds, e.g. INV-123456.
func documentNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%06d", prefix, now.UnixMilli()%1000000)
}

func invoiceNumber(now time.Time) string {
	return documentNumber("INV", now)
}

func quoteNumber(now time.Time) string {
	return documentNumber("QUO", now)
}
