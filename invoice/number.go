package invoice

import "fmt"

// FormatNumber derives the next sequential invoice number from the count of
// previously issued invoices: PR-0001, PR-0002, ...
func FormatNumber(priorCount int64) string {
	return fmt.Sprintf("PR-%04d", priorCount+1)
}
