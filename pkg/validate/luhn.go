package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid Luhn-checkable number, the format
// used by payment voucher codes.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
