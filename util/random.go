package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomAmount generates a random money amount in XAF
func RandomAmount() int64 {
	return RandomInt(500, 50000)
}

// RandomRole generates a random staff role
func RandomRole() string {
	roles := []string{RoleSuperAdmin, RoleManager, RoleCashier, RoleWaitress, RoleChef}
	return roles[rand.Intn(len(roles))]
}

// RandomPaymentMethod generates a random payment method
func RandomPaymentMethod() string {
	methods := []string{"CASH", "CARD", "MOBILE_MONEY", "BANK_TRANSFER"}
	return methods[rand.Intn(len(methods))]
}

// OrderNumber builds a display order number from a creation timestamp and
// a monotonic sequence, e.g. ORD-1717430400000-0042.
func OrderNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%d-%04d", at.UnixMilli(), seq)
}

// MergedOrderNumber builds the display number for a merged order.
func MergedOrderNumber(at time.Time) string {
	return fmt.Sprintf("MERGED-%d", at.UnixMilli())
}

// SplitOrderNumber builds the display number for the i-th (1-based) child
// of a split order.
func SplitOrderNumber(parentNumber string, index int) string {
	return fmt.Sprintf("%s-SPLIT-%d", parentNumber, index)
}
