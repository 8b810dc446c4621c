package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the ordered sequence of die values produced by evaluating a
// RollSpec once. Order matches roll order.
type Outcome []uint

// Total returns the sum of all values in the outcome.
func (o Outcome) Total() uint {
	var total uint
	for _, value := range o {
		total += value
	}
	return total
}

// String renders the outcome as "v1, v2, ..., vn (total)". The empty
// outcome renders as " (0)": an empty joined list followed by the total.
func (o Outcome) String() string {
	values := make([]string, len(o))
	for i, value := range o {
		values[i] = strconv.FormatUint(uint64(value), 10)
	}
	return fmt.Sprintf("%s (%d)", strings.Join(values, ", "), o.Total())
}
