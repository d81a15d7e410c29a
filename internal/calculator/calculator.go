package calculator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
)

// Clock returns the current time. Handlers take one so tests can pin it.
type Clock func() time.Time

// Evaluate computes an arithmetic expression without variables and returns
// the result formatted the way it is stored in the calculation history.
func Evaluate(expression string, maxLen int) (string, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return "", invalid("expression", "must not be empty")
	}
	if maxLen > 0 && len(expression) > maxLen {
		return "", invalid("expression", "must be at most %d characters", maxLen)
	}

	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return "", invalid("expression", "is invalid: %v", err)
	}
	if vars := expr.Vars(); len(vars) > 0 {
		return "", invalid("expression", "must not reference variables (%s)", strings.Join(vars, ", "))
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return "", invalid("expression", "could not be evaluated: %v", err)
	}
	return fmt.Sprintf("%v", result), nil
}
