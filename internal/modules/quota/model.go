package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no plan credits remaining for
// the current month.
var ErrQuotaExhausted = errors.New("plan quota exhausted")

// DefaultCredits is the number of plan generations granted per month. Each
// generation burns four upstream completion calls, so the allowance is kept
// deliberately small for free-tier provider keys.
const DefaultCredits = 30
