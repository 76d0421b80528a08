package dataset

import (
	"fmt"

	"github.com/dbsmedya/gogeomine/internal/config"
)

// ResolveMinSup converts a configured threshold to the absolute expected
// support the miner works with. In fraction mode the value is scaled by the
// number of transactions; an empty database keeps the raw value.
func ResolveMinSup(value float64, mode string, transactions int) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("min_sup must be positive, got %v", value)
	}

	switch mode {
	case config.MinSupCount, "":
		return value, nil
	case config.MinSupFraction:
		if value > 1 {
			return 0, fmt.Errorf("fractional min_sup must be at most 1, got %v", value)
		}
		if transactions == 0 {
			return value, nil
		}
		return value * float64(transactions), nil
	default:
		return 0, fmt.Errorf("unknown min_sup_mode %q", mode)
	}
}
