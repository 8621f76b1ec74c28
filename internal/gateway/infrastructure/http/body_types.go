package http

import (
	"encoding/json"
	"math"
	"strconv"
)

// flexNumber accepts either a JSON number or a quoted numeric string; the
// frontend sends both depending on the form. Whether the value is actually
// numeric is checked separately, after binding.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}

		*n = flexNumber(unquoted)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}

	*n = flexNumber(num.String())
	return nil
}

func (n flexNumber) String() string {
	return string(n)
}

// isNumeric rejects non-finite values too; ParseFloat happily accepts "NaN"
// and "Inf" but the engine must never see them.
func isNumeric(n flexNumber) bool {
	value, err := strconv.ParseFloat(n.String(), 64)
	return err == nil && !math.IsNaN(value) && !math.IsInf(value, 0)
}

// parseAge accepts whatever the signup form sends: an integer, or a numeric
// string that gets truncated toward zero.
func parseAge(n flexNumber) (int, bool) {
	value, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}

	return int(value), true
}
