package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeatCount is a seat number that never fails to decode. Missing, null,
// non-numeric and negative values all read as 0, so an explicit 0 and an
// absent field cannot be told apart.
type SeatCount int

func (s SeatCount) Int() int {
	return int(s)
}

func (s *SeatCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = 0
		return nil
	}
	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			*s = 0
			return nil
		}
		*s = parseSeatCount(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*s = parseSeatCount(string(data))
	default:
		// null, true/false, objects and arrays
		*s = 0
	}
	return nil
}

func (s *SeatCount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" || value.Tag == "!!bool" {
		*s = 0
		return nil
	}
	*s = parseSeatCount(value.Value)
	return nil
}

func parseSeatCount(raw string) SeatCount {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return clampSeatCount(float64(n))
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// out of range numbers come back as ±Inf or 0 and clamp below
		if !errors.Is(err, strconv.ErrRange) {
			return 0
		}
	} else if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clampSeatCount(math.Trunc(f))
}

func clampSeatCount(f float64) SeatCount {
	if f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return SeatCount(f)
}
