package types

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Interval string

func (i Interval) Minutes() int {
	if m, ok := SupportedIntervals[i]; ok {
		return m
	}
	return ParseInterval(i) / 60
}

func (i Interval) Duration() time.Duration {
	return time.Duration(ParseInterval(i)) * time.Second
}

func (i *Interval) UnmarshalJSON(b []byte) (err error) {
	var a string
	err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	*i = Interval(a)
	return
}

func (i Interval) String() string {
	return string(i)
}

var Interval1m = Interval("1m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval30m = Interval("30m")
var Interval1h = Interval("1h")
var Interval2h = Interval("2h")
var Interval4h = Interval("4h")
var Interval6h = Interval("6h")
var Interval12h = Interval("12h")
var Interval1d = Interval("1d")
var Interval3d = Interval("3d")
var Interval1w = Interval("1w")

var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval2h:  60 * 2,
	Interval4h:  60 * 4,
	Interval6h:  60 * 6,
	Interval12h: 60 * 12,
	Interval1d:  60 * 24,
	Interval3d:  60 * 24 * 3,
	Interval1w:  60 * 24 * 7,
}

var intervalUnits = []struct {
	suffix  string
	seconds int
}{
	// Mo must be matched before m
	{"Mo", 30 * 24 * 60 * 60},
	{"s", 1},
	{"m", 60},
	{"h", 60 * 60},
	{"d", 24 * 60 * 60},
	{"w", 7 * 24 * 60 * 60},
}

// ParseInterval converts an interval like "15m" or "3Mo" into seconds.
// It returns 0 for a malformed interval.
func ParseInterval(input Interval) int {
	s := string(input)
	for _, unit := range intervalUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSuffix(s, unit.suffix))
		if err != nil || n <= 0 {
			return 0
		}
		return n * unit.seconds
	}
	return 0
}
