package style

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
)

var UpColors = text.Colors{text.FgHiGreen}
var DownColors = text.Colors{text.FgHiRed}

// ChangeColors picks the colors of a price change cell.
func ChangeColors(change float64) text.Colors {
	switch {
	case change > 0:
		return UpColors
	case change < 0:
		return DownColors
	}
	return nil
}

func SignString(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if v > 0 {
		return "+" + s
	}
	return s
}
