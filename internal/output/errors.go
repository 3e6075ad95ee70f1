package output

import (
	"errors"
	"strconv"
)

// ErrUnsupportedFormat is returned when a report format name matches no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
