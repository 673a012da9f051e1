package Models

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	idNode = node
}

// NewID returns a prefixed unique id, e.g. "pat_1745...".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, idNode.Generate())
}

func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isoLayouts covers the timestamp shapes the document carries: RFC3339 for
// createdAt, datetime-local input for appointments, plain dates in imports.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseISO(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatDT renders a stored timestamp for humans; unparsable values come
// back empty, matching how the UI treats them.
func FormatDT(value string) string {
	t, err := ParseISO(value)
	if err != nil {
		return ""
	}
	return t.Format("02 Jan 2006, 3:04 PM")
}
