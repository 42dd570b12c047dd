package stats

import (
	"fmt"

	"github.com/gosimula/desim/desimerr"
)

func notYetDefined(message string, count int64) error {
	return desimerr.New(desimerr.NotYetDefined, fmt.Sprintf("%s (count=%d)", message, count), 0, 0, nil)
}

func invalidParameter(message string) error {
	return desimerr.New(desimerr.InvalidParameter, message, 0, 0, nil)
}
