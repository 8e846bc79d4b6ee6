package courier

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the working state of a courier, independent of any single delivery.
type Status int

const (
	Unknown Status = iota
	Free
	Busy
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Free:     "FREE",
		Busy:     "BUSY",
		Inactive: "INACTIVE",
	}
}

func AllStatuses() []Status {
	return []Status{Free, Busy, Inactive}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a courier status", s))
}

func (s Status) Validate() error {
	if s < Free || s > Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
