package booking

import (
	"fmt"
	"strings"

	"github.com/cleankart/marketplace-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
)

// Parse validates caller-supplied status input against the enum.
func Parse(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", httperr.BadRequest(fmt.Sprintf("Invalid booking status: %s", s))
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRejected
}

// ===============================
// Transition table
// ===============================

// vendorTransitions is the full set of status writes a vendor may perform.
// Transitions are one-directional; CANCELLED is reserved for the owning user.
var vendorTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

// CanVendorTransition validates a vendor status write against the table.
func CanVendorTransition(from, to Status) error {
	for _, allowed := range vendorTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.BadRequest(fmt.Sprintf("Cannot change booking status from %s to %s", from, to))
}

// CanCancel decides whether the owning user may still withdraw. Terminal
// bookings refuse with the current status named.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.BadRequest(fmt.Sprintf("Cannot cancel a %s booking", strings.ToLower(string(current))))
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
