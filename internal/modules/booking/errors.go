package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid booking input")
	ErrNotFound     = errors.New("booking not found")
)

// Validation error codes. Each rejected booking reports one or more of
// these, with the structured fields filled in alongside the message.
const (
	CodeServiceNotFound         = "SERVICE_NOT_FOUND"
	CodeWorkItemNotFound        = "WORK_ITEM_NOT_FOUND"
	CodeDuplicateBooking        = "DUPLICATE_BOOKING"
	CodeWorkItemServiceMismatch = "WORK_ITEM_SERVICE_MISMATCH"
	CodeInvalidPrice            = "INVALID_PRICE"
	CodePriceMismatch           = "PRICE_MISMATCH"
	CodeEmptyAddress            = "EMPTY_ADDRESS"
)

// FieldError is one tagged validation failure. Only the fields relevant to
// its code are set.
type FieldError struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	ServiceID     *int64   `json:"service_id,omitempty"`
	WorkItemID    *int64   `json:"work_item_id,omitempty"`
	WorkItemName  string   `json:"work_item_name,omitempty"`
	SuppliedPrice *float64 `json:"supplied_price,omitempty"`
	ExpectedPrice *float64 `json:"expected_price,omitempty"`
	Date          string   `json:"booking_date,omitempty"`
	Time          string   `json:"booking_time,omitempty"`
}

// ValidationErrors collects every failure found in one validation pass so
// the caller is never left guessing why a booking was rejected.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func errServiceNotFound(id int64) FieldError {
	return FieldError{
		Code:      CodeServiceNotFound,
		Message:   fmt.Sprintf("Service with ID %d does not exist.", id),
		ServiceID: &id,
	}
}

func errWorkItemNotFound(id int64) FieldError {
	return FieldError{
		Code:       CodeWorkItemNotFound,
		Message:    fmt.Sprintf("Work specification with ID %d does not exist.", id),
		WorkItemID: &id,
	}
}

func errDuplicateBooking(date, timeOfDay string) FieldError {
	return FieldError{
		Code: CodeDuplicateBooking,
		Message: fmt.Sprintf(
			"You already have a booking for this service on %s at %s. Please choose a different time or date.",
			date, timeOfDay),
		Date: date,
		Time: timeOfDay,
	}
}

func errWorkItemServiceMismatch(id int64, name string) FieldError {
	return FieldError{
		Code:         CodeWorkItemServiceMismatch,
		Message:      fmt.Sprintf("The work specification %q does not belong to the chosen service.", name),
		WorkItemID:   &id,
		WorkItemName: name,
	}
}

func errInvalidPrice(supplied float64) FieldError {
	return FieldError{
		Code:          CodeInvalidPrice,
		Message:       "A valid non-negative total price is required.",
		SuppliedPrice: &supplied,
	}
}

func errPriceMismatch(supplied, expected float64) FieldError {
	return FieldError{
		Code: CodePriceMismatch,
		Message: fmt.Sprintf(
			"The provided total price (%.2f) does not match the sum of work specification prices (%.2f).",
			supplied, expected),
		SuppliedPrice: &supplied,
		ExpectedPrice: &expected,
	}
}

func errEmptyAddress() FieldError {
	return FieldError{
		Code:    CodeEmptyAddress,
		Message: "Address cannot be empty.",
	}
}
