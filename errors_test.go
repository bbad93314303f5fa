package leakradar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leakradar/client-go/internal/api"
)

func TestNewStatusError_TypedMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		want   string
	}{
		{400, func(err error) bool {
			var e *BadRequestError
			return errors.As(err, &e)
		}, "*BadRequestError"},
		{401, func(err error) bool {
			var e *UnauthorizedError
			return errors.As(err, &e)
		}, "*UnauthorizedError"},
		{403, func(err error) bool {
			var e *ForbiddenError
			return errors.As(err, &e)
		}, "*ForbiddenError"},
		{404, func(err error) bool {
			var e *NotFoundError
			return errors.As(err, &e)
		}, "*NotFoundError"},
		{422, func(err error) bool {
			var e *ValidationError
			return errors.As(err, &e)
		}, "*ValidationError"},
		{429, func(err error) bool {
			var e *TooManyRequestsError
			return errors.As(err, &e)
		}, "*TooManyRequestsError"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := newStatusError(tt.status, "detail", nil)
			if !tt.check(err) {
				t.Errorf("newStatusError(%d) = %T, want %s", tt.status, err, tt.want)
			}
		})
	}
}

func TestNewStatusError_OtherStatusIsBareAPIError(t *testing.T) {
	for _, status := range []int{409, 418, 500, 502, 503} {
		err := newStatusError(status, "boom", nil)

		if _, ok := err.(*APIError); !ok {
			t.Errorf("newStatusError(%d) = %T, want bare *APIError", status, err)
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("newStatusError(%d) not an *APIError", status)
		}
		if apiErr.StatusCode != status {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, status)
		}
	}
}

func TestTypedErrors_UnwrapToBase(t *testing.T) {
	body := map[string]any{"detail": "rate limited"}
	err := newStatusError(429, "rate limited", body)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As(*APIError) = false, want true")
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Detail != "rate limited" {
		t.Errorf("Detail = %q, want %q", apiErr.Detail, "rate limited")
	}
	if apiErr.Body["detail"] != "rate limited" {
		t.Errorf("Body[detail] = %v, want %q", apiErr.Body["detail"], "rate limited")
	}
}

func TestAPIError_Sentinels(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{422, ErrValidation},
		{429, ErrRateLimited},
	}

	for _, tt := range tests {
		err := newStatusError(tt.status, "", nil)
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("errors.Is(status %d, %v) = false, want true", tt.status, tt.sentinel)
		}
	}

	// A 500 matches no sentinel.
	err := newStatusError(500, "", nil)
	for _, tt := range tests {
		if errors.Is(err, tt.sentinel) {
			t.Errorf("errors.Is(status 500, %v) = true, want false", tt.sentinel)
		}
	}
}

func TestAPIError_ErrorFormat(t *testing.T) {
	err := &APIError{StatusCode: 429, Detail: "rate limited"}
	if got, want := err.Error(), "API error 429: rate limited"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &APIError{StatusCode: 500}
	if got, want := err.Error(), "API error 500"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapError_ConvertsAPIErrors(t *testing.T) {
	err := wrapError(&api.Error{StatusCode: 404, Detail: "no such leak"})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("wrapError() = %T, want *NotFoundError", err)
	}
	if notFound.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", notFound.StatusCode)
	}
	if notFound.Detail != "no such leak" {
		t.Errorf("Detail = %q, want %q", notFound.Detail, "no such leak")
	}
}

func TestWrapError_TransportErrorsPassThrough(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	if got := wrapError(cause); got != cause {
		t.Errorf("wrapError(transport err) = %v, want the error unchanged", got)
	}

	if got := wrapError(nil); got != nil {
		t.Errorf("wrapError(nil) = %v, want nil", got)
	}
}

func TestErrorTypes_ImplementMarkerInterface(t *testing.T) {
	errs := []error{
		newStatusError(400, "", nil),
		newStatusError(401, "", nil),
		newStatusError(403, "", nil),
		newStatusError(404, "", nil),
		newStatusError(422, "", nil),
		newStatusError(429, "", nil),
		newStatusError(500, "", nil),
	}
	for _, err := range errs {
		if _, ok := err.(LeakRadarError); !ok {
			t.Errorf("%T does not implement LeakRadarError", err)
		}
	}
}
