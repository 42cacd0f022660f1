package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "room not found"}, Error("room not found"))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		RoomID    int64  `validate:"required,gt=0"`
		StartTime string `validate:"required"`
		Email     string `validate:"omitempty,email"`
	}

	testCases := []struct {
		name     string
		req      request
		expected string
	}{
		{
			name:     "Required fields",
			req:      request{},
			expected: "field RoomID is a required field, field StartTime is a required field",
		},
		{
			name:     "Greater than",
			req:      request{RoomID: -3, StartTime: "x"},
			expected: "field RoomID must be greater than 0",
		},
		{
			name:     "Other tag",
			req:      request{RoomID: 1, StartTime: "x", Email: "nope"},
			expected: "field Email is not valid",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validator.New().Struct(tc.req)
			require.Error(t, err)

			var validateErr validator.ValidationErrors
			require.True(t, errors.As(err, &validateErr))

			resp := ValidationError(validateErr)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tc.expected, resp.Error)
		})
	}
}
