package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

func validRequest() Request {
	return Request{
		RestaurantID:  "R1",
		Date:          "2024-06-01",
		Time:          "19:00",
		PartySize:     4,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+353871234567",
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		mutate     func(r *Request)
		wantFields []string
		wantCode   string
	}{
		{"valid", func(r *Request) {}, nil, ""},
		{"party size 1", func(r *Request) { r.PartySize = 1 }, nil, ""},
		{"party size 12", func(r *Request) { r.PartySize = 12 }, nil, ""},
		{"party size 0", func(r *Request) { r.PartySize = 0 }, []string{"partySize"}, apperror.FieldOutOfRange},
		{"party size 13", func(r *Request) { r.PartySize = 13 }, []string{"partySize"}, apperror.FieldOutOfRange},
		{"short email", func(r *Request) { r.CustomerEmail = "a@b.co" }, nil, ""},
		{"not an email", func(r *Request) { r.CustomerEmail = "not-an-email" }, []string{"customerEmail"}, apperror.FieldInvalidFormat},
		{"email without tld", func(r *Request) { r.CustomerEmail = "jane@localhost" }, []string{"customerEmail"}, apperror.FieldInvalidFormat},
		{"empty email", func(r *Request) { r.CustomerEmail = "" }, []string{"customerEmail"}, apperror.FieldRequired},
		{"name of one char", func(r *Request) { r.CustomerName = "J" }, []string{"customerName"}, apperror.FieldTooShort},
		{"name padded with spaces", func(r *Request) { r.CustomerName = "  J  " }, []string{"customerName"}, apperror.FieldTooShort},
		{"short phone", func(r *Request) { r.CustomerPhone = "12345" }, []string{"customerPhone"}, apperror.FieldTooShort},
		{"phone with punctuation", func(r *Request) { r.CustomerPhone = "(01) 234-5678" }, nil, ""},
		{"bad date", func(r *Request) { r.Date = "01/06/2024" }, []string{"date"}, apperror.FieldInvalidFormat},
		{"bad time", func(r *Request) { r.Time = "7pm" }, []string{"time"}, apperror.FieldInvalidFormat},
		{"missing restaurant", func(r *Request) { r.RestaurantID = "" }, []string{"restaurantId"}, apperror.FieldRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			got, err := v.Validate(req)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, req.RestaurantID, got.RestaurantID)
				return
			}

			require.Error(t, err)
			appErr := apperror.From(err)
			assert.Equal(t, apperror.KindValidation, appErr.Kind())
			assert.Equal(t, tt.wantFields, appErr.FieldNames())
			assert.Equal(t, tt.wantCode, appErr.Fields[0].Code)
			assert.NotEmpty(t, appErr.Fields[0].Message)
		})
	}
}

func TestValidator_ReportsEveryViolation(t *testing.T) {
	v := NewValidator()

	_, err := v.Validate(Request{
		RestaurantID:  "R1",
		Date:          "2024-06-01",
		Time:          "19:00",
		PartySize:     0,
		CustomerName:  "J",
		CustomerEmail: "nope",
		CustomerPhone: "123",
	})
	require.Error(t, err)
	assert.ElementsMatch(t,
		[]string{"partySize", "customerName", "customerEmail", "customerPhone"},
		apperror.From(err).FieldNames(),
	)
}

func TestValidator_TrimsCustomerFields(t *testing.T) {
	req := validRequest()
	req.CustomerName = "  Jane Doe "
	req.CustomerEmail = " jane@example.com"

	got, err := NewValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)
	assert.Equal(t, "jane@example.com", got.CustomerEmail)
}
