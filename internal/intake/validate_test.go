package intake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/intake"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Mug",
		"brand":       "Acme",
		"category":    "Kitchen",
		"price":       "12.5",
		"description": "A nice ceramic mug",
	}
}

func TestValidate_ValidPayload(t *testing.T) {
	product, errs := intake.Validate(validPayload())

	assert.Nil(t, errs)
	assert.Equal(t, "Mug", product.Name)
	assert.Equal(t, "Acme", product.Brand)
	assert.Equal(t, "Kitchen", product.Category)
	assert.Equal(t, 12.5, product.Price)
	assert.Equal(t, "A nice ceramic mug", product.Description)
}

func TestValidate_PriceCoercion(t *testing.T) {
	tests := []struct {
		name      string
		price     interface{}
		wantPrice float64
		wantError bool
	}{
		{"string price", "19.99", 19.99, false},
		{"numeric price", 19.99, 19.99, false},
		{"integer price", 5, 5.0, false},
		{"zero price", "0", 0, true},
		{"negative price", "-5", 0, true},
		{"non-numeric price", "abc", 0, true},
		{"missing price", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			if tt.price == nil {
				delete(payload, "price")
			} else {
				payload["price"] = tt.price
			}

			product, errs := intake.Validate(payload)
			if tt.wantError {
				assert.Equal(t, "The price is not valid", errs["price"])
				assert.Len(t, errs, 1)
			} else {
				assert.Nil(t, errs)
				assert.Equal(t, tt.wantPrice, product.Price)
			}
		})
	}
}

func TestValidate_ReportsEveryViolatedField(t *testing.T) {
	// All five rules fail at once; the error set must enumerate all of them
	// rather than stopping at the first.
	_, errs := intake.Validate(map[string]interface{}{
		"name":  "M",
		"price": "0",
	})

	assert.Equal(t, intake.ErrorSet{
		"name":        "The name length should be at least 2 characters",
		"brand":       "The brand length should be at least 2 characters",
		"category":    "The category length should be at least 2 characters",
		"price":       "The price is not valid",
		"description": "The description length should be at least 10 characters",
	}, errs)
}

func TestValidate_SingleFieldFailure(t *testing.T) {
	payload := validPayload()
	payload["description"] = "too short"

	product, errs := intake.Validate(payload)
	assert.Equal(t, intake.ErrorSet{
		"description": "The description length should be at least 10 characters",
	}, errs)
	assert.Empty(t, product.Name)
}

func TestValidate_NonStringFieldFailsLengthCheck(t *testing.T) {
	payload := validPayload()
	payload["brand"] = 42

	_, errs := intake.Validate(payload)
	assert.Equal(t, "The brand length should be at least 2 characters", errs["brand"])
}

func TestValidate_Idempotent(t *testing.T) {
	payload := validPayload()
	first, firstErrs := intake.Validate(payload)
	second, secondErrs := intake.Validate(payload)
	assert.Equal(t, first, second)
	assert.Equal(t, firstErrs, secondErrs)

	bad := map[string]interface{}{"name": "M"}
	_, firstBad := intake.Validate(bad)
	_, secondBad := intake.Validate(bad)
	assert.Equal(t, firstBad, secondBad)
}

func TestValidate_CarriesServerOwnedFields(t *testing.T) {
	payload := validPayload()
	payload["imageFilename"] = "1700000000000_cat.png"
	payload["createdAt"] = "2024-01-02T03:04:05Z"

	product, errs := intake.Validate(payload)
	assert.Nil(t, errs)
	assert.Equal(t, "1700000000000_cat.png", product.ImageFilename)
	assert.Equal(t, "2024-01-02T03:04:05Z", product.CreatedAt)
}
