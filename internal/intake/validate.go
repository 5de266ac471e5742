package intake

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"katalog/internal/models"
)

// ErrorSet maps a payload field name to its violation message. An empty set
// means the payload is acceptable. The messages are part of the API contract
// and must not be reworded.
type ErrorSet map[string]string

// fieldErrors translates a failed struct field to its payload key and the
// fixed message clients depend on. Coercion failure and "zero or negative"
// both land on the same price message on purpose.
var fieldErrors = map[string]struct {
	Key     string
	Message string
}{
	"Name":        {"name", "The name length should be at least 2 characters"},
	"Brand":       {"brand", "The brand length should be at least 2 characters"},
	"Category":    {"category", "The category length should be at least 2 characters"},
	"Price":       {"price", "The price is not valid"},
	"Description": {"description", "The description length should be at least 10 characters"},
}

var validate = validator.New()

// Validate normalizes a raw payload into a Product or reports every violated
// field at once. It is a pure function: no clock reads, no I/O, same input
// gives the same result. Server-owned fields (createdAt, imageFilename) are
// carried through untouched; stamping them is the pipeline's job.
func Validate(raw map[string]interface{}) (models.Product, ErrorSet) {
	product := models.Product{
		Name:          stringField(raw, "name"),
		Brand:         stringField(raw, "brand"),
		Category:      stringField(raw, "category"),
		Price:         numberField(raw, "price"),
		Description:   stringField(raw, "description"),
		ImageFilename: stringField(raw, "imageFilename"),
		CreatedAt:     stringField(raw, "createdAt"),
	}

	err := validate.Struct(product)
	if err == nil {
		return product, nil
	}

	errs := make(ErrorSet)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		if known, ok := fieldErrors[fieldErr.StructField()]; ok {
			errs[known.Key] = known.Message
		}
	}
	if len(errs) > 0 {
		return models.Product{}, errs
	}
	return product, nil
}

// stringField pulls a string value out of the raw payload; anything missing
// or of the wrong type comes back empty and fails the length checks.
func stringField(raw map[string]interface{}, key string) string {
	value, ok := raw[key].(string)
	if !ok {
		return ""
	}
	return value
}

// numberField coerces the payload value to a float64. Multipart form fields
// arrive as strings, JSON bodies as float64; a missing or malformed value
// coerces to zero, which the gt=0 rule then rejects.
func numberField(raw map[string]interface{}, key string) float64 {
	switch value := raw[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
