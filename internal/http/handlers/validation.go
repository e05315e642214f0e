package handlers

import "fmt"

// ValidationError reports a required field missing from a request body.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("Missing field '%s'", e.Field)
}

// validateProduct checks the fields create and update both require. A key sent
// as null counts as missing.
func validateProduct(p ProductRequest) error {
	if p.Name == nil {
		return ValidationError{Field: "name"}
	}
	if p.SKU == nil {
		return ValidationError{Field: "sku"}
	}
	return nil
}

func validateRestock(r RestockRequest) error {
	if r.Quantity == nil {
		return ValidationError{Field: "quantity"}
	}
	return nil
}
