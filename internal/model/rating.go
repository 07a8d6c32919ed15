package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// CustomerRating is internal customer rating, valid values are 1 to 5
type CustomerRating int

const (
	// MinCustomerRating is the lowest rating
	MinCustomerRating CustomerRating = 1
	// MaxCustomerRating is the highest rating
	MaxCustomerRating CustomerRating = 5
)

var ratingIDRegexp = regexp.MustCompile(`^internal_rating\.([1-5])_of_5$`)

// NewCustomerRating builds rating from numeric value
func NewCustomerRating(v int) (CustomerRating, error) {
	r := CustomerRating(v)
	if !r.Valid() {
		return 0, fmt.Errorf("customer rating must be between %d and %d, got %d", MinCustomerRating, MaxCustomerRating, v)
	}
	return r, nil
}

// ParseCustomerRating parses rating from its identifier, e.g. internal_rating.3_of_5
func ParseCustomerRating(id string) (CustomerRating, error) {
	m := ratingIDRegexp.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("malformed customer rating identifier %q", id)
	}

	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	return CustomerRating(v), nil
}

// Valid reports whether rating is in allowed range
func (r CustomerRating) Valid() bool {
	return r >= MinCustomerRating && r <= MaxCustomerRating
}

// ID returns rating identifier
func (r CustomerRating) ID() string {
	return fmt.Sprintf("internal_rating.%d_of_%d", int(r), int(MaxCustomerRating))
}
