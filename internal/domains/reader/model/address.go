package model

import "fmt"

// Address is the postal address of a reader. The zero value means
// "no address on file"; all fields are stored flattened into the
// readers sheet with blanks for missing values.
type Address struct {
	City       string `json:"city"`
	Street     string `json:"street"`
	Apartment  string `json:"apartment"`
	PostalCode string `json:"postal_code"`
}

// IsZero reports whether no address was provided.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s %s, %s %s", a.Street, a.Apartment, a.PostalCode, a.City)
}
