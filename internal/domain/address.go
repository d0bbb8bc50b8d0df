package domain

import "time"

// Address customer service address
type Address struct {
	ID        string
	Name      string
	Phone     string
	Line1     string
	Pincode   string
	Landmark  *string
	CreatedAt time.Time
}
