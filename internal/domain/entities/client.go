package entities

import "time"

// Client is the partner profile attached to an authenticated user.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// A signed-in user without a Client record is not a partner.
type Client struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact returns the profile as wizard contact details.
func (c Client) Contact() ContactInfo {
	return ContactInfo{Name: c.Name, Email: c.Email, Phone: c.Phone, Company: c.Company}
}
