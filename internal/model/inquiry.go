package model

import "time"

// Inquiry represents one contact-form submission. Sender-supplied fields,
// Origin and CreatedAt are immutable after insert; only Read and Replied
// may change afterwards.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Origin    string    `json:"origin"`
	Read      bool      `json:"read"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryListOptions carries filter and pagination parameters for listing inquiries.
type InquiryListOptions struct {
	// Status filters by read state: "", "all", "unread", "read".
	// Empty string and "all" return all inquiries.
	Status string
	Limit  int
	Offset int
}
