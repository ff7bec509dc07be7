package model

import "time"

// Enrollment is a user's registration for the event. A user must be
// enrolled and have at least one address on file before they are
// eligible to book a hotel room.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – enrolled user.
//  Name      – attendee full name.
//  CPF       – national document number.
//  Birthday  – attendee birth date.
//  Phone     – contact phone.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	CPF       string    // enrollments.cpf
	Birthday  time.Time // enrollments.birthday
	Phone     string    // enrollments.phone
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}

// Address is a postal address attached to an enrollment. The booking
// eligibility check only cares that one exists.
type Address struct {
	ID            uint64  // addresses.id
	EnrollmentID  uint64  // addresses.enrollment_id
	Street        string  // addresses.street
	City          string  // addresses.city
	State         string  // addresses.state
	CEP           string  // addresses.cep
	Number        string  // addresses.number
	Neighborhood  string  // addresses.neighborhood
	AddressDetail *string // addresses.address_detail (nullable)
}
