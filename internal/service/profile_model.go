package service

import "github.com/gofrs/uuid/v5"

// Profile merges a user's personal record with their professional details
// into the single shape the profile endpoints serve.
type Profile struct {
	UserID   uuid.UUID
	Personal PersonalDetails
	Work     WorkDetails
}

// PersonalDetails is the personal half of a profile.
type PersonalDetails struct {
	Name                 string
	Email                string
	DateOfBirth          string
	Gender               string
	MaritalStatus        string
	BloodGroup           string
	PhysicallyChallenged string
	Phone                string
	PhoneSecondary       string
	Address1             string
	Address2             string
	City                 string
	State                string
	ZipCode              string
	Country              string
	ProfilePhoto         string
}

// WorkDetails is the professional half of a profile.
type WorkDetails struct {
	Designation       string
	BusinessUnit      string
	Department        string
	WorkStation       string
	ReportingTo       string
	EmployeeID        string
	EmailProfessional string
	DateOfJoining     string
	Degree            string
	Institution       string
	Year              string
	Percentage        string
}
