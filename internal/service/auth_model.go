package service

import "github.com/gofrs/uuid/v5"

// Signup carries the fields a new user registers with. Everything beyond
// name, email and password is optional.
type Signup struct {
	Name                 string
	Email                string
	Password             string
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

// Session identifies a logged-in user in the service layer.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
}
