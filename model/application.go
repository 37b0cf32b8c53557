package model

import "time"

// Person holds the identity fields collected for the insured person and,
// when the owner is a different individual, for the owner. Phone is only
// filled for the insured person.
type Person struct {
	Name             string `json:"name"`
	BirthDate        string `json:"birthDate"`
	Passport         string `json:"passport"`
	PassportIssued   string `json:"passportIssued"`
	PassportIssuedBy string `json:"passportIssuedBy"`
	PassportDeptCode string `json:"passportDeptCode"`
	Address          string `json:"address"`
	License          string `json:"license"`
	LicenseIssued    string `json:"licenseIssued"`
	LicenseExpiry    string `json:"licenseExpiry"`
	Phone            string `json:"phone"`
}

type Vehicle struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Power        string `json:"power"`
	Plate        string `json:"plate"`
	VIN          string `json:"vin"`
	DocType      string `json:"docType"`
	DocNumber    string `json:"docNumber"`
	DocIssueDate string `json:"docIssueDate"`
}

type Driver struct {
	Name          string `json:"name"`
	License       string `json:"license"`
	LicenseIssued string `json:"licenseIssued"`
	LicenseExpiry string `json:"licenseExpiry"`
}

// Application is one in-progress session, keyed by the Telegram user ID.
// Owner stays nil while the owner and the insured person are the same
// individual. Draft holds the driver being entered inside the drivers
// sub-loop and is appended to Drivers only once its last field arrives.
type Application struct {
	UserID        int64     `json:"userID"`
	CorrelationID string    `json:"correlationID"`
	CreatedAt     time.Time `json:"createdAt"`
	CurrentStep   Step      `json:"currentStep"`
	SamePerson    bool      `json:"samePerson"`
	Insured       Person    `json:"insured"`
	Owner         *Person   `json:"owner,omitempty"`
	Vehicle       Vehicle   `json:"vehicle"`
	Drivers       []Driver  `json:"drivers"`
	Draft         *Driver   `json:"draft,omitempty"`
}

// Reset clears everything collected so far while keeping the session keys,
// so a restarted dialogue overwrites rather than merges.
func (a *Application) Reset() {
	a.SamePerson = false
	a.Insured = Person{}
	a.Owner = nil
	a.Vehicle = Vehicle{}
	a.Drivers = nil
	a.Draft = nil
}
