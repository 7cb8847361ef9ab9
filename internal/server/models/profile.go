package models

import "time"

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self_employed"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentRetired      EmploymentStatus = "retired"
)

// RequiresEmployer reports whether employer name and job title must be set.
func (s EmploymentStatus) RequiresEmployer() bool {
	return s == EmploymentEmployed || s == EmploymentSelfEmployed
}

type Address struct {
	ID            string `json:"id"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Profile holds the loan-relevant personal data of a user. MonthlyIncome is
// kept in minor currency units.
type Profile struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	PhoneNumber      string           `json:"phone_number"`
	DateOfBirth      time.Time        `json:"date_of_birth"`
	MonthlyIncome    int64            `json:"monthly_income"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	EmployerName     string           `json:"employer_name"`
	JobTitle         string           `json:"job_title"`
	Address          Address          `json:"address"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
