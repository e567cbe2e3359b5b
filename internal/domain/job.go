package domain

// Job is an immutable profession definition. Salary is stored in minor units
// per shift; constructors take display units.
type Job struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Salary      Money  `json:"salary"`
}

// Unemployed is the sentinel for "no job". It is treated identically to an
// absent row in storage.
var Unemployed = Job{Name: "Unemployed", Description: "No job", Salary: 0}

// NewJob constructs a validated job definition. salaryCoins is the per-shift
// pay in display units.
func NewJob(name, description string, salaryCoins int) (Job, error) {
	if name == "" {
		return Job{}, ErrEmptyName
	}
	if description == "" {
		return Job{}, ErrEmptyDescription
	}
	if salaryCoins <= 0 {
		return Job{}, ErrInvalidSalary
	}
	return Job{
		Name:        name,
		Description: description,
		Salary:      MoneyFromCoins(salaryCoins),
	}, nil
}

// IsUnemployed reports whether the job is the sentinel or a zero value.
func (j Job) IsUnemployed() bool {
	return j.Name == "" || j.Name == Unemployed.Name
}
