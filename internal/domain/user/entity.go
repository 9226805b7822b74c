package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDepartment = "Undeclared"
	DefaultYear       = 1
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Department   string
	Year         int
	Bio          string
	ProfilePhoto string
	Education    Education
	BadgesCount  int
	Points       int
	DateJoined   time.Time
	UpdatedAt    time.Time
}

type Degree struct {
	Institution string `json:"institution" yaml:"institution"`
	DegreeName  string `json:"degree_name" yaml:"degree_name"`
	Major       string `json:"major" yaml:"major"`
	CGPA        string `json:"cgpa" yaml:"cgpa"`
	About       string `json:"about" yaml:"about"`
}

type Intermediate struct {
	Institution string `json:"institution" yaml:"institution"`
	Board       string `json:"board" yaml:"board"`
	CGPA        string `json:"cgpa" yaml:"cgpa"`
}

type Schooling struct {
	Institution string `json:"institution" yaml:"institution"`
	Board       string `json:"board" yaml:"board"`
	Marks       string `json:"marks" yaml:"marks"`
}

type Education struct {
	Degree       Degree       `json:"degree" yaml:"degree"`
	Intermediate Intermediate `json:"intermediate" yaml:"intermediate"`
	Schooling    Schooling    `json:"schooling" yaml:"schooling"`
}

// Patch carries the editable profile fields. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Department   *string
	Year         *int
	Bio          *string
	Education    *Education
	ProfilePhoto *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Department == nil && p.Year == nil &&
		p.Bio == nil && p.Education == nil && p.ProfilePhoto == nil
}

// Apply merges the patch into u. ID and Email are never touched.
func (p Patch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Year != nil {
		u.Year = *p.Year
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Education != nil {
		u.Education = *p.Education
	}
	if p.ProfilePhoto != nil {
		u.ProfilePhoto = *p.ProfilePhoto
	}
	return u
}
