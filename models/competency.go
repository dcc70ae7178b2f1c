package models

import (
	"time"

	"gorm.io/gorm"
)

type EvaluationStatus string

const (
	EvaluationStatusDraft     EvaluationStatus = "draft"
	EvaluationStatusSubmitted EvaluationStatus = "submitted"
	EvaluationStatusValidated EvaluationStatus = "validated"
)

// JobProfile describes an audiology job role and the qualifiers it requires.
type JobProfile struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_job_profile_name"`
	Description string
	Qualifiers  []Qualifier `gorm:"many2many:job_profile_qualifiers;"`
}

// Qualifier is a single rated competency, e.g. "pure-tone audiometry".
type Qualifier struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex:idx_qualifier_name"`
	Category string
	MaxLevel int `gorm:"default:5"`
}

type Location struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex:idx_location_name"`
	City   string
	Active bool `gorm:"default:true"`
}

// Evaluation records one evaluator scoring one professional against a job
// profile at a location.
type Evaluation struct {
	gorm.Model
	ProfileID    uint
	Profile      *Profile
	EvaluatorID  uint
	Evaluator    *Profile `gorm:"foreignKey:EvaluatorID"`
	JobProfileID uint
	JobProfile   *JobProfile
	LocationID   uint
	Location     *Location
	Score        int
	Status       EvaluationStatus `gorm:"default:'draft'"`
	EvaluatedAt  time.Time
}

func (e *Evaluation) MapToJsonStruct() interface{} {
	jobProfileName := ""
	if e.JobProfile != nil {
		jobProfileName = e.JobProfile.Name
	}
	locationName := ""
	if e.Location != nil {
		locationName = e.Location.Name
	}
	return struct {
		Id          uint      `json:"id"`
		ProfileId   uint      `json:"profile_id"`
		JobProfile  string    `json:"job_profile"`
		Location    string    `json:"location"`
		Score       int       `json:"score"`
		Status      string    `json:"status"`
		EvaluatedAt time.Time `json:"evaluated_at"`
	}{
		Id:          e.ID,
		ProfileId:   e.ProfileID,
		JobProfile:  jobProfileName,
		Location:    locationName,
		Score:       e.Score,
		Status:      string(e.Status),
		EvaluatedAt: e.EvaluatedAt,
	}
}

// EvaluationStat is a per-job-profile per-day rollup row maintained by the
// nightly stats task and read by the stats page.
type EvaluationStat struct {
	gorm.Model
	JobProfileID uint `gorm:"uniqueIndex:idx_stat_day_profile"`
	JobProfile   *JobProfile
	Day          time.Time `gorm:"uniqueIndex:idx_stat_day_profile"`
	Count        int
	AverageScore float64
}

// BrandingSetting holds the dashboard branding. A single row is created at
// startup; the admin settings page edits it in place.
type BrandingSetting struct {
	gorm.Model
	OrganisationName string
	LogoUrl          string
	PrimaryColor     string
}
