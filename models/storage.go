package models

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileByExternalId looks a profile up by the identity provider's id.
// "No row" is a normal outcome and comes back as (nil, nil); callers that
// gate on profiles treat it as unprovisioned.
func (db *Database) GetProfileByExternalId(externalId string) (*Profile, error) {
	var profile Profile
	err := db.GormDB.Where("external_id = ?", externalId).Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("error fetching profile by external id", "externalId", externalId, "error", err)
		return nil, err
	}
	return &profile, nil
}

func (db *Database) GetProfileByEmail(email string) (*Profile, error) {
	var profile Profile
	err := db.GormDB.Where("email = ?", email).Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("error fetching profile by email", "error", err)
		return nil, err
	}
	return &profile, nil
}

func (db *Database) GetProfileById(id uint) (*Profile, error) {
	var profile Profile
	err := db.GormDB.Take(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (db *Database) GetProfiles() ([]Profile, error) {
	var profiles []Profile
	err := db.GormDB.Order("last_name, first_name").Find(&profiles).Error
	if err != nil {
		slog.Error("error fetching profiles", "error", err)
		return nil, err
	}
	return profiles, nil
}

func (db *Database) CreateProfile(externalId string, role string, firstName string, lastName string, email string) (*Profile, error) {
	if externalId == "" {
		externalId = uuid.NewString()
	}
	profile := &Profile{
		ExternalId: externalId,
		Role:       role,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
	}
	result := db.GormDB.Create(profile)
	if result.Error != nil {
		return nil, result.Error
	}
	slog.Info("profile created", "externalId", externalId, "role", role)
	return profile, nil
}

func (db *Database) UpdateProfileRole(profile *Profile, role string) error {
	profile.Role = role
	return db.GormDB.Save(profile).Error
}

func (db *Database) GetJobProfiles() ([]JobProfile, error) {
	var jobProfiles []JobProfile
	err := db.GormDB.Preload("Qualifiers").Order("name").Find(&jobProfiles).Error
	if err != nil {
		slog.Error("error fetching job profiles", "error", err)
		return nil, err
	}
	return jobProfiles, nil
}

func (db *Database) GetJobProfileById(id uint) (*JobProfile, error) {
	var jobProfile JobProfile
	err := db.GormDB.Preload("Qualifiers").Take(&jobProfile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &jobProfile, nil
}

func (db *Database) CreateJobProfile(name string, description string) (*JobProfile, error) {
	jobProfile := &JobProfile{Name: name, Description: description}
	result := db.GormDB.Create(jobProfile)
	if result.Error != nil {
		return nil, result.Error
	}
	return jobProfile, nil
}

// AttachQualifier links a qualifier to a job profile, ignoring duplicates.
func (db *Database) AttachQualifier(jobProfile *JobProfile, qualifier *Qualifier) error {
	return db.GormDB.Model(jobProfile).Association("Qualifiers").Append(qualifier)
}

func (db *Database) GetQualifiers() ([]Qualifier, error) {
	var qualifiers []Qualifier
	err := db.GormDB.Order("category, name").Find(&qualifiers).Error
	if err != nil {
		slog.Error("error fetching qualifiers", "error", err)
		return nil, err
	}
	return qualifiers, nil
}

func (db *Database) CreateQualifier(name string, category string, maxLevel int) (*Qualifier, error) {
	qualifier := &Qualifier{Name: name, Category: category, MaxLevel: maxLevel}
	result := db.GormDB.Create(qualifier)
	if result.Error != nil {
		return nil, result.Error
	}
	return qualifier, nil
}

func (db *Database) GetLocations() ([]Location, error) {
	var locations []Location
	err := db.GormDB.Order("name").Find(&locations).Error
	if err != nil {
		slog.Error("error fetching locations", "error", err)
		return nil, err
	}
	return locations, nil
}

func (db *Database) GetLocationById(id uint) (*Location, error) {
	var location Location
	err := db.GormDB.Take(&location, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (db *Database) CreateLocation(name string, city string) (*Location, error) {
	location := &Location{Name: name, City: city, Active: true}
	result := db.GormDB.Create(location)
	if result.Error != nil {
		return nil, result.Error
	}
	return location, nil
}

func (db *Database) UpdateLocation(location *Location) error {
	return db.GormDB.Save(location).Error
}

func (db *Database) GetEvaluations() ([]Evaluation, error) {
	var evaluations []Evaluation
	err := db.GormDB.Preload("Profile").Preload("Evaluator").Preload("JobProfile").Preload("Location").
		Order("evaluated_at desc").Find(&evaluations).Error
	if err != nil {
		slog.Error("error fetching evaluations", "error", err)
		return nil, err
	}
	return evaluations, nil
}

func (db *Database) GetEvaluationsForProfile(profileId uint) ([]Evaluation, error) {
	var evaluations []Evaluation
	err := db.GormDB.Preload("JobProfile").Preload("Location").
		Where("profile_id = ?", profileId).Order("evaluated_at desc").Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (db *Database) GetEvaluationsBetween(from time.Time, to time.Time) ([]Evaluation, error) {
	var evaluations []Evaluation
	err := db.GormDB.Where("evaluated_at >= ? AND evaluated_at < ?", from, to).Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (db *Database) CreateEvaluation(profileId uint, evaluatorId uint, jobProfileId uint, locationId uint, score int, evaluatedAt time.Time) (*Evaluation, error) {
	evaluation := &Evaluation{
		ProfileID:    profileId,
		EvaluatorID:  evaluatorId,
		JobProfileID: jobProfileId,
		LocationID:   locationId,
		Score:        score,
		Status:       EvaluationStatusSubmitted,
		EvaluatedAt:  evaluatedAt,
	}
	result := db.GormDB.Create(evaluation)
	if result.Error != nil {
		return nil, result.Error
	}
	slog.Info("evaluation recorded", "profileId", profileId, "jobProfileId", jobProfileId, "score", score)
	return evaluation, nil
}

// UpsertEvaluationStat writes one rollup row, replacing an existing row for
// the same job profile and day.
func (db *Database) UpsertEvaluationStat(jobProfileId uint, day time.Time, count int, averageScore float64) (*EvaluationStat, error) {
	day = day.Truncate(24 * time.Hour)
	var stat EvaluationStat
	err := db.GormDB.Where("job_profile_id = ? AND day = ?", jobProfileId, day).Take(&stat).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error fetching evaluation stat: %w", err)
	}
	stat.JobProfileID = jobProfileId
	stat.Day = day
	stat.Count = count
	stat.AverageScore = averageScore
	if err := db.GormDB.Save(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (db *Database) GetEvaluationStats() ([]EvaluationStat, error) {
	var stats []EvaluationStat
	err := db.GormDB.Preload("JobProfile").Order("day desc").Find(&stats).Error
	if err != nil {
		slog.Error("error fetching evaluation stats", "error", err)
		return nil, err
	}
	return stats, nil
}

func (db *Database) GetBrandingSetting() (*BrandingSetting, error) {
	var branding BrandingSetting
	err := db.GormDB.Order("id").Take(&branding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branding, nil
}

func (db *Database) CreateBrandingSetting(organisationName string, logoUrl string, primaryColor string) (*BrandingSetting, error) {
	branding := &BrandingSetting{
		OrganisationName: organisationName,
		LogoUrl:          logoUrl,
		PrimaryColor:     primaryColor,
	}
	result := db.GormDB.Create(branding)
	if result.Error != nil {
		return nil, result.Error
	}
	return branding, nil
}

func (db *Database) UpdateBrandingSetting(branding *BrandingSetting) error {
	return db.GormDB.Save(branding).Error
}
