package models

import (
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSuite(tb testing.TB) (func(tb testing.TB), *Database) {
	log.Println("setup suite")

	// database file name
	dbName := "database_storage_test.db"

	// remove old database
	e := os.Remove(dbName)
	if e != nil {
		if !strings.Contains(e.Error(), "no such file or directory") {
			log.Fatal(e)
		}
	}

	// open and create a new database
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// migrate tables
	err = migrateSchema(gdb)
	if err != nil {
		log.Fatal(err)
	}

	database := &Database{GormDB: gdb}
	DB = database

	// Return a function to teardown the test
	return func(tb testing.TB) {
		log.Println("teardown suite")
		err = os.Remove(dbName)
		if err != nil {
			log.Fatal(err)
		}
	}, database
}

func TestCreateProfileAndLookupByExternalId(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	profile, err := db.CreateProfile("ext-1", "EVALUATOR", "Jean", "Dupont", "jean@clinic.example")
	assert.NoError(t, err)
	assert.NotNil(t, profile)

	found, err := db.GetProfileByExternalId("ext-1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, profile.ID, found.ID)
	assert.Equal(t, "EVALUATOR", found.Role)
}

func TestGetProfileByExternalIdMissingIsNotAnError(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	found, err := db.GetProfileByExternalId("nobody")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCreateProfileGeneratesExternalId(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	profile, err := db.CreateProfile("", "COLLABORATOR", "", "", "new@clinic.example")
	assert.NoError(t, err)
	assert.NotEmpty(t, profile.ExternalId)
}

func TestUpdateProfileRole(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	profile, err := db.CreateProfile("ext-1", "COLLABORATOR", "", "", "a@b.com")
	assert.NoError(t, err)

	err = db.UpdateProfileRole(profile, "EVALUATOR")
	assert.NoError(t, err)

	found, err := db.GetProfileByExternalId("ext-1")
	assert.NoError(t, err)
	assert.Equal(t, "EVALUATOR", found.Role)
}

func TestJobProfileWithQualifiers(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	jobProfile, err := db.CreateJobProfile("Clinical Audiologist", "Performs hearing assessments")
	assert.NoError(t, err)

	qualifier, err := db.CreateQualifier("Pure-tone audiometry", "diagnostics", 5)
	assert.NoError(t, err)

	err = db.AttachQualifier(jobProfile, qualifier)
	assert.NoError(t, err)

	found, err := db.GetJobProfileById(jobProfile.ID)
	assert.NoError(t, err)
	assert.Len(t, found.Qualifiers, 1)
	assert.Equal(t, "Pure-tone audiometry", found.Qualifiers[0].Name)
}

func TestEvaluationsForProfile(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	professional, _ := db.CreateProfile("ext-1", "COLLABORATOR", "Jean", "Dupont", "jean@clinic.example")
	evaluator, _ := db.CreateProfile("ext-2", "EVALUATOR", "Marie", "Curie", "marie@clinic.example")
	jobProfile, _ := db.CreateJobProfile("Clinical Audiologist", "")
	location, _ := db.CreateLocation("Main clinic", "Lyon")

	evaluation, err := db.CreateEvaluation(professional.ID, evaluator.ID, jobProfile.ID, location.ID, 85, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, EvaluationStatusSubmitted, evaluation.Status)

	evaluations, err := db.GetEvaluationsForProfile(professional.ID)
	assert.NoError(t, err)
	assert.Len(t, evaluations, 1)
	assert.Equal(t, 85, evaluations[0].Score)
	assert.Equal(t, "Clinical Audiologist", evaluations[0].JobProfile.Name)
}

func TestUpsertEvaluationStatReplacesExistingRow(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	jobProfile, _ := db.CreateJobProfile("Clinical Audiologist", "")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first, err := db.UpsertEvaluationStat(jobProfile.ID, day, 3, 80.0)
	assert.NoError(t, err)

	second, err := db.UpsertEvaluationStat(jobProfile.ID, day, 5, 75.0)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Count)
	assert.Equal(t, 75.0, second.AverageScore)
}

func TestBrandingSettings(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	missing, err := db.GetBrandingSetting()
	assert.NoError(t, err)
	assert.Nil(t, missing)

	created, err := db.CreateBrandingSetting("Clinique Auditive", "", "#1f6feb")
	assert.NoError(t, err)

	created.LogoUrl = "https://cdn.example/logo.png"
	assert.NoError(t, db.UpdateBrandingSetting(created))

	found, err := db.GetBrandingSetting()
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/logo.png", found.LogoUrl)
}

func TestLocationToggle(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	location, err := db.CreateLocation("Main clinic", "Lyon")
	assert.NoError(t, err)
	assert.True(t, location.Active)

	location.Active = false
	assert.NoError(t, db.UpdateLocation(location))

	found, err := db.GetLocationById(location.ID)
	assert.NoError(t, err)
	assert.False(t, found.Active)
}
