package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/audioskills/skillboard/models"
)

func setupControllerDB(t *testing.T) *models.Database {
	t.Helper()

	dbName := "database_controllers_test.db"
	os.Remove(dbName)
	t.Cleanup(func() { os.Remove(dbName) })

	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Profile{}, &models.JobProfile{}, &models.Qualifier{},
		&models.Location{}, &models.Evaluation{}, &models.EvaluationStat{}, &models.BrandingSetting{}))

	db := &models.Database{GormDB: gdb}
	models.DB = db
	return db
}

func TestEvaluationsExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupControllerDB(t)

	professional, _ := db.CreateProfile("ext-1", "COLLABORATOR", "Jean", "Dupont", "jean@clinic.example")
	evaluator, _ := db.CreateProfile("ext-2", "EVALUATOR", "Marie", "Curie", "marie@clinic.example")
	jobProfile, _ := db.CreateJobProfile("Clinical Audiologist", "")
	location, _ := db.CreateLocation("Main clinic", "Lyon")
	_, err := db.CreateEvaluation(professional.ID, evaluator.ID, jobProfile.ID, location.ID, 85, time.Now())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/evaluator/evaluations/export", nil)

	web := WebController{}
	web.EvaluationsExport(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Result []struct {
			JobProfile string `json:"job_profile"`
			Location   string `json:"location"`
			Score      int    `json:"score"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Result, 1)
	assert.Equal(t, "Clinical Audiologist", payload.Result[0].JobProfile)
	assert.Equal(t, "Main clinic", payload.Result[0].Location)
	assert.Equal(t, 85, payload.Result[0].Score)
}

func TestEvaluationsExportEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupControllerDB(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/evaluator/evaluations/export", nil)

	web := WebController{}
	web.EvaluationsExport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": []}`, w.Body.String())
}
