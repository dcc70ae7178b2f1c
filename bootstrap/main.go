package bootstrap

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	pprof_gin "github.com/gin-contrib/pprof"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/audioskills/skillboard/config"
	"github.com/audioskills/skillboard/controllers"
	"github.com/audioskills/skillboard/middleware"
	"github.com/audioskills/skillboard/models"
	"github.com/audioskills/skillboard/policy"
)

// based on https://www.digitalocean.com/community/tutorials/using-ldflags-to-set-version-information-for-go-applications
var Version = "dev"

func Bootstrap(templates embed.FS) *gin.Engine {
	initLogging()
	cfg := config.SkillboardConfig

	if err := policy.Validate(); err != nil {
		slog.Error("role policy table is incomplete", "error", err)
		panic(err)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		EnableTracing:    true,
		TracesSampleRate: 0.1,
		Release:          "skillboard@" + Version,
	}); err != nil {
		slog.Error("Sentry initialization failed", "error", err)
	}

	models.ConnectDatabase()

	identityProvider := middleware.GetIdentityProvider()

	r := gin.Default()

	r.Use(sloggin.New(slog.Default().WithGroup("http")))
	r.Use(middleware.RequestId())

	if _, exists := os.LookupEnv("SKILLBOARD_PPROF_DEBUG_ENABLED"); exists {
		pprof_gin.Register(r)
	}

	store := gormsessions.NewStore(models.DB.GormDB, true, []byte(config.GetSessionSecret()))
	r.Use(sessions.Sessions("skillboard-session", store))

	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	// the resolver must be installed before any gate runs
	r.Use(middleware.SessionMiddleware(identityProvider, models.DB))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"build_date":  cfg.GetString("build_date"),
			"deployed_at": cfg.GetString("deployed_at"),
			"version":     Version,
		})
	})

	r.SetFuncMap(template.FuncMap{
		"formatAsDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	})

	if _, err := os.Stat("templates"); err != nil {
		matches, _ := fs.Glob(templates, "templates/*.tmpl")
		for _, match := range matches {
			r.LoadHTMLFiles(match)
		}
		r.StaticFS("/static", http.FS(templates))
	} else {
		r.Static("/static", "./templates/static")
		r.LoadHTMLGlob("templates/*.tmpl")
	}

	web := controllers.WebController{Config: cfg}
	authController := controllers.AuthController{Provider: identityProvider}

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, policy.HomePath)
	})

	r.GET("/auth/login", authController.LoginPage)
	r.POST("/auth/login", authController.Login)
	r.GET("/auth/logout", authController.Logout)

	protected := r.Group("/")
	protected.Use(middleware.RouteGate(policy.GroupProtected))
	protected.GET("/dashboard", controllers.DashboardDispatch)
	protected.GET("/protected/home", web.HomePage)
	protected.GET("/protected/profile", web.ProfilePage)

	admin := r.Group("/admin")
	admin.Use(middleware.RouteGate(policy.GroupAdmin))
	admin.GET("/profiles", web.ProfilesPage)
	admin.POST("/profiles/:profileid/role", web.ProfileRoleUpdatePage)
	admin.GET("/locations", web.LocationsPage)
	admin.GET("/locations/add", web.AddLocationPage)
	admin.POST("/locations/add", web.AddLocationPage)
	admin.POST("/locations/:locationid/toggle", web.LocationToggleActivePage)
	admin.GET("/settings/branding", web.BrandingPage)
	admin.POST("/settings/branding", web.BrandingPage)

	skillMaster := r.Group("/skill-master")
	skillMaster.Use(middleware.RouteGate(policy.GroupSkillMaster))
	skillMaster.GET("/job-profiles", web.JobProfilesPage)
	skillMaster.GET("/job-profiles/add", web.AddJobProfilePage)
	skillMaster.POST("/job-profiles/add", web.AddJobProfilePage)
	skillMaster.GET("/job-profiles/:jobprofileid", web.JobProfileDetailsPage)
	skillMaster.POST("/job-profiles/:jobprofileid/qualifiers", web.AttachQualifierPage)
	skillMaster.GET("/qualifiers", web.QualifiersPage)
	skillMaster.GET("/qualifiers/add", web.AddQualifierPage)
	skillMaster.POST("/qualifiers/add", web.AddQualifierPage)

	evaluator := r.Group("/evaluator")
	evaluator.Use(middleware.RouteGate(policy.GroupEvaluator))
	evaluator.GET("/evaluations", web.EvaluationsPage)
	evaluator.GET("/evaluations/export", web.EvaluationsExport)
	evaluator.GET("/evaluations/add", web.AddEvaluationPage)
	evaluator.POST("/evaluations/add", web.AddEvaluationPage)
	evaluator.GET("/stats", web.StatsPage)

	return r
}

func initLogging() {
	logLevel := os.Getenv("SKILLBOARD_LOG_LEVEL")
	var level slog.Leveler

	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
