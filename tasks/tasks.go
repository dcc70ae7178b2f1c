package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron"

	"github.com/audioskills/skillboard/models"
)

func initLogging() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})
	slog.SetDefault(slog.New(handler))
}

func main() {
	initLogging()
	models.ConnectDatabase()

	c := cron.New()

	// nightly rollup of yesterday's evaluations into per-job-profile stats
	c.AddFunc("@daily", func() {
		day := time.Now().AddDate(0, 0, -1)
		if err := RunNightlyRollup(models.DB, day); err != nil {
			slog.Error("nightly evaluation rollup failed", "day", day.Format("2006-01-02"), "error", err)
			return
		}
		slog.Info("nightly evaluation rollup completed", "day", day.Format("2006-01-02"))
	})

	c.Start()

	select {}
}
