package cron

import (
	"log"

	"hooprank-api/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron           *cron.Cron
	statsService   *services.StatsService
	refreshService *services.RefreshService
}

func NewScheduler(statsService *services.StatsService, refreshService *services.RefreshService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:           c,
		statsService:   statsService,
		refreshService: refreshService,
	}
}

// Start registers and starts the scheduled jobs.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Providers restate recent box scores; re-run the recent weeks hourly.
	_, err := s.cron.AddFunc("0 0 * * * *", s.runRecentWeeksRefresh)
	if err != nil {
		log.Printf("Error scheduling recent-weeks refresh: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runRecentWeeksRefresh recomputes the latest completed weeks of the most
// recent season with data.
func (s *Scheduler) runRecentWeeksRefresh() {
	log.Println("Running recent-weeks refresh job...")

	years, err := s.statsService.Seasons()
	if err != nil {
		log.Printf("Error loading seasons for refresh: %v", err)
		return
	}
	if len(years) == 0 {
		log.Println("No seasons with data, nothing to refresh")
		return
	}

	season := years[len(years)-1]
	refreshed, err := s.refreshService.RefreshRecentWeeks(season)
	if err != nil {
		log.Printf("Error during recent-weeks refresh for %d: %v", season, err)
		return
	}
	if len(refreshed) == 0 {
		log.Printf("No completed weeks to refresh for %d", season)
		return
	}

	log.Printf("Recent-weeks refresh completed for %d: weeks %v", season, refreshed)
}

// RunNow manually triggers the refresh job.
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering recent-weeks refresh...")
	s.runRecentWeeksRefresh()
}
