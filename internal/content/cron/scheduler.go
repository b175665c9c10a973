package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/befound-studio/studio-backend/internal/content/repository"
)

// Scheduler periodically re-primes the content cache so the work page stays
// warm between edits in the studio.
type Scheduler struct {
	cache *repository.CachedRepository
	spec  string
}

func NewScheduler(cache *repository.CachedRepository, spec string) *Scheduler {
	return &Scheduler{cache: cache, spec: spec}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.runRefresh()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (content refresh spec %q)", s.spec)
	c.Start()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.cache.Refresh(ctx); err != nil {
		log.Printf("[content] cache refresh failed: %v", err)
		return
	}
	log.Println("[content] cache refreshed at:", time.Now().Format(time.RFC1123))
}
