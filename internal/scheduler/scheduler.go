package scheduler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler takes periodic snapshots of the data directory. Store writes are
// whole-file overwrites with no transactional guarantee across files, so a
// recent snapshot is the only recovery path after a badly timed crash.
type Scheduler struct {
	cron    *cron.Cron
	dataDir string
}

func New(dataDir string) *Scheduler {
	return &Scheduler{cron: cron.New(), dataDir: dataDir}
}

// Start registers the backup job. An invalid cron expression is logged and
// backups are simply skipped.
func (s *Scheduler) Start(cronExpr string) {
	if cronExpr == "" {
		return
	}
	if _, err := s.cron.AddFunc(cronExpr, s.runBackup); err != nil {
		log.Printf("scheduler: invalid cron %q: %v", cronExpr, err)
		return
	}
	s.cron.Start()
	log.Printf("scheduler: backups scheduled with cron %q", cronExpr)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runBackup() {
	dest := filepath.Join(s.dataDir, "backups", time.Now().Format("20060102-150405"))
	n, err := s.snapshot(dest)
	if err != nil {
		log.Printf("scheduler: backup failed: %v", err)
		return
	}
	log.Printf("scheduler: backed up %d file(s) to %s", n, dest)
}

// snapshot copies every JSON file at the top of the data dir into dest.
func (s *Scheduler) snapshot(dest string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.dataDir, "*.json"))
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return 0, fmt.Errorf("creating backup dir: %w", err)
	}

	copied := 0
	for _, src := range matches {
		data, err := os.ReadFile(src)
		if err != nil {
			log.Printf("scheduler: reading %s: %v", src, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(dest, filepath.Base(src)), data, 0644); err != nil {
			return copied, fmt.Errorf("writing backup of %s: %w", src, err)
		}
		copied++
	}
	return copied, nil
}
