package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/sessions/service"
)

// StartStaleSessionSweeper menutup sesi yang lupa dimatikan host.
// Geofence yang ketinggalan aktif akan terus menerima check-in; sweeper
// membatasinya sampai STALE_SESSION_TTL_HOURS (default 24 jam).
// Mengembalikan fungsi stop untuk dipanggil saat shutdown.
func StartStaleSessionSweeper(db *gorm.DB) func() {
	ttlHours := 24
	if val := os.Getenv("STALE_SESSION_TTL_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}
	ttl := time.Duration(ttlHours) * time.Hour

	svc := service.New(db)
	c := cron.New()

	// tiap 15 menit cukup; presisi menit tidak penting di sini
	_, err := c.AddFunc("*/15 * * * *", func() {
		n, err := svc.StopStaleSessions(ttl)
		if err != nil {
			log.Printf("[SWEEPER ERROR] Gagal menutup sesi basi: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[SWEEPER] %d sesi basi ditutup (umur > %s)", n, ttl)
		}
	})
	if err != nil {
		log.Printf("[SWEEPER ERROR] Gagal daftar jadwal: %v", err)
		return func() {}
	}

	c.Start()
	log.Printf("[SWEEPER] Aktif, TTL sesi %s", ttl)

	return func() {
		ctx := c.Stop()
		<-ctx.Done()
	}
}
