package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	recordModel "hadirku_backend/internals/features/attendance/records/model"
	"hadirku_backend/internals/features/attendance/sessions/model"
	"hadirku_backend/internals/helpers/geo"
)

// SessionService memegang siklus hidup sesi satu kartu: start/stop,
// refresh lokasi host, dan rotasi kode akses.
type SessionService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// Start membuka sesi baru untuk kartu. Satu transaksi: sesi lama (kalau ada)
// dihapus, baris baru + kode segar masuk bersamaan, dan tanggal hari ini
// tercatat di card_log_days — pembaca tidak pernah melihat state sobek
// (aktif tanpa kode).
func (s *SessionService) Start(cardID, hostID uuid.UUID, hostName string, hostLoc geo.Location, maxDistanceM float64) (*model.CardSessionModel, error) {
	now := time.Now().UTC()

	sess := &model.CardSessionModel{
		SessionCardID:        cardID,
		SessionActive:        true,
		SessionHostID:        hostID,
		SessionHostName:      hostName,
		SessionLat:           hostLoc.Lat,
		SessionLon:           hostLoc.Lon,
		SessionMaxDistanceM:  maxDistanceM,
		SessionCode:          GenerateAccessCode(),
		SessionCodeExpiresAt: now.Add(CodeTTL),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// sesi baru menggantikan sesi lama secara implisit
		if err := tx.
			Where("session_card_id = ?", cardID).
			Delete(&model.CardSessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(sess).Error; err != nil {
			return err
		}
		day := recordModel.CardLogDayModel{
			LogDayCardID: cardID,
			LogDayDate:   truncateToDate(now),
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&day).Error
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Stop menutup sesi kartu. Idempoten: menghentikan sesi yang sudah tidak
// aktif bukan error dan tidak mengubah apa pun. Menghapus baris sekaligus
// mengosongkan kode + kadaluarsanya.
func (s *SessionService) Stop(cardID uuid.UUID) error {
	return s.DB.
		Where("session_card_id = ?", cardID).
		Delete(&model.CardSessionModel{}).Error
}

// Current mengembalikan sesi aktif kartu, atau ErrNoActiveSession.
func (s *SessionService) Current(cardID uuid.UUID) (*model.CardSessionModel, error) {
	var sess model.CardSessionModel
	err := s.DB.
		Where("session_card_id = ? AND session_active = TRUE", cardID).
		First(&sess).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// RefreshHostLocation memperbarui lokasi host in-place. Hanya host sesi yang
// boleh; pemanggil lain ditolak.
func (s *SessionService) RefreshHostLocation(cardID, callerID uuid.UUID, loc geo.Location) (*model.CardSessionModel, error) {
	sess, err := s.Current(cardID)
	if err != nil {
		return nil, err
	}
	if sess.SessionHostID != callerID {
		return nil, ErrNotHost
	}

	if err := s.DB.Model(&model.CardSessionModel{}).
		Where("session_id = ?", sess.SessionID).
		Updates(map[string]interface{}{
			"session_lat": loc.Lat,
			"session_lon": loc.Lon,
		}).Error; err != nil {
		return nil, err
	}

	sess.SessionLat = loc.Lat
	sess.SessionLon = loc.Lon
	return sess, nil
}

// RotateCodeIfExpired mengganti kode akses kalau sudah kadaluarsa.
// UPDATE bersyarat (WHERE expires_at <= now) membuat dua tab host yang
// balapan menghasilkan satu pemenang; yang kalah cukup baca ulang kode
// terbaru — nilai regenerate siapa pun sama-sama valid, jadi tidak perlu
// lock terdistribusi.
func (s *SessionService) RotateCodeIfExpired(cardID, callerID uuid.UUID) (*model.CardSessionModel, error) {
	sess, err := s.Current(cardID)
	if err != nil {
		return nil, err
	}
	if sess.SessionHostID != callerID {
		return nil, ErrNotHost
	}

	now := time.Now().UTC()
	res := s.DB.Model(&model.CardSessionModel{}).
		Where("session_id = ? AND session_code_expires_at <= ?", sess.SessionID, now).
		Updates(map[string]interface{}{
			"session_code":            GenerateAccessCode(),
			"session_code_expires_at": now.Add(CodeTTL),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	// baik menang maupun kalah balapan, kembalikan state terkini
	return s.Current(cardID)
}

// StopStaleSessions menutup sesi yang aktif lebih lama dari ttl.
// Dipakai sweeper terjadwal.
func (s *SessionService) StopStaleSessions(ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	res := s.DB.
		Where("session_created_at < ?", cutoff).
		Delete(&model.CardSessionModel{})
	return res.RowsAffected, res.Error
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
