package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	recordModel "hadirku_backend/internals/features/attendance/records/model"
	sessionModel "hadirku_backend/internals/features/attendance/sessions/model"
	sessionService "hadirku_backend/internals/features/attendance/sessions/service"
	"hadirku_backend/internals/helpers/geo"
)

var (
	// Tidak ada record open untuk sesi berjalan (termasuk saat checkout
	// dinonaktifkan di kartu — jalur checkout memang tak tercapai).
	ErrNotCheckedIn = errors.New("belum check-in di sesi ini")

	// Record open untuk (member, sesi) ini sudah ada. Submit ulang bukan
	// error dan bukan baris baru: record lama di-echo apa adanya.
	ErrAlreadyCheckedIn = errors.New("sudah check-in di sesi ini")
)

// OutOfRangeError membawa jarak terhitung dan batasnya supaya controller bisa
// menampilkan angka apa adanya ke peserta.
type OutOfRangeError struct {
	DistanceM    float64
	MaxDistanceM float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("di luar jangkauan: %.0f m dari host (maksimum %.0f m)", e.DistanceM, e.MaxDistanceM)
}

// EvaluateCheckIn memutuskan apakah lokasi peserta lolos gerbang jarak sesi.
// Mengembalikan jarak terhitung (meter) untuk ditampilkan. Tidak menulis
// apa-apa — persist terjadi di controller setelah keputusan lolos.
func EvaluateCheckIn(sess *sessionModel.CardSessionModel, participant geo.Location) (float64, error) {
	if sess == nil || !sess.SessionActive {
		return 0, sessionService.ErrNoActiveSession
	}

	d := geo.DistanceMeters(participant, geo.Location{Lat: sess.SessionLat, Lon: sess.SessionLon})
	if d > sess.SessionMaxDistanceM {
		return d, &OutOfRangeError{DistanceM: d, MaxDistanceM: sess.SessionMaxDistanceM}
	}
	return d, nil
}

// EvaluateCheckOut memutuskan apakah checkout boleh jalan. Jarak sengaja
// TIDAK divalidasi ulang: yang dicatat waktu pulang, bukan posisi pulang.
func EvaluateCheckOut(checkoutEnabled bool, open *recordModel.AttendanceRecordModel) error {
	if !checkoutEnabled {
		return ErrNotCheckedIn
	}
	if open == nil || open.RecordCheckoutAt != nil {
		return ErrNotCheckedIn
	}
	return nil
}

// ResolveCheckIn memutuskan nasib satu submit check-in terhadap record open
// yang (mungkin) sudah ada. Kalau open != nil, record lama di-echo dan tidak
// ada baris baru — invariant "maksimal satu record open per (member, sesi)"
// dijaga di sini, bukan di pemanggil.
func ResolveCheckIn(open *recordModel.AttendanceRecordModel, fresh recordModel.AttendanceRecordModel) (recordModel.AttendanceRecordModel, bool) {
	if open != nil {
		return *open, true
	}
	return fresh, false
}

// ApplyCheckOut menutup record open di tempat: record_id dan seluruh kolom
// checkin tidak tersentuh, hanya kolom checkout yang terisi.
func ApplyCheckOut(open recordModel.AttendanceRecordModel, at time.Time, loc geo.Location, dev datatypes.JSONMap) recordModel.AttendanceRecordModel {
	lat, lon := loc.Lat, loc.Lon
	open.RecordCheckoutAt = &at
	open.RecordCheckoutLat = &lat
	open.RecordCheckoutLon = &lon
	open.RecordCheckoutDevice = dev
	return open
}

// IsDuplicateKey mengenali pelanggaran unique constraint dari driver.
// Index partial uq_records_open_per_session mendarat di sini saat dua
// check-in identik benar-benar paralel: pre-check keduanya lolos, insert
// yang kalah ditolak DB dan diperlakukan idempoten, bukan 500.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
