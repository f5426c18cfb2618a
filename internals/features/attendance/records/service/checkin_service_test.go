package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	recordModel "hadirku_backend/internals/features/attendance/records/model"
	sessionModel "hadirku_backend/internals/features/attendance/sessions/model"
	sessionService "hadirku_backend/internals/features/attendance/sessions/service"
	"hadirku_backend/internals/helpers/geo"
)

func activeSession(lat, lon, maxM float64) *sessionModel.CardSessionModel {
	return &sessionModel.CardSessionModel{
		SessionID:           uuid.New(),
		SessionCardID:       uuid.New(),
		SessionActive:       true,
		SessionHostID:       uuid.New(),
		SessionHostName:     "Bu Rina",
		SessionLat:          lat,
		SessionLon:          lon,
		SessionMaxDistanceM: maxM,
	}
}

func TestEvaluateCheckIn_NoActiveSession(t *testing.T) {
	_, err := EvaluateCheckIn(nil, geo.Location{Lat: 51.5, Lon: -0.12})
	require.ErrorIs(t, err, sessionService.ErrNoActiveSession)

	inactive := activeSession(51.5, -0.12, 100)
	inactive.SessionActive = false
	_, err = EvaluateCheckIn(inactive, geo.Location{Lat: 51.5, Lon: -0.12})
	require.ErrorIs(t, err, sessionService.ErrNoActiveSession)
}

func TestEvaluateCheckIn_WithinRange(t *testing.T) {
	sess := activeSession(51.5, -0.12, 100)

	// ≈7 m dari host
	d, err := EvaluateCheckIn(sess, geo.Location{Lat: 51.5, Lon: -0.1201})
	require.NoError(t, err)
	require.Less(t, d, 100.0)
	require.Greater(t, d, 0.0)
}

func TestEvaluateCheckIn_OutOfRangeCarriesNumbers(t *testing.T) {
	sess := activeSession(51.5, -0.12, 100)

	// ≈500 m dari host
	_, err := EvaluateCheckIn(sess, geo.Location{Lat: 51.5, Lon: -0.1272})
	require.Error(t, err)

	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Greater(t, oor.DistanceM, 100.0)
	require.Equal(t, 100.0, oor.MaxDistanceM)
}

func TestResolveCheckIn_RepeatYieldsSameOpenRecord(t *testing.T) {
	sessionID := uuid.New()
	memberID := uuid.New()
	open := recordModel.AttendanceRecordModel{
		RecordID:        uuid.New(),
		RecordSessionID: sessionID,
		RecordMemberID:  memberID,
		RecordCheckinAt: time.Now().Add(-5 * time.Minute),
	}
	fresh := recordModel.AttendanceRecordModel{
		RecordSessionID: sessionID,
		RecordMemberID:  memberID,
		RecordCheckinAt: time.Now(),
	}

	// submit ulang: record open lama di-echo, tidak ada baris baru
	rec, already := ResolveCheckIn(&open, fresh)
	require.True(t, already)
	require.Equal(t, open.RecordID, rec.RecordID)
	require.Equal(t, open.RecordCheckinAt, rec.RecordCheckinAt)

	// submit pertama: baris baru dipakai apa adanya
	rec, already = ResolveCheckIn(nil, fresh)
	require.False(t, already)
	require.Equal(t, fresh, rec)
}

func TestApplyCheckOut_UpdatesExistingRecordInPlace(t *testing.T) {
	open := recordModel.AttendanceRecordModel{
		RecordID:         uuid.New(),
		RecordSessionID:  uuid.New(),
		RecordMemberID:   uuid.New(),
		RecordUserCode:   "S-17",
		RecordCheckinAt:  time.Now().Add(-time.Hour),
		RecordCheckinLat: 51.5,
		RecordCheckinLon: -0.12,
	}
	at := time.Now()
	dev := map[string]interface{}{"platform": "Android"}

	closed := ApplyCheckOut(open, at, geo.Location{Lat: 51.5001, Lon: -0.1201}, dev)

	// record yang sama, bukan baris baru: identitas + kolom checkin utuh
	require.Equal(t, open.RecordID, closed.RecordID)
	require.Equal(t, open.RecordSessionID, closed.RecordSessionID)
	require.Equal(t, open.RecordCheckinAt, closed.RecordCheckinAt)
	require.Equal(t, open.RecordCheckinLat, closed.RecordCheckinLat)
	require.Equal(t, open.RecordCheckinLon, closed.RecordCheckinLon)

	require.NotNil(t, closed.RecordCheckoutAt)
	require.Equal(t, at, *closed.RecordCheckoutAt)
	require.Equal(t, 51.5001, *closed.RecordCheckoutLat)
	require.Equal(t, -0.1201, *closed.RecordCheckoutLon)
	require.Equal(t, "Android", closed.RecordCheckoutDevice["platform"])
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pg duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "uq_records_open_per_session" (SQLSTATE 23505)`), true},
		{"unique violation", errors.New("UNIQUE constraint failed"), true},
		{"error lain", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestEvaluateCheckOut(t *testing.T) {
	now := time.Now()
	open := &recordModel.AttendanceRecordModel{RecordCheckinAt: now}
	closed := &recordModel.AttendanceRecordModel{RecordCheckinAt: now, RecordCheckoutAt: &now}

	tests := []struct {
		name            string
		checkoutEnabled bool
		rec             *recordModel.AttendanceRecordModel
		wantErr         error
	}{
		{"checkout nonaktif", false, open, ErrNotCheckedIn},
		{"belum check-in", true, nil, ErrNotCheckedIn},
		{"sudah checkout", true, closed, ErrNotCheckedIn},
		{"record open", true, open, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluateCheckOut(tt.checkoutEnabled, tt.rec)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
