package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	cardModel "hadirku_backend/internals/features/attendance/cards/model"
	recordModel "hadirku_backend/internals/features/attendance/records/model"
)

func day(s string) time.Time {
	t, _ := ParseDate(s)
	return t
}

func TestBuildMatrix_EmptyDayStillListed(t *testing.T) {
	cardID := uuid.New()
	memberA := cardModel.CardMemberModel{MemberID: uuid.New(), MemberCode: "A01", MemberName: "Andi"}
	memberB := cardModel.CardMemberModel{MemberID: uuid.New(), MemberCode: "B02", MemberName: "Budi"}

	days := []recordModel.CardLogDayModel{
		{LogDayCardID: cardID, LogDayDate: day("2026-08-03")},
		{LogDayCardID: cardID, LogDayDate: day("2026-08-04")}, // sesi jalan, tak ada yang hadir
	}
	records := []recordModel.AttendanceRecordModel{
		{
			RecordMemberID:  memberA.MemberID,
			RecordDate:      day("2026-08-03"),
			RecordCheckinAt: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC),
		},
	}

	m := BuildMatrix([]cardModel.CardMemberModel{memberA, memberB}, days, records)

	require.Equal(t, []string{"2026-08-03", "2026-08-04"}, m.Dates)
	require.Len(t, m.Users, 2)

	// urut nama: Andi, Budi
	require.Equal(t, "Andi", m.Users[0].MemberName)
	require.Equal(t, "Budi", m.Users[1].MemberName)

	require.True(t, m.Users[0].Presence["2026-08-03"])
	require.False(t, m.Users[0].Presence["2026-08-04"])
	require.False(t, m.Users[1].Presence["2026-08-03"])
	require.False(t, m.Users[1].Presence["2026-08-04"])
}

func TestBuildMatrix_CheckoutIrrelevantToPresence(t *testing.T) {
	member := cardModel.CardMemberModel{MemberID: uuid.New(), MemberCode: "C03", MemberName: "Citra"}
	out := time.Date(2026, 8, 5, 17, 0, 0, 0, time.UTC)

	records := []recordModel.AttendanceRecordModel{
		{
			RecordMemberID:   member.MemberID,
			RecordDate:       day("2026-08-05"),
			RecordCheckinAt:  time.Date(2026, 8, 5, 8, 0, 0, 0, time.UTC),
			RecordCheckoutAt: &out,
		},
	}

	m := BuildMatrix([]cardModel.CardMemberModel{member}, nil, records)
	require.Equal(t, []string{"2026-08-05"}, m.Dates)
	require.True(t, m.Users[0].Presence["2026-08-05"])
}

func TestBuildMatrix_DatesFromRecordsOnly(t *testing.T) {
	member := cardModel.CardMemberModel{MemberID: uuid.New(), MemberCode: "D04", MemberName: "Dewi"}

	records := []recordModel.AttendanceRecordModel{
		{RecordMemberID: member.MemberID, RecordDate: day("2026-08-02"), RecordCheckinAt: time.Now()},
		{RecordMemberID: member.MemberID, RecordDate: day("2026-08-01"), RecordCheckinAt: time.Now()},
	}

	m := BuildMatrix([]cardModel.CardMemberModel{member}, nil, records)
	require.Equal(t, []string{"2026-08-01", "2026-08-02"}, m.Dates) // terurut naik
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("03-08-2026")
	require.Error(t, err)
}
