package service

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hadirku_backend/internals/features/attendance/sessions/model"
)

func TestGenerateAccessCode_Format(t *testing.T) {
	// 4 digit desimal tanpa leading zero
	re := regexp.MustCompile(`^[1-9][0-9]{3}$`)

	for i := 0; i < 1000; i++ {
		code := GenerateAccessCode()
		require.Regexp(t, re, code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}

func TestCodeTTL(t *testing.T) {
	require.Equal(t, 120*time.Second, CodeTTL)
}

func TestMatchesAccessCode(t *testing.T) {
	now := time.Now().UTC()
	sess := func(code string, expiresAt time.Time, active bool) *model.CardSessionModel {
		return &model.CardSessionModel{
			SessionActive:        active,
			SessionCode:          code,
			SessionCodeExpiresAt: expiresAt,
		}
	}

	tests := []struct {
		name string
		sess *model.CardSessionModel
		code string
		want bool
	}{
		{"cocok dan masih berlaku", sess("4821", now.Add(time.Minute), true), "4821", true},
		{"kode salah", sess("4821", now.Add(time.Minute), true), "1234", false},
		{"kode kadaluarsa", sess("4821", now.Add(-time.Second), true), "4821", false},
		{"sesi nonaktif", sess("4821", now.Add(time.Minute), false), "4821", false},
		{"tanpa sesi", nil, "4821", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MatchesAccessCode(tt.sess, tt.code, now))
		})
	}
}

// Kode sesi lain tidak boleh membuka sesi ini, sekalipun sama-sama valid:
// cocoknya kode selalu dibandingkan terhadap sesi kartu yang dituju.
func TestMatchesAccessCode_ScopedToSession(t *testing.T) {
	now := time.Now().UTC()
	a := &model.CardSessionModel{SessionActive: true, SessionCode: "4821", SessionCodeExpiresAt: now.Add(time.Minute)}
	b := &model.CardSessionModel{SessionActive: true, SessionCode: "9173", SessionCodeExpiresAt: now.Add(time.Minute)}

	require.True(t, MatchesAccessCode(a, "4821", now))
	require.False(t, MatchesAccessCode(b, "4821", now))
	require.True(t, MatchesAccessCode(b, "9173", now))
}
