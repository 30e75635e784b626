package bioscan

import (
	"context"
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yky-hub/yky_hub/internal/oracle"
)

func TestScanProducesBoundedResult(t *testing.T) {
	provider := oracle.StaticProvider{Transcription: "I feel tired lately", Reply: "Your root center needs grounding."}
	svc := NewService(NewMemoryRepository(), provider, rand.New(rand.NewSource(7)))

	audio := base64.StdEncoding.EncodeToString([]byte("fake-webm-bytes"))
	scan, err := svc.Scan(context.Background(), "user-1", audio)
	require.NoError(t, err)

	require.Equal(t, "I feel tired lately", scan.Transcription)
	require.Equal(t, "Your root center needs grounding.", scan.Analysis)
	require.GreaterOrEqual(t, scan.VitalityScore, 6)
	require.LessOrEqual(t, scan.VitalityScore, 9)
	for _, key := range []string{"food", "herb", "frequency", "peptide"} {
		require.NotEmpty(t, scan.Recommendations[key], "missing recommendation %s", key)
	}
	require.NotEmpty(t, scan.Frequencies["dominant"])
	require.NotEmpty(t, scan.Frequencies["weakest"])
}

func TestScanRejectsBadBase64(t *testing.T) {
	svc := NewService(NewMemoryRepository(), oracle.StaticProvider{}, rand.New(rand.NewSource(7)))

	_, err := svc.Scan(context.Background(), "user-1", "%%%not-base64%%%")
	require.ErrorIs(t, err, ErrInvalidAudio)

	_, err = svc.Scan(context.Background(), "user-1", "")
	require.ErrorIs(t, err, ErrInvalidAudio)
}

func TestScanProviderFailureNotPersisted(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, oracle.StaticProvider{Err: errors.New("upstream down")}, rand.New(rand.NewSource(7)))

	audio := base64.StdEncoding.EncodeToString([]byte("bytes"))
	_, err := svc.Scan(context.Background(), "user-1", audio)
	require.Error(t, err)

	scans, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, scans)
}

func TestScanHistoryNewestFirst(t *testing.T) {
	provider := oracle.StaticProvider{Transcription: "hello", Reply: "analysis"}
	svc := NewService(NewMemoryRepository(), provider, rand.New(rand.NewSource(7)))

	ctx := context.Background()
	audio := base64.StdEncoding.EncodeToString([]byte("bytes"))
	for i := 0; i < 3; i++ {
		_, err := svc.Scan(ctx, "user-1", audio)
		require.NoError(t, err)
	}

	scans, err := svc.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, scans, 3)
	for i := 1; i < len(scans); i++ {
		require.False(t, scans[i].CreatedAt.After(scans[i-1].CreatedAt))
	}
}
