package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yky-hub/yky_hub/internal/identity"
)

func newTestUser(t *testing.T, users identity.Repository) identity.User {
	t.Helper()
	svc := identity.NewService(users)
	user, err := svc.Register(context.Background(), identity.Registration{
		Email: "seeker@example.com", Password: "dragon42", Name: "Aroha", BirthDate: "1990-06-15",
	})
	require.NoError(t, err)
	return user
}

func TestChatStoresHistory(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := newTestUser(t, users)
	history := NewMemoryRepository()
	svc := NewService(StaticProvider{Reply: "The tide turns at dawn."}, history, users)

	ctx := context.Background()
	res, err := svc.Chat(ctx, user.ID, "What awaits me?")
	require.NoError(t, err)
	require.Equal(t, "The tide turns at dawn.", res.Response)
	require.Equal(t, "Dr. Ethergreen", res.Oracle)

	messages, err := svc.History(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "What awaits me?", messages[0].UserMessage)
	require.Equal(t, "The tide turns at dawn.", messages[0].OracleResponse)
}

func TestChatUnknownUser(t *testing.T) {
	users := identity.NewMemoryRepository()
	svc := NewService(StaticProvider{}, NewMemoryRepository(), users)

	_, err := svc.Chat(context.Background(), "no-such-user", "hello")
	require.Error(t, err)
}

func TestChatProviderFailure(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := newTestUser(t, users)
	history := NewMemoryRepository()
	svc := NewService(StaticProvider{Err: errors.New("upstream down")}, history, users)

	_, err := svc.Chat(context.Background(), user.ID, "hello")
	require.Error(t, err)

	messages, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	require.Empty(t, messages, "failed exchanges must not be recorded")
}

func TestSpeakReturnsAudio(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := newTestUser(t, users)
	svc := NewService(StaticProvider{Reply: "Listen closely.", Audio: "bW9jay1tcDM="}, NewMemoryRepository(), users)

	res, err := svc.Speak(context.Background(), user.ID, "speak to me")
	require.NoError(t, err)
	require.Equal(t, "Listen closely.", res.Text)
	require.Equal(t, "bW9jay1tcDM=", res.AudioBase64)
	require.Equal(t, "mp3", res.Format)
}

func TestListenTranscribes(t *testing.T) {
	users := identity.NewMemoryRepository()
	svc := NewService(StaticProvider{Transcription: "guide me"}, NewMemoryRepository(), users)

	text, err := svc.Listen(context.Background(), []byte{1, 2, 3}, "clip.webm")
	require.NoError(t, err)
	require.Equal(t, "guide me", text)
}
