package wizard

import (
	"context"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	logger := log.WithField("worker_name", "test")

	t.Run(`выброс просроченной сессии освобождает устройство check`, func(t *testing.T) {
		device := &fakeDevice{}
		sess := NewSession("interview-1", "Go разработчик",
			Segment{Text: "привет"}, Segment{Text: "спасибо"},
			[]Question{{OrderNo: 1, Text: "вопрос"}}, device)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		// кандидат бросил сессию посреди записи, поток камеры захвачен
		require.Nil(t, sess.StartRecording(ctx))
		require.Nil(t, sess.AppendChunk([]byte("chunk")))
		require.Len(t, device.streams, 1)
		require.False(t, device.streams[0].stopped)

		store := newSessionStore(0)
		store.Add(sess)
		store.evictExpired(logger)

		_, ok := store.Get(sess.ID)
		require.False(t, ok)
		require.True(t, device.streams[0].stopped)
	})

	t.Run(`живая сессия остается check`, func(t *testing.T) {
		sess := newTestSession(1)
		store := newSessionStore(time.Hour)
		store.Add(sess)
		store.evictExpired(logger)

		got, ok := store.Get(sess.ID)
		require.True(t, ok)
		require.Equal(t, sess, got)
	})
}
