package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`SanitizeFileName check`, func(t *testing.T) {
		require.Equal(t, "answer_1.webm", SanitizeFileName("answer 1.webm"))
		require.Equal(t, "_.mp4", SanitizeFileName("видео ответ.mp4"))
		require.Equal(t, "a-b_c.webm", SanitizeFileName("a-b_c.webm"))
	})

	t.Run(`IsContextDone check`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})
}
