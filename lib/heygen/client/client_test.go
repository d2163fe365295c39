package heygenclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-interview-backend/models"
	heygenapimodels "ai-interview-backend/models/api/heygen"

	"github.com/stretchr/testify/require"
)

func TestHeyGenClient(t *testing.T) {
	ctx := context.Background()

	t.Run(`запрос генерации check`, func(t *testing.T) {
		var gotRequest heygenapimodels.GenerateRequest
		var gotApiKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, generatePath, r.URL.Path)
			gotApiKey = r.Header.Get("x-api-key")
			require.Nil(t, json.NewDecoder(r.Body).Decode(&gotRequest))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"video_id":"video-42"}}`))
		}))
		defer server.Close()

		client := impl{host: server.URL, apiKey: "test-key"}
		videoID, err := client.Generate(ctx, "текст вопроса", "avatar-1", "voice-1")
		require.Nil(t, err)
		require.Equal(t, "video-42", videoID)
		require.Equal(t, "test-key", gotApiKey)
		require.Len(t, gotRequest.VideoInputs, 1)
		input := gotRequest.VideoInputs[0]
		require.Equal(t, "avatar-1", input.Character.AvatarID)
		require.Equal(t, "voice-1", input.Voice.VoiceID)
		require.Equal(t, "текст вопроса", input.Voice.InputText)
		require.Equal(t, 1280, gotRequest.Dimension.Width)
		require.Equal(t, 720, gotRequest.Dimension.Height)
	})

	t.Run(`ошибка провайдера как есть check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"insufficient_credit","message":"Insufficient credit"}}`))
		}))
		defer server.Close()

		client := impl{host: server.URL, apiKey: "test-key"}
		_, err := client.Generate(ctx, "текст", "avatar-1", "voice-1")
		require.NotNil(t, err)
		require.Equal(t, "Insufficient credit", err.Error())
	})

	t.Run(`опрос статуса check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, statusPath, r.URL.Path)
			require.Equal(t, "video-42", r.URL.Query().Get("video_id"))
			_, _ = w.Write([]byte(`{"data":{"status":"completed","video_url":"https://cdn/video.mp4"}}`))
		}))
		defer server.Close()

		client := impl{host: server.URL, apiKey: "test-key"}
		status, url, err := client.Status(ctx, "video-42")
		require.Nil(t, err)
		require.Equal(t, models.VideoGenStatusCompleted, status)
		require.Equal(t, "https://cdn/video.mp4", url)
	})

	t.Run(`видео еще не готово check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"status":"processing"}}`))
		}))
		defer server.Close()

		client := impl{host: server.URL, apiKey: "test-key"}
		status, url, err := client.Status(ctx, "video-42")
		require.Nil(t, err)
		require.Equal(t, models.VideoGenStatusProcessing, status)
		require.Empty(t, url)
	})
}
