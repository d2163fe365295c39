package videogen

import (
	"context"
	"testing"
	"time"

	"ai-interview-backend/models"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeClient отдает заранее заданную последовательность ответов статуса
type fakeClient struct {
	statuses []statusReply
	calls    int
}

type statusReply struct {
	status models.VideoGenStatus
	url    string
	err    error
}

func (f *fakeClient) Generate(_ context.Context, text, avatarID, voiceID string) (string, error) {
	return "video-1", nil
}

func (f *fakeClient) Status(_ context.Context, videoID string) (models.VideoGenStatus, string, error) {
	reply := f.statuses[len(f.statuses)-1]
	if f.calls < len(f.statuses) {
		reply = f.statuses[f.calls]
	}
	f.calls++
	return reply.status, reply.url, reply.err
}

type fakeJobStore struct {
	recs map[string]*dbmodels.VideoGenJob
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{recs: map[string]*dbmodels.VideoGenJob{}}
}

func (f *fakeJobStore) Save(rec dbmodels.VideoGenJob) (string, error) {
	f.recs[rec.VideoID] = &rec
	return rec.VideoID, nil
}

func (f *fakeJobStore) GetByVideoID(videoID string) (*dbmodels.VideoGenJob, error) {
	rec, ok := f.recs[videoID]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func newTestHandler(client *fakeClient, timeout time.Duration) impl {
	return impl{
		client:       client,
		jobStore:     newFakeJobStore(),
		pollInterval: time.Millisecond,
		pollTimeout:  timeout,
	}
}

func TestResolveVideoURL(t *testing.T) {
	ctx := context.Background()

	t.Run(`готовое видео с первого опроса check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusCompleted, url: "https://cdn/video.mp4"},
		}}
		h := newTestHandler(client, time.Second)
		url, err := h.ResolveVideoURL(ctx, "video-1")
		require.Nil(t, err)
		require.Equal(t, "https://cdn/video.mp4", url)
		// терминальный статус означает ровно один опрос
		require.Equal(t, 1, client.calls)
	})

	t.Run(`ожидание до готовности check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusPending},
			{status: models.VideoGenStatusProcessing},
			{status: models.VideoGenStatusCompleted, url: "https://cdn/video.mp4"},
		}}
		h := newTestHandler(client, time.Second)
		url, err := h.ResolveVideoURL(ctx, "video-1")
		require.Nil(t, err)
		require.Equal(t, "https://cdn/video.mp4", url)
		require.Equal(t, 3, client.calls)
	})

	t.Run(`ошибка генерации check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusFailed},
		}}
		h := newTestHandler(client, time.Second)
		_, err := h.ResolveVideoURL(ctx, "video-1")
		require.ErrorIs(t, err, ErrGenerationFailed)
		require.Equal(t, 1, client.calls)
	})

	t.Run(`таймаут ожидания check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusProcessing},
		}}
		h := newTestHandler(client, 10*time.Millisecond)
		_, err := h.ResolveVideoURL(ctx, "video-1")
		require.ErrorIs(t, err, ErrGenerationTimeout)
	})

	t.Run(`сетевые ошибки не прерывают ожидание check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{err: errors.New("connection reset")},
			{err: errors.New("connection reset")},
			{status: models.VideoGenStatusCompleted, url: "https://cdn/video.mp4"},
		}}
		h := newTestHandler(client, time.Second)
		url, err := h.ResolveVideoURL(ctx, "video-1")
		require.Nil(t, err)
		require.Equal(t, "https://cdn/video.mp4", url)
		require.Equal(t, 3, client.calls)
	})

	t.Run(`отмена контекста check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusProcessing},
		}}
		h := newTestHandler(client, time.Hour)
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := h.ResolveVideoURL(cancelCtx, "video-1")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run(`учет задания check`, func(t *testing.T) {
		client := &fakeClient{statuses: []statusReply{
			{status: models.VideoGenStatusCompleted, url: "https://cdn/video.mp4"},
		}}
		store := newFakeJobStore()
		h := impl{client: client, jobStore: store, pollInterval: time.Millisecond, pollTimeout: time.Second}

		videoID, err := h.RequestGeneration(ctx, "content-1", "текст вопроса", "", "")
		require.Nil(t, err)
		require.Equal(t, "video-1", videoID)
		rec, err := store.GetByVideoID(videoID)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, models.VideoGenStatusPending, rec.Status)
		require.Equal(t, "content-1", rec.ContentID)

		_, err = h.ResolveVideoURL(ctx, videoID)
		require.Nil(t, err)
		rec, err = store.GetByVideoID(videoID)
		require.Nil(t, err)
		require.Equal(t, models.VideoGenStatusCompleted, rec.Status)
		require.Equal(t, "https://cdn/video.mp4", rec.ResultUrl)
		require.Equal(t, 1, rec.Attempts)
	})
}
