package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	acquired int
	streams  []*fakeStream
}

func (d *fakeDevice) Acquire(_ context.Context) (CaptureStream, error) {
	d.acquired++
	stream := &fakeStream{}
	d.streams = append(d.streams, stream)
	return stream, nil
}

type fakeStream struct {
	buf     []byte
	stopped bool
}

func (s *fakeStream) Append(chunk []byte) error {
	s.buf = append(s.buf, chunk...)
	return nil
}

func (s *fakeStream) Data() []byte {
	return s.buf
}

func (s *fakeStream) Stop() {
	s.stopped = true
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run(`повторный старт записи check`, func(t *testing.T) {
		device := &fakeDevice{}
		recorder := NewRecorder(device)
		require.Nil(t, recorder.Start(ctx))
		err := recorder.Start(ctx)
		require.NotNil(t, err)
		// устройство захвачено один раз, первая запись не потеряна
		require.Equal(t, 1, device.acquired)
		require.True(t, recorder.Recording())
	})

	t.Run(`остановка освобождает устройство check`, func(t *testing.T) {
		device := &fakeDevice{}
		recorder := NewRecorder(device)
		require.Nil(t, recorder.Start(ctx))
		require.Nil(t, recorder.Append([]byte("part1")))
		require.Nil(t, recorder.Append([]byte("-part2")))
		media, err := recorder.Stop("answer.webm", "video/webm")
		require.Nil(t, err)
		require.Equal(t, []byte("part1-part2"), media.Data)
		require.True(t, device.streams[0].stopped)
		require.False(t, recorder.Recording())
		require.True(t, recorder.HasCapture())
	})

	t.Run(`перезапись замещает предыдущую check`, func(t *testing.T) {
		device := &fakeDevice{}
		recorder := NewRecorder(device)
		require.Nil(t, recorder.Start(ctx))
		require.Nil(t, recorder.Append([]byte("first")))
		_, err := recorder.Stop("a.webm", "video/webm")
		require.Nil(t, err)

		require.Nil(t, recorder.Start(ctx))
		require.Nil(t, recorder.Append([]byte("second")))
		media, err := recorder.Stop("b.webm", "video/webm")
		require.Nil(t, err)
		require.Equal(t, []byte("second"), media.Data)
		require.Equal(t, "b.webm", media.FileName)
		require.Equal(t, 2, device.acquired)
	})

	t.Run(`release без сохранения check`, func(t *testing.T) {
		device := &fakeDevice{}
		recorder := NewRecorder(device)
		require.Nil(t, recorder.Start(ctx))
		require.Nil(t, recorder.Append([]byte("dropped")))
		recorder.Release()
		require.True(t, device.streams[0].stopped)
		require.False(t, recorder.Recording())
		require.False(t, recorder.HasCapture())
	})

	t.Run(`запись без старта check`, func(t *testing.T) {
		recorder := NewRecorder(&fakeDevice{})
		require.NotNil(t, recorder.Append([]byte("chunk")))
		_, err := recorder.Stop("a.webm", "video/webm")
		require.NotNil(t, err)
	})
}
