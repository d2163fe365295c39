package wizard

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// CaptureDevice - устройство записи аудио и видео кандидата.
// Интерфейс позволяет гонять машину состояний в тестах без реальной камеры.
type CaptureDevice interface {
	Acquire(ctx context.Context) (CaptureStream, error)
}

// CaptureStream - захваченный поток устройства записи
type CaptureStream interface {
	Append(chunk []byte) error
	Data() []byte
	Stop()
}

// Media - готовая запись ответа
type Media struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Recorder - запись одного ответа. Повторная запись замещает предыдущую,
// остановка записи обязана освободить устройство.
type Recorder struct {
	device    CaptureDevice
	stream    CaptureStream
	recording bool
	capture   *Media
}

func NewRecorder(device CaptureDevice) *Recorder {
	return &Recorder{device: device}
}

func (r *Recorder) Start(ctx context.Context) error {
	if r.recording {
		return errors.New("запись уже идет")
	}
	stream, err := r.device.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "ошибка доступа к устройству записи")
	}
	r.stream = stream
	r.recording = true
	return nil
}

func (r *Recorder) Append(chunk []byte) error {
	if !r.recording {
		return errors.New("запись не запущена")
	}
	return r.stream.Append(chunk)
}

// Stop завершает запись, освобождает устройство и сохраняет результат,
// замещая прежнюю запись, если она была.
func (r *Recorder) Stop(fileName, contentType string) (*Media, error) {
	if !r.recording {
		return nil, errors.New("запись не запущена")
	}
	data := r.stream.Data()
	r.stream.Stop()
	r.stream = nil
	r.recording = false
	r.capture = &Media{
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
	}
	return r.capture, nil
}

// SetCapture принимает запись, загруженную одним файлом, минуя потоковую запись
func (r *Recorder) SetCapture(media *Media) {
	r.Release()
	r.capture = media
}

// Release останавливает запись без сохранения и освобождает устройство
func (r *Recorder) Release() {
	if r.recording && r.stream != nil {
		r.stream.Stop()
	}
	r.stream = nil
	r.recording = false
}

func (r *Recorder) Recording() bool {
	return r.recording
}

func (r *Recorder) HasCapture() bool {
	return r.capture != nil
}

// TakeCapture забирает готовую запись, очищая рекордер для следующего ответа
func (r *Recorder) TakeCapture() *Media {
	media := r.capture
	r.capture = nil
	return media
}

// RemoteCaptureDevice - запись, которую ведет браузер кандидата:
// куски webm приходят по HTTP и накапливаются в буфере на сервере.
type RemoteCaptureDevice struct{}

func (RemoteCaptureDevice) Acquire(_ context.Context) (CaptureStream, error) {
	return &remoteStream{}, nil
}

type remoteStream struct {
	mu      sync.Mutex
	buf     []byte
	stopped bool
}

func (s *remoteStream) Append(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return errors.New("поток записи остановлен")
	}
	s.buf = append(s.buf, chunk...)
	return nil
}

func (s *remoteStream) Data() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf
}

func (s *remoteStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}
