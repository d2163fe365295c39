package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-interview-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Segment - приветственный или прощальный ролик интервью
type Segment struct {
	Text     string
	VideoUrl string
}

// Question - вопрос интервью в порядке прохождения
type Question struct {
	OrderNo  int
	Text     string
	VideoUrl string
}

// Answer - ответ кандидата на вопрос. Media == nil для пропущенного вопроса.
type Answer struct {
	OrderNo int
	Text    string
	Media   *Media
}

// Session - прохождение интервью одним кандидатом.
// Все переходы только вперед, доступ к полям только под мьютексом.
type Session struct {
	ID            string
	InterviewID   string
	PositionTitle string

	mu             sync.Mutex
	applicantName  string
	applicantEmail string
	intro          Segment
	farewell       Segment
	questions      []Question
	answers        []Answer
	state          State
	recorder       *Recorder
	submitting     bool
	updatedAt      time.Time
}

func NewSession(interviewID, positionTitle string, intro, farewell Segment, questions []Question, device CaptureDevice) *Session {
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, Answer{OrderNo: q.OrderNo, Text: q.Text})
	}
	return &Session{
		ID:            uuid.NewString(),
		InterviewID:   interviewID,
		PositionTitle: positionTitle,
		intro:         intro,
		farewell:      farewell,
		questions:     questions,
		answers:       answers,
		state:         State{Kind: StepIntro},
		recorder:      NewRecorder(device),
		updatedAt:     time.Now(),
	}
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func (s *Session) advance() {
	next, ok := s.state.Next(len(s.questions))
	if ok {
		s.state = next
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.updatedAt) > ttl
}

// Begin переводит сессию с приветственного шага к анкете кандидата
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepIntro {
		return errors.New("интервью уже начато")
	}
	s.advance()
	return nil
}

// SetDetails сохраняет анкету кандидата. При невалидных данных
// шаг не меняется, прежние данные не затираются.
func (s *Session) SetDetails(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepDetails {
		return errors.New("анкета уже заполнена")
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return errors.New("не указано имя кандидата")
	}
	if !models.EmailRegexp.MatchString(email) {
		return errors.New("указан некорректный email")
	}
	s.applicantName = name
	s.applicantEmail = email
	s.advance()
	return nil
}

// FinishMediaCheck завершает проверку камеры и микрофона.
// Проверка не блокирует прохождение, но устройство обязано освободиться.
func (s *Session) FinishMediaCheck() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepMediaCheck {
		return errors.New("шаг проверки оборудования уже пройден")
	}
	s.recorder.Release()
	s.recorder.TakeCapture()
	s.advance()
	return nil
}

// BeginAnswer переводит сессию от просмотра вопроса к записи ответа
func (s *Session) BeginAnswer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepQuestion {
		return errors.New("сейчас не шаг просмотра вопроса")
	}
	s.advance()
	return nil
}

func (s *Session) StartRecording(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepAnswer && s.state.Kind != StepMediaCheck {
		return errors.New("на текущем шаге запись недоступна")
	}
	return s.recorder.Start(ctx)
}

func (s *Session) AppendChunk(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.recorder.Append(chunk)
}

func (s *Session) StopRecording(fileName, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	_, err := s.recorder.Stop(fileName, contentType)
	return err
}

// SetCapture сохраняет ответ, загруженный одним файлом
func (s *Session) SetCapture(media *Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepAnswer {
		return errors.New("сейчас не шаг записи ответа")
	}
	s.recorder.SetCapture(media)
	return nil
}

// CommitAnswer фиксирует записанный ответ и идет дальше.
// Без записи вопрос считается пропущенным, вернуться к нему нельзя.
func (s *Session) CommitAnswer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind != StepAnswer {
		return errors.New("сейчас не шаг записи ответа")
	}
	s.recorder.Release()
	s.answers[s.state.Index].Media = s.recorder.TakeCapture()
	s.advance()
	return nil
}

// BeginSubmit захватывает право на отправку. Повторный вызов во время
// незавершенной отправки отклоняется.
func (s *Session) BeginSubmit() (hMsg string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.state.Kind == StepSubmitted {
		return "ответы уже отправлены", false
	}
	if s.state.Kind != StepFarewell {
		return "интервью еще не завершено", false
	}
	if s.submitting {
		return "отправка уже выполняется", false
	}
	s.submitting = true
	return "", true
}

// FinishSubmit завершает отправку. При неуспехе сессия остается
// на прощальном шаге и отправку можно повторить.
func (s *Session) FinishSubmit(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.submitting = false
	if success {
		s.advance()
	}
}

func (s *Session) Details() (name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applicantName, s.applicantEmail
}

func (s *Session) Answers() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Release освобождает устройство записи при выбросе сессии из хранилища
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder.Release()
}

// snapshot - данные текущего шага для ответа API
type snapshot struct {
	state         State
	questionCount int
	text          string
	videoUrl      string
	hasCapture    bool
}

func (s *Session) Snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		state:         s.state,
		questionCount: len(s.questions),
		hasCapture:    s.recorder.HasCapture(),
	}
	switch s.state.Kind {
	case StepIntro:
		snap.text = s.intro.Text
		snap.videoUrl = s.intro.VideoUrl
	case StepQuestion, StepAnswer:
		q := s.questions[s.state.Index]
		snap.text = q.Text
		snap.videoUrl = q.VideoUrl
	case StepFarewell:
		snap.text = s.farewell.Text
		snap.videoUrl = s.farewell.VideoUrl
	}
	return snap
}
