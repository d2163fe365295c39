package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSession(questions int) *Session {
	list := make([]Question, 0, questions)
	for i := 0; i < questions; i++ {
		list = append(list, Question{OrderNo: i + 1, Text: "вопрос"})
	}
	return NewSession("interview-1", "Go разработчик",
		Segment{Text: "привет"}, Segment{Text: "спасибо"}, list, &fakeDevice{})
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run(`невалидная анкета не двигает шаг check`, func(t *testing.T) {
		sess := newTestSession(1)
		require.Nil(t, sess.Begin())
		require.Equal(t, StepDetails, sess.State().Kind)

		require.NotNil(t, sess.SetDetails("", "ivanov@example.com"))
		require.Equal(t, StepDetails, sess.State().Kind)

		require.NotNil(t, sess.SetDetails("Иванов Иван", "not-an-email"))
		require.Equal(t, StepDetails, sess.State().Kind)

		require.Nil(t, sess.SetDetails("Иванов Иван", "ivanov@example.com"))
		require.Equal(t, StepMediaCheck, sess.State().Kind)
		name, email := sess.Details()
		require.Equal(t, "Иванов Иван", name)
		require.Equal(t, "ivanov@example.com", email)
	})

	t.Run(`пропуск вопроса check`, func(t *testing.T) {
		sess := newTestSession(1)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.Nil(t, sess.FinishMediaCheck())
		require.Nil(t, sess.BeginAnswer())
		// ответ фиксируется без записи
		require.Nil(t, sess.CommitAnswer())
		require.Equal(t, StepFarewell, sess.State().Kind)
		answers := sess.Answers()
		require.Len(t, answers, 1)
		require.Nil(t, answers[0].Media)
	})

	t.Run(`запись ответа check`, func(t *testing.T) {
		sess := newTestSession(2)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.Nil(t, sess.FinishMediaCheck())

		require.Nil(t, sess.BeginAnswer())
		require.Nil(t, sess.StartRecording(ctx))
		require.Nil(t, sess.AppendChunk([]byte("chunk1")))
		require.Nil(t, sess.AppendChunk([]byte("chunk2")))
		require.Nil(t, sess.StopRecording("a.webm", "video/webm"))
		require.Nil(t, sess.CommitAnswer())
		require.Equal(t, State{Kind: StepQuestion, Index: 1}, sess.State())

		require.Nil(t, sess.BeginAnswer())
		require.Nil(t, sess.CommitAnswer())
		require.Equal(t, StepFarewell, sess.State().Kind)

		answers := sess.Answers()
		require.Len(t, answers, 2)
		require.NotNil(t, answers[0].Media)
		require.Equal(t, []byte("chunk1chunk2"), answers[0].Media.Data)
		require.Nil(t, answers[1].Media)
	})

	t.Run(`пробная запись не попадает в ответы check`, func(t *testing.T) {
		sess := newTestSession(1)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.Nil(t, sess.StartRecording(ctx))
		require.Nil(t, sess.AppendChunk([]byte("test")))
		require.Nil(t, sess.StopRecording("test.webm", "video/webm"))
		require.Nil(t, sess.FinishMediaCheck())

		require.Nil(t, sess.BeginAnswer())
		require.Nil(t, sess.CommitAnswer())
		answers := sess.Answers()
		require.Nil(t, answers[0].Media)
	})

	t.Run(`переходы только вперед check`, func(t *testing.T) {
		sess := newTestSession(1)
		require.Nil(t, sess.Begin())
		// повторное начало и возврат к анкете после прохождения отклоняются
		require.NotNil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.NotNil(t, sess.SetDetails("Петров", "p@example.com"))
		name, _ := sess.Details()
		require.Equal(t, "Иванов", name)
	})

	t.Run(`повторная отправка check`, func(t *testing.T) {
		sess := newTestSession(0)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.Nil(t, sess.FinishMediaCheck())
		require.Equal(t, StepFarewell, sess.State().Kind)

		hMsg, ok := sess.BeginSubmit()
		require.True(t, ok)
		require.Empty(t, hMsg)

		// пока отправка не завершена, вторая отклоняется
		hMsg, ok = sess.BeginSubmit()
		require.False(t, ok)
		require.NotEmpty(t, hMsg)

		sess.FinishSubmit(true)
		require.Equal(t, StepSubmitted, sess.State().Kind)
		_, ok = sess.BeginSubmit()
		require.False(t, ok)
	})

	t.Run(`неуспешная отправка оставляет шаг check`, func(t *testing.T) {
		sess := newTestSession(0)
		require.Nil(t, sess.Begin())
		require.Nil(t, sess.SetDetails("Иванов", "i@example.com"))
		require.Nil(t, sess.FinishMediaCheck())

		_, ok := sess.BeginSubmit()
		require.True(t, ok)
		sess.FinishSubmit(false)
		require.Equal(t, StepFarewell, sess.State().Kind)
		// повтор после ошибки возможен
		_, ok = sess.BeginSubmit()
		require.True(t, ok)
	})

	t.Run(`таймаут сессии check`, func(t *testing.T) {
		sess := newTestSession(0)
		require.False(t, sess.Expired(time.Minute))
		require.True(t, sess.Expired(0))
	})
}
