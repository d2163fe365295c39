package wizard

type StepKind string

const (
	StepIntro      StepKind = "intro"
	StepDetails    StepKind = "details"
	StepMediaCheck StepKind = "media_check"
	StepQuestion   StepKind = "question"
	StepAnswer     StepKind = "answer"
	StepFarewell   StepKind = "farewell"
	StepSubmitted  StepKind = "submitted"
)

// State - явное состояние мастера прохождения интервью.
// Index - номер текущего вопроса с нуля, значим только для question/answer.
type State struct {
	Kind  StepKind
	Index int
}

// Next возвращает следующее состояние линейного сценария.
// Движение только вперед, возврата к пройденным шагам нет.
func (s State) Next(questionCount int) (next State, ok bool) {
	switch s.Kind {
	case StepIntro:
		return State{Kind: StepDetails}, true
	case StepDetails:
		return State{Kind: StepMediaCheck}, true
	case StepMediaCheck:
		if questionCount > 0 {
			return State{Kind: StepQuestion, Index: 0}, true
		}
		return State{Kind: StepFarewell}, true
	case StepQuestion:
		return State{Kind: StepAnswer, Index: s.Index}, true
	case StepAnswer:
		if s.Index+1 < questionCount {
			return State{Kind: StepQuestion, Index: s.Index + 1}, true
		}
		return State{Kind: StepFarewell}, true
	case StepFarewell:
		return State{Kind: StepSubmitted}, true
	}
	return s, false
}
