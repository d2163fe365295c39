package models

type ContentKind string

const (
	ContentKindIntroduction ContentKind = "introduction"
	ContentKindQuestion     ContentKind = "question"
	ContentKindFarewell     ContentKind = "farewell"
)

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindIntroduction, ContentKindQuestion, ContentKindFarewell:
		return true
	}
	return false
}

type DeliveryMode string

const (
	DeliveryModeHuman DeliveryMode = "human"
	DeliveryModeBot   DeliveryMode = "bot"
)

func (m DeliveryMode) IsValid() bool {
	return m == DeliveryModeHuman || m == DeliveryModeBot
}

type VideoGenStatus string

const (
	VideoGenStatusPending    VideoGenStatus = "pending"
	VideoGenStatusWaiting    VideoGenStatus = "waiting"
	VideoGenStatusProcessing VideoGenStatus = "processing"
	VideoGenStatusCompleted  VideoGenStatus = "completed"
	VideoGenStatusFailed     VideoGenStatus = "failed"
)

type ResponseProgress string

const (
	// ProgressInProcess бекенд не пишет, результат сохраняется одной записью
	// после отправки. Значение оставлено для фильтров ревьюера: в хранилище
	// могут лежать незавершенные записи, импортированные из старой схемы.
	ProgressInProcess ResponseProgress = "In Process"
	ProgressCompleted ResponseProgress = "Completed"
)

type Verdict string

const (
	VerdictNotScored Verdict = "Not Scored"
	VerdictPass      Verdict = "Pass"
	VerdictFail      Verdict = "Fail"
)

func (v Verdict) IsValid() bool {
	return v == VerdictNotScored || v == VerdictPass || v == VerdictFail
}

// превью аватара для стартовой карточки интервью
const DefaultAvatarPreviewUrl = "https://files2.heygen.ai/avatar/v3/1ad51ab9fee24ae88af067206e14a1d8_44250/preview_target.webp"
