package heygenapimodels

// модели запросов/ответов HeyGen API
// https://docs.heygen.com/reference/create-an-avatar-video-v2

type GenerateRequest struct {
	Caption     bool         `json:"caption"`
	Title       string       `json:"title"`
	Dimension   Dimension    `json:"dimension"`
	VideoInputs []VideoInput `json:"video_inputs"`
}

type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type VideoInput struct {
	Character  Character  `json:"character"`
	Voice      Voice      `json:"voice"`
	Background Background `json:"background"`
}

type Character struct {
	Type         string  `json:"type"` // avatar
	AvatarID     string  `json:"avatar_id"`
	Scale        float64 `json:"scale"`
	AvatarStyle  string  `json:"avatar_style"`
	TalkingStyle string  `json:"talking_style"`
	Expression   string  `json:"expression"`
}

type Voice struct {
	Type      string  `json:"type"` // text
	VoiceID   string  `json:"voice_id"`
	InputText string  `json:"input_text"`
	Speed     float64 `json:"speed"`
	Pitch     int     `json:"pitch"`
	Emotion   string  `json:"emotion"`
	Locale    string  `json:"locale"`
}

type Background struct {
	Type  string `json:"type"` // color
	Value string `json:"value"`
}

type GenerateResponse struct {
	Data struct {
		VideoID string `json:"video_id"`
	} `json:"data"`
	Error *ErrorData `json:"error"`
}

type StatusResponse struct {
	Data struct {
		Status   string     `json:"status"` // pending/waiting/processing/completed/failed
		VideoUrl string     `json:"video_url"`
		Error    *ErrorData `json:"error"`
	} `json:"data"`
}

type ErrorData struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail"`
}
