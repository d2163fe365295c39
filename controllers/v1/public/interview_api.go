package publicapi

import (
	"io"

	"ai-interview-backend/controllers"
	"ai-interview-backend/lib/wizard"
	apimodels "ai-interview-backend/models/api"
	interviewapimodels "ai-interview-backend/models/api/interview"
	wizardapimodels "ai-interview-backend/models/api/wizard"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicInterviewApiController struct {
	controllers.BaseAPIController
}

func InitPublicInterviewApiRouters(app *fiber.App) {
	controller := publicInterviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Post("start", controller.start)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("begin", controller.begin)
			idRoute.Post("details", controller.setDetails)
			idRoute.Post("media-check", controller.finishMediaCheck)
			idRoute.Post("answer", controller.beginAnswer)
			idRoute.Post("record-start", controller.startRecording)
			idRoute.Post("upload-stream", controller.uploadStream)
			idRoute.Post("record-stop", controller.stopRecording)
			idRoute.Post("upload-answer", controller.uploadAnswer)
			idRoute.Post("commit", controller.commitAnswer)
			idRoute.Post("submit", controller.submit)
		})
	})
}

// @Summary Начать прохождение
// @Tags Прохождение интервью
// @Description Создать сессию прохождения интервью по публичной ссылке
// @Param	body				body		wizardapimodels.StartData	true	"request body"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/start [post]
func (c *publicInterviewApiController) start(ctx *fiber.Ctx) error {
	var payload wizardapimodels.StartData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := wizard.Instance.StartSession(ctx.UserContext(), payload.InterviewID)
	if err != nil {
		logger := log.WithField("interview_id", payload.InterviewID)
		return c.SendError(ctx, logger, err, "Ошибка создания сессии прохождения")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Текущий шаг
// @Tags Прохождение интервью
// @Description Текущий шаг сессии прохождения
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id} [get]
func (c *publicInterviewApiController) get(ctx *fiber.Ctx) error {
	return c.sendView(ctx, wizard.Instance.GetSession)
}

// @Summary Начать интервью
// @Tags Прохождение интервью
// @Description Перейти от приветственного экрана к анкете кандидата
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/begin [post]
func (c *publicInterviewApiController) begin(ctx *fiber.Ctx) error {
	return c.sendView(ctx, wizard.Instance.Begin)
}

// @Summary Анкета кандидата
// @Tags Прохождение интервью
// @Description Сохранить имя и почту кандидата. При невалидных данных шаг не меняется
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Param	body				body	wizardapimodels.DetailsData	true	"request body"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/details [post]
func (c *publicInterviewApiController) setDetails(ctx *fiber.Ctx) error {
	var payload wizardapimodels.DetailsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendView(ctx, func(sessionID string) (*wizardapimodels.SessionView, string, error) {
		return wizard.Instance.SetDetails(sessionID, payload)
	})
}

// @Summary Завершить проверку оборудования
// @Tags Прохождение интервью
// @Description Завершить проверку камеры и микрофона и перейти к вопросам
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/media-check [post]
func (c *publicInterviewApiController) finishMediaCheck(ctx *fiber.Ctx) error {
	return c.sendView(ctx, wizard.Instance.FinishMediaCheck)
}

// @Summary Перейти к ответу
// @Tags Прохождение интервью
// @Description Перейти от просмотра вопроса к записи ответа
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/answer [post]
func (c *publicInterviewApiController) beginAnswer(ctx *fiber.Ctx) error {
	return c.sendView(ctx, wizard.Instance.BeginAnswer)
}

// @Summary Начать запись
// @Tags Прохождение интервью
// @Description Начать запись ответа. Повторный запуск при активной записи отклоняется
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/record-start [post]
func (c *publicInterviewApiController) startRecording(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := wizard.Instance.StartRecording(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка запуска записи")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Передать кусок записи
// @Tags Прохождение интервью
// @Description Дописать кусок записи ответа, тело запроса - бинарные данные
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/upload-stream [post]
func (c *publicInterviewApiController) uploadStream(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	chunk := ctx.Body()
	if len(chunk) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пустой кусок записи"))
	}
	hMsg, err := wizard.Instance.AppendChunk(id, chunk)
	if err != nil {
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка сохранения куска записи")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Остановить запись
// @Tags Прохождение интервью
// @Description Остановить запись. Повторная запись заместит эту
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Param	body				body	wizardapimodels.StopRecordData	true	"request body"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/record-stop [post]
func (c *publicInterviewApiController) stopRecording(ctx *fiber.Ctx) error {
	var payload wizardapimodels.StopRecordData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.ContentType == "" {
		payload.ContentType = "video/webm"
	}
	return c.sendView(ctx, func(sessionID string) (*wizardapimodels.SessionView, string, error) {
		return wizard.Instance.StopRecording(sessionID, payload.FileName, payload.ContentType)
	})
}

// @Summary Загрузить ответ файлом
// @Tags Прохождение интервью
// @Description Загрузить запись ответа одним файлом в поле video
// @Param   id          		path    	string  true	"Идентификатор сессии"
// @Param   video				formData	file 	true	"Видео ответа"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/upload-answer [post]
func (c *publicInterviewApiController) uploadAnswer(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("video")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не передан файл с видео ответа"))
	}
	buffer, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла с видео ответа")
	}
	return c.sendView(ctx, func(sessionID string) (*wizardapimodels.SessionView, string, error) {
		return wizard.Instance.UploadAnswer(sessionID, interviewapimodels.FileData{
			Name:        file.Filename,
			ContentType: file.Header.Get(fiber.HeaderContentType),
			Data:        fileBody,
		})
	})
}

// @Summary Зафиксировать ответ
// @Tags Прохождение интервью
// @Description Зафиксировать записанный ответ (или пропуск вопроса) и перейти дальше
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/commit [post]
func (c *publicInterviewApiController) commitAnswer(ctx *fiber.Ctx) error {
	return c.sendView(ctx, wizard.Instance.CommitAnswer)
}

// @Summary Отправить ответы
// @Tags Прохождение интервью
// @Description Отправить все ответы. Повторная отправка отклоняется
// @Param   id          		path    string  true         "Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=wizardapimodels.SubmitView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/interview/{id}/submit [post]
func (c *publicInterviewApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := wizard.Instance.Submit(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка отправки ответов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *publicInterviewApiController) sendView(ctx *fiber.Ctx, op func(sessionID string) (*wizardapimodels.SessionView, string, error)) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := op(id)
	if err != nil {
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка шага прохождения интервью")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
