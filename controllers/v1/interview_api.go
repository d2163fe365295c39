package apiv1

import (
	"io"

	"ai-interview-backend/controllers"
	interviewhandler "ai-interview-backend/lib/interview"
	apimodels "ai-interview-backend/models/api"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(interviewRootRoute fiber.Router) {
		interviewRootRoute.Post("", controller.create)
		interviewRootRoute.Get("list", controller.list)
		interviewRootRoute.Post("video", controller.generateVideo)
		interviewRootRoute.Get("video/:id", controller.resolveVideo)
		interviewRootRoute.Route("content/:id", func(contentRoute fiber.Router) {
			contentRoute.Put("", controller.updateContent)
			contentRoute.Delete("", controller.deleteContent)
		})
		interviewRootRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("content", controller.addContent)
			idRoute.Post("invite", controller.invite)
		})
	})
}

// @Summary Создать интервью
// @Tags Интервью
// @Description Создать интервью
// @Param	body				body		interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания интервью")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Список интервью
// @Tags Интервью
// @Description Список интервью
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/list [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получить интервью
// @Tags Интервью
// @Description Получить интервью со всеми сегментами
// @Param   id          		path    string  true         "Идентификатор интервью"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения интервью")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("интервью не найдено"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удалить интервью
// @Tags Интервью
// @Description Удалить интервью со всеми сегментами
// @Param   id          		path    string  true         "Идентификатор интервью"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewhandler.Instance.Delete(id); err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка удаления интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавить сегмент
// @Tags Интервью
// @Description Добавить сегмент сценария. Для human-сегмента видео передается файлом в поле video
// @Param   id          		path    	string  true	"Идентификатор интервью"
// @Param   kind				formData	string	true	"introduction/question/farewell"
// @Param   text				formData	string	true	"Текст сценария"
// @Param   mode				formData	string	true	"human/bot"
// @Param   order_no			formData	int 	true	"Порядок показа"
// @Param   video				formData	file 	false	"Видео сегмента (human)"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ContentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/content [post]
func (c *interviewApiController) addContent(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload, file, err := c.getContentPayload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := interviewhandler.Instance.AddContent(ctx.UserContext(), id, *payload, file)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка добавления сегмента")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить сегмент
// @Tags Интервью
// @Description Изменить сегмент сценария. Смена текста или режима сбрасывает привязанное видео
// @Param   id          		path    	string  true	"Идентификатор сегмента"
// @Param   kind				formData	string	true	"introduction/question/farewell"
// @Param   text				formData	string	true	"Текст сценария"
// @Param   mode				formData	string	true	"human/bot"
// @Param   order_no			formData	int 	true	"Порядок показа"
// @Param   video				formData	file 	false	"Видео сегмента (human)"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ContentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/content/{id} [put]
func (c *interviewApiController) updateContent(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload, file, err := c.getContentPayload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := interviewhandler.Instance.UpdateContent(ctx.UserContext(), id, *payload, file)
	if err != nil {
		logger := log.WithField("content_id", id)
		return c.SendError(ctx, logger, err, "Ошибка изменения сегмента")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удалить сегмент
// @Tags Интервью
// @Description Удалить сегмент сценария
// @Param   id          		path    string  true         "Идентификатор сегмента"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/content/{id} [delete]
func (c *interviewApiController) deleteContent(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := interviewhandler.Instance.DeleteContent(id)
	if err != nil {
		logger := log.WithField("content_id", id)
		return c.SendError(ctx, logger, err, "Ошибка удаления сегмента")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Пригласить кандидата
// @Tags Интервью
// @Description Отправить кандидату письмо с публичной ссылкой на прохождение
// @Param   id          		path    string  true         "Идентификатор интервью"
// @Param	body				body	interviewapimodels.InviteData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/invite [post]
func (c *interviewApiController) invite(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.InviteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := interviewhandler.Instance.Invite(id, payload.Email)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка отправки приглашения")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Сгенерировать видео аватара
// @Tags Интервью
// @Description Запросить генерацию видео аватара по тексту сценария
// @Param	body				body		interviewapimodels.GenerateVideoData	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.GenerateVideoView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/video [post]
func (c *interviewApiController) generateVideo(ctx *fiber.Ctx) error {
	var payload interviewapimodels.GenerateVideoData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	videoID, err := interviewhandler.Instance.GenerateVideo(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запроса генерации видео")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(interviewapimodels.GenerateVideoView{VideoID: videoID}))
}

// @Summary Дождаться готовности видео
// @Tags Интервью
// @Description Дождаться готовности сгенерированного видео и получить ссылку
// @Param   id          		path    string  true         "Идентификатор задания генерации"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ResolveVideoView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/video/{id} [get]
func (c *interviewApiController) resolveVideo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	url, err := interviewhandler.Instance.ResolveVideo(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("video_id", id)
		return c.SendError(ctx, logger, err, "Ошибка ожидания готовности видео")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(interviewapimodels.ResolveVideoView{VideoID: id, VideoUrl: url}))
}

func (c *interviewApiController) getContentPayload(ctx *fiber.Ctx) (*interviewapimodels.ContentData, *interviewapimodels.FileData, error) {
	var payload interviewapimodels.ContentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return nil, nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, nil, err
	}
	file, err := ctx.FormFile("video")
	if err != nil {
		// json запрос или форма без файла
		return &payload, nil, nil
	}
	buffer, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return nil, nil, err
	}
	return &payload, &interviewapimodels.FileData{
		Name:        file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Data:        fileBody,
	}, nil
}
