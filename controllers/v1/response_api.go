package apiv1

import (
	"fmt"
	"time"

	"ai-interview-backend/controllers"
	responsehandler "ai-interview-backend/lib/response"
	apimodels "ai-interview-backend/models/api"
	responseapimodels "ai-interview-backend/models/api/response"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type responseApiController struct {
	controllers.BaseAPIController
}

func InitResponseApiRouters(app *fiber.App) {
	controller := responseApiController{}
	app.Route("response", func(responseRootRoute fiber.Router) {
		responseRootRoute.Route("interview/:id", func(interviewRoute fiber.Router) {
			interviewRoute.Put("list", controller.list)
			interviewRoute.Get("xls-export", controller.xlsExport)
		})
		responseRootRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("verdict", controller.markInterview)
			idRoute.Put("answer/:answerID/verdict", controller.markAnswer)
			idRoute.Get("pdf-export", controller.pdfExport)
		})
	})
}

// @Summary Список результатов по интервью
// @Tags Результаты интервью
// @Description Список результатов прохождения интервью кандидатами
// @Param   id          		path    string  true         "Идентификатор интервью"
// @Param	body				body	responseapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]responseapimodels.ResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/interview/{id}/list [put]
func (c *responseApiController) list(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload responseapimodels.ListFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := responsehandler.Instance.ListByInterview(id, payload)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения списка результатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Результат прохождения
// @Tags Результаты интервью
// @Description Результат прохождения интервью кандидатом с видео ответов
// @Param   id          		path    string  true         "Идентификатор результата"
// @Success 200 {object} apimodels.Response{data=responseapimodels.ResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/{id} [get]
func (c *responseApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := responsehandler.Instance.GetByID(id)
	if err != nil {
		logger := log.WithField("response_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения результата")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("результат не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Вердикт по интервью
// @Tags Результаты интервью
// @Description Выставить вердикт по прохождению в целом
// @Param   id          		path    string  true         "Идентификатор результата"
// @Param	body				body	responseapimodels.VerdictData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/{id}/verdict [put]
func (c *responseApiController) markInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload responseapimodels.VerdictData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := responsehandler.Instance.MarkInterview(id, payload.Verdict)
	if err != nil {
		logger := log.WithField("response_id", id)
		return c.SendError(ctx, logger, err, "Ошибка выставления вердикта")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Вердикт по ответу
// @Tags Результаты интервью
// @Description Выставить вердикт по отдельному ответу кандидата
// @Param   id          		path    string  true         "Идентификатор результата"
// @Param   answerID    		path    string  true         "Идентификатор ответа"
// @Param	body				body	responseapimodels.VerdictData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/{id}/answer/{answerID}/verdict [put]
func (c *responseApiController) markAnswer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	answerID := ctx.Params("answerID")
	if answerID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор ответа"))
	}
	var payload responseapimodels.VerdictData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := responsehandler.Instance.MarkAnswer(id, answerID, payload.Verdict)
	if err != nil {
		logger := log.WithField("response_id", id).WithField("answer_id", answerID)
		return c.SendError(ctx, logger, err, "Ошибка выставления вердикта по ответу")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка результатов в Excel
// @Tags Результаты интервью
// @Description Выгрузка результатов по интервью в Excel
// @Param   id          		path    string  true         "Идентификатор интервью"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/interview/{id}/xls-export [get]
func (c *responseApiController) xlsExport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := responsehandler.Instance.ExportXls(id)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка выгрузки результатов в Excel")
	}
	fileName := fmt.Sprintf("responses-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка результата в PDF
// @Tags Результаты интервью
// @Description Отчет по прохождению интервью кандидатом в PDF
// @Param   id          		path    string  true         "Идентификатор результата"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/response/{id}/pdf-export [get]
func (c *responseApiController) pdfExport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := responsehandler.Instance.ExportPdf(id)
	if err != nil {
		logger := log.WithField("response_id", id)
		return c.SendError(ctx, logger, err, "Ошибка выгрузки результата в PDF")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	fileName := fmt.Sprintf("response-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(pdfFile)
}
