package apiv1

import (
	"ai-interview-backend/controllers"
	gpthandler "ai-interview-backend/lib/gpt"
	apimodels "ai-interview-backend/models/api"
	gptapimodels "ai-interview-backend/models/api/gpt"

	"github.com/gofiber/fiber/v2"
)

type gptApiController struct {
	controllers.BaseAPIController
}

func InitGptApiRouters(app *fiber.App) {
	controller := gptApiController{}
	app.Route("gpt", func(gptRootRoute fiber.Router) {
		gptRootRoute.Post("generate_script_draft", controller.generateScriptDraft)
	})
}

// @Summary Сгенерировать черновик сценария
// @Tags GPT
// @Description Сгенерировать черновик текста сегмента интервью по теме
// @Param	body				body		gptapimodels.ScriptDraftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptapimodels.ScriptDraftView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/gpt/generate_script_draft [post]
func (c *gptApiController) generateScriptDraft(ctx *fiber.Ctx) error {
	var payload gptapimodels.ScriptDraftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	text, err := gpthandler.Instance.GenerateScriptDraft(payload.PositionTitle, payload.Topic)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации черновика сценария")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(gptapimodels.ScriptDraftView{Text: text}))
}
