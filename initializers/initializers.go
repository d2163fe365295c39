package initializers

import (
	"context"
	"time"

	"ai-interview-backend/config"
	"ai-interview-backend/fiberlog"
	xlsexport "ai-interview-backend/lib/export/xls"
	gpthandler "ai-interview-backend/lib/gpt"
	heygenclient "ai-interview-backend/lib/heygen/client"
	interviewhandler "ai-interview-backend/lib/interview"
	responsehandler "ai-interview-backend/lib/response"
	"ai-interview-backend/lib/videogen"
	statusworker "ai-interview-backend/lib/videogen/status-worker"
	"ai-interview-backend/lib/wizard"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	heygenclient.NewProvider()
	videogen.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	interviewhandler.NewHandler()
	responsehandler.NewHandler()
	wizard.NewHandler(ctx)
	go initWorkers(ctx)
}

// запускаем с задержкой чтоб не мешать старту HTTP сервера
func initWorkers(ctx context.Context) {
	// Задача проверки статусов генерации видео и кеширования готовых ссылок
	statusworker.StartWorker(ctx, 10*time.Second)
}
