package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMb int    `default:"100" env:"APP_BODY_LIMIT_MB"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ai-interview" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"interview-videos" env:"S3_BUCKET_NAME"`
		PublicHost      string `default:"" env:"S3_PUBLIC_HOST"`
	}
	HeyGen struct {
		ApiKey          string `default:"" env:"HEYGEN_API_KEY"`
		Host            string `default:"https://api.heygen.com" env:"HEYGEN_HOST"`
		DefaultAvatarID string `default:"Abigail_expressive_2024112501" env:"HEYGEN_DEFAULT_AVATAR_ID"`
		DefaultVoiceID  string `default:"73c0b6a2e29d4d38aca41454bf58c955" env:"HEYGEN_DEFAULT_VOICE_ID"`
		PollIntervalSec int    `default:"3" env:"HEYGEN_POLL_INTERVAL_SEC"`
		PollTimeoutSec  int    `default:"300" env:"HEYGEN_POLL_TIMEOUT_SEC"`
	}
	AI struct {
		YaGptToken   string `default:"" env:"YA_GPT_TOKEN"`
		YaGptCatalog string `default:"" env:"YA_GPT_CATALOG"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	UIParams struct {
		// базовый адрес фронта, из него собирается публичная ссылка на интервью
		InterviewPath string `default:"http://localhost:3000/interview/submit/" env:"UI_INTERVIEW_PATH"`
	}
	Wizard struct {
		SessionTTLMin int `default:"120" env:"WIZARD_SESSION_TTL_MIN"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
