package installer

// InstallState accumulates the answers collected by the wizard. The env
// tags drive serialization into the runtime .env file.
type InstallState struct {
	LLMProvider      string `env:"BANK_LLM_PROVIDER"`
	LLMModel         string `env:"BANK_LLM_MODEL"`
	GeminiAPIKey     string `env:"BANK_GEMINI_API_KEY"`
	OpenAIAPIKey     string `env:"BANK_OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"BANK_OPENROUTER_API_KEY"`
	OllamaBaseURL    string `env:"BANK_OLLAMA_BASE_URL"`

	EmbedProvider string `env:"BANK_EMBED_PROVIDER"`
	EmbedModel    string `env:"BANK_EMBED_MODEL"`

	CorpusPath string `env:"BANK_CORPUS_PATH"`

	EnableHTTP bool   `env:"BANK_ENABLE_HTTP"`
	HTTPAddr   string `env:"BANK_HTTP_ADDR"`

	TelegramToken   string `env:"BANK_TELEGRAM_TOKEN"`
	TelegramOwnerID int64  `env:"BANK_TELEGRAM_OWNER_ID"`
	EnableTelegram  bool   `env:"BANK_ENABLE_TELEGRAM"`
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
