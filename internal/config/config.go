package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config concentra tudo que vem do ambiente. O prefixo das variáveis é
// AUTOBRILHO_ (ex: AUTOBRILHO_PORT, AUTOBRILHO_DATABASE_URL).
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	RabbitUser string `envconfig:"RABBITMQ_USER" default:"guest"`
	RabbitPass string `envconfig:"RABBITMQ_PASS" default:"guest"`
	RabbitHost string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	RabbitPort string `envconfig:"RABBITMQ_PORT" default:"5672"`

	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`

	// EmailFrom/EmailEquipe: remetente e destino dos resumos de follow-up.
	EmailFrom   string `envconfig:"EMAIL_FROM" default:"nao-responda@autobrilho.com.br"`
	EmailEquipe string `envconfig:"EMAIL_EQUIPE"`

	WhatsAppToken       string `envconfig:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneID     string `envconfig:"WHATSAPP_PHONE_ID"`
	WhatsAppNotifyPhone string `envconfig:"WHATSAPP_NOTIFY_PHONE"`

	// Cabeçalho dos PDFs de orçamento.
	EmpresaNome     string `envconfig:"EMPRESA_NOME" default:"AutoBrilho Estética Automotiva"`
	EmpresaTelefone string `envconfig:"EMPRESA_TELEFONE"`
	EmpresaEndereco string `envconfig:"EMPRESA_ENDERECO"`

	FollowUpInterval  time.Duration `envconfig:"FOLLOWUP_INTERVAL" default:"5m"`
	AnalyticsInterval time.Duration `envconfig:"ANALYTICS_INTERVAL" default:"1h"`
}

// Load lê o .env (se existir) e processa as variáveis de ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("autobrilho", &cfg); err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}
	return &cfg, nil
}

// WhatsAppConfigurado diz se o canal de alerta por WhatsApp está pronto.
func (c *Config) WhatsAppConfigurado() bool {
	return c.WhatsAppToken != "" && c.WhatsAppPhoneID != "" && c.WhatsAppNotifyPhone != ""
}
