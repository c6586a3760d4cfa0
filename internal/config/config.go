package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carrega tudo do ambiente. O .env é só conveniência de dev;
// em produção as variáveis vêm do orquestrador.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Vazio = dispatch direto em goroutine. Preenchido = fila durável
	// (at-least-once entre restarts do processo).
	RabbitMQURL string `env:"RABBITMQ_URL"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// Caixa interna que recebe o aviso de cada giro.
	OpsMailbox string `env:"OPS_MAILBOX"`
	// Remetentes: aviso interno sai como "Built Team", email do participante
	// sai como "Customer Success".
	MailFromInternal string `env:"MAIL_FROM_INTERNAL"`
	MailFromCS       string `env:"MAIL_FROM_CS"`

	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MailConfigured diz se dá pra discar SMTP. Sem credencial o dispatcher
// degrada pra warning em vez de erro.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.OpsMailbox != ""
}
