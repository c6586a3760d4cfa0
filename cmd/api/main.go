package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/builtafrica/spin-promo/internal/config"
	"github.com/builtafrica/spin-promo/internal/infra/database"
	"github.com/builtafrica/spin-promo/internal/infra/http/handlers"
	appmiddleware "github.com/builtafrica/spin-promo/internal/infra/http/middleware"
	"github.com/builtafrica/spin-promo/internal/infra/mail"
	"github.com/builtafrica/spin-promo/internal/infra/queue"
	"github.com/builtafrica/spin-promo/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
	}
	defer db.Close()

	// 1. Repositórios
	activityRepo := database.NewSpinActivityRepository(db)
	campaignRepo := database.NewCampaignRepository(db)

	// 2. Email (opcional: sem credencial o dispatcher vira no-op avisado)
	var emailService usecase.EmailService
	if cfg.MailConfigured() {
		fromInternal := cfg.MailFromInternal
		if fromInternal == "" {
			fromInternal = cfg.SMTPUser
		}
		emailService = mail.NewEmailSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
			cfg.OpsMailbox, fromInternal, cfg.MailFromCS,
		)
	} else {
		log.Println("⚠️ SMTP não configurado. Notificações de giro serão puladas.")
	}

	dispatchUC := usecase.NewDispatchNotificationsUseCase(emailService)

	// 3. Fila (opcional). Com RABBITMQ_URL o giro publica na fila durável e
	// o worker consome; sem ela o dispatch roda direto em goroutine.
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp091.Connection
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("❌ Falha ao conectar no RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, dispatchUC, cfg.DispatchTimeout)
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	checkEligibilityUC := usecase.NewCheckEligibilityUseCase(activityRepo, campaignRepo)
	recordSpinUC := usecase.NewRecordSpinUseCase(
		activityRepo, campaignRepo, producer, dispatchUC, cfg.DispatchTimeout,
	)
	updateActivityUC := usecase.NewUpdateActivityUseCase(activityRepo)
	incrementUC := usecase.NewIncrementSpinsUseCase(activityRepo)

	// 5. Handlers
	eligibilityHandler := handlers.NewEligibilityHandler(checkEligibilityUC)
	activityHandler := handlers.NewActivityHandler(recordSpinUC, updateActivityUC, incrementUC)
	emailHandler := handlers.NewEmailHandler(dispatchUC)

	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.MailConfigured())

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/api/check-eligibility", eligibilityHandler.Handle)
	r.Post("/api/spin-activity", activityHandler.HandleRecord)
	r.Put("/api/spin-activity", activityHandler.HandleUpdate)
	r.Patch("/api/spin-activity", activityHandler.HandleIncrement)
	r.Post("/api/send-spin-emails", emailHandler.Handle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 Spin-the-Wheel API rodando na porta %s", addr)
	http.ListenAndServe(addr, r)
}
