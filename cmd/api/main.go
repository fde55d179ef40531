package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gabrielfarias/autobrilho-backend/internal/config"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/database"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/export"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/handlers"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/middleware"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/integration/whatsapp"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/mail"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/queue"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/worker"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	defer db.Close()

	// RabbitMQ é opcional: sem fila os alertas de follow-up não saem, mas
	// o restante do sistema sobe normal.
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, alertas de follow-up desativados: %v", err)
	} else {
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 1. Repositórios
	clienteRepo := database.NewClienteRepository(db)
	servicoRepo := database.NewServicoRepository(db)
	orcamentoRepo := database.NewOrcamentoRepository(db)
	despesaRepo := database.NewDespesaRepository(db)
	interacaoRepo := database.NewInteracaoRepository(db)

	// 2. Adapters de saída
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	pdfGen := export.NewPDFGenerator(export.DadosEmpresa{
		Nome:     cfg.EmpresaNome,
		Telefone: cfg.EmpresaTelefone,
		Endereco: cfg.EmpresaEndereco,
	})

	// 3. Worker da fila (consome os alertas e avisa a equipe pelo WhatsApp)
	if rabbitMQ != nil && cfg.WhatsAppConfigurado() {
		waClient := whatsapp.NewClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID, cfg.WhatsAppNotifyPhone)
		queueWorker := queue.NewWorker(rabbitMQ.Ch, waClient)
		go queueWorker.Start(queue.QueueName)
	} else if rabbitMQ != nil {
		log.Println("⚠️ WhatsApp não configurado: alertas ficam na fila até existir consumidor")
	}

	// 4. UseCases
	clienteUC := usecase.NewClienteUseCase(clienteRepo, interacaoRepo)
	servicoUC := usecase.NewServicoUseCase(servicoRepo)
	orcamentoUC := usecase.NewOrcamentoUseCase(orcamentoRepo, clienteRepo, servicoRepo)
	despesaUC := usecase.NewDespesaUseCase(despesaRepo)
	pipelineUC := usecase.NewPipelineUseCase(clienteRepo)
	scanner := usecase.NewFollowUpScanner(pipelineUC.Board, clienteRepo, producer)
	analyticsUC := usecase.NewAnalyticsUseCase(pipelineUC.Board, orcamentoRepo)
	exportUC := usecase.NewExportUseCase(orcamentoRepo, clienteRepo, pdfGen,
		export.NewCSVGenerator(), export.NewXLSXGenerator())

	// 5. Workers de ciclo
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	followUpWorker := worker.NewFollowUpWorker(pipelineUC, scanner, cfg.FollowUpInterval)
	if cfg.EmailEquipe != "" {
		followUpWorker.ComResumoPorEmail(mailSender, cfg.EmailEquipe)
	}
	go followUpWorker.Start(ctx)
	go worker.NewAnalyticsWorker(analyticsUC, cfg.AnalyticsInterval).Start(ctx)

	// 6. Handlers
	clienteHandler := handlers.NewClienteHandler(clienteUC)
	servicoHandler := handlers.NewServicoHandler(servicoUC)
	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUC)
	despesaHandler := handlers.NewDespesaHandler(despesaUC)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUC, scanner)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.WhatsAppConfigurado())

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/clientes", func(r chi.Router) {
		r.Post("/", clienteHandler.Criar)
		r.Get("/", clienteHandler.Listar)
		r.Get("/{id}", clienteHandler.Buscar)
		r.Put("/{id}", clienteHandler.Atualizar)
		r.Delete("/{id}", clienteHandler.Excluir)
		r.Post("/{id}/interacoes", clienteHandler.RegistrarInteracao)
		r.Get("/{id}/interacoes", clienteHandler.ListarInteracoes)
		r.Get("/{id}/whatsapp", clienteHandler.LinkWhatsApp)
	})

	r.Route("/servicos", func(r chi.Router) {
		r.Post("/", servicoHandler.Criar)
		r.Get("/", servicoHandler.Listar)
		r.Put("/{id}", servicoHandler.Atualizar)
		r.Delete("/{id}", servicoHandler.Desativar)
	})

	r.Route("/orcamentos", func(r chi.Router) {
		r.Post("/", orcamentoHandler.Criar)
		r.Get("/", orcamentoHandler.Listar)
		r.Get("/{id}", orcamentoHandler.Buscar)
		r.Post("/{id}/status", orcamentoHandler.TransicionarStatus)
		r.Get("/{id}/pdf", exportHandler.PDF)
	})

	r.Route("/despesas", func(r chi.Router) {
		r.Post("/", despesaHandler.Criar)
		r.Get("/", despesaHandler.Listar)
		r.Get("/resumo", despesaHandler.Resumo)
		r.Delete("/{id}", despesaHandler.Excluir)
	})

	r.Route("/pipeline", func(r chi.Router) {
		r.Get("/", pipelineHandler.Board)
		r.Post("/recarregar", pipelineHandler.Recarregar)
		r.Post("/mover", pipelineHandler.MoverCard)
		r.Get("/followups", pipelineHandler.FollowUps)
		r.Post("/followups/{clienteID}/contatado", pipelineHandler.MarcarContatado)
	})

	r.Get("/analytics", analyticsHandler.Snapshot)
	r.Get("/export/orcamentos.csv", exportHandler.CSV)
	r.Get("/export/orcamentos.xlsx", exportHandler.XLSX)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🔥 AutoBrilho CRM rodando na porta :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erro no servidor HTTP: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown forçado: %v", err)
	}
	log.Println("✅ Servidor encerrado")
}
