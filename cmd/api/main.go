package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/config"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/handler"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/payroll"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	/**********************************************
	 * database
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("não foi possível criar o pool de conexões", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object; ping to make sure the database
	// is actually reachable.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("não foi possível conectar ao banco de dados", "error", err)
		return
	}

	/**********************************************
	 * repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * initial admin
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("não foi possível gerar o hash da senha do administrador inicial", "error", err)
		return
	}
	initialAdmin := &domain.User{
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialAdmin.FullName,
		Email:        cfg.InitialAdmin.Email,
		Role:         domain.RoleAdmin,
	}
	if err := repo.CreateUser(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_username_key":
				// Initial admin already exists, nothing to do.
			default:
				logger.Error("não foi possível criar o administrador inicial", "error", err)
				return
			}
		default:
			logger.Error("não foi possível criar o administrador inicial", "error", err)
			return
		}
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("não foi possível conectar ao rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	mailCh, err := conn.Channel()
	if err != nil {
		logger.Error("não foi possível abrir o canal", "error", err)
		return
	}
	defer mailCh.Close()

	_, err = mailCh.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("não foi possível declarar a fila", "error", err)
		return
	}

	/**********************************************
	 * redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, mailCh, rdb)
	if err != nil {
		logger.Error("não foi possível criar o handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * monthly payroll summary job
	 **********************************************/
	c := cron.New()
	if _, err := c.AddFunc("0 8 1 * *", func() {
		if err := enqueuePayrollSummaries(cfg, repo, mailCh); err != nil {
			logger.Error("não foi possível enfileirar os resumos de pagamento", "error", err)
		}
	}); err != nil {
		logger.Error("não foi possível registrar a tarefa mensal", "error", err)
		return
	}
	c.Start()
	defer c.Stop()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("iniciando o servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("não foi possível iniciar o servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("encerrando o servidor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha ao encerrar o servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor encerrado com sucesso")
}

// enqueuePayrollSummaries mails every active mashguiach the closed total of
// the previous month. Runs on the 1st of each month.
func enqueuePayrollSummaries(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	to := from.AddDate(0, 1, 0)

	mashguichim, err := repo.GetAllMashguichim()
	if err != nil {
		return err
	}

	defaults := payroll.Rate{Day: cfg.Payroll.DayRate, Night: cfg.Payroll.NightRate}

	for _, m := range mashguichim {
		services, err := repo.GetServicesByMashguiachInRange(m.ID, from, to)
		if err != nil {
			return err
		}
		if len(services) == 0 {
			continue
		}

		report := payroll.BuildMonthlyPayroll(services, defaults, cfg.Payroll.MinimumPayment)

		body, err := json.Marshal(domain.MailMessage{
			Type: "payroll_summary",
			To:   m.Email,
			Data: domain.PayrollSummaryMailData{
				FullName:    m.FullName,
				Month:       from.Format("01/2006"),
				TotalAmount: report.TotalAmount,
				Services:    len(report.Lines),
			},
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
		err = mailCh.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        body,
			},
		)
		cancel()
		if err != nil {
			return err
		}
	}

	return nil
}
