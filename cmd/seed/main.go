package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/config"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/payroll"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/repository"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/seed"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operação (1: usuários aleatórios, 2: estabelecimentos aleatórios, 3: escalas fixas aleatórias, 4: eventos e serviços aleatórios, 5: conjunto de demonstração completo)")
	flag.IntVar(&n, "n", 5, "quantidade de registros a inserir")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("nenhuma operação informada")
	case 1:
		if n <= 0 {
			slog.Error("informe uma quantidade válida de usuários")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("não foi possível gerar o usuário", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("não foi possível inserir o usuário", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("usuários inseridos com sucesso", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("informe uma quantidade válida de estabelecimentos")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				if err := repo.CreateEstablishment(utils.GenerateRandomEstablishment()); err != nil {
					slog.Error("não foi possível inserir o estabelecimento", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("estabelecimentos inseridos com sucesso", slog.Int("count", n-cnt))
		}
	case 3:
		establishments, err := repo.GetAllEstablishments()
		if err != nil {
			slog.Error("não foi possível buscar os estabelecimentos", slog.String("error", err.Error()))
			return
		}
		if len(establishments) == 0 {
			slog.Error("nenhum estabelecimento cadastrado, execute a operação 2 antes")
			return
		}

		mashguichim, err := repo.GetAllMashguichim()
		if err != nil {
			slog.Error("não foi possível buscar os mashguichim", slog.String("error", err.Error()))
			return
		}

		schedules, err := repo.GetAllWeeklySchedules()
		if err != nil {
			slog.Error("não foi possível buscar as escalas fixas", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, m := range mashguichim {
			if _, ok := schedules[m.ID]; ok {
				continue
			}

			ws := utils.GenerateRandomWeeklySchedule(m.ID, establishments[rand.Intn(len(establishments))].ID)
			if err := repo.ReplaceWeeklySchedule(ws); err != nil {
				slog.Error("não foi possível inserir a escala fixa", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("escalas fixas inseridas com sucesso", slog.Int("count", cnt))
	case 4:
		if n <= 0 {
			slog.Error("informe uma quantidade válida de eventos")
			return
		}

		establishments, err := repo.GetAllEstablishments()
		if err != nil {
			slog.Error("não foi possível buscar os estabelecimentos", slog.String("error", err.Error()))
			return
		}
		if len(establishments) == 0 {
			slog.Error("nenhum estabelecimento cadastrado, execute a operação 2 antes")
			return
		}

		defaults := payroll.Rate{Day: cfg.Payroll.DayRate, Night: cfg.Payroll.NightRate}

		cnt := n
		for i := 0; i < n; i++ {
			event := utils.GenerateRandomEvent(establishments[rand.Intn(len(establishments))].ID)
			if err := repo.CreateEvent(event); err != nil {
				slog.Error("não foi possível inserir o evento", slog.String("error", err.Error()))
				continue
			}

			svc := utils.GenerateRandomService(event)
			res := payroll.SplitAndPrice(svc.ArriveTime, svc.EndTime,
				payroll.RateFor(svc.DayRate, svc.NightRate, defaults), payroll.StepFine)
			svc.DayHours = res.DayHours
			svc.NightHours = res.NightHours
			svc.DayAmount = res.DayAmount
			svc.NightAmount = res.NightAmount
			svc.TotalAmount = res.TotalAmount

			if err := repo.CreateService(svc); err != nil {
				slog.Error("não foi possível inserir o serviço", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("eventos e serviços inseridos com sucesso", slog.Int("count", n-cnt))
	case 5:
		seed.SeedDemoData(cfg, repo)
	default:
		slog.Error("operação desconhecida", slog.Int("op", op))
	}
}
