package seed

import (
	"log/slog"
	"math/rand"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/config"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/payroll"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/repository"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/utils"
)

// SeedDemoData builds a small coherent data set: establishments, supervisors
// with fixed jobs, and events with priced services. Meant for development
// environments only.
func SeedDemoData(cfg *config.Config, repo *repository.Repository) {
	establishments := make([]*domain.Establishment, 0, 5)
	for i := 0; i < 5; i++ {
		e := utils.GenerateRandomEstablishment()
		if err := repo.CreateEstablishment(e); err != nil {
			slog.Error("não foi possível inserir o estabelecimento", slog.String("error", err.Error()))
			continue
		}
		establishments = append(establishments, e)
	}

	mashguichim := make([]*domain.User, 0, 10)
	for i := 0; i < 10; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("não foi possível gerar o usuário", slog.String("error", err.Error()))
			continue
		}
		if err := repo.CreateUser(user); err != nil {
			slog.Error("não foi possível inserir o usuário", slog.String("error", err.Error()))
			continue
		}
		mashguichim = append(mashguichim, user)
	}

	if len(establishments) == 0 || len(mashguichim) == 0 {
		slog.Error("dados insuficientes para continuar o seed")
		return
	}

	// Roughly half of the supervisors hold a fixed job.
	for _, m := range mashguichim {
		if rand.Intn(2) == 0 {
			continue
		}
		ws := utils.GenerateRandomWeeklySchedule(m.ID, establishments[rand.Intn(len(establishments))].ID)
		if err := repo.ReplaceWeeklySchedule(ws); err != nil {
			slog.Error("não foi possível inserir a escala fixa", slog.String("error", err.Error()))
		}
	}

	defaults := payroll.Rate{Day: cfg.Payroll.DayRate, Night: cfg.Payroll.NightRate}

	for i := 0; i < 15; i++ {
		event := utils.GenerateRandomEvent(establishments[rand.Intn(len(establishments))].ID)
		if err := repo.CreateEvent(event); err != nil {
			slog.Error("não foi possível inserir o evento", slog.String("error", err.Error()))
			continue
		}

		for j := 0; j < rand.Intn(2)+1; j++ {
			svc := utils.GenerateRandomService(event)
			if rand.Intn(3) > 0 {
				svc.MashguiachID = &mashguichim[rand.Intn(len(mashguichim))].ID
			}

			res := payroll.SplitAndPrice(svc.ArriveTime, svc.EndTime,
				payroll.RateFor(svc.DayRate, svc.NightRate, defaults), payroll.StepFine)
			svc.DayHours = res.DayHours
			svc.NightHours = res.NightHours
			svc.DayAmount = res.DayAmount
			svc.NightAmount = res.NightAmount
			svc.TotalAmount = res.TotalAmount

			if err := repo.CreateService(svc); err != nil {
				slog.Error("não foi possível inserir o serviço", slog.String("error", err.Error()))
			}
		}
	}

	slog.Info("seed concluído", slog.Int("establishments", len(establishments)), slog.Int("mashguichim", len(mashguichim)))
}
