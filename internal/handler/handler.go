package handler

import (
	"github.com/go-chi/chi/v5"
	pt_BR "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/config"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	trans, _ := uni.GetTranslator("pt_BR")
	if err := pt_BR_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a logged-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Get("/schedule", h.GetMySchedule)
			r.Get("/payroll", h.GetMyPayroll)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.Route("/schedule", func(r chi.Router) {
					r.Get("/", h.GetUserSchedule)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.ReplaceUserSchedule)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUserSchedule)
				})
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/payroll", h.GetUserPayroll)
			})
		})

		r.Route("/establishments", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateEstablishment)
			r.Get("/", h.GetAllEstablishments)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.establishmentInfo)
				r.Get("/", h.GetEstablishment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateEstablishment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEstablishment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/billing", h.GetEstablishmentBilling)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateEvent)
			r.Get("/", h.GetAllEvents)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.eventInfo)
				r.Get("/", h.GetEvent)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEvent)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/services", h.CreateService)
			})
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/availability", h.GetAvailableMashguichim)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.serviceInfo)
				r.Get("/", h.GetService)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateService)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteService)
			})
		})

		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/reports/dashboard", h.GetDashboard)
	})
}
