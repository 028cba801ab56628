package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"slot-bank/internal/announce"
	appadmin "slot-bank/internal/app/admin"
	appplayer "slot-bank/internal/app/player"
	"slot-bank/internal/cashout"
	"slot-bank/internal/config"
	"slot-bank/internal/game"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, gameCfg game.Config, src game.SymbolSource, ann *announce.Announcer) *chi.Mux {
	led := ledger.New(st)
	wf := cashout.NewWorkflow(st, ann)
	eng := game.NewEngine(st, led, ann, gameCfg, src)

	playerSvc := appplayer.NewService(led, eng, wf, st, gameCfg)
	adminSvc := appadmin.NewService(led, wf, st, gameCfg)

	playerHandlers := NewPlayerHandlers(playerSvc)
	adminHandlers := NewAdminHandlers(adminSvc, st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/paytable", playerHandlers.Paytable())

		r.Group(func(r chi.Router) {
			r.Use(ActorAuthMiddleware())
			r.Get("/balance", playerHandlers.Balance())
			r.Post("/spin", playerHandlers.Spin())
			r.Post("/topup/quote", playerHandlers.TopUpQuote())
			r.Post("/cashouts", playerHandlers.RequestCashout())
			r.Get("/cashouts", playerHandlers.CashoutHistory())
			r.Get("/spins", playerHandlers.SpinHistory())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/cashouts/queued", adminHandlers.QueuedCashouts())
			r.Post("/cashouts/{request_id}/approve", adminHandlers.Approve())
			r.Post("/cashouts/{request_id}/paid", adminHandlers.MarkPaid())
			r.Post("/cashouts/{request_id}/reject", adminHandlers.Reject())
			r.Post("/credit", adminHandlers.Credit())
			r.Get("/journal", adminHandlers.Journal())
			r.Post("/accounts/{account_id}/verify", adminHandlers.SetVerified())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
