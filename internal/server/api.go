package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"fromagerie/internal/config"
	"fromagerie/internal/content"
	"fromagerie/internal/economy"
	"fromagerie/internal/event"
	"fromagerie/internal/locale"
	"fromagerie/internal/sim"
	"fromagerie/internal/telemetry"
)

// App holds the run the server is exposing. One run at a time; the
// engine is not safe for concurrent use, so every handler takes mu.
type App struct {
	mu      sync.Mutex
	Balance config.Balance
	Catalog *event.Catalog
	Engine  *sim.Engine
	Seed    int64
	Locale  locale.Table

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// monthView is MonthEvent with display text resolved through the
// locale table. Choices carry only what a client needs to render and
// pick; effect internals stay server-side.
type monthView struct {
	Month    int            `json:"month"`
	CalMonth int            `json:"cal_month"`
	EventID  event.ID       `json:"event_id,omitempty"`
	Type     event.Type     `json:"type,omitempty"`
	Title    string         `json:"title,omitempty"`
	Text     string         `json:"text,omitempty"`
	Choices  []string       `json:"choices,omitempty"`
	Finance  economy.Report `json:"finance"`
	Crashed  bool           `json:"crashed"`
	Outcome  sim.Outcome    `json:"outcome"`
}

func (app *App) viewOf(me sim.MonthEvent) monthView {
	v := monthView{
		Month:    me.Month,
		CalMonth: economy.CalendarMonth(me.Month, app.Balance),
		Finance:  me.Finance,
		Crashed:  me.Crashed,
		Outcome:  me.Outcome,
	}
	if me.Event != nil {
		txt := app.Locale.Resolve(me.Event, me.Choices)
		v.EventID = me.Event.ID
		v.Type = me.Event.Type
		v.Title = txt.Title
		v.Text = txt.Text
		v.Choices = txt.Choices
	}
	return v
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	Handle(mux, rr, "GET /api/run/state", "Current run state snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		writeJSON(w, map[string]any{
			"month":   app.Engine.Month(),
			"outcome": app.Engine.Outcome(),
			"state":   app.Engine.State(),
		})
	})

	Handle(mux, rr, "POST /api/run/month", "Begin the month and get its event", `{}`, func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()

		me, err := app.Engine.BeginMonth()
		if err != nil {
			http.Error(w, err.Error(), 409)
			return
		}
		writeJSON(w, app.viewOf(me))
	})

	Handle(mux, rr, "POST /api/run/choice", "Resolve the pending event", `{"index":0}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}

		app.mu.Lock()
		defer app.mu.Unlock()

		res, err := app.Engine.ResolveChoice(body.Index)
		if err != nil {
			http.Error(w, err.Error(), 409)
			return
		}
		writeJSON(w, map[string]any{
			"result": res,
			"state":  app.Engine.State(),
		})
	})

	Handle(mux, rr, "GET /api/run/finance", "Projected finance for the current month", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		writeJSON(w, economy.MonthlyProfit(app.Engine.State(), app.Engine.Month(), app.Balance))
	})

	Handle(mux, rr, "GET /api/run/history", "Resolved events in order", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		writeJSON(w, app.Engine.Firings())
	})

	Handle(mux, rr, "GET /api/run/stats", "Firing stats for the run so far", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		writeJSON(w, telemetry.CalculateStats(app.Engine.Firings(), app.Catalog))
	})

	Handle(mux, rr, "GET /api/run/save", "Export the run as a resumable save", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()

		save, err := app.Engine.Save(app.Seed)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, save)
	})

	Handle(mux, rr, "POST /api/run/restore", "Replace the run with a save", `{"version":1,"seed":42,...}`, func(w http.ResponseWriter, r *http.Request) {
		var save sim.Save
		if err := json.NewDecoder(r.Body).Decode(&save); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}

		app.mu.Lock()
		defer app.mu.Unlock()

		eng, err := sim.Resume(sim.Options{
			Balance: app.Balance,
			Catalog: app.Catalog,
			Seed:    save.Seed,
		}, save)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		app.Engine = eng
		app.Seed = save.Seed
		writeJSON(w, map[string]any{
			"month":   eng.Month(),
			"outcome": eng.Outcome(),
		})
	})

	Handle(mux, rr, "POST /api/run/new", "Start a fresh run", `{"seed":42,"difficulty":"realistic"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Seed       int64  `json:"seed"`
			Difficulty string `json:"difficulty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if body.Seed == 0 {
			body.Seed = time.Now().UnixNano()
		}

		bal := app.Balance
		switch body.Difficulty {
		case "":
		case "realistic":
			bal = config.Realistic()
		case "forgiving":
			bal = config.Forgiving()
		case "brutal":
			bal = config.Brutal()
		default:
			http.Error(w, "unknown difficulty", 400)
			return
		}

		catalog, err := content.NewCatalog(bal)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		eng, err := sim.New(sim.Options{
			Balance: bal,
			Catalog: catalog,
			Seed:    body.Seed,
		})
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		app.mu.Lock()
		defer app.mu.Unlock()
		app.Balance = bal
		app.Catalog = catalog
		app.Engine = eng
		app.Seed = body.Seed
		writeJSON(w, map[string]any{
			"seed":  body.Seed,
			"month": eng.Month(),
		})
	})

	Handle(mux, rr, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})
}
