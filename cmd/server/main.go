package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"fromagerie/internal/config"
	"fromagerie/internal/content"
	"fromagerie/internal/httpmw"
	"fromagerie/internal/locale"
	"fromagerie/internal/server"
	"fromagerie/internal/sim"
)

func main() {
	var (
		addr       = flag.String("addr", ":8742", "listen address")
		configPath = flag.String("config", "", "balance overrides yaml, optional")
		localePath = flag.String("locale", "", "event text yaml, optional")
		seed       = flag.Int64("seed", 0, "run seed, 0 picks from the clock")
	)
	flag.Parse()

	bal := config.FromEnv()
	if *configPath != "" {
		var err error
		bal, err = config.Load(*configPath, bal)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	var texts locale.Table
	if *localePath != "" {
		var err error
		texts, err = locale.Load(*localePath)
		if err != nil {
			log.Fatalf("load locale: %v", err)
		}
	}

	catalog, err := content.NewCatalog(bal)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	engine, err := sim.New(sim.Options{
		Balance: bal,
		Catalog: catalog,
		Seed:    *seed,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("start run: %v", err)
	}

	app := &server.App{
		Balance: bal,
		Catalog: catalog,
		Engine:  engine,
		Seed:    *seed,
		Locale:  texts,
		BootNow: time.Now(),
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(log.Default()),
		httpmw.WithAccessLog(log.Default()),
	)

	log.Printf("fromagerie listening on %s (seed %d)", *addr, *seed)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
