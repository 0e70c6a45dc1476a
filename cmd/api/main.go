package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mashupapi/internal/books"
	"mashupapi/internal/config"
	"mashupapi/internal/dashboard"
	apphttp "mashupapi/internal/http"
	"mashupapi/internal/httpx"
	"mashupapi/internal/knowledge"
	"mashupapi/internal/logging"
	"mashupapi/internal/movies"
	"mashupapi/internal/music"
	"mashupapi/internal/news"
	"mashupapi/internal/platform/chucknorris"
	"mashupapi/internal/platform/dbpedia"
	"mashupapi/internal/platform/nytimes"
	"mashupapi/internal/platform/sanity"
	"mashupapi/internal/platform/trakt"
	"mashupapi/internal/platform/youtube"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.FromEnv()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	for _, s := range []struct {
		name string
		ok   bool
	}{
		{"sanity", cfg.Sanity.Configured()},
		{"trakt", cfg.Trakt.Configured()},
		{"youtube", cfg.YouTube.Configured()},
		{"nytimes", cfg.NYTimes.Configured()},
	} {
		if !s.ok {
			logging.Warn().Str("source", s.name).Msg("source not configured, its page will degrade")
		}
	}

	router := buildRouter(cfg)

	httpServer := &http.Server{
		Addr:        cfg.Addr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		// The DBpedia endpoint can legitimately take close to its 60s
		// client timeout; the write timeout must outlast it.
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Fatal().Err(err).Msg("server error")
	}
}

// buildRouter wires clients, services, and handlers onto a ServeMux.
// Split out of main so routing tests can stand up the full chain.
func buildRouter(cfg config.Config) http.Handler {
	sanityClient := sanity.NewClient(cfg.Sanity)
	traktClient := trakt.NewClient(cfg.Trakt)
	youtubeClient := youtube.NewClient(cfg.YouTube)
	nytClient := nytimes.NewClient(cfg.NYTimes)
	dbpediaClient := dbpedia.NewClient(cfg.DBpedia)
	jokeClient := chucknorris.NewClient()

	booksService := books.NewService(sanityClient)
	moviesService := movies.NewService(traktClient)
	musicService := music.NewService(youtubeClient)
	newsService := news.NewService(nytClient)
	knowledgeService := knowledge.NewService(dbpediaClient)
	dashboardService := dashboard.NewService(traktClient, sanityClient, nytClient, youtubeClient, cfg.YouTube.PlaylistID)

	booksHandler := apphttp.NewBooksHandler(booksService)
	moviesHandler := apphttp.NewMoviesHandler(moviesService)
	musicHandler := apphttp.NewMusicHandler(musicService, cfg.YouTube.PlaylistID)
	newsHandler := apphttp.NewNewsHandler(newsService)
	searchHandler := apphttp.NewSearchHandler(knowledgeService)
	dashboardHandler := apphttp.NewDashboardHandler(dashboardService)
	jokeHandler := apphttp.NewJokeHandler(jokeClient)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	route := func(pattern string, h http.HandlerFunc) {
		router.Handle(pattern, httpx.MetricsMiddleware(pattern, apphttp.MethodMux(map[string]http.Handler{
			http.MethodGet: h,
		})))
	}

	route("/api/dashboard", dashboardHandler.Snapshot)
	route("/api/books", booksHandler.List)
	route("/api/movies", moviesHandler.History)
	route("/api/movies/popular", moviesHandler.Popular)
	route("/api/music", musicHandler.Playlist)
	route("/api/news", newsHandler.List)
	route("/api/search", searchHandler.Search)
	route("/api/joke", jokeHandler.Random)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.CORSMiddleware(corsOrigins())(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)
	return handler
}

func corsOrigins() []string {
	// Local front-end development hosts. Override with CORS_ORIGINS when
	// the dashboard is served elsewhere.
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		origins = strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}
	return origins
}
