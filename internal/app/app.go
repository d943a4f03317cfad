package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/TobiasMoreno/wc-2026-be/external/fifadata"
	"github.com/TobiasMoreno/wc-2026-be/internal/config"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/favorite"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/group"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/match"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/prediction"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/preferences"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/team"
	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
	"github.com/TobiasMoreno/wc-2026-be/internal/infrastructure/repository/cache"
	"github.com/TobiasMoreno/wc-2026-be/internal/infrastructure/repository/memory"
	"github.com/TobiasMoreno/wc-2026-be/internal/infrastructure/repository/postgres"
	"github.com/TobiasMoreno/wc-2026-be/internal/infrastructure/token"
	"github.com/TobiasMoreno/wc-2026-be/internal/interfaces/httpapi"
	basecache "github.com/TobiasMoreno/wc-2026-be/internal/platform/cache"
	idgen "github.com/TobiasMoreno/wc-2026-be/internal/platform/id"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
)

type repositories struct {
	users       user.Repository
	teams       team.Repository
	matches     match.Repository
	predictions prediction.Repository
	brackets    prediction.BracketRepository
	groups      group.Repository
	favorites   favorite.Repository
	preferences preferences.Repository
}

// NewHTTPServer wires repositories, services, and the HTTP surface into
// a ready-to-run server. With DB_URL unset it falls back to seeded
// in-memory storage so a local instance needs zero infrastructure.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var repos repositories
	if cfg.DBURL == "" {
		logger.Info("storage", "mode", "memory")
		repos = buildMemoryRepositories()
	} else {
		db, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		logger.Info("storage", "mode", "postgres", "db", dbNameFromURL(cfg.DBURL))
		repos = buildPostgresRepositories(db)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cache.NewTeamRepository(repos.teams, store)
		repos.matches = cache.NewMatchRepository(repos.matches, store)
	}

	issuer, err := token.NewIssuer(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("build token issuer: %w", err)
	}

	idGenerator := idgen.NewRandomGenerator()

	var feed usecase.ScheduleFeed
	if cfg.FIFAFeedEnabled {
		feed = fifadata.NewClient(fifadata.ClientConfig{
			BaseURL:    cfg.FIFAFeedBaseURL,
			Timeout:    cfg.FIFAFeedTimeout,
			MaxRetries: cfg.FIFAFeedMaxRetries,
		})
	}

	scoringService := usecase.NewScoringService(repos.matches, repos.predictions)
	authService := usecase.NewAuthService(repos.users, idGenerator, issuer, cfg.AdminEmails)
	matchService := usecase.NewMatchService(repos.matches, scoringService)
	teamService := usecase.NewTeamService(repos.teams)
	predictionService := usecase.NewPredictionService(repos.matches, repos.predictions, repos.users)
	bracketService := usecase.NewBracketService(repos.matches, repos.brackets)
	favoriteService := usecase.NewFavoriteService(repos.matches, repos.favorites)
	preferencesService := usecase.NewPreferencesService(repos.preferences)
	groupService := usecase.NewGroupService(repos.groups, repos.users, idGenerator)
	importService := usecase.NewImportService(feed, repos.teams, repos.matches, cfg.ImportMaxWorkers)

	handler := httpapi.NewHandler(
		authService,
		matchService,
		teamService,
		predictionService,
		bracketService,
		favoriteService,
		preferencesService,
		groupService,
		importService,
		logger,
	)

	router := httpapi.NewRouter(handler, issuer, logger, cfg.CORSAllowedOrigins)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http addr is empty")
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func buildMemoryRepositories() repositories {
	userRepo := memory.NewUserRepository(nil)
	return repositories{
		users:       userRepo,
		teams:       memory.NewTeamRepository(memory.SeedTeams()),
		matches:     memory.NewMatchRepository(memory.SeedMatches(), userRepo),
		predictions: memory.NewPredictionRepository(),
		brackets:    memory.NewBracketRepository(),
		groups:      memory.NewGroupRepository(),
		favorites:   memory.NewFavoriteRepository(),
		preferences: memory.NewPreferencesRepository(),
	}
}

func buildPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		users:       postgres.NewUserRepository(db),
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		predictions: postgres.NewPredictionRepository(db),
		brackets:    postgres.NewBracketRepository(db),
		groups:      postgres.NewGroupRepository(db),
		favorites:   postgres.NewFavoriteRepository(db),
		preferences: postgres.NewPreferencesRepository(db),
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}
