package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/arale275/autix-sub001/internal/adapters/kvstore"
	"github.com/arale275/autix-sub001/internal/adapters/marketapi"
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/filtering"
	"github.com/arale275/autix-sub001/internal/core/services"
	"github.com/arale275/autix-sub001/internal/platform/appctx"
	"github.com/arale275/autix-sub001/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	kv, err := kvstore.OpenSQLite(cfg.KVPath)
	if err != nil {
		logger.Error("Failed to open local store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer kv.Close()
	logger.Info("Local store opened", slog.String("path", cfg.KVPath))

	user := domain.UserRef{ID: cfg.UserID, Role: domain.Role(cfg.UserRole)}
	client := marketapi.NewClient(cfg.APIBaseURL, cfg.APIToken)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = appctx.WithLogger(appctx.WithUser(ctx, user), logger)

	favorites := services.NewFavoritesService(kv)

	var targets []services.Refresher
	var dump func(ctx context.Context)

	switch user.Role {
	case domain.RoleBuyer:
		requests := services.NewRequestService(client, user.ID)
		targets = append(targets, requests)
		dump = func(ctx context.Context) { dumpBuyer(ctx, requests) }
	default:
		inquiries := services.NewInquiryService(client, user.ID)
		cars := services.NewCarService(client, user.ID)
		targets = append(targets, inquiries, cars)
		dump = func(ctx context.Context) { dumpDealer(ctx, inquiries, cars, favorites, user.ID) }
	}

	poller := services.NewPoller(cfg.PollInterval, targets...)
	if err := poller.RefreshAll(ctx); err != nil {
		logger.Error("Initial refresh failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	dump(ctx)

	logger.Info("Polling for changes",
		slog.Duration("interval", cfg.PollInterval),
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))
	poller.Run(ctx)
}

func dumpDealer(ctx context.Context, inquiries *services.InquiryService, cars *services.CarService, favorites *services.FavoritesService, userID string) {
	logger := appctx.Logger(ctx)

	is := inquiries.Stats()
	logger.Info("Inquiry dashboard",
		slog.Int("total", is.Total),
		slog.Int("new", is.New),
		slog.Int("urgent", is.Urgent),
		slog.Int("today", is.Today),
		slog.Int("response_rate", is.ResponseRate))

	cs := cars.Stats()
	logger.Info("Inventory dashboard",
		slog.Int("total", cs.Total),
		slog.Int("active", cs.Active),
		slog.Int("hidden", cs.Hidden),
		slog.Int("sold", cs.Sold))

	// Restore the last-used filter so the first view matches the previous session.
	spec, ok, err := favorites.LastFilter(ctx, userID)
	if err != nil {
		logger.Error("Failed to load saved filter", slog.String("error", err.Error()))
		return
	}
	if !ok {
		spec = filtering.Spec{Status: string(domain.InquiryNew)}
	}
	view := inquiries.View(spec)
	logger.Info("Inquiry view", slog.Int("matching", len(view)))
}

func dumpBuyer(ctx context.Context, requests *services.RequestService) {
	logger := appctx.Logger(ctx)
	rs := requests.Stats()
	logger.Info("Request dashboard",
		slog.Int("total", rs.Total),
		slog.Int("active", rs.Active),
		slog.Int("closed", rs.Closed),
		slog.Int("this_week", rs.ThisWeek))
}
