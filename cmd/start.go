package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devserver/core/browser"
	"devserver/core/config"
	"devserver/core/loader"
	"devserver/core/logger"
	"devserver/core/middleware/accesslog"
	"devserver/core/middleware/cors"
	"devserver/core/middleware/rayid"
	"devserver/core/server"
	"devserver/core/storage"
	"devserver/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the development server",
	Long: `Serves the root directory until interrupted with Ctrl+C.
Settings come from flags, environment variables (SERVER_PORT, STORAGE_ROOT, ...),
an optional --config file and a .env file in the working directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runStart(ctx, cmd)
	},
}

func runStart(ctx context.Context, cmd *cobra.Command) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Open the serving root
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	// 4. Initialize Server
	srv := server.New(cfg.Server, logg,
		server.WithOpener(browser.NewSystem()),
		server.WithOutput(cmd.OutOrStdout()),
		server.WithRoot(store.Root()),
	)
	app := srv.App()

	// Middleware Registration
	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())
	// 2. CORS before anything that can fail, so error responses carry it
	app.Use(cors.New(cfg.CORS))
	// 3. Access log
	app.Use(accesslog.New(logg))

	// 5. Load Features
	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(store, cfg.Static, logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	// 6. Serve until interrupted
	if err := srv.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nServer stopped by user")
	return nil
}

func init() {
	f := startCmd.Flags()
	f.String("host", "127.0.0.1", "interface to listen on")
	f.IntP("port", "p", 3000, "port to listen on")
	f.StringP("root", "r", ".", "directory to serve")
	f.String("index", "index.html", "document served for / and directories")
	f.Bool("list-dirs", false, "list directories that have no index document")
	f.Bool("open", true, "open the default browser after startup")
	f.String("backend", "http://localhost:8000", "backend API address shown in the banner")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.StringP(config.ConfigFileFlag, "c", "", "optional config file (yaml, toml or json)")

	RootCmd.AddCommand(startCmd)
}
