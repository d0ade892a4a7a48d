package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/console"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/leonelquinteros/gotext"
)

const tokenLifetime = 24 * time.Hour

// Global variables for dependencies
var (
	appLogger      *logger.ComponentLogger
	mazeService    i.MazeService
	jwtTokenizer   i.Tokenizer
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeService(mode string) {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(&service.Config{
		Renderer:    render.NewConsole(),
		VerifyTrees: config.Envs.VerifyTrees,
		Seed:        config.Envs.MazeSeed,
		MaxSize:     config.Envs.MazeMaxSize,
		Logger:      mazeLogger.With("mode", mode),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Debug("Maze service initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		return
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	authorization := identity.Open()
	if jwtTokenizer != nil {
		authorization = identity.Authorize(jwtTokenizer)
	} else {
		appLogger.Info("JWT_SECRET is not set, protected routes are open")
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: authorization,
	})
	appLogger.Info("Router initialized")
}

func initGettext() {
	gotext.Configure(config.Envs.LocalesDir, config.Envs.Language, "default")
}

func serve() {
	initJWTTokenizer()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func issueToken(subject string) {
	initJWTTokenizer()
	if jwtTokenizer == nil {
		appLogger.Error("JWT_SECRET must be set to issue tokens")
		os.Exit(1)
	}

	t, err := jwtTokenizer.Generate(map[string]interface{}{"sub": subject}, tokenLifetime)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Issuing token: %v", err))
		os.Exit(1)
	}
	fmt.Println(t)
}

func main() {
	mode := flag.String("mode", "console", "console, serve or token")
	subject := flag.String("subject", "maze-client", "subject of the issued token (token mode)")
	flag.Parse()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "console":
		initGettext()
		initMazeService(*mode)
		console.New(os.Stdin, os.Stdout, mazeService).Run()
	case "serve":
		initMazeService(*mode)
		serve()
	case "token":
		issueToken(*subject)
	default:
		appLogger.Error(fmt.Sprintf("Unknown mode %q", *mode))
		os.Exit(2)
	}
}
