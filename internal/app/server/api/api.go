//POST /user       # Регистрация (публичный)
//POST /token      # Выдача токена (публичный)
//GET  /users      # Список email (публичный)
//POST /blog       # Создать запись (gate)
//GET  /blogs      # Список записей (gate)
//GET  /raw_users  # Только при EXPOSE_RAW
//GET  /raw_blogs  # Только при EXPOSE_RAW

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	blogAPI "blogkeeper/internal/app/server/api/http/blog"
	debugAPI "blogkeeper/internal/app/server/api/http/debug"
	healthAPI "blogkeeper/internal/app/server/api/http/health"
	"blogkeeper/internal/app/server/api/http/middleware"
	"blogkeeper/internal/app/server/api/http/middleware/auth"
	"blogkeeper/internal/app/server/api/http/middleware/logger"
	userAPI "blogkeeper/internal/app/server/api/http/user"
	"blogkeeper/internal/domain/access"
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
)

// Services собирает доменные сервисы, которые обслуживает API.
type Services struct {
	Users  user.Servicer
	Blogs  blog.Servicer
	Tokens token.Servicer
	Gate   *access.Gate
	// Storage отвечает на /health; может быть nil.
	Storage healthAPI.Pinger
}

type Options struct {
	// ExposeRaw регистрирует /raw_users и /raw_blogs.
	ExposeRaw bool
	// StorageKind попадает в ответ /health.
	StorageKind string
}

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Blog   *blogAPI.Handler
	Debug  *debugAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc Services, opts Options, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Blogkeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		"basic":  {Type: "http", Scheme: "basic"},
	}

	API := humachi.New(mux, config)

	h := handlers(svc, opts, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Blog.SetupRoutes(API)
	if h.Debug != nil {
		log.Warn("raw endpoints enabled: password verifiers and ciphertext are public")
		h.Debug.SetupRoutes(API)
	}

	return mux
}

func handlers(svc Services, opts Options, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Gate, log)
	loggerMW := logger.New(log)
	// логгер первым, чтобы отклоненные запросы тоже попадали в лог
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	healthHandler := healthAPI.NewHandler(log, svc.Storage, healthAPI.Info{
		Storage:    opts.StorageKind,
		AccessMode: string(svc.Gate.Mode()),
	}, middlewares.GetAllAndClear())

	userHandler := userAPI.NewHandler(svc.Users, svc.Tokens, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	blogHandler := blogAPI.NewHandler(svc.Blogs, log, security(svc.Gate.Mode()), middlewares.GetAllAndClear())

	var debugHandler *debugAPI.Handler
	if opts.ExposeRaw {
		debugHandler = debugAPI.NewHandler(svc.Users, svc.Blogs, log, middlewares.GetAllAndClear())
	}

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Blog:   blogHandler,
		Debug:  debugHandler,
	}
}

// security описывает альтернативные схемы: любая из них удовлетворяет операцию.
func security(mode access.Mode) []map[string][]string {
	var out []map[string][]string
	for _, scheme := range mode.Schemes() {
		out = append(out, map[string][]string{scheme: {}})
	}
	return out
}
