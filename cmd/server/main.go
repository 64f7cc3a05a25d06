package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bets/internal/common/identity/tools/hasher"
	"bets/internal/common/identity/tools/id"
	"bets/internal/common/identity/tools/token"
	"bets/internal/repositories/identity"
	"bets/internal/server/connection/ws"
	"bets/internal/server/handlers"
	"bets/internal/server/identity/auth"
	"bets/internal/server/identity/local"
	"bets/internal/server/identity/verifier"
	"bets/internal/server/logger"
	"bets/internal/server/storage"
	"bets/internal/server/storage/pg"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализаации graceful shutdown

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	ctx := context.Background()
	// создаем экземпляр хранилища pg
	stor, err := pg.NewStore(ctx, databaseDsn)
	if err != nil {
		log.Fatalf("Failed to create storage: %v\n", err)
	}
	// ------------------------------------------------------------------------------

	run(ctx, stor)
}

// функция run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, stor storage.IUserServerStorage) {
	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	logger.ServerLog.Info("Running bets server", zap.String("address", netAddr))

	// Секретный ключ для подписи токенов передается явно, глобального состояния нет
	tokens := token.New(secretKey)

	// Создаю учетную запись администратора, если она еще не создана
	if err := createAdminUser(ctx, stor); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:    netAddr,
		Handler: Router(stor, tokens),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	// освобождаю соединение с хранилищем
	if err := stor.Close(); err != nil {
		logger.ServerLog.Error("failed to close storage", zap.String("error", err.Error()))
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// createAdminUser - создает учетную запись администратора при старте сервиса.
// Если учетные данные администратора не заданы или пользователь с таким email
// уже зарегистрирован, то создание пропускается.
func createAdminUser(ctx context.Context, stor storage.IUserServerStorage) error {
	if adminEmail == "" || adminPassword == "" {
		logger.ServerLog.Info("admin credentials are not set, skip creating admin user")
		return nil
	}

	_, ok, err := stor.FindByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if ok {
		logger.ServerLog.Info("admin user already exists", zap.String("email", adminEmail))
		return nil
	}

	adminID, err := id.GenerateId()
	if err != nil {
		return err
	}
	salt, err := hasher.GenerateSalt()
	if err != nil {
		return err
	}

	err = stor.Register(ctx, identity.Principal{
		ID:           adminID,
		Email:        adminEmail,
		Role:         "admin",
		PasswordHash: hasher.DeriveHash(adminPassword, salt),
		Salt:         salt,
	})
	if err != nil {
		return err
	}

	logger.ServerLog.Info("admin user is created", zap.String("email", adminEmail))
	return nil
}

// Router - дирижирует обработку http запросов к серверу.
func Router(users identity.UserKeeper, tokens *token.JWT) chi.Router {
	strat := local.NewStrategy(users)
	verif := verifier.New(tokens, users)
	authMiddleware := auth.Middleware(verif)

	r := chi.NewRouter()

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", logger.RequestLogger(handlers.RegisterHandler(users, tokens)))
		r.Post("/login", logger.RequestLogger(handlers.LoginHandler(strat, tokens)))

		r.Get("/", logger.RequestLogger(authMiddleware(handlers.GetUserHandler())))
		r.Put("/", logger.RequestLogger(authMiddleware(handlers.UpdateUserHandler(users))))
	})

	// Маршрут /ws монтируется без обертки логирования: она не реализует
	// http.Hijacker и сломала бы переключение протокола при Upgrade.
	binder := ws.NewBinder(verif, ws.HandshakeTimeout)
	binder.OnAuthenticated = serveSession
	r.Get("/ws", binder.BindHandler())

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}

// serveSession - обслуживает аутентифицированное websocket-соединение.
// Входящие сообщения клиента записываются в лог, сессия живет до закрытия
// соединения клиентом или до ошибки чтения.
func serveSession(conn *websocket.Conn, user *identity.Principal) {
	defer conn.Close()

	logger.ServerLog.Info("client connected", zap.String("userId", user.ID), zap.String("email", user.Email))
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			logger.ServerLog.Info("client disconnected", zap.String("userId", user.ID), zap.String("error", err.Error()))
			return
		}
		logger.ServerLog.Info("client event", zap.String("userId", user.ID), zap.String("message", string(message)))
	}
}
