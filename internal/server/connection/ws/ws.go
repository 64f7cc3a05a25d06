// ws - пакет, который связывает входящие дуплексные соединения с проверкой токена.
// Соединение после открытия находится в состоянии рукопожатия: клиент обязан
// предъявить токен за отведенное окно, иначе соединение закрывается.
package ws

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"bets/internal/repositories/identity"
	"bets/internal/server/identity/verifier"
	"bets/internal/server/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// HandshakeTimeout - окно, за которое клиент обязан предъявить токен после открытия соединения.
const HandshakeTimeout = 15 * time.Second

// Коды закрытия соединения при неудачном рукопожатии.
// Разные коды позволяют клиенту отличить "не успел" от "неверный токен".
const (
	CloseHandshakeRejected = 4401 // предъявлен неверный или чужой токен
	CloseHandshakeTimeout  = 4408 // токен не предъявлен за отведенное окно
)

// authMessage - первое сообщение клиента с токеном для рукопожатия.
type authMessage struct {
	Token string `json:"token"`
}

// ackMessage - ответ сервера при успешном рукопожатии.
type ackMessage struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// Binder - принимает дуплексное соединение и проводит его через рукопожатие.
// После успешной проверки токена соединение передается в OnAuthenticated.
type Binder struct {
	verify  *verifier.Verifier
	timeout time.Duration

	upgrader websocket.Upgrader

	// OnAuthenticated вызывается после успешной проверки токена с соединением
	// и учетной записью пользователя. Закрытие соединения остается за ним.
	OnAuthenticated func(conn *websocket.Conn, user *identity.Principal)
}

// NewBinder - возвращает новый Binder с заданным окном рукопожатия.
func NewBinder(v *verifier.Verifier, timeout time.Duration) *Binder {
	return &Binder{
		verify:  v,
		timeout: timeout,
		upgrader: websocket.Upgrader{
			// сайт отдается с других адресов, происхождение не ограничиваю
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Bind - хэндлер, который открывает соединение и ожидает токен в течение отведенного окна.
// Из состояния рукопожатия возможны ровно три перехода: успешная аутентификация,
// отказ по неверному токену и отказ по таймауту.
func (b *Binder) Bind(res http.ResponseWriter, req *http.Request) {
	conn, err := b.upgrader.Upgrade(res, req, nil)
	if err != nil {
		// ответ клиенту уже записан методом Upgrade
		logger.ServerLog.Error("failed to upgrade connection", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		return
	}

	// Окно рукопожатия реализовано через дедлайн чтения: если клиент не пришлет
	// токен вовремя, чтение завершится с ошибкой таймаута. Успешное чтение
	// до истечения окна автоматически отменяет таймер.
	if err := conn.SetReadDeadline(time.Now().Add(b.timeout)); err != nil {
		logger.ServerLog.Error("failed to set handshake deadline", zap.String("error", err.Error()))
		conn.Close()
		return
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			// токен не предъявлен за отведенное окно
			logger.ServerLog.Info("handshake timed out", zap.String("address", req.URL.String()))
			b.terminate(conn, CloseHandshakeTimeout, "handshake timed out")
			return
		}
		// клиент закрыл соединение до завершения рукопожатия - просто освобождаю ресурсы
		logger.ServerLog.Info("connection closed before handshake", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		conn.Close()
		return
	}

	var auth authMessage
	if err := json.Unmarshal(msg, &auth); err != nil || auth.Token == "" {
		logger.ServerLog.Error("handshake message without token", zap.String("address", req.URL.String()))
		b.terminate(conn, CloseHandshakeRejected, "handshake rejected")
		return
	}

	// клиент может предъявить токен в том же виде, в котором получил его при входе
	tokenStr := strings.TrimPrefix(auth.Token, "Bearer ")

	user, err := b.verify.Verify(req.Context(), tokenStr)
	if err != nil {
		// детали клиенту не раскрываю, отказ хранилища и неверный токен
		// различимы только в логах
		logger.ServerLog.Error("handshake token verification failed", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		b.terminate(conn, CloseHandshakeRejected, "handshake rejected")
		return
	}

	// соединение аутентифицировано - снимаю дедлайн рукопожатия
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		logger.ServerLog.Error("failed to clear handshake deadline", zap.String("error", err.Error()))
		conn.Close()
		return
	}

	// сообщаю клиенту об успешном рукопожатии
	ack := ackMessage{Type: "authenticated", Email: user.Email}
	if err := conn.WriteJSON(ack); err != nil {
		logger.ServerLog.Error("failed to send handshake ack", zap.String("error", err.Error()))
		conn.Close()
		return
	}

	logger.ServerLog.Info("connection authenticated", zap.String("userID", user.ID), zap.String("email", user.Email))

	if b.OnAuthenticated != nil {
		b.OnAuthenticated(conn, user)
		return
	}
	conn.Close()
}

// BindHandler - обертка над методом Bind.
func (b *Binder) BindHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		b.Bind(res, req)
	}
}

// terminate - закрывает соединение с заданным кодом и причиной.
func (b *Binder) terminate(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(time.Second)
	// отправляю управляющее сообщение с кодом закрытия, ошибку записи игнорирую -
	// соединение в любом случае будет закрыто
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
	conn.Close()
}
