package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bets/internal/common/identity/tools/checker"
	"bets/internal/common/identity/tools/hasher"
	"bets/internal/common/identity/tools/id"
	"bets/internal/common/identity/tools/token"
	"bets/internal/repositories/identity"
	"bets/internal/server/identity/auth"
	"bets/internal/server/identity/local"
	"bets/internal/server/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// loginResponse - тело ответа при успешном входе или регистрации.
// Токен отдается с префиксом схемы, в этом-же виде клиент предъявляет
// его в заголовке Authorization.
type loginResponse struct {
	User  identity.RedactedPrincipal `json:"user"`
	Token string                     `json:"token"`
}

// Login - хэндлер для входа пользователя по паре email+пароль.
// При успешном входе в тело ответа устанавливается учетная запись без
// секретного материала и токен пользователя.
// Любая ошибка учетных данных отдается одним обобщенным сообщением,
// чтобы не раскрывать, существует ли пользователь с таким email.
func Login(res http.ResponseWriter, req *http.Request, strat *local.Strategy, tokens *token.JWT) {
	defer req.Body.Close()

	var loginData identity.LoginData
	if err := json.NewDecoder(req.Body).Decode(&loginData); err != nil {
		logger.ServerLog.Error("failed to parse login data to structure", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "failed to parse login data", http.StatusBadRequest)
		return
	}

	// Проверяю корректность email и пароля
	if !checker.CheckEmail(loginData.Email) || !checker.CheckPassword(loginData.Password) {
		logger.ServerLog.Error("login data is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "login failed", http.StatusUnauthorized)
		return
	}

	user, err := strat.Authenticate(req.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if local.IsCredentialError(err) {
			// конкретная причина отказа остается только в логах
			logger.ServerLog.Error("authentication failed", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "login failed", http.StatusUnauthorized)
			return
		}
		// внутренняя ошибка сервера
		logger.ServerLog.Error("authenticate user error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "internal server error", http.StatusInternalServerError)
		return
	}

	// При успешном входе создаю токен и отдаю его вместе с учетной записью
	writePrincipalWithToken(res, req, user, tokens)
}

// LoginHandler - обертка над функцией Login.
func LoginHandler(strat *local.Strategy, tokens *token.JWT) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Login(res, req, strat, tokens)
	}
	return fn
}

// Register - хэндлер для создания нового пользователя в системе.
// Для пароля генерируется свежая соль, в хранилище попадает только хэш.
func Register(res http.ResponseWriter, req *http.Request, users identity.UserKeeper, tokens *token.JWT) {
	defer req.Body.Close()

	var regData identity.RegisterData
	if err := json.NewDecoder(req.Body).Decode(&regData); err != nil {
		logger.ServerLog.Error("failed to parse register data to structure", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "failed to parse register data", http.StatusBadRequest)
		return
	}

	// Проверяю корректность email
	if !checker.CheckEmail(regData.Email) {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}
	// Проверяю корректность пароля
	if !checker.CheckPassword(regData.Password) {
		logger.ServerLog.Error("password is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "password is not valid", http.StatusBadRequest)
		return
	}

	// вычисляю идентификатор пользователя
	userID, err := id.GenerateId()
	if err != nil {
		logger.ServerLog.Error("failed to generate id", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "internal server error", http.StatusInternalServerError)
		return
	}

	// генерирую свежую соль и хэш пароля
	salt, err := hasher.GenerateSalt()
	if err != nil {
		logger.ServerLog.Error("failed to generate salt", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "internal server error", http.StatusInternalServerError)
		return
	}

	role := regData.Role
	if role == "" {
		role = "user"
	}

	user := identity.Principal{
		ID:           userID,
		Email:        regData.Email,
		FirstName:    regData.FirstName,
		LastName:     regData.LastName,
		FathersName:  regData.FathersName,
		Phone:        regData.Phone,
		Role:         role,
		PasswordHash: hasher.DeriveHash(regData.Password, salt),
		Salt:         salt,
	}

	// Регистрирую пользователя в хранилище
	err = users.Register(req.Context(), user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// пользователь с данным email уже зарегистрирован в системе
			logger.ServerLog.Error(fmt.Sprintf("email %s already exists", regData.Email), zap.String("address", req.URL.String()))
			http.Error(res, fmt.Sprintf("email %s already exists", regData.Email), http.StatusConflict)
		} else {
			logger.ServerLog.Error("register user error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "register user error", http.StatusInternalServerError)
		}
		return
	}

	// При успешной регистрации создаю токен и отдаю его вместе с учетной записью
	writePrincipalWithToken(res, req, &user, tokens)
}

// RegisterHandler - обертка над функцией Register.
func RegisterHandler(users identity.UserKeeper, tokens *token.JWT) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Register(res, req, users, tokens)
	}
	return fn
}

// GetUser - хэндлер для получения собственной учетной записи аутентифицированным пользователем.
// Учетная запись уже разрешена из токена middleware-ой аутентификации.
func GetUser(res http.ResponseWriter, req *http.Request) {
	user, ok := req.Context().Value(auth.PrincipalKey).(*identity.Principal)
	if !ok {
		logger.ServerLog.Error("principal not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "principal not found in context", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(user.Redact()); err != nil {
		logger.ServerLog.Error("failed to encode response", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
	}
}

// GetUserHandler - обертка над функцией GetUser.
func GetUserHandler() http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GetUser(res, req)
	}
	return fn
}

// UpdateUser - хэндлер для изменения учетной записи аутентифицированным пользователем.
// Если в запросе передан новый пароль, то он устанавливается после проверки текущего
// пароля, при этом генерируется свежая соль. Без пароля запрос меняет только email.
func UpdateUser(res http.ResponseWriter, req *http.Request, users identity.UserKeeper) {
	defer req.Body.Close()

	user, ok := req.Context().Value(auth.PrincipalKey).(*identity.Principal)
	if !ok {
		logger.ServerLog.Error("principal not found in context", zap.String("address", req.URL.String()))
		http.Error(res, "principal not found in context", http.StatusInternalServerError)
		return
	}

	var updData identity.UpdateData
	if err := json.NewDecoder(req.Body).Decode(&updData); err != nil {
		logger.ServerLog.Error("failed to parse update data to structure", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "failed to parse update data", http.StatusBadRequest)
		return
	}

	if updData.Password != "" {
		// смена пароля подтверждается текущим паролем
		if !hasher.VerifyPassword(updData.OldPassword, user.Salt, user.PasswordHash) {
			logger.ServerLog.Error("old password is wrong", zap.String("address", req.URL.String()))
			http.Error(res, "old password is wrong", http.StatusBadRequest)
			return
		}

		// генерирую свежую соль для нового пароля
		salt, err := hasher.GenerateSalt()
		if err != nil {
			logger.ServerLog.Error("failed to generate salt", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "internal server error", http.StatusInternalServerError)
			return
		}

		err = users.UpdatePassword(req.Context(), user.ID, hasher.DeriveHash(updData.Password, salt), salt)
		if err != nil {
			logger.ServerLog.Error("update password error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "update password error", http.StatusInternalServerError)
			return
		}

		res.WriteHeader(http.StatusOK)
		return
	}

	// без пароля запрос меняет только email
	if !checker.CheckEmail(updData.Email) {
		logger.ServerLog.Error("email is not valid", zap.String("address", req.URL.String()))
		http.Error(res, "email is not valid", http.StatusBadRequest)
		return
	}

	err := users.UpdateEmail(req.Context(), user.ID, updData.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logger.ServerLog.Error(fmt.Sprintf("email %s already exists", updData.Email), zap.String("address", req.URL.String()))
			http.Error(res, fmt.Sprintf("email %s already exists", updData.Email), http.StatusConflict)
		} else {
			logger.ServerLog.Error("update email error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
			http.Error(res, "update email error", http.StatusInternalServerError)
		}
		return
	}

	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(map[string]string{"newEmail": updData.Email}); err != nil {
		logger.ServerLog.Error("failed to encode response", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
	}
}

// UpdateUserHandler - обертка над функцией UpdateUser.
func UpdateUserHandler(users identity.UserKeeper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		UpdateUser(res, req, users)
	}
	return fn
}

// HandleOtherRequest - хэндлер для некорректных запросов.
func HandleOtherRequest() http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		logger.ServerLog.Info("got request to wrong address", zap.String("address", req.URL.String()))
		http.Error(res, "wrong address", http.StatusNotFound)
	}
	return fn
}

// writePrincipalWithToken - создает токен пользователя и записывает ответ с учетной
// записью без секретного материала и токеном.
func writePrincipalWithToken(res http.ResponseWriter, req *http.Request, user *identity.Principal, tokens *token.JWT) {
	// учетные записи ключуются по email, поэтому он же выступает в роли логина
	tokenStr, err := tokens.BuildJWT(user.ID, user.Email, user.Email)
	if err != nil {
		logger.ServerLog.Error("build JWT error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		http.Error(res, "build JWT error", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	resp := loginResponse{
		User:  user.Redact(),
		Token: "Bearer " + tokenStr,
	}
	if err := json.NewEncoder(res).Encode(resp); err != nil {
		logger.ServerLog.Error("failed to encode response", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
	}
}
