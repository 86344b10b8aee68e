package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"articlehub/internal/config"
	"articlehub/internal/logger"
	"articlehub/internal/models"
	"articlehub/internal/services"
	"articlehub/internal/utils"
	helpers "articlehub/internal/utils/helpres"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	Role         string `json:"role"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {string} string "Пользователь успешно зарегистрирован"
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.Log.Info("Регистрация пользователя", zap.String("username", req.Username), zap.String("email", req.Email))

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	err := h.authService.RegisterUser(context.Background(), user, req.Password)
	if err != nil {
		logger.Log.Error("Ошибка регистрации пользователя", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, "Пользователь успешно зарегистрирован")
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный логин или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.Log.Info("Попытка входа", zap.String("username", req.Username))

	cfg, _ := config.LoadConfig()
	accessTTL, _ := time.ParseDuration(cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(cfg.RefreshTokenTTL)

	access, refresh, user, err := h.authService.LoginUser(
		context.Background(),
		req.Username,
		req.Password,
		cfg.JWTSecret,
		accessTTL,
		refreshTTL,
	)
	if err != nil {
		logger.Log.Warn("Ошибка входа пользователя", zap.String("username", req.Username), zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	logger.Log.Info("Вход выполнен", zap.String("username", req.Username), zap.String("role", user.Role))
	resp := loginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Username:     user.Username,
		Role:         user.Role,
	}

	helpers.JSON(w, http.StatusOK, resp)
}

// Refresh godoc
// @Summary Обновление access-токена
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {string} string "Недействительный refresh токен"
// @Router /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenString, claims, ok := h.refreshClaims(w, r)
	if !ok {
		return
	}

	userID := int(claims["user_id"].(float64))

	valid, err := h.authService.ValidateRefreshToken(r.Context(), userID, tokenString)
	if err != nil || !valid {
		logger.Log.Warn("Refresh-токен не найден в хранилище", zap.Int("user_id", userID))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh токен")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		logger.Log.Warn("Пользователь refresh-токена не найден", zap.Int("user_id", userID))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh токен")
		return
	}

	cfg, _ := config.LoadConfig()
	accessTTL, _ := time.ParseDuration(cfg.AccessTokenTTL)

	access, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.Role, accessTTL, "access")
	if err != nil {
		logger.Log.Error("Ошибка генерации access-токена", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка генерации токена")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"access_token": access})
}

// Logout godoc
// @Summary Выход (отзыв refresh-токена)
// @Tags auth
// @Produce json
// @Success 200 {string} string "Выход выполнен"
// @Failure 401 {string} string "Недействительный refresh токен"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenString, claims, ok := h.refreshClaims(w, r)
	if !ok {
		return
	}

	userID := int(claims["user_id"].(float64))

	if err := h.authService.Logout(r.Context(), userID, tokenString); err != nil {
		logger.Log.Error("Ошибка удаления refresh-токена", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка выхода")
		return
	}

	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// refreshClaims разбирает refresh-токен из Authorization и проверяет подпись и тип.
func (h *AuthHandler) refreshClaims(w http.ResponseWriter, r *http.Request) (string, jwt.MapClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		logger.Log.Warn("Отсутствует refresh token")
		helpers.Error(w, http.StatusUnauthorized, "Отсутствует refresh token")
		return "", nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	cfg, _ := config.LoadConfig()
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Log.Warn("Недействительный refresh токен", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh токен")
		return "", nil, false
	}

	if tt, _ := claims["token_type"].(string); tt != "refresh" {
		logger.Log.Warn("Ожидался refresh-токен", zap.String("token_type", tt))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh токен")
		return "", nil, false
	}
	if _, ok := claims["user_id"].(float64); !ok {
		logger.Log.Warn("Недопустимый payload refresh-токена", zap.Any("claims", claims))
		helpers.Error(w, http.StatusUnauthorized, "Недействительный refresh токен")
		return "", nil, false
	}

	return tokenString, claims, true
}
