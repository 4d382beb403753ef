package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"RepairService/internal/entities"
	"RepairService/internal/service"
	"RepairService/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
}

// Register создаёт учётную запись мастерской.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Param        input  body  RegisterRequest  true  "Данные пользователя"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Пользователь уже существует"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if errors.Is(err, entities.ErrUserAlreadyExists) {
		utils.WriteError(w, "user already exists", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// Login выдаёт JWT по почте и паролю.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Param        input  body  LoginRequest  true  "Учётные данные"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверные учётные данные"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, user, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, entities.ErrInvalidCredentials) {
		utils.WriteError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to login user", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, LoginResponse{Token: token, User: UserEntityToJSON(user)}, http.StatusOK)
}
