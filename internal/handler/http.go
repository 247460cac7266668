package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateFromCart(ctx context.Context, actor entities.Actor, userNotes string) (entities.OrderView, error)
	GetOrder(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (entities.OrderView, error)
	ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) (entities.Page[entities.OrderView], error)

	Approve(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error)
	Reject(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error)
	Confirm(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error)
	Cancel(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error)
	MarkReady(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error)
	Complete(ctx context.Context, actor entities.Actor, orderID uuid.UUID, note string) (entities.OrderView, error)
	Modify(ctx context.Context, actor entities.Actor, orderID uuid.UUID, changes []entities.QuantityChange, reason string) (entities.OrderView, error)
	AcceptModifications(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (entities.OrderView, error)
	RejectModifications(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (entities.OrderView, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.Actor)

		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Post("/approve", h.Approve)
			r.Post("/reject", h.Reject)
			r.Post("/confirm", h.Confirm)
			r.Post("/cancel", h.Cancel)
			r.Post("/ready", h.MarkReady)
			r.Post("/complete", h.Complete)
			r.Post("/modify", h.Modify)
			r.Post("/modifications/accept", h.AcceptModifications)
			r.Post("/modifications/reject", h.RejectModifications)
		})
	})
}

// CreateOrder оформляет заказ из корзины покупателя.
// @Summary      Оформить заказ из корзины
// @Description  Фиксирует цены и скидки корзины, создает заказ в статусе pending_approval и очищает корзину
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true  "Идентификатор пользователя"
// @Param        request    body      CreateOrderRequest  false "Комментарий покупателя"
// @Success      201  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := h.svc.CreateFromCart(r.Context(), actor, req.UserNotes)
	h.respond(w, r, "create", view, err, http.StatusCreated)
}

// ListOrders возвращает страницу заказов.
// @Summary      Список заказов
// @Description  Покупатель видит только свои заказы, администратор может запросить заказы всех покупателей
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  string  true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string  false  "Роль пользователя" Enums(buyer, admin)
// @Param        status     query  string  false  "Статус заказа"
// @Param        from       query  string  false  "Создан не раньше (RFC3339)"
// @Param        to         query  string  false  "Создан не позже (RFC3339)"
// @Param        search     query  string  false  "Поиск по номеру заказа, коду и названию товара"
// @Param        buyer_id   query  string  false  "Покупатель (только для администратора)"
// @Param        all        query  bool    false  "Заказы всех покупателей (только для администратора)"
// @Param        page       query  int     false  "Номер страницы"
// @Param        page_size  query  int     false  "Размер страницы"
// @Param        sort       query  string  false  "Поле сортировки" Enums(created_at, total, number, status)
// @Param        order      query  string  false  "Направление сортировки" Enums(asc, desc)
// @Success      200  {object}  OrdersPage
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ListOrdersQuery{
		Status:   q.Get("status"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Search:   q.Get("search"),
		BuyerID:  q.Get("buyer_id"),
		All:      q.Get("all"),
		Page:     q.Get("page"),
		PageSize: q.Get("page_size"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
	}
	if err := h.validate.Struct(query); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	page, err := h.svc.ListOrders(r.Context(), actor, query.Filter())
	if err != nil {
		h.writeServiceError(w, r, "list", err)
		return
	}

	orderOperationsTotal.WithLabelValues("list", "ok").Inc()
	utils.WriteJSON(w, OrdersPage{
		Items:    page.Items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        order_id   path    string  true  "Идентификатор заказа"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Заказ другого покупателя"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := h.svc.GetOrder(r.Context(), actor, orderID)
	h.respond(w, r, "get", view, err, http.StatusOK)
}

// Approve подтверждает заказ администратором.
// @Summary      Одобрить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string       true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string       true   "Роль пользователя" Enums(admin)
// @Param        order_id     path    string       true   "Идентификатор заказа"
// @Param        request      body    NoteRequest  false  "Комментарий администратора"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/approve [post]
func (h *HTTPHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, "approve", h.svc.Approve)
}

// Reject отклоняет заказ.
// @Summary      Отклонить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string         true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string         true  "Роль пользователя" Enums(admin)
// @Param        order_id     path    string         true  "Идентификатор заказа"
// @Param        request      body    ReasonRequest  true  "Причина отказа"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/reject [post]
func (h *HTTPHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.withReason(w, r, "reject", h.svc.Reject)
}

// Confirm подтверждает одобренный заказ покупателем.
// @Summary      Подтвердить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string       true   "Идентификатор пользователя"
// @Param        order_id   path    string       true   "Идентификатор заказа"
// @Param        request    body    NoteRequest  false  "Комментарий покупателя"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/confirm [post]
func (h *HTTPHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, "confirm", h.svc.Confirm)
}

// Cancel отменяет заказ покупателем.
// @Summary      Отменить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string         true  "Идентификатор пользователя"
// @Param        order_id   path    string         true  "Идентификатор заказа"
// @Param        request    body    ReasonRequest  true  "Причина отмены"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.withReason(w, r, "cancel", h.svc.Cancel)
}

// MarkReady отмечает заказ готовым к выдаче.
// @Summary      Заказ готов к выдаче
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string       true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string       true   "Роль пользователя" Enums(admin)
// @Param        order_id     path    string       true   "Идентификатор заказа"
// @Param        request      body    NoteRequest  false  "Комментарий администратора"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/ready [post]
func (h *HTTPHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, "mark_ready", h.svc.MarkReady)
}

// Complete завершает выдачу заказа.
// @Summary      Завершить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string       true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string       true   "Роль пользователя" Enums(admin)
// @Param        order_id     path    string       true   "Идентификатор заказа"
// @Param        request      body    NoteRequest  false  "Комментарий администратора"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/complete [post]
func (h *HTTPHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, "complete", h.svc.Complete)
}

// Modify меняет количество товаров до одобрения заказа.
// @Summary      Изменить заказ
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string         true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string         true  "Роль пользователя" Enums(admin)
// @Param        order_id     path    string         true  "Идентификатор заказа"
// @Param        request      body    ModifyRequest  true  "Новые количества и причина"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/modify [post]
func (h *HTTPHandler) Modify(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req ModifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := h.svc.Modify(r.Context(), actor, orderID, req.Changes(), req.Reason)
	h.respond(w, r, "modify", view, err, http.StatusOK)
}

// AcceptModifications принимает изменения заказа покупателем.
// @Summary      Принять изменения заказа
// @Tags         workflow
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        order_id   path    string  true  "Идентификатор заказа"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/modifications/accept [post]
func (h *HTTPHandler) AcceptModifications(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := h.svc.AcceptModifications(r.Context(), actor, orderID)
	h.respond(w, r, "accept_modifications", view, err, http.StatusOK)
}

// RejectModifications отклоняет изменения и отменяет заказ.
// @Summary      Отклонить изменения заказа
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string         true  "Идентификатор пользователя"
// @Param        order_id   path    string         true  "Идентификатор заказа"
// @Param        request    body    ReasonRequest  true  "Причина"
// @Success      200  {object}  entities.OrderView
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменен параллельно"
// @Router       /orders/{order_id}/modifications/reject [post]
func (h *HTTPHandler) RejectModifications(w http.ResponseWriter, r *http.Request) {
	h.withReason(w, r, "reject_modifications", h.svc.RejectModifications)
}

type textTransition func(ctx context.Context, actor entities.Actor, orderID uuid.UUID, text string) (entities.OrderView, error)

func (h *HTTPHandler) withNote(w http.ResponseWriter, r *http.Request, op string, fn textTransition) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req NoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := fn(r.Context(), actor, orderID, req.Note)
	h.respond(w, r, op, view, err, http.StatusOK)
}

func (h *HTTPHandler) withReason(w http.ResponseWriter, r *http.Request, op string, fn textTransition) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req ReasonRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	view, err := fn(r.Context(), actor, orderID, req.Reason)
	h.respond(w, r, op, view, err, http.StatusOK)
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "order_id")
	if err := h.validate.Var(raw, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, op string, view entities.OrderView, err error, code int) {
	if err != nil {
		h.writeServiceError(w, r, op, err)
		return
	}
	orderOperationsTotal.WithLabelValues(op, "ok").Inc()
	utils.WriteJSON(w, view, code)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		orderOperationsTotal.WithLabelValues(op, "invalid").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		orderOperationsTotal.WithLabelValues(op, "forbidden").Inc()
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		orderOperationsTotal.WithLabelValues(op, "not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		orderOperationsTotal.WithLabelValues(op, "conflict").Inc()
		utils.WriteError(w, "order was changed concurrently, reload and retry", http.StatusConflict)
	default:
		orderOperationsTotal.WithLabelValues(op, "error").Inc()
		h.logger.ErrorContext(r.Context(), "order operation failed",
			slog.Any("error", err),
			slog.String("operation", op),
			slog.String("order_id", chi.URLParam(r, "order_id")),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
