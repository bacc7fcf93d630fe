// Package booking_session обслуживает пошаговый мастер записи.
// Состояние каждого мастера живёт в sessionstore и двигается вперёд
// только выборами пользователя; некорректные переходы отклоняются с 409.
package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/bookingflow"
	"github.com/rakshdevstudio/JCB/internal/infra/sessionstore"
	getApplicableOffers "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "booking session not found or expired"
	msgInvalidTransition  = "step is not allowed from the current state"
	msgUnknownStep        = "unknown wizard step"
)

type Handler struct {
	store   sessionstore.Store
	catalog Catalog
	useCase CreateBookingUseCase
	offers  ApplicableOffersUseCase
	logger  Logger
}

func NewHandler(
	store sessionstore.Store,
	catalog Catalog,
	useCase CreateBookingUseCase,
	offers ApplicableOffersUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		store:   store,
		catalog: catalog,
		useCase: useCase,
		offers:  offers,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/booking-sessions
// Ключ идемпотентности выдаётся здесь и живёт всю жизнь сессии: сколько бы
// раз пользователь ни жал «отправить», бронирование создастся одно.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	session := &sessionstore.Session{
		ID:             uuid.NewString(),
		Flow:           *bookingflow.New(),
		IdempotencyKey: uuid.NewString(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := h.store.Save(r.Context(), session); err != nil {
		h.logger.Error("POST /booking-sessions - Failed to save session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking-sessions - Session created: session_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSession(session))
}

// HandleGet GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	resp := FromSession(session)

	// На подтверждении показываем цену с лучшей применимой акцией
	if session.Flow.Step == bookingflow.StepConfirmation && session.Flow.IsComplete() {
		resp.PricePreview = h.buildPricePreview(r, session)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// buildPricePreview считает предпросмотр цены для собранного выбора.
// Лучшая акция - первая в витринном порядке. Ошибки подбора не ломают
// просмотр сессии: предпросмотр просто опускается.
func (h *Handler) buildPricePreview(r *http.Request, session *sessionstore.Session) *PricePreview {
	sel := session.Flow.Selection
	if sel.City == nil || sel.Salon == nil || sel.Service == nil {
		return nil
	}

	preview := &PricePreview{
		BasePrice:  sel.Service.BasePrice,
		FinalPrice: sel.Service.BasePrice,
	}

	resp, err := h.offers.Execute(r.Context(), &getApplicableOffers.Request{
		CityID:    sel.City.ID,
		SalonID:   sel.Salon.ID,
		ServiceID: sel.Service.ID,
		Price:     sel.Service.BasePrice,
	})
	if err != nil {
		h.logger.Warn("booking-sessions - Failed to build price preview: session_id=%s, error=%v",
			session.ID, err)
		return preview
	}

	if len(resp.Offers) > 0 {
		best := resp.Offers[0]
		preview.FinalPrice = best.DiscountedPrice
		preview.Savings = best.Savings
		preview.OfferID = &best.Offer.ID
		preview.OfferTitle = &best.Offer.Title
	}

	return preview
}

// HandleBack POST /api/v1/booking-sessions/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if !session.Flow.GoBack() {
		h.logger.Warn("POST /booking-sessions/{id}/back - Cannot go back: session_id=%s, step=%s",
			session.ID, session.Flow.Step)
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "back")
}

// HandleGoTo POST /api/v1/booking-sessions/{sessionId}/goto
func (h *Handler) HandleGoTo(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req GoToStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/goto - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	step, known := parseStep(req.Step)
	if !known {
		h.logger.Warn("POST /booking-sessions/{id}/goto - Unknown step: session_id=%s, step=%s",
			session.ID, req.Step)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	if !session.Flow.GoToStep(step) {
		h.logger.Warn("POST /booking-sessions/{id}/goto - Transition rejected: session_id=%s, from=%s, to=%s",
			session.ID, session.Flow.Step, step)
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "goto")
}

// HandleReset POST /api/v1/booking-sessions/{sessionId}/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	session.Flow.Reset()
	h.saveAndRespond(w, r, session, "reset")
}

// loadSession достаёт сессию по ID из URL; при отсутствии отвечает 404
func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*sessionstore.Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			h.logger.Warn("booking-sessions - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		} else {
			h.logger.Error("booking-sessions - Failed to load session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return nil, false
	}

	return session, true
}

// saveAndRespond сохраняет изменённую сессию и возвращает её состояние
func (h *Handler) saveAndRespond(w http.ResponseWriter, r *http.Request, session *sessionstore.Session, action string) {
	session.UpdatedAt = time.Now().UTC()

	if err := h.store.Save(r.Context(), session); err != nil {
		h.logger.Error("booking-sessions - Failed to save session after %s: session_id=%s, error=%v",
			action, session.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("booking-sessions - Session updated: session_id=%s, action=%s, step=%s",
		session.ID, action, session.Flow.Step)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
