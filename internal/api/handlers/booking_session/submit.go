package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/api/middleware"
	"github.com/rakshdevstudio/JCB/internal/infra/sessionstore"
	createBooking "github.com/rakshdevstudio/JCB/internal/usecase/create_booking"
)

const (
	msgIncompleteSelection = "booking selection is incomplete"
	msgSubmitInProgress    = "submission is already in progress"
	msgSlotTaken           = "selected slot is no longer available"
	msgSelectionStale      = "part of the selection is no longer available"
)

// submitLockTTL ограничивает время, на которое отправка держит сессию.
// Достаточно для транзакции создания, мало для зависшего клиента.
const submitLockTTL = 30 * time.Second

// HandleSubmit POST /api/v1/booking-sessions/{sessionId}/submit
// Успешная отправка удаляет сессию; повтор по той же форме вернёт
// уже созданное бронирование благодаря ключу идемпотентности.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !session.Flow.IsComplete() {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Incomplete selection: session_id=%s, step=%s",
			session.ID, session.Flow.Step)
		handlers.RespondBadRequest(w, msgIncompleteSelection)
		return
	}

	acquired, err := h.store.AcquireSubmitLock(r.Context(), session.ID, submitLockTTL)
	if err != nil {
		h.logger.Error("POST /booking-sessions/{id}/submit - Failed to acquire lock: session_id=%s, error=%v",
			session.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	if !acquired {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Concurrent submission: session_id=%s", session.ID)
		handlers.RespondConflict(w, msgSubmitInProgress)
		return
	}
	defer func() {
		if err := h.store.ReleaseSubmitLock(r.Context(), session.ID); err != nil {
			h.logger.Warn("POST /booking-sessions/{id}/submit - Failed to release lock: session_id=%s, error=%v",
				session.ID, err)
		}
	}()

	var userID *string
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session, userID))
	if err != nil {
		h.respondSubmitError(w, r, session, err)
		return
	}

	if err := h.store.Delete(r.Context(), session.ID); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Failed to delete session: session_id=%s, error=%v",
			session.ID, err)
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Booking created: session_id=%s, booking_id=%s, reference=%s, already_existed=%t",
		session.ID, resp.ID, resp.BookingReference, resp.AlreadyExisted)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}

// respondSubmitError разбирает ошибку создания бронирования.
// Для устаревшего выбора сессия откатывается на шаг, который нужно
// переделать, и клиенту сообщается этот шаг.
func (h *Handler) respondSubmitError(w http.ResponseWriter, r *http.Request, session *sessionstore.Session, err error) {
	if step, ok := createBooking.StepToRevisit(err); ok {
		session.Flow.Step = step
		session.UpdatedAt = time.Now().UTC()
		if saveErr := h.store.Save(r.Context(), session); saveErr != nil {
			h.logger.Error("POST /booking-sessions/{id}/submit - Failed to roll session back: session_id=%s, error=%v",
				session.ID, saveErr)
		}

		msg := msgSelectionStale
		if errors.Is(err, createBooking.ErrSlotNotAvailable) {
			msg = msgSlotTaken
		}

		h.logger.Warn("POST /booking-sessions/{id}/submit - Stale selection: session_id=%s, revisit_step=%s, error=%v",
			session.ID, step, err)
		stepName := string(step)
		handlers.RespondJSON(w, http.StatusConflict, SubmitConflictResponse{
			Code:        http.StatusConflict,
			Message:     msg,
			RevisitStep: &stepName,
		})
		return
	}

	switch {
	case errors.Is(err, createBooking.ErrIncompleteSelection):
		h.logger.Warn("POST /booking-sessions/{id}/submit - Incomplete selection: session_id=%s", session.ID)
		handlers.RespondBadRequest(w, msgIncompleteSelection)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid contact details: session_id=%s, error=%v",
			session.ID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("POST /booking-sessions/{id}/submit - Failed to create booking: session_id=%s, error=%v",
			session.ID, err)
		handlers.RespondInternalError(w)
	}
}
