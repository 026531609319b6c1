package create_booking

import (
	"errors"
	"net/http"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	"github.com/dungeon-app/booking-service/internal/api/middleware"
	createBooking "github.com/dungeon-app/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateTime    = "data ou horário inválido, use YYYY-MM-DD e HH:MM"
	msgMissingUserID      = "usuário não autenticado"
	msgNotEligible        = "apenas membros com situação Ativo podem reservar salas"
	msgParticipantInvalid = "todos os participantes devem ser membros ativos"
	msgRoomNotFound       = "sala não encontrada"
	msgRoomNotBookable    = "sala indisponível para reservas"
	msgInvalidSlot        = "horário não corresponde a um turno de reserva"
	msgInvalidDate        = "data de reserva inválida"
	msgSlotTaken          = "o turno já está reservado nesta sala"
	msgInvalidInput       = "dados da reserva inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrUserNotEligible):
			h.logger.Warn("POST /bookings - User not eligible: user_id=%d", userID)
			handlers.RespondError(w, http.StatusForbidden, msgNotEligible)

		case errors.Is(err, createBooking.ErrParticipantNotEligible):
			h.logger.Warn("POST /bookings - Ineligible participant: user_id=%d", userID)
			handlers.RespondError(w, http.StatusForbidden, msgParticipantInvalid)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomNotBookable):
			h.logger.Warn("POST /bookings - Room not bookable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user_id=%d, time=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
