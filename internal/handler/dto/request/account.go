package request

type CancelReservationRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}
