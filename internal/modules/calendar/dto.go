package calendar

import "time"

type CreateBlockRequest struct {
	StartAt    time.Time `json:"start_at" binding:"required"`
	EndAt      time.Time `json:"end_at" binding:"required"`
	LocationID string    `json:"location_id"`
	Reason     string    `json:"reason"`
}

type AvailabilityResponse struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	LocationID string `json:"location_id"`
	Available  bool   `json:"available"`
}
