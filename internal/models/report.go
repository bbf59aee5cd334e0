package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus - статус проверки изображения отчета
type VerificationStatus string

const (
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationUnverified VerificationStatus = "unverified"
)

// Report - пользовательский отчет, привязанный к инциденту
type Report struct {
	ID                 uuid.UUID          `json:"id"`
	DisasterID         uuid.UUID          `json:"disaster_id"`
	UserID             string             `json:"user_id"`
	Content            string             `json:"content"`
	ImageURL           string             `json:"image_url,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
}

// VerificationResult - результат проверки подлинности изображения.
// Кешируется по URL изображения и отдельно не персистится.
type VerificationResult struct {
	Score     int                `json:"score"`
	Reasoning string             `json:"reasoning"`
	Status    VerificationStatus `json:"status"`
}
