package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the instrument a ride was settled with
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
)

// Valid reports whether m is an accepted payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodWallet:
		return true
	}
	return false
}

// PaymentStatusCompleted is the only status a recorded payment carries
const PaymentStatusCompleted = "COMPLETED"

// Payment represents a payment record
type Payment struct {
	ID             uuid.UUID     `json:"paymentId" db:"id"`
	RideID         uuid.UUID     `json:"rideId" db:"ride_id"`
	Amount         float64       `json:"amount" db:"amount"`
	Method         PaymentMethod `json:"paymentMethod" db:"method"`
	Status         string        `json:"status" db:"status"`
	TransactionRef *string       `json:"transactionRef,omitempty" db:"transaction_ref"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
}

// PaymentRequest represents a customer's settlement of a completed ride
type PaymentRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,payment_method"`
	PaymentID     string        `json:"paymentId" validate:"max=100"`
}

// Wallet transaction types
const (
	WalletCredit = "CREDIT"
	WalletDebit  = "DEBIT"
)

// WalletEntry is a movement on a driver's wallet
type WalletEntry struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	DriverID        uuid.UUID  `json:"driverId" db:"driver_id"`
	RideID          *uuid.UUID `json:"rideId,omitempty" db:"ride_id"`
	Amount          float64    `json:"amount" db:"amount"`
	TransactionType string     `json:"transactionType" db:"transaction_type"`
	Description     string     `json:"description" db:"description"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// WalletSummary lists wallet movements with the resulting balance
type WalletSummary struct {
	TotalBalance float64        `json:"totalBalance"`
	Transactions []*WalletEntry `json:"transactions"`
}
