package models

// PaymentMethod is how an invoice gets settled.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "CASH"
	PaymentCard      PaymentMethod = "CARD"
	PaymentInsurance PaymentMethod = "INSURANCE"
	PaymentOnline    PaymentMethod = "ONLINE"
)

// Invoice mirrors the backend's invoice record for a patient.
type Invoice struct {
	ID          int64   `json:"id"`
	PatientID   int64   `json:"patientId"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	IssuedAt    string  `json:"issuedAt,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
}

// ProcessPaymentForm is the payment submission assembled by the payment view.
type ProcessPaymentForm struct {
	PatientID  int64          `json:"patientId" validate:"required,gt=0"`
	InvoiceIDs []int64        `json:"invoiceIds" validate:"required,min=1"`
	Method     PaymentMethod  `json:"method" validate:"required,oneof=CASH CARD INSURANCE ONLINE"`
	Amount     float64        `json:"amount" validate:"required,gt=0"`
	Details    map[string]any `json:"details,omitempty"`
}

// PaymentResult is the backend's response to a processed payment.
type PaymentResult struct {
	PaymentID  int64  `json:"paymentId"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
}

// PaymentReceipt is the full payment record returned by the receipt endpoint.
type PaymentReceipt struct {
	ID         int64         `json:"id"`
	PatientID  int64         `json:"patientId"`
	InvoiceIDs []int64       `json:"invoiceIds,omitempty"`
	Method     PaymentMethod `json:"method"`
	Amount     float64       `json:"amount"`
	Status     string        `json:"status"`
	PaidAt     string        `json:"paidAt,omitempty"`
}
