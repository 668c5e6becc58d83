package shopv1

// Значения StockChangeResponse.RejectReason.
const (
	RejectReasonInsufficientStock = "INSUFFICIENT_STOCK"
	RejectReasonNotFound          = "NOT_FOUND"
	RejectReasonInvalidArgument   = "INVALID_ARGUMENT"
)
