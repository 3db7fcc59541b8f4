package dto

type ReserveRequest struct {
	UserID        string `json:"user_id"         binding:"required"`
	PropertyID    string `json:"property_id"     binding:"required"`
	Date          string `json:"booking_date"    binding:"required"`
	Shift         string `json:"shift"           binding:"required"`
	BuyerName     string `json:"buyer_name"      binding:"required"`
	BuyerIDNumber string `json:"buyer_id_number" binding:"required"`
}

type AvailabilityQuery struct {
	PropertyID string `form:"property_id" binding:"required"`
	Date       string `form:"date"        binding:"required"`
	Shift      string `form:"shift"       binding:"required"`
}

// ScreenshotRequest is the JSON form of a screenshot submission; raw images
// come as multipart field "screenshot" instead.
type ScreenshotRequest struct {
	URL string `json:"screenshot_url" binding:"required,url"`
}

type ManualPaymentRequest struct {
	SenderName    string `json:"sender_name"    binding:"required"`
	Amount        string `json:"amount"         binding:"required"`
	TransactionID string `json:"transaction_id"`
	SenderPhone   string `json:"sender_phone"`
}

type VerifyRequest struct {
	VerifiedBy string `json:"verified_by" binding:"required"`
	Notes      string `json:"notes"`
}

type RejectRequest struct {
	Reason     string `json:"reason"      binding:"required"`
	RejectedBy string `json:"rejected_by" binding:"required"`
}
