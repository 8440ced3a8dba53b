package result

type CodeType int

const (
	CodeOK CodeType = 0

	// General codes, 1 ~ 99
	CodeGenericError  CodeType = 1
	CodeInternalError CodeType = 2
	CodeEncodingError CodeType = 3
	CodeUnauthorized  CodeType = 4
	CodePaused        CodeType = 5

	// Project registry, 100 ~ 199
	CodeInvalidSupply      CodeType = 101
	CodeInvalidPrice       CodeType = 102
	CodeInvalidMinPurchase CodeType = 103
	CodeInvalidCreator     CodeType = 104
	CodeProjectNotFound    CodeType = 105

	// Sale & escrow, 200 ~ 299
	CodeProjectNotActive     CodeType = 201
	CodeBelowMinimumPurchase CodeType = 202
	CodeInsufficientSupply   CodeType = 203
	CodeInsufficientPayment  CodeType = 204
	CodeRefundFailed         CodeType = 205
	CodeInvalidAmount        CodeType = 206
	CodeInsufficientBalance  CodeType = 207
	CodeWithdrawFailed       CodeType = 208

	// Reward accounting, 300 ~ 399
	CodeNoFundsDeposited    CodeType = 301
	CodeNoTokensMinted      CodeType = 302
	CodeNothingToClaim      CodeType = 303
	CodeClaimTransferFailed CodeType = 304

	// Share ledger, 400 ~ 499
	CodeInvalidTransfer CodeType = 401
)

var (
	ErrInternalError = NewError(CodeInternalError, "Internal error")
	ErrEncodingError = NewError(CodeEncodingError, "Encoding error")
	ErrUnauthorized  = NewError(CodeUnauthorized, "Unauthorized")
	ErrPaused        = NewError(CodePaused, "Ledger is paused")

	ErrInvalidSupply      = NewError(CodeInvalidSupply, "Total supply must be positive")
	ErrInvalidPrice       = NewError(CodeInvalidPrice, "Share price must be positive")
	ErrInvalidMinPurchase = NewError(CodeInvalidMinPurchase, "Minimum purchase must be between 1 and the total supply")
	ErrInvalidCreator     = NewError(CodeInvalidCreator, "Creator address cannot be empty")
	ErrProjectNotFound    = NewError(CodeProjectNotFound, "Project not found")

	ErrProjectNotActive    = NewError(CodeProjectNotActive, "Project is not active")
	ErrInsufficientPayment = NewError(CodeInsufficientPayment, "Payment does not cover the purchase cost")
	ErrRefundFailed        = NewError(CodeRefundFailed, "Refund of excess payment failed")
	ErrInvalidAmount       = NewError(CodeInvalidAmount, "Amount must be positive")
	ErrWithdrawFailed      = NewError(CodeWithdrawFailed, "Sales withdrawal payout failed")

	ErrNoFundsDeposited    = NewError(CodeNoFundsDeposited, "Deposit amount must be positive")
	ErrNoTokensMinted      = NewError(CodeNoTokensMinted, "No shares minted, deposit would be unattributable")
	ErrNothingToClaim      = NewError(CodeNothingToClaim, "Nothing to claim")
	ErrClaimTransferFailed = NewError(CodeClaimTransferFailed, "Claim payout failed")
)
