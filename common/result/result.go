package result

import "fmt"

// Result represents the outcome of a ledger operation
type Result struct {
	Code    CodeType
	Message string
}

// IsOK indicates if the operation succeeded
func (res Result) IsOK() bool {
	return res.Code == CodeOK
}

// IsError indicates if the operation resulted in an error
func (res Result) IsError() bool {
	return res.Code != CodeOK
}

// String returns the string representation of the result
func (res Result) String() string {
	return fmt.Sprintf("Result{code:%v, message:%v}", res.Code, res.Message)
}

// WithErrorCode attaches the error code to the result
func (res Result) WithErrorCode(code CodeType) Result {
	res.Code = code
	return res
}

// -------------- Constructors -------------- //

// OK represents the success result
var OK = Result{Code: CodeOK}

// Error returns a generic error result
func Error(msgFormat string, a ...interface{}) Result {
	return Result{
		Code:    CodeGenericError,
		Message: fmt.Sprintf(msgFormat, a...),
	}
}

// NewError returns an error result with the given code
func NewError(code CodeType, msg string) Result {
	return Result{
		Code:    code,
		Message: msg,
	}
}
