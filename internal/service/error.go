package service

import (
	"errors"
	"log"
	"net/http"

	"dinewise/internal/api"
	"dinewise/internal/yelp"
)

// 測試時可覆寫的函式變數
var logf = log.Printf

// Error 是服務層的型別化錯誤，帶 HTTP 狀態碼與穩定錯誤碼。
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// FromUpstream maps a provider client failure onto the public error taxonomy.
// Rate limits and bad ids pass through; everything else is a 502.
func FromUpstream(err error) *Error {
	var apiErr *yelp.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case yelp.ErrCodeRateLimited:
			return NewError(http.StatusTooManyRequests, api.ErrCodeRateLimited, "upstream rate limit exceeded, try again later")
		case yelp.ErrCodeInvalidRequest:
			return NewError(http.StatusBadRequest, api.ErrCodeValidation, apiErr.Message)
		case yelp.ErrCodeNotFound:
			return NewError(http.StatusNotFound, api.ErrCodeNotFound, "restaurant not found")
		}
	}
	return NewError(http.StatusBadGateway, api.ErrCodeUpstream, "restaurant data provider is unavailable")
}
