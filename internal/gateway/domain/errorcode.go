package domain

// ErrorCode identifies a sign-in failure shown on the error page. The set
// is closed: ParseErrorCode maps anything unrecognized to ErrCodeDefault so
// internal detail never leaks into a user-facing page.
type ErrorCode string

const (
	ErrCodeAuthFailed     ErrorCode = "auth_failed"
	ErrCodeAccessDenied   ErrorCode = "access_denied"
	ErrCodeCancelled      ErrorCode = "cancelled"
	ErrCodeNetworkError   ErrorCode = "network_error"
	ErrCodeInvalidRequest ErrorCode = "invalid_request"
	ErrCodeServerError    ErrorCode = "server_error"
	ErrCodeDefault        ErrorCode = "default"
)

// ErrorInfo is the plain-language title and message rendered for a code.
type ErrorInfo struct {
	Title   string
	Message string
}

// ParseErrorCode maps a raw query-string value to a known ErrorCode.
func ParseErrorCode(s string) ErrorCode {
	switch c := ErrorCode(s); c {
	case ErrCodeAuthFailed, ErrCodeAccessDenied, ErrCodeCancelled,
		ErrCodeNetworkError, ErrCodeInvalidRequest, ErrCodeServerError:
		return c
	default:
		return ErrCodeDefault
	}
}

// Info returns the user-facing text for the code.
func (c ErrorCode) Info() ErrorInfo {
	switch c {
	case ErrCodeAuthFailed:
		return ErrorInfo{
			Title:   "Authentication Failed",
			Message: "We couldn't sign you in. Please try again.",
		}
	case ErrCodeAccessDenied:
		return ErrorInfo{
			Title:   "Access Denied",
			Message: "You denied access to your account. Sign in is required to continue.",
		}
	case ErrCodeCancelled:
		return ErrorInfo{
			Title:   "Sign In Cancelled",
			Message: "You cancelled the sign in process.",
		}
	case ErrCodeNetworkError:
		return ErrorInfo{
			Title:   "Connection Error",
			Message: "We couldn't connect to the authentication service. Please check your connection and try again.",
		}
	case ErrCodeInvalidRequest:
		return ErrorInfo{
			Title:   "Invalid Request",
			Message: "Something went wrong with the sign in request.",
		}
	case ErrCodeServerError:
		return ErrorInfo{
			Title:   "Server Error",
			Message: "Something went wrong on our end. Please try again later.",
		}
	default:
		return ErrorInfo{
			Title:   "Sign In Error",
			Message: "Something went wrong during sign in. Please try again.",
		}
	}
}
