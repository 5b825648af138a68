package serverutils

// BaseResponse is the envelope of every API response.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse[T any](data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Error:   message,
	}
}

// MessageData is the payload of endpoints that only confirm an action.
type MessageData struct {
	Message string `json:"message"`
}
