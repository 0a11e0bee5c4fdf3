package response

const (
	DefaultErrorMessage   = "Server Error"
	NotFoundMessage       = "Not Found"
	InvalidRequestMessage = "Invalid request body"

	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
