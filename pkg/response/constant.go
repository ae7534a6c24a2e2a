package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again later"
	InternalServerErrorCode = 500

	DateFormat = "2006-01-02"
)
