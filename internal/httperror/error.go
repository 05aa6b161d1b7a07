package httperror

// Error is the JSON body returned for every failed request.
type Error struct {
	Message string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
