package response

// SuccessResponse is the body of delete-style endpoints: {"status":"success"}.
type SuccessResponse struct {
	Status string `json:"status"`
}

type IDResponse struct {
	ID int `json:"id"`
}
