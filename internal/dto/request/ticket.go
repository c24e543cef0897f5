package request

// ArchiveTicketRequest is the body of PATCH /api/v1/ticket/{id}/archive.
type ArchiveTicketRequest struct {
	Archived bool `json:"archived"`
}

// TicketFilter maps to the query parameters of GET /api/v1/tickets.
type TicketFilter struct {
	IncludeArchived bool
	Archived        *bool
}
