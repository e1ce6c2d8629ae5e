package response

import "tour-storefront/internal/usecase/gateway"

type MessageResponse struct {
	Message string `json:"message"`
}

// RecordListResponse relays backend documents the storefront does not interpret.
type RecordListResponse struct {
	Items []gateway.Record `json:"items"`
	Count int              `json:"count"`
}

func FromRecords(records []gateway.Record) *RecordListResponse {
	if records == nil {
		records = []gateway.Record{}
	}
	return &RecordListResponse{Items: records, Count: len(records)}
}
