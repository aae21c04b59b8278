package ports

import (
	"context"
	"encoding/json"
)

// ZohoClient talks to the downstream Zoho connector service. Any failure,
// including timeouts and non-2xx responses, is reported as domain.ErrUpstream
// so the transport layer can answer 502 uniformly.
type ZohoClient interface {
	GetLeads(ctx context.Context, authToken string) (json.RawMessage, error)
	GetAccounts(ctx context.Context, authToken string) (json.RawMessage, error)
	CreateLead(ctx context.Context, lead json.RawMessage, authToken string) (json.RawMessage, error)

	// Ping probes the connector's health endpoint.
	Ping(ctx context.Context) error
}
