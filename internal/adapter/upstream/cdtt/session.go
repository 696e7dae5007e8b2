package cdtt

import (
	"context"
	"errors"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
)

// errEmptySession indicates the upstream accepted the registration call
// but returned no session identifier.
var errEmptySession = errors.New("upstream returned empty session id")

// OpenSession registers a short-lived session with the upstream. The
// upstream requires no authentication, only this registration call with a
// fixed client identity; the notification preferences are defaults the
// protocol insists on but that have no effect on search results.
//
// Create-then-discard: the returned token is valid for one logical search
// and is never pooled or reused.
func (c *Client) OpenSession(ctx context.Context) (domain.SessionToken, error) {
	req := createSessionRequest{
		App:                  clientAppID,
		Device:               clientDeviceDesc,
		NotifyDelays:         false,
		NotifyPlatformChange: false,
	}

	var resp createSessionResponse
	if err := c.call(ctx, endpointCreateSession, req, &resp); err != nil {
		return "", err
	}

	if resp.SessionID == "" {
		return "", domain.NewUpstreamError(endpointCreateSession, 0,
			"", errEmptySession)
	}

	return domain.SessionToken(resp.SessionID), nil
}
