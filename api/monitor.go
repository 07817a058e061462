package api

import (
	"net/http"

	"github.com/hellodex/dbot-mcp/model"
)

// TokenSecurity queries pool and token safety data from the security host.
func (c *Client) TokenSecurity(req *model.TokenSecurityRequest) (*model.Envelope, error) {
	data, err := c.send(http.MethodGet, c.securityURL+poolInfoPath, poolInfoPath, queryOf(req), nil)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(data)
}
