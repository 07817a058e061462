package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/hellodex/dbot-mcp/model"
)

const (
	followOrderPath  = "/automation/follow_order"
	followOrdersPath = "/automation/follow_orders"
)

func (c *Client) CreateCopyTrading(req *model.CopyTradingRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, followOrderPath, nil, req)
}

// EditCopyTrading posts the full task; the id selects the task to replace.
func (c *Client) EditCopyTrading(req *model.EditCopyTradingRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, followOrderPath, nil, req)
}

func (c *Client) SwitchCopyTrading(req *model.SwitchCopyTradingRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, followOrderPath, nil, req)
}

func (c *Client) DeleteCopyTrading(req *model.DeleteCopyTradingRequest) (*model.Envelope, error) {
	query := url.Values{"deletePnlOrder": {strconv.FormatBool(req.DeletePnlOrder)}}
	return c.call(http.MethodDelete, withID(followOrderPath, req.ID), query, nil)
}

func (c *Client) CopyTradingTasks(req *model.PageRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, followOrdersPath, queryOf(req), nil)
}
