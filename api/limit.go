package api

import (
	"net/http"
	"net/url"

	"github.com/hellodex/dbot-mcp/model"
)

const (
	limitOrderPath      = "/automation/limit_order"
	limitOrdersPath     = "/automation/limit_orders"
	limitDeleteManyPath = "/automation/limit_order/delete_many"
	limitDeleteAllPath  = "/automation/limit_order/delete_all"
)

func (c *Client) CreateLimitOrders(req *model.CreateLimitOrdersRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, limitOrdersPath, nil, req)
}

// EditLimitOrder also serves take-profit/stop-loss orders, which are limit orders remotely.
func (c *Client) EditLimitOrder(req *model.EditLimitOrderRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, limitOrderPath, nil, req)
}

func (c *Client) SwitchLimitOrder(req *model.ToggleRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, limitOrderPath, nil, req)
}

func (c *Client) DeleteLimitOrder(id string) (*model.Envelope, error) {
	return c.call(http.MethodDelete, withID(limitOrderPath, id), nil, nil)
}

func (c *Client) DeleteLimitOrders(req *model.DeleteManyRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, limitDeleteManyPath, nil, req)
}

func (c *Client) DeleteAllLimitOrders(req *model.DeleteAllRequest) (*model.Envelope, error) {
	return c.call(http.MethodDelete, limitDeleteAllPath, url.Values{"source": {req.Source}}, nil)
}

func (c *Client) LimitOrders(req *model.ListLimitOrdersRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, limitOrdersPath, queryOf(req), nil)
}
