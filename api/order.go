package api

import (
	"net/http"

	"github.com/hellodex/dbot-mcp/model"
	"github.com/tidwall/gjson"
)

const (
	migrateOrderPath  = "/automation/migrate_order"
	migrateOrdersPath = "/automation/migrate_orders"
	devOrderPath      = "/automation/dev_order"
	devOrdersPath     = "/automation/dev_orders"
)

func (c *Client) CreateMigrateOrder(req *model.MigrateOrderRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, migrateOrderPath, nil, req)
}

func (c *Client) CreateDevOrder(req *model.DevOrderRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, devOrderPath, nil, req)
}

func (c *Client) UpdateMigrateOrder(req *model.UpdateMigrateOrderRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, migrateOrderPath, nil, req)
}

func (c *Client) UpdateDevOrder(req *model.UpdateDevOrderRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, devOrderPath, nil, req)
}

func (c *Client) ToggleMigrateOrder(req *model.ToggleRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, migrateOrderPath, nil, req)
}

func (c *Client) ToggleDevOrder(req *model.ToggleRequest) (*model.Envelope, error) {
	return c.call(http.MethodPatch, devOrderPath, nil, req)
}

func (c *Client) DeleteMigrateOrder(id string) (*model.Envelope, error) {
	return c.call(http.MethodDelete, withID(migrateOrderPath, id), nil, nil)
}

func (c *Client) DeleteDevOrder(id string) (*model.Envelope, error) {
	return c.call(http.MethodDelete, withID(devOrderPath, id), nil, nil)
}

func (c *Client) MigrateOrders(req *model.ListOrdersRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, migrateOrdersPath, queryOf(req), nil)
}

func (c *Client) DevOrders(req *model.ListOrdersRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, devOrdersPath, queryOf(req), nil)
}

// ParseOrderPage reads a conditional order listing. The remote side answers either
// {orders, total, page, size} or a bare array. A missing page or size falls back to
// the request; a missing or zero total falls back to the count of orders.
func ParseOrderPage(env *model.Envelope, req *model.ListOrdersRequest) (*model.OrderPage, error) {
	page := &model.OrderPage{Page: req.Page, Size: req.Size}
	res := gjson.ParseBytes(env.Res)

	list := res
	if res.IsObject() {
		list = res.Get("orders")
		if v := res.Get("total"); v.Exists() {
			page.Total = int(v.Int())
		}
		if v := res.Get("page"); v.Exists() {
			page.Page = int(v.Int())
		}
		if v := res.Get("size"); v.Exists() {
			page.Size = int(v.Int())
		}
	}

	if list.IsArray() {
		if err := (&model.Envelope{Res: []byte(list.Raw)}).Decode(&page.Orders); err != nil {
			return nil, err
		}
	}
	if page.Total == 0 {
		page.Total = len(page.Orders)
	}
	return page, nil
}
