package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/domain/routing"
)

// deliveryTab binds a console tab to the order status it lists and the
// actions offered on each row.
type deliveryTab struct {
	Key     string
	Label   string
	Status  model.OrderStatus
	Actions []model.DeliveryAction
}

//nolint:gochecknoglobals // static tab definitions
var (
	adminOrderTabs = []deliveryTab{
		{Key: string(model.OrderOrdered), Label: "Ordered", Status: model.OrderOrdered},
		{Key: string(model.OrderDelivering), Label: "Delivering", Status: model.OrderDelivering},
		{Key: string(model.OrderCompleted), Label: "Completed", Status: model.OrderCompleted},
		{Key: string(model.OrderRejected), Label: "Rejected", Status: model.OrderRejected},
	}
	courierTabs = []deliveryTab{
		{Key: "orders", Label: "Orders", Status: model.OrderOrdered, Actions: []model.DeliveryAction{model.DeliveryAccept}},
		{Key: "delivered", Label: "Delivered", Status: model.OrderDelivering, Actions: []model.DeliveryAction{model.DeliveryComplete, model.DeliveryReject}},
	}
)

func findTab(tabs []deliveryTab, key string) deliveryTab {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, t := range tabs {
		if t.Key == key {
			return t
		}
	}
	return tabs[0]
}

func deliveryTabLinks(basePath, param string, tabs []deliveryTab, active string) []TabLink {
	out := make([]TabLink, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, TabLink{
			Key:    t.Key,
			Label:  t.Label,
			URL:    basePath + "?" + param + "=" + t.Key,
			Active: t.Key == active,
		})
	}
	return out
}

// OrderRow is an order with the actions the current tab offers.
type OrderRow struct {
	model.Order
	Actions []model.DeliveryAction
}

func (h *UIHandlers) populateOrders(ctx context.Context, r *http.Request, data map[string]any, tab deliveryTab, basePath string) error {
	data["Orders"] = []OrderRow{}
	orders, err := h.Orders.Orders(ctx, tab.Status)
	if err != nil {
		return err
	}
	page, p := pageOf(orders, pageParam(r), deliveryPageSize, basePath)
	rows := make([]OrderRow, 0, len(page))
	for _, o := range page {
		rows = append(rows, OrderRow{Order: o, Actions: tab.Actions})
	}
	extendTemplateData(r, data).With("Orders", rows).WithPagination(p)
	return nil
}

// DeliveryPage is the admin view of orders by status, 5 per page.
// GET /delivery?status=&page=.
func (h *UIHandlers) DeliveryPage(w http.ResponseWriter, r *http.Request) {
	tab := findTab(adminOrderTabs, r.URL.Query().Get("status"))
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Storefront Admin - Delivery", PageTitle: "Delivery", CurrentPage: PageDelivery},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Tab"] = tab.Key
			data["Tabs"] = deliveryTabLinks(routing.PathDelivery, "status", adminOrderTabs, tab.Key)
			data["VoucherBase"] = routing.PathDelivery + "/vouchers/"
			return h.populateOrders(ctx, r, data, tab, routing.PathDelivery)
		},
	})
}

// DeliveryLayoutPage is the delivery console: incoming orders to accept and
// accepted orders to complete or reject.
// GET /deliverylayout?tab=&page=.
func (h *UIHandlers) DeliveryLayoutPage(w http.ResponseWriter, r *http.Request) {
	tab := findTab(courierTabs, r.URL.Query().Get("tab"))
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Storefront Delivery", PageTitle: "Delivery orders", CurrentPage: PageDeliveryLayout},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Tab"] = tab.Key
			data["Tabs"] = deliveryTabLinks(routing.PathDeliveryLayout, "tab", courierTabs, tab.Key)
			data["VoucherBase"] = routing.PathDeliveryLayout + "/vouchers/"
			data["ActionBase"] = routing.PathDeliveryLayout + "/orders/"
			return h.populateOrders(ctx, r, data, tab, routing.PathDeliveryLayout)
		},
	})
}

// VoucherDialog renders the order detail dialog for either console.
// GET /delivery/vouchers/{id}, GET /deliverylayout/vouchers/{id}.
func (h *UIHandlers) VoucherDialog(w http.ResponseWriter, r *http.Request) {
	v, err := h.Orders.Voucher(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fragmentFailed(w, r, err)
		return
	}
	h.renderFragment(w, r, "voucher-dialog", v)
}

// DeliverOrder applies Accept, Complete or Reject to an order.
// POST /deliverylayout/orders/{id}/{action}.
func (h *UIHandlers) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	action := r.PathValue("action")
	err := h.Orders.Deliver(r.Context(), r.PathValue("id"), action)

	success := "Order updated"
	if act, perr := model.ParseDeliveryAction(action); perr == nil {
		success = deliveredMessages[act]
	}
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: success,
		Event:   eventOrdersChanged,
		Return:  refererOr(r, routing.PathDeliveryLayout),
	})
}

//nolint:gochecknoglobals // static toast copy
var deliveredMessages = map[model.DeliveryAction]string{
	model.DeliveryAccept:   "Order accepted",
	model.DeliveryComplete: "Order completed",
	model.DeliveryReject:   "Order rejected",
}

// refererOr returns the same-host referer path or def.
func refererOr(r *http.Request, def string) string {
	if p := refererPath(r); p != "/" {
		return p
	}
	return def
}
