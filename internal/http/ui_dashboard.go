package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/http/uiutil"
)

// ChartBar is one row of a horizontal bar chart, scaled against the series maximum.
type ChartBar struct {
	Label   string
	Value   float64
	Percent float64
}

// chartBars scales points so the largest value fills the row.
func chartBars(points []model.ChartDataPoint) []ChartBar {
	var peak float64
	for _, p := range points {
		peak = max(peak, p.Value)
	}
	out := make([]ChartBar, 0, len(points))
	for _, p := range points {
		b := ChartBar{Label: p.Label, Value: p.Value}
		if peak > 0 {
			b.Percent = p.Value / peak * 100
		}
		out = append(out, b)
	}
	return out
}

// donutSlices scales each point as a share of the series total.
func donutSlices(points []model.ChartDataPoint, total float64) []ChartBar {
	out := make([]ChartBar, 0, len(points))
	for _, p := range points {
		b := ChartBar{Label: p.Label, Value: p.Value}
		if total > 0 {
			b.Percent = p.Value / total * 100
		}
		out = append(out, b)
	}
	return out
}

// ActivityRow is an audit event prepared for the dashboard feed.
type ActivityRow struct {
	Actor   string
	Role    string
	Action  string
	Subject string
	When    string
	At      time.Time
}

func activityRows(events []model.AuditEvent, now time.Time) []ActivityRow {
	rows := make([]ActivityRow, 0, len(events))
	for _, e := range events {
		actor := e.Actor
		if actor == "" {
			actor = "anonymous"
		}
		rows = append(rows, ActivityRow{
			Actor:   actor,
			Role:    e.Role,
			Action:  activityLabel(e.Action),
			Subject: e.Subject,
			When:    uiutil.FriendlyRelativeTime(e.OccurredAt, now),
			At:      e.OccurredAt,
		})
	}
	return rows
}

// activityLabel turns "product.image_uploaded" into "product image uploaded".
func activityLabel(action string) string {
	return strings.NewReplacer(".", " ", "_", " ").Replace(action)
}

func (h *UIHandlers) populateDashboard(ctx context.Context, data map[string]any) error {
	ov, err := h.Dashboard.Overview(ctx)
	if err != nil {
		return err
	}
	m := ov.Metrics
	data["Metrics"] = m
	data["PendingOrders"] = ov.PendingOrders
	data["PendingKnown"] = ov.PendingKnown
	data["SalesBars"] = chartBars(m.BarChartData)
	data["StatusSlices"] = donutSlices(m.DonutChartData, m.DonutTotal())
	data["StatusTotal"] = m.DonutTotal()
	data["MonthlyOrders"] = m.AreaChartData
	data["RecentSales"] = m.RecentSales
	data["Activity"] = activityRows(ov.Activity, h.now())
	return nil
}

// DashboardPage serves the admin landing page.
// GET /.
func (h *UIHandlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta:  PageMeta{Title: "Storefront Admin - Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard},
		Fetch: h.populateDashboard,
	})
}

// ActivityFragment serves the recent activity panel for htmx polling.
// GET /dashboard/activity.
func (h *UIHandlers) ActivityFragment(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{})
	ov, err := h.Dashboard.Overview(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "activity panel unavailable", "error", err)
		data["ActivityError"] = "Unable to load recent activity"
	} else {
		data["Activity"] = activityRows(ov.Activity, h.now())
	}
	h.renderFragment(w, r, "dashboard-activity", data)
}
