package handler

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/agustin-pizzeria/order-service/internal/entities"
)

const dashboardTmpl = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Agustin Pizzeria - Orders Dashboard</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script>
      function refreshDashboard() {
        location.reload();
      }
      setInterval(refreshDashboard, 30000);
    </script>
  </head>
  <body class="bg-gray-100">
    <div class="container mx-auto px-4 py-8">
      <header class="mb-8">
        <h1 class="text-3xl font-bold text-gray-800">Agustin Pizzeria</h1>
        <p class="text-gray-600">Orders Dashboard</p>
      </header>

      <div class="bg-white rounded-lg shadow-lg p-6">
        <div class="flex justify-between items-center mb-6">
          <h2 class="text-xl font-semibold">Recent Orders</h2>
          <button
            onclick="refreshDashboard()"
            class="bg-blue-500 text-white px-4 py-2 rounded hover:bg-blue-600"
          >
            Refresh
          </button>
        </div>

        <div class="overflow-x-auto">
          <table class="min-w-full table-auto">
            <thead>
              <tr class="bg-gray-50">
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Order Tracking ID</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Order Items</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Total</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Customer Address</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Created At</th>
              </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
              {{range .Orders}}
              <tr class="hover:bg-gray-50">
                <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.ShortID}}</td>
                <td class="px-6 py-4 text-sm text-gray-900">
                  {{range .Items}}{{.}}<br>{{end}}
                </td>
                <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.Total}}</td>
                <td class="px-6 py-4 text-sm text-gray-900">{{.Address}}</td>
                <td class="px-6 py-4 whitespace-nowrap">
                  <span class="px-2 inline-flex text-xs leading-5 font-semibold rounded-full {{.BadgeClass}}">{{.Status}}</span>
                </td>
                <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{.CreatedAt}}</td>
              </tr>
              {{end}}
            </tbody>
          </table>
        </div>
      </div>
    </div>
  </body>
</html>`

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardTmpl))

type dashboardOrder struct {
	ShortID    string
	Items      []string
	Total      string
	Address    string
	Status     string
	BadgeClass string
	CreatedAt  string
}

type dashboardView struct {
	Orders []dashboardOrder
}

// Dashboard renders the operations view of all orders, newest first.
// @Summary      Orders dashboard
// @Description  HTML view of all orders for the kitchen staff
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string  "rendered dashboard"
// @Failure      500  {string}  string  "error page"
// @Router       /dashboard [get]
func (h *HTTPHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render dashboard", slog.Any("error", err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "<html><body><h1>Error</h1><p>dashboard unavailable</p></body></html>")
		return
	}

	view := dashboardView{Orders: make([]dashboardOrder, 0, len(orders))}
	for _, o := range orders {
		view.Orders = append(view.Orders, toDashboardOrder(o))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, view); err != nil {
		h.logger.ErrorContext(ctx, "failed to execute dashboard template", slog.Any("error", err))
		return
	}

	dashboardRenders.Inc()
}

func toDashboardOrder(o entities.Order) dashboardOrder {
	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, fmt.Sprintf("%dx %s", it.Quantity, it.Product.Name))
	}

	short := o.TrackingID
	if len(short) > 8 {
		short = short[:8]
	}

	return dashboardOrder{
		ShortID:    short,
		Items:      items,
		Total:      "$" + o.Total.StringFixed(2),
		Address:    o.CustomerAddress,
		Status:     o.Status,
		BadgeClass: statusBadgeClass(o.Status),
		CreatedAt:  o.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func statusBadgeClass(status string) string {
	switch status {
	case "new":
		return "bg-blue-100 text-blue-800"
	case "preparing":
		return "bg-yellow-100 text-yellow-800"
	case "delivering":
		return "bg-purple-100 text-purple-800"
	case "completed":
		return "bg-green-100 text-green-800"
	default:
		return ""
	}
}
