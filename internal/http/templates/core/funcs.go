package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/target/storefront-admin/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
	Now                func() time.Time
}

// Funcs returns a template.FuncMap containing helpers shared by every console page.
func Funcs(deps Deps) template.FuncMap {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"relativeTime": func(t time.Time) string { return uiutil.FriendlyRelativeTime(t, now()) },
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"money":        money,
		"formatNumber": formatNumber,
		"percent":      percent,
		"percentOf":    percentOf,
		"orDash":       orDash,
		"truncate":     uiutil.TruncateWithEllipsis,
		"initials":     uiutil.Initials,
		"statusClass":  statusClass,
		"lower":        strings.ToLower,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during ExecuteTemplate.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func friendlyTime(ts any) string {
	switch v := ts.(type) {
	case time.Time:
		return uiutil.FormatFriendlyDateTime(v)
	case *time.Time:
		if v != nil {
			return uiutil.FormatFriendlyDateTime(*v)
		}
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return uiutil.FormatFriendlyDateTime(t)
		}
		return v
	case *string:
		if v != nil {
			return friendlyTime(*v)
		}
	}
	return ""
}

// money formats float amounts; nil pointers render as a dash.
func money(v any, symbol ...string) string {
	sym := ""
	if len(symbol) > 0 {
		sym = symbol[0]
	}
	switch x := v.(type) {
	case float64:
		return uiutil.FormatMoney(x, sym)
	case *float64:
		if x == nil {
			return "—"
		}
		return uiutil.FormatMoney(*x, sym)
	case int:
		return uiutil.FormatMoney(float64(x), sym)
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber groups thousands for integer types and *int.
func formatNumber(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case *int:
		if x == nil {
			return "—"
		}
		n = int64(*x)
	case float64:
		n = int64(x)
	default:
		return fmt.Sprint(v)
	}
	if n < 0 {
		return "-" + uiutil.GroupThousands(strconv.FormatInt(-n, 10))
	}
	return uiutil.GroupThousands(strconv.FormatInt(n, 10))
}

// percent returns part as a share of total with one decimal, "0.0" for an empty total.
func percent(part, total float64) string {
	if total <= 0 {
		return "0.0"
	}
	return strconv.FormatFloat(part/total*100, 'f', 1, 64)
}

// percentOf is the integer form of percent for template arithmetic.
func percentOf(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// orDash dereferences optional strings from the store API.
func orDash(v any) string {
	switch x := v.(type) {
	case string:
		if x != "" {
			return x
		}
	case *string:
		if x != nil && *x != "" {
			return *x
		}
	}
	return "—"
}

func statusClass(status any) string {
	switch strings.ToLower(orDash(status)) {
	case "ordered":
		return "badge-info"
	case "delivering":
		return "badge-warning"
	case "completed":
		return "badge-success"
	case "rejected":
		return "badge-danger"
	default:
		return "badge-light"
	}
}
