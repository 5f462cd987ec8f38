package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/platform/auth"
)

// ServiceQuota caps what one calling service may submit. The token bucket
// in ratelimit.go smooths per-second bursts; the quota layer bounds the
// sustained volume over a minute and a day and the number of requests a
// caller may hold open at once. Scanned-batch suppliers deliver in large
// spikes overnight, so the supplier quota is deliberately asymmetric: a
// high daily ceiling with a moderate per-minute rate.
type ServiceQuota struct {
	Service     string `json:"service"`
	PerMinute   int    `json:"per_minute"`
	PerDay      int    `json:"per_day"`
	MaxInFlight int    `json:"max_in_flight"`
}

// QuotaDecision reports the outcome of one admission check.
type QuotaDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter int
	Reset      time.Time
}

// QuotaUsage is the admin view of one caller's current consumption.
type QuotaUsage struct {
	Service     string `json:"service"`
	PerMinute   int    `json:"per_minute"`
	MinuteUsed  int    `json:"minute_used"`
	PerDay      int    `json:"per_day"`
	DayUsed     int    `json:"day_used"`
	MaxInFlight int    `json:"max_in_flight"`
	InFlight    int    `json:"in_flight"`
}

type callerWindow struct {
	minuteStart time.Time
	minuteUsed  int
	dayStart    time.Time
	dayUsed     int
	inFlight    int
	lastSeen    time.Time
}

// QuotaRegistry holds the per-service quotas and the live usage windows.
// Callers without a named quota share the fallback, keyed by client IP so
// one unrecognised caller cannot starve another.
type QuotaRegistry struct {
	mu       sync.Mutex
	fallback ServiceQuota
	quotas   map[string]ServiceQuota
	windows  map[string]*callerWindow
}

// DefaultQuotas names the callers this service expects. The scanning
// supplier feeds the intake endpoints in bulk; the dev identity exists so
// local runs are never throttled.
func DefaultQuotas() []ServiceQuota {
	return []ServiceQuota{
		{Service: "sscs_bulkscan", PerMinute: 600, PerDay: 150000, MaxInFlight: 50},
		{Service: "dev", PerMinute: 10000, PerDay: 1000000, MaxInFlight: 200},
	}
}

// NewQuotaRegistry seeds the registry with DefaultQuotas and a conservative
// fallback for unrecognised callers.
func NewQuotaRegistry() *QuotaRegistry {
	r := &QuotaRegistry{
		fallback: ServiceQuota{Service: "fallback", PerMinute: 60, PerDay: 5000, MaxInFlight: 5},
		quotas:   make(map[string]ServiceQuota),
		windows:  make(map[string]*callerWindow),
	}
	for _, q := range DefaultQuotas() {
		r.quotas[q.Service] = q
	}
	return r
}

// Set registers or replaces the quota for a service.
func (r *QuotaRegistry) Set(q ServiceQuota) error {
	if q.Service == "" {
		return fmt.Errorf("quota service name is required")
	}
	if q.PerMinute <= 0 || q.PerDay <= 0 || q.MaxInFlight <= 0 {
		return fmt.Errorf("quota limits for %q must be positive", q.Service)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotas[q.Service] = q
	return nil
}

// QuotaFor returns the quota that applies to a caller.
func (r *QuotaRegistry) QuotaFor(caller string) ServiceQuota {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.quotas[caller]; ok {
		return q
	}
	return r.fallback
}

// Quotas lists every registered quota plus the fallback.
func (r *QuotaRegistry) Quotas() []ServiceQuota {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServiceQuota, 0, len(r.quotas)+1)
	out = append(out, r.fallback)
	for _, q := range r.quotas {
		out = append(out, q)
	}
	return out
}

func (r *QuotaRegistry) window(caller string, now time.Time) *callerWindow {
	w, ok := r.windows[caller]
	if !ok {
		w = &callerWindow{minuteStart: now, dayStart: now}
		r.windows[caller] = w
	}
	if now.Sub(w.minuteStart) >= time.Minute {
		w.minuteStart = now
		w.minuteUsed = 0
	}
	if now.Sub(w.dayStart) >= 24*time.Hour {
		w.dayStart = now
		w.dayUsed = 0
	}
	w.lastSeen = now
	return w
}

// Acquire admits one request for the caller, counting it against the
// minute and day windows and the in-flight gauge. Every admitted request
// must be paired with a Release.
func (r *QuotaRegistry) Acquire(caller string) QuotaDecision {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.fallback
	if named, ok := r.quotas[caller]; ok {
		q = named
	}
	w := r.window(caller, now)

	d := QuotaDecision{
		Limit: q.PerMinute,
		Reset: w.minuteStart.Add(time.Minute),
	}

	switch {
	case w.inFlight >= q.MaxInFlight:
		d.RetryAfter = 1
	case w.minuteUsed >= q.PerMinute:
		d.RetryAfter = ceilSeconds(d.Reset.Sub(now))
	case w.dayUsed >= q.PerDay:
		d.RetryAfter = ceilSeconds(w.dayStart.Add(24 * time.Hour).Sub(now))
	default:
		w.minuteUsed++
		w.dayUsed++
		w.inFlight++
		d.Allowed = true
		d.Remaining = q.PerMinute - w.minuteUsed
	}
	return d
}

// Release frees the in-flight slot taken by Acquire.
func (r *QuotaRegistry) Release(caller string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.windows[caller]; ok && w.inFlight > 0 {
		w.inFlight--
	}
}

// Usage snapshots a caller's counters against its quota.
func (r *QuotaRegistry) Usage(caller string) QuotaUsage {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.fallback
	if named, ok := r.quotas[caller]; ok {
		q = named
	}
	w := r.window(caller, now)
	return QuotaUsage{
		Service:     caller,
		PerMinute:   q.PerMinute,
		MinuteUsed:  w.minuteUsed,
		PerDay:      q.PerDay,
		DayUsed:     w.dayUsed,
		MaxInFlight: q.MaxInFlight,
		InFlight:    w.inFlight,
	}
}

// ResetUsage zeroes a caller's windows. In-flight counts are preserved so
// requests already admitted still release cleanly.
func (r *QuotaRegistry) ResetUsage(caller string) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.windows[caller]; ok {
		w.minuteStart = now
		w.minuteUsed = 0
		w.dayStart = now
		w.dayUsed = 0
	}
}

// Sweep drops usage windows for callers idle longer than a day. Blocks
// until ctx is cancelled, so run it in a goroutine.
func (r *QuotaRegistry) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-24 * time.Hour)
			r.mu.Lock()
			for caller, w := range r.windows {
				if w.inFlight == 0 && w.lastSeen.Before(cutoff) {
					delete(r.windows, caller)
				}
			}
			r.mu.Unlock()
		}
	}
}

// ServiceQuotaMiddleware enforces the registry's quotas. Callers are
// identified by the service name from their token; unauthenticated traffic
// falls back to the client IP and shares the fallback quota.
func ServiceQuotaMiddleware(reg *QuotaRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := quotaCaller(c)
			d := reg.Acquire(caller)

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))

			if !d.Allowed {
				h.Set("Retry-After", strconv.Itoa(d.RetryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "quota exceeded")
			}

			err := next(c)
			reg.Release(caller)
			return err
		}
	}
}

func quotaCaller(c echo.Context) string {
	if svc := auth.ServiceFromContext(c.Request().Context()); svc != "" {
		return svc
	}
	return c.RealIP()
}

func ceilSeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		return 1
	}
	return s
}

// QuotaHandler exposes the admin surface for quotas.
type QuotaHandler struct {
	reg *QuotaRegistry
}

func NewQuotaHandler(reg *QuotaRegistry) *QuotaHandler {
	return &QuotaHandler{reg: reg}
}

// RegisterRoutes mounts the quota admin endpoints on the given group.
func (h *QuotaHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/quotas", h.ListQuotas)
	g.PUT("/quotas/:service", h.SetQuota)
	g.GET("/quotas/:service/usage", h.GetUsage)
	g.POST("/quotas/:service/reset", h.ResetUsage)
}

// ListQuotas returns every registered quota plus the fallback.
func (h *QuotaHandler) ListQuotas(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reg.Quotas())
}

// SetQuota registers or replaces the quota for a service.
func (h *QuotaHandler) SetQuota(c echo.Context) error {
	var q ServiceQuota
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quota: "+err.Error())
	}
	q.Service = c.Param("service")
	if err := h.reg.Set(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, q)
}

// GetUsage returns the caller's current consumption.
func (h *QuotaHandler) GetUsage(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reg.Usage(c.Param("service")))
}

// ResetUsage zeroes the caller's windows.
func (h *QuotaHandler) ResetUsage(c echo.Context) error {
	service := c.Param("service")
	h.reg.ResetUsage(service)
	return c.JSON(http.StatusOK, map[string]string{
		"service": service,
		"status":  "reset",
	})
}
