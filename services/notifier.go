package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/moto-workshop/mws-dashboard-api/models"
)

// Alert thresholds. These are fixed business rules, not configuration.
const (
	// LowStockThreshold flags parts with stock at or below this many units
	LowStockThreshold = 10
	// CreditDaysThreshold flags suppliers whose remaining credit days are
	// at or below this value
	CreditDaysThreshold = 5
	// ReservaWindowDays flags reservations dated within this many days
	// from today, inclusive
	ReservaWindowDays = 5
)

// IsLowStock reports whether a part should raise a low-stock alert
func IsLowStock(r models.Repuesto) bool {
	return r.Stock <= LowStockThreshold
}

// IsCreditExpiring reports whether a supplier's credit is about to expire
func IsCreditExpiring(p models.Proveedor) bool {
	return p.DiasCreditoRestantes <= CreditDaysThreshold
}

// IsUpcomingReserva reports whether a reservation falls inside the alert
// window [today, today+5 days], both ends normalized to midnight UTC
func IsUpcomingReserva(r models.Reserva, now time.Time) bool {
	today := midnightUTC(now)
	fecha := midnightUTC(r.FechaReserva.Time)
	diffDays := int(fecha.Sub(today).Hours() / 24)
	return diffDays >= 0 && diffDays <= ReservaWindowDays
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SlotStatus is the state of one notification data source
type SlotStatus string

const (
	// SlotPending means the source has not completed a fetch yet
	SlotPending SlotStatus = "pending"
	// SlotSucceeded means the source holds fresh data
	SlotSucceeded SlotStatus = "succeeded"
	// SlotFailed means the last fetch failed; previously fetched data is
	// kept so one failing source never blanks the merged view
	SlotFailed SlotStatus = "failed"
)

// slot is one independently failing data source
type slot[T any] struct {
	status    SlotStatus
	data      []T
	err       error
	updatedAt time.Time
}

func (s *slot[T]) succeed(data []T, at time.Time) {
	s.status = SlotSucceeded
	s.data = data
	s.err = nil
	s.updatedAt = at
}

func (s *slot[T]) fail(err error, at time.Time) {
	s.status = SlotFailed
	s.err = err
	s.updatedAt = at
}

// SourceStatus describes one source in a summary
type SourceStatus struct {
	Status    SlotStatus `json:"status"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NotificationSummary is the merged, categorized alert view. Total is the
// badge count; zero suppresses the badge in the UI.
type NotificationSummary struct {
	Total       int                     `json:"total"`
	Proveedores []models.Proveedor      `json:"proveedores"`
	Repuestos   []models.Repuesto       `json:"repuestos"`
	Reservas    []models.Reserva        `json:"reservas"`
	Sources     map[string]SourceStatus `json:"sources"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// NotifierSources supplies the three unpaged collections the aggregator
// watches
type NotifierSources struct {
	Proveedores func(ctx context.Context) ([]models.Proveedor, error)
	Repuestos   func(ctx context.Context) ([]models.Repuesto, error)
	Reservas    func(ctx context.Context) ([]models.Reserva, error)
}

// Notifier polls the three sources on an interval and derives the merged
// alert summary. Each source lands in its own result slot: a failure in one
// concurrent fetch never prevents the other two from updating.
type Notifier struct {
	mu       sync.Mutex
	sources  NotifierSources
	interval time.Duration
	hub      *Hub
	now      func() time.Time

	proveedores slot[models.Proveedor]
	repuestos   slot[models.Repuesto]
	reservas    slot[models.Reserva]

	lastTotal int
}

var notifierInstance *Notifier

// NewNotifier creates a notifier polling the given sources
func NewNotifier(sources NotifierSources, interval time.Duration, hub *Hub) *Notifier {
	return &Notifier{
		sources:     sources,
		interval:    interval,
		hub:         hub,
		now:         time.Now,
		proveedores: slot[models.Proveedor]{status: SlotPending},
		repuestos:   slot[models.Repuesto]{status: SlotPending},
		reservas:    slot[models.Reserva]{status: SlotPending},
	}
}

// GetNotifier returns the notifier instance
func GetNotifier() *Notifier {
	return notifierInstance
}

// SetNotifier sets the notifier instance (primarily for testing)
func SetNotifier(n *Notifier) {
	notifierInstance = n
}

// Start runs the polling loop until ctx is cancelled: one refresh
// immediately, then one per interval
func (n *Notifier) Start(ctx context.Context) {
	go func() {
		n.Refresh(ctx)
		ticker := time.NewTicker(n.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n.Refresh(ctx)
			}
		}
	}()
}

// Refresh fetches all three collections concurrently. Every slot settles
// independently; the merged summary is recomputed afterwards and a badge
// update is broadcast when the count changed.
func (n *Notifier) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		data, err := n.sources.Proveedores(ctx)
		n.mu.Lock()
		defer n.mu.Unlock()
		if err != nil {
			log.Printf("Notifier: supplier fetch failed: %v", err)
			n.proveedores.fail(err, n.now())
			return
		}
		n.proveedores.succeed(data, n.now())
	}()

	go func() {
		defer wg.Done()
		data, err := n.sources.Repuestos(ctx)
		n.mu.Lock()
		defer n.mu.Unlock()
		if err != nil {
			log.Printf("Notifier: parts fetch failed: %v", err)
			n.repuestos.fail(err, n.now())
			return
		}
		n.repuestos.succeed(data, n.now())
	}()

	go func() {
		defer wg.Done()
		data, err := n.sources.Reservas(ctx)
		n.mu.Lock()
		defer n.mu.Unlock()
		if err != nil {
			log.Printf("Notifier: reservation fetch failed: %v", err)
			n.reservas.fail(err, n.now())
			return
		}
		n.reservas.succeed(data, n.now())
	}()

	wg.Wait()

	summary := n.Snapshot()
	n.mu.Lock()
	changed := summary.Total != n.lastTotal
	n.lastTotal = summary.Total
	n.mu.Unlock()

	if changed && n.hub != nil {
		n.hub.Broadcast(BadgeUpdate{Total: summary.Total})
	}
}

// Snapshot applies the three threshold predicates to whatever data the slots
// hold and returns the merged summary
func (n *Notifier) Snapshot() NotificationSummary {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()

	var proveedores []models.Proveedor
	for _, p := range n.proveedores.data {
		if IsCreditExpiring(p) {
			proveedores = append(proveedores, p)
		}
	}

	var repuestos []models.Repuesto
	for _, r := range n.repuestos.data {
		if IsLowStock(r) {
			repuestos = append(repuestos, r)
		}
	}

	var reservas []models.Reserva
	for _, r := range n.reservas.data {
		if IsUpcomingReserva(r, now) {
			reservas = append(reservas, r)
		}
	}

	return NotificationSummary{
		Total:       len(proveedores) + len(repuestos) + len(reservas),
		Proveedores: proveedores,
		Repuestos:   repuestos,
		Reservas:    reservas,
		Sources: map[string]SourceStatus{
			"proveedores": sourceStatus(n.proveedores.status, n.proveedores.err, n.proveedores.updatedAt),
			"repuestos":   sourceStatus(n.repuestos.status, n.repuestos.err, n.repuestos.updatedAt),
			"reservas":    sourceStatus(n.reservas.status, n.reservas.err, n.reservas.updatedAt),
		},
		GeneratedAt: now,
	}
}

func sourceStatus(status SlotStatus, err error, at time.Time) SourceStatus {
	s := SourceStatus{Status: status, UpdatedAt: at}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}
