package services

import (
	"context"

	"github.com/moto-workshop/mws-dashboard-api/models"
)

// Notifier source constructors. Each one binds the unpaged fetch of a watched
// collection to a token supplier, resolved on every poll so the notifier
// always uses the freshest session.

// AllProveedores returns a source fetching the complete supplier list
func AllProveedores(c *BackendClient, token func() string) func(context.Context) ([]models.Proveedor, error) {
	return func(ctx context.Context) ([]models.Proveedor, error) {
		return FetchAll[models.Proveedor](ctx, c, token(), "proveedor", "proveedores")
	}
}

// AllRepuestos returns a source fetching the complete spare part list
func AllRepuestos(c *BackendClient, token func() string) func(context.Context) ([]models.Repuesto, error) {
	return func(ctx context.Context) ([]models.Repuesto, error) {
		return FetchAll[models.Repuesto](ctx, c, token(), "repuesto", "repuestos")
	}
}

// AllReservas returns a source fetching the complete reservation list
func AllReservas(c *BackendClient, token func() string) func(context.Context) ([]models.Reserva, error) {
	return func(ctx context.Context) ([]models.Reserva, error) {
		return FetchAll[models.Reserva](ctx, c, token(), "reservas", "reservas")
	}
}
