package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/moto-workshop/mws-dashboard-api/config"
)

// EmailParams is the payload of a service-completed notification email
type EmailParams struct {
	EmailCliente  string  `json:"emailCliente"`
	NombreCliente string  `json:"nombreCliente"`
	Servicio      string  `json:"servicio"`
	PlacaMoto     string  `json:"placaMoto"`
	Precio        float64 `json:"precio"`
}

// EmailError represents a failed email delivery
type EmailError struct {
	Message string
}

func (e *EmailError) Error() string {
	return e.Message
}

// EmailInterface defines the interface for outbound email delivery
type EmailInterface interface {
	SendServicioCompletado(ctx context.Context, params EmailParams) error
}

// EmailService posts notification emails to the configured delivery endpoint
type EmailService struct {
	endpoint   string
	httpClient *http.Client
}

var emailServiceInstance EmailInterface

// InitEmailService initializes the email service from configuration
func InitEmailService(cfg *config.Config) EmailInterface {
	emailServiceInstance = &EmailService{
		endpoint:   cfg.EmailEndpointURL,
		httpClient: http.DefaultClient,
	}
	return emailServiceInstance
}

// GetEmailService returns the initialized email service instance
func GetEmailService() EmailInterface {
	return emailServiceInstance
}

// SetEmailService sets the email service instance (primarily for testing)
func SetEmailService(service EmailInterface) {
	emailServiceInstance = service
}

// SendServicioCompletado delivers a service-completed email. The endpoint
// answers {"success": true} on delivery and {"success": false, "error": ...}
// with a non-2xx status otherwise.
func (s *EmailService) SendServicioCompletado(ctx context.Context, params EmailParams) error {
	if s.endpoint == "" {
		return &EmailError{Message: "email endpoint is not configured"}
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || !result.Success {
		message := result.Error
		if message == "" {
			message = "Error enviando correo"
		}
		return &EmailError{Message: message}
	}

	return nil
}
