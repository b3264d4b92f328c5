package consultapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	"github.com/doctorconsult/appcore/internal/domain/scheduling"
	"github.com/doctorconsult/appcore/pkg/config"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
	"github.com/doctorconsult/appcore/pkg/retry"
)

// Client implements providers.ConsultBackend over the consultation
// service's JSON/HTTP API. Reads are retried with bounded backoff because
// they are idempotent; writes go out exactly once and failed writes are
// surfaced to the caller for an explicit re-attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
	readRetry  retry.Config
}

// NewClient creates a new consultation backend client
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		readRetry: retry.ReadConfig(),
	}
}

var _ providers.ConsultBackend = (*Client)(nil)

// GetDoctorProfile fetches one doctor snapshot
func (c *Client) GetDoctorProfile(ctx context.Context, doctorID int64) (*entities.Doctor, error) {
	endpoint := fmt.Sprintf("%s/doctor/profile/%d", c.baseURL, doctorID)
	out := &entities.Doctor{}
	if err := c.getJSON(ctx, endpoint, out); err != nil {
		return nil, apperrors.NewFetchFailedError("failed to fetch doctor profile", err)
	}
	return out, nil
}

// SearchDoctors lists doctor snapshots for a specialization
func (c *Client) SearchDoctors(ctx context.Context, specialization string) ([]*entities.Doctor, error) {
	endpoint := fmt.Sprintf("%s/doctor/search?specialization=%s", c.baseURL, url.QueryEscape(specialization))
	var out []*entities.Doctor
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, apperrors.NewFetchFailedError("failed to search doctors", err)
	}
	return out, nil
}

// BookAppointment submits a booking request for a canonical slot
func (c *Client) BookAppointment(ctx context.Context, userID, doctorID int64, slot scheduling.Slot) (*entities.Appointment, error) {
	parsed, err := url.Parse(fmt.Sprintf("%s/appointments/book", c.baseURL))
	if err != nil {
		return nil, apperrors.NewActionFailedError("failed to build booking request", err)
	}
	query := parsed.Query()
	query.Set("userId", strconv.FormatInt(userID, 10))
	query.Set("doctorId", strconv.FormatInt(doctorID, 10))
	query.Set("date", slot.Date)
	query.Set("time", slot.Time)
	parsed.RawQuery = query.Encode()

	out := &entities.Appointment{}
	if err := c.doJSON(ctx, http.MethodPost, parsed.String(), out); err != nil {
		return nil, apperrors.NewActionFailedError("failed to book appointment", err)
	}
	return out, nil
}

// ListUserAppointments lists the patient's appointment snapshots
func (c *Client) ListUserAppointments(ctx context.Context, userID int64) ([]*entities.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/user/%d", c.baseURL, userID)
	var out []*entities.Appointment
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, apperrors.NewFetchFailedError("failed to fetch appointments", err)
	}
	return out, nil
}

// ListDoctorAppointments lists the doctor's appointment snapshots
func (c *Client) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]*entities.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/doctor/%d", c.baseURL, doctorID)
	var out []*entities.Appointment
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, apperrors.NewFetchFailedError("failed to fetch doctor appointments", err)
	}
	return out, nil
}

// ApproveAppointment approves a pending appointment
func (c *Client) ApproveAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/approve/%d", c.baseURL, appointmentID)
	out := &entities.Appointment{}
	if err := c.doJSON(ctx, http.MethodPut, endpoint, out); err != nil {
		return nil, apperrors.NewActionFailedError("failed to approve appointment", err)
	}
	return out, nil
}

// CompleteAppointment marks a paid appointment as completed
func (c *Client) CompleteAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/complete/%d", c.baseURL, appointmentID)
	out := &entities.Appointment{}
	if err := c.doJSON(ctx, http.MethodPut, endpoint, out); err != nil {
		return nil, apperrors.NewActionFailedError("failed to complete appointment", err)
	}
	return out, nil
}

// PayAppointment settles the consultation fee for an approved appointment.
// The payment acknowledgment body carries processor details the client does
// not act on, so only the status is checked.
func (c *Client) PayAppointment(ctx context.Context, appointmentID int64) error {
	endpoint := fmt.Sprintf("%s/payments/pay/%d", c.baseURL, appointmentID)
	if err := c.doJSON(ctx, http.MethodPut, endpoint, nil); err != nil {
		return apperrors.NewActionFailedError("failed to pay appointment", err)
	}
	return nil
}

// ListNotifications lists notification items for a recipient
func (c *Client) ListNotifications(ctx context.Context, recipient entities.RecipientType, recipientID int64, unreadOnly bool) ([]*entities.Notification, error) {
	endpoint := fmt.Sprintf("%s/notifications/%s/%d", c.baseURL, url.PathEscape(string(recipient)), recipientID)
	if unreadOnly {
		endpoint += "?unreadOnly=true"
	}
	var out []*entities.Notification
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, apperrors.NewFetchFailedError("failed to fetch notifications", err)
	}
	return out, nil
}

// MarkNotificationRead flips a notification's read flag
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) (*entities.Notification, error) {
	endpoint := fmt.Sprintf("%s/notifications/mark-as-read/%d", c.baseURL, notificationID)
	out := &entities.Notification{}
	if err := c.doJSON(ctx, http.MethodPut, endpoint, out); err != nil {
		return nil, apperrors.NewActionFailedError("failed to mark notification read", err)
	}
	return out, nil
}

// getJSON performs an idempotent GET with bounded retries
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	return retry.Do(ctx, c.readRetry, func() error {
		return c.doJSON(ctx, http.MethodGet, endpoint, out)
	})
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("consult backend returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	return nil
}
