package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/api"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

// RemoteError is an unsuccessful envelope returned by the backend.
type RemoteError struct {
	Path    string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %s (status: %d)", e.Path, e.Message, e.Status)
}

// RemoteConfig tunes the REST client.
type RemoteConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	PageSize   int
}

// Remote reads records from the dashboard REST backend. Only patients,
// campaigns, call logs and dashboard stats are served remotely; the other
// collections list as empty.
type Remote struct {
	httpClient *resty.Client
	pageSize   int
	logger     *zap.Logger
}

// NewRemote creates a Remote source.
func NewRemote(cfg RemoteConfig, logger *zap.Logger) *Remote {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Remote{httpClient: client, pageSize: cfg.PageSize, logger: logger}
}

// SetAuthToken sends a bearer token with every request.
func (r *Remote) SetAuthToken(token string) {
	r.httpClient.SetAuthToken(token)
}

func listAll[T any](ctx context.Context, r *Remote, path string) ([]T, error) {
	out := []T{}
	for page := 1; ; page++ {
		var body api.Paginated[T]
		resp, err := r.httpClient.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"page":  strconv.Itoa(page),
				"limit": strconv.Itoa(r.pageSize),
			}).
			SetResult(&body).
			Get(path)
		if err != nil {
			return nil, fmt.Errorf("failed to call %s: %w", path, err)
		}
		if resp.IsError() {
			return nil, decodeError(resp, path)
		}

		out = append(out, body.Data...)
		if page >= body.TotalPages || len(body.Data) == 0 {
			break
		}
	}
	r.logger.Debug("Fetched remote records", zap.String("path", path), zap.Int("count", len(out)))
	return out, nil
}

func getOne[T any](ctx context.Context, r *Remote, method, path string) (T, error) {
	var zero T
	var body api.Response[T]
	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetResult(&body).
		Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("failed to call %s: %w", path, err)
	}
	if resp.IsError() {
		return zero, decodeError(resp, path)
	}
	if !body.Success {
		return zero, envelopeError(path, resp.StatusCode(), body.Error, body.Message)
	}
	return body.Data, nil
}

func decodeError(resp *resty.Response, path string) error {
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	var body api.Response[any]
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		return envelopeError(path, resp.StatusCode(), body.Error, body.Message)
	}
	return &RemoteError{Path: path, Status: resp.StatusCode(), Message: resp.Status()}
}

func envelopeError(path string, status int, errMsg, message string) error {
	msg := errMsg
	if msg == "" {
		msg = message
	}
	if msg == "" {
		msg = "request failed"
	}
	return &RemoteError{Path: path, Status: status, Message: msg}
}

func (r *Remote) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	return listAll[domain.Patient](ctx, r, "/patients")
}

func (r *Remote) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return listAll[domain.Campaign](ctx, r, "/campaigns")
}

func (r *Remote) ListCallLogs(ctx context.Context) ([]domain.CallLog, error) {
	return listAll[domain.CallLog](ctx, r, "/call-logs")
}

func (r *Remote) ListQueue(context.Context) ([]domain.CallQueueEntry, error) {
	return []domain.CallQueueEntry{}, nil
}

func (r *Remote) ListEvents(context.Context) ([]domain.CalendarEvent, error) {
	return []domain.CalendarEvent{}, nil
}

func (r *Remote) ListTasks(context.Context) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func (r *Remote) ListIncomingCalls(context.Context) ([]domain.IncomingCall, error) {
	return []domain.IncomingCall{}, nil
}

func (r *Remote) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	return getOne[domain.DashboardStats](ctx, r, resty.MethodGet, "/dashboard/stats")
}

// PatientByID fetches one patient.
func (r *Remote) PatientByID(ctx context.Context, id string) (domain.Patient, error) {
	return getOne[domain.Patient](ctx, r, resty.MethodGet, "/patients/"+id)
}

// ApplyCampaignAction posts the transition and returns the campaign as the
// backend now reports it.
func (r *Remote) ApplyCampaignAction(ctx context.Context, id string, action domain.CampaignAction) (domain.Campaign, error) {
	switch action {
	case domain.CampaignStart, domain.CampaignPause, domain.CampaignStop:
	default:
		return domain.Campaign{}, fmt.Errorf("unknown action %q: %w", action, domain.ErrInvalidTransition)
	}
	path := "/campaigns/" + id
	if _, err := getOne[any](ctx, r, resty.MethodPost, path+"/"+string(action)); err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) && remoteErr.Status == http.StatusConflict {
			return domain.Campaign{}, fmt.Errorf("%s: %w", remoteErr.Message, domain.ErrInvalidTransition)
		}
		return domain.Campaign{}, err
	}
	return getOne[domain.Campaign](ctx, r, resty.MethodGet, path)
}

var (
	_ Source          = (*Remote)(nil)
	_ CampaignUpdater = (*Remote)(nil)
)
