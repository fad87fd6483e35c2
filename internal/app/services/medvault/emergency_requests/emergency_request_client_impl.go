package emergencyRequests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/dto/requests"
	"medvault-client/internal/pkg/dto/responses"
	"medvault-client/internal/pkg/exceptions"
	"medvault-client/internal/pkg/utils"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxErrorBodyBytes bounds how much of a failed response is read for its error field.
const maxErrorBodyBytes = 64 << 10

type emergencyRequestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewEmergencyRequestClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.EmergencyRequestClient {
	limit := rate.Inf
	if perMinute := internalConfig.Emergency.MaxRequestsPerMinute; perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	burst := internalConfig.Emergency.RequestBurst
	if burst <= 0 {
		burst = 1
	}

	return &emergencyRequestClient{
		BaseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Emergency.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

func (c *emergencyRequestClient) SendEmergencyRequest(ctx context.Context, identity *models.Identity, payload models.EmergencyRequestPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	fields := payload.Fields()
	c.Log.Info("emergencyRequestClient.SendEmergencyRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, payload.UserID()),
		zap.String(constvars.LoggingUrgencyLevelKey, fields.UrgencyLevel.String()),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		c.Log.Error("emergencyRequestClient.SendEmergencyRequest rate limiter wait failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRateLimiterWait(err)
	}

	requestJSON, err := json.Marshal(requests.EmergencyRequest{
		UrgencyLevel:       fields.UrgencyLevel.String(),
		Symptoms:           fields.Symptoms,
		PatientNotes:       fields.PatientNotes,
		ContactNumber:      fields.ContactNumber,
		Location:           fields.Location,
		MedicalHistory:     fields.MedicalHistory,
		Allergies:          fields.Allergies,
		CurrentMedications: fields.CurrentMedications,
		Timestamp:          utils.FormatEmergencyTimestamp(payload.Timestamp()),
	})
	if err != nil {
		c.Log.Error("emergencyRequestClient.SendEmergencyRequest error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := c.BaseUrl + fmt.Sprintf(constvars.EndpointPatientEmergencyRequest, url.PathEscape(payload.UserID()))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("emergencyRequestClient.SendEmergencyRequest error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)
	req.Header.Set(constvars.HeaderUserAgent, constvars.ClientUserAgent)
	if identity != nil && identity.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+identity.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("emergencyRequestClient.SendEmergencyRequest error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		if isTimeout(err) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err, transportMessage(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readErrorMessage(resp.Body, constvars.ErrClientFailedToSendEmergency)
		c.Log.Error("emergencyRequestClient.SendEmergencyRequest backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("error_message", message),
		)
		return exceptions.ErrUnexpectedStatus(resp.StatusCode, endpoint, message)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))

	c.Log.Info("emergencyRequestClient.SendEmergencyRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, payload.UserID()),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}

// readErrorMessage extracts the backend's error field, or returns fallback
// when the body is empty or not the expected JSON.
func readErrorMessage(body io.Reader, fallback string) string {
	bodyBytes, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return fallback
	}

	var errorBody responses.ErrorBody
	err = json.Unmarshal(bodyBytes, &errorBody)
	if err != nil || strings.TrimSpace(errorBody.Error) == "" {
		return fallback
	}
	return errorBody.Error
}

// transportMessage is the downstream error text without the method and URL
// prefix added by net/http.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if message := strings.TrimSpace(err.Error()); message != "" {
		return message
	}
	return constvars.ErrClientConnectivity
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
