package doctorEmergencies

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
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

const acceptedFallbackMessage = "Emergency request accepted successfully!"

type triageClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Location   *time.Location
	Log        *zap.Logger
}

func NewTriageClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TriageClient {
	loc, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("NewTriageClient unknown timezone, using UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		loc = time.UTC
	}

	return &triageClient{
		BaseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Triage.RequestTimeoutInSeconds) * time.Second,
		},
		Location: loc,
		Log:      logger,
	}
}

func (c *triageClient) ListEmergencyRequests(ctx context.Context, doctor *models.Identity) ([]models.EmergencyRequestSummary, error) {
	requestID := requestIDFrom(ctx)
	c.Log.Info("triageClient.ListEmergencyRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)

	endpoint := c.BaseUrl + fmt.Sprintf(constvars.EndpointDoctorEmergencyRequests, url.PathEscape(doctor.ID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("triageClient.ListEmergencyRequests error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, requestID, doctor)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("triageClient.ListEmergencyRequests error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ErrClientFailedToLoadEmergencies)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(bodyBytes, constvars.ErrClientFailedToLoadEmergencies)
		c.Log.Error("triageClient.ListEmergencyRequests backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUnexpectedStatus(resp.StatusCode, endpoint, message)
	}

	var items []responses.EmergencyRequestItem
	err = json.Unmarshal(bodyBytes, &items)
	if err != nil {
		c.Log.Error("triageClient.ListEmergencyRequests error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	summaries := make([]models.EmergencyRequestSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, c.toSummary(requestID, item))
	}

	c.Log.Info("triageClient.ListEmergencyRequests succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(summaries)),
	)
	return summaries, nil
}

func (c *triageClient) AcceptEmergency(ctx context.Context, doctor *models.Identity, emergencyID int64, proposedTime *string) (string, error) {
	requestID := requestIDFrom(ctx)
	c.Log.Info("triageClient.AcceptEmergency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.Int64(constvars.LoggingEmergencyIDKey, emergencyID),
	)

	if proposedTime != nil && strings.TrimSpace(*proposedTime) == "" {
		proposedTime = nil
	}
	requestJSON, err := json.Marshal(requests.AcceptEmergency{ProposedTime: proposedTime})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := c.BaseUrl + fmt.Sprintf(constvars.EndpointDoctorAcceptEmergency,
		url.PathEscape(doctor.ID), strconv.FormatInt(emergencyID, 10))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("triageClient.AcceptEmergency error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, requestID, doctor)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("triageClient.AcceptEmergency error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return "", transportError(err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(bodyBytes, constvars.ErrClientFailedToAcceptEmergency)
		c.Log.Error("triageClient.AcceptEmergency backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("error_message", message),
		)
		return "", exceptions.ErrUnexpectedStatus(resp.StatusCode, endpoint, message)
	}

	var accepted responses.AcceptEmergency
	message := acceptedFallbackMessage
	if json.Unmarshal(bodyBytes, &accepted) == nil && strings.TrimSpace(accepted.Message) != "" {
		message = accepted.Message
	}

	c.Log.Info("triageClient.AcceptEmergency succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEmergencyIDKey, emergencyID),
	)
	return message, nil
}

func (c *triageClient) setHeaders(req *http.Request, requestID string, doctor *models.Identity) {
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)
	req.Header.Set(constvars.HeaderUserAgent, constvars.ClientUserAgent)
	if doctor.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+doctor.Token)
	}
}

func (c *triageClient) toSummary(requestID string, item responses.EmergencyRequestItem) models.EmergencyRequestSummary {
	level, ok := models.ParseUrgencyLevel(item.UrgencyLevel)
	if !ok {
		level = models.UrgencyLevel(strings.ToUpper(strings.TrimSpace(item.UrgencyLevel)))
	}

	var createdAt time.Time
	if item.CreatedAt != "" {
		parsed, err := utils.ParseBackendTime(item.CreatedAt, c.Location)
		if err != nil {
			c.Log.Warn("triageClient.toSummary unparsable createdAt",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingEmergencyIDKey, item.ID),
				zap.String("created_at", item.CreatedAt),
			)
		} else {
			createdAt = parsed
		}
	}

	return models.EmergencyRequestSummary{
		ID:            item.ID,
		PatientName:   item.PatientName,
		Symptoms:      item.Symptoms,
		PatientNotes:  item.PatientNotes,
		ContactNumber: item.ContactNumber,
		UrgencyLevel:  level,
		CreatedAt:     createdAt,
	}
}

func requestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return requestID
}

func errorMessage(body []byte, fallback string) string {
	var errorBody responses.ErrorBody
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &errorBody) != nil {
		return fallback
	}
	if strings.TrimSpace(errorBody.Error) == "" {
		return fallback
	}
	return errorBody.Error
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err, constvars.ErrClientConnectivity)
}
