// Package client is the programmatic submitter: it plays the role the
// browser form plays in front of the intake API, running local validation,
// evidence uploads and the final POST as one cancellable pipeline.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/models"
	"github.com/ifrashafqat/job-portal/internal/validation"
)

// State is the orchestrator's submission phase.
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StateUploadingEvidence State = "uploading_evidence"
	StateSubmitting        State = "submitting"
	StateSucceeded         State = "succeeded"
)

// Uploader uploads one document and returns its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}

// EvidenceFile is a newly selected document image.
type EvidenceFile struct {
	Data     []byte
	MimeType string
}

// Submission is one form's worth of data. The evidence files are optional;
// a nil file with a URL already on the form means a previous upload is
// being reused and no network call happens for that field.
type Submission struct {
	Form        dtos.ApplicationRequest
	TaxIDFile   *EvidenceFile
	LicenseFile *EvidenceFile
}

// Orchestrator drives one submission at a time through
// validate -> upload evidence -> submit.
type Orchestrator struct {
	Endpoint   string // full URL of the intake endpoint
	Uploader   Uploader
	HTTPClient *http.Client
	Logger     *zap.Logger

	inFlight atomic.Bool
	mu       sync.RWMutex
	state    State
}

// NewOrchestrator creates an orchestrator for the given intake endpoint.
func NewOrchestrator(endpoint string, up Uploader, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Endpoint:   endpoint,
		Uploader:   up,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logger,
		state:      StateIdle,
	}
}

// State returns the current submission phase.
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// submitResponse mirrors the server envelope with a typed Data field.
type submitResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []models.FieldError `json:"details"`
	Data    *models.Application `json:"data"`
	Source  string              `json:"source"`
}

// Submit runs the whole pipeline for one submission. Field errors carry
// per-field messages, from local validation (nothing was sent) or from the
// server's own re-validation, verbatim; the first entry is the field to
// focus. Any error returns the orchestrator to Idle with the form values
// untouched, so the caller can retry. A second Submit while one is in
// flight fails immediately with ErrSubmissionInFlight.
func (o *Orchestrator) Submit(ctx context.Context, sub *Submission) (*models.Application, []models.FieldError, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, nil, models.ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	o.setState(StateValidating)
	result := validation.ValidateApplication(&sub.Form)
	if !result.Valid {
		o.setState(StateIdle)
		return nil, result.Errors, fmt.Errorf("validation failed on %d field(s)", len(result.Errors))
	}

	// Evidence uploads, only for fields with a newly selected file.
	// Either failure aborts the whole submission before anything is sent.
	if sub.TaxIDFile != nil {
		o.setState(StateUploadingEvidence)
		url, err := o.Uploader.Upload(ctx, sub.TaxIDFile.Data, sub.TaxIDFile.MimeType)
		if err != nil {
			o.setState(StateIdle)
			return nil, nil, fmt.Errorf("tax ID document upload: %w", err)
		}
		sub.Form.TaxIDImageURL = url
	}
	if sub.LicenseFile != nil {
		o.setState(StateUploadingEvidence)
		url, err := o.Uploader.Upload(ctx, sub.LicenseFile.Data, sub.LicenseFile.MimeType)
		if err != nil {
			o.setState(StateIdle)
			return nil, nil, fmt.Errorf("license document upload: %w", err)
		}
		sub.Form.LicenseImageURL = url
	}

	o.setState(StateSubmitting)
	payload := assemblePayload(&sub.Form)
	app, details, err := o.post(ctx, payload)
	if err != nil {
		o.setState(StateIdle)
		return nil, details, err
	}

	o.setState(StateSucceeded)
	return app, nil, nil
}

// assemblePayload builds the final wire payload without mutating the
// caller's form: trimmed text fields, lower-cased email.
func assemblePayload(form *dtos.ApplicationRequest) *models.Application {
	return validation.BuildApplication(form)
}

func (o *Orchestrator) post(ctx context.Context, payload *models.Application) (*models.Application, []models.FieldError, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("build intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("intake request: %w", err)
	}
	defer resp.Body.Close()

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, fmt.Errorf("decode intake response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusCreated || !out.Success {
		// Server-side errors come back verbatim: the envelope message as
		// the error, the per-field details untouched.
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("submission failed with status %d", resp.StatusCode)
		}
		if len(out.Details) > 0 {
			return nil, out.Details, &models.AppError{Kind: models.KindValidation, Message: msg}
		}
		return nil, nil, &models.AppError{Kind: models.KindPersistence, Message: msg}
	}

	if out.Data == nil {
		return nil, nil, &models.AppError{Kind: models.KindPersistence, Message: "server returned no application record"}
	}
	if o.Logger != nil {
		o.Logger.Info("application submitted",
			zap.String("id", out.Data.ID),
			zap.String("source", out.Source))
	}
	return out.Data, nil, nil
}
