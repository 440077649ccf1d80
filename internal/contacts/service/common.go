package service

import (
	"context"
	"errors"
	"log/slog"

	contactsmetrics "contacts/internal/contacts/metrics"
	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	dErrors "contacts/pkg/domain-errors"
	"contacts/pkg/requestcontext"
)

func errMissingRequest() error {
	return dErrors.New(dErrors.CodeMissingArgument, "request is required")
}

// errDuplicateCountryName is an argument error that still unwraps to sentinel.ErrAlreadyUsed.
func errDuplicateCountryName(err error) error {
	return &dErrors.Error{
		Code:    dErrors.CodeValidation,
		Field:   "name",
		Message: "country name already exists",
		Err:     err,
	}
}

// IsDuplicateName reports whether err came from a country name collision.
func IsDuplicateName(err error) bool {
	return errors.Is(err, sentinel.ErrAlreadyUsed) && dErrors.HasCode(err, dErrors.CodeValidation)
}

// wrapStoreErr translates non-sentinel store failures; callers handle ErrNotFound first.
func wrapStoreErr(err error, action string) error {
	if dErrors.HasCode(err, dErrors.CodeTimeout) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, action+": context cancelled")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

// mutationEmitter writes the audit log line and publishes the change event.
// Neither step can fail the mutation.
type mutationEmitter struct {
	logger    *slog.Logger
	publisher EventPublisher
	metrics   *contactsmetrics.Metrics
}

func newMutationEmitter(cfg *serviceConfig) *mutationEmitter {
	return &mutationEmitter{logger: cfg.logger, publisher: cfg.publisher, metrics: cfg.metrics}
}

func (e *mutationEmitter) audit(ctx context.Context, event string, attributes ...any) {
	if e.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	attributes = append(attributes, "event", event, "log_type", "audit")
	e.logger.InfoContext(ctx, event, attributes...)
}

func (e *mutationEmitter) publish(ctx context.Context, event models.PersonEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.recordPublish("error")
		if e.logger != nil {
			e.logger.ErrorContext(ctx, "failed to publish person event",
				"event", string(event.Type),
				"person_id", event.PersonID,
				"error", err,
			)
		}
		return
	}
	e.recordPublish("ok")
}

func (e *mutationEmitter) recordPublish(outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordEventPublish(outcome)
}
