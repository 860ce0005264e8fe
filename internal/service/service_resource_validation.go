package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errEmptyBody = errors.New("empty body")

// ResourceValidationService rejects empty ids and malformed JSON before they
// reach the wrapped service. Valid documents are forwarded compacted.
type ResourceValidationService struct {
	inner ResourceService
}

func NewResourceValidationService() ResourceServiceWrapper {
	return &ResourceValidationService{}
}

func (v *ResourceValidationService) GetResource(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyResourceID
	}

	return v.inner.GetResource(ctx, id)
}

func (v *ResourceValidationService) PutResource(ctx context.Context, id string, value json.RawMessage) error {
	if id == "" {
		return ErrEmptyResourceID
	}

	compacted, err := compactJSON(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return v.inner.PutResource(ctx, id, compacted)
}

func (v *ResourceValidationService) DeleteResource(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyResourceID
	}

	return v.inner.DeleteResource(ctx, id)
}

func (v *ResourceValidationService) Wrap(wrapped ResourceService) ResourceService {
	v.inner = wrapped
	return v
}

// compactJSON fails on empty input, trailing garbage and anything else
// encoding/json would refuse.
func compactJSON(value json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(value)) == 0 {
		return nil, errEmptyBody
	}

	buf := &bytes.Buffer{}
	if err := json.Compact(buf, value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
