package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cbs-gateway/internal/validators"
	"github.com/MKhiriev/cbs-gateway/models"
)

// ProxyValidationService validates and sanitises request bodies before they
// reach the wrapped ProxyService.
type ProxyValidationService struct {
	inner     ProxyService
	validator validators.Validator
}

func NewProxyValidationService(validator validators.Validator) ProxyServiceWrapper {
	return &ProxyValidationService{
		validator: validator,
	}
}

// Wrap returns a copy of the validation service decorating inner.
func (v *ProxyValidationService) Wrap(inner ProxyService) ProxyService {
	return &ProxyValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

// Forward validates req.Body (a pointer to a request struct) in place. On
// failure the inner service is never called.
func (v *ProxyValidationService) Forward(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
	if req.Body != nil {
		if err := v.validator.Validate(ctx, req.Body); err != nil {
			return models.UpstreamResponse{}, fmt.Errorf("error during request body validation before forwarding: %w", err)
		}
	}

	return v.inner.Forward(ctx, req)
}
