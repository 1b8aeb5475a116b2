package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/nivanov045/luhn/internal/checksums"
	"github.com/nivanov045/luhn/internal/log"
	"github.com/nivanov045/luhn/internal/models"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Check never fails: a number with non-digit characters is simply invalid.
func (s *Service) Check(_ context.Context, number string) models.Verdict {
	verdict := models.Verdict{Number: number, Valid: checksums.Luhn(number)}
	log.Debug(fmt.Sprintf("Number '%v' checked: valid=%v", number, verdict.Valid))
	return verdict
}

func (s *Service) CheckJSON(ctx context.Context, number string) ([]byte, error) {
	response, err := json.Marshal(s.Check(ctx, number))
	if err != nil {
		return nil, errors.Wrap(err, "marshal verdict")
	}
	return response, nil
}

// CheckRequest accepts either {"number": "..."} or the bare number as the body.
// A bare body is checked verbatim, including any whitespace.
func (s *Service) CheckRequest(ctx context.Context, request []byte) ([]byte, error) {
	if !bytes.HasPrefix(request, []byte("{")) {
		return s.CheckJSON(ctx, string(request))
	}

	var checkRequest models.CheckRequest
	if err := json.Unmarshal(request, &checkRequest); err != nil {
		return nil, fmt.Errorf("%w: decode check request: %w", ErrIncorrectFormat, err)
	}
	return s.CheckJSON(ctx, checkRequest.Number)
}
