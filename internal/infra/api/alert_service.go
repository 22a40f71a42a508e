package api

import (
	"context"
	"net/http"
	"net/url"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

const alertsPath = "/api/alerts"

type alertService struct {
	requester service.Requester
	validate  *validator.Validate
}

// NewAlertService creates the alert resource service.
func NewAlertService(params Params) service.AlertService {
	return &alertService{
		requester: params.Requester,
		validate:  validatorOrDefault(params.Validate),
	}
}

func (s *alertService) GetAlert(ctx context.Context, alertID int64) (*entity.Alert, error) {
	var alert entity.Alert
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodGet, Path: alertPath(alertID)}, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, params service.AlertListParams) (*entity.Page[entity.Alert], error) {
	q := url.Values{}
	if params.CompanyID > 0 {
		q.Set("companyId", id(params.CompanyID))
	}

	return s.list(ctx, alertsPath, pageQuery(q, params.Page, params.Size))
}

func (s *alertService) ListAlertsByRange(ctx context.Context, params service.AlertRangeParams) (*entity.Page[entity.Alert], error) {
	q := url.Values{}
	if params.CompanyID > 0 {
		q.Set("companyId", id(params.CompanyID))
	}
	if params.From != "" {
		q.Set("from", params.From)
	}
	if params.To != "" {
		q.Set("to", params.To)
	}

	return s.list(ctx, alertsPath+"/range", pageQuery(q, params.Page, params.Size))
}

func (s *alertService) CreateAlert(ctx context.Context, input service.AlertInput) (*entity.Alert, error) {
	if err := validateRequest(s.validate, input); err != nil {
		return nil, err
	}

	var alert entity.Alert
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodPost, Path: alertsPath, Body: input}, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (s *alertService) UpdateAlert(ctx context.Context, alertID int64, input service.AlertInput) (*entity.Alert, error) {
	if err := validateRequest(s.validate, input); err != nil {
		return nil, err
	}

	var alert entity.Alert
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodPut, Path: alertPath(alertID), Body: input}, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, alertID int64) error {
	return s.requester.Do(ctx, service.Request{Method: http.MethodDelete, Path: alertPath(alertID)}, nil)
}

// AcknowledgeAlert patches the acknowledge sub-resource and returns the updated alert.
func (s *alertService) AcknowledgeAlert(ctx context.Context, companyID, alertID int64) (*entity.Alert, error) {
	req := service.Request{Method: http.MethodPatch, Path: alertPath(alertID) + "/acknowledge"}
	if companyID > 0 {
		req.Query = url.Values{"companyId": []string{id(companyID)}}
	}

	var alert entity.Alert
	if err := s.requester.Do(ctx, req, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (s *alertService) list(ctx context.Context, path string, q url.Values) (*entity.Page[entity.Alert], error) {
	var page entity.Page[entity.Alert]
	if err := s.requester.Do(ctx, service.Request{Method: http.MethodGet, Path: path, Query: q}, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func alertPath(alertID int64) string {
	return alertsPath + "/" + id(alertID)
}
