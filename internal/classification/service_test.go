package classification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"smedecl/internal/classification/metrics"
	"smedecl/internal/industry"
	"smedecl/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	metrics *metrics.Metrics
	logs    *bytes.Buffer
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewService(logger, s.metrics)
}

func (s *ServiceSuite) TestClassifyRecordsOutcome() {
	result, err := s.service.Classify(context.Background(), industry.Manufacturing, NewMetrics(500, 5000, 10000))

	s.Require().NoError(err)
	s.Equal(TierMedium, result.Tier)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.Outcome.WithLabelValues("manufacturing", "medium")))
	s.Equal(0.0, promtest.ToFloat64(s.metrics.UnknownIndustry))
	s.Contains(s.logs.String(), "enterprise classified")
}

func (s *ServiceSuite) TestClassifyUnknownIndustry() {
	result, err := s.service.Classify(context.Background(), "mining", Metrics{})

	s.Nil(result)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.UnknownIndustry))
	s.Contains(s.logs.String(), "classification rejected")
}

func (s *ServiceSuite) TestStandard() {
	std, err := s.service.Standard(context.Background(), industry.Construction)
	s.Require().NoError(err)
	s.Equal("建筑业", std.Name)

	_, err = s.service.Standard(context.Background(), "mining")
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.UnknownIndustry))
}

func (s *ServiceSuite) TestIndustries() {
	s.Equal(industry.ListAll(), s.service.Industries(context.Background()))
}

func (s *ServiceSuite) TestNilMetricsAreTolerated() {
	svc := NewService(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)

	result, err := svc.Classify(context.Background(), industry.Other, NewMetrics(150, 0, 0))
	s.Require().NoError(err)
	s.Equal(TierMedium, result.Tier)
}
