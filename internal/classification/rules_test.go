package classification

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"smedecl/internal/industry"
	"smedecl/pkg/platform/sentinel"
)

func ptr(v float64) *float64 {
	return &v
}

func mustClassify(t *testing.T, id industry.ID, m Metrics) *Result {
	t.Helper()
	result, err := Classify(id, m)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		industry industry.ID
		metrics  Metrics
		expected Tier
	}{
		{"manufacturing medium", industry.Manufacturing, NewMetrics(500, 5000, 10000), TierMedium},
		{"manufacturing small", industry.Manufacturing, NewMetrics(50, 500, 1000), TierSmall},
		{"manufacturing micro", industry.Manufacturing, NewMetrics(5, 100, 200), TierMicro},
		{"employees below small floor blocks medium", industry.Manufacturing, NewMetrics(15, 5000, 10000), TierMicro},
		{"employees at medium max", industry.Manufacturing, NewMetrics(1000, 5000, 10000), TierLarge},
		{"revenue at medium max", industry.Manufacturing, NewMetrics(500, 40000, 10000), TierLarge},
		{"retail medium", industry.Retail, NewMetrics(100, 1000, 5000), TierMedium},
		{"retail small", industry.Retail, NewMetrics(20, 200, 1000), TierSmall},
		{"retail revenue too low", industry.Retail, NewMetrics(50, 50, 1000), TierMicro},
		{"construction medium without employees", industry.Construction, NewMetrics(0, 10000, 6000), TierMedium},
		{"construction small", industry.Construction, NewMetrics(0, 1000, 1000), TierSmall},
		{"construction assets too low", industry.Construction, NewMetrics(0, 5000, 200), TierMicro},
		{"construction revenue at max", industry.Construction, NewMetrics(0, 80000, 5000), TierLarge},
		{"construction assets at max", industry.Construction, NewMetrics(0, 5000, 80000), TierLarge},
		{"other medium", industry.Other, NewMetrics(150, 0, 0), TierMedium},
		{"other small", industry.Other, NewMetrics(50, 0, 0), TierSmall},
		{"other micro", industry.Other, NewMetrics(5, 0, 0), TierMicro},
		{"other at max", industry.Other, NewMetrics(300, 0, 0), TierLarge},
		{"just below every max", industry.Manufacturing, NewMetrics(999, 39999, 10000), TierMedium},
		{"exactly at medium floor", industry.Manufacturing, NewMetrics(300, 2000, 10000), TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustClassify(t, tt.industry, tt.metrics)
			assert.Equal(t, tt.expected, result.Tier)
			assert.Equal(t, tt.industry, result.Industry)
			assert.Contains(t, result.Reasoning, Regulation)
			assert.Contains(t, result.Reasoning, tt.expected.Name())
		})
	}
}

func TestClassifyAllZeroIsMicro(t *testing.T) {
	for _, s := range industry.ListAll() {
		result := mustClassify(t, s.ID, NewMetrics(0, 0, 0))
		assert.Equal(t, TierMicro, result.Tier, "industry %s", s.ID)

		empty := mustClassify(t, s.ID, Metrics{})
		assert.Equal(t, result, empty, "unset metrics must behave as zero for %s", s.ID)
	}
}

func TestClassifyMediumMaxIsLarge(t *testing.T) {
	for _, s := range industry.ListAll() {
		std, err := industry.Lookup(s.ID)
		require.NoError(t, err)

		for _, metric := range std.Medium.Bounded() {
			upper, ok := std.Medium.Range(metric).Upper()
			if !ok {
				continue
			}
			m := metricsWith(metric, upper)
			result := mustClassify(t, s.ID, m)

			assert.Equal(t, TierLarge, result.Tier, "%s/%s at %v", s.ID, metric, upper)
			assert.True(t, result.Criteria[metric].Satisfied)
			assert.Equal(t, "超过"+formatNumber(upper)+metric.Unit(), result.Criteria[metric].Bounds)
		}
	}
}

func TestClassifyMediumMinIsMedium(t *testing.T) {
	for _, s := range industry.ListAll() {
		std, err := industry.Lookup(s.ID)
		require.NoError(t, err)

		var m Metrics
		for _, metric := range std.Medium.Bounded() {
			m = m.with(metric, std.Medium.Range(metric).Lower())
		}

		result := mustClassify(t, s.ID, m)
		assert.Equal(t, TierMedium, result.Tier, "industry %s", s.ID)
		for metric, c := range result.Criteria {
			assert.True(t, c.Satisfied, "%s/%s", s.ID, metric)
		}
	}
}

// The large check ignores the medium combinator: one exceeded bound is enough
// even when the other metric sits in the micro range.
func TestLargeOverridesCombinator(t *testing.T) {
	result := mustClassify(t, industry.Manufacturing, NewMetrics(5, 50000, 0))

	assert.Equal(t, TierLarge, result.Tier)
	require.Len(t, result.Criteria, 2)
	assert.Equal(t, Criterion{Value: 5, Bounds: "超过1000人", Satisfied: false}, result.Criteria[industry.Employees])
	assert.Equal(t, Criterion{Value: 50000, Bounds: "超过40000万元", Satisfied: true}, result.Criteria[industry.Revenue])
	assert.Equal(t,
		"根据工信部联企业〔2011〕300号标准，该企业属于大型企业，营业收入50000万元（超过中型企业标准40000万元），超过中型企业标准上限",
		result.Reasoning)
}

func TestLargeReasoningListsEveryExceededMetric(t *testing.T) {
	result := mustClassify(t, industry.Manufacturing, NewMetrics(1000, 40000, 0))

	assert.Equal(t, TierLarge, result.Tier)
	assert.Equal(t,
		"根据工信部联企业〔2011〕300号标准，该企业属于大型企业，"+
			"从业人员1000人（超过中型企业标准1000人）；营业收入40000万元（超过中型企业标准40000万元），超过中型企业标准上限",
		result.Reasoning)
}

func TestLargeReasoningFallback(t *testing.T) {
	unbounded := industry.TierRule{
		Employees:  &industry.Range{Min: ptr(100)},
		Combinator: industry.All,
	}

	assert.False(t, exceedsMedium(unbounded, NewMetrics(1e9, 0, 0)))
	assert.Empty(t, largeCriteria(unbounded, NewMetrics(1e9, 0, 0)))
	assert.Equal(t,
		"根据工信部联企业〔2011〕300号标准，该企业属于大型企业，超过中型企业标准上限",
		largeReasoning(unbounded, NewMetrics(1e9, 0, 0)))
}

func TestMediumReasoningAndCriteria(t *testing.T) {
	result := mustClassify(t, industry.Manufacturing, NewMetrics(500, 5000, 10000))

	assert.Equal(t,
		"根据工信部联企业〔2011〕300号标准，该企业属于中型企业，同时满足以下条件："+
			"从业人员500人（标准：300至1000人）；营业收入5000万元（标准：2000至40000万元）",
		result.Reasoning)

	require.Len(t, result.Criteria, 2)
	assert.Equal(t, Criterion{Value: 500, Bounds: "300至1000人", Satisfied: true}, result.Criteria[industry.Employees])
	assert.Equal(t, Criterion{Value: 5000, Bounds: "2000至40000万元", Satisfied: true}, result.Criteria[industry.Revenue])
	_, hasAssets := result.Criteria[industry.Assets]
	assert.False(t, hasAssets, "manufacturing does not evaluate assets")
}

func TestMicroIsCatchAll(t *testing.T) {
	// employees in the medium band, revenue in the small band: every tier rule fails.
	result := mustClassify(t, industry.Manufacturing, NewMetrics(500, 1000, 0))

	assert.Equal(t, TierMicro, result.Tier)
	for metric, c := range result.Criteria {
		assert.False(t, c.Satisfied, "micro check for %s should fail", metric)
	}
	assert.Equal(t,
		"根据工信部联企业〔2011〕300号标准，该企业属于微型企业，满足其中任一以下条件："+
			"从业人员500人（标准：0至20人）；营业收入1000万元（标准：0至300万元）",
		result.Reasoning)
}

func TestMissingMetricTreatedAsZero(t *testing.T) {
	result := mustClassify(t, industry.Manufacturing, Metrics{Employees: ptr(500)})

	assert.Equal(t, TierMicro, result.Tier)
	assert.Equal(t, Criterion{Value: 0, Bounds: "0至300万元", Satisfied: true}, result.Criteria[industry.Revenue])
}

func TestFractionalValuesRenderShortest(t *testing.T) {
	result := mustClassify(t, industry.Manufacturing, Metrics{Employees: ptr(500), Revenue: ptr(5000.5)})

	assert.Equal(t, TierMedium, result.Tier)
	assert.Contains(t, result.Reasoning, "营业收入5000.5万元")
}

func TestClassifyUnknownIndustry(t *testing.T) {
	result, err := Classify("mining", NewMetrics(1, 1, 1))

	assert.Nil(t, result)
	require.Error(t, err)
	var unknown *industry.UnknownIndustryError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, industry.ID("mining"), unknown.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestEmptyRuleNeverMatches(t *testing.T) {
	assert.False(t, matches(industry.TierRule{Combinator: industry.All}, NewMetrics(1, 1, 1)))
	assert.False(t, matches(industry.TierRule{Combinator: industry.Any}, NewMetrics(1, 1, 1)))
}

func TestClassifyIsIdempotent(t *testing.T) {
	first := mustClassify(t, industry.Warehousing, NewMetrics(150, 2000, 0))
	second := mustClassify(t, industry.Warehousing, NewMetrics(150, 2000, 0))

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestClassifyConcurrentCallers(t *testing.T) {
	want := mustClassify(t, industry.Software, NewMetrics(120, 1500, 0))

	var g errgroup.Group
	var mu sync.Mutex
	results := make([]*Result, 0, 64)
	for n := 0; n < 64; n++ {
		g.Go(func() error {
			r, err := Classify(industry.Software, NewMetrics(120, 1500, 0))
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func metricsWith(metric industry.Metric, v float64) Metrics {
	return Metrics{}.with(metric, v)
}

func (m Metrics) with(metric industry.Metric, v float64) Metrics {
	switch metric {
	case industry.Employees:
		m.Employees = &v
	case industry.Revenue:
		m.Revenue = &v
	case industry.Assets:
		m.Assets = &v
	}
	return m
}
