package analytics

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=data_repo.go -destination=mock/data_repo_mock.go -package=mock
type DataRepository interface {
	Save(ctx context.Context, data *Data) error
	FindByMetricAndRange(ctx context.Context, companyID int64, metric MetricType, period PeriodType, from, to time.Time) ([]Data, error)
	FindByCompanyAndRange(ctx context.Context, companyID int64, period PeriodType, from, to time.Time) ([]Data, error)
	FindByDepartmentAndRange(ctx context.Context, companyID, departmentID int64, period PeriodType, from, to time.Time) ([]Data, error)
	FindByMetricsOnDate(ctx context.Context, companyID int64, metrics []MetricType, period PeriodType, date time.Time) ([]Data, error)
	FindLatestByMetric(ctx context.Context, companyID int64, metric MetricType, period PeriodType) (*Data, error)
	FindAvailableMetrics(ctx context.Context, companyID int64) ([]MetricType, error)
	FindRecent(ctx context.Context, companyID int64, since time.Time) ([]Data, error)
}

type dataRepository struct {
	db *gorm.DB
}

func NewDataRepository(db *gorm.DB) DataRepository {
	return &dataRepository{db: db}
}

func (r *dataRepository) Save(ctx context.Context, data *Data) error {
	return r.db.WithContext(ctx).Save(data).Error
}

func (r *dataRepository) FindByMetricAndRange(ctx context.Context, companyID int64, metric MetricType, period PeriodType, from, to time.Time) ([]Data, error) {
	var out []Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("metric_type = ? AND period_type = ?", metric, period).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *dataRepository) FindByCompanyAndRange(ctx context.Context, companyID int64, period PeriodType, from, to time.Time) ([]Data, error) {
	var out []Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("period_type = ?", period).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *dataRepository) FindByDepartmentAndRange(ctx context.Context, companyID, departmentID int64, period PeriodType, from, to time.Time) ([]Data, error) {
	var out []Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("department_id = ? AND period_type = ?", departmentID, period).
		Where("date BETWEEN ? AND ?", Day(from), Day(to)).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *dataRepository) FindByMetricsOnDate(ctx context.Context, companyID int64, metrics []MetricType, period PeriodType, date time.Time) ([]Data, error) {
	if len(metrics) == 0 {
		return []Data{}, nil
	}
	var out []Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("metric_type IN ? AND date = ? AND period_type = ?", metrics, Day(date), period).
		Find(&out).Error
	return out, err
}

func (r *dataRepository) FindLatestByMetric(ctx context.Context, companyID int64, metric MetricType, period PeriodType) (*Data, error) {
	var d Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("metric_type = ? AND period_type = ?", metric, period).
		Order("date DESC").
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dataRepository) FindAvailableMetrics(ctx context.Context, companyID int64) ([]MetricType, error) {
	var out []MetricType
	err := r.db.WithContext(ctx).Model(&Data{}).
		Scopes(tenant.Scope(companyID)).
		Distinct("metric_type").
		Order("metric_type ASC").
		Pluck("metric_type", &out).Error
	return out, err
}

func (r *dataRepository) FindRecent(ctx context.Context, companyID int64, since time.Time) ([]Data, error) {
	var out []Data
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("date >= ?", Day(since)).
		Order("date DESC").
		Find(&out).Error
	return out, err
}
