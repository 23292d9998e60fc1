package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"outreach-tracker/internal/config"
	"outreach-tracker/internal/models"
)

// MySQLStore is the GORM-backed relational backend. The store identity is
// the auto-increment primary key rendered as a decimal string.
type MySQLStore struct {
	db *gorm.DB
}

type companyRow struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	ClientID string `gorm:"column:client_id;type:varchar(32);not null;index"`
	SerialNo int    `gorm:"column:serial_no;not null;index"`

	CompanyName     string `gorm:"column:company_name;type:varchar(255);not null"`
	CompanyDetail   string `gorm:"column:company_detail;type:text"`
	CompanyContact  string `gorm:"column:company_contact;type:varchar(100)"`
	CompanyMail     string `gorm:"column:company_mail;type:varchar(255)"`
	CompanyLocation string `gorm:"column:company_location;type:varchar(255)"`
	CompanyWebsite  string `gorm:"column:company_website;type:varchar(255)"`

	MailSent  string `gorm:"column:mail_sent;type:varchar(20);not null;default:'Not Sent'"`
	Interview string `gorm:"column:interview;type:varchar(20);not null;default:'No Idea'"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (companyRow) TableName() string {
	return "companies"
}

type snapshotRow struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SnapshotAt  time.Time `gorm:"column:snapshot_at;not null;uniqueIndex"`
	Total       int       `gorm:"column:total;not null"`
	MailSent    int       `gorm:"column:mail_sent;not null"`
	Interviewed int       `gorm:"column:interviewed;not null"`
	Pending     int       `gorm:"column:pending;not null"`
}

func (snapshotRow) TableName() string {
	return "outreach_snapshots"
}

func (r *companyRow) toModel() models.Company {
	return models.Company{
		StoreID:         strconv.FormatUint(uint64(r.ID), 10),
		ClientID:        r.ClientID,
		SerialNo:        r.SerialNo,
		CompanyName:     r.CompanyName,
		CompanyDetail:   r.CompanyDetail,
		CompanyContact:  r.CompanyContact,
		CompanyMail:     r.CompanyMail,
		CompanyLocation: r.CompanyLocation,
		CompanyWebsite:  r.CompanyWebsite,
		MailSent:        models.MailStatus(r.MailSent),
		Interview:       models.InterviewStatus(r.Interview),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NewMySQLStore connects via GORM and migrates the schema.
func NewMySQLStore(cfg config.MySQLConfig) (*MySQLStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&companyRow{}, &snapshotRow{}); err != nil {
		return nil, err
	}

	return &MySQLStore{db: db}, nil
}

// ListAll returns every company sorted by serialNo ascending.
func (s *MySQLStore) ListAll(ctx context.Context) ([]models.Company, error) {
	var rows []companyRow
	if err := s.db.WithContext(ctx).Order("serial_no ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	companies := make([]models.Company, 0, len(rows))
	for i := range rows {
		companies = append(companies, rows[i].toModel())
	}
	return companies, nil
}

// Insert stores a new company and returns the assigned primary key.
func (s *MySQLStore) Insert(ctx context.Context, company models.Company) (string, error) {
	row := companyRow{
		ClientID:        company.ClientID,
		SerialNo:        company.SerialNo,
		CompanyName:     company.CompanyName,
		CompanyDetail:   company.CompanyDetail,
		CompanyContact:  company.CompanyContact,
		CompanyMail:     company.CompanyMail,
		CompanyLocation: company.CompanyLocation,
		CompanyWebsite:  company.CompanyWebsite,
		MailSent:        string(company.MailSent),
		Interview:       string(company.Interview),
		CreatedAt:       company.CreatedAt,
		UpdatedAt:       company.UpdatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(row.ID), 10), nil
}

// Update sets the translated columns on one row. Unknown field names are
// dropped, matching the set-fields merge contract.
func (s *MySQLStore) Update(ctx context.Context, storeID string, fields map[string]any) (int64, error) {
	id, err := parseRowID(storeID)
	if err != nil {
		return 0, err
	}

	updates := make(map[string]any)
	for key, value := range fields {
		if column, ok := columnForField[key]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).Model(&companyRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes one row by id; a missing id yields count 0.
func (s *MySQLStore) Delete(ctx context.Context, storeID string) (int64, error) {
	id, err := parseRowID(storeID)
	if err != nil {
		return 0, err
	}

	result := s.db.WithContext(ctx).Delete(&companyRow{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SaveSnapshot upserts the day's aggregate stats row.
func (s *MySQLStore) SaveSnapshot(ctx context.Context, snap models.OutreachSnapshot) error {
	day := snap.SnapshotAt.Truncate(24 * time.Hour)
	row := snapshotRow{
		SnapshotAt:  day,
		Total:       snap.Total,
		MailSent:    snap.MailSent,
		Interviewed: snap.Interviewed,
		Pending:     snap.Pending,
	}

	var existing snapshotRow
	err := s.db.WithContext(ctx).Where("snapshot_at = ?", day).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return s.db.WithContext(ctx).Create(&row).Error
	} else if err != nil {
		return err
	}

	row.ID = existing.ID
	return s.db.WithContext(ctx).Save(&row).Error
}

// Ping verifies the connection.
func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseRowID(storeID string) (uint64, error) {
	id, err := strconv.ParseUint(storeID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, storeID)
	}
	return id, nil
}
