// Package store provides the document-store contract behind the /companies
// collection: list, insert, set-fields update, and delete, plus the daily
// stats snapshot sink. Three backends implement it; the server picks one
// from configuration.
package store

import (
	"context"
	"errors"
	"time"

	"outreach-tracker/internal/models"
)

// Store is the four-operation collection contract. Update applies a
// set-fields merge: absent fields stay untouched. Delete of an unknown id
// reports count 0, not an error. There is no batching and no transaction
// spanning calls.
type Store interface {
	ListAll(ctx context.Context) ([]models.Company, error)
	Insert(ctx context.Context, company models.Company) (string, error)
	Update(ctx context.Context, storeID string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, storeID string) (int64, error)
	SaveSnapshot(ctx context.Context, snap models.OutreachSnapshot) error
	Ping(ctx context.Context) error
	Close() error
}

// ErrInvalidID marks a store identity the backend cannot parse.
var ErrInvalidID = errors.New("invalid store id")

// columnForField maps wire field names to relational column names. The
// relational backends silently drop update keys not listed here; the
// document backend stores whatever it is sent.
var columnForField = map[string]string{
	"id":              "client_id",
	"serialNo":        "serial_no",
	"companyName":     "company_name",
	"companyDetail":   "company_detail",
	"companyContact":  "company_contact",
	"companyMail":     "company_mail",
	"companyLocation": "company_location",
	"companyWebsite":  "company_website",
	"mailSent":        "mail_sent",
	"interview":       "interview",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

// NormalizeFields coerces JSON-decoded update values into storable types:
// timestamps arrive as RFC3339 strings and numbers as float64. Backends
// receive the coerced map so a record read back decodes into its typed
// fields again.
func NormalizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		switch key {
		case "createdAt", "updatedAt":
			if s, ok := value.(string); ok {
				if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
					out[key] = t
					continue
				}
			}
			out[key] = value
		case "serialNo":
			if f, ok := value.(float64); ok {
				out[key] = int(f)
				continue
			}
			out[key] = value
		default:
			out[key] = value
		}
	}
	return out
}
