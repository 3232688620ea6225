package report

import (
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// Bucket names for the expiry risk tiers.
const (
	BucketOverdue = "overdue"
	BucketDue30   = "due_30"
	BucketDue60   = "due_60"
	BucketNormal  = "normal"
)

// ExpiryBuckets classifies contracts by signed days-to-expiry relative to
// an explicit reference time: overdue (<0), due_30 (0-30], due_60 (31-60],
// normal (>60).
type ExpiryBuckets struct {
	Overdue []models.Contract
	Due30   []models.Contract
	Due60   []models.Contract
	Normal  []models.Contract
}

func BucketByExpiry(contracts []models.Contract, ref time.Time) ExpiryBuckets {
	var b ExpiryBuckets
	for _, c := range contracts {
		switch days := c.DaysToExpiry(ref); {
		case days < 0:
			b.Overdue = append(b.Overdue, c)
		case days <= 30:
			b.Due30 = append(b.Due30, c)
		case days <= 60:
			b.Due60 = append(b.Due60, c)
		default:
			b.Normal = append(b.Normal, c)
		}
	}
	return b
}

// Counts returns the bucket sizes keyed by bucket name.
func (b ExpiryBuckets) Counts() map[string]int {
	return map[string]int{
		BucketOverdue: len(b.Overdue),
		BucketDue30:   len(b.Due30),
		BucketDue60:   len(b.Due60),
		BucketNormal:  len(b.Normal),
	}
}

// BucketFor names the tier a single contract falls into at ref.
func BucketFor(c models.Contract, ref time.Time) string {
	switch days := c.DaysToExpiry(ref); {
	case days < 0:
		return BucketOverdue
	case days <= 30:
		return BucketDue30
	case days <= 60:
		return BucketDue60
	default:
		return BucketNormal
	}
}
