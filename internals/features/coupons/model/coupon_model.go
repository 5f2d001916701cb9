package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel is created once at redemption and mutated exactly once when a
// store marks it used. Codes are never reissued.
type CouponModel struct {
	CouponID     uuid.UUID `gorm:"column:coupon_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"coupon_id"`
	CouponUserID uuid.UUID `gorm:"column:coupon_user_id;type:uuid;not null;index" json:"coupon_user_id"`

	CouponCode       string `gorm:"column:coupon_code;type:varchar(20);not null;uniqueIndex" json:"coupon_code"`
	CouponRewardName string `gorm:"column:coupon_reward_name;type:varchar(100);not null" json:"coupon_reward_name"`
	CouponPointsUsed int    `gorm:"column:coupon_points_used;not null" json:"coupon_points_used"`

	CouponIsUsed    bool       `gorm:"column:coupon_is_used;not null;default:false" json:"coupon_is_used"`
	CouponUsedAt    *time.Time `gorm:"column:coupon_used_at" json:"coupon_used_at,omitempty"`
	CouponExpiresAt *time.Time `gorm:"column:coupon_expires_at" json:"coupon_expires_at,omitempty"`

	CouponCreatedAt time.Time `gorm:"column:coupon_created_at;not null;autoCreateTime" json:"coupon_created_at"`
	CouponUpdatedAt time.Time `gorm:"column:coupon_updated_at;not null;autoUpdateTime" json:"coupon_updated_at"`
}

func (CouponModel) TableName() string {
	return "coupons"
}
