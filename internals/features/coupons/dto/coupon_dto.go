package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/coupons/model"
)

type RedeemRequest struct {
	RewardName string `json:"reward_name" validate:"required,max=100"`
	Points     int    `json:"points" validate:"required,gt=0"`
}

type VerifyRequest struct {
	Code string `json:"code" validate:"required"`
}

type CouponResponse struct {
	CouponID         uuid.UUID  `json:"coupon_id"`
	CouponUserID     uuid.UUID  `json:"coupon_user_id"`
	CouponCode       string     `json:"coupon_code"`
	CouponRewardName string     `json:"coupon_reward_name"`
	CouponPointsUsed int        `json:"coupon_points_used"`
	CouponIsUsed     bool       `json:"coupon_is_used"`
	CouponUsedAt     *time.Time `json:"coupon_used_at,omitempty"`
	CouponExpiresAt  *time.Time `json:"coupon_expires_at,omitempty"`
	CouponCreatedAt  time.Time  `json:"coupon_created_at"`
}

func FromModel(m *model.CouponModel) CouponResponse {
	return CouponResponse{
		CouponID:         m.CouponID,
		CouponUserID:     m.CouponUserID,
		CouponCode:       m.CouponCode,
		CouponRewardName: m.CouponRewardName,
		CouponPointsUsed: m.CouponPointsUsed,
		CouponIsUsed:     m.CouponIsUsed,
		CouponUsedAt:     m.CouponUsedAt,
		CouponExpiresAt:  m.CouponExpiresAt,
		CouponCreatedAt:  m.CouponCreatedAt,
	}
}

func FromModels(rows []*model.CouponModel) []CouponResponse {
	out := make([]CouponResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
