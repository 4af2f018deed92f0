package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CouponService struct {
	couponRepo  ports.CouponRepo
	cartRepo    ports.CartRepo
	productRepo ports.ProductRepo
	logger      logger.Logger
}

func NewCouponService(
	couponRepo ports.CouponRepo,
	cartRepo ports.CartRepo,
	productRepo ports.ProductRepo,
	logger logger.Logger,
) *CouponService {
	return &CouponService{
		couponRepo:  couponRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Apply redeems a coupon code for the session. The offered discount is
// applied only when it beats the one already on the cart; at most one
// discount is active per session.
func (s *CouponService) Apply(ctx context.Context, cityID, applicationID int64, code string) (*domain.Discount, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, cityID, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if !coupon.IsActive {
		return nil, domain.ErrCouponNotFound
	}

	now := time.Now().UTC()
	cart, err := s.cartRepo.GetByApplication(ctx, applicationID, cityID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, fmt.Errorf("get cart: %w", err)
		}
		cart = &domain.Cart{
			ID:            uuid.New().String(),
			ApplicationID: applicationID,
			CityID:        cityID,
			CreatedAt:     now,
		}
	}

	products, err := s.productRepo.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	week := engine.RepresentativeWeek(products)

	best := engine.BestDiscount(week.Price, coupon.DiscountValue, cart.Discount)
	if !cart.Discount.IsZero() && best == cart.Discount {
		return nil, domain.ErrCouponNotBetter
	}

	cart.Discount = domain.Discount{
		Value:  coupon.DiscountValue,
		Type:   domain.DiscountPercentage,
		Code:   coupon.Code,
		CityID: cityID,
	}
	cart.UpdatedAt = now

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.Info("coupon applied",
		logger.Int64("application_id", applicationID),
		logger.String("code", coupon.Code),
	)

	return &cart.Discount, nil
}
