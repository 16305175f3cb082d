package handler

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/product-factory/internal/adapter/handler/pb"
	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/core/service"
)

func toPB(p domain.Product) *pb.Product {
	return &pb.Product{
		Name:        p.Name,
		Price:       p.PriceText(),
		Description: p.Description,
	}
}

func fromPB(p *pb.Product) (domain.Product, error) {
	if p == nil {
		return domain.Product{}, fmt.Errorf("%w: product is required", domain.ErrInvalidProductData)
	}
	price, err := parsePrice(p.GetPrice())
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		Name:        p.GetName(),
		Price:       price,
		Description: p.GetDescription(),
	}, nil
}

// parsePrice treats an empty price as zero.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price %q", domain.ErrInvalidProductData, s)
	}
	return price, nil
}

func draftFromPB(req *pb.BuildProductRequest) (service.Draft, error) {
	var draft service.Draft
	if req == nil {
		return draft, nil
	}
	draft.Name = req.Name
	draft.Description = req.Description
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return service.Draft{}, err
		}
		draft.Price = &price
	}
	return draft, nil
}

func variantsToPB(infos []service.VariantInfo) []*pb.Variant {
	out := make([]*pb.Variant, 0, len(infos))
	for _, info := range infos {
		out = append(out, &pb.Variant{
			Name:    info.Variant.String(),
			Family:  string(info.Family),
			Product: toPB(info.Product),
		})
	}
	return out
}
