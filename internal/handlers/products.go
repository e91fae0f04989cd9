package handlers

import (
	"context"
	"errors"
	"fmt"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/log"
	"intent-gateway/pkg/salesforce"
)

// Product is the normalized catalog record. Null CRM fields stay null.
type Product struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Family      *string `json:"family"`
}

// Products handles the GetProducts intent.
type Products struct {
	l log.Logger
}

// NewProducts creates the product lookup handler.
func NewProducts(l log.Logger) *Products {
	return &Products{l: l}
}

// Handle looks up products, optionally filtered by the product_family slot.
func (h *Products) Handle(ctx context.Context, sess intent.Session, slots intent.Slots) (intent.HandlerResult, error) {
	if sess == nil {
		return intent.Failure(MsgSalesforceAuthFailed), salesforce.ErrAuthFailed
	}

	family := slots.Get(SlotProductFamily)
	soql := BuildProductQuery(family)
	h.l.Infof(ctx, "%s: executing SOQL query: %s", LogPrefixGetProducts, soql)

	res, err := sess.Query(ctx, soql)
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", LogPrefixGetProducts, err)
		return intent.Failure(salesforceMessage(err)), err
	}

	products := make([]Product, 0, len(res.Records))
	for _, rec := range res.Records {
		products = append(products, Product{
			ID:          rec.String("Id"),
			Name:        rec.String("Name"),
			Code:        rec.String("ProductCode"),
			Description: rec.String("Description"),
			Family:      rec.String("Family"),
		})
	}

	if len(products) == 0 {
		if family != "" {
			return intent.Success(fmt.Sprintf(MsgNoProductsForFamily, family), products), nil
		}
		return intent.Success(MsgNoProducts, products), nil
	}

	return intent.Success(fmt.Sprintf(MsgProductsFound, len(products)), products), nil
}

// salesforceMessage keeps the provider's error code and text.
func salesforceMessage(err error) string {
	if errors.Is(err, salesforce.ErrAuthFailed) {
		return MsgSalesforceAuthFailed
	}
	return fmt.Sprintf(MsgSalesforceError, err.Error())
}
