package engine

import "github.com/popupcity/passes/internal/domain"

// ReconcilePurchases marks products the application already owns so
// they render as locked and are excluded from every strategy. Owning a
// month pass implies owning all week passes it bundles. Runs once per
// catalog refresh, before any selection logic sees the roster.
func ReconcilePurchases(products []domain.PassProduct, owned []domain.Product) []domain.PassProduct {
	ownedIDs := make(map[int64]bool, len(owned))
	hasMonth := false
	for _, o := range owned {
		ownedIDs[o.ID] = true
		if o.Category == domain.CategoryMonth {
			hasMonth = true
		}
	}

	out := append([]domain.PassProduct(nil), products...)
	for i := range out {
		p := &out[i]
		if ownedIDs[p.ID] || (hasMonth && p.Category == domain.CategoryWeek) {
			p.Purchased = true
		}
	}
	return out
}
