package restapi

import "github.com/dmehra2102/menudash/internal/domain"

// Catalog holds one collection client per managed resource.
type Catalog struct {
	Products          *Collection[domain.Product]
	Categories        *Collection[domain.Category]
	AdditionalOptions *Collection[domain.Option]
	RequiredOptions   *Collection[domain.Option]
	Promotions        *Collection[domain.Promotion]
	Reels             *Collection[domain.Reel]
	Games             *Collection[domain.Game]
}

func NewCatalog(c *Client) *Catalog {
	path := func(kind domain.ResourceKind) string {
		r, _ := domain.ResourceByKind(kind)
		return r.Path
	}
	optionKind := func(kind domain.OptionKind) func(*domain.Option) {
		return func(o *domain.Option) { o.Kind = kind }
	}

	return &Catalog{
		Products:          NewCollection[domain.Product](c, path(domain.ResourceProducts), nil),
		Categories:        NewCollection[domain.Category](c, path(domain.ResourceCategories), nil),
		AdditionalOptions: NewCollection(c, path(domain.ResourceAdditionalOptions), optionKind(domain.OptionAdditional)),
		RequiredOptions:   NewCollection(c, path(domain.ResourceRequiredOptions), optionKind(domain.OptionRequired)),
		Promotions:        NewCollection[domain.Promotion](c, path(domain.ResourcePromotions), nil),
		Reels:             NewCollection[domain.Reel](c, path(domain.ResourceReels), nil),
		Games:             NewCollection[domain.Game](c, path(domain.ResourceGames), nil),
	}
}
