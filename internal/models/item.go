package models

import (
	"strings"
	"time"

	"github.com/canozdemir/inventory-backend/internal/api/validate"
)

type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryPotion    Category = "potion"
	CategoryAccessory Category = "accessory"
	CategoryMaterial  Category = "material"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var (
	Categories = []string{"weapon", "armor", "potion", "accessory", "material"}
	Rarities   = []string{"common", "rare", "epic", "legendary"}
)

// RarityRank gives the fixed list ordering: common < rare < epic < legendary.
// Unknown values sort last; they never reach storage.
func RarityRank(r Rarity) int {
	for i, v := range Rarities {
		if string(r) == v {
			return i
		}
	}
	return len(Rarities)
}

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Rarity      Rarity    `json:"rarity"`
	Damage      float64   `json:"damage"`
	Defense     float64   `json:"defense"`
	Durability  float64   `json:"durability"`
	Stock       float64   `json:"stock"`
	OwnerID     string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemDraft is the shape of a create request: price and the numeric stats are
// pointers so an omitted field can take its documented default.
type ItemDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Rarity      string   `json:"rarity"`
	Damage      *float64 `json:"damage"`
	Defense     *float64 `json:"defense"`
	Durability  *float64 `json:"durability"`
	Stock       *float64 `json:"stock"`
}

// Item assembles the record: string fields trimmed, omitted fields defaulted.
// Category/rarity default only when empty so invalid values still fail
// validation instead of being silently replaced.
func (d ItemDraft) Item() Item {
	it := Item{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    Category(d.Category),
		Rarity:      Rarity(d.Rarity),
		Damage:      orDefault(d.Damage, 0),
		Defense:     orDefault(d.Defense, 0),
		Durability:  orDefault(d.Durability, 100),
		Stock:       orDefault(d.Stock, 0),
	}
	if d.Price != nil {
		it.Price = *d.Price
	}
	if it.Category == "" {
		it.Category = CategoryMaterial
	}
	if it.Rarity == "" {
		it.Rarity = RarityCommon
	}
	return it
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func (it *Item) Validate() error {
	var errs validate.Errs
	add := func(e *validate.ErrField) {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	add(validate.Required("name", it.Name))
	add(validate.MaxLen("name", it.Name, 100))
	add(validate.MaxLen("description", it.Description, 500))
	add(validate.MinFloat("price", it.Price, 0))
	add(validate.OneOf("category", string(it.Category), Categories))
	add(validate.OneOf("rarity", string(it.Rarity), Rarities))
	add(validate.MinFloat("damage", it.Damage, 0))
	add(validate.MinFloat("defense", it.Defense, 0))
	add(validate.MinFloat("durability", it.Durability, 0))
	add(validate.MinFloat("stock", it.Stock, 0))
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ItemUpdate is a typed partial update: only non-nil fields are applied.
// Owner and creation time are deliberately not representable here.
type ItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Rarity      *string  `json:"rarity"`
	Damage      *float64 `json:"damage"`
	Defense     *float64 `json:"defense"`
	Durability  *float64 `json:"durability"`
	Stock       *float64 `json:"stock"`
}

func (u ItemUpdate) Apply(it *Item) {
	if u.Name != nil {
		it.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		it.Description = strings.TrimSpace(*u.Description)
	}
	if u.Price != nil {
		it.Price = *u.Price
	}
	if u.Category != nil {
		it.Category = Category(*u.Category)
	}
	if u.Rarity != nil {
		it.Rarity = Rarity(*u.Rarity)
	}
	if u.Damage != nil {
		it.Damage = *u.Damage
	}
	if u.Defense != nil {
		it.Defense = *u.Defense
	}
	if u.Durability != nil {
		it.Durability = *u.Durability
	}
	if u.Stock != nil {
		it.Stock = *u.Stock
	}
}
